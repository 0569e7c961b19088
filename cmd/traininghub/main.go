package main

import (
	"context"
	"log"

	"github.com/4citeB4U/AllwaysTrucking/internal/app"
	"github.com/4citeB4U/AllwaysTrucking/internal/config"
)

func main() {
	ctx := context.Background()

	cfg := config.LoadConfig()

	a, err := app.NewApp(ctx, cfg)
	if err != nil {
		log.Fatalf("%v", err)
	}

	a.Run(ctx)
}

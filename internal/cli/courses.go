package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/4citeB4U/AllwaysTrucking/internal/common"
)

// Courses lists the catalog, one course per line. When logged in, each line
// carries the user's standing on that course.
func (a *App) Courses(ctx context.Context) error {
	list, err := a.catalog.List(ctx)
	if err != nil {
		printlnFn("Error:", err.Error())
		return err
	}

	standing := map[int64]string{}
	if s, err := a.auth.Current(ctx); err == nil && s != nil {
		recs, err := a.progress.ListForUser(ctx, s.Email)
		if err != nil {
			printlnFn("Error:", err.Error())
			return err
		}
		for _, r := range recs {
			if r.Completed {
				standing[r.CourseID] = "Completed"
			} else {
				standing[r.CourseID] = fmt.Sprintf("In progress (%d%%)", r.Progress)
			}
		}
	}

	for _, c := range list {
		status := standing[c.ID]
		if status == "" {
			status = "Not started"
		}
		printlnFn(fmt.Sprintf("%3d  %-60s %-16s %-8s $%-4.0f %s", c.ID, c.Title, c.Category, c.Duration, c.Price, status))
	}
	return nil
}

// Course prompts for an id and shows the full course record.
func (a *App) Course(ctx context.Context) error {
	raw, err := getSimpleText(a.reader, "Enter course id", os.Stdout)
	if err != nil {
		return err
	}

	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		printlnFn("Course id must be a number.")
		return err
	}

	c, err := a.catalog.Get(ctx, id)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			printlnFn("No such course.")
		} else {
			printlnFn("Error:", err.Error())
		}
		return err
	}

	printlnFn(fmt.Sprintf("#%d %s", c.ID, c.Title))
	printlnFn(c.Description)
	printlnFn(fmt.Sprintf("Category: %s | Modules: %d | Duration: %s | Price: $%.0f", c.Category, c.Modules, c.Duration, c.Price))
	return nil
}

package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/4citeB4U/AllwaysTrucking/internal/common"
)

// Progress prompts for a course id, a completion percentage and a done flag,
// and records them for the logged-in user.
func (a *App) Progress(ctx context.Context) error {
	s, err := a.auth.Current(ctx)
	if err != nil {
		return err
	}
	if s == nil {
		printlnFn("You need to log in first.")
		return nil
	}

	rawID, err := getSimpleText(a.reader, "Enter course id", os.Stdout)
	if err != nil {
		return err
	}
	courseID, err := strconv.ParseInt(rawID, 10, 64)
	if err != nil {
		printlnFn("Course id must be a number.")
		return err
	}

	rawPercent, err := getSimpleText(a.reader, "Progress percent (0-100)", os.Stdout)
	if err != nil {
		return err
	}
	percent, err := strconv.Atoi(rawPercent)
	if err != nil {
		printlnFn("Percent must be a number.")
		return err
	}

	rawDone, err := getSimpleText(a.reader, "Completed? (y/n)", os.Stdout)
	if err != nil {
		return err
	}
	completed := strings.EqualFold(rawDone, "y") || strings.EqualFold(rawDone, "yes")

	rec, err := a.progress.RecordProgress(ctx, s.Email, courseID, percent, completed)
	if err != nil {
		switch {
		case errors.Is(err, common.ErrInvalidArgument):
			printlnFn("Invalid input:", err.Error())
		case errors.Is(err, common.ErrConflict):
			printlnFn("Another update got in the way, please retry.")
		default:
			printlnFn("Error:", err.Error())
		}
		return err
	}

	printlnFn(fmt.Sprintf("Recorded: course %d at %d%%", rec.CourseID, rec.Progress))
	return nil
}

// MyProgress lists the logged-in user's progress records with course titles.
func (a *App) MyProgress(ctx context.Context) error {
	s, err := a.auth.Current(ctx)
	if err != nil {
		return err
	}
	if s == nil {
		printlnFn("You need to log in first.")
		return nil
	}

	recs, err := a.progress.ListForUser(ctx, s.Email)
	if err != nil {
		printlnFn("Error:", err.Error())
		return err
	}
	if len(recs) == 0 {
		printlnFn("No progress recorded yet.")
		return nil
	}

	for _, r := range recs {
		title := fmt.Sprintf("course %d", r.CourseID)
		if c, err := a.catalog.Get(ctx, r.CourseID); err == nil {
			title = c.Title
		}
		status := "in progress"
		if r.Completed {
			status = "completed"
		}
		printlnFn(fmt.Sprintf("%-60s %3d%%  %s", title, r.Progress, status))
	}
	return nil
}

package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/adcreativex/adcreativex/internal/common"
	"github.com/adcreativex/adcreativex/internal/models"
)

// AddCreative prompts for a title and format and starts tracking a new
// creative in draft status.
func (a *App) AddCreative(ctx context.Context) error {
	title, err := getSimpleText(a.reader, "Title", os.Stdout)
	if err != nil {
		return err
	}
	format, err := getSimpleText(a.reader, "Format (e.g. reel, story, static)", os.Stdout)
	if err != nil {
		return err
	}

	c, err := a.creatives.Add(ctx, title, format)
	if err != nil {
		printlnFn(fmt.Sprintf("Failed to add creative: %s", err.Error()))
		return err
	}

	printlnFn(fmt.Sprintf("Tracking creative %s (%s)", c.ID, c.Status))
	return nil
}

// SetCreativeStatus prompts for a creative id and a new status and moves the
// creative there. Only the owner's creatives can be moved.
func (a *App) SetCreativeStatus(ctx context.Context) error {
	id, err := getSimpleText(a.reader, "Creative id", os.Stdout)
	if err != nil {
		return err
	}
	statusText, err := getSimpleText(a.reader, "Status (draft/submitted/approved)", os.Stdout)
	if err != nil {
		return err
	}

	status := models.CreativeStatus(statusText)
	if !status.Valid() {
		printlnFn(fmt.Sprintf("Unknown status: %s", statusText))
		return fmt.Errorf("%w: unknown status %q", common.ErrValidation, statusText)
	}

	if err := a.creatives.SetStatus(ctx, id, status); err != nil {
		printlnFn(fmt.Sprintf("Failed to update creative: %s", err.Error()))
		return err
	}

	printlnFn(fmt.Sprintf("Creative %s is now %s", id, status))
	return nil
}

// ListCreatives prints the current user's creatives.
func (a *App) ListCreatives(ctx context.Context) error {
	list, err := a.creatives.ListMine(ctx)
	if err != nil {
		printlnFn(fmt.Sprintf("Failed to list creatives: %s", err.Error()))
		return err
	}

	if len(list) == 0 {
		printlnFn("No creatives yet")
		return nil
	}
	for _, c := range list {
		printlnFn(fmt.Sprintf("%s  %-9s  %-8s  %s", c.ID, c.Status, c.Format, c.Title))
	}
	return nil
}

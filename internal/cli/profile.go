package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/adcreativex/adcreativex/internal/common"
	"github.com/adcreativex/adcreativex/internal/models"
)

// Whoami prints the current user's profile.
func (a *App) Whoami(ctx context.Context) error {
	u := a.sessions.CurrentUser()
	if u == nil {
		printlnFn("Not logged in")
		return common.ErrNotLoggedIn
	}

	printlnFn(fmt.Sprintf("Email: %s", u.Email))
	printlnFn(fmt.Sprintf("Role:  %s", u.Role))
	printField("Name", u.Name)
	switch u.Role {
	case models.RoleBrand:
		printField("Company", u.CompanyName)
		printField("Industry", u.Industry)
		printField("Website", u.Website)
	case models.RoleCreator:
		printField("Specialty", u.Specialty)
		printField("Portfolio", u.PortfolioLink)
	}
	printField("Bio", u.Bio)
	return nil
}

func printField(label, value string) {
	if value != "" {
		printlnFn(fmt.Sprintf("%s: %s", label, value))
	}
}

// EditProfile prompts for profile fields and applies a patch containing only
// the answered ones. Pressing Enter on a field leaves it unchanged.
func (a *App) EditProfile(ctx context.Context) error {
	u := a.sessions.CurrentUser()
	if u == nil {
		printlnFn("Not logged in")
		return common.ErrNotLoggedIn
	}

	var patch models.ProfilePatch
	var err error

	if patch.Name, err = getOptionalText(a.reader, "Name", os.Stdout); err != nil {
		return err
	}
	switch u.Role {
	case models.RoleBrand:
		if patch.CompanyName, err = getOptionalText(a.reader, "Company name", os.Stdout); err != nil {
			return err
		}
		if patch.Industry, err = getOptionalText(a.reader, "Industry", os.Stdout); err != nil {
			return err
		}
		if patch.Website, err = getOptionalText(a.reader, "Website", os.Stdout); err != nil {
			return err
		}
	case models.RoleCreator:
		if patch.Specialty, err = getOptionalText(a.reader, "Specialty", os.Stdout); err != nil {
			return err
		}
		if patch.PortfolioLink, err = getOptionalText(a.reader, "Portfolio link", os.Stdout); err != nil {
			return err
		}
	}
	if patch.Bio, err = getOptionalText(a.reader, "Bio", os.Stdout); err != nil {
		return err
	}

	_, err = a.sessions.UpdateProfile(ctx, patch)
	return err
}

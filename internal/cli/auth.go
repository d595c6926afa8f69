package cli

import (
	"context"
	"os"

	"github.com/adcreativex/adcreativex/internal/common"
	"github.com/adcreativex/adcreativex/internal/models"
)

// getSimpleText, getOptionalText and getPassword are indirections used to
// facilitate testing. They point to interactive input helpers and can be
// swapped in tests.
var getSimpleText = GetSimpleText
var getOptionalText = GetOptionalText
var getPassword = GetPassword

// Register prompts for an email, password, role and the role's profile
// fields, then creates the account. Empty profile answers are simply left
// out of the record. The session manager reports the outcome through its
// notifier, so errors are not printed again here.
//
// The password byte slice is securely wiped before returning.
func (a *App) Register(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	roleText, err := getSimpleText(a.reader, "Role (brand/creator)", os.Stdout)
	if err != nil {
		return err
	}
	role := models.Role(roleText)

	profile, err := a.promptProfile(role)
	if err != nil {
		return err
	}

	_, err = a.sessions.Register(ctx, email, password, role, profile)
	return err
}

// Login prompts for credentials and authenticates against the local user
// directory. The password is securely wiped before returning.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	_, err = a.sessions.Login(ctx, email, password)
	return err
}

// Logout clears the persisted session. It never fails.
func (a *App) Logout(ctx context.Context) error {
	a.sessions.Logout(ctx)
	return nil
}

// promptProfile collects the optional profile fields for role. Empty
// answers leave the field unset.
func (a *App) promptProfile(role models.Role) (models.Profile, error) {
	var p models.Profile

	collect := func(prompt string, dst *string) error {
		v, err := getOptionalText(a.reader, prompt, os.Stdout)
		if err != nil {
			return err
		}
		if v != nil {
			*dst = *v
		}
		return nil
	}

	if err := collect("Name", &p.Name); err != nil {
		return models.Profile{}, err
	}

	switch role {
	case models.RoleBrand:
		if err := collect("Company name", &p.CompanyName); err != nil {
			return models.Profile{}, err
		}
		if err := collect("Industry", &p.Industry); err != nil {
			return models.Profile{}, err
		}
		if err := collect("Website", &p.Website); err != nil {
			return models.Profile{}, err
		}
	case models.RoleCreator:
		if err := collect("Specialty", &p.Specialty); err != nil {
			return models.Profile{}, err
		}
		if err := collect("Portfolio link", &p.PortfolioLink); err != nil {
			return models.Profile{}, err
		}
	}

	if err := collect("Bio", &p.Bio); err != nil {
		return models.Profile{}, err
	}
	return p, nil
}

// Package identity holds the pure operations over the user directory:
// lookup, create, and update. Callers own loading the directory from the
// durable store and persisting the result; nothing here touches storage.
package identity

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/adcreativex/adcreativex/internal/common"
	"github.com/adcreativex/adcreativex/internal/models"
)

// FindByEmail returns the directory record matching email, if any.
// Matching is case-insensitive; emails are stored as entered.
func FindByEmail(directory []models.User, email string) (*models.User, bool) {
	for i := range directory {
		if strings.EqualFold(directory[i].Email, email) {
			return directory[i].Clone(), true
		}
	}
	return nil, false
}

// CreateParams describes a new directory record.
type CreateParams struct {
	Email    string
	Password []byte
	Role     models.Role
	Profile  models.Profile
}

// Create appends a new record to the directory.
//
// Fails with common.ErrEmailTaken when the email is already present and with
// common.ErrValidation when the role-conditional profile is invalid. On
// success it returns the new record and the updated directory; the input
// directory is never modified.
func Create(directory []models.User, p CreateParams) (*models.User, []models.User, error) {
	if _, found := FindByEmail(directory, p.Email); found {
		return nil, nil, common.ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword(p.Password, bcrypt.DefaultCost)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := models.User{
		ID:            uuid.NewString(),
		Email:         p.Email,
		Role:          p.Role,
		Name:          p.Profile.Name,
		CompanyName:   p.Profile.CompanyName,
		Industry:      p.Profile.Industry,
		Website:       p.Profile.Website,
		Specialty:     p.Profile.Specialty,
		PortfolioLink: p.Profile.PortfolioLink,
		Bio:           p.Profile.Bio,
		PasswordHash:  hash,
	}
	if err := user.ValidateProfile(); err != nil {
		return nil, nil, err
	}

	updated := make([]models.User, len(directory), len(directory)+1)
	copy(updated, directory)
	updated = append(updated, user)

	return user.Clone(), updated, nil
}

// Update shallow-merges patch into the record with the given id.
//
// Fails with common.ErrorNotFound when no record has that id and with
// common.ErrValidation when the merged profile is invalid. On success it
// returns the updated record and directory; the input directory is never
// modified.
func Update(directory []models.User, id string, patch models.ProfilePatch) (*models.User, []models.User, error) {
	idx := -1
	for i := range directory {
		if directory[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, nil, common.ErrorNotFound
	}

	merged := patch.Apply(&directory[idx])
	if err := merged.ValidateProfile(); err != nil {
		return nil, nil, err
	}

	updated := make([]models.User, len(directory))
	copy(updated, directory)
	updated[idx] = *merged

	return merged.Clone(), updated, nil
}

// VerifyPassword checks password against the record's stored bcrypt hash,
// returning common.ErrInvalidCredentials on mismatch. Records persisted by
// older builds carry no hash; those fall back to a non-empty password check
// so an existing directory stays usable.
func VerifyPassword(u *models.User, password []byte) error {
	if len(u.PasswordHash) == 0 {
		if len(password) == 0 {
			return common.ErrInvalidCredentials
		}
		return nil
	}
	if err := bcrypt.CompareHashAndPassword(u.PasswordHash, password); err != nil {
		return common.ErrInvalidCredentials
	}
	return nil
}

// Package models defines the user directory records and the profile shapes
// exchanged with consumers.
package models

import (
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/adcreativex/adcreativex/internal/common"
)

// Role selects which optional profile fields are meaningful for a user.
// It is fixed at registration.
type Role string

const (
	RoleBrand   Role = "brand"
	RoleCreator Role = "creator"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	return r == RoleBrand || r == RoleCreator
}

// User is a single record in the user directory.
//
// JSON field names follow the persisted directory layout; PasswordHash is
// stored alongside the record but never exposed through profile reads.
type User struct {
	ID            string `json:"id"`
	Email         string `json:"email"`
	Role          Role   `json:"role"`
	Name          string `json:"name"`
	CompanyName   string `json:"companyName,omitempty"`
	Industry      string `json:"industry,omitempty"`
	Website       string `json:"website,omitempty"`
	Specialty     string `json:"specialty,omitempty"`
	PortfolioLink string `json:"portfolioLink,omitempty"`
	Bio           string `json:"bio,omitempty"`
	PasswordHash  []byte `json:"passwordHash,omitempty"`
}

// Clone returns a deep copy. Published session state must never alias the
// directory's backing record.
func (u *User) Clone() *User {
	if u == nil {
		return nil
	}
	c := *u
	if u.PasswordHash != nil {
		c.PasswordHash = append([]byte(nil), u.PasswordHash...)
	}
	return &c
}

// Profile carries the optional profile fields supplied at registration.
type Profile struct {
	Name          string
	CompanyName   string
	Industry      string
	Website       string
	Specialty     string
	PortfolioLink string
	Bio           string
}

// ProfilePatch is a shallow-merge patch for profile updates: nil fields are
// left untouched, non-nil fields overwrite. ID, email, and role are not
// patchable.
type ProfilePatch struct {
	Name          *string
	CompanyName   *string
	Industry      *string
	Website       *string
	Specialty     *string
	PortfolioLink *string
	Bio           *string
}

// Apply merges the patch into a copy of u and returns it.
func (p ProfilePatch) Apply(u *User) *User {
	out := u.Clone()
	if p.Name != nil {
		out.Name = *p.Name
	}
	if p.CompanyName != nil {
		out.CompanyName = *p.CompanyName
	}
	if p.Industry != nil {
		out.Industry = *p.Industry
	}
	if p.Website != nil {
		out.Website = *p.Website
	}
	if p.Specialty != nil {
		out.Specialty = *p.Specialty
	}
	if p.PortfolioLink != nil {
		out.PortfolioLink = *p.PortfolioLink
	}
	if p.Bio != nil {
		out.Bio = *p.Bio
	}
	return out
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Role-keyed validation schemas. Fields are checked only when present, so a
// partial profile at registration or a single-field patch still passes.
type brandProfile struct {
	CompanyName string `validate:"omitempty,min=2"`
	Industry    string `validate:"omitempty,min=2"`
	Website     string `validate:"omitempty,url"`
	Bio         string `validate:"omitempty,max=2000"`
}

type creatorProfile struct {
	Name          string `validate:"omitempty,min=2"`
	Specialty     string `validate:"omitempty,min=2"`
	PortfolioLink string `validate:"omitempty,url"`
	Bio           string `validate:"omitempty,max=2000"`
}

// ValidateProfile checks the role-conditional profile fields of u.
// Violations are reported as common.ErrValidation with the offending field.
func (u *User) ValidateProfile() error {
	if !u.Role.Valid() {
		return fmt.Errorf("%w: unknown role %q", common.ErrValidation, u.Role)
	}

	var err error
	switch u.Role {
	case RoleBrand:
		err = validate.Struct(brandProfile{
			CompanyName: u.CompanyName,
			Industry:    u.Industry,
			Website:     u.Website,
			Bio:         u.Bio,
		})
	case RoleCreator:
		err = validate.Struct(creatorProfile{
			Name:          u.Name,
			Specialty:     u.Specialty,
			PortfolioLink: u.PortfolioLink,
			Bio:           u.Bio,
		})
	}
	if err == nil {
		return nil
	}

	if ves, ok := err.(validator.ValidationErrors); ok && len(ves) > 0 {
		return fmt.Errorf("%w: invalid %s", common.ErrValidation, ves[0].Field())
	}
	return fmt.Errorf("%w: %v", common.ErrValidation, err)
}

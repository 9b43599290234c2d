package model

import (
	"slices"

	"github.com/deppfellow/devprojects/internal/validation"
)

// OSOptions lists the accepted values for DeveloperInfo.PreferredOS.
var OSOptions = []string{"Windows", "Linux", "MacOS"}

// IsValidOS reports whether os is one of OSOptions.
func IsValidOS(os string) bool {
	return slices.Contains(OSOptions, os)
}

type Developer struct {
	ID    int64  `json:"id" db:"id"`
	Name  string `json:"name" db:"name"`
	Email string `json:"email" db:"email"`
}

type DeveloperInfo struct {
	ID             int64  `json:"id" db:"id"`
	DeveloperSince Date   `json:"developerSince" db:"developer_since"`
	PreferredOS    string `json:"preferredOS" db:"preferred_os"`
	DeveloperID    int64  `json:"developerId" db:"developer_id"`
}

// DeveloperDetail is a developer joined with its optional info. The info
// fields are null when the developer has none.
type DeveloperDetail struct {
	DeveloperID                 int64   `json:"developerId" db:"developer_id"`
	DeveloperName               string  `json:"developerName" db:"developer_name"`
	DeveloperEmail              string  `json:"developerEmail" db:"developer_email"`
	DeveloperInfoDeveloperSince Date    `json:"developerInfoDeveloperSince" db:"developer_info_developer_since"`
	DeveloperInfoPreferredOS    *string `json:"developerInfoPreferredOS" db:"developer_info_preferred_os"`
}

// ------------------------------------------------------------

type CreateDeveloperPayload struct {
	Name  string `json:"name" validate:"required,max=50"`
	Email string `json:"email" validate:"required,email,max=50"`
}

func (p *CreateDeveloperPayload) Validate() error {
	return validation.Struct(p)
}

// ------------------------------------------------------------

type GetDeveloperByIDPayload struct {
	ID int64 `param:"id" json:"-" validate:"gt=0"`
}

func (p *GetDeveloperByIDPayload) Validate() error {
	return validation.Struct(p)
}

// ------------------------------------------------------------

type UpdateDeveloperPayload struct {
	ID    int64   `param:"id" json:"-" validate:"gt=0"`
	Name  *string `json:"name" validate:"omitnil,min=1,max=50"`
	Email *string `json:"email" validate:"omitnil,email,max=50"`
}

func (p *UpdateDeveloperPayload) Validate() error {
	if err := validation.Struct(p); err != nil {
		return err
	}

	if p.Name == nil && p.Email == nil {
		return validation.CustomValidationErrors{
			{Field: "body", Message: "must contain at least one of: name, email"},
		}
	}

	return nil
}

// ------------------------------------------------------------

type DeleteDeveloperPayload struct {
	ID int64 `param:"id" json:"-" validate:"gt=0"`
}

func (p *DeleteDeveloperPayload) Validate() error {
	return validation.Struct(p)
}

// ------------------------------------------------------------

// CreateDeveloperInfoPayload does not constrain PreferredOS with a tag:
// an unknown OS is answered with the list of options instead of a field
// error.
type CreateDeveloperInfoPayload struct {
	DeveloperID    int64  `param:"id" json:"-" validate:"gt=0"`
	DeveloperSince Date   `json:"developerSince" validate:"required"`
	PreferredOS    string `json:"preferredOS"`
}

func (p *CreateDeveloperInfoPayload) Validate() error {
	return validation.Struct(p)
}

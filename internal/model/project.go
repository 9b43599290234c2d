package model

import "github.com/deppfellow/devprojects/internal/validation"

type Project struct {
	ID            int64  `json:"id" db:"id"`
	Name          string `json:"name" db:"name"`
	Description   string `json:"description" db:"description"`
	EstimatedTime string `json:"estimatedTime" db:"estimated_time"`
	Repository    string `json:"repository" db:"repository"`
	StartDate     Date   `json:"startDate" db:"start_date"`
	EndDate       Date   `json:"endDate" db:"end_date"`
	DeveloperID   int64  `json:"developerId" db:"developer_id"`
}

// ProjectTechnologyRow is one row of a project read: the project joined
// with one of its technologies, or with null technology fields when it has
// none.
type ProjectTechnologyRow struct {
	ProjectID            int64   `json:"projectId" db:"project_id"`
	ProjectName          string  `json:"projectName" db:"project_name"`
	ProjectDescription   string  `json:"projectDescription" db:"project_description"`
	ProjectEstimatedTime string  `json:"projectEstimatedTime" db:"project_estimated_time"`
	ProjectRepository    string  `json:"projectRepository" db:"project_repository"`
	ProjectStartDate     Date    `json:"projectStartDate" db:"project_start_date"`
	ProjectEndDate       Date    `json:"projectEndDate" db:"project_end_date"`
	ProjectDeveloperID   int64   `json:"projectDeveloperId" db:"project_developer_id"`
	TechnologyID         *int64  `json:"technologyId" db:"technology_id"`
	TechnologyName       *string `json:"technologyName" db:"technology_name"`
}

// ProjectTechnologyView is the association returned after attaching a
// technology to a project.
type ProjectTechnologyView struct {
	TechnologyID         int64  `json:"technologyId" db:"technology_id"`
	TechnologyName       string `json:"technologyName" db:"technology_name"`
	ProjectID            int64  `json:"projectId" db:"project_id"`
	ProjectName          string `json:"projectName" db:"project_name"`
	ProjectDescription   string `json:"projectDescription" db:"project_description"`
	ProjectEstimatedTime string `json:"projectEstimatedTime" db:"project_estimated_time"`
	ProjectRepository    string `json:"projectRepository" db:"project_repository"`
	ProjectStartDate     Date   `json:"projectStartDate" db:"project_start_date"`
	ProjectEndDate       Date   `json:"projectEndDate" db:"project_end_date"`
}

// ------------------------------------------------------------

type CreateProjectPayload struct {
	Name          string `json:"name" validate:"required,max=50"`
	Description   string `json:"description" validate:"required"`
	EstimatedTime string `json:"estimatedTime" validate:"required,max=20"`
	Repository    string `json:"repository" validate:"required,max=120"`
	StartDate     Date   `json:"startDate" validate:"required"`
	EndDate       Date   `json:"endDate"`
	DeveloperID   int64  `json:"developerId" validate:"required,gt=0"`
}

func (p *CreateProjectPayload) Validate() error {
	return validation.Struct(p)
}

// ------------------------------------------------------------

type GetProjectByIDPayload struct {
	ID int64 `param:"id" json:"-" validate:"gt=0"`
}

func (p *GetProjectByIDPayload) Validate() error {
	return validation.Struct(p)
}

// ------------------------------------------------------------

// UpdateProjectPayload carries the fields a PATCH may change. A nil field
// is left untouched, so endDate cannot be cleared once set.
type UpdateProjectPayload struct {
	ID            int64   `param:"id" json:"-" validate:"gt=0"`
	Name          *string `json:"name" validate:"omitnil,min=1,max=50"`
	Description   *string `json:"description" validate:"omitnil,min=1"`
	EstimatedTime *string `json:"estimatedTime" validate:"omitnil,min=1,max=20"`
	Repository    *string `json:"repository" validate:"omitnil,min=1,max=120"`
	StartDate     *Date   `json:"startDate"`
	EndDate       *Date   `json:"endDate"`
	DeveloperID   *int64  `json:"developerId" validate:"omitnil,gt=0"`
}

func (p *UpdateProjectPayload) Validate() error {
	if err := validation.Struct(p); err != nil {
		return err
	}

	if p.Name == nil && p.Description == nil && p.EstimatedTime == nil && p.Repository == nil &&
		p.StartDate == nil && p.EndDate == nil && p.DeveloperID == nil {
		return validation.CustomValidationErrors{
			{
				Field:   "body",
				Message: "must contain at least one of: name, description, estimatedTime, repository, startDate, endDate, developerId",
			},
		}
	}

	return nil
}

// ------------------------------------------------------------

type DeleteProjectPayload struct {
	ID int64 `param:"id" json:"-" validate:"gt=0"`
}

func (p *DeleteProjectPayload) Validate() error {
	return validation.Struct(p)
}

// ------------------------------------------------------------

// AddProjectTechnologyPayload names the technology to attach. TechnologyID
// is resolved from Name before the handler runs.
type AddProjectTechnologyPayload struct {
	ProjectID    int64  `param:"id" json:"-" validate:"gt=0"`
	Name         string `json:"name"`
	TechnologyID int64  `json:"-"`
}

func (p *AddProjectTechnologyPayload) Validate() error {
	return validation.Struct(p)
}

// ------------------------------------------------------------

type RemoveProjectTechnologyPayload struct {
	ProjectID    int64  `param:"id" json:"-" validate:"gt=0"`
	Name         string `param:"name" json:"-"`
	TechnologyID int64  `json:"-"`
}

func (p *RemoveProjectTechnologyPayload) Validate() error {
	return validation.Struct(p)
}

package repository

// Repositories is a container for all repository instances.
type Repositories struct {
	Developer  *DeveloperRepository
	Project    *ProjectRepository
	Technology *TechnologyRepository
}

// NewRepositories constructs the repository container over db, usually the
// server's *pgxpool.Pool.
func NewRepositories(db DBTX) *Repositories {
	return &Repositories{
		Developer:  NewDeveloperRepository(db),
		Project:    NewProjectRepository(db),
		Technology: NewTechnologyRepository(db),
	}
}

package model

// TechnologyOptions is the catalog seeded into the technologies table, in
// the order clients are shown it.
var TechnologyOptions = []string{
	"JavaScript",
	"Python",
	"React",
	"Express.js",
	"HTML",
	"CSS",
	"Django",
	"PostgreSQL",
	"MongoDB",
}

type Technology struct {
	ID   int64  `json:"id" db:"id"`
	Name string `json:"name" db:"name"`
}

// ListTechnologiesPayload carries no input.
type ListTechnologiesPayload struct{}

func (p *ListTechnologiesPayload) Validate() error {
	return nil
}

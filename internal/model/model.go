// Package model holds the entities stored in the database, the joined
// views returned to clients and the request payloads accepted by the API.
package model

import "github.com/jackc/pgx/v5/pgtype"

// Date is a calendar date travelling as "YYYY-MM-DD" in JSON and as a
// Postgres date in SQL. An invalid Date is NULL in both.
type Date = pgtype.Date

// Package lib groups integrations that do not belong to a single layer:
// the Asynq background jobs (lib/job) and the Resend e-mail client
// (lib/email).
package lib

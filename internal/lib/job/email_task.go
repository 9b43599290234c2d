package job

import (
	"encoding/json"
	"time"

	"github.com/hibiken/asynq"
)

const (
	// TaskDeveloperWelcome is the job type name stored in Redis.
	// Asynq uses task type strings to route to handlers.
	TaskDeveloperWelcome = "email:developer_welcome"
)

// WelcomeEmailPayload is the JSON payload of the welcome email task.
type WelcomeEmailPayload struct {
	DeveloperID int64  `json:"developer_id"`
	To          string `json:"to"`
	Name        string `json:"name"`
}

// NewWelcomeEmailTask constructs an Asynq task for sending a welcome email.
//
// Task options:
//   - MaxRetry(3): retry up to 3 times on failure
//   - Queue("default"): send into the "default" queue
//   - Timeout(30s): kill the task if handler runs longer than 30 seconds
func NewWelcomeEmailTask(developerID int64, to, name string) (*asynq.Task, error) {
	payload, err := json.Marshal(WelcomeEmailPayload{
		DeveloperID: developerID,
		To:          to,
		Name:        name,
	})
	if err != nil {
		return nil, err
	}

	return asynq.NewTask(
		TaskDeveloperWelcome,
		payload,
		asynq.MaxRetry(3),
		asynq.Queue("default"),
		asynq.Timeout(30*time.Second),
	), nil
}

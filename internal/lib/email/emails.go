package email

import "context"

// SendWelcomeEmail greets a newly registered developer.
func (c *Client) SendWelcomeEmail(ctx context.Context, to, developerName string) error {
	// Keys must match what templates/welcome.html expects.
	data := map[string]string{
		"DeveloperName": developerName,
	}

	return c.SendEmail(
		ctx,
		to,
		"Welcome to DevProjects!",
		TemplateWelcome,
		data,
	)
}

package email

import (
	"context"
	"errors"
	"testing"

	"github.com/resend/resend-go/v2"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSender struct {
	sent []*resend.SendEmailRequest
	err  error
}

func (f *fakeSender) SendWithContext(_ context.Context, params *resend.SendEmailRequest) (*resend.SendEmailResponse, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.sent = append(f.sent, params)
	return &resend.SendEmailResponse{Id: "email-1"}, nil
}

func newTestClient(s sender) *Client {
	logger := zerolog.Nop()
	return &Client{emails: s, from: "DevProjects <onboarding@resend.dev>", logger: &logger}
}

func TestRender_PreviewData(t *testing.T) {
	for name, data := range PreviewData {
		t.Run(string(name), func(t *testing.T) {
			html, err := Render(name, data)
			require.NoError(t, err)
			for _, value := range data {
				assert.Contains(t, html, value)
			}
		})
	}
}

func TestRender_UnknownTemplate(t *testing.T) {
	_, err := Render("missing", nil)
	assert.Error(t, err)
}

func TestSendWelcomeEmail(t *testing.T) {
	fake := &fakeSender{}
	client := newTestClient(fake)

	require.NoError(t, client.SendWelcomeEmail(context.Background(), "ana@mail.com", "Ana"))

	require.Len(t, fake.sent, 1)
	assert.Equal(t, []string{"ana@mail.com"}, fake.sent[0].To)
	assert.Equal(t, "DevProjects <onboarding@resend.dev>", fake.sent[0].From)
	assert.Contains(t, fake.sent[0].Html, "Welcome, Ana!")
}

func TestSendEmail_ProviderError(t *testing.T) {
	client := newTestClient(&fakeSender{err: errors.New("rate limited")})

	err := client.SendWelcomeEmail(context.Background(), "ana@mail.com", "Ana")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "rate limited")
}

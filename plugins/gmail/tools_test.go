package gmail

import (
	"context"
	"testing"

	"github.com/firebase/genkit/go/genkit"
	"github.com/stretchr/testify/assert"

	"github.com/ZIZO17z/mia/tools"
)

func TestEmailTool_MissingCredentials(t *testing.T) {
	tool := &EmailTool{client: &Client{Host: "127.0.0.1", Port: 2525}}

	result := tool.Execute(context.Background(), &EmailInput{
		ToEmail: "boss@example.com",
		Subject: "Status",
		Message: "All systems nominal.",
	})
	assert.Equal(t, "Email sending failed: Gmail credentials not configured.", result)
}

func TestEmailTool_Success(t *testing.T) {
	tool := &EmailTool{client: startFakeSMTP(t, smtpScript{})}

	result := tool.Execute(context.Background(), &EmailInput{
		ToEmail: "boss@example.com",
		Subject: "Status",
		Message: "All systems nominal.",
	})
	assert.Equal(t, "Email sent successfully to boss@example.com", result)
}

func TestEmailTool_AuthFailure(t *testing.T) {
	tool := &EmailTool{client: startFakeSMTP(t, smtpScript{authReply: "535 5.7.8 Authentication failed"})}

	result := tool.Execute(context.Background(), &EmailInput{
		ToEmail: "boss@example.com",
		Subject: "Status",
		Message: "All systems nominal.",
	})
	assert.Equal(t, "Email sending failed: Authentication error. Please check your Gmail credentials.", result)
}

func TestEmailTool_SMTPFailure(t *testing.T) {
	tool := &EmailTool{client: startFakeSMTP(t, smtpScript{rcptReply: "550 5.1.1 User unknown"})}

	result := tool.Execute(context.Background(), &EmailInput{
		ToEmail: "nobody@example.com",
		Subject: "Status",
		Message: "All systems nominal.",
	})
	assert.Contains(t, result, "Email sending failed: SMTP error -")
	assert.NotContains(t, result, "Authentication error")
}

func TestEmailExecutor(t *testing.T) {
	host, port := startFakeSMTPServer(t, smtpScript{})

	ctx := context.Background()
	gk := genkit.Init(ctx)
	registry := tools.NewRegistry()
	client := NewClient("mia@gmail.com", "app-password", host, port, gk, registry)
	client.DisableStartTLS = true

	result, err := registry.ExecuteTool(ctx, "send_email", map[string]interface{}{
		"to_email": "boss@example.com",
		"subject":  "Status",
		"message":  "All systems nominal.",
		"cc_email": "deputy@example.com",
	})
	assert.NoError(t, err)
	assert.Equal(t, "Email sent successfully to boss@example.com", result)

	_, err = registry.ExecuteTool(ctx, "send_email", map[string]interface{}{
		"to_email": "boss@example.com",
		"message":  "All systems nominal.",
	})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "subject")
}

func TestEmailTool_OtherFailure(t *testing.T) {
	// Nothing listening on the port: dial error, not an SMTP rejection
	tool := &EmailTool{client: &Client{
		Host:            "127.0.0.1",
		Port:            1, // reserved port, nothing listens here
		User:            "mia@gmail.com",
		Password:        "app-password",
		DisableStartTLS: true,
	}}

	result := tool.Execute(context.Background(), &EmailInput{
		ToEmail: "boss@example.com",
		Subject: "Status",
		Message: "All systems nominal.",
	})
	assert.Contains(t, result, "An error occurred while sending email:")
}

package gmail

import (
	"context"
	"errors"
	"fmt"

	"github.com/firebase/genkit/go/ai"
	"github.com/firebase/genkit/go/genkit"

	"github.com/ZIZO17z/mia/log"
	"github.com/ZIZO17z/mia/tools"
)

// EmailInput is the input for the send_email tool
type EmailInput struct {
	ToEmail string `json:"to_email" description:"Recipient email address"`
	Subject string `json:"subject" description:"Email subject line"`
	Message string `json:"message" description:"Plain-text email body"`
	CcEmail string `json:"cc_email,omitempty" description:"Optional CC email address"`
}

// EmailTool sends an email through the Gmail client
type EmailTool struct {
	client *Client
}

func (t *EmailTool) Name() string {
	return "send_email"
}

func (t *EmailTool) Description() string {
	return "Sends an email through Gmail. Arguments: to_email (string, required), subject (string, required), message (string, required), cc_email (string, optional)."
}

// Execute always resolves to a string; the three failure categories
// (authentication, SMTP protocol, other) surface as distinct message text.
func (t *EmailTool) Execute(ctx context.Context, input *EmailInput) string {
	if !t.client.Configured() {
		log.Error(ctx, "[Gmail] Credentials not found in environment variables")
		return "Email sending failed: Gmail credentials not configured."
	}

	err := t.client.Send(ctx, &Message{
		To:      input.ToEmail,
		Subject: input.Subject,
		Body:    input.Message,
		Cc:      input.CcEmail,
	})
	if err != nil {
		var sendErr *SendError
		if errors.As(err, &sendErr) {
			switch sendErr.Kind {
			case KindAuth:
				log.Error(ctx, "[Gmail] Authentication failed")
				return "Email sending failed: Authentication error. Please check your Gmail credentials."
			case KindProtocol:
				log.Errorf(ctx, "[Gmail] SMTP error occurred: %v", sendErr.Err)
				return fmt.Sprintf("Email sending failed: SMTP error - %v", sendErr.Err)
			}
		}
		log.Errorf(ctx, "[Gmail] Error sending email: %v", err)
		return fmt.Sprintf("An error occurred while sending email: %v", err)
	}

	return fmt.Sprintf("Email sent successfully to %s", input.ToEmail)
}

// registerTools registers the email tool with the registry
func (c *Client) registerTools(gk *genkit.Genkit, registry *tools.Registry) {
	if gk == nil || registry == nil {
		return
	}

	emailTool := &EmailTool{client: c}
	registry.Register(genkit.DefineTool(gk, emailTool.Name(), emailTool.Description(),
		func(ctx *ai.ToolContext, input *EmailInput) (string, error) {
			return emailTool.Execute(ctx, input), nil
		},
	), func(ctx context.Context, args map[string]interface{}) (string, error) {
		to, ok := args["to_email"].(string)
		if !ok {
			return "", fmt.Errorf("to_email is required and must be a string")
		}
		subject, ok := args["subject"].(string)
		if !ok {
			return "", fmt.Errorf("subject is required and must be a string")
		}
		message, ok := args["message"].(string)
		if !ok {
			return "", fmt.Errorf("message is required and must be a string")
		}
		input := &EmailInput{ToEmail: to, Subject: subject, Message: message}
		if cc, ok := args["cc_email"].(string); ok {
			input.CcEmail = cc
		}
		return emailTool.Execute(ctx, input), nil
	})

	log.Info(context.Background(), "[Gmail] Registered tool: send_email")
}

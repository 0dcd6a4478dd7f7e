// Package gmail submits mail through an authenticated SMTP session and
// provides the send_email tool.
package gmail

import (
	"bytes"
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"net"
	"net/smtp"
	"net/textproto"
	"strconv"

	"github.com/firebase/genkit/go/genkit"

	"github.com/ZIZO17z/mia/log"
	"github.com/ZIZO17z/mia/tools"
)

const (
	DefaultHost = "smtp.gmail.com"
	DefaultPort = 587
)

// ErrorKind classifies a mail submission failure
type ErrorKind int

const (
	// KindAuth is an authentication failure during AUTH
	KindAuth ErrorKind = iota
	// KindProtocol is an SMTP-level rejection anywhere else in the envelope
	KindProtocol
	// KindOther covers dial, TLS and any remaining failures
	KindOther
)

// SendError wraps a submission failure with its category
type SendError struct {
	Kind ErrorKind
	Err  error
}

func (e *SendError) Error() string {
	switch e.Kind {
	case KindAuth:
		return fmt.Sprintf("authentication failed: %v", e.Err)
	case KindProtocol:
		return fmt.Sprintf("smtp error: %v", e.Err)
	default:
		return e.Err.Error()
	}
}

func (e *SendError) Unwrap() error {
	return e.Err
}

// classify buckets envelope errors: server rejections carry a textproto
// status, everything else is unclassified.
func classify(err error) *SendError {
	var protoErr *textproto.Error
	if errors.As(err, &protoErr) {
		return &SendError{Kind: KindProtocol, Err: err}
	}
	return &SendError{Kind: KindOther, Err: err}
}

// Message is a single outbound mail
type Message struct {
	To      string
	Subject string
	Body    string
	Cc      string
}

// Client submits mail over a STARTTLS-secured SMTP session
type Client struct {
	Host     string
	Port     int
	User     string
	Password string

	// DisableStartTLS skips the TLS upgrade; only meaningful against
	// loopback test servers.
	DisableStartTLS bool
}

// NewClient creates a new mail client and registers the send_email tool
func NewClient(user, password, host string, port int, gk *genkit.Genkit, registry *tools.Registry) *Client {
	if user == "" || password == "" {
		log.Warn(context.Background(), "Gmail credentials are empty, send_email will report a configuration error")
	}
	if host == "" {
		host = DefaultHost
	}
	if port == 0 {
		port = DefaultPort
	}

	c := &Client{
		Host:     host,
		Port:     port,
		User:     user,
		Password: password,
	}

	c.registerTools(gk, registry)

	return c
}

// Configured reports whether both credentials are present
func (c *Client) Configured() bool {
	return c.User != "" && c.Password != ""
}

// Send dials the submission host, upgrades to TLS, authenticates and sends
// the envelope to To plus the optional Cc. Failures come back as *SendError.
func (c *Client) Send(ctx context.Context, msg *Message) error {
	addr := net.JoinHostPort(c.Host, strconv.Itoa(c.Port))

	var dialer net.Dialer
	conn, err := dialer.DialContext(ctx, "tcp", addr)
	if err != nil {
		return &SendError{Kind: KindOther, Err: err}
	}

	client, err := smtp.NewClient(conn, c.Host)
	if err != nil {
		conn.Close()
		return &SendError{Kind: KindOther, Err: err}
	}
	defer client.Close()

	if !c.DisableStartTLS {
		if ok, _ := client.Extension("STARTTLS"); ok {
			if err := client.StartTLS(&tls.Config{ServerName: c.Host}); err != nil {
				return &SendError{Kind: KindOther, Err: err}
			}
		}
	}

	auth := smtp.PlainAuth("", c.User, c.Password, c.Host)
	if err := client.Auth(auth); err != nil {
		return &SendError{Kind: KindAuth, Err: err}
	}

	if err := client.Mail(c.User); err != nil {
		return classify(err)
	}

	recipients := []string{msg.To}
	if msg.Cc != "" {
		recipients = append(recipients, msg.Cc)
	}
	for _, rcpt := range recipients {
		if err := client.Rcpt(rcpt); err != nil {
			return classify(err)
		}
	}

	w, err := client.Data()
	if err != nil {
		return classify(err)
	}
	if _, err := w.Write(c.buildMessage(msg)); err != nil {
		w.Close()
		return classify(err)
	}
	if err := w.Close(); err != nil {
		return classify(err)
	}

	if err := client.Quit(); err != nil {
		return classify(err)
	}

	log.Infof(ctx, "[Gmail] Email sent successfully to %s", msg.To)
	return nil
}

// buildMessage renders the headers and plain-text body
func (c *Client) buildMessage(msg *Message) []byte {
	var b bytes.Buffer

	fmt.Fprintf(&b, "From: %s\r\n", c.User)
	fmt.Fprintf(&b, "To: %s\r\n", msg.To)
	if msg.Cc != "" {
		fmt.Fprintf(&b, "Cc: %s\r\n", msg.Cc)
	}
	fmt.Fprintf(&b, "Subject: %s\r\n", msg.Subject)
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString("Content-Type: text/plain; charset=\"utf-8\"\r\n")
	b.WriteString("\r\n")
	b.WriteString(msg.Body)
	b.WriteString("\r\n")

	return b.Bytes()
}

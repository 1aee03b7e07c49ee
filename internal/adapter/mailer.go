package adapter

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"io"
	"os"
	"sync"
	"time"

	"github.com/MKhiriev/go-trust-keeper/internal/config"
	"github.com/MKhiriev/go-trust-keeper/internal/logger"
	"github.com/MKhiriev/go-trust-keeper/internal/utils"
)

const signInSubject = "Your sign-in link"

var signInBody = template.Must(template.New("sign-in").Parse(
	`<p>Use the link below to sign in. It works once and expires soon.</p>` +
		`<p><a href="{{.Link}}">Sign in</a></p>` +
		`<p>If you did not ask for this email you can ignore it.</p>`))

// mailMessage is the JSON body accepted by the mail relay.
type mailMessage struct {
	From    string `json:"from"`
	To      string `json:"to"`
	Subject string `json:"subject"`
	HTML    string `json:"html"`
}

type httpMailer struct {
	client *utils.HTTPClient
	from   string

	logger *logger.Logger
}

// NewMailer returns a relay-backed [Mailer] when cfg.RelayURL is set, and a
// console mailer printing links to stderr otherwise.
func NewMailer(cfg config.Mail, timeout time.Duration, logger *logger.Logger) Mailer {
	if cfg.RelayURL == "" {
		logger.Warn().Msg("no mail relay configured, sign-in links are printed to stderr")
		return newConsoleMailer(os.Stderr)
	}

	client := utils.NewHTTPClient(cfg.RelayURL, timeout)
	if cfg.APIKey != "" {
		client.SetAuthToken(cfg.APIKey)
	}

	return &httpMailer{client: client, from: cfg.From, logger: logger}
}

func (m *httpMailer) SendSignInLink(ctx context.Context, to, link string) error {
	body, err := renderSignIn(link)
	if err != nil {
		return err
	}

	resp, err := m.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(mailMessage{From: m.from, To: to, Subject: signInSubject, HTML: body}).
		Post("")
	if err != nil {
		return fmt.Errorf("mail relay request: %w", err)
	}

	return mapHTTPError(resp)
}

// consoleMailer is for local development only.
type consoleMailer struct {
	mu  sync.Mutex
	out io.Writer
}

func newConsoleMailer(out io.Writer) *consoleMailer {
	return &consoleMailer{out: out}
}

func (m *consoleMailer) SendSignInLink(_ context.Context, to, link string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	_, err := fmt.Fprintf(m.out, "sign-in link for %s: %s\n", to, link)
	return err
}

func renderSignIn(link string) (string, error) {
	var buf bytes.Buffer
	if err := signInBody.Execute(&buf, struct{ Link string }{Link: link}); err != nil {
		return "", fmt.Errorf("render sign-in mail: %w", err)
	}
	return buf.String(), nil
}

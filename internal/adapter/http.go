package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/MKhiriev/go-trust-keeper/internal/config"
	"github.com/MKhiriev/go-trust-keeper/internal/logger"
	"github.com/MKhiriev/go-trust-keeper/internal/utils"
	"github.com/MKhiriev/go-trust-keeper/models"
	"github.com/go-resty/resty/v2"
)

type httpServerAdapter struct {
	client *utils.HTTPClient

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs an HTTP/REST implementation of [ServerAdapter].
// It normalises and validates the base URL from cfg.HTTPAddress and
// configures the underlying HTTP client with the request timeout.
//
// Returns an error if cfg.HTTPAddress is empty or cannot be parsed as a
// valid URL.
func NewHTTPServerAdapter(cfg config.ClientAdapter, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(cfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	return &httpServerAdapter{
		client: utils.NewHTTPClient(baseURL, cfg.RequestTimeout),
		logger: logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// SetToken implements [ServerAdapter]. It stores token (whitespace-trimmed) for
// use in the Authorization header of all subsequent authenticated requests.
func (h *httpServerAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

// Token implements [ServerAdapter].
func (h *httpServerAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

func (h *httpServerAdapter) RequestSignInLink(ctx context.Context, req models.SignInRequest) error {
	resp, err := h.request(ctx).SetBody(req).Post("/api/auth/link")
	if err != nil {
		return fmt.Errorf("sign-in link request: %w", err)
	}
	return mapHTTPError(resp)
}

func (h *httpServerAdapter) VerifySignInLink(ctx context.Context, req models.SignInVerification) (models.Session, error) {
	resp, err := h.request(ctx).SetBody(req).Post("/api/auth/link/verify")
	if err != nil {
		return models.Session{}, fmt.Errorf("sign-in verify request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Session{}, err
	}

	return h.sessionFromResponse(resp)
}

func (h *httpServerAdapter) BeginRegistration(ctx context.Context) (models.RegistrationOptions, error) {
	var opts models.RegistrationOptions
	err := h.postJSON(ctx, "/api/passkey/register/options", nil, &opts)
	return opts, err
}

func (h *httpServerAdapter) CompleteRegistration(ctx context.Context, proof models.RegistrationProof) (models.Credential, error) {
	var credential models.Credential
	err := h.postJSON(ctx, "/api/passkey/register/verify", proof, &credential)
	return credential, err
}

func (h *httpServerAdapter) BeginAuthentication(ctx context.Context, claim models.AuthenticationClaim) (models.AuthenticationOptions, error) {
	var opts models.AuthenticationOptions
	err := h.postJSON(ctx, "/api/passkey/auth/options", claim, &opts)
	return opts, err
}

func (h *httpServerAdapter) CompleteAuthentication(ctx context.Context, proof models.AssertionProof) (models.Session, error) {
	resp, err := h.request(ctx).SetBody(proof).Post("/api/passkey/auth/verify")
	if err != nil {
		return models.Session{}, fmt.Errorf("authentication verify request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Session{}, err
	}

	return h.sessionFromResponse(resp)
}

func (h *httpServerAdapter) PasskeyStatus(ctx context.Context) (models.PasskeyStatus, error) {
	var status models.PasskeyStatus
	err := h.getJSON(ctx, "/api/passkey/status", &status)
	return status, err
}

func (h *httpServerAdapter) Me(ctx context.Context) (models.Subject, error) {
	var subject models.Subject
	err := h.getJSON(ctx, "/api/user/me", &subject)
	return subject, err
}

func (h *httpServerAdapter) postJSON(ctx context.Context, path string, body, out any) error {
	req := h.request(ctx)
	if body != nil {
		req.SetBody(body)
	}

	resp, err := req.Post(path)
	if err != nil {
		return fmt.Errorf("POST %s: %w", path, err)
	}
	return decodeResponse(resp, out)
}

func (h *httpServerAdapter) getJSON(ctx context.Context, path string, out any) error {
	resp, err := h.request(ctx).Get(path)
	if err != nil {
		return fmt.Errorf("GET %s: %w", path, err)
	}
	return decodeResponse(resp, out)
}

// request returns a JSON request carrying the bearer token when one is set.
func (h *httpServerAdapter) request(ctx context.Context) *resty.Request {
	req := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json")
	if token := h.Token(); token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	return req
}

// sessionFromResponse reads the bearer token from the Authorization header,
// learns the subject id from its claims and stores the token.
func (h *httpServerAdapter) sessionFromResponse(resp *resty.Response) (models.Session, error) {
	token, err := utils.ParseBearerToken(resp.Header().Get("Authorization"))
	if err != nil {
		return models.Session{}, fmt.Errorf("%w: %w", ErrNoTokenInResponse, err)
	}

	subjectID, err := utils.ParseSubjectFromJWT(token)
	if err != nil {
		return models.Session{}, fmt.Errorf("parse subject from token: %w", err)
	}

	h.SetToken(token)
	return models.Session{Token: token, SubjectID: subjectID, SavedAt: time.Now().UTC()}, nil
}

func decodeResponse(resp *resty.Response, out any) error {
	if err := mapHTTPError(resp); err != nil {
		return err
	}
	if out == nil || len(resp.Body()) == 0 {
		return nil
	}
	if err := json.Unmarshal(resp.Body(), out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

package adapter

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/aicubetechnology/qube-admin-cli-bmg/internal/config"
	"github.com/aicubetechnology/qube-admin-cli-bmg/internal/logger"
	"github.com/aicubetechnology/qube-admin-cli-bmg/internal/utils"
	"github.com/aicubetechnology/qube-admin-cli-bmg/models"
)

const requestIDHeader = "X-Request-ID"

type httpServerAdapter struct {
	client *utils.HTTPClient
	ids    *utils.UUIDGenerator

	// prefix is "<base>/api/<version>/".
	prefix string
	tokens TokenSource

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs an HTTP/REST implementation of [ServerAdapter].
// It normalises and validates the base URL from adapterCfg.BaseURL and
// configures the underlying HTTP client with the request timeout. tokens is
// read before every authenticated request; it may be nil.
//
// Returns an error if the base URL is empty or cannot be parsed.
func NewHTTPServerAdapter(adapterCfg config.ClientAdapter, tokens TokenSource, log *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid api base url: %w", err)
	}

	version := strings.Trim(adapterCfg.APIVersion, "/")
	if version == "" {
		return nil, fmt.Errorf("empty api version")
	}

	child := log.GetChildLogger("adapter")
	client := utils.NewHTTPClient(adapterCfg.RequestTimeout)
	client.SetLogger(child)

	return &httpServerAdapter{
		client: client,
		ids:    utils.NewUUIDGenerator(),
		prefix: baseURL + "/api/" + version + "/",
		tokens: tokens,
		logger: child,
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

func (h *httpServerAdapter) endpointURL(endpoint string) string {
	return h.prefix + strings.TrimLeft(endpoint, "/")
}

// Send implements [ServerAdapter].
func (h *httpServerAdapter) Send(ctx context.Context, req Request) (Payload, error) {
	if err := ctx.Err(); err != nil {
		return Payload{}, err
	}

	requestID := h.ids.Generate()
	r := h.client.R().
		SetContext(ctx).
		SetHeader(requestIDHeader, requestID)

	if req.RequiresAuth && h.tokens != nil {
		if token := h.tokens.Token(); token != "" {
			r.SetHeader("Authorization", "Bearer "+token)
		}
	}
	if len(req.Query) > 0 {
		r.SetQueryParams(req.Query)
	}
	if req.Body != nil {
		r.SetBody(req.Body)
	}

	started := time.Now()
	resp, err := r.Execute(req.Method, h.endpointURL(req.Endpoint))
	if err != nil {
		mapped := mapTransportError(ctx, err, req.Endpoint)
		h.logger.Error().
			Err(err).
			Str("request_id", requestID).
			Str("method", req.Method).
			Str("endpoint", req.Endpoint).
			Dur("elapsed", time.Since(started)).
			Msg("api request failed")
		return Payload{}, mapped
	}

	payload, err := mapResponse(resp, req.Endpoint)
	if err != nil {
		h.logger.Error().
			Err(err).
			Str("request_id", requestID).
			Str("method", req.Method).
			Str("endpoint", req.Endpoint).
			Int("status", resp.StatusCode()).
			Dur("elapsed", resp.Time()).
			Msg("api request rejected")
		return Payload{}, err
	}

	event := h.logger.Debug()
	if payload.Degraded() {
		event = h.logger.Warn()
	}
	event.
		Str("request_id", requestID).
		Str("method", req.Method).
		Str("endpoint", req.Endpoint).
		Int("status", resp.StatusCode()).
		Stringer("payload", payload.Kind).
		Dur("elapsed", resp.Time()).
		Msg("api request succeeded")

	return payload, nil
}

// Login implements [ServerAdapter]. It POSTs the credentials to
// POST auth/login without a bearer token.
func (h *httpServerAdapter) Login(ctx context.Context, creds models.Credentials) (models.Token, error) {
	payload, err := h.Send(ctx, Request{
		Method:   http.MethodPost,
		Endpoint: EndpointLogin,
		Body:     creds,
	})
	if err != nil {
		return models.Token{}, err
	}

	var token models.Token
	if err = decodePayload(payload, EndpointLogin, &token); err != nil {
		return models.Token{}, err
	}
	if strings.TrimSpace(token.AccessToken) == "" {
		return models.Token{}, malformed(EndpointLogin, "login response has no access_token", nil)
	}

	return token, nil
}

// Me implements [ServerAdapter]. GET users/me.
func (h *httpServerAdapter) Me(ctx context.Context) (models.Profile, error) {
	payload, err := h.Send(ctx, Request{
		Method:       http.MethodGet,
		Endpoint:     EndpointMe,
		RequiresAuth: true,
	})
	if err != nil {
		return models.Profile{}, err
	}

	var profile models.Profile
	if err = decodePayload(payload, EndpointMe, &profile); err != nil {
		return models.Profile{}, err
	}
	return profile, nil
}

// CreateUser implements [ServerAdapter]. POST users/.
func (h *httpServerAdapter) CreateUser(ctx context.Context, user models.NewUser) (models.User, error) {
	payload, err := h.Send(ctx, Request{
		Method:       http.MethodPost,
		Endpoint:     EndpointUsers,
		Body:         user,
		RequiresAuth: true,
	})
	if err != nil {
		return models.User{}, err
	}

	if payload.Kind != PayloadJSON {
		return models.User{Name: user.Name, Email: user.Email, CompanyID: user.CompanyID}, nil
	}

	var created models.User
	if err = decodePayload(payload, EndpointUsers, &created); err != nil {
		return models.User{}, err
	}
	return created, nil
}

// ChangePassword implements [ServerAdapter]. POST auth/change-password.
func (h *httpServerAdapter) ChangePassword(ctx context.Context, change models.PasswordChange) error {
	_, err := h.Send(ctx, Request{
		Method:       http.MethodPost,
		Endpoint:     EndpointChangePassword,
		Body:         change,
		RequiresAuth: true,
	})
	return err
}

// ListUsers implements [ServerAdapter]. GET admin/users[?company_id=].
func (h *httpServerAdapter) ListUsers(ctx context.Context, companyID models.ID) ([]models.User, error) {
	req := Request{
		Method:       http.MethodGet,
		Endpoint:     EndpointAdminUsers,
		RequiresAuth: true,
	}
	if !companyID.IsZero() {
		req.Query = map[string]string{"company_id": companyID.String()}
	}

	payload, err := h.Send(ctx, req)
	if err != nil {
		return nil, err
	}
	return normalizeUsers(payload, EndpointAdminUsers)
}

// ListWorkers implements [ServerAdapter]. GET agents/.
func (h *httpServerAdapter) ListWorkers(ctx context.Context) ([]models.Worker, error) {
	payload, err := h.Send(ctx, Request{
		Method:       http.MethodGet,
		Endpoint:     EndpointAgents,
		RequiresAuth: true,
	})
	if err != nil {
		return nil, err
	}
	return normalizeWorkers(payload, EndpointAgents)
}

// AssignWorker implements [ServerAdapter]. POST agents/{id}/assign.
func (h *httpServerAdapter) AssignWorker(ctx context.Context, workerID, userID models.ID) error {
	_, err := h.Send(ctx, Request{
		Method:       http.MethodPost,
		Endpoint:     fmt.Sprintf(endpointAgentAssign, url.PathEscape(workerID.String())),
		Body:         models.AssignRequest{UserID: userID},
		RequiresAuth: true,
	})
	return err
}

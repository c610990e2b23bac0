// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/aicubetechnology/qube-admin-cli-bmg/internal/config"
	"github.com/aicubetechnology/qube-admin-cli-bmg/internal/logger"
	"github.com/aicubetechnology/qube-admin-cli-bmg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type staticToken string

func (s staticToken) Token() string { return string(s) }

func newTestAdapter(t *testing.T, serverURL string, tokens TokenSource) *httpServerAdapter {
	t.Helper()
	return newTestAdapterWithTimeout(t, serverURL, tokens, 5*time.Second)
}

func newTestAdapterWithTimeout(t *testing.T, serverURL string, tokens TokenSource, timeout time.Duration) *httpServerAdapter {
	t.Helper()
	adapterCfg := config.ClientAdapter{BaseURL: serverURL, APIVersion: "v1", RequestTimeout: timeout}

	a, err := NewHTTPServerAdapter(adapterCfg, tokens, logger.Nop())
	require.NoError(t, err)
	return a.(*httpServerAdapter)
}

func respond(status int, body string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(status)
		_, _ = io.WriteString(w, body)
	}
}

// ── construction ────────────────────────────────────────────────────────────

func TestNewHTTPServerAdapter(t *testing.T) {
	tests := []struct {
		name       string
		baseURL    string
		version    string
		wantPrefix string
		wantErr    bool
	}{
		{name: "scheme and host", baseURL: "https://api.qube.aicube.ca", version: "v1", wantPrefix: "https://api.qube.aicube.ca/api/v1/"},
		{name: "trailing slash", baseURL: "https://api.qube.aicube.ca/", version: "/v1/", wantPrefix: "https://api.qube.aicube.ca/api/v1/"},
		{name: "missing scheme", baseURL: "localhost:8000", version: "v2", wantPrefix: "http://localhost:8000/api/v2/"},
		{name: "empty address", baseURL: "  ", version: "v1", wantErr: true},
		{name: "empty version", baseURL: "http://x", version: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, err := NewHTTPServerAdapter(config.ClientAdapter{
				BaseURL:        tt.baseURL,
				APIVersion:     tt.version,
				RequestTimeout: time.Second,
			}, nil, logger.Nop())
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantPrefix, a.(*httpServerAdapter).prefix)
		})
	}
}

// ── Send: request shape ─────────────────────────────────────────────────────

func TestSend_RequestShape(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/v1/admin/users", r.URL.Path)
		assert.Equal(t, "7", r.URL.Query().Get("company_id"))
		assert.Equal(t, "Bearer tok", r.Header.Get("Authorization"))
		assert.Equal(t, "application/json", r.Header.Get("Accept"))
		assert.NotEmpty(t, r.Header.Get(requestIDHeader))
		w.WriteHeader(http.StatusOK)
		_, _ = io.WriteString(w, `[]`)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL, staticToken("tok"))
	payload, err := a.Send(context.Background(), Request{
		Method:       http.MethodGet,
		Endpoint:     EndpointAdminUsers,
		Query:        map[string]string{"company_id": "7"},
		RequiresAuth: true,
	})

	require.NoError(t, err)
	assert.Equal(t, PayloadJSON, payload.Kind)
}

func TestSend_NoAuthorizationHeader(t *testing.T) {
	tests := []struct {
		name         string
		tokens       TokenSource
		requiresAuth bool
	}{
		{name: "unauthenticated request", tokens: staticToken("tok"), requiresAuth: false},
		{name: "no session token", tokens: staticToken(""), requiresAuth: true},
		{name: "no token source", tokens: nil, requiresAuth: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Empty(t, r.Header.Get("Authorization"))
				w.WriteHeader(http.StatusNoContent)
			}))
			defer srv.Close()

			a := newTestAdapter(t, srv.URL, tt.tokens)
			_, err := a.Send(context.Background(), Request{
				Method:       http.MethodGet,
				Endpoint:     EndpointMe,
				RequiresAuth: tt.requiresAuth,
			})
			require.NoError(t, err)
		})
	}
}

// ── Send: status classification ─────────────────────────────────────────────

func TestSend_SuccessPayloads(t *testing.T) {
	tests := []struct {
		name     string
		status   int
		body     string
		wantKind PayloadKind
		degraded bool
	}{
		{name: "200 json", status: http.StatusOK, body: `{"ok":true}`, wantKind: PayloadJSON},
		{name: "201 json", status: http.StatusCreated, body: `{"id":1}`, wantKind: PayloadJSON},
		{name: "204", status: http.StatusNoContent, wantKind: PayloadEmpty},
		{name: "200 empty body", status: http.StatusOK, body: "", wantKind: PayloadEmpty},
		{name: "200 text", status: http.StatusOK, body: "done", wantKind: PayloadText, degraded: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(respond(tt.status, tt.body))
			defer srv.Close()

			a := newTestAdapter(t, srv.URL, nil)
			payload, err := a.Send(context.Background(), Request{Method: http.MethodGet, Endpoint: EndpointMe})

			require.NoError(t, err)
			assert.Equal(t, tt.wantKind, payload.Kind)
			assert.Equal(t, tt.degraded, payload.Degraded())
		})
	}
}

func TestSend_StatusErrors(t *testing.T) {
	tests := []struct {
		name       string
		status     int
		body       string
		wantKind   ErrorKind
		wantErr    error
		wantDetail string
	}{
		{name: "401", status: http.StatusUnauthorized, body: `{"detail":"Invalid credentials"}`, wantKind: KindUnauthorized, wantErr: ErrUnauthorized, wantDetail: "Invalid credentials"},
		{name: "403", status: http.StatusForbidden, body: `{"message":"admins only"}`, wantKind: KindForbidden, wantErr: ErrForbidden, wantDetail: "admins only"},
		{name: "404", status: http.StatusNotFound, body: "", wantKind: KindNotFound, wantErr: ErrNotFound, wantDetail: unknownDetail},
		{name: "500", status: http.StatusInternalServerError, body: "boom", wantKind: KindServerError, wantErr: ErrServerError, wantDetail: "boom"},
		{name: "409 is unknown", status: http.StatusConflict, body: `{"detail":"exists"}`, wantKind: KindUnknownStatus, wantErr: ErrUnexpectedStatus, wantDetail: "exists"},
		{name: "202 is unknown", status: http.StatusAccepted, body: "", wantKind: KindUnknownStatus, wantErr: ErrUnexpectedStatus, wantDetail: unknownDetail},
		{name: "502 is unknown", status: http.StatusBadGateway, body: "bad gateway", wantKind: KindUnknownStatus, wantErr: ErrUnexpectedStatus, wantDetail: "bad gateway"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(respond(tt.status, tt.body))
			defer srv.Close()

			a := newTestAdapter(t, srv.URL, nil)
			_, err := a.Send(context.Background(), Request{Method: http.MethodGet, Endpoint: EndpointMe})

			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)

			apiErr, ok := AsAPIError(err)
			require.True(t, ok)
			assert.Equal(t, tt.wantKind, apiErr.Kind)
			assert.Equal(t, tt.status, apiErr.Status)
			assert.Equal(t, tt.wantDetail, apiErr.Detail)
			assert.Equal(t, EndpointMe, apiErr.Endpoint)
		})
	}
}

func TestSend_UnknownStatusMessage(t *testing.T) {
	srv := httptest.NewServer(respond(http.StatusTeapot, "short and stout"))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL, nil)
	_, err := a.Send(context.Background(), Request{Method: http.MethodGet, Endpoint: EndpointMe})

	require.Error(t, err)
	assert.Equal(t, "http 418: short and stout", err.Error())
}

func TestSend_ValidationIssues(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		wantIssues []models.ValidationIssue
	}{
		{
			name: "field list",
			body: `{"detail":[{"loc":["body","email"],"msg":"invalid email"},{"loc":["body","name"],"msg":"field required"}]}`,
			wantIssues: []models.ValidationIssue{
				{Field: "email", Message: "invalid email"},
				{Field: "name", Message: "field required"},
			},
		},
		{
			name:       "missing loc and msg",
			body:       `{"detail":[{}]}`,
			wantIssues: []models.ValidationIssue{{Field: unknownField, Message: unknownDetail}},
		},
		{
			name:       "string detail",
			body:       `{"detail":"email already registered"}`,
			wantIssues: []models.ValidationIssue{{Message: "email already registered"}},
		},
		{
			name:       "empty body",
			body:       "",
			wantIssues: []models.ValidationIssue{{Message: invalidRequest}},
		},
		{
			name:       "plain text",
			body:       "nope",
			wantIssues: []models.ValidationIssue{{Message: "nope"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(respond(http.StatusUnprocessableEntity, tt.body))
			defer srv.Close()

			a := newTestAdapter(t, srv.URL, nil)
			_, err := a.Send(context.Background(), Request{Method: http.MethodPost, Endpoint: EndpointUsers})

			require.ErrorIs(t, err, ErrValidation)
			apiErr, _ := AsAPIError(err)
			assert.Equal(t, tt.wantIssues, apiErr.Issues)
		})
	}
}

func TestSend_ValidationMessage(t *testing.T) {
	srv := httptest.NewServer(respond(http.StatusUnprocessableEntity,
		`{"detail":[{"loc":["body","email"],"msg":"invalid email"}]}`))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL, nil)
	_, err := a.Send(context.Background(), Request{Method: http.MethodPost, Endpoint: EndpointUsers})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "email: invalid email")
}

// ── Send: transport failures ────────────────────────────────────────────────

func TestSend_ConnectionFailure(t *testing.T) {
	srv := httptest.NewServer(respond(http.StatusOK, "{}"))
	url := srv.URL
	srv.Close()

	a := newTestAdapter(t, url, nil)
	_, err := a.Send(context.Background(), Request{Method: http.MethodGet, Endpoint: EndpointMe})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrConnectionFailure)
}

func TestSend_Timeout(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer srv.Close()
	defer close(release)

	a := newTestAdapterWithTimeout(t, srv.URL, nil, 50*time.Millisecond)
	_, err := a.Send(context.Background(), Request{Method: http.MethodGet, Endpoint: EndpointAgents})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrTimeout)
}

func TestSend_CancelledContext(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	a := newTestAdapter(t, srv.URL, nil)
	_, err := a.Send(ctx, Request{Method: http.MethodGet, Endpoint: EndpointMe})

	require.ErrorIs(t, err, context.Canceled)
	_, isAPIErr := AsAPIError(err)
	assert.False(t, isAPIErr)
	assert.Zero(t, hits.Load())
}

func TestSend_CancelledInFlight(t *testing.T) {
	started := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		close(started)
		<-r.Context().Done()
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		<-started
		cancel()
	}()

	a := newTestAdapter(t, srv.URL, nil)
	_, err := a.Send(ctx, Request{Method: http.MethodGet, Endpoint: EndpointMe})

	require.ErrorIs(t, err, context.Canceled)
	_, isAPIErr := AsAPIError(err)
	assert.False(t, isAPIErr)
}

// ── typed operations ────────────────────────────────────────────────────────

func TestLogin_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/v1/auth/login", r.URL.Path)
		assert.Empty(t, r.Header.Get("Authorization"))

		var creds models.Credentials
		require.NoError(t, json.NewDecoder(r.Body).Decode(&creds))
		assert.Equal(t, models.Credentials{Email: "ops@qube.io", Password: "s3cret!"}, creds)

		_, _ = io.WriteString(w, `{"access_token":"abc","token_type":"bearer"}`)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL, staticToken("stale"))
	token, err := a.Login(context.Background(), models.Credentials{Email: "ops@qube.io", Password: "s3cret!"})

	require.NoError(t, err)
	assert.Equal(t, models.Token{AccessToken: "abc", TokenType: "bearer"}, token)
}

func TestLogin_Failures(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		wantErr error
	}{
		{name: "invalid credentials", status: http.StatusUnauthorized, body: `{"detail":"Invalid credentials"}`, wantErr: ErrUnauthorized},
		{name: "no access token", status: http.StatusOK, body: `{"token_type":"bearer"}`, wantErr: ErrMalformedResponse},
		{name: "blank access token", status: http.StatusOK, body: `{"access_token":"  "}`, wantErr: ErrMalformedResponse},
		{name: "text body", status: http.StatusOK, body: "welcome", wantErr: ErrMalformedResponse},
		{name: "empty body", status: http.StatusOK, body: "", wantErr: ErrMalformedResponse},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(respond(tt.status, tt.body))
			defer srv.Close()

			a := newTestAdapter(t, srv.URL, nil)
			token, err := a.Login(context.Background(), models.Credentials{Email: "a@b.c", Password: "x"})

			assert.ErrorIs(t, err, tt.wantErr)
			assert.Empty(t, token.AccessToken)
		})
	}
}

func TestMe(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/users/me", r.URL.Path)
		assert.Equal(t, "Bearer abc", r.Header.Get("Authorization"))
		_, _ = io.WriteString(w, `{"id":1,"name":"Ops","email":"ops@qube.io","company_id":7,"company_name":"Qube","role":"admin"}`)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL, staticToken("abc"))
	profile, err := a.Me(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "Ops", profile.DisplayName())
	assert.Equal(t, "Qube", profile.DisplayCompany())
	assert.Equal(t, "7", profile.CompanyID.String())
}

func TestCreateUser(t *testing.T) {
	companyID := models.NewID("7")
	newUser := models.NewUser{Email: "new@qube.io", Name: "New", CompanyID: companyID, SendEmail: true}

	t.Run("json body", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "/api/v1/users/", r.URL.Path)

			var body map[string]any
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			assert.Equal(t, "new@qube.io", body["email"])
			assert.Equal(t, true, body["send_email"])
			assert.NotContains(t, body, "password")

			w.WriteHeader(http.StatusCreated)
			_, _ = io.WriteString(w, `{"id":42,"name":"New","email":"new@qube.io","company_id":"7"}`)
		}))
		defer srv.Close()

		a := newTestAdapter(t, srv.URL, staticToken("abc"))
		created, err := a.CreateUser(context.Background(), newUser)

		require.NoError(t, err)
		assert.Equal(t, "42", created.ID.String())
	})

	t.Run("no body", func(t *testing.T) {
		srv := httptest.NewServer(respond(http.StatusCreated, ""))
		defer srv.Close()

		a := newTestAdapter(t, srv.URL, staticToken("abc"))
		created, err := a.CreateUser(context.Background(), newUser)

		require.NoError(t, err)
		assert.True(t, created.ID.IsZero())
		assert.Equal(t, "new@qube.io", created.Email)
		assert.Equal(t, companyID, created.CompanyID)
	})
}

func TestChangePassword(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/auth/change-password", r.URL.Path)

		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, map[string]any{"current_password": "old-pass", "new_password": "new-password"}, body)

		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL, staticToken("abc"))
	err := a.ChangePassword(context.Background(), models.PasswordChange{
		CurrentPassword: "old-pass",
		NewPassword:     "new-password",
		Confirmation:    "new-password",
	})

	require.NoError(t, err)
}

func TestListUsers_CompanyScope(t *testing.T) {
	var query atomic.Value
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		query.Store(r.URL.RawQuery)
		_, _ = io.WriteString(w, `{"users":[{"id":1,"name":"A","email":"a@q.io"}]}`)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL, staticToken("abc"))

	users, err := a.ListUsers(context.Background(), models.NewID("7"))
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, "company_id=7", query.Load())

	_, err = a.ListUsers(context.Background(), models.ID{})
	require.NoError(t, err)
	assert.Equal(t, "", query.Load())
}

// TestListWorkers_Unauthorized covers an expired session: the call fails with
// the unauthorized kind and nothing is listed.
func TestListWorkers_Unauthorized(t *testing.T) {
	srv := httptest.NewServer(respond(http.StatusUnauthorized, `{"detail":"Token expired"}`))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL, staticToken("expired"))
	workers, err := a.ListWorkers(context.Background())

	require.ErrorIs(t, err, ErrUnauthorized)
	assert.Nil(t, workers)
	assert.Equal(t, "expired", a.tokens.Token())
}

func TestAssignWorker(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/v1/agents/w-9/assign", r.URL.Path)

		raw, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		assert.JSONEq(t, `{"user_id": 42}`, string(raw))

		_, _ = io.WriteString(w, `{"status":"ok"}`)
	}))
	defer srv.Close()

	var userID models.ID
	require.NoError(t, json.Unmarshal([]byte("42"), &userID))

	a := newTestAdapter(t, srv.URL, staticToken("abc"))
	err := a.AssignWorker(context.Background(), models.NewID("w-9"), userID)

	require.NoError(t, err)
	assert.EqualValues(t, 1, calls.Load())
}

func TestAssignWorker_NotFound(t *testing.T) {
	srv := httptest.NewServer(respond(http.StatusNotFound, `{"detail":"Agent not found"}`))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL, staticToken("abc"))
	err := a.AssignWorker(context.Background(), models.NewID("missing"), models.NewID("1"))

	require.ErrorIs(t, err, ErrNotFound)
	assert.Contains(t, err.Error(), "agents/missing/assign")
	assert.False(t, errors.Is(err, ErrUnauthorized))
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter is the request/response layer between the admin client and
// the Qube management API.
//
// [ServerAdapter.Send] dispatches one [Request] and classifies the outcome
// into exactly one of a [Payload] (success) or an error. HTTP and transport
// failures are returned as [*APIError] carrying an [ErrorKind]; every kind has
// a sentinel (for example [ErrUnauthorized] for 401, [ErrTimeout] for an
// exhausted wait) so callers can use [errors.Is]. Cancellation of the caller's
// context is returned unchanged and is never an [*APIError].
//
// The typed operations (Login, ListUsers, AssignWorker, ...) are built on
// Send. List endpoints are normalized per resource in normalize.go so that
// callers only ever see an ordered slice of entities or a failure.
package adapter

import (
	"context"

	"github.com/aicubetechnology/qube-admin-cli-bmg/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// Endpoints of the management API, relative to the versioned prefix.
const (
	EndpointLogin          = "auth/login"
	EndpointChangePassword = "auth/change-password"
	EndpointMe             = "users/me"
	EndpointUsers          = "users/"
	EndpointAdminUsers     = "admin/users"
	EndpointAgents         = "agents/"
	endpointAgentAssign    = "agents/%s/assign"
)

// Request describes one API call. It is passed by value and never modified
// after dispatch.
type Request struct {
	Method   string
	Endpoint string
	Query    map[string]string
	Body     any

	// RequiresAuth attaches the session bearer token when one exists. A
	// request that requires auth is still sent without a token when the
	// operator has not logged in.
	RequiresAuth bool
}

// TokenSource provides the bearer token of the current session. The adapter
// only reads it.
type TokenSource interface {
	Token() string
}

// ServerAdapter defines communication with the Qube management API.
type ServerAdapter interface {
	// Send dispatches req and classifies the outcome. It never retries.
	Send(ctx context.Context, req Request) (Payload, error)

	// Login posts the credentials without authentication. A success that
	// carries no access_token is reported as [ErrMalformedResponse].
	Login(ctx context.Context, creds models.Credentials) (models.Token, error)

	// Me fetches the profile of the authenticated operator.
	Me(ctx context.Context) (models.Profile, error)

	// CreateUser creates an account and returns the created user. When the
	// server confirms without a JSON body, the returned user is built from
	// the request.
	CreateUser(ctx context.Context, user models.NewUser) (models.User, error)

	// ChangePassword rotates the operator's own password.
	ChangePassword(ctx context.Context, change models.PasswordChange) error

	// ListUsers lists users, scoped to companyID when it is not zero.
	ListUsers(ctx context.Context, companyID models.ID) ([]models.User, error)

	// ListWorkers lists the workers visible to the operator.
	ListWorkers(ctx context.Context) ([]models.Worker, error)

	// AssignWorker grants userID access to workerID.
	AssignWorker(ctx context.Context, workerID, userID models.ID) error
}

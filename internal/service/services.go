package service

import (
	"github.com/aicubetechnology/qube-admin-cli-bmg/internal/adapter"
	"github.com/aicubetechnology/qube-admin-cli-bmg/internal/logger"
	"github.com/aicubetechnology/qube-admin-cli-bmg/internal/validators"
)

// ClientServices bundles the services of the admin client around one
// shared [Session].
type ClientServices struct {
	Session        *Session
	AuthService    AuthService
	AccountService AccountService
}

// NewClientServices wires the services. session must be the same value the
// adapter reads its bearer token from.
func NewClientServices(session *Session, serverAdapter adapter.ServerAdapter, logger *logger.Logger) *ClientServices {
	validator := validators.NewAccountValidator()

	return &ClientServices{
		Session:        session,
		AuthService:    NewAuthService(session, serverAdapter, validator, logger),
		AccountService: NewAccountService(session, serverAdapter, validator, logger),
	}
}

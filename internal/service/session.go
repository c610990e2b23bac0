package service

import "github.com/aicubetechnology/qube-admin-cli-bmg/models"

// Session is the authentication state of one process run. It starts empty,
// is populated once by [AuthService.Login] and is never refreshed.
//
// Only the auth service writes to a Session; everything else reads it.
// Session satisfies adapter.TokenSource.
type Session struct {
	token string

	profile    models.Profile
	hasProfile bool
}

func NewSession() *Session {
	return &Session{}
}

// Token returns the bearer token, or "" before a successful login.
func (s *Session) Token() string {
	return s.token
}

// LoggedIn reports whether a token has been acquired.
func (s *Session) LoggedIn() bool {
	return s.token != ""
}

// Profile returns the operator profile and whether it was fetched.
func (s *Session) Profile() (models.Profile, bool) {
	return s.profile, s.hasProfile
}

// CompanyID returns the operator's company, or the zero ID when unknown.
func (s *Session) CompanyID() models.ID {
	return s.profile.CompanyID
}

func (s *Session) authenticate(token string) {
	s.token = token
}

func (s *Session) setProfile(profile models.Profile) {
	s.profile = profile
	s.hasProfile = true
}

package models

// Token is the body of a successful POST auth/login response.
type Token struct {
	// AccessToken is the bearer credential attached to authenticated calls.
	AccessToken string `json:"access_token"`

	// TokenType is informational; the client always sends "Bearer".
	TokenType string `json:"token_type,omitempty"`
}

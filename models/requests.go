package models

// Credentials is the body of POST auth/login.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// NewUser is the body of POST users/.
type NewUser struct {
	Email     string `json:"email"`
	Name      string `json:"name"`
	CompanyID ID     `json:"company_id"`
	SendEmail bool   `json:"send_email"`

	// Password is optional; when empty the server generates a temporary one.
	Password string `json:"password,omitempty"`
}

// PasswordChange is the body of POST auth/change-password.
type PasswordChange struct {
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password"`

	// Confirmation is checked locally and never sent.
	Confirmation string `json:"-"`
}

// AssignRequest is the body of POST agents/{id}/assign.
type AssignRequest struct {
	UserID ID `json:"user_id"`
}

// ValidationIssue is a single field error extracted from a 422 response.
type ValidationIssue struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

package models

import "fmt"

// NotAvailable is rendered in place of entity fields the API did not send.
const NotAvailable = "N/A"

// User is an account managed through the admin API.
type User struct {
	ID        ID     `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	CompanyID ID     `json:"company_id"`
}

// Label renders the user as one line of a selection list.
func (u User) Label() string {
	return fmt.Sprintf("%s - %s (ID: %s)", orNotAvailable(u.Name), orNotAvailable(u.Email), orNotAvailable(u.ID.String()))
}

func orNotAvailable(v string) string {
	if v == "" {
		return NotAvailable
	}
	return v
}

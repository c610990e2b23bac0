package models

// UnknownValue is displayed for operator profile fields that could not be
// fetched after login.
const UnknownValue = "unknown"

// Profile describes the logged-in operator as returned by GET users/me.
type Profile struct {
	ID          ID     `json:"id"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	CompanyID   ID     `json:"company_id"`
	CompanyName string `json:"company_name"`
	Role        string `json:"role"`
}

// DisplayName returns the operator name or [UnknownValue].
func (p Profile) DisplayName() string { return orUnknown(p.Name) }

// DisplayEmail returns the operator email or [UnknownValue].
func (p Profile) DisplayEmail() string { return orUnknown(p.Email) }

// DisplayCompany returns the company name or [UnknownValue].
func (p Profile) DisplayCompany() string { return orUnknown(p.CompanyName) }

// DisplayRole returns the operator role or [UnknownValue].
func (p Profile) DisplayRole() string { return orUnknown(p.Role) }

func orUnknown(v string) string {
	if v == "" {
		return UnknownValue
	}
	return v
}

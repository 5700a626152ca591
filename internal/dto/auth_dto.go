package dto

// AuthenticatedUser is the identity returned by a successful callback
// exchange, used to mint the session cookie.
type AuthenticatedUser struct {
	Email          string `json:"email"`
	Name           string `json:"name"`
	OrganizationId string `json:"organization_id"`
}

type AuthStatusUser struct {
	Email          string `json:"email"`
	OrganizationId string `json:"organization_id"`
}

type AuthStatusResponse struct {
	Authenticated bool           `json:"authenticated"`
	User          AuthStatusUser `json:"user"`
}

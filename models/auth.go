package models

// AuthenticatedUser is the caller identity attached to a request by the
// authentication middleware. Handlers receive it instead of poking at
// raw token claims.
type AuthenticatedUser struct {
	ID     UserID
	Email  string
	Issuer string
	JTI    string
}

// UserAndCredentials is returned by register, login and refresh.
type UserAndCredentials struct {
	User    User   `json:"user"`
	Token   string `json:"token"`
	Refresh string `json:"refresh"`
}

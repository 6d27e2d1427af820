package model

// User represents a user account in the database. Token holds the current
// session token; it is empty until the first successful login and is
// replaced wholesale on every subsequent login.
type User struct {
	ID           int64
	Username     string
	PasswordHash string
	Token        string
}

// CredentialsRequest represents a registration or login request body.
type CredentialsRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// AuthResponse represents a successful login response.
type AuthResponse struct {
	Token    string `json:"token"`
	Username string `json:"username"`
}

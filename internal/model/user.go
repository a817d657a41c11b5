package model

// User represents a registered account row in the users table.
// The password hash is an opaque digest and never leaves the server.
type User struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string
}

// RegisterRequest represents a user registration request.
type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest represents a user login request.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthResponse is returned by both register and login. Token is the signed
// session token the client must present on state-mutating routes.
type AuthResponse struct {
	Success bool   `json:"success"`
	Token   string `json:"token"`
	ID      string `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
}

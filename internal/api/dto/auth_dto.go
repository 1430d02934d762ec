package dto

// RegisterRequest payload for new accounts.
type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest payload for login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthUser is the identity slice returned from auth endpoints.
type AuthUser struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

// AuthResponse standard response for register/login.
type AuthResponse struct {
	Success bool     `json:"success"`
	Msg     string   `json:"msg"`
	Token   string   `json:"token"`
	User    AuthUser `json:"user"`
}

package models

// MessageResponse is the generic `{"message": "..."}` body used for
// confirmations and for every error response.
type MessageResponse struct {
	Message string `json:"message"`
}

// SignupResponse is returned by POST /api/auth/signup.
type SignupResponse struct {
	Message string `json:"message"`
	Email   string `json:"email"`
}

// AuthResult is what the orchestrator hands back after a successful OTP
// verification or password login.
type AuthResult struct {
	Token Token
	User  PublicIdentity
}

// AuthResponse is returned by POST /api/auth/verify-otp and
// POST /api/auth/login.
type AuthResponse struct {
	Message string         `json:"message"`
	Token   string         `json:"token"`
	User    PublicIdentity `json:"user"`
}

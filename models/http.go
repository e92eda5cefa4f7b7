package models

// SignupRequest is the body of POST /api/auth/signup.
type SignupRequest struct {
	Name     string `json:"name" validate:"required,min=2"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6,max=72"`
}

// VerifyOTPRequest is the body of POST /api/auth/verify-otp.
type VerifyOTPRequest struct {
	Email string `json:"email" validate:"required,email"`
	OTP   string `json:"otp" validate:"required,len=6,number"`
}

// LoginRequest is the body of POST /api/auth/login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// ResendOTPRequest is the body of POST /api/auth/resend-otp.
type ResendOTPRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// NoteInput is the body of POST /api/notes and PUT /api/notes/{id}.
// A nil Category leaves the stored category untouched on update.
type NoteInput struct {
	Title    string  `json:"title" validate:"required"`
	Content  string  `json:"content" validate:"required"`
	Category *string `json:"category,omitempty"`
}

// Update converts the input into a partial note update.
func (n NoteInput) Update() NoteUpdate {
	return NoteUpdate{
		Title:    &n.Title,
		Content:  &n.Content,
		Category: n.Category,
	}
}

package http

import (
	"net/http"

	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/internal/service"
	"github.com/MKhiriev/go-note-keeper/internal/utils"
	"github.com/MKhiriev/go-note-keeper/models"
)

const (
	msgSignupSucceeded = "User created successfully. Please verify your email."
	msgEmailVerified   = "Email verified successfully"
	msgLoginSucceeded  = "Login successful"
	msgOTPResent       = "New OTP sent successfully"
)

func (h *Handler) signup(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.SignupRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, err, nil)
		return
	}

	email, err := h.services.AuthService.Signup(ctx, req)
	if err != nil {
		writeError(w, r, err, nil)
		return
	}

	log.Info().Str("email", email).Msg("identity registered")
	utils.WriteJSON(w, models.SignupResponse{Message: msgSignupSucceeded, Email: email}, http.StatusCreated)
}

func (h *Handler) verifyOTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.VerifyOTPRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, err, nil)
		return
	}

	result, err := h.services.AuthService.VerifyOTP(ctx, req)
	if err != nil {
		writeError(w, r, err, nil)
		return
	}

	log.Info().Str("id", result.User.ID).Msg("identity verified")
	writeAuthResponse(w, msgEmailVerified, result)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.LoginRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, err, nil)
		return
	}

	result, err := h.services.AuthService.Login(ctx, req)
	if err != nil {
		writeError(w, r, err, nil)
		return
	}

	log.Debug().Str("id", result.User.ID).Msg("user successfully logged in")
	writeAuthResponse(w, msgLoginSucceeded, result)
}

func (h *Handler) resendOTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req models.ResendOTPRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, err, nil)
		return
	}

	if err := h.services.AuthService.ResendOTP(ctx, req); err != nil {
		writeError(w, r, err, map[error]string{service.ErrUpstream: "Failed to resend OTP"})
		return
	}

	utils.WriteMessage(w, msgOTPResent, http.StatusOK)
}

// federatedLogin is the placeholder for third-party sign-in.
func (h *Handler) federatedLogin(w http.ResponseWriter, r *http.Request) {
	_, err := h.services.AuthService.FederatedLogin(r.Context())
	writeError(w, r, err, nil)
}

func (h *Handler) me(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	identityID, ok := utils.GetIdentityIDFromContext(ctx)
	if !ok {
		writeError(w, r, service.ErrUnauthorized, nil)
		return
	}

	profile, err := h.services.AuthService.Profile(ctx, identityID)
	if err != nil {
		writeError(w, r, err, map[error]string{service.ErrUpstream: "Failed to get user profile"})
		return
	}

	utils.WriteJSON(w, profile, http.StatusOK)
}

func writeAuthResponse(w http.ResponseWriter, message string, result models.AuthResult) {
	utils.WriteJSON(w, models.AuthResponse{
		Message: message,
		Token:   result.Token.SignedString,
		User:    result.User,
	}, http.StatusOK)
}

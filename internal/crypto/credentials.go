// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"strings"
	"time"

	"github.com/MKhiriev/go-note-keeper/internal/config"
	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/internal/utils"
	"github.com/MKhiriev/go-note-keeper/models"
	"golang.org/x/crypto/bcrypt"
)

const (
	otpMin   = 100000
	otpRange = 900000
)

// credentialService is the private implementation of [CredentialService].
type credentialService struct {
	hashCost      int
	signKey       string
	issuer        string
	tokenDuration time.Duration

	logger *logger.Logger
}

// NewCredentialService constructs a [CredentialService] from the application
// settings. An empty signing key is replaced with
// [config.InsecureDefaultSignKey] and a warning is logged; config validation
// rejects that case in production.
func NewCredentialService(cfg config.App, log *logger.Logger) CredentialService {
	signKey := cfg.TokenSignKey
	if signKey == "" {
		log.Warn().Msg("APP_TOKEN_SIGN_KEY is not set, falling back to an insecure default signing key")
		signKey = config.InsecureDefaultSignKey
	}

	return &credentialService{
		hashCost:      cfg.PasswordHashCost,
		signKey:       signKey,
		issuer:        cfg.TokenIssuer,
		tokenDuration: cfg.TokenDuration,
		logger:        log,
	}
}

// HashPassword implements [CredentialService].
func (c *credentialService) HashPassword(plain string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), c.hashCost)
	if err != nil {
		return "", fmt.Errorf("error hashing password: %w", err)
	}

	return string(hash), nil
}

// VerifyPassword implements [CredentialService].
func (c *credentialService) VerifyPassword(plain, hash string) bool {
	if hash == "" {
		return false
	}

	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain))
	if err != nil && !errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		c.logger.Debug().Err(err).Msg("stored password hash is malformed")
	}

	return err == nil
}

// IssueSession implements [CredentialService].
func (c *credentialService) IssueSession(identity models.Identity) (models.Token, error) {
	session := models.Session{
		IdentityID: identity.ID,
		Email:      strings.ToLower(identity.Email),
	}

	token, err := utils.GenerateJWTToken(c.issuer, session, c.tokenDuration, c.signKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("error issuing session: %w", err)
	}

	return token, nil
}

// VerifySession implements [CredentialService].
func (c *credentialService) VerifySession(token string) (models.Session, bool) {
	parsed, err := utils.ValidateAndParseJWTToken(token, c.signKey, c.issuer)
	if err != nil {
		c.logger.Debug().Err(err).Msg("session token rejected")
		return models.Session{}, false
	}

	return parsed.Session, true
}

// GenerateOTP implements [CredentialService].
func (c *credentialService) GenerateOTP() string {
	n, err := rand.Int(rand.Reader, big.NewInt(otpRange))
	if err != nil {
		// crypto/rand only fails when the OS entropy source is broken
		panic(fmt.Sprintf("crypto/rand failure: %v", err))
	}

	return fmt.Sprintf("%06d", n.Int64()+otpMin)
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Identity is a registered user account.
// Sensitive fields must never be exposed outside trusted boundaries; use
// [Identity.Public] to build the projection returned to clients.
type Identity struct {
	// ID is the opaque identifier assigned by the storage backend.
	ID string `json:"id"`

	// Name is the display name of the user.
	Name string `json:"name"`

	// Email is the lowercased, case-insensitively unique address of the user.
	Email string `json:"email"`

	// PasswordHash is the bcrypt hash of the password. Empty for
	// federated-only accounts.
	PasswordHash string `json:"-"`

	// FederatedID is the identifier issued by an external identity provider.
	// Empty when the account was never linked.
	FederatedID string `json:"-"`

	// IsVerified reports whether the email address was confirmed with an OTP.
	IsVerified bool `json:"isVerified"`

	// CreatedAt is the moment the account was registered.
	CreatedAt time.Time `json:"createdAt"`
}

// HasPassword reports whether the identity can authenticate with a password.
func (i Identity) HasPassword() bool {
	return i.PasswordHash != ""
}

// Public returns the client-facing projection of the identity.
func (i Identity) Public() PublicIdentity {
	return PublicIdentity{
		ID:         i.ID,
		Name:       i.Name,
		Email:      i.Email,
		IsVerified: i.IsVerified,
	}
}

// PublicIdentity is the identity projection returned by the API.
// It never carries credentials.
type PublicIdentity struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	IsVerified bool   `json:"isVerified"`
}

// IdentityUpdate describes a partial identity update.
// Only non-nil fields are applied.
type IdentityUpdate struct {
	Name         *string
	PasswordHash *string
	FederatedID  *string
	IsVerified   *bool
}

// IsEmpty reports whether the update changes nothing.
func (u IdentityUpdate) IsEmpty() bool {
	return u.Name == nil && u.PasswordHash == nil && u.FederatedID == nil && u.IsVerified == nil
}

// Apply copies the non-nil fields of u onto identity and returns the result.
func (u IdentityUpdate) Apply(identity Identity) Identity {
	if u.Name != nil {
		identity.Name = *u.Name
	}
	if u.PasswordHash != nil {
		identity.PasswordHash = *u.PasswordHash
	}
	if u.FederatedID != nil {
		identity.FederatedID = *u.FederatedID
	}
	if u.IsVerified != nil {
		identity.IsVerified = *u.IsVerified
	}
	return identity
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// OTPRecord is a one-time passcode issued for an email address.
//
// A record is matchable only while it is unconsumed and unexpired. Records
// are flagged as consumed on successful verification and removed only by the
// expiry sweep.
type OTPRecord struct {
	ID        string
	Email     string
	Code      string
	ExpiresAt time.Time
	Consumed  bool
	CreatedAt time.Time
}

// IsActiveAt reports whether the record can still be used at the given moment.
func (o OTPRecord) IsActiveAt(now time.Time) bool {
	return !o.Consumed && o.ExpiresAt.After(now)
}

// Matches reports whether the record was issued for email with the given code.
// email is expected to be normalised already.
func (o OTPRecord) Matches(email, code string) bool {
	return o.Email == email && o.Code == code
}

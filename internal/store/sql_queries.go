package store

import (
	"fmt"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/MKhiriev/go-note-keeper/models"
)

const (
	identitiesTable = "identities"
	notesTable      = "notes"
	otpTable        = "otp_records"
)

var (
	psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

	identityColumns = []string{"id", "name", "email", "password_hash", "federated_id", "is_verified", "created_at"}
	noteColumns     = []string{"id", "title", "content", "category", "user_id", "created_at", "updated_at"}
	otpColumns      = []string{"id", "email", "code", "expires_at", "consumed", "created_at"}
)

func returning(columns []string) string {
	return "RETURNING " + strings.Join(columns, ", ")
}

func buildQuery(b sq.Sqlizer) (string, []any, error) {
	query, args, err := b.ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

// ── identities ───────────────────────────────────────────────────────────────

func buildSelectIdentityQuery(where sq.Sqlizer) (string, []any, error) {
	return buildQuery(psql.Select(identityColumns...).From(identitiesTable).Where(where).Limit(1))
}

func buildInsertIdentityQuery(identity models.Identity, now time.Time) (string, []any, error) {
	return buildQuery(psql.Insert(identitiesTable).
		Columns("name", "email", "password_hash", "federated_id", "is_verified", "created_at").
		Values(identity.Name, identity.Email, identity.PasswordHash, identity.FederatedID, identity.IsVerified, now).
		Suffix(returning(identityColumns)))
}

func buildUpdateIdentityQuery(id int64, update models.IdentityUpdate) (string, []any, error) {
	set := make(map[string]any, 4)
	if update.Name != nil {
		set["name"] = *update.Name
	}
	if update.PasswordHash != nil {
		set["password_hash"] = *update.PasswordHash
	}
	if update.FederatedID != nil {
		set["federated_id"] = *update.FederatedID
	}
	if update.IsVerified != nil {
		set["is_verified"] = *update.IsVerified
	}

	return buildQuery(psql.Update(identitiesTable).
		SetMap(set).
		Where(sq.Eq{"id": id}).
		Suffix(returning(identityColumns)))
}

// ── notes ────────────────────────────────────────────────────────────────────

func buildListNotesQuery(ownerID int64) (string, []any, error) {
	return buildQuery(psql.Select(noteColumns...).
		From(notesTable).
		Where(sq.Eq{"user_id": ownerID}).
		OrderBy("updated_at DESC", "id DESC"))
}

func buildSelectNoteQuery(id int64) (string, []any, error) {
	return buildQuery(psql.Select(noteColumns...).From(notesTable).Where(sq.Eq{"id": id}))
}

func buildInsertNoteQuery(note models.Note, ownerID int64, now time.Time) (string, []any, error) {
	return buildQuery(psql.Insert(notesTable).
		Columns("title", "content", "category", "user_id", "created_at", "updated_at").
		Values(note.Title, note.Content, note.Category, ownerID, now, now).
		Suffix(returning(noteColumns)))
}

func buildUpdateNoteQuery(id int64, update models.NoteUpdate, now time.Time) (string, []any, error) {
	b := psql.Update(notesTable)
	if update.Title != nil {
		b = b.Set("title", *update.Title)
	}
	if update.Content != nil {
		b = b.Set("content", *update.Content)
	}
	if update.Category != nil {
		b = b.Set("category", *update.Category)
	}

	return buildQuery(b.
		Set("updated_at", sq.Expr("GREATEST(?::timestamptz, created_at)", now)).
		Where(sq.Eq{"id": id}).
		Suffix(returning(noteColumns)))
}

func buildDeleteNoteQuery(id int64) (string, []any, error) {
	return buildQuery(psql.Delete(notesTable).Where(sq.Eq{"id": id}))
}

// ── one-time codes ───────────────────────────────────────────────────────────

func buildInsertOTPQuery(record models.OTPRecord, now time.Time) (string, []any, error) {
	return buildQuery(psql.Insert(otpTable).
		Columns("email", "code", "expires_at", "consumed", "created_at").
		Values(record.Email, record.Code, record.ExpiresAt, record.Consumed, now).
		Suffix(returning(otpColumns)))
}

func buildFindActiveOTPQuery(email, code string, now time.Time) (string, []any, error) {
	return buildQuery(psql.Select(otpColumns...).
		From(otpTable).
		Where(sq.Eq{"email": email, "code": code, "consumed": false}).
		Where(sq.Gt{"expires_at": now}).
		OrderBy("created_at DESC").
		Limit(1))
}

// buildConsumeOTPQuery only matches an unconsumed record, so concurrent
// consumers of one code see exactly one affected row between them.
func buildConsumeOTPQuery(id int64) (string, []any, error) {
	return buildQuery(psql.Update(otpTable).
		Set("consumed", true).
		Where(sq.Eq{"id": id}).
		Where(sq.Eq{"consumed": false}))
}

func buildPurgeExpiredOTPQuery(now time.Time) (string, []any, error) {
	return buildQuery(psql.Delete(otpTable).Where(sq.LtOrEq{"expires_at": now}))
}

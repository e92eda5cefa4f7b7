package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/models"
)

// otpRepository is the PostgreSQL-backed implementation of [OTPRepository]
// over the "otp_records" table. PostgreSQL has no TTL index, expired rows are
// removed by PurgeExpired from the sweep worker.
type otpRepository struct {
	db     *DB
	logger *logger.Logger
	now    func() time.Time
}

// NewOTPRepository constructs an [OTPRepository] backed by the provided
// database connection and logger.
func NewOTPRepository(db *DB, logger *logger.Logger) OTPRepository {
	logger.Debug().Msg("creating otp repository")
	return &otpRepository{
		db:     db,
		logger: logger,
		now:    utcNow,
	}
}

func scanOTP(row rowScanner) (models.OTPRecord, error) {
	var (
		record models.OTPRecord
		id     int64
	)

	err := row.Scan(&id, &record.Email, &record.Code, &record.ExpiresAt, &record.Consumed, &record.CreatedAt)
	if err != nil {
		return models.OTPRecord{}, err
	}
	record.ID = formatID(id)

	return record, nil
}

func (r *otpRepository) Create(ctx context.Context, record models.OTPRecord) (models.OTPRecord, error) {
	log := logger.FromContext(ctx)
	record.Email = normalizeEmail(record.Email)

	query, args, err := buildInsertOTPQuery(record, r.now())
	if err != nil {
		log.Err(err).Str("func", "*otpRepository.Create").Msg("failed to create query")
		return models.OTPRecord{}, err
	}

	created, err := scanOTP(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		log.Err(err).Str("func", "*otpRepository.Create").
			Bool("retryable", r.db.isRetryable(err)).
			Msg("error inserting otp record")
		return models.OTPRecord{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return created, nil
}

func (r *otpRepository) FindActive(ctx context.Context, email, code string) (models.OTPRecord, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildFindActiveOTPQuery(normalizeEmail(email), code, r.now())
	if err != nil {
		log.Err(err).Str("func", "*otpRepository.FindActive").Msg("failed to create query")
		return models.OTPRecord{}, err
	}

	record, err := scanOTP(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.OTPRecord{}, ErrOTPNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*otpRepository.FindActive").
			Bool("retryable", r.db.isRetryable(err)).
			Msg("error selecting otp record")
		return models.OTPRecord{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return record, nil
}

func (r *otpRepository) MarkConsumed(ctx context.Context, id string) error {
	log := logger.FromContext(ctx)

	key, ok := parseID(id)
	if !ok {
		return ErrOTPNotFound
	}

	query, args, err := buildConsumeOTPQuery(key)
	if err != nil {
		log.Err(err).Str("func", "*otpRepository.MarkConsumed").Msg("failed to create query")
		return err
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*otpRepository.MarkConsumed").
			Str("otp_id", id).
			Bool("retryable", r.db.isRetryable(err)).
			Msg("error consuming otp record")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrOTPNotFound
	}

	return nil
}

func (r *otpRepository) PurgeExpired(ctx context.Context) (int64, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildPurgeExpiredOTPQuery(r.now())
	if err != nil {
		log.Err(err).Str("func", "*otpRepository.PurgeExpired").Msg("failed to create query")
		return 0, err
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*otpRepository.PurgeExpired").
			Bool("retryable", r.db.isRetryable(err)).
			Msg("error purging expired otp records")
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	purged, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return purged, nil
}

package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/lib/pq"

	"github.com/Ambarubale6061/Event-Management-API/internal/domain"
)

// uniqueViolation is the Postgres error code raised when the
// (user_id, event_id) unique constraint rejects an insert.
const uniqueViolation = "23505"

type registrationRepository struct {
	DB *sql.DB
}

func NewRegistrationRepository(db *sql.DB) domain.RegistrationRepository {
	return &registrationRepository{
		DB: db,
	}
}

// Register inserts a registration while holding a row lock on the event.
// Locking the event row serializes concurrent registrations for the same
// event, so the capacity check and the insert are atomic; the unique
// constraint on (user_id, event_id) backstops the duplicate check.
func (r *registrationRepository) Register(ctx context.Context, eventID int64, userID string) (*domain.Registration, error) {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	var capacity int
	err = tx.QueryRowContext(ctx, `SELECT capacity FROM events WHERE id = $1 FOR UPDATE`, eventID).
		Scan(&capacity)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}

	var exists bool
	err = tx.QueryRowContext(ctx,
		`SELECT EXISTS (SELECT 1 FROM registrations WHERE user_id = $1 AND event_id = $2)`,
		userID, eventID).Scan(&exists)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, domain.ErrAlreadyRegistered
	}

	var count int
	err = tx.QueryRowContext(ctx, `SELECT COUNT(*) FROM registrations WHERE event_id = $1`, eventID).
		Scan(&count)
	if err != nil {
		return nil, err
	}
	if count >= capacity {
		return nil, domain.ErrEventFull
	}

	reg := &domain.Registration{UserID: userID, EventID: eventID}
	err = tx.QueryRowContext(ctx,
		`INSERT INTO registrations (user_id, event_id) VALUES ($1, $2) RETURNING id`,
		userID, eventID).Scan(&reg.ID)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && string(pqErr.Code) == uniqueViolation {
			return nil, domain.ErrAlreadyRegistered
		}
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return reg, nil
}

func (r *registrationRepository) Delete(ctx context.Context, eventID int64, userID string) error {
	query := `DELETE FROM registrations WHERE event_id = $1 AND user_id = $2`
	result, err := r.DB.ExecContext(ctx, query, eventID, userID)
	if err != nil {
		return err
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *registrationRepository) CountByEventID(ctx context.Context, eventID int64) (int, error) {
	var count int
	err := r.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM registrations WHERE event_id = $1`, eventID).
		Scan(&count)
	if err != nil {
		return 0, err
	}
	return count, nil
}

package postgres

import (
	"database/sql"
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"

	apperrors "github.com/Grenders/transport-api/internal/pkg/errors"
)

const uniqueViolationCode = "23505"

// errNoRows lets Exec-based updates reuse the not-found translation.
func errNoRows() error { return sql.ErrNoRows }

// Named unique constraints from the schema, used to attribute conflicts.
const (
	constraintStationName   = "stations_name_key"
	constraintTrainTypeName = "train_types_name_key"
	constraintRoutePair     = "routes_source_id_destination_id_key"
	constraintUserEmail     = "users_email_key"
	constraintResetToken    = "password_reset_tokens_token_key"
	constraintTicketSeat    = "tickets_journey_id_cargo_seat_key"
)

// uniqueViolation returns the violated constraint name if err is a
// storage-level unique violation. Both drivers are handled: pgx is used by
// the service, lib/pq by the test helpers.
func uniqueViolation(err error) (string, bool) {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
		return pgErr.ConstraintName, true
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) && string(pqErr.Code) == uniqueViolationCode {
		return pqErr.Constraint, true
	}

	return "", false
}

// translateError maps driver errors onto the AppError taxonomy. A unique
// violation on the ticket seat index is the authoritative double-booking
// guard under concurrent submissions.
func translateError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, sql.ErrNoRows) {
		return apperrors.ErrNotFound
	}

	if constraint, ok := uniqueViolation(err); ok {
		switch constraint {
		case constraintTicketSeat:
			return apperrors.ErrDuplicateSeat
		case constraintStationName:
			return apperrors.ErrConflict.WithField("name", "station with this name already exists")
		case constraintTrainTypeName:
			return apperrors.ErrConflict.WithField("name", "train type with this name already exists")
		case constraintRoutePair:
			return apperrors.ErrConflict.WithField("destination", "route with this source and destination already exists")
		case constraintUserEmail:
			return apperrors.ErrConflict.WithField("email", "user with this email already exists")
		default:
			return apperrors.ErrConflict
		}
	}

	return apperrors.ErrDatabaseError
}

package attendance

import (
	"errors"
	"strings"

	attendanceerrors "go-presensi/internal/attendance/errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// uq_attendance_open_session is a partial unique index on (user_id, date)
// filtered to clock_out IS NULL. It closes the race two devices have when
// both pass the eligibility check before either insert lands.
const openSessionConstraint = "uq_attendance_open_session"

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if pgErr.Code == "23505" && pgErr.ConstraintName == openSessionConstraint {
			return attendanceerrors.ErrSessionAlreadyOpen
		}
	}

	errMsg := strings.ToLower(err.Error())
	if strings.Contains(errMsg, "duplicate key value") && strings.Contains(errMsg, openSessionConstraint) {
		return attendanceerrors.ErrSessionAlreadyOpen
	}

	return err
}

package attendanceerrors

import (
	"net/http"

	"go-presensi/internal/shared/apperror"
)

var (
	ErrInvalidUserID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid user id",
		http.StatusBadRequest,
	)
	ErrSessionAlreadyOpen = apperror.New(
		apperror.CodeConflict,
		"an attendance session is already open for today",
		http.StatusConflict,
	)
	ErrNoOpenSession = apperror.New(
		apperror.CodeInvalidState,
		"no open attendance session to clock out",
		http.StatusBadRequest,
	)
	ErrRecordNotFound = apperror.New(
		apperror.CodeNotFound,
		"attendance record not found",
		http.StatusNotFound,
	)
)

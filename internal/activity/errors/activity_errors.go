package activityerrors

import (
	"net/http"

	"go-presensi/internal/shared/apperror"
)

var ErrInvalidUserID = apperror.New(apperror.CodeInvalidInput, "User ID tidak valid", http.StatusBadRequest)

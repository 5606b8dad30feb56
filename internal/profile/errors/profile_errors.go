package profileerrors

import (
	"net/http"

	"go-presensi/internal/shared/apperror"
)

var (
	ErrInvalidUserID = apperror.New(apperror.CodeInvalidInput, "User ID tidak valid", http.StatusBadRequest)

	ErrProfileNotFound = apperror.New(apperror.CodeNotFound, "Profil tidak ditemukan", http.StatusNotFound)
)

package slikerrors

import (
	"net/http"

	"go-presensi/internal/shared/apperror"
)

var (
	ErrInvalidUserID = apperror.New(apperror.CodeInvalidInput, "User ID tidak valid", http.StatusBadRequest)

	ErrInvalidNIK = apperror.New(apperror.CodeInvalidInput, "NIK harus 16 digit angka", http.StatusBadRequest)

	ErrDuplicateNIK = apperror.New(apperror.CodeConflict, "NIK sudah pernah didaftarkan", http.StatusConflict)
)

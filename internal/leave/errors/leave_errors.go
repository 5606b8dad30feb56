package leaveerrors

import (
	"net/http"

	"go-presensi/internal/shared/apperror"
)

var (
	ErrInvalidUserID = apperror.New(apperror.CodeInvalidInput, "User ID tidak valid", http.StatusBadRequest)

	ErrUnknownCategory = apperror.New(apperror.CodeInvalidInput, "Kategori pengajuan tidak dikenal", http.StatusBadRequest)

	ErrDateRangeRequired = apperror.New(apperror.CodeInvalidInput, "Tanggal mulai wajib diisi untuk kategori ini", http.StatusBadRequest)

	ErrInvalidDateRange = apperror.New(apperror.CodeInvalidInput, "Tanggal selesai tidak boleh sebelum tanggal mulai", http.StatusBadRequest)
)

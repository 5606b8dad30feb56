package slik

import (
	"context"
	"errors"
	"regexp"
	"strings"

	slikerrors "go-presensi/internal/slik/errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"
)

var nikPattern = regexp.MustCompile(`^\d{16}$`)

//go:generate mockgen -source=slik_service.go -destination=mock/slik_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, userID string, req CreateSlikRequest) (SlikResponse, error)
	List(ctx context.Context, userID string) ([]SlikResponse, error)
}

type service struct {
	repo   Repository
	logger *zap.Logger
}

func NewService(repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("slik.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("slik.service")
	}
	return &service{repo: repo, logger: l}
}

func (s *service) Create(ctx context.Context, userID string, req CreateSlikRequest) (SlikResponse, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return SlikResponse{}, slikerrors.ErrInvalidUserID
	}

	nik := strings.TrimSpace(req.NIK)
	if !nikPattern.MatchString(nik) {
		return SlikResponse{}, slikerrors.ErrInvalidNIK
	}

	row := &SlikKTP{
		ID:               uuid.New(),
		UserID:           userUUID,
		NIK:              &nik,
		NamaLengkap:      &req.NamaLengkap,
		TempatLahir:      req.TempatLahir,
		TanggalLahir:     req.TanggalLahir,
		JenisKelamin:     req.JenisKelamin,
		Alamat:           req.Alamat,
		RtRw:             req.RtRw,
		KelDesa:          req.KelDesa,
		Kecamatan:        req.Kecamatan,
		Agama:            req.Agama,
		StatusPerkawinan: req.StatusPerkawinan,
		Pekerjaan:        req.Pekerjaan,
		Kewarganegaraan:  req.Kewarganegaraan,
		BerlakuHingga:    req.BerlakuHingga,
	}

	if err := s.repo.Create(ctx, row); err != nil {
		return SlikResponse{}, mapRepositoryError(err)
	}

	s.logger.Info("slik intake recorded",
		zap.String("record_id", row.ID.String()),
		zap.String("user_id", userID),
	)
	return mapToResponse(*row), nil
}

func (s *service) List(ctx context.Context, userID string) ([]SlikResponse, error) {
	if _, err := uuid.Parse(userID); err != nil {
		return nil, slikerrors.ErrInvalidUserID
	}

	rows, err := s.repo.FindAllByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	res := make([]SlikResponse, len(rows))
	for i, r := range rows {
		res[i] = mapToResponse(r)
	}
	return res, nil
}

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return slikerrors.ErrDuplicateNIK
	}
	if strings.Contains(strings.ToLower(err.Error()), "duplicate key value") {
		return slikerrors.ErrDuplicateNIK
	}
	return err
}

func mapToResponse(s SlikKTP) SlikResponse {
	return SlikResponse{
		ID:               s.ID.String(),
		NIK:              s.NIK,
		NamaLengkap:      s.NamaLengkap,
		TempatLahir:      s.TempatLahir,
		TanggalLahir:     s.TanggalLahir,
		JenisKelamin:     s.JenisKelamin,
		Alamat:           s.Alamat,
		RtRw:             s.RtRw,
		KelDesa:          s.KelDesa,
		Kecamatan:        s.Kecamatan,
		Agama:            s.Agama,
		StatusPerkawinan: s.StatusPerkawinan,
		Pekerjaan:        s.Pekerjaan,
		Kewarganegaraan:  s.Kewarganegaraan,
		BerlakuHingga:    s.BerlakuHingga,
		CreatedAt:        s.CreatedAt,
	}
}

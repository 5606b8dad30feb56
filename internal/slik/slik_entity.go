package slik

import (
	"time"

	"github.com/google/uuid"
)

// SlikKTP adalah hasil intake dokumen KTP untuk keperluan SLIK. Kolom
// mengikuti field fisik KTP; semua opsional kecuali user_id.
type SlikKTP struct {
	ID               uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	UserID           uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
	NIK              *string   `gorm:"column:nik;type:varchar(16)" json:"nik"`
	NamaLengkap      *string   `gorm:"type:varchar(255)" json:"nama_lengkap"`
	TempatLahir      *string   `gorm:"type:varchar(100)" json:"tempat_lahir"`
	TanggalLahir     *string   `gorm:"type:varchar(30)" json:"tanggal_lahir"`
	JenisKelamin     *string   `gorm:"type:varchar(20)" json:"jenis_kelamin"`
	Alamat           *string   `gorm:"type:text" json:"alamat"`
	RtRw             *string   `gorm:"column:rt_rw;type:varchar(20)" json:"rt_rw"`
	KelDesa          *string   `gorm:"column:kel_desa;type:varchar(100)" json:"kel_desa"`
	Kecamatan        *string   `gorm:"type:varchar(100)" json:"kecamatan"`
	Agama            *string   `gorm:"type:varchar(30)" json:"agama"`
	StatusPerkawinan *string   `gorm:"type:varchar(30)" json:"status_perkawinan"`
	Pekerjaan        *string   `gorm:"type:varchar(100)" json:"pekerjaan"`
	Kewarganegaraan  *string   `gorm:"type:varchar(30)" json:"kewarganegaraan"`
	BerlakuHingga    *string   `gorm:"type:varchar(30)" json:"berlaku_hingga"`
	CreatedAt        time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt        time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (SlikKTP) TableName() string {
	return "sliks_ktp"
}

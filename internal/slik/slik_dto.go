package slik

import "time"

type CreateSlikRequest struct {
	NIK              string  `json:"nik" binding:"required,len=16,numeric"`
	NamaLengkap      string  `json:"nama_lengkap" binding:"required,min=2,max=255"`
	TempatLahir      *string `json:"tempat_lahir" binding:"omitempty,max=100"`
	TanggalLahir     *string `json:"tanggal_lahir" binding:"omitempty,max=30"`
	JenisKelamin     *string `json:"jenis_kelamin" binding:"omitempty,oneof=LAKI-LAKI PEREMPUAN"`
	Alamat           *string `json:"alamat"`
	RtRw             *string `json:"rt_rw" binding:"omitempty,max=20"`
	KelDesa          *string `json:"kel_desa" binding:"omitempty,max=100"`
	Kecamatan        *string `json:"kecamatan" binding:"omitempty,max=100"`
	Agama            *string `json:"agama" binding:"omitempty,max=30"`
	StatusPerkawinan *string `json:"status_perkawinan" binding:"omitempty,max=30"`
	Pekerjaan        *string `json:"pekerjaan" binding:"omitempty,max=100"`
	Kewarganegaraan  *string `json:"kewarganegaraan" binding:"omitempty,max=30"`
	BerlakuHingga    *string `json:"berlaku_hingga" binding:"omitempty,max=30"`
}

type SlikResponse struct {
	ID               string    `json:"id"`
	NIK              *string   `json:"nik"`
	NamaLengkap      *string   `json:"nama_lengkap"`
	TempatLahir      *string   `json:"tempat_lahir"`
	TanggalLahir     *string   `json:"tanggal_lahir"`
	JenisKelamin     *string   `json:"jenis_kelamin"`
	Alamat           *string   `json:"alamat"`
	RtRw             *string   `json:"rt_rw"`
	KelDesa          *string   `json:"kel_desa"`
	Kecamatan        *string   `json:"kecamatan"`
	Agama            *string   `json:"agama"`
	StatusPerkawinan *string   `json:"status_perkawinan"`
	Pekerjaan        *string   `json:"pekerjaan"`
	Kewarganegaraan  *string   `json:"kewarganegaraan"`
	BerlakuHingga    *string   `json:"berlaku_hingga"`
	CreatedAt        time.Time `json:"created_at"`
}

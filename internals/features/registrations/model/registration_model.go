package model

import (
	"time"
)

/* ===================== Constants ===================== */

const (
	RegistrationStatusPending  = "pending"
	RegistrationStatusApproved = "approved"
	RegistrationStatusRejected = "rejected"
)

/* ===================== Model ===================== */

// PaymentScreenshotModel: sub-record bukti pembayaran, disimpan flat dengan
// prefix payment_ supaya filename & transaction_id bisa pakai unique index.
type PaymentScreenshotModel struct {
	URL          string `gorm:"column:payment_url;type:text;not null" json:"url"`
	OriginalName string `gorm:"column:payment_original_name;type:varchar(255)" json:"originalName"`
	Filename     string `gorm:"column:payment_filename;type:varchar(255);uniqueIndex" json:"filename"`
	Size         int64  `gorm:"column:payment_size" json:"size"`
	Type         string `gorm:"column:payment_type;type:varchar(100)" json:"type"`

	// NULL = belum ada transaction id; unique hanya berlaku saat terisi
	TransactionID *string `gorm:"column:payment_transaction_id;type:varchar(100);uniqueIndex" json:"transactionId,omitempty"`

	Verified        bool       `gorm:"column:payment_verified;not null;default:false" json:"verified"`
	VerifiedAt      *time.Time `gorm:"column:payment_verified_at" json:"verifiedAt,omitempty"`
	VerifiedBy      *string    `gorm:"column:payment_verified_by;type:varchar(100)" json:"verifiedBy,omitempty"`
	ValidationNotes *string    `gorm:"column:payment_validation_notes;type:text" json:"validationNotes,omitempty"`
}

type RegistrationModel struct {
	// Format: "SG" + 6 digit. Immutable setelah insert.
	RegistrationID string `gorm:"column:registration_id;type:varchar(12);primaryKey" json:"registrationId"`

	RegistrationFullName  string `gorm:"column:registration_full_name;type:varchar(100);not null" json:"fullName"`
	RegistrationAge       int    `gorm:"column:registration_age;not null;check:registration_age > 0" json:"age"`
	RegistrationPhone     string `gorm:"column:registration_phone;type:varchar(20);not null;uniqueIndex" json:"phone"`
	RegistrationEmail     string `gorm:"column:registration_email;type:varchar(120)" json:"email"`
	RegistrationCategory  string `gorm:"column:registration_category;type:varchar(50);not null" json:"category"`
	RegistrationSongType  string `gorm:"column:registration_song_type;type:varchar(50);not null" json:"songType"`
	RegistrationSongTitle string `gorm:"column:registration_song_title;type:varchar(150)" json:"songTitle"`

	RegistrationPayment PaymentScreenshotModel `gorm:"embedded" json:"paymentScreenshot"`

	// pending | approved | rejected — hanya berubah lewat operasi verifikasi
	RegistrationStatus string `gorm:"column:registration_status;type:varchar(20);not null;default:'pending'" json:"status"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updatedAt"`
}

func (RegistrationModel) TableName() string { return "registrations" }

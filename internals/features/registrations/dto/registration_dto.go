package dto

import (
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"swargandhav_backend/internals/features/registrations/model"
)

/* ===================== Request DTO ===================== */

type CreateRegistrationRequest struct {
	FullName  string `form:"fullName" json:"fullName" validate:"required,max=100"`
	Age       int    `form:"age" json:"age" validate:"required,gt=0"`
	Phone     string `form:"phone" json:"phone" validate:"required,max=20"`
	Email     string `form:"email" json:"email" validate:"omitempty,email,max=120"`
	Category  string `form:"category" json:"category" validate:"required,max=50"`
	SongType  string `form:"songType" json:"songType" validate:"required,max=50"`
	SongTitle string `form:"songTitle" json:"songTitle" validate:"omitempty,max=150"`
}

// Normalize: rapikan input form sebelum validasi
func (r *CreateRegistrationRequest) Normalize() {
	r.FullName = strings.TrimSpace(r.FullName)
	r.Phone = strings.TrimSpace(r.Phone)
	r.Email = strings.TrimSpace(r.Email)
	r.Category = strings.TrimSpace(r.Category)
	r.SongType = strings.TrimSpace(r.SongType)
	r.SongTitle = strings.TrimSpace(r.SongTitle)
}

func (r *CreateRegistrationRequest) Validate(v *validator.Validate) error {
	if v == nil {
		v = validator.New()
	}
	r.Normalize()
	return v.Struct(r)
}

type CheckTransactionRequest struct {
	TransactionID string `json:"transactionId"`
}

type VerifyRegistrationRequest struct {
	Verified        bool   `json:"verified"`
	VerifiedBy      string `json:"verifiedBy" validate:"omitempty,max=100"`
	ValidationNotes string `json:"validationNotes" validate:"omitempty,max=500"`
	TransactionID   string `json:"transactionId" validate:"omitempty,max=100"`
	Status          string `json:"status" validate:"omitempty,oneof=pending approved rejected"`
}

// ApplyDefaults: verifiedBy & validationNotes punya nilai baku dari sisi admin
func (r *VerifyRegistrationRequest) ApplyDefaults() {
	if strings.TrimSpace(r.VerifiedBy) == "" {
		r.VerifiedBy = "admin"
	}
	if strings.TrimSpace(r.ValidationNotes) == "" {
		r.ValidationNotes = "Payment processed"
	}
	r.TransactionID = strings.TrimSpace(r.TransactionID)
	r.Status = strings.TrimSpace(r.Status)
}

/* ===================== Response DTO ===================== */

type PaymentScreenshotResponse struct {
	URL             string     `json:"url"`
	OriginalName    string     `json:"originalName"`
	Filename        string     `json:"filename"`
	Size            int64      `json:"size"`
	Type            string     `json:"type"`
	TransactionID   *string    `json:"transactionId,omitempty"`
	Verified        bool       `json:"verified"`
	VerifiedAt      *time.Time `json:"verifiedAt,omitempty"`
	VerifiedBy      *string    `json:"verifiedBy,omitempty"`
	ValidationNotes *string    `json:"validationNotes,omitempty"`
}

type RegistrationResponse struct {
	RegistrationID    string                    `json:"registrationId"`
	FullName          string                    `json:"fullName"`
	Age               int                       `json:"age"`
	Phone             string                    `json:"phone"`
	Email             string                    `json:"email"`
	Category          string                    `json:"category"`
	SongType          string                    `json:"songType"`
	SongTitle         string                    `json:"songTitle"`
	PaymentScreenshot PaymentScreenshotResponse `json:"paymentScreenshot"`
	Status            string                    `json:"status"`
	CreatedAt         time.Time                 `json:"createdAt"`
	UpdatedAt         time.Time                 `json:"updatedAt"`
}

func ToRegistrationResponse(m *model.RegistrationModel) RegistrationResponse {
	return RegistrationResponse{
		RegistrationID: m.RegistrationID,
		FullName:       m.RegistrationFullName,
		Age:            m.RegistrationAge,
		Phone:          m.RegistrationPhone,
		Email:          m.RegistrationEmail,
		Category:       m.RegistrationCategory,
		SongType:       m.RegistrationSongType,
		SongTitle:      m.RegistrationSongTitle,
		PaymentScreenshot: PaymentScreenshotResponse{
			URL:             m.RegistrationPayment.URL,
			OriginalName:    m.RegistrationPayment.OriginalName,
			Filename:        m.RegistrationPayment.Filename,
			Size:            m.RegistrationPayment.Size,
			Type:            m.RegistrationPayment.Type,
			TransactionID:   m.RegistrationPayment.TransactionID,
			Verified:        m.RegistrationPayment.Verified,
			VerifiedAt:      m.RegistrationPayment.VerifiedAt,
			VerifiedBy:      m.RegistrationPayment.VerifiedBy,
			ValidationNotes: m.RegistrationPayment.ValidationNotes,
		},
		Status:    m.RegistrationStatus,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func ToRegistrationResponses(ms []model.RegistrationModel) []RegistrationResponse {
	out := make([]RegistrationResponse, 0, len(ms))
	for i := range ms {
		out = append(out, ToRegistrationResponse(&ms[i]))
	}
	return out
}

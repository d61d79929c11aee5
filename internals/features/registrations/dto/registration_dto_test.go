package dto

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validCreateRequest() CreateRegistrationRequest {
	return CreateRegistrationRequest{
		FullName: "राम पाटील",
		Age:      30,
		Phone:    "9876543210",
		Email:    "ram@example.com",
		Category: "पुरुष वर्ग",
		SongType: "नाट्यसंगीत",
	}
}

func TestCreateRegistrationValidate(t *testing.T) {
	v := validator.New()

	t.Run("valid", func(t *testing.T) {
		req := validCreateRequest()
		require.NoError(t, req.Validate(v))
	})

	t.Run("trims_whitespace", func(t *testing.T) {
		req := validCreateRequest()
		req.FullName = "  राम पाटील  "
		req.Phone = " 9876543210 "
		require.NoError(t, req.Validate(v))
		assert.Equal(t, "राम पाटील", req.FullName)
		assert.Equal(t, "9876543210", req.Phone)
	})

	t.Run("email_optional", func(t *testing.T) {
		req := validCreateRequest()
		req.Email = ""
		require.NoError(t, req.Validate(v))
	})

	tests := []struct {
		name   string
		mutate func(*CreateRegistrationRequest)
	}{
		{"missing_full_name", func(r *CreateRegistrationRequest) { r.FullName = "" }},
		{"zero_age", func(r *CreateRegistrationRequest) { r.Age = 0 }},
		{"negative_age", func(r *CreateRegistrationRequest) { r.Age = -5 }},
		{"missing_phone", func(r *CreateRegistrationRequest) { r.Phone = "" }},
		{"missing_category", func(r *CreateRegistrationRequest) { r.Category = "" }},
		{"missing_song_type", func(r *CreateRegistrationRequest) { r.SongType = "" }},
		{"bad_email", func(r *CreateRegistrationRequest) { r.Email = "bukan-email" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validCreateRequest()
			tt.mutate(&req)
			assert.Error(t, req.Validate(v))
		})
	}
}

func TestVerifyRegistrationDefaults(t *testing.T) {
	t.Run("fills_defaults", func(t *testing.T) {
		req := VerifyRegistrationRequest{Verified: true}
		req.ApplyDefaults()
		assert.Equal(t, "admin", req.VerifiedBy)
		assert.Equal(t, "Payment processed", req.ValidationNotes)
	})

	t.Run("keeps_explicit_values", func(t *testing.T) {
		req := VerifyRegistrationRequest{
			Verified:        true,
			VerifiedBy:      "committee",
			ValidationNotes: "Checked against bank statement",
			TransactionID:   " UPI-123 ",
		}
		req.ApplyDefaults()
		assert.Equal(t, "committee", req.VerifiedBy)
		assert.Equal(t, "Checked against bank statement", req.ValidationNotes)
		assert.Equal(t, "UPI-123", req.TransactionID)
	})
}

func TestVerifyRegistrationStatusValues(t *testing.T) {
	v := validator.New()

	for _, status := range []string{"", "pending", "approved", "rejected"} {
		req := VerifyRegistrationRequest{Verified: true, Status: status}
		assert.NoError(t, v.Struct(&req), "status %q", status)
	}

	req := VerifyRegistrationRequest{Verified: true, Status: "cancelled"}
	assert.Error(t, v.Struct(&req))
}

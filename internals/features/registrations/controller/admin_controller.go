package controller

import (
	"errors"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"swargandhav_backend/internals/features/registrations/dto"
	"swargandhav_backend/internals/features/registrations/model"
	helper "swargandhav_backend/internals/helpers"
)

/* ===================== GET /api/registrations ===================== */

func (ctl *RegistrationController) List(c *fiber.Ctx) error {
	var rows []model.RegistrationModel
	if err := ctl.DB.Order("created_at DESC").Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "ok", dto.ToRegistrationResponses(rows))
}

/* ===================== GET /api/stats ===================== */

type categoryCount struct {
	Category string `json:"category"`
	Count    int64  `json:"count"`
}

func (ctl *RegistrationController) Stats(c *fiber.Ctx) error {
	var total int64
	if err := ctl.DB.Model(&model.RegistrationModel{}).Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	byCategory := make([]categoryCount, 0)
	if err := ctl.DB.Model(&model.RegistrationModel{}).
		Select("registration_category AS category, COUNT(*) AS count").
		Group("registration_category").
		Scan(&byCategory).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonOK(c, "ok", fiber.Map{
		"totalRegistrations": total,
		"byCategory":         byCategory,
	})
}

/* ===================== PATCH /api/registration/:id/verify ===================== */

// resolveVerifiedStatus: status eksplisit menang; selain itu approved saat
// verified, kalau tidak kembali pending. Rejected tidak pernah otomatis.
func resolveVerifiedStatus(explicit string, verified bool) string {
	if explicit != "" {
		return explicit
	}
	if verified {
		return model.RegistrationStatusApproved
	}
	return model.RegistrationStatusPending
}

func (ctl *RegistrationController) Verify(c *fiber.Ctx) error {
	id := strings.TrimSpace(c.Params("id"))

	var req dto.VerifyRegistrationRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}
	req.ApplyDefaults()

	var m model.RegistrationModel
	if err := ctl.DB.Where("registration_id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Registration not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	// Verifikasi dengan transaction id → cek tabrakan dengan registrasi lain
	if req.Verified && req.TransactionID != "" {
		owner, err := ctl.findTransactionOwner(req.TransactionID, id)
		if err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
		}
		if owner != nil {
			return transactionTakenResponse(c, owner)
		}
		m.RegistrationPayment.TransactionID = &req.TransactionID
	}

	now := time.Now()
	m.RegistrationPayment.Verified = req.Verified
	m.RegistrationPayment.VerifiedAt = &now
	m.RegistrationPayment.VerifiedBy = &req.VerifiedBy
	m.RegistrationPayment.ValidationNotes = &req.ValidationNotes
	m.RegistrationStatus = resolveVerifiedStatus(req.Status, req.Verified)

	if err := ctl.DB.Save(&m).Error; err != nil {
		// race dua verifikasi menempelkan transaction id sama: yang kalah di
		// unique index dapat conflict + disclosure pemiliknya
		if uniqueViolationOn(err, "payment_transaction_id") {
			if owner, lookupErr := ctl.findTransactionOwner(req.TransactionID, id); lookupErr == nil && owner != nil {
				return transactionTakenResponse(c, owner)
			}
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonUpdated(c, "Registration verified", dto.ToRegistrationResponse(&m))
}

// findTransactionOwner: registrasi lain yang sudah memegang transaction id.
// nil, nil = bebas dipakai.
func (ctl *RegistrationController) findTransactionOwner(txID, excludeID string) (*model.RegistrationModel, error) {
	var existing model.RegistrationModel
	err := ctl.DB.
		Where("payment_transaction_id = ? AND registration_id <> ?", txID, excludeID).
		First(&existing).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &existing, nil
}

func transactionTakenResponse(c *fiber.Ctx, owner *model.RegistrationModel) error {
	return helper.JsonErrorWithData(c, fiber.StatusBadRequest, "Transaction ID already exists", fiber.Map{
		"fullName": owner.RegistrationFullName,
		"phone":    owner.RegistrationPhone,
	})
}

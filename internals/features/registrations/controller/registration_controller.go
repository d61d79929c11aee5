package controller

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"log"
	"math/big"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"swargandhav_backend/internals/features/registrations/dto"
	"swargandhav_backend/internals/features/registrations/model"
	helper "swargandhav_backend/internals/helpers"
	helperOSS "swargandhav_backend/internals/helpers/oss"
)

const idInsertAttempts = 5

type RegistrationController struct {
	DB        *gorm.DB
	Validator *validator.Validate

	// Screenshots dibuat per-request dari ENV; test override dengan fake
	Screenshots func() (helperOSS.ScreenshotStore, error)

	// NewID: generator id registrasi; test override untuk memaksa tabrakan
	NewID func() string
}

func NewRegistrationController(db *gorm.DB) *RegistrationController {
	return &RegistrationController{
		DB:          db,
		Validator:   validator.New(),
		Screenshots: helperOSS.NewScreenshotStoreFromEnv,
		NewID:       generateRegistrationID,
	}
}

/* ===================== Helpers ===================== */

// generateRegistrationID: "SG" + 6 digit acak (100000–999999)
func generateRegistrationID() string {
	n, err := rand.Int(rand.Reader, big.NewInt(900000))
	if err != nil {
		return fmt.Sprintf("SG%06d", time.Now().UnixNano()%1000000)
	}
	return fmt.Sprintf("SG%d", 100000+n.Int64())
}

func isUniqueViolation(err error) bool {
	// tanpa import pgx/pgconn biar portable: cek substring
	if err == nil {
		return false
	}
	s := strings.ToLower(err.Error())
	return strings.Contains(s, "duplicate key") || strings.Contains(s, "unique constraint")
}

// uniqueViolationOn: unique violation yang menyebut kolom/index tertentu.
// Postgres menaruh nama index (idx_registrations_<kolom>), sqlite menaruh
// nama kolomnya langsung.
func uniqueViolationOn(err error, column string) bool {
	return isUniqueViolation(err) && strings.Contains(strings.ToLower(err.Error()), column)
}

// cleanupScreenshot: best-effort, sekali saja, gagal cuma dicatat
func (ctl *RegistrationController) cleanupScreenshot(store helperOSS.ScreenshotStore, publicURL string) {
	if store == nil || publicURL == "" {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := store.DeleteByPublicURL(ctx, publicURL); err != nil {
		log.Printf("[CLEANUP] gagal hapus screenshot %s: %v", publicURL, err)
	}
}

func httpStatusOf(err error, fallback int) (int, string) {
	var fe *fiber.Error
	if errors.As(err, &fe) {
		return fe.Code, fe.Message
	}
	return fallback, err.Error()
}

/* ===================== POST /api/register ===================== */

func (ctl *RegistrationController) Register(c *fiber.Ctx) error {
	fh, err := c.FormFile("paymentScreenshot")
	if err != nil || fh == nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payment screenshot is required")
	}

	var req dto.CreateRegistrationRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := req.Validate(ctl.Validator); err != nil {
		return helper.ValidationError(c, err)
	}

	store, err := ctl.Screenshots()
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "OSS init gagal: "+err.Error())
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	shot, err := store.UploadScreenshot(ctx, fh)
	if err != nil {
		code, msg := httpStatusOf(err, fiber.StatusInternalServerError)
		return helper.JsonError(c, code, msg)
	}

	// Cek duplikat phone setelah upload — kalau kena, object barusan dihapus
	var dupe int64
	if err := ctl.DB.Model(&model.RegistrationModel{}).
		Where("registration_phone = ?", req.Phone).
		Count(&dupe).Error; err != nil {
		ctl.cleanupScreenshot(store, shot.URL)
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	if dupe > 0 {
		ctl.cleanupScreenshot(store, shot.URL)
		return helper.JsonError(c, fiber.StatusBadRequest, "Phone number already registered")
	}

	notes := "Uploaded successfully"
	m := model.RegistrationModel{
		RegistrationID:        ctl.NewID(),
		RegistrationFullName:  req.FullName,
		RegistrationAge:       req.Age,
		RegistrationPhone:     req.Phone,
		RegistrationEmail:     req.Email,
		RegistrationCategory:  req.Category,
		RegistrationSongType:  req.SongType,
		RegistrationSongTitle: req.SongTitle,
		RegistrationStatus:    model.RegistrationStatusPending,
		RegistrationPayment: model.PaymentScreenshotModel{
			URL:             shot.URL,
			OriginalName:    shot.OriginalName,
			Filename:        shot.Filename,
			Size:            shot.Size,
			Type:            shot.ContentType,
			ValidationNotes: &notes,
		},
	}

	var lastErr error
	for attempt := 0; attempt < idInsertAttempts; attempt++ {
		err := ctl.DB.Create(&m).Error
		if err == nil {
			return helper.JsonOK(c, "Registration created", fiber.Map{
				"registrationId": m.RegistrationID,
			})
		}
		// race dua submission dengan phone sama: yang kalah dapat conflict
		// bersih, bukan partial write
		if uniqueViolationOn(err, "registration_phone") {
			ctl.cleanupScreenshot(store, shot.URL)
			return helper.JsonError(c, fiber.StatusBadRequest, "Phone number already registered")
		}
		// tabrakan id acak → regenerate lalu coba lagi
		// (postgres melaporkan PK sebagai "registrations_pkey", sqlite
		// menyebut kolomnya langsung)
		if uniqueViolationOn(err, "registrations_pkey") || uniqueViolationOn(err, "registration_id") {
			m.RegistrationID = ctl.NewID()
			lastErr = err
			continue
		}
		lastErr = err
		break
	}

	ctl.cleanupScreenshot(store, shot.URL)
	return helper.JsonError(c, fiber.StatusInternalServerError, lastErr.Error())
}

/* ===================== POST /api/check-transaction ===================== */

func (ctl *RegistrationController) CheckTransaction(c *fiber.Ctx) error {
	var req dto.CheckTransactionRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	txID := strings.TrimSpace(req.TransactionID)
	if txID == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "Transaction ID is required")
	}

	var existing model.RegistrationModel
	err := ctl.DB.Where("payment_transaction_id = ?", txID).First(&existing).Error
	switch {
	case err == nil:
		return helper.JsonErrorWithData(c, fiber.StatusBadRequest, "Transaction ID already exists", fiber.Map{
			"fullName": existing.RegistrationFullName,
			"phone":    existing.RegistrationPhone,
		})
	case errors.Is(err, gorm.ErrRecordNotFound):
		return helper.JsonOK(c, "Transaction ID is available", nil)
	default:
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
}

/* ===================== GET /api/registration/:id ===================== */

func (ctl *RegistrationController) GetByID(c *fiber.Ctx) error {
	id := strings.TrimSpace(c.Params("id"))

	var m model.RegistrationModel
	if err := ctl.DB.Where("registration_id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Registration not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "ok", dto.ToRegistrationResponse(&m))
}

/* ===================== GET /api/test-oss ===================== */

// 1x1 transparent PNG — probe kredensial asset host end-to-end
const probePNG = "iVBORw0KGgoAAAANSUhEUgAAAAEAAAABCAYAAAAfFcSJAAAADUlEQVR42mNk+M9QDwADhgGAWjR9awAAAABJRU5ErkJggg=="

func (ctl *RegistrationController) TestOSS(c *fiber.Ctx) error {
	store, err := ctl.Screenshots()
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "OSS init gagal: "+err.Error())
	}

	data, err := base64.StdEncoding.DecodeString(probePNG)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	name := fmt.Sprintf("probe_%d.png", time.Now().Unix())
	url, err := store.UploadBytes(ctx, "test_uploads", name, data, "image/png")
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "ok", fiber.Map{"url": url})
}

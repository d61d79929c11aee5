package route

import (
	registrationController "swargandhav_backend/internals/features/registrations/controller"
	middlewares "swargandhav_backend/internals/middlewares"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// RegistrationRoutes defines the routes for registrations
func RegistrationRoutes(api fiber.Router, db *gorm.DB) {
	registrationCtrl := registrationController.NewRegistrationController(db)

	// Public
	api.Post("/register", middlewares.RegisterRateLimiter(), registrationCtrl.Register) // multipart create
	api.Post("/check-transaction", registrationCtrl.CheckTransaction)                   // pre-check ketersediaan
	api.Get("/registration/:id", registrationCtrl.GetByID)                              // status lookup

	// Admin view
	api.Get("/registrations", registrationCtrl.List)                    // semua, terbaru dulu
	api.Get("/stats", registrationCtrl.Stats)                           // total + per kategori
	api.Patch("/registration/:id/verify", registrationCtrl.Verify)      // keputusan verifikasi

	// Probe kredensial asset host
	api.Get("/test-oss", registrationCtrl.TestOSS)
}

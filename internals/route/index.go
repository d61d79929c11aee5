// file: internals/route/index.go
package routes

import (
	"log"

	registrationRoutes "swargandhav_backend/internals/features/registrations/routes"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	// ===================== API =====================
	log.Println("[INFO] Setting up RegistrationRoutes...")
	api := app.Group("/api")
	registrationRoutes.RegistrationRoutes(api, db)

	// ===================== STATIC (halaman pendaftaran + admin) =====================
	log.Println("[INFO] Serving static client from ./web ...")
	app.Static("/", "./web")
}

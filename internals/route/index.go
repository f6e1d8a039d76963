// file: internals/route/index.go
package routes

import (
	"log"

	"gurupintar_backend/internals/configs"
	authMiddleware "gurupintar_backend/internals/middlewares/auth"
	routeDetails "gurupintar_backend/internals/route/details"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	// ===================== PRIVATE (USER) =====================
	// Semua endpoint engine butuh principal; token dicek SEBELUM
	// query store mana pun.
	log.Println("[INFO] Setting up PRIVATE group...")
	private := app.Group("/api/u",
		authMiddleware.AuthJWT(authMiddleware.AuthJWTOpts{
			Secret:              configs.JWTSecret,
			AllowCookieFallback: true,
		}),
	)

	log.Println("[INFO] Mounting Lesson routes...")
	routeDetails.LessonUserRoutes(private, db)
}

// file: internals/route/details/lesson_routes.go
package details

import (
	planRoute "gurupintar_backend/internals/features/lesson/lesson_plans/route"
	templateRoute "gurupintar_backend/internals/features/lesson/lesson_templates/route"
	topicRoute "gurupintar_backend/internals/features/lesson/topics/route"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// LessonUserRoutes mount semua vertical konten pembelajaran
// di bawah group private (JWT wajib).
func LessonUserRoutes(r fiber.Router, db *gorm.DB) {
	planRoute.LessonPlanUserRoutes(r, db)
	templateRoute.LessonTemplateUserRoutes(r, db)
	topicRoute.TopicUserRoutes(r, db)
}

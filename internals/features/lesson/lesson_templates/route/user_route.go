// internals/features/lesson/lesson_templates/route/user_route.go
package route

import (
	templateController "gurupintar_backend/internals/features/lesson/lesson_templates/controller"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// LessonTemplateUserRoutes mendaftarkan endpoint template.
// /public dan /mine HARUS didaftarkan sebelum /:id.
func LessonTemplateUserRoutes(r fiber.Router, db *gorm.DB) {
	ctl := &templateController.LessonTemplateController{DB: db}

	templates := r.Group("/templates")
	templates.Get("/public", ctl.ListPublicTemplates) // GET    /api/u/templates/public
	templates.Get("/mine", ctl.ListMyTemplates)       // GET    /api/u/templates/mine
	templates.Post("/", ctl.CreateTemplate)           // POST   /api/u/templates
	templates.Get("/:id", ctl.GetTemplate)            // GET    /api/u/templates/:id
	templates.Put("/:id", ctl.UpdateTemplate)         // PUT    /api/u/templates/:id
	templates.Delete("/:id", ctl.DeleteTemplate)      // DELETE /api/u/templates/:id
	templates.Post("/:id/share", ctl.ShareTemplate)   // POST   /api/u/templates/:id/share?public=true|false
}

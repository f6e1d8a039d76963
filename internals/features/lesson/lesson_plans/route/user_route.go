// internals/features/lesson/lesson_plans/route/user_route.go
package route

import (
	planController "gurupintar_backend/internals/features/lesson/lesson_plans/controller"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// LessonPlanUserRoutes mendaftarkan endpoint RPP di bawah group
// yang sudah diproteksi JWT (mis. /api/u)
func LessonPlanUserRoutes(r fiber.Router, db *gorm.DB) {
	ctl := &planController.LessonPlanController{DB: db}

	plans := r.Group("/lesson-plans")
	plans.Get("/", ctl.ListLessonPlans)                              // GET    /api/u/lesson-plans?keyword=&subject=&grade=&status=&topic_id=
	plans.Post("/", ctl.CreateLessonPlan)                            // POST   /api/u/lesson-plans
	plans.Post("/from-template/:templateId", ctl.CreateFromTemplate) // POST   /api/u/lesson-plans/from-template/:templateId
	plans.Get("/:id", ctl.GetLessonPlan)                             // GET    /api/u/lesson-plans/:id
	plans.Put("/:id", ctl.UpdateLessonPlan)                          // PUT    /api/u/lesson-plans/:id
	plans.Delete("/:id", ctl.DeleteLessonPlan)                       // DELETE /api/u/lesson-plans/:id

	// transisi status (satu-satunya jalur perubahan status)
	plans.Post("/:id/approve", ctl.ApproveLessonPlan) // DRAFT → COMPLETED
	plans.Post("/:id/publish", ctl.PublishLessonPlan) // COMPLETED → PUBLISHED
	plans.Post("/:id/archive", ctl.ArchiveLessonPlan) // PUBLISHED → ARCHIVED
}

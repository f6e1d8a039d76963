// internals/features/lesson/topics/route/user_route.go
package route

import (
	topicController "gurupintar_backend/internals/features/lesson/topics/controller"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func TopicUserRoutes(r fiber.Router, db *gorm.DB) {
	ctl := &topicController.TopicController{DB: db}

	topics := r.Group("/topics")
	topics.Get("/", ctl.ListTopics)   // GET  /api/u/topics[?subject=]
	topics.Post("/", ctl.CreateTopic) // POST /api/u/topics
}

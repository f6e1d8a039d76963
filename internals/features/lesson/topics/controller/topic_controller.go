// internals/features/lesson/topics/controller/topic_controller.go
package controller

import (
	"strings"

	topicDTO "gurupintar_backend/internals/features/lesson/topics/dto"
	topicModel "gurupintar_backend/internals/features/lesson/topics/model"
	helper "gurupintar_backend/internals/helpers"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type TopicController struct {
	DB *gorm.DB
}

var validate = validator.New()

/* =========================================================
   CREATE
   POST /api/u/topics
   Boleh semua principal yang sudah login; duplikat nama
   dalam satu subject tidak dicegah.
   ========================================================= */
func (h *TopicController) CreateTopic(c *fiber.Ctx) error {
	ownerID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var req topicDTO.CreateTopicRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}

	req.Name = strings.TrimSpace(req.Name)
	req.Subject = strings.TrimSpace(req.Subject)

	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	m := req.ToModel(ownerID)
	if err := h.DB.Create(&m).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal membuat topik")
	}

	return helper.JsonCreated(c, "Topik berhasil dibuat", topicDTO.FromTopicModel(m))
}

/* =========================================================
   LIST
   GET /api/u/topics[?subject=]
   Dibaca semua principal (untuk dropdown filter).
   ========================================================= */
func (h *TopicController) ListTopics(c *fiber.Ctx) error {
	if _, err := helper.GetUserIDFromToken(c); err != nil {
		return err
	}

	tx := h.DB.Model(&topicModel.TopicModel{})
	if subject := strings.TrimSpace(c.Query("subject")); subject != "" {
		tx = tx.Where("topic_subject = ?", subject)
	}

	var rows []topicModel.TopicModel
	if err := tx.Order("topic_created_at ASC").Find(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil data")
	}

	return helper.JsonOK(c, "Daftar topik", topicDTO.FromTopicModels(rows))
}

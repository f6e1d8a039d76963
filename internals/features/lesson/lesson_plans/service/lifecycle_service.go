// internals/features/lesson/lesson_plans/service/lifecycle_service.go
package service

import (
	"errors"
	"fmt"
	"time"

	planModel "gurupintar_backend/internals/features/lesson/lesson_plans/model"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Aksi transisi status RPP.
const (
	ActionApprove = "approve"
	ActionPublish = "publish"
	ActionArchive = "archive"
)

type transitionEdge struct {
	From string
	To   string
}

// Satu-satunya edge yang sah; selain ini ditolak.
var transitions = map[string]transitionEdge{
	ActionApprove: {From: planModel.LessonPlanStatusDraft, To: planModel.LessonPlanStatusCompleted},
	ActionPublish: {From: planModel.LessonPlanStatusCompleted, To: planModel.LessonPlanStatusPublished},
	ActionArchive: {From: planModel.LessonPlanStatusPublished, To: planModel.LessonPlanStatusArchived},
}

// Transition memajukan status RPP milik ownerID sesuai action.
// Semua input eksplisit (tanpa ambil principal dari state global) supaya
// gampang dites. Gagal:
//   - 404 kalau RPP tidak ada / bukan milik ownerID (sengaja tidak dibedakan)
//   - 409 kalau status sekarang bukan source state dari action
func Transition(tx *gorm.DB, ownerID, planID uuid.UUID, action string) (planModel.LessonPlanModel, error) {
	edge, ok := transitions[action]
	if !ok {
		return planModel.LessonPlanModel{}, fiber.NewError(fiber.StatusBadRequest, "Aksi transisi tidak dikenal")
	}

	var m planModel.LessonPlanModel
	if err := tx.First(&m,
		"lesson_plan_id = ? AND lesson_plan_owner_id = ? AND lesson_plan_deleted_at IS NULL",
		planID, ownerID,
	).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return planModel.LessonPlanModel{}, fiber.NewError(fiber.StatusNotFound, "RPP tidak ditemukan")
		}
		return planModel.LessonPlanModel{}, fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil data")
	}

	if m.LessonPlanStatus != edge.From {
		return planModel.LessonPlanModel{}, fiber.NewError(fiber.StatusConflict,
			fmt.Sprintf("Status %s tidak bisa di-%s (butuh %s)", m.LessonPlanStatus, action, edge.From))
	}

	now := time.Now()
	if err := tx.Model(&planModel.LessonPlanModel{}).
		Where("lesson_plan_id = ?", m.LessonPlanID).
		Updates(map[string]interface{}{
			"lesson_plan_status":     edge.To,
			"lesson_plan_updated_at": &now,
		}).Error; err != nil {
		return planModel.LessonPlanModel{}, fiber.NewError(fiber.StatusInternalServerError, "Gagal memperbarui status")
	}

	m.LessonPlanStatus = edge.To
	m.LessonPlanUpdatedAt = &now
	return m, nil
}

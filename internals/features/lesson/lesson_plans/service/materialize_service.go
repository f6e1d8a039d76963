// internals/features/lesson/lesson_plans/service/materialize_service.go
package service

import (
	"errors"

	planDTO "gurupintar_backend/internals/features/lesson/lesson_plans/dto"
	planModel "gurupintar_backend/internals/features/lesson/lesson_plans/model"
	templateModel "gurupintar_backend/internals/features/lesson/lesson_templates/model"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Materialize membuat RPP baru dari sebuah template (snapshot).
// Aturan baca template: PUBLIC boleh siapa saja, PRIVATE hanya owner;
// selain itu 404 (keberadaan template orang lain tidak dibocorkan).
// Content template di-deep-copy saat itu juga — edit/hapus template
// setelahnya tidak pernah terlihat lewat RPP hasil salinan.
func Materialize(tx *gorm.DB, ownerID, templateID uuid.UUID, req planDTO.MaterializeLessonPlanRequest) (planModel.LessonPlanModel, error) {
	var t templateModel.LessonTemplateModel
	if err := tx.First(&t,
		"lesson_template_id = ? AND lesson_template_deleted_at IS NULL AND (lesson_template_visibility = ? OR lesson_template_owner_id = ?)",
		templateID, templateModel.LessonTemplateVisibilityPublic, ownerID,
	).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return planModel.LessonPlanModel{}, fiber.NewError(fiber.StatusNotFound, "Template tidak ditemukan")
		}
		return planModel.LessonPlanModel{}, fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil template")
	}

	// Deep copy byte content — jangan alias slice milik row template
	content := datatypes.JSON([]byte(`{}`))
	if len(t.LessonTemplateContent) > 0 {
		buf := make([]byte, len(t.LessonTemplateContent))
		copy(buf, t.LessonTemplateContent)
		content = datatypes.JSON(buf)
	}

	desc := t.LessonTemplateDescription
	m := planModel.LessonPlanModel{
		LessonPlanOwnerID:     ownerID,
		LessonPlanTitle:       t.LessonTemplateTitle,
		LessonPlanDescription: &desc,
		LessonPlanGrade:       t.LessonTemplateGrade,
		LessonPlanSubject:     t.LessonTemplateSubject,
		LessonPlanPeriodCount: 1,
		LessonPlanStatus:      planModel.LessonPlanStatusDraft,
		LessonPlanContent:     content,
		LessonPlanTopicID:     t.LessonTemplateTopicID,
	}

	// Override dari caller menang atas default template
	if req.Title != nil {
		m.LessonPlanTitle = *req.Title
	}
	if req.Grade != nil {
		m.LessonPlanGrade = *req.Grade
	}
	if req.PeriodCount != nil {
		m.LessonPlanPeriodCount = *req.PeriodCount
	}
	if req.Classroom != nil {
		m.LessonPlanClassroom = req.Classroom
	}
	if req.Note != nil {
		m.LessonPlanNote = req.Note
	}
	if req.UsesAI != nil {
		m.LessonPlanUsesAI = *req.UsesAI
	}
	if req.SpecialRequirements != nil {
		m.LessonPlanSpecialRequirements = req.SpecialRequirements
	}
	if req.TopicID != nil {
		m.LessonPlanTopicID = req.TopicID
	}

	if err := tx.Create(&m).Error; err != nil {
		return planModel.LessonPlanModel{}, fiber.NewError(fiber.StatusInternalServerError, "Gagal membuat RPP dari template")
	}
	return m, nil
}

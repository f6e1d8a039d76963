// internals/features/lesson/lesson_plans/dto/lesson_plan_dto.go
package dto

import (
	"strings"
	"time"

	planModel "gurupintar_backend/internals/features/lesson/lesson_plans/model"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

/* =========================================================
   1) REQUEST DTO
   ========================================================= */

// Create (langsung, tanpa template)
type CreateLessonPlanRequest struct {
	Title               string         `json:"lesson_plan_title" validate:"required,max=200"`
	Description         *string        `json:"lesson_plan_description" validate:"omitempty"`
	Grade               int            `json:"lesson_plan_grade" validate:"required,oneof=10 11 12"`
	Subject             string         `json:"lesson_plan_subject" validate:"required,max=40"`
	PeriodCount         int            `json:"lesson_plan_period_count" validate:"required,min=1"`
	Classroom           *string        `json:"lesson_plan_classroom" validate:"omitempty,max=80"`
	Note                *string        `json:"lesson_plan_note" validate:"omitempty"`
	UsesAI              *bool          `json:"lesson_plan_uses_ai" validate:"omitempty"`
	SpecialRequirements *string        `json:"lesson_plan_special_requirements" validate:"omitempty"`
	Content             datatypes.JSON `json:"lesson_plan_content" validate:"omitempty"`
	TopicID             *uuid.UUID     `json:"lesson_plan_topic_id" validate:"omitempty"`
}

// Update (partial). Sengaja TIDAK ada field status:
// perubahan status hanya lewat endpoint transisi.
type UpdateLessonPlanRequest struct {
	Title               *string        `json:"lesson_plan_title" validate:"omitempty,min=1,max=200"`
	Description         *string        `json:"lesson_plan_description" validate:"omitempty"`
	Grade               *int           `json:"lesson_plan_grade" validate:"omitempty,oneof=10 11 12"`
	Subject             *string        `json:"lesson_plan_subject" validate:"omitempty,min=1,max=40"`
	PeriodCount         *int           `json:"lesson_plan_period_count" validate:"omitempty,min=1"`
	Classroom           *string        `json:"lesson_plan_classroom" validate:"omitempty,max=80"`
	Note                *string        `json:"lesson_plan_note" validate:"omitempty"`
	UsesAI              *bool          `json:"lesson_plan_uses_ai" validate:"omitempty"`
	SpecialRequirements *string        `json:"lesson_plan_special_requirements" validate:"omitempty"`
	Content             datatypes.JSON `json:"lesson_plan_content" validate:"omitempty"`
	TopicID             *uuid.UUID     `json:"lesson_plan_topic_id" validate:"omitempty"`
}

// Override saat materialize dari template.
// Field yang tidak diisi memakai default dari template.
type MaterializeLessonPlanRequest struct {
	Title               *string    `json:"lesson_plan_title" validate:"omitempty,min=1,max=200"`
	Grade               *int       `json:"lesson_plan_grade" validate:"omitempty,oneof=10 11 12"`
	PeriodCount         *int       `json:"lesson_plan_period_count" validate:"omitempty,min=1"`
	Classroom           *string    `json:"lesson_plan_classroom" validate:"omitempty,max=80"`
	Note                *string    `json:"lesson_plan_note" validate:"omitempty"`
	UsesAI              *bool      `json:"lesson_plan_uses_ai" validate:"omitempty"`
	SpecialRequirements *string    `json:"lesson_plan_special_requirements" validate:"omitempty"`
	TopicID             *uuid.UUID `json:"lesson_plan_topic_id" validate:"omitempty"`
}

/*
   List query:
   - Semua filter AND; field kosong = tanpa constraint
   - keyword: substring case-insensitive di title/description
*/
type ListLessonPlanQuery struct {
	Keyword *string `query:"keyword" validate:"omitempty,max=100"`
	Subject *string `query:"subject" validate:"omitempty,max=40"`
	Grade   *int    `query:"grade" validate:"omitempty,oneof=10 11 12"`
	Status  *string `query:"status" validate:"omitempty,oneof=DRAFT COMPLETED PUBLISHED ARCHIVED"`
	TopicID *string `query:"topic_id" validate:"omitempty,uuid"`
	OrderBy *string `query:"order_by" validate:"omitempty,oneof=title created_at updated_at"`
	Sort    *string `query:"sort" validate:"omitempty,oneof=asc desc"`
}

/* =========================================================
   2) RESPONSE DTO
   ========================================================= */

type LessonPlanResponse struct {
	ID                  uuid.UUID      `json:"lesson_plan_id"`
	OwnerID             uuid.UUID      `json:"lesson_plan_owner_id"`
	Title               string         `json:"lesson_plan_title"`
	Description         *string        `json:"lesson_plan_description,omitempty"`
	Grade               int            `json:"lesson_plan_grade"`
	Subject             string         `json:"lesson_plan_subject"`
	PeriodCount         int            `json:"lesson_plan_period_count"`
	Classroom           *string        `json:"lesson_plan_classroom,omitempty"`
	Note                *string        `json:"lesson_plan_note,omitempty"`
	UsesAI              bool           `json:"lesson_plan_uses_ai"`
	SpecialRequirements *string        `json:"lesson_plan_special_requirements,omitempty"`
	Status              string         `json:"lesson_plan_status"`
	Content             datatypes.JSON `json:"lesson_plan_content"`
	TopicID             *uuid.UUID     `json:"lesson_plan_topic_id,omitempty"`
	CreatedAt           time.Time      `json:"lesson_plan_created_at"`
	UpdatedAt           *time.Time     `json:"lesson_plan_updated_at,omitempty"`
}

// Agregat badge per status (untuk tab di UI, tanpa round-trip kedua)
type LessonPlanStatusCounts struct {
	Draft     int64 `json:"DRAFT"`
	Completed int64 `json:"COMPLETED"`
	Published int64 `json:"PUBLISHED"`
	Archived  int64 `json:"ARCHIVED"`
}

/* =========================================================
   3) MAPPERS
   ========================================================= */

func (r CreateLessonPlanRequest) ToModel(ownerID uuid.UUID) planModel.LessonPlanModel {
	title := strings.TrimSpace(r.Title)
	subject := strings.TrimSpace(r.Subject)

	usesAI := false
	if r.UsesAI != nil {
		usesAI = *r.UsesAI
	}

	content := r.Content
	if len(content) == 0 {
		content = datatypes.JSON([]byte(`{}`))
	}

	return planModel.LessonPlanModel{
		LessonPlanOwnerID:             ownerID,
		LessonPlanTitle:               title,
		LessonPlanDescription:         trimPtr(r.Description),
		LessonPlanGrade:               r.Grade,
		LessonPlanSubject:             subject,
		LessonPlanPeriodCount:         r.PeriodCount,
		LessonPlanClassroom:           trimPtr(r.Classroom),
		LessonPlanNote:                trimPtr(r.Note),
		LessonPlanUsesAI:              usesAI,
		LessonPlanSpecialRequirements: trimPtr(r.SpecialRequirements),
		LessonPlanStatus:              planModel.LessonPlanStatusDraft,
		LessonPlanContent:             content,
		LessonPlanTopicID:             r.TopicID,
	}
}

func FromLessonPlanModel(m planModel.LessonPlanModel) LessonPlanResponse {
	return LessonPlanResponse{
		ID:                  m.LessonPlanID,
		OwnerID:             m.LessonPlanOwnerID,
		Title:               m.LessonPlanTitle,
		Description:         m.LessonPlanDescription,
		Grade:               m.LessonPlanGrade,
		Subject:             m.LessonPlanSubject,
		PeriodCount:         m.LessonPlanPeriodCount,
		Classroom:           m.LessonPlanClassroom,
		Note:                m.LessonPlanNote,
		UsesAI:              m.LessonPlanUsesAI,
		SpecialRequirements: m.LessonPlanSpecialRequirements,
		Status:              m.LessonPlanStatus,
		Content:             m.LessonPlanContent,
		TopicID:             m.LessonPlanTopicID,
		CreatedAt:           m.LessonPlanCreatedAt,
		UpdatedAt:           m.LessonPlanUpdatedAt,
	}
}

func FromLessonPlanModels(models []planModel.LessonPlanModel) []LessonPlanResponse {
	out := make([]LessonPlanResponse, 0, len(models))
	for _, m := range models {
		out = append(out, FromLessonPlanModel(m))
	}
	return out
}

// Normalize merapikan field string SEBELUM validasi,
// supaya "   " tidak lolos min=1 lalu tersimpan kosong.
func (r *UpdateLessonPlanRequest) Normalize() {
	if r.Title != nil {
		t := strings.TrimSpace(*r.Title)
		r.Title = &t
	}
	if r.Subject != nil {
		s := strings.TrimSpace(*r.Subject)
		r.Subject = &s
	}
}

/* =========================================================
   4) APPLY (partial update helper)
   ========================================================= */

// Apply menerapkan field non-nil ke model. Status & owner tidak tersentuh.
func (r UpdateLessonPlanRequest) Apply(m *planModel.LessonPlanModel) {
	if r.Title != nil {
		m.LessonPlanTitle = strings.TrimSpace(*r.Title)
	}
	if r.Description != nil {
		m.LessonPlanDescription = emptyToNil(*r.Description)
	}
	if r.Grade != nil {
		m.LessonPlanGrade = *r.Grade
	}
	if r.Subject != nil {
		m.LessonPlanSubject = strings.TrimSpace(*r.Subject)
	}
	if r.PeriodCount != nil {
		m.LessonPlanPeriodCount = *r.PeriodCount
	}
	if r.Classroom != nil {
		m.LessonPlanClassroom = emptyToNil(*r.Classroom)
	}
	if r.Note != nil {
		m.LessonPlanNote = emptyToNil(*r.Note)
	}
	if r.UsesAI != nil {
		m.LessonPlanUsesAI = *r.UsesAI
	}
	if r.SpecialRequirements != nil {
		m.LessonPlanSpecialRequirements = emptyToNil(*r.SpecialRequirements)
	}
	if len(r.Content) > 0 {
		m.LessonPlanContent = r.Content
	}
	if r.TopicID != nil {
		m.LessonPlanTopicID = r.TopicID
	}
}

func trimPtr(s *string) *string {
	if s == nil {
		return nil
	}
	t := strings.TrimSpace(*s)
	return &t
}

func emptyToNil(s string) *string {
	t := strings.TrimSpace(s)
	if t == "" {
		return nil
	}
	return &t
}

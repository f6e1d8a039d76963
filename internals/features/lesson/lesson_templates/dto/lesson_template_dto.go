// internals/features/lesson/lesson_templates/dto/lesson_template_dto.go
package dto

import (
	"strings"
	"time"

	templateModel "gurupintar_backend/internals/features/lesson/lesson_templates/model"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

/* =========================================================
   1) REQUEST DTO
   ========================================================= */

type CreateLessonTemplateRequest struct {
	Title       string         `json:"lesson_template_title" validate:"required,max=200"`
	Description string         `json:"lesson_template_description" validate:"required"`
	Subject     string         `json:"lesson_template_subject" validate:"required,max=40"`
	Grade       int            `json:"lesson_template_grade" validate:"required,oneof=10 11 12"`
	Visibility  *string        `json:"lesson_template_visibility" validate:"omitempty,oneof=PRIVATE PUBLIC"`
	Content     datatypes.JSON `json:"lesson_template_content" validate:"omitempty"`
	TopicID     *uuid.UUID     `json:"lesson_template_topic_id" validate:"omitempty"`
}

// Update (partial). Visibility TIDAK lewat sini — pakai endpoint share.
type UpdateLessonTemplateRequest struct {
	Title       *string        `json:"lesson_template_title" validate:"omitempty,min=1,max=200"`
	Description *string        `json:"lesson_template_description" validate:"omitempty,min=1"`
	Subject     *string        `json:"lesson_template_subject" validate:"omitempty,min=1,max=40"`
	Grade       *int           `json:"lesson_template_grade" validate:"omitempty,oneof=10 11 12"`
	Content     datatypes.JSON `json:"lesson_template_content" validate:"omitempty"`
	TopicID     *uuid.UUID     `json:"lesson_template_topic_id" validate:"omitempty"`
}

type ListLessonTemplateQuery struct {
	Keyword *string `query:"keyword" validate:"omitempty,max=100"`
	Subject *string `query:"subject" validate:"omitempty,max=40"`
	Grade   *int    `query:"grade" validate:"omitempty,oneof=10 11 12"`
}

/* =========================================================
   2) RESPONSE DTO
   ========================================================= */

type LessonTemplateResponse struct {
	ID          uuid.UUID      `json:"lesson_template_id"`
	OwnerID     uuid.UUID      `json:"lesson_template_owner_id"`
	Title       string         `json:"lesson_template_title"`
	Description string         `json:"lesson_template_description"`
	Subject     string         `json:"lesson_template_subject"`
	Grade       int            `json:"lesson_template_grade"`
	Visibility  string         `json:"lesson_template_visibility"`
	Content     datatypes.JSON `json:"lesson_template_content"`
	TopicID     *uuid.UUID     `json:"lesson_template_topic_id,omitempty"`
	CreatedAt   time.Time      `json:"lesson_template_created_at"`
	UpdatedAt   *time.Time     `json:"lesson_template_updated_at,omitempty"`
}

/* =========================================================
   3) MAPPERS
   ========================================================= */

func (r CreateLessonTemplateRequest) ToModel(ownerID uuid.UUID) templateModel.LessonTemplateModel {
	visibility := templateModel.LessonTemplateVisibilityPrivate
	if r.Visibility != nil {
		visibility = *r.Visibility
	}

	content := r.Content
	if len(content) == 0 {
		content = datatypes.JSON([]byte(`{}`))
	}

	return templateModel.LessonTemplateModel{
		LessonTemplateOwnerID:     ownerID,
		LessonTemplateTitle:       strings.TrimSpace(r.Title),
		LessonTemplateDescription: strings.TrimSpace(r.Description),
		LessonTemplateSubject:     strings.TrimSpace(r.Subject),
		LessonTemplateGrade:       r.Grade,
		LessonTemplateVisibility:  visibility,
		LessonTemplateContent:     content,
		LessonTemplateTopicID:     r.TopicID,
	}
}

func FromLessonTemplateModel(m templateModel.LessonTemplateModel) LessonTemplateResponse {
	return LessonTemplateResponse{
		ID:          m.LessonTemplateID,
		OwnerID:     m.LessonTemplateOwnerID,
		Title:       m.LessonTemplateTitle,
		Description: m.LessonTemplateDescription,
		Subject:     m.LessonTemplateSubject,
		Grade:       m.LessonTemplateGrade,
		Visibility:  m.LessonTemplateVisibility,
		Content:     m.LessonTemplateContent,
		TopicID:     m.LessonTemplateTopicID,
		CreatedAt:   m.LessonTemplateCreatedAt,
		UpdatedAt:   m.LessonTemplateUpdatedAt,
	}
}

func FromLessonTemplateModels(models []templateModel.LessonTemplateModel) []LessonTemplateResponse {
	out := make([]LessonTemplateResponse, 0, len(models))
	for _, m := range models {
		out = append(out, FromLessonTemplateModel(m))
	}
	return out
}

// Normalize merapikan field string SEBELUM validasi,
// supaya "   " tidak lolos min=1 lalu tersimpan kosong.
func (r *UpdateLessonTemplateRequest) Normalize() {
	if r.Title != nil {
		t := strings.TrimSpace(*r.Title)
		r.Title = &t
	}
	if r.Description != nil {
		d := strings.TrimSpace(*r.Description)
		r.Description = &d
	}
	if r.Subject != nil {
		s := strings.TrimSpace(*r.Subject)
		r.Subject = &s
	}
}

/* =========================================================
   4) APPLY (partial update helper)
   ========================================================= */

func (r UpdateLessonTemplateRequest) Apply(m *templateModel.LessonTemplateModel) {
	if r.Title != nil {
		m.LessonTemplateTitle = strings.TrimSpace(*r.Title)
	}
	if r.Description != nil {
		m.LessonTemplateDescription = strings.TrimSpace(*r.Description)
	}
	if r.Subject != nil {
		m.LessonTemplateSubject = strings.TrimSpace(*r.Subject)
	}
	if r.Grade != nil {
		m.LessonTemplateGrade = *r.Grade
	}
	if len(r.Content) > 0 {
		m.LessonTemplateContent = r.Content
	}
	if r.TopicID != nil {
		m.LessonTemplateTopicID = r.TopicID
	}
}

// internals/features/lesson/lesson_templates/model/lesson_template_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Visibility template. PUBLIC bisa dibaca principal mana pun;
// PRIVATE hanya owner. Mutasi (termasuk toggle) selalu owner-only.
const (
	LessonTemplateVisibilityPrivate = "PRIVATE"
	LessonTemplateVisibilityPublic  = "PUBLIC"
)

// LessonTemplateModel merepresentasikan tabel "lesson_templates".
// Content adalah dokumen terstruktur (objectives, duration, method,
// outline, equipment) yang disalin byte-per-byte saat materialize —
// menghapus/mengubah template tidak pernah mempengaruhi RPP hasil salinan.
type LessonTemplateModel struct {
	LessonTemplateID      uuid.UUID `gorm:"column:lesson_template_id;type:uuid;primaryKey" json:"lesson_template_id"`
	LessonTemplateOwnerID uuid.UUID `gorm:"column:lesson_template_owner_id;type:uuid;not null;index" json:"lesson_template_owner_id"`

	LessonTemplateTitle       string `gorm:"column:lesson_template_title;type:varchar(200);not null" json:"lesson_template_title"`
	LessonTemplateDescription string `gorm:"column:lesson_template_description;type:text;not null" json:"lesson_template_description"`

	LessonTemplateSubject string `gorm:"column:lesson_template_subject;type:varchar(40);not null" json:"lesson_template_subject"`
	LessonTemplateGrade   int    `gorm:"column:lesson_template_grade;not null" json:"lesson_template_grade"`

	LessonTemplateVisibility string         `gorm:"column:lesson_template_visibility;type:varchar(10);not null;default:'PRIVATE'" json:"lesson_template_visibility"`
	LessonTemplateContent    datatypes.JSON `gorm:"column:lesson_template_content;type:jsonb;not null" json:"lesson_template_content"`

	LessonTemplateTopicID *uuid.UUID `gorm:"column:lesson_template_topic_id;type:uuid" json:"lesson_template_topic_id,omitempty"`

	LessonTemplateCreatedAt time.Time  `gorm:"column:lesson_template_created_at;not null" json:"lesson_template_created_at"`
	LessonTemplateUpdatedAt *time.Time `gorm:"column:lesson_template_updated_at" json:"lesson_template_updated_at,omitempty"`
	LessonTemplateDeletedAt *time.Time `gorm:"column:lesson_template_deleted_at" json:"lesson_template_deleted_at,omitempty"`
}

func (LessonTemplateModel) TableName() string { return "lesson_templates" }

func (m *LessonTemplateModel) BeforeCreate(tx *gorm.DB) error {
	if m.LessonTemplateID == uuid.Nil {
		m.LessonTemplateID = uuid.New()
	}
	if m.LessonTemplateVisibility == "" {
		m.LessonTemplateVisibility = LessonTemplateVisibilityPrivate
	}
	if len(m.LessonTemplateContent) == 0 {
		m.LessonTemplateContent = datatypes.JSON([]byte(`{}`))
	}
	if m.LessonTemplateCreatedAt.IsZero() {
		m.LessonTemplateCreatedAt = time.Now()
	}
	return nil
}

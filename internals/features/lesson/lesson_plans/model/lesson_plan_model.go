// internals/features/lesson/lesson_plans/model/lesson_plan_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Status RPP. Alurnya satu arah: DRAFT → COMPLETED → PUBLISHED → ARCHIVED.
// Perubahan status HANYA lewat endpoint transisi (approve/publish/archive),
// bukan lewat update biasa.
const (
	LessonPlanStatusDraft     = "DRAFT"
	LessonPlanStatusCompleted = "COMPLETED"
	LessonPlanStatusPublished = "PUBLISHED"
	LessonPlanStatusArchived  = "ARCHIVED"
)

// LessonPlanModel merepresentasikan tabel "lesson_plans".
// Owner adalah partition key isolasi: semua query wajib difilter owner_id.
type LessonPlanModel struct {
	LessonPlanID      uuid.UUID `gorm:"column:lesson_plan_id;type:uuid;primaryKey" json:"lesson_plan_id"`
	LessonPlanOwnerID uuid.UUID `gorm:"column:lesson_plan_owner_id;type:uuid;not null;index" json:"lesson_plan_owner_id"`

	LessonPlanTitle       string  `gorm:"column:lesson_plan_title;type:varchar(200);not null" json:"lesson_plan_title"`
	LessonPlanDescription *string `gorm:"column:lesson_plan_description;type:text" json:"lesson_plan_description,omitempty"`

	LessonPlanGrade       int    `gorm:"column:lesson_plan_grade;not null" json:"lesson_plan_grade"`
	LessonPlanSubject     string `gorm:"column:lesson_plan_subject;type:varchar(40);not null" json:"lesson_plan_subject"`
	LessonPlanPeriodCount int    `gorm:"column:lesson_plan_period_count;not null;default:1" json:"lesson_plan_period_count"`

	LessonPlanClassroom           *string `gorm:"column:lesson_plan_classroom;type:varchar(80)" json:"lesson_plan_classroom,omitempty"`
	LessonPlanNote                *string `gorm:"column:lesson_plan_note;type:text" json:"lesson_plan_note,omitempty"`
	LessonPlanUsesAI              bool    `gorm:"column:lesson_plan_uses_ai;not null;default:false" json:"lesson_plan_uses_ai"`
	LessonPlanSpecialRequirements *string `gorm:"column:lesson_plan_special_requirements;type:text" json:"lesson_plan_special_requirements,omitempty"`

	LessonPlanStatus  string         `gorm:"column:lesson_plan_status;type:varchar(20);not null;default:'DRAFT'" json:"lesson_plan_status"`
	LessonPlanContent datatypes.JSON `gorm:"column:lesson_plan_content;type:jsonb;not null" json:"lesson_plan_content"`

	LessonPlanTopicID *uuid.UUID `gorm:"column:lesson_plan_topic_id;type:uuid" json:"lesson_plan_topic_id,omitempty"`

	LessonPlanCreatedAt time.Time  `gorm:"column:lesson_plan_created_at;not null" json:"lesson_plan_created_at"`
	LessonPlanUpdatedAt *time.Time `gorm:"column:lesson_plan_updated_at" json:"lesson_plan_updated_at,omitempty"`
	LessonPlanDeletedAt *time.Time `gorm:"column:lesson_plan_deleted_at" json:"lesson_plan_deleted_at,omitempty"`
}

func (LessonPlanModel) TableName() string { return "lesson_plans" }

func (m *LessonPlanModel) BeforeCreate(tx *gorm.DB) error {
	if m.LessonPlanID == uuid.Nil {
		m.LessonPlanID = uuid.New()
	}
	if m.LessonPlanStatus == "" {
		m.LessonPlanStatus = LessonPlanStatusDraft
	}
	if len(m.LessonPlanContent) == 0 {
		m.LessonPlanContent = datatypes.JSON([]byte(`{}`))
	}
	if m.LessonPlanCreatedAt.IsZero() {
		m.LessonPlanCreatedAt = time.Now()
	}
	return nil
}

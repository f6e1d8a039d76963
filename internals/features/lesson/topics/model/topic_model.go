// internals/features/lesson/topics/model/topic_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TopicModel merepresentasikan tabel "topics".
// Append-only: tidak ada endpoint update/delete.
// Nama duplikat dalam satu subject sengaja tidak dicegah.
type TopicModel struct {
	TopicID      uuid.UUID `gorm:"column:topic_id;type:uuid;primaryKey" json:"topic_id"`
	TopicOwnerID uuid.UUID `gorm:"column:topic_owner_id;type:uuid;not null" json:"topic_owner_id"`

	TopicName        string  `gorm:"column:topic_name;type:varchar(120);not null" json:"topic_name"`
	TopicDescription *string `gorm:"column:topic_description;type:text" json:"topic_description,omitempty"`
	TopicSubject     string  `gorm:"column:topic_subject;type:varchar(40);not null;index" json:"topic_subject"`

	TopicCreatedAt time.Time `gorm:"column:topic_created_at;not null" json:"topic_created_at"`
}

func (TopicModel) TableName() string { return "topics" }

func (m *TopicModel) BeforeCreate(tx *gorm.DB) error {
	if m.TopicID == uuid.Nil {
		m.TopicID = uuid.New()
	}
	if m.TopicCreatedAt.IsZero() {
		m.TopicCreatedAt = time.Now()
	}
	return nil
}

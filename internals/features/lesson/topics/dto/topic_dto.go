// internals/features/lesson/topics/dto/topic_dto.go
package dto

import (
	"strings"
	"time"

	topicModel "gurupintar_backend/internals/features/lesson/topics/model"

	"github.com/google/uuid"
)

type CreateTopicRequest struct {
	Name        string  `json:"topic_name" validate:"required,max=120"`
	Description *string `json:"topic_description" validate:"omitempty"`
	Subject     string  `json:"topic_subject" validate:"required,max=40"`
}

type TopicResponse struct {
	ID          uuid.UUID `json:"topic_id"`
	Name        string    `json:"topic_name"`
	Description *string   `json:"topic_description,omitempty"`
	Subject     string    `json:"topic_subject"`
	CreatedAt   time.Time `json:"topic_created_at"`
}

func (r CreateTopicRequest) ToModel(ownerID uuid.UUID) topicModel.TopicModel {
	var desc *string
	if r.Description != nil {
		d := strings.TrimSpace(*r.Description)
		if d != "" {
			desc = &d
		}
	}
	return topicModel.TopicModel{
		TopicOwnerID:     ownerID,
		TopicName:        strings.TrimSpace(r.Name),
		TopicDescription: desc,
		TopicSubject:     strings.TrimSpace(r.Subject),
	}
}

func FromTopicModel(m topicModel.TopicModel) TopicResponse {
	return TopicResponse{
		ID:          m.TopicID,
		Name:        m.TopicName,
		Description: m.TopicDescription,
		Subject:     m.TopicSubject,
		CreatedAt:   m.TopicCreatedAt,
	}
}

func FromTopicModels(models []topicModel.TopicModel) []TopicResponse {
	out := make([]TopicResponse, 0, len(models))
	for _, m := range models {
		out = append(out, FromTopicModel(m))
	}
	return out
}

package topics

import (
	"encoding/json"
	"log"
	"os"

	topicModel "gurupintar_backend/internals/features/lesson/topics/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type topicSeed struct {
	Name        string  `json:"topic_name"`
	Description *string `json:"topic_description"`
	Subject     string  `json:"topic_subject"`
}

// SeedTopicsFromJSON mengisi tabel topics dari file JSON.
// Idempotent: tidak melakukan apa-apa jika tabel sudah terisi.
func SeedTopicsFromJSON(db *gorm.DB, path string) {
	var count int64
	if err := db.Model(&topicModel.TopicModel{}).Count(&count).Error; err != nil {
		log.Printf("❌ Gagal cek tabel topics: %v", err)
		return
	}
	if count > 0 {
		log.Println("⏭️  Seed topics dilewati, tabel sudah terisi")
		return
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		log.Printf("❌ Gagal membaca %s: %v", path, err)
		return
	}

	var seeds []topicSeed
	if err := json.Unmarshal(raw, &seeds); err != nil {
		log.Printf("❌ Format JSON seed topics tidak valid: %v", err)
		return
	}

	rows := make([]topicModel.TopicModel, 0, len(seeds))
	for _, s := range seeds {
		rows = append(rows, topicModel.TopicModel{
			TopicOwnerID:     uuid.Nil, // topik bawaan sistem
			TopicName:        s.Name,
			TopicDescription: s.Description,
			TopicSubject:     s.Subject,
		})
	}

	if err := db.Create(&rows).Error; err != nil {
		log.Printf("❌ Gagal seed topics: %v", err)
		return
	}
	log.Printf("✅ Seed %d topik bawaan", len(rows))
}

package seeds

import (
	topics "gurupintar_backend/internals/seeds/topics"

	"gorm.io/gorm"
)

// RunAllSeeds menjalankan semua seeder data awal.
// Dipanggil dari main saat RUN_SEEDS=true.
func RunAllSeeds(db *gorm.DB) {
	topics.SeedTopicsFromJSON(db, "internals/seeds/topics/data_topics.json")
}

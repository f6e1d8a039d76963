package service_test

import (
	"testing"

	planDTO "gurupintar_backend/internals/features/lesson/lesson_plans/dto"
	planModel "gurupintar_backend/internals/features/lesson/lesson_plans/model"
	"gurupintar_backend/internals/features/lesson/lesson_plans/service"
	templateModel "gurupintar_backend/internals/features/lesson/lesson_templates/model"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newMaterializeDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, db.AutoMigrate(&planModel.LessonPlanModel{}, &templateModel.LessonTemplateModel{}))
	return db
}

func seedTemplate(t *testing.T, db *gorm.DB, ownerID uuid.UUID, visibility string) templateModel.LessonTemplateModel {
	t.Helper()
	m := templateModel.LessonTemplateModel{
		LessonTemplateOwnerID:     ownerID,
		LessonTemplateTitle:       "Template standar",
		LessonTemplateDescription: "Template RPP kimia kelas 10",
		LessonTemplateSubject:     "CHEMISTRY",
		LessonTemplateGrade:       10,
		LessonTemplateVisibility:  visibility,
		LessonTemplateContent:     datatypes.JSON([]byte(`{"objectives":"memahami struktur atom","duration_minutes":90,"method":"diskusi","outline":["pembukaan","inti","penutup"],"equipment":["papan tulis"]}`)),
	}
	require.NoError(t, db.Create(&m).Error)
	return m
}

func TestMaterializeCopiesTemplateDefaults(t *testing.T) {
	db := newMaterializeDB(t)
	owner := uuid.New()
	tpl := seedTemplate(t, db, owner, templateModel.LessonTemplateVisibilityPrivate)

	m, err := service.Materialize(db, owner, tpl.LessonTemplateID, planDTO.MaterializeLessonPlanRequest{})
	require.NoError(t, err)

	assert.NotEqual(t, tpl.LessonTemplateID, m.LessonPlanID)
	assert.Equal(t, owner, m.LessonPlanOwnerID)
	assert.Equal(t, tpl.LessonTemplateTitle, m.LessonPlanTitle)
	assert.Equal(t, tpl.LessonTemplateGrade, m.LessonPlanGrade)
	assert.Equal(t, tpl.LessonTemplateSubject, m.LessonPlanSubject)
	assert.Equal(t, planModel.LessonPlanStatusDraft, m.LessonPlanStatus)
	assert.JSONEq(t, string(tpl.LessonTemplateContent), string(m.LessonPlanContent))
}

func TestMaterializeAppliesOverrides(t *testing.T) {
	db := newMaterializeDB(t)
	owner := uuid.New()
	tpl := seedTemplate(t, db, owner, templateModel.LessonTemplateVisibilityPrivate)

	title := "RPP kelas 11 IPA 2"
	grade := 11
	periods := 3
	classroom := "XI IPA 2"
	usesAI := true
	m, err := service.Materialize(db, owner, tpl.LessonTemplateID, planDTO.MaterializeLessonPlanRequest{
		Title:       &title,
		Grade:       &grade,
		PeriodCount: &periods,
		Classroom:   &classroom,
		UsesAI:      &usesAI,
	})
	require.NoError(t, err)

	assert.Equal(t, title, m.LessonPlanTitle)
	assert.Equal(t, grade, m.LessonPlanGrade)
	assert.Equal(t, periods, m.LessonPlanPeriodCount)
	require.NotNil(t, m.LessonPlanClassroom)
	assert.Equal(t, classroom, *m.LessonPlanClassroom)
	assert.True(t, m.LessonPlanUsesAI)
	// field tanpa override tetap default template
	assert.Equal(t, tpl.LessonTemplateSubject, m.LessonPlanSubject)
}

func TestMaterializeSnapshotIndependence(t *testing.T) {
	db := newMaterializeDB(t)
	owner := uuid.New()
	tpl := seedTemplate(t, db, owner, templateModel.LessonTemplateVisibilityPrivate)
	originalContent := string(tpl.LessonTemplateContent)

	m, err := service.Materialize(db, owner, tpl.LessonTemplateID, planDTO.MaterializeLessonPlanRequest{})
	require.NoError(t, err)

	// mutasi content template, lalu hapus templatenya
	require.NoError(t, db.Model(&templateModel.LessonTemplateModel{}).
		Where("lesson_template_id = ?", tpl.LessonTemplateID).
		Update("lesson_template_content", datatypes.JSON([]byte(`{"objectives":"DIUBAH TOTAL"}`))).Error)
	require.NoError(t, db.Delete(&templateModel.LessonTemplateModel{}, "lesson_template_id = ?", tpl.LessonTemplateID).Error)

	var reloaded planModel.LessonPlanModel
	require.NoError(t, db.First(&reloaded, "lesson_plan_id = ?", m.LessonPlanID).Error)
	assert.JSONEq(t, originalContent, string(reloaded.LessonPlanContent))
}

func TestMaterializePrivateTemplateOfOtherOwner(t *testing.T) {
	db := newMaterializeDB(t)
	ownerA := uuid.New()
	ownerB := uuid.New()
	tpl := seedTemplate(t, db, ownerA, templateModel.LessonTemplateVisibilityPrivate)

	_, err := service.Materialize(db, ownerB, tpl.LessonTemplateID, planDTO.MaterializeLessonPlanRequest{})
	require.Error(t, err)
	fe, ok := err.(*fiber.Error)
	require.True(t, ok)
	assert.Equal(t, fiber.StatusNotFound, fe.Code)
}

func TestMaterializePublicTemplateOfOtherOwner(t *testing.T) {
	db := newMaterializeDB(t)
	ownerA := uuid.New()
	ownerB := uuid.New()
	tpl := seedTemplate(t, db, ownerA, templateModel.LessonTemplateVisibilityPublic)

	m, err := service.Materialize(db, ownerB, tpl.LessonTemplateID, planDTO.MaterializeLessonPlanRequest{})
	require.NoError(t, err)
	assert.Equal(t, ownerB, m.LessonPlanOwnerID)
}

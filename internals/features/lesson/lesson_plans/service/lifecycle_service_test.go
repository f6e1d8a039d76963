package service_test

import (
	"testing"

	planModel "gurupintar_backend/internals/features/lesson/lesson_plans/model"
	"gurupintar_backend/internals/features/lesson/lesson_plans/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, db.AutoMigrate(&planModel.LessonPlanModel{}))
	return db
}

func seedPlan(t *testing.T, db *gorm.DB, ownerID uuid.UUID, status string) planModel.LessonPlanModel {
	t.Helper()
	m := planModel.LessonPlanModel{
		LessonPlanOwnerID:     ownerID,
		LessonPlanTitle:       "Struktur atom",
		LessonPlanGrade:       10,
		LessonPlanSubject:     "CHEMISTRY",
		LessonPlanPeriodCount: 2,
		LessonPlanStatus:      status,
	}
	require.NoError(t, db.Create(&m).Error)
	return m
}

func fiberCode(t *testing.T, err error) int {
	t.Helper()
	fe, ok := err.(*fiber.Error)
	require.True(t, ok, "expected *fiber.Error, got %T", err)
	return fe.Code
}

func TestTransitionHappyPath(t *testing.T) {
	db := newTestDB(t)
	owner := uuid.New()
	m := seedPlan(t, db, owner, planModel.LessonPlanStatusDraft)

	steps := []struct {
		action string
		want   string
	}{
		{service.ActionApprove, planModel.LessonPlanStatusCompleted},
		{service.ActionPublish, planModel.LessonPlanStatusPublished},
		{service.ActionArchive, planModel.LessonPlanStatusArchived},
	}
	for _, s := range steps {
		updated, err := service.Transition(db, owner, m.LessonPlanID, s.action)
		require.NoError(t, err, "action %s", s.action)
		assert.Equal(t, s.want, updated.LessonPlanStatus)
		assert.NotNil(t, updated.LessonPlanUpdatedAt)

		var reloaded planModel.LessonPlanModel
		require.NoError(t, db.First(&reloaded, "lesson_plan_id = ?", m.LessonPlanID).Error)
		assert.Equal(t, s.want, reloaded.LessonPlanStatus)
	}
}

func TestTransitionRejectsWrongSourceState(t *testing.T) {
	db := newTestDB(t)
	owner := uuid.New()

	cases := []struct {
		status string
		action string
	}{
		{planModel.LessonPlanStatusDraft, service.ActionPublish},
		{planModel.LessonPlanStatusDraft, service.ActionArchive},
		{planModel.LessonPlanStatusCompleted, service.ActionApprove},
		{planModel.LessonPlanStatusCompleted, service.ActionArchive},
		{planModel.LessonPlanStatusPublished, service.ActionApprove},
		{planModel.LessonPlanStatusPublished, service.ActionPublish},
		{planModel.LessonPlanStatusArchived, service.ActionApprove},
		{planModel.LessonPlanStatusArchived, service.ActionPublish},
		{planModel.LessonPlanStatusArchived, service.ActionArchive},
	}
	for _, tc := range cases {
		m := seedPlan(t, db, owner, tc.status)

		_, err := service.Transition(db, owner, m.LessonPlanID, tc.action)
		require.Error(t, err, "%s from %s", tc.action, tc.status)
		assert.Equal(t, fiber.StatusConflict, fiberCode(t, err))

		// status tidak boleh berubah setelah transisi gagal
		var reloaded planModel.LessonPlanModel
		require.NoError(t, db.First(&reloaded, "lesson_plan_id = ?", m.LessonPlanID).Error)
		assert.Equal(t, tc.status, reloaded.LessonPlanStatus)
	}
}

func TestTransitionUnknownAction(t *testing.T) {
	db := newTestDB(t)
	owner := uuid.New()
	m := seedPlan(t, db, owner, planModel.LessonPlanStatusDraft)

	_, err := service.Transition(db, owner, m.LessonPlanID, "reject")
	require.Error(t, err)
	assert.Equal(t, fiber.StatusBadRequest, fiberCode(t, err))
}

func TestTransitionNotFoundForOtherOwner(t *testing.T) {
	db := newTestDB(t)
	owner := uuid.New()
	intruder := uuid.New()
	m := seedPlan(t, db, owner, planModel.LessonPlanStatusDraft)

	_, err := service.Transition(db, intruder, m.LessonPlanID, service.ActionApprove)
	require.Error(t, err)
	// 404, bukan 403: keberadaan RPP orang lain tidak dibocorkan
	assert.Equal(t, fiber.StatusNotFound, fiberCode(t, err))

	var reloaded planModel.LessonPlanModel
	require.NoError(t, db.First(&reloaded, "lesson_plan_id = ?", m.LessonPlanID).Error)
	assert.Equal(t, planModel.LessonPlanStatusDraft, reloaded.LessonPlanStatus)
}

func TestTransitionNotFoundForMissingPlan(t *testing.T) {
	db := newTestDB(t)

	_, err := service.Transition(db, uuid.New(), uuid.New(), service.ActionApprove)
	require.Error(t, err)
	assert.Equal(t, fiber.StatusNotFound, fiberCode(t, err))
}

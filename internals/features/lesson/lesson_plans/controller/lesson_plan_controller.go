// internals/features/lesson/lesson_plans/controller/lesson_plan_controller.go
package controller

import (
	"errors"
	"strings"
	"time"

	planDTO "gurupintar_backend/internals/features/lesson/lesson_plans/dto"
	planModel "gurupintar_backend/internals/features/lesson/lesson_plans/model"
	planService "gurupintar_backend/internals/features/lesson/lesson_plans/service"
	helper "gurupintar_backend/internals/helpers"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type LessonPlanController struct {
	DB *gorm.DB
}

var validate = validator.New()

/* =========================================================
   CREATE
   POST /api/u/lesson-plans
   Body: CreateLessonPlanRequest
   ========================================================= */
func (h *LessonPlanController) CreateLessonPlan(c *fiber.Ctx) error {
	ownerID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var req planDTO.CreateLessonPlanRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}

	req.Title = strings.TrimSpace(req.Title)
	req.Subject = strings.TrimSpace(req.Subject)

	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	m := req.ToModel(ownerID)
	if err := h.DB.Create(&m).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal membuat RPP")
	}

	return helper.JsonCreated(c, "RPP berhasil dibuat", planDTO.FromLessonPlanModel(m))
}

/* =========================================================
   GET BY ID
   GET /api/u/lesson-plans/:id
   Selalu owner-scoped: RPP milik orang lain = 404.
   ========================================================= */
func (h *LessonPlanController) GetLessonPlan(c *fiber.Ctx) error {
	ownerID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "ID tidak valid")
	}

	var m planModel.LessonPlanModel
	if err := h.DB.First(&m,
		"lesson_plan_id = ? AND lesson_plan_owner_id = ? AND lesson_plan_deleted_at IS NULL",
		id, ownerID,
	).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "RPP tidak ditemukan")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil data")
	}

	return helper.JsonOK(c, "Detail RPP ditemukan", planDTO.FromLessonPlanModel(m))
}

/* =========================================================
   LIST
   GET /api/u/lesson-plans?keyword=&subject=&grade=&status=&topic_id=&order_by=&sort=&page=&per_page=
   - Filter AND; narrowing "milik sendiri" SELALU dipasang server-side
   - includes.status_counts: agregat per status (hormati semua filter kecuali status)
   ========================================================= */
func (h *LessonPlanController) ListLessonPlans(c *fiber.Ctx) error {
	ownerID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var q planDTO.ListLessonPlanQuery
	if err := c.QueryParser(&q); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Query tidak valid")
	}
	if err := validate.Struct(q); err != nil {
		return helper.ValidationError(c, err)
	}

	paging := helper.ResolvePaging(c, 20, 200)

	// base: tenant + soft delete + filter non-status
	base := func() *gorm.DB {
		tx := h.DB.Model(&planModel.LessonPlanModel{}).
			Where("lesson_plan_owner_id = ? AND lesson_plan_deleted_at IS NULL", ownerID)
		if q.Subject != nil && strings.TrimSpace(*q.Subject) != "" {
			tx = tx.Where("lesson_plan_subject = ?", strings.TrimSpace(*q.Subject))
		}
		if q.Grade != nil {
			tx = tx.Where("lesson_plan_grade = ?", *q.Grade)
		}
		if q.TopicID != nil && strings.TrimSpace(*q.TopicID) != "" {
			tx = tx.Where("lesson_plan_topic_id = ?", strings.TrimSpace(*q.TopicID))
		}
		if q.Keyword != nil && strings.TrimSpace(*q.Keyword) != "" {
			kw := "%" + strings.ToLower(strings.TrimSpace(*q.Keyword)) + "%"
			tx = tx.Where("(LOWER(lesson_plan_title) LIKE ? OR LOWER(COALESCE(lesson_plan_description, '')) LIKE ?)", kw, kw)
		}
		return tx
	}

	// agregat badge per status (tanpa filter status)
	var grouped []struct {
		Status string
		Count  int64
	}
	if err := base().
		Select("lesson_plan_status AS status, COUNT(*) AS count").
		Group("lesson_plan_status").
		Scan(&grouped).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal menghitung agregat status")
	}
	var counts planDTO.LessonPlanStatusCounts
	for _, g := range grouped {
		switch g.Status {
		case planModel.LessonPlanStatusDraft:
			counts.Draft = g.Count
		case planModel.LessonPlanStatusCompleted:
			counts.Completed = g.Count
		case planModel.LessonPlanStatusPublished:
			counts.Published = g.Count
		case planModel.LessonPlanStatusArchived:
			counts.Archived = g.Count
		}
	}

	// data query (dengan filter status)
	tx := base()
	if q.Status != nil {
		tx = tx.Where("lesson_plan_status = ?", *q.Status)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal menghitung total data")
	}

	// order by whitelist
	orderBy := "lesson_plan_created_at"
	if q.OrderBy != nil {
		switch strings.ToLower(*q.OrderBy) {
		case "title":
			orderBy = "lesson_plan_title"
		case "created_at":
			orderBy = "lesson_plan_created_at"
		case "updated_at":
			orderBy = "lesson_plan_updated_at"
		}
	}
	sort := "ASC"
	if q.Sort != nil && strings.ToLower(*q.Sort) == "desc" {
		sort = "DESC"
	}

	var rows []planModel.LessonPlanModel
	if err := tx.
		Order(orderBy + " " + sort).
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil data")
	}

	return helper.JsonListEx(c, "Daftar RPP",
		planDTO.FromLessonPlanModels(rows),
		helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage),
		fiber.Map{"status_counts": counts},
	)
}

/* =========================================================
   UPDATE (partial)
   PUT /api/u/lesson-plans/:id
   Tidak ada jalur status di sini — lihat endpoint transisi.
   ========================================================= */
func (h *LessonPlanController) UpdateLessonPlan(c *fiber.Ctx) error {
	ownerID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "ID tidak valid")
	}

	var req planDTO.UpdateLessonPlanRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	req.Normalize()
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	if err := h.DB.Transaction(func(tx *gorm.DB) error {
		var m planModel.LessonPlanModel
		if err := tx.First(&m,
			"lesson_plan_id = ? AND lesson_plan_owner_id = ? AND lesson_plan_deleted_at IS NULL",
			id, ownerID,
		).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "RPP tidak ditemukan")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil data")
		}

		req.Apply(&m)
		now := time.Now()
		m.LessonPlanUpdatedAt = &now

		// update field spesifik (owner & status tidak pernah ikut)
		patch := map[string]interface{}{
			"lesson_plan_title":                m.LessonPlanTitle,
			"lesson_plan_description":          m.LessonPlanDescription,
			"lesson_plan_grade":                m.LessonPlanGrade,
			"lesson_plan_subject":              m.LessonPlanSubject,
			"lesson_plan_period_count":         m.LessonPlanPeriodCount,
			"lesson_plan_classroom":            m.LessonPlanClassroom,
			"lesson_plan_note":                 m.LessonPlanNote,
			"lesson_plan_uses_ai":              m.LessonPlanUsesAI,
			"lesson_plan_special_requirements": m.LessonPlanSpecialRequirements,
			"lesson_plan_content":              m.LessonPlanContent,
			"lesson_plan_topic_id":             m.LessonPlanTopicID,
			"lesson_plan_updated_at":           m.LessonPlanUpdatedAt,
		}
		if err := tx.Model(&planModel.LessonPlanModel{}).
			Where("lesson_plan_id = ?", m.LessonPlanID).
			Updates(patch).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal memperbarui RPP")
		}

		c.Locals("updated_plan", m)
		return nil
	}); err != nil {
		return err
	}

	m := c.Locals("updated_plan").(planModel.LessonPlanModel)
	return helper.JsonUpdated(c, "RPP berhasil diperbarui", planDTO.FromLessonPlanModel(m))
}

/* =========================================================
   DELETE (soft)
   DELETE /api/u/lesson-plans/:id
   Boleh dari status apa pun.
   ========================================================= */
func (h *LessonPlanController) DeleteLessonPlan(c *fiber.Ctx) error {
	ownerID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "ID tidak valid")
	}

	if err := h.DB.Transaction(func(tx *gorm.DB) error {
		var m planModel.LessonPlanModel
		if err := tx.First(&m,
			"lesson_plan_id = ? AND lesson_plan_owner_id = ? AND lesson_plan_deleted_at IS NULL",
			id, ownerID,
		).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "RPP tidak ditemukan")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil data")
		}

		now := time.Now()
		if err := tx.Model(&planModel.LessonPlanModel{}).
			Where("lesson_plan_id = ?", id).
			Updates(map[string]interface{}{
				"lesson_plan_deleted_at": &now,
				"lesson_plan_updated_at": &now,
			}).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal menghapus RPP")
		}

		c.Locals("deleted_plan", m)
		return nil
	}); err != nil {
		return err
	}

	m := c.Locals("deleted_plan").(planModel.LessonPlanModel)
	return helper.JsonDeleted(c, "RPP berhasil dihapus", planDTO.FromLessonPlanModel(m))
}

/* =========================================================
   FROM TEMPLATE (snapshot materialize)
   POST /api/u/lesson-plans/from-template/:templateId
   Body: MaterializeLessonPlanRequest (override opsional)
   ========================================================= */
func (h *LessonPlanController) CreateFromTemplate(c *fiber.Ctx) error {
	ownerID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	templateID, err := uuid.Parse(strings.TrimSpace(c.Params("templateId")))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "ID template tidak valid")
	}

	var req planDTO.MaterializeLessonPlanRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
		}
	}
	if req.Title != nil {
		t := strings.TrimSpace(*req.Title)
		req.Title = &t
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	if err := h.DB.Transaction(func(tx *gorm.DB) error {
		m, err := planService.Materialize(tx, ownerID, templateID, req)
		if err != nil {
			return err
		}
		c.Locals("materialized_plan", m)
		return nil
	}); err != nil {
		return err
	}

	m := c.Locals("materialized_plan").(planModel.LessonPlanModel)
	return helper.JsonCreated(c, "RPP berhasil dibuat dari template", planDTO.FromLessonPlanModel(m))
}

/* =========================================================
   TRANSISI STATUS
   POST /api/u/lesson-plans/:id/approve  (DRAFT → COMPLETED)
   POST /api/u/lesson-plans/:id/publish  (COMPLETED → PUBLISHED)
   POST /api/u/lesson-plans/:id/archive  (PUBLISHED → ARCHIVED)
   ========================================================= */
func (h *LessonPlanController) ApproveLessonPlan(c *fiber.Ctx) error {
	return h.transition(c, planService.ActionApprove, "RPP disetujui")
}

func (h *LessonPlanController) PublishLessonPlan(c *fiber.Ctx) error {
	return h.transition(c, planService.ActionPublish, "RPP dipublikasikan")
}

func (h *LessonPlanController) ArchiveLessonPlan(c *fiber.Ctx) error {
	return h.transition(c, planService.ActionArchive, "RPP diarsipkan")
}

func (h *LessonPlanController) transition(c *fiber.Ctx, action, okMessage string) error {
	ownerID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "ID tidak valid")
	}

	if err := h.DB.Transaction(func(tx *gorm.DB) error {
		m, err := planService.Transition(tx, ownerID, id, action)
		if err != nil {
			return err
		}
		c.Locals("transitioned_plan", m)
		return nil
	}); err != nil {
		return err
	}

	m := c.Locals("transitioned_plan").(planModel.LessonPlanModel)
	return helper.JsonUpdated(c, okMessage, planDTO.FromLessonPlanModel(m))
}

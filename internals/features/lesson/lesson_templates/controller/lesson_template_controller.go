// internals/features/lesson/lesson_templates/controller/lesson_template_controller.go
package controller

import (
	"errors"
	"strconv"
	"strings"
	"time"

	templateDTO "gurupintar_backend/internals/features/lesson/lesson_templates/dto"
	templateModel "gurupintar_backend/internals/features/lesson/lesson_templates/model"
	helper "gurupintar_backend/internals/helpers"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type LessonTemplateController struct {
	DB *gorm.DB
}

var validate = validator.New()

/* =========================================================
   CREATE
   POST /api/u/templates
   ========================================================= */
func (h *LessonTemplateController) CreateTemplate(c *fiber.Ctx) error {
	ownerID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var req templateDTO.CreateLessonTemplateRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}

	req.Title = strings.TrimSpace(req.Title)
	req.Description = strings.TrimSpace(req.Description)
	req.Subject = strings.TrimSpace(req.Subject)

	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	m := req.ToModel(ownerID)
	if err := h.DB.Create(&m).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal membuat template")
	}

	return helper.JsonCreated(c, "Template berhasil dibuat", templateDTO.FromLessonTemplateModel(m))
}

/* =========================================================
   GET BY ID
   GET /api/u/templates/:id
   PUBLIC boleh siapa saja; PRIVATE hanya owner (selain itu 404,
   keberadaan template orang lain tidak dibocorkan).
   ========================================================= */
func (h *LessonTemplateController) GetTemplate(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "ID tidak valid")
	}

	var m templateModel.LessonTemplateModel
	if err := h.DB.First(&m,
		"lesson_template_id = ? AND lesson_template_deleted_at IS NULL AND (lesson_template_visibility = ? OR lesson_template_owner_id = ?)",
		id, templateModel.LessonTemplateVisibilityPublic, userID,
	).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Template tidak ditemukan")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil data")
	}

	return helper.JsonOK(c, "Detail template ditemukan", templateDTO.FromLessonTemplateModel(m))
}

/* =========================================================
   LIST PUBLIC
   GET /api/u/templates/public?keyword=&subject=&grade=
   Hanya visibility PUBLIC, tanpa batasan owner.
   ========================================================= */
func (h *LessonTemplateController) ListPublicTemplates(c *fiber.Ctx) error {
	if _, err := helper.GetUserIDFromToken(c); err != nil {
		return err
	}

	tx := h.DB.Model(&templateModel.LessonTemplateModel{}).
		Where("lesson_template_visibility = ? AND lesson_template_deleted_at IS NULL",
			templateModel.LessonTemplateVisibilityPublic)

	return h.list(c, tx)
}

/* =========================================================
   LIST MINE
   GET /api/u/templates/mine?keyword=&subject=&grade=
   Semua visibility, hanya milik caller.
   ========================================================= */
func (h *LessonTemplateController) ListMyTemplates(c *fiber.Ctx) error {
	ownerID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	tx := h.DB.Model(&templateModel.LessonTemplateModel{}).
		Where("lesson_template_owner_id = ? AND lesson_template_deleted_at IS NULL", ownerID)

	return h.list(c, tx)
}

func (h *LessonTemplateController) list(c *fiber.Ctx, tx *gorm.DB) error {
	var q templateDTO.ListLessonTemplateQuery
	if err := c.QueryParser(&q); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Query tidak valid")
	}
	if err := validate.Struct(q); err != nil {
		return helper.ValidationError(c, err)
	}

	if q.Subject != nil && strings.TrimSpace(*q.Subject) != "" {
		tx = tx.Where("lesson_template_subject = ?", strings.TrimSpace(*q.Subject))
	}
	if q.Grade != nil {
		tx = tx.Where("lesson_template_grade = ?", *q.Grade)
	}
	if q.Keyword != nil && strings.TrimSpace(*q.Keyword) != "" {
		kw := "%" + strings.ToLower(strings.TrimSpace(*q.Keyword)) + "%"
		tx = tx.Where("(LOWER(lesson_template_title) LIKE ? OR LOWER(lesson_template_description) LIKE ?)", kw, kw)
	}

	paging := helper.ResolvePaging(c, 20, 200)

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal menghitung total data")
	}

	var rows []templateModel.LessonTemplateModel
	if err := tx.
		Order("lesson_template_created_at ASC").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil data")
	}

	return helper.JsonList(c, "Daftar template",
		templateDTO.FromLessonTemplateModels(rows),
		helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage),
	)
}

/* =========================================================
   UPDATE (partial, owner-only)
   PUT /api/u/templates/:id
   ========================================================= */
func (h *LessonTemplateController) UpdateTemplate(c *fiber.Ctx) error {
	ownerID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "ID tidak valid")
	}

	var req templateDTO.UpdateLessonTemplateRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	req.Normalize()
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	if err := h.DB.Transaction(func(tx *gorm.DB) error {
		var m templateModel.LessonTemplateModel
		if err := tx.First(&m,
			"lesson_template_id = ? AND lesson_template_owner_id = ? AND lesson_template_deleted_at IS NULL",
			id, ownerID,
		).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "Template tidak ditemukan")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil data")
		}

		req.Apply(&m)
		now := time.Now()
		m.LessonTemplateUpdatedAt = &now

		patch := map[string]interface{}{
			"lesson_template_title":       m.LessonTemplateTitle,
			"lesson_template_description": m.LessonTemplateDescription,
			"lesson_template_subject":     m.LessonTemplateSubject,
			"lesson_template_grade":       m.LessonTemplateGrade,
			"lesson_template_content":     m.LessonTemplateContent,
			"lesson_template_topic_id":    m.LessonTemplateTopicID,
			"lesson_template_updated_at":  m.LessonTemplateUpdatedAt,
		}
		if err := tx.Model(&templateModel.LessonTemplateModel{}).
			Where("lesson_template_id = ?", m.LessonTemplateID).
			Updates(patch).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal memperbarui template")
		}

		c.Locals("updated_template", m)
		return nil
	}); err != nil {
		return err
	}

	m := c.Locals("updated_template").(templateModel.LessonTemplateModel)
	return helper.JsonUpdated(c, "Template berhasil diperbarui", templateDTO.FromLessonTemplateModel(m))
}

/* =========================================================
   DELETE (soft, owner-only)
   DELETE /api/u/templates/:id
   RPP yang sudah dibuat dari template ini tidak terpengaruh
   (content sudah disalin saat materialize).
   ========================================================= */
func (h *LessonTemplateController) DeleteTemplate(c *fiber.Ctx) error {
	ownerID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "ID tidak valid")
	}

	if err := h.DB.Transaction(func(tx *gorm.DB) error {
		var m templateModel.LessonTemplateModel
		if err := tx.First(&m,
			"lesson_template_id = ? AND lesson_template_owner_id = ? AND lesson_template_deleted_at IS NULL",
			id, ownerID,
		).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "Template tidak ditemukan")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil data")
		}

		now := time.Now()
		if err := tx.Model(&templateModel.LessonTemplateModel{}).
			Where("lesson_template_id = ?", id).
			Updates(map[string]interface{}{
				"lesson_template_deleted_at": &now,
				"lesson_template_updated_at": &now,
			}).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal menghapus template")
		}

		c.Locals("deleted_template", m)
		return nil
	}); err != nil {
		return err
	}

	m := c.Locals("deleted_template").(templateModel.LessonTemplateModel)
	return helper.JsonDeleted(c, "Template berhasil dihapus", templateDTO.FromLessonTemplateModel(m))
}

/* =========================================================
   SHARE (visibility toggle, owner-only)
   POST /api/u/templates/:id/share?public=true|false
   Hanya flip enum; tidak ada efek ke RPP yang sudah dibuat.
   ========================================================= */
func (h *LessonTemplateController) ShareTemplate(c *fiber.Ctx) error {
	ownerID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "ID tidak valid")
	}

	isPublic, err := strconv.ParseBool(strings.TrimSpace(c.Query("public")))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Parameter public harus true/false")
	}

	visibility := templateModel.LessonTemplateVisibilityPrivate
	if isPublic {
		visibility = templateModel.LessonTemplateVisibilityPublic
	}

	if err := h.DB.Transaction(func(tx *gorm.DB) error {
		var m templateModel.LessonTemplateModel
		if err := tx.First(&m,
			"lesson_template_id = ? AND lesson_template_owner_id = ? AND lesson_template_deleted_at IS NULL",
			id, ownerID,
		).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "Template tidak ditemukan")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil data")
		}

		now := time.Now()
		if err := tx.Model(&templateModel.LessonTemplateModel{}).
			Where("lesson_template_id = ?", id).
			Updates(map[string]interface{}{
				"lesson_template_visibility": visibility,
				"lesson_template_updated_at": &now,
			}).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengubah visibility")
		}

		m.LessonTemplateVisibility = visibility
		m.LessonTemplateUpdatedAt = &now
		c.Locals("shared_template", m)
		return nil
	}); err != nil {
		return err
	}

	m := c.Locals("shared_template").(templateModel.LessonTemplateModel)
	return helper.JsonUpdated(c, "Visibility template berhasil diubah", templateDTO.FromLessonTemplateModel(m))
}

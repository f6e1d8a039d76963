package controller_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	planModel "gurupintar_backend/internals/features/lesson/lesson_plans/model"
	templateModel "gurupintar_backend/internals/features/lesson/lesson_templates/model"
	topicModel "gurupintar_backend/internals/features/lesson/topics/model"
	helper "gurupintar_backend/internals/helpers"
	authMiddleware "gurupintar_backend/internals/middlewares/auth"
	routeDetails "gurupintar_backend/internals/route/details"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

const testSecret = "test-secret"

type envelope struct {
	Success   bool            `json:"success"`
	Message   string          `json:"message"`
	ErrorCode string          `json:"error_code"`
	Data      json.RawMessage `json:"data"`
}

func newTestApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, db.AutoMigrate(
		&planModel.LessonPlanModel{},
		&templateModel.LessonTemplateModel{},
		&topicModel.TopicModel{},
	))

	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			return helper.FromFiberError(c, err)
		},
	})
	private := app.Group("/api/u",
		authMiddleware.AuthJWT(authMiddleware.AuthJWTOpts{Secret: testSecret}),
	)
	routeDetails.LessonUserRoutes(private, db)
	return app, db
}

func makeToken(t *testing.T, userID uuid.UUID) string {
	t.Helper()
	claims := jwt.MapClaims{
		"user_id": userID.String(),
		"exp":     time.Now().Add(time.Hour).Unix(),
	}
	s, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)
	return s
}

func doJSON(t *testing.T, app *fiber.App, method, path, token string, body any) (*http.Response, envelope) {
	t.Helper()
	var buf io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		buf = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, buf)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var env envelope
	require.NoError(t, json.Unmarshal(raw, &env), "body: %s", raw)
	return resp, env
}

func createTemplate(t *testing.T, app *fiber.App, token string, body fiber.Map) map[string]any {
	t.Helper()
	resp, env := doJSON(t, app, fiber.MethodPost, "/api/u/templates", token, body)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	var data map[string]any
	require.NoError(t, json.Unmarshal(env.Data, &data))
	return data
}

func baseTemplateBody() fiber.Map {
	return fiber.Map{
		"lesson_template_title":       "Template standar",
		"lesson_template_description": "Template RPP kimia kelas 10",
		"lesson_template_subject":     "CHEMISTRY",
		"lesson_template_grade":       10,
	}
}

func listIDs(t *testing.T, env envelope) []string {
	t.Helper()
	var rows []map[string]any
	require.NoError(t, json.Unmarshal(env.Data, &rows))
	ids := make([]string, 0, len(rows))
	for _, r := range rows {
		ids = append(ids, r["lesson_template_id"].(string))
	}
	return ids
}

func TestCreateTemplateDefaultsToPrivate(t *testing.T) {
	app, _ := newTestApp(t)
	token := makeToken(t, uuid.New())

	created := createTemplate(t, app, token, baseTemplateBody())
	assert.Equal(t, "PRIVATE", created["lesson_template_visibility"])
}

func TestCreateTemplateValidation(t *testing.T) {
	app, _ := newTestApp(t)
	token := makeToken(t, uuid.New())

	// description wajib non-empty
	resp, env := doJSON(t, app, fiber.MethodPost, "/api/u/templates", token, fiber.Map{
		"lesson_template_title":   "Template standar",
		"lesson_template_subject": "CHEMISTRY",
		"lesson_template_grade":   10,
	})
	assert.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)
	assert.Equal(t, "VALIDATION_ERROR", env.ErrorCode)
}

func TestPrivateTemplateInvisibleToOthers(t *testing.T) {
	app, _ := newTestApp(t)
	tokenA := makeToken(t, uuid.New())
	tokenB := makeToken(t, uuid.New())

	created := createTemplate(t, app, tokenA, baseTemplateBody())
	id := created["lesson_template_id"].(string)

	// tidak muncul di /public milik B
	_, env := doJSON(t, app, fiber.MethodGet, "/api/u/templates/public", tokenB, nil)
	assert.NotContains(t, listIDs(t, env), id)

	// fetch langsung oleh B → 404
	resp, env := doJSON(t, app, fiber.MethodGet, "/api/u/templates/"+id, tokenB, nil)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "NOT_FOUND", env.ErrorCode)

	// owner sendiri tetap bisa fetch
	resp, _ = doJSON(t, app, fiber.MethodGet, "/api/u/templates/"+id, tokenA, nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestShareToggleVisibility(t *testing.T) {
	app, _ := newTestApp(t)
	ownerA := uuid.New()
	tokenA := makeToken(t, ownerA)
	tokenB := makeToken(t, uuid.New())

	created := createTemplate(t, app, tokenA, baseTemplateBody())
	id := created["lesson_template_id"].(string)

	// share → PUBLIC: kelihatan oleh B di /public dan bisa fetch langsung
	resp, env := doJSON(t, app, fiber.MethodPost, "/api/u/templates/"+id+"/share?public=true", tokenA, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	var got map[string]any
	require.NoError(t, json.Unmarshal(env.Data, &got))
	assert.Equal(t, "PUBLIC", got["lesson_template_visibility"])

	_, env = doJSON(t, app, fiber.MethodGet, "/api/u/templates/public", tokenB, nil)
	assert.Contains(t, listIDs(t, env), id)

	resp, _ = doJSON(t, app, fiber.MethodGet, "/api/u/templates/"+id, tokenB, nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	// unshare → PRIVATE: langsung hilang dari /public B, tetap ada di /mine A
	resp, _ = doJSON(t, app, fiber.MethodPost, "/api/u/templates/"+id+"/share?public=false", tokenA, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	_, env = doJSON(t, app, fiber.MethodGet, "/api/u/templates/public", tokenB, nil)
	assert.NotContains(t, listIDs(t, env), id)

	_, env = doJSON(t, app, fiber.MethodGet, "/api/u/templates/mine", tokenA, nil)
	assert.Contains(t, listIDs(t, env), id)
}

func TestShareOnlyByOwner(t *testing.T) {
	app, _ := newTestApp(t)
	tokenA := makeToken(t, uuid.New())
	tokenB := makeToken(t, uuid.New())

	created := createTemplate(t, app, tokenA, baseTemplateBody())
	id := created["lesson_template_id"].(string)

	resp, _ := doJSON(t, app, fiber.MethodPost, "/api/u/templates/"+id+"/share?public=true", tokenB, nil)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestShareRequiresBoolParam(t *testing.T) {
	app, _ := newTestApp(t)
	token := makeToken(t, uuid.New())

	created := createTemplate(t, app, token, baseTemplateBody())
	id := created["lesson_template_id"].(string)

	resp, _ := doJSON(t, app, fiber.MethodPost, "/api/u/templates/"+id+"/share?public=yes-please", token, nil)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestMineListsAllVisibilities(t *testing.T) {
	app, _ := newTestApp(t)
	tokenA := makeToken(t, uuid.New())

	t1 := createTemplate(t, app, tokenA, baseTemplateBody())
	t2 := createTemplate(t, app, tokenA, fiber.Map{
		"lesson_template_title":       "Template publik",
		"lesson_template_description": "dibagikan",
		"lesson_template_subject":     "MATH",
		"lesson_template_grade":       11,
		"lesson_template_visibility":  "PUBLIC",
	})

	_, env := doJSON(t, app, fiber.MethodGet, "/api/u/templates/mine", tokenA, nil)
	ids := listIDs(t, env)
	assert.Contains(t, ids, t1["lesson_template_id"].(string))
	assert.Contains(t, ids, t2["lesson_template_id"].(string))

	// /mine orang lain kosong
	tokenB := makeToken(t, uuid.New())
	_, env = doJSON(t, app, fiber.MethodGet, "/api/u/templates/mine", tokenB, nil)
	assert.Empty(t, listIDs(t, env))
}

func TestUpdateTemplateOwnerOnly(t *testing.T) {
	app, _ := newTestApp(t)
	tokenA := makeToken(t, uuid.New())
	tokenB := makeToken(t, uuid.New())

	created := createTemplate(t, app, tokenA, baseTemplateBody())
	id := created["lesson_template_id"].(string)

	resp, _ := doJSON(t, app, fiber.MethodPut, "/api/u/templates/"+id, tokenB, fiber.Map{
		"lesson_template_title": "hijacked",
	})
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	resp, env := doJSON(t, app, fiber.MethodPut, "/api/u/templates/"+id, tokenA, fiber.Map{
		"lesson_template_title": "Template standar v2",
	})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	var got map[string]any
	require.NoError(t, json.Unmarshal(env.Data, &got))
	assert.Equal(t, "Template standar v2", got["lesson_template_title"])
	assert.Equal(t, "Template RPP kimia kelas 10", got["lesson_template_description"])
}

func TestUpdateTemplateRejectsWhitespaceOnlyFields(t *testing.T) {
	app, _ := newTestApp(t)
	token := makeToken(t, uuid.New())

	created := createTemplate(t, app, token, baseTemplateBody())
	id := created["lesson_template_id"].(string)

	// "   " harus 422, bukan tersimpan kosong
	for _, body := range []fiber.Map{
		{"lesson_template_title": "   "},
		{"lesson_template_description": "   "},
		{"lesson_template_subject": "   "},
	} {
		resp, env := doJSON(t, app, fiber.MethodPut, "/api/u/templates/"+id, token, body)
		assert.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)
		assert.Equal(t, "VALIDATION_ERROR", env.ErrorCode)
	}

	resp, env := doJSON(t, app, fiber.MethodGet, "/api/u/templates/"+id, token, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	var got map[string]any
	require.NoError(t, json.Unmarshal(env.Data, &got))
	assert.Equal(t, "Template standar", got["lesson_template_title"])
	assert.Equal(t, "Template RPP kimia kelas 10", got["lesson_template_description"])
	assert.Equal(t, "CHEMISTRY", got["lesson_template_subject"])
}

func TestDeleteTemplate(t *testing.T) {
	app, _ := newTestApp(t)
	token := makeToken(t, uuid.New())

	created := createTemplate(t, app, token, baseTemplateBody())
	id := created["lesson_template_id"].(string)

	resp, _ := doJSON(t, app, fiber.MethodDelete, "/api/u/templates/"+id, token, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp, _ = doJSON(t, app, fiber.MethodGet, "/api/u/templates/"+id, token, nil)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	_, env := doJSON(t, app, fiber.MethodGet, "/api/u/templates/mine", token, nil)
	assert.Empty(t, listIDs(t, env))
}

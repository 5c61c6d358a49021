package handlers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/kanbanlab/board_service/internal/api/rest/handlers"
	"github.com/kanbanlab/board_service/internal/domain"
	"github.com/kanbanlab/board_service/internal/helper"
	"github.com/kanbanlab/board_service/internal/repository"
	"github.com/kanbanlab/board_service/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, db.AutoMigrate(
		&domain.Board{},
		&domain.Column{},
		&domain.Card{},
		&domain.User{},
		&domain.CardHistory{},
	))

	authHelper := helper.SetupAuth("test-secret")

	boardRepo := repository.NewBoardRepository(db)
	columnRepo := repository.NewColumnRepository(db)
	cardRepo := repository.NewCardRepository(db)
	userRepo := repository.NewUserRepository(db)
	historyRepo := repository.NewHistoryRepository(db)

	boardSvc := services.NewBoardService(boardRepo)
	columnSvc := services.NewColumnService(columnRepo, boardRepo)
	cardSvc := services.NewCardService(db, cardRepo, columnRepo, userRepo, historyRepo, nil)
	userSvc := services.NewUserService(userRepo, authHelper)

	app := fiber.New()
	handlers.NewBoardHandler(boardSvc, columnSvc).SetupRoutes(app)
	handlers.NewColumnHandler(columnSvc, cardSvc).SetupRoutes(app)
	handlers.NewCardHandler(cardSvc).SetupRoutes(app)
	handlers.NewUserHandler(userSvc, authHelper).SetupRoutes(app)

	return app, db
}

func doJSON(t *testing.T, app *fiber.App, method, target string, body any, headers map[string]string) *http.Response {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, target, &buf)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decodeData(t *testing.T, resp *http.Response, out any) {
	t.Helper()

	var envelope struct {
		Data json.RawMessage `json:"data"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&envelope))
	require.NoError(t, json.Unmarshal(envelope.Data, out))
}

func TestCardEndpoints(t *testing.T) {
	app, db := newTestApp(t)

	column := &domain.Column{Title: "To Do", BoardID: 1}
	require.NoError(t, db.Create(&domain.Board{Name: "Sprint"}).Error)
	require.NoError(t, db.Create(column).Error)
	actor := &domain.User{Name: "alice", PasswordHash: "x", IsActive: true}
	require.NoError(t, db.Create(actor).Error)

	resp := doJSON(t, app, http.MethodPost, "/cards/", fiber.Map{
		"title":     "Fix bug",
		"column_id": column.ID,
	}, map[string]string{"X-User-ID": fmt.Sprint(actor.ID)})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var card domain.Card
	decodeData(t, resp, &card)
	require.NotZero(t, card.ID)
	assert.Equal(t, "Fix bug", card.Title)

	resp = doJSON(t, app, http.MethodPatch, fmt.Sprintf("/cards/%d", card.ID), fiber.Map{
		"title": "Fix bug urgently",
		"color": "red",
	}, map[string]string{"X-User-ID": fmt.Sprint(actor.ID)})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp = doJSON(t, app, http.MethodDelete, fmt.Sprintf("/cards/%d", card.ID), nil, nil)
	require.Equal(t, http.StatusNoContent, resp.StatusCode)

	resp = doJSON(t, app, http.MethodGet, fmt.Sprintf("/cards/%d/history", card.ID), nil, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var entries []domain.CardHistory
	decodeData(t, resp, &entries)
	require.Len(t, entries, 4)
	assert.Equal(t, domain.HistoryActionDelete, entries[0].Action)
	assert.Equal(t, domain.HistoryActionCreate, entries[3].Action)
	require.NotNil(t, entries[1].UserID)
	assert.Equal(t, actor.ID, *entries[1].UserID)
}

func TestCreateCardValidation(t *testing.T) {
	app, _ := newTestApp(t)

	resp := doJSON(t, app, http.MethodPost, "/cards/", fiber.Map{"title": ""}, nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp = doJSON(t, app, http.MethodPost, "/cards/", fiber.Map{
		"title":     "Fix bug",
		"column_id": 42,
	}, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestUpdateMissingCardReturns404(t *testing.T) {
	app, _ := newTestApp(t)

	resp := doJSON(t, app, http.MethodPatch, "/cards/999", fiber.Map{"title": "x"}, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp = doJSON(t, app, http.MethodDelete, "/cards/999", nil, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestLoginAndMe(t *testing.T) {
	app, _ := newTestApp(t)

	resp := doJSON(t, app, http.MethodPost, "/users/", fiber.Map{
		"name":     "alice",
		"password": "secret",
	}, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp = doJSON(t, app, http.MethodPost, "/login", fiber.Map{
		"name":     "alice",
		"password": "secret",
	}, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var login struct {
		Token string      `json:"token"`
		User  domain.User `json:"user"`
	}
	decodeData(t, resp, &login)
	require.NotEmpty(t, login.Token)
	assert.Equal(t, "alice", login.User.Name)

	resp = doJSON(t, app, http.MethodGet, "/me", nil, map[string]string{
		"Authorization": "Bearer " + login.Token,
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var me domain.User
	decodeData(t, resp, &me)
	assert.Equal(t, login.User.ID, me.ID)

	resp = doJSON(t, app, http.MethodGet, "/me", nil, nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	resp = doJSON(t, app, http.MethodPost, "/login", fiber.Map{
		"name":     "alice",
		"password": "wrong",
	}, nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

// Empty collections must serialize as [] like every other list response,
// not as null.
func TestEmptyListsSerializeAsArrays(t *testing.T) {
	app, _ := newTestApp(t)

	for _, target := range []string{"/boards/", "/columns/", "/cards/", "/users/"} {
		resp := doJSON(t, app, http.MethodGet, target, nil, nil)
		require.Equal(t, http.StatusOK, resp.StatusCode, target)

		var envelope struct {
			Data json.RawMessage `json:"data"`
		}
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&envelope))
		assert.Equal(t, "[]", string(envelope.Data), target)
	}
}

func TestBoardAndColumnEndpoints(t *testing.T) {
	app, _ := newTestApp(t)

	resp := doJSON(t, app, http.MethodPost, "/boards/", fiber.Map{"name": "Sprint"}, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var board domain.Board
	decodeData(t, resp, &board)
	require.NotZero(t, board.ID)

	resp = doJSON(t, app, http.MethodPost, "/columns/", fiber.Map{
		"title":    "To Do",
		"board_id": board.ID,
	}, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp = doJSON(t, app, http.MethodGet, fmt.Sprintf("/boards/%d/columns", board.ID), nil, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var columns []domain.Column
	decodeData(t, resp, &columns)
	require.Len(t, columns, 1)
	assert.Equal(t, "To Do", columns[0].Title)

	resp = doJSON(t, app, http.MethodGet, "/boards/404", nil, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp = doJSON(t, app, http.MethodPost, "/columns/", fiber.Map{
		"title":    "Orphan",
		"board_id": 404,
	}, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

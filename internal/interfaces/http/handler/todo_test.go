package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apptodo "github.com/cocursor/todo-service/internal/application/todo"
	"github.com/cocursor/todo-service/internal/domain/todo"
	"github.com/cocursor/todo-service/internal/infrastructure/config"
	infraNotification "github.com/cocursor/todo-service/internal/infrastructure/notification"
	"github.com/cocursor/todo-service/internal/infrastructure/storage"
	"github.com/cocursor/todo-service/internal/infrastructure/websocket"
	"github.com/cocursor/todo-service/internal/interfaces/http/middleware"
)

// setupRouter 构建与生产路由一致的测试路由
func setupRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	hub := websocket.NewHub()
	hub.Start()
	t.Cleanup(hub.Stop)

	repo := storage.NewMemoryTodoRepository()
	service := apptodo.NewService(repo, infraNotification.NewWebSocketPusher(hub))
	auth := middleware.NewBasicAuth(&config.AuthConfig{Username: "admin", Password: "admin"})
	h := NewTodoHandler(service, auth)

	router := gin.New()
	router.POST("/todos", h.Create)
	router.GET("/todos", h.List)
	router.PUT("/todos/:id", h.Update)
	router.DELETE("/todos/:id", auth.Handler(), h.Delete)
	return router
}

func doJSON(router *gin.Engine, method, path, body string, auth bool) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if auth {
		req.SetBasicAuth("admin", "admin")
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestTodoHandler_Create(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		expectedStatus int
		expectedInBody string
	}{
		{
			name:           "创建成功",
			body:           `{"id":1,"text":"Тестовая задача","completed":false}`,
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "缺少 id",
			body:           `{"text":"Задача без id","completed":false}`,
			expectedStatus: http.StatusBadRequest,
			expectedInBody: "Request body deserialize error: missing field `id`",
		},
		{
			name:           "缺少 text",
			body:           `{"id":2,"completed":false}`,
			expectedStatus: http.StatusBadRequest,
			expectedInBody: "Request body deserialize error: missing field `text`",
		},
		{
			name:           "字段类型错误",
			body:           `{"id":"не число","text":12345,"completed":"не булево значение"}`,
			expectedStatus: http.StatusBadRequest,
			expectedInBody: "Request body deserialize error:",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := setupRouter(t)
			w := doJSON(router, http.MethodPost, "/todos", tt.body, false)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedInBody != "" {
				assert.Contains(t, w.Body.String(), tt.expectedInBody)
			}
		})
	}
}

func TestTodoHandler_CreateDuplicateID(t *testing.T) {
	router := setupRouter(t)

	w := doJSON(router, http.MethodPost, "/todos", `{"id":1,"text":"a","completed":false}`, false)
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(router, http.MethodPost, "/todos", `{"id":1,"text":"b","completed":false}`, false)
	assert.Equal(t, http.StatusBadRequest, w.Code, "重复 id 应返回 400")
}

func TestTodoHandler_CreateEchoesTodo(t *testing.T) {
	router := setupRouter(t)

	w := doJSON(router, http.MethodPost, "/todos", `{"id":9,"text":"回显","completed":true}`, false)
	require.Equal(t, http.StatusCreated, w.Code)

	var created todo.Todo
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.Equal(t, int64(9), created.ID)
	assert.Equal(t, "回显", created.Text)
	assert.True(t, created.Completed)
}

func TestTodoHandler_List(t *testing.T) {
	router := setupRouter(t)
	for _, body := range []string{
		`{"id":1,"text":"первая","completed":true}`,
		`{"id":2,"text":"вторая","completed":false}`,
		`{"id":3,"text":"третья","completed":false}`,
	} {
		require.Equal(t, http.StatusCreated, doJSON(router, http.MethodPost, "/todos", body, false).Code)
	}

	tests := []struct {
		name           string
		query          string
		expectedStatus int
		expectedIDs    []int64
	}{
		{"无参数返回全量", "", http.StatusOK, []int64{1, 2, 3}},
		{"limit 限制条数", "?limit=2", http.StatusOK, []int64{1, 2}},
		{"offset 跳过", "?offset=1", http.StatusOK, []int64{2, 3}},
		{"offset 与 limit 组合", "?offset=1&limit=1", http.StatusOK, []int64{2}},
		{"offset 超界返回空数组", "?offset=100", http.StatusOK, []int64{}},
		{"非数字参数", "?offset=invalid&limit=abc", http.StatusBadRequest, nil},
		{"负数 offset", "?offset=-1", http.StatusBadRequest, nil},
		{"负数 limit", "?limit=-5", http.StatusBadRequest, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doJSON(router, http.MethodGet, "/todos"+tt.query, "", false)
			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedStatus != http.StatusOK {
				return
			}

			var items []todo.Todo
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &items), "应返回裸 JSON 数组")
			ids := make([]int64, 0, len(items))
			for _, item := range items {
				ids = append(ids, item.ID)
			}
			assert.Equal(t, tt.expectedIDs, ids)
		})
	}
}

func TestTodoHandler_Update(t *testing.T) {
	router := setupRouter(t)
	require.Equal(t, http.StatusCreated,
		doJSON(router, http.MethodPost, "/todos", `{"id":1,"text":"原始","completed":false}`, false).Code)

	t.Run("更新不存在的待办返回 404", func(t *testing.T) {
		w := doJSON(router, http.MethodPut, "/todos/99999",
			`{"id":99999,"text":"обновление","completed":true}`, false)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("缺少 text 返回 401", func(t *testing.T) {
		w := doJSON(router, http.MethodPut, "/todos/1", `{"id":1,"completed":true}`, false)
		assert.Equal(t, http.StatusUnauthorized, w.Code, "请求体缺陷与凭证错误同属 401")
	})

	t.Run("字段类型错误返回 401", func(t *testing.T) {
		w := doJSON(router, http.MethodPut, "/todos/1",
			`{"id":1,"text":12345,"completed":"не булево значение"}`, false)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("携带错误凭证返回 401", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPut, "/todos/1",
			strings.NewReader(`{"id":1,"text":"x","completed":true}`))
		req.SetBasicAuth("invalid", "invalid")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("全量更新成功并可通过列表读回", func(t *testing.T) {
		w := doJSON(router, http.MethodPut, "/todos/1",
			`{"id":1,"text":"полностью обновлено","completed":true}`, false)
		require.Equal(t, http.StatusOK, w.Code)

		listW := doJSON(router, http.MethodGet, "/todos", "", false)
		require.Equal(t, http.StatusOK, listW.Code)

		var items []todo.Todo
		require.NoError(t, json.Unmarshal(listW.Body.Bytes(), &items))
		require.Len(t, items, 1)
		assert.Equal(t, "полностью обновлено", items[0].Text)
		assert.True(t, items[0].Completed)
	})
}

func TestTodoHandler_Delete(t *testing.T) {
	t.Run("删除成功后列表不再包含", func(t *testing.T) {
		router := setupRouter(t)
		require.Equal(t, http.StatusCreated,
			doJSON(router, http.MethodPost, "/todos", `{"id":1,"text":"待删除","completed":false}`, false).Code)

		w := doJSON(router, http.MethodDelete, "/todos/1", "", true)
		assert.Equal(t, http.StatusNoContent, w.Code)

		listW := doJSON(router, http.MethodGet, "/todos", "", false)
		var items []todo.Todo
		require.NoError(t, json.Unmarshal(listW.Body.Bytes(), &items))
		assert.Empty(t, items)
	})

	t.Run("重复删除返回 404", func(t *testing.T) {
		router := setupRouter(t)
		require.Equal(t, http.StatusCreated,
			doJSON(router, http.MethodPost, "/todos", `{"id":1,"text":"x","completed":false}`, false).Code)

		require.Equal(t, http.StatusNoContent, doJSON(router, http.MethodDelete, "/todos/1", "", true).Code)
		assert.Equal(t, http.StatusNotFound, doJSON(router, http.MethodDelete, "/todos/1", "", true).Code)
	})

	t.Run("删除不存在的待办返回 404", func(t *testing.T) {
		router := setupRouter(t)
		assert.Equal(t, http.StatusNotFound, doJSON(router, http.MethodDelete, "/todos/99999", "", true).Code)
	})

	t.Run("非数字 id 返回 404", func(t *testing.T) {
		router := setupRouter(t)
		assert.Equal(t, http.StatusNotFound, doJSON(router, http.MethodDelete, "/todos/invalid-id", "", true).Code)
	})

	t.Run("缺少凭证返回 401", func(t *testing.T) {
		router := setupRouter(t)
		require.Equal(t, http.StatusCreated,
			doJSON(router, http.MethodPost, "/todos", `{"id":1,"text":"x","completed":false}`, false).Code)
		assert.Equal(t, http.StatusUnauthorized, doJSON(router, http.MethodDelete, "/todos/1", "", false).Code)
	})

	t.Run("凭证错误优先于存在性检查", func(t *testing.T) {
		router := setupRouter(t)
		req := httptest.NewRequest(http.MethodDelete, "/todos/99999", nil)
		req.SetBasicAuth("invalid", "invalid")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusUnauthorized, w.Code, "错误凭证即使目标不存在也应返回 401")
	})
}

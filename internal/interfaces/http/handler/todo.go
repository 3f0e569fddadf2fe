package handler

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	"log/slog"

	"github.com/gin-gonic/gin"

	apptodo "github.com/cocursor/todo-service/internal/application/todo"
	"github.com/cocursor/todo-service/internal/domain/todo"
	"github.com/cocursor/todo-service/internal/infrastructure/log"
	"github.com/cocursor/todo-service/internal/interfaces/http/middleware"
	"github.com/cocursor/todo-service/internal/interfaces/http/response"
)

// 业务错误码
const (
	codeInvalidBody  = 100001
	codeDuplicateID  = 100002
	codeNotFound     = 100003
	codeInvalidParam = 100004
	codeUnauthorized = 100005
)

// TodoHandler 待办事项处理器
type TodoHandler struct {
	service *apptodo.Service
	auth    *middleware.BasicAuth
	logger  *slog.Logger
}

// NewTodoHandler 创建待办事项处理器
func NewTodoHandler(service *apptodo.Service, auth *middleware.BasicAuth) *TodoHandler {
	return &TodoHandler{
		service: service,
		auth:    auth,
		logger:  log.NewModuleLogger("http", "todo_handler"),
	}
}

// Create 创建待办
// @Summary 创建待办
// @Tags 待办
// @Accept json
// @Produce json
// @Success 201 {object} todo.Todo
// @Failure 400 {object} response.ErrorResponse
// @Router /todos [post]
func (h *TodoHandler) Create(c *gin.Context) {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		response.Error(c, http.StatusBadRequest, codeInvalidBody, "failed to read request body")
		return
	}

	item, err := decodeTodoBody(body)
	if err != nil {
		response.Error(c, http.StatusBadRequest, codeInvalidBody, err.Error())
		return
	}

	created, err := h.service.Create(item)
	if err != nil {
		if errors.Is(err, todo.ErrDuplicateID) {
			response.Error(c, http.StatusBadRequest, codeDuplicateID, err.Error())
			return
		}
		h.logger.Error("create todo failed",
			"todo_id", item.ID,
			"error", err,
		)
		response.Error(c, http.StatusInternalServerError, codeInvalidBody, "internal error")
		return
	}

	c.JSON(http.StatusCreated, created)
}

// List 获取待办列表
// @Summary 获取待办列表
// @Tags 待办
// @Produce json
// @Param offset query int false "跳过条数"
// @Param limit query int false "返回条数上限"
// @Success 200 {array} todo.Todo
// @Failure 400 {object} response.ErrorResponse
// @Router /todos [get]
func (h *TodoHandler) List(c *gin.Context) {
	offset, ok := parsePageParam(c.Query("offset"), 0)
	if !ok {
		response.Error(c, http.StatusBadRequest, codeInvalidParam, "invalid offset parameter")
		return
	}

	// limit 缺省为 -1，表示不限制数量
	limit, ok := parsePageParam(c.Query("limit"), -1)
	if !ok {
		response.Error(c, http.StatusBadRequest, codeInvalidParam, "invalid limit parameter")
		return
	}

	items, err := h.service.List(offset, limit)
	if err != nil {
		response.Error(c, http.StatusBadRequest, codeInvalidParam, err.Error())
		return
	}

	c.JSON(http.StatusOK, items)
}

// Update 整体替换待办
// 契约要求：请求体缺陷与凭证错误同属 401；先解析请求体，
// 再校验携带的凭证，最后检查目标是否存在（不存在返回 404）
// @Summary 更新待办
// @Tags 待办
// @Accept json
// @Produce json
// @Param id path int true "待办 ID"
// @Success 200 {object} todo.Todo
// @Failure 401 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Router /todos/{id} [put]
func (h *TodoHandler) Update(c *gin.Context) {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		response.Error(c, http.StatusUnauthorized, codeUnauthorized, "failed to read request body")
		return
	}

	item, err := decodeTodoBody(body)
	if err != nil {
		response.Error(c, http.StatusUnauthorized, codeUnauthorized, err.Error())
		return
	}

	if h.auth.HasCredentials(c.Request) && !h.auth.Verify(c.Request) {
		c.Header("WWW-Authenticate", `Basic realm="todo-service"`)
		response.Error(c, http.StatusUnauthorized, codeUnauthorized, "unauthorized")
		return
	}

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		// 非数字 id 归一为不存在
		response.Error(c, http.StatusNotFound, codeNotFound, todo.ErrTodoNotFound.Error())
		return
	}

	updated, err := h.service.Update(id, item.Text, item.Completed)
	if err != nil {
		if errors.Is(err, todo.ErrTodoNotFound) {
			response.Error(c, http.StatusNotFound, codeNotFound, err.Error())
			return
		}
		h.logger.Error("update todo failed",
			"todo_id", id,
			"error", err,
		)
		response.Error(c, http.StatusInternalServerError, codeNotFound, "internal error")
		return
	}

	c.JSON(http.StatusOK, updated)
}

// Delete 删除待办
// 认证由路由中间件完成，凭证缺失或错误时不会进入本方法
// @Summary 删除待办
// @Tags 待办
// @Param id path int true "待办 ID"
// @Security BasicAuth
// @Success 204
// @Failure 401 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Router /todos/{id} [delete]
func (h *TodoHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		// 非数字 id 归一为不存在
		response.Error(c, http.StatusNotFound, codeNotFound, todo.ErrTodoNotFound.Error())
		return
	}

	if err := h.service.Delete(id); err != nil {
		if errors.Is(err, todo.ErrTodoNotFound) {
			response.Error(c, http.StatusNotFound, codeNotFound, err.Error())
			return
		}
		h.logger.Error("delete todo failed",
			"todo_id", id,
			"error", err,
		)
		response.Error(c, http.StatusInternalServerError, codeNotFound, "internal error")
		return
	}

	c.Status(http.StatusNoContent)
}

// parsePageParam 解析分页参数，必须是非负整数，缺省返回 defaultValue
func parsePageParam(raw string, defaultValue int) (int, bool) {
	if raw == "" {
		return defaultValue, true
	}
	value, err := strconv.Atoi(raw)
	if err != nil || value < 0 {
		return 0, false
	}
	return value, true
}

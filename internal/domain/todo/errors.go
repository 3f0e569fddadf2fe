package todo

import "errors"

// 待办相关错误
var (
	// ErrDuplicateID id 已存在
	ErrDuplicateID = errors.New("todo with this id already exists")
	// ErrTodoNotFound 待办不存在
	ErrTodoNotFound = errors.New("todo not found")
	// ErrInvalidPagination 分页参数无效
	ErrInvalidPagination = errors.New("invalid pagination parameters")
)

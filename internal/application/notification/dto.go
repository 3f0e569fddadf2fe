package notification

import "github.com/cocursor/todo-service/internal/domain/todo"

// EventTypeNewTodo 新待办事件类型
const EventTypeNewTodo = "new_todo"

// NewTodoEvent 新待办推送事件
// 每次广播时新建，不持久化
type NewTodoEvent struct {
	Type string     `json:"type"`
	Data *todo.Todo `json:"data"`
}

// NewTodoCreated 构造新待办事件
func NewTodoCreated(item *todo.Todo) *NewTodoEvent {
	return &NewTodoEvent{
		Type: EventTypeNewTodo,
		Data: item,
	}
}

package handler

import (
	"encoding/json"
	"fmt"

	"github.com/cocursor/todo-service/internal/domain/todo"
)

// DeserializeError 请求体反序列化错误
// Error 文案是对外契约的一部分，缺失字段时必须点名字段
type DeserializeError struct {
	Detail string
}

func (e *DeserializeError) Error() string {
	return "Request body deserialize error: " + e.Detail
}

// todoPayload 待办请求体
// 指针字段区分"未提供"和"零值"
type todoPayload struct {
	ID        *int64  `json:"id"`
	Text      *string `json:"text"`
	Completed *bool   `json:"completed"`
}

// decodeTodoBody 严格解析待办请求体
// id 和 text 必填，completed 缺省为 false，类型不匹配视为解析失败
func decodeTodoBody(data []byte) (*todo.Todo, error) {
	var payload todoPayload
	if err := json.Unmarshal(data, &payload); err != nil {
		return nil, &DeserializeError{Detail: describeJSONError(err)}
	}

	if payload.ID == nil {
		return nil, &DeserializeError{Detail: "missing field `id`"}
	}
	if payload.Text == nil {
		return nil, &DeserializeError{Detail: "missing field `text`"}
	}

	item := &todo.Todo{
		ID:   *payload.ID,
		Text: *payload.Text,
	}
	if payload.Completed != nil {
		item.Completed = *payload.Completed
	}
	return item, nil
}

// describeJSONError 将标准库解析错误转成契约文案
func describeJSONError(err error) string {
	switch e := err.(type) {
	case *json.UnmarshalTypeError:
		if e.Field != "" {
			return fmt.Sprintf("invalid type %s for field `%s`", e.Value, e.Field)
		}
		return fmt.Sprintf("invalid type %s, expected %s", e.Value, e.Type)
	case *json.SyntaxError:
		return fmt.Sprintf("invalid JSON at offset %d", e.Offset)
	default:
		return err.Error()
	}
}

package todo

// Todo 待办事项实体
// ID 由调用方指定，创建后不可变，全局唯一
type Todo struct {
	ID        int64  `json:"id"`        // 唯一标识
	Text      string `json:"text"`      // 待办内容
	Completed bool   `json:"completed"` // 是否完成
}

// Clone 返回副本，避免调用方持有仓储内部实例
func (t *Todo) Clone() *Todo {
	c := *t
	return &c
}

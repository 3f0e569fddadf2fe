package todo

// Repository 待办事项仓储接口
type Repository interface {
	// Create 创建待办，id 已存在时返回 ErrDuplicateID
	Create(item *Todo) error

	// FindByID 根据 ID 查找待办，不存在时返回 ErrTodoNotFound
	FindByID(id int64) (*Todo, error)

	// List 按创建顺序返回待办，跳过 offset 条后最多取 limit 条
	// limit < 0 表示不限制数量
	List(offset, limit int) []*Todo

	// Update 整体替换 id 对应待办的 text 和 completed
	// 不存在时返回 ErrTodoNotFound
	Update(id int64, text string, completed bool) (*Todo, error)

	// Delete 删除待办，不存在时返回 ErrTodoNotFound
	Delete(id int64) error

	// Len 当前待办数量
	Len() int
}

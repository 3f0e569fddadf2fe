package storage

import (
	"sync"

	"github.com/cocursor/todo-service/internal/domain/todo"
)

// MemoryTodoRepository 内存待办仓储
// items 按 id 索引，order 维护创建顺序，二者由同一把锁保护
type MemoryTodoRepository struct {
	mu    sync.RWMutex
	items map[int64]*todo.Todo
	order []int64
}

// NewMemoryTodoRepository 创建内存待办仓储
func NewMemoryTodoRepository() *MemoryTodoRepository {
	return &MemoryTodoRepository{
		items: make(map[int64]*todo.Todo),
	}
}

// Create 创建待办
// 检查和插入在同一临界区内完成，并发创建相同 id 时只有一个成功
func (r *MemoryTodoRepository) Create(item *todo.Todo) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.items[item.ID]; exists {
		return todo.ErrDuplicateID
	}

	r.items[item.ID] = item.Clone()
	r.order = append(r.order, item.ID)
	return nil
}

// FindByID 根据 ID 查找待办
func (r *MemoryTodoRepository) FindByID(id int64) (*todo.Todo, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, exists := r.items[id]
	if !exists {
		return nil, todo.ErrTodoNotFound
	}
	return item.Clone(), nil
}

// List 按创建顺序返回待办
// limit < 0 表示不限制数量
func (r *MemoryTodoRepository) List(offset, limit int) []*todo.Todo {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if offset < 0 {
		offset = 0
	}
	if offset >= len(r.order) {
		return []*todo.Todo{}
	}

	ids := r.order[offset:]
	if limit >= 0 && limit < len(ids) {
		ids = ids[:limit]
	}

	result := make([]*todo.Todo, 0, len(ids))
	for _, id := range ids {
		result = append(result, r.items[id].Clone())
	}
	return result
}

// Update 整体替换待办内容
func (r *MemoryTodoRepository) Update(id int64, text string, completed bool) (*todo.Todo, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	item, exists := r.items[id]
	if !exists {
		return nil, todo.ErrTodoNotFound
	}

	item.Text = text
	item.Completed = completed
	return item.Clone(), nil
}

// Delete 删除待办
func (r *MemoryTodoRepository) Delete(id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.items[id]; !exists {
		return todo.ErrTodoNotFound
	}

	delete(r.items, id)
	for i, oid := range r.order {
		if oid == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}

// Len 当前待办数量
func (r *MemoryTodoRepository) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.items)
}

// 编译时检查接口实现
var _ todo.Repository = (*MemoryTodoRepository)(nil)

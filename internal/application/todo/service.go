package todo

import (
	"log/slog"

	"github.com/cocursor/todo-service/internal/application/notification"
	domain "github.com/cocursor/todo-service/internal/domain/todo"
	"github.com/cocursor/todo-service/internal/infrastructure/log"
)

// Service 待办应用服务
type Service struct {
	repo   domain.Repository
	pusher notification.Pusher
	logger *slog.Logger
}

// NewService 创建待办应用服务
func NewService(repo domain.Repository, pusher notification.Pusher) *Service {
	return &Service{
		repo:   repo,
		pusher: pusher,
		logger: log.NewModuleLogger("todo", "service"),
	}
}

// Create 创建待办并广播 new_todo 事件
// 广播失败不影响创建结果，HTTP 响应不等待推送完成
func (s *Service) Create(item *domain.Todo) (*domain.Todo, error) {
	if err := s.repo.Create(item); err != nil {
		return nil, err
	}

	if err := s.pusher.Push(notification.NewTodoCreated(item)); err != nil {
		s.logger.Warn("failed to push new_todo event",
			"todo_id", item.ID,
			"error", err,
		)
	}

	return item, nil
}

// List 按创建顺序返回待办
// offset、limit 必须非负，limit < 0 表示不限制数量由仓储约定，
// 对外入口只接受非负值
func (s *Service) List(offset, limit int) ([]*domain.Todo, error) {
	if offset < 0 {
		return nil, domain.ErrInvalidPagination
	}
	return s.repo.List(offset, limit), nil
}

// Update 整体替换待办内容
func (s *Service) Update(id int64, text string, completed bool) (*domain.Todo, error) {
	return s.repo.Update(id, text, completed)
}

// Delete 删除待办
func (s *Service) Delete(id int64) error {
	return s.repo.Delete(id)
}

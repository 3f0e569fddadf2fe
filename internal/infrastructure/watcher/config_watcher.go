package watcher

import (
	"path/filepath"
	"sync"
	"time"

	"log/slog"

	"github.com/fsnotify/fsnotify"

	"github.com/cocursor/todo-service/internal/infrastructure/config"
	"github.com/cocursor/todo-service/internal/infrastructure/log"
)

// debounceDelay 防抖延迟，编辑器保存会触发连续多个事件
const debounceDelay = 500 * time.Millisecond

// ReloadFunc 配置变更回调
type ReloadFunc func(cfg *config.Config)

// ConfigWatcher 配置文件监听器
// 监听配置文件所在目录（覆盖编辑器原子替换文件的场景），
// 变更防抖后重新加载并通知所有订阅者
type ConfigWatcher struct {
	cfg     *config.Config
	path    string
	watcher *fsnotify.Watcher
	logger  *slog.Logger

	mu        sync.Mutex
	callbacks []ReloadFunc
	debounce  *time.Timer

	stopCh chan struct{}
	wg     sync.WaitGroup
}

// NewConfigWatcher 创建配置文件监听器
func NewConfigWatcher(cfg *config.Config) (*ConfigWatcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	return &ConfigWatcher{
		cfg:     cfg,
		path:    config.ConfigPath(),
		watcher: watcher,
		logger:  log.NewModuleLogger("watcher", "config_watcher"),
		stopCh:  make(chan struct{}),
	}, nil
}

// OnReload 注册配置变更回调
func (w *ConfigWatcher) OnReload(fn ReloadFunc) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.callbacks = append(w.callbacks, fn)
}

// Start 启动监听
// 配置文件不存在时只记录日志，不算错误（配置文件本身可选）
func (w *ConfigWatcher) Start() error {
	dir := filepath.Dir(w.path)
	if err := w.watcher.Add(dir); err != nil {
		w.logger.Info("config directory not watchable, hot reload disabled",
			"dir", dir,
			"error", err,
		)
		return nil
	}

	w.logger.Info("watching config file",
		"path", w.path,
	)

	w.wg.Add(1)
	go w.watchLoop()
	return nil
}

// Stop 停止监听
func (w *ConfigWatcher) Stop() {
	close(w.stopCh)
	_ = w.watcher.Close()
	w.wg.Wait()

	w.mu.Lock()
	if w.debounce != nil {
		w.debounce.Stop()
	}
	w.mu.Unlock()
}

// watchLoop 事件处理循环
func (w *ConfigWatcher) watchLoop() {
	defer w.wg.Done()

	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != filepath.Clean(w.path) {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			w.scheduleReload()

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.logger.Warn("watch error",
				"error", err,
			)

		case <-w.stopCh:
			return
		}
	}
}

// scheduleReload 防抖后执行重载
func (w *ConfigWatcher) scheduleReload() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.debounce != nil {
		w.debounce.Stop()
	}
	w.debounce = time.AfterFunc(debounceDelay, w.reload)
}

// reload 重新加载配置并通知订阅者
func (w *ConfigWatcher) reload() {
	newCfg, err := w.cfg.Reload()
	if err != nil {
		w.logger.Error("failed to reload config",
			"path", w.path,
			"error", err,
		)
		return
	}

	w.logger.Info("config reloaded",
		"path", w.path,
	)

	w.mu.Lock()
	callbacks := make([]ReloadFunc, len(w.callbacks))
	copy(callbacks, w.callbacks)
	w.mu.Unlock()

	for _, fn := range callbacks {
		fn(newCfg)
	}
}

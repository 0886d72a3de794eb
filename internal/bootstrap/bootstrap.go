package bootstrap

import (
	"fmt"

	"go.uber.org/zap"

	"planner/internal/config"
	"planner/internal/content"
	"planner/internal/logging"
	"planner/internal/progress"
	"planner/internal/session"
	"planner/internal/storage"
	"planner/internal/ui"
)

type App struct {
	Config     config.Config
	Logger     *zap.Logger
	Content    *content.Store
	Session    *session.Controller
	Persistent bool

	closers []func() error
}

// New wires the application from cfg and hydrates the session. A database
// that cannot be opened is not fatal: the session then runs on memory and
// nothing is persisted.
func New(cfg config.Config) (*App, error) {
	logger, err := logging.New(cfg.LogPath, cfg.LogLevel)
	if err != nil {
		return nil, err
	}

	store, err := loadContent(cfg.ContentPath)
	if err != nil {
		_ = logger.Sync()
		return nil, err
	}

	app := &App{Config: cfg, Logger: logger, Content: store}

	var kv storage.KV
	db, err := storage.Open(cfg.DBPath)
	if err != nil {
		logger.Warn("storage unavailable, progress will not be saved", zap.String("db_path", cfg.DBPath), zap.Error(err))
		kv = storage.NewMemory()
	} else {
		kv = db
		app.Persistent = true
		app.closers = append(app.closers, db.Close)
	}

	app.Session = session.NewController(store, progress.New(kv, content.TotalDays), logger)
	app.Session.Hydrate()
	return app, nil
}

func loadContent(path string) (*content.Store, error) {
	if path == "" {
		return content.Default()
	}
	s, err := content.LoadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load content: %w", err)
	}
	return s, nil
}

func (a *App) Close() error {
	var first error
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](); err != nil && first == nil {
			first = err
		}
	}
	_ = a.Logger.Sync()
	return first
}

func RunTUI(app *App) error {
	return ui.Run(app.Session, app.Config)
}

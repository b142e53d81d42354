package client

import (
	"fmt"
	"io"
	"os"
	"time"

	"golang.org/x/exp/slog"

	"ecitoyen/internal/app/client/config"
	"ecitoyen/internal/domain/appointment"
	"ecitoyen/internal/domain/demand"
	"ecitoyen/internal/domain/notification"
	"ecitoyen/internal/domain/payment"
	"ecitoyen/internal/domain/session"
	"ecitoyen/internal/infrastructure/storage/memory"
	"ecitoyen/internal/infrastructure/storage/sqlite"
	"ecitoyen/internal/storage/kv"
	"ecitoyen/internal/utils/clock"
)

// App связывает хранилище, коллекции, журнал уведомлений, сессию и
// клиент удаленного API. Каждая команда CLI работает через App.
type App struct {
	config  *config.Config
	log     *slog.Logger
	backend kv.Backend
	store   *kv.Store
	clock   clock.Clock
	pause   func(time.Duration)
	perm    notification.Permissioner

	Demands       *demand.Service
	Payments      *payment.Service
	Appointments  *appointment.Service
	Notifications *notification.Ledger
	Session       *session.Service
	API           *APIClient
}

type Option func(*App)

// WithBackend подменяет хранилище (тесты, --ephemeral).
func WithBackend(b kv.Backend) Option {
	return func(a *App) { a.backend = b }
}

func WithClock(c clock.Clock) Option {
	return func(a *App) { a.clock = c }
}

// WithPause подменяет паузу обработки; в тестах пауза не нужна.
func WithPause(fn func(time.Duration)) Option {
	return func(a *App) { a.pause = fn }
}

func WithPermissioner(p notification.Permissioner) Option {
	return func(a *App) { a.perm = p }
}

func New(cfg *config.Config, log *slog.Logger, opts ...Option) (*App, error) {
	app := &App{
		config: cfg,
		log:    log,
		clock:  clock.System(),
		pause:  time.Sleep,
	}
	for _, opt := range opts {
		opt(app)
	}

	if app.backend == nil {
		app.backend = openBackend(cfg, log)
	}
	if app.perm == nil {
		app.perm = notification.NewTerminalPermissioner(os.Stdout)
	}

	app.store = kv.New(app.backend, log)

	verifier, err := session.NewVerifier(cfg.AuthMode, app.store, log)
	if err != nil {
		app.Close()
		return nil, fmt.Errorf("ошибка инициализации аутентификации: %w", err)
	}

	app.Demands = demand.NewService(demand.NewRepository(app.store), log)
	app.Payments = payment.NewService(payment.NewRepository(app.store), log)
	app.Appointments = appointment.NewService(appointment.NewRepository(app.store), log)
	app.Notifications = notification.NewLedger(app.store, app.perm, app.clock, log)
	app.Session = session.NewService(session.NewRepo(app.store), verifier, session.NewFormValidator(), app.clock, log)
	app.API = NewAPIClient(cfg.APIBaseURL, cfg.Timeout(), log)

	return app, nil
}

// openBackend открывает SQLite; при ошибке работает в памяти, как браузер
// без доступного localStorage.
func openBackend(cfg *config.Config, log *slog.Logger) kv.Backend {
	if cfg.StorageDriver == config.DriverMemory {
		return memory.New()
	}

	storage, err := sqlite.New(cfg.DataPath, log)
	if err != nil {
		log.Warn("Не удалось инициализировать SQLite, используем память", "path", cfg.DataPath, "error", err)
		return memory.New()
	}
	return storage
}

func (a *App) Config() *config.Config {
	return a.config
}

func (a *App) Store() *kv.Store {
	return a.store
}

func (a *App) Now() time.Time {
	return a.clock.Now()
}

// Close закрывает хранилище, если оно это поддерживает.
func (a *App) Close() error {
	if c, ok := a.backend.(io.Closer); ok {
		return c.Close()
	}
	return nil
}

package app

import (
	"database/sql"
	"log/slog"

	"github.com/thenoetrevino/quadro/internal/database"
	boardservice "github.com/thenoetrevino/quadro/internal/services/board"
	cardservice "github.com/thenoetrevino/quadro/internal/services/card"
	"github.com/thenoetrevino/quadro/internal/user"
)

// App holds all application services and provides dependency injection.
// This is the main application container that manages service lifecycles.
type App struct {
	db     *sql.DB
	repo   *database.Repository
	logger *slog.Logger

	// Service layer (business logic)
	BoardService boardservice.Service
	CardService  cardservice.Service
}

// New creates a new App with all services initialized.
// The card service records the current OS user as the actor on block
// ledger entries unless WithActor or QUADRO_ACTOR overrides it.
func New(db *sql.DB, opts ...Option) *App {
	cfg := &appConfig{
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.actor == "" {
		cfg.actor = user.Actor()
	}

	repo := database.NewRepository(db)
	uow := database.NewSQLiteUnitOfWork(db)

	return &App{
		db:           db,
		repo:         repo,
		logger:       cfg.logger,
		BoardService: boardservice.NewService(repo, uow, cfg.logger),
		CardService:  cardservice.NewService(repo, uow, cfg.actor, cfg.logger),
	}
}

// Repo returns the underlying repository for direct database access.
func (a *App) Repo() *database.Repository {
	return a.repo
}

// Close releases the database handle.
func (a *App) Close() error {
	if a.db == nil {
		return nil
	}
	return a.db.Close()
}

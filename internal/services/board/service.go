package board

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/thenoetrevino/quadro/internal/database"
	"github.com/thenoetrevino/quadro/internal/models"
	"github.com/thenoetrevino/quadro/internal/types"
)

// Service defines all board-related business operations
type Service interface {
	// Read operations
	GetAllBoards(ctx context.Context) ([]*models.Board, error)
	GetBoard(ctx context.Context, id types.BoardID) (*models.Board, error)
	GetBoardDetail(ctx context.Context, id types.BoardID) (*models.BoardDetail, error)

	// Write operations
	CreateBoard(ctx context.Context, req CreateBoardRequest) (*models.Board, error)
	DeleteBoard(ctx context.Context, id types.BoardID) error
}

// CreateBoardRequest encapsulates data for creating a board.
// Columns are laid out as Initial, Pending..., Final, Cancel.
type CreateBoardRequest struct {
	Name           string
	InitialColumn  string
	PendingColumns []string
	FinalColumn    string
	CancelColumn   string
}

// service implements Service interface
type service struct {
	repo   *database.Repository
	uow    database.UnitOfWork
	logger *slog.Logger
}

// NewService creates a new board service
func NewService(repo *database.Repository, uow database.UnitOfWork, logger *slog.Logger) Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &service{repo: repo, uow: uow, logger: logger}
}

// GetAllBoards retrieves all boards without their columns
func (s *service) GetAllBoards(ctx context.Context) ([]*models.Board, error) {
	return s.repo.Boards.GetAll(ctx)
}

// GetBoard retrieves a board with its columns sorted by order
func (s *service) GetBoard(ctx context.Context, id types.BoardID) (*models.Board, error) {
	if id <= 0 {
		return nil, ErrInvalidBoardID
	}

	board, err := s.repo.Boards.GetByID(ctx, id)
	if errors.Is(err, database.ErrNotFound) {
		return nil, ErrBoardNotFound
	}
	if err != nil {
		return nil, err
	}

	board.Columns, err = s.repo.Columns.GetByBoard(ctx, id)
	if err != nil {
		return nil, err
	}
	return board, nil
}

// GetBoardDetail retrieves a board with the card count of every column
func (s *service) GetBoardDetail(ctx context.Context, id types.BoardID) (*models.BoardDetail, error) {
	if id <= 0 {
		return nil, ErrInvalidBoardID
	}

	board, err := s.repo.Boards.GetByID(ctx, id)
	if errors.Is(err, database.ErrNotFound) {
		return nil, ErrBoardNotFound
	}
	if err != nil {
		return nil, err
	}

	summaries, err := s.repo.Boards.GetColumnSummaries(ctx, id)
	if err != nil {
		return nil, err
	}

	return &models.BoardDetail{ID: board.ID, Name: board.Name, Columns: summaries}, nil
}

// CreateBoard creates a board and all of its columns in one transaction
func (s *service) CreateBoard(ctx context.Context, req CreateBoardRequest) (*models.Board, error) {
	req, err := normalizeCreateBoard(req)
	if err != nil {
		return nil, err
	}

	planned := buildLayout(req)
	layout := make(models.ColumnSet, 0, len(planned))
	for i, col := range planned {
		layout = append(layout, models.ColumnInfo{Order: i, Kind: col.kind})
	}
	if err := ValidateLayout(layout); err != nil {
		return nil, err
	}

	var created *models.Board
	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx database.DBTX) error {
		repo := database.NewRepository(tx)

		board, err := repo.Boards.Create(ctx, req.Name)
		if err != nil {
			return err
		}

		for i, col := range planned {
			column, err := repo.Columns.Create(ctx, board.ID, col.name, col.kind, i)
			if err != nil {
				return err
			}
			board.Columns = append(board.Columns, column)
		}

		created = board
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Debug("board created", "board_id", created.ID, "columns", len(created.Columns))
	return created, nil
}

// DeleteBoard removes a board with its columns, cards and block history
func (s *service) DeleteBoard(ctx context.Context, id types.BoardID) error {
	if id <= 0 {
		return ErrInvalidBoardID
	}

	err := s.repo.Boards.Delete(ctx, id)
	if errors.Is(err, database.ErrNotFound) {
		return ErrBoardNotFound
	}
	if err != nil {
		return err
	}

	s.logger.Debug("board deleted", "board_id", id)
	return nil
}

// normalizeCreateBoard trims every name and validates it
func normalizeCreateBoard(req CreateBoardRequest) (CreateBoardRequest, error) {
	var err error
	if req.Name, err = validateName(req.Name); err != nil {
		return req, err
	}
	if req.InitialColumn, err = validateName(req.InitialColumn); err != nil {
		return req, err
	}
	if req.FinalColumn, err = validateName(req.FinalColumn); err != nil {
		return req, err
	}
	if req.CancelColumn, err = validateName(req.CancelColumn); err != nil {
		return req, err
	}

	pending := make([]string, 0, len(req.PendingColumns))
	for _, name := range req.PendingColumns {
		name, err := validateName(name)
		if err != nil {
			return req, err
		}
		pending = append(pending, name)
	}
	req.PendingColumns = pending

	return req, nil
}

func validateName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", ErrEmptyName
	}
	if len(name) > models.MaxNameLength {
		return "", ErrNameTooLong
	}
	return name, nil
}

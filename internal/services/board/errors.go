package board

import (
	"errors"
	"fmt"

	"github.com/thenoetrevino/quadro/internal/models"
)

// Domain errors for board service
var (
	// Validation errors
	ErrEmptyName      = errors.New("name cannot be empty")
	ErrNameTooLong    = fmt.Errorf("name cannot exceed %d characters", models.MaxNameLength)
	ErrInvalidBoardID = errors.New("invalid board ID")
	ErrInvalidLayout  = errors.New("invalid column layout")

	// Business logic errors
	ErrBoardNotFound = errors.New("board not found")
)

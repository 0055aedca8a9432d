package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/quadro/internal/models"
	"github.com/thenoetrevino/quadro/internal/types"
)

// ErrNoBoard is returned when neither --board nor QUADRO_BOARD names a board
var ErrNoBoard = errors.New("no board specified (use --board or set QUADRO_BOARD)")

// GetBoardID returns the board from the --board flag, falling back to
// QUADRO_BOARD through the configuration.
func GetBoardID(cmd *cobra.Command) (types.BoardID, error) {
	if cmd.Flags().Lookup("board") != nil {
		boardID, _ := cmd.Flags().GetInt("board")
		if cmd.Flags().Changed("board") {
			if boardID <= 0 {
				return 0, fmt.Errorf("board ID must be a positive integer, got %d", boardID)
			}
			return types.BoardID(boardID), nil
		}
	}

	if id := ConfigFromContext(Context(cmd)).DefaultBoard; id > 0 {
		return id, nil
	}
	return 0, ErrNoBoard
}

// ResolveBoard loads the board a card command operates on. An explicit
// board (flag or QUADRO_BOARD) wins; otherwise the card's own board is used.
func ResolveBoard(ctx context.Context, cmd *cobra.Command, c *CLI, cardID types.CardID) (*models.Board, error) {
	boardID, err := GetBoardID(cmd)
	if errors.Is(err, ErrNoBoard) {
		detail, detailErr := c.App.CardService.GetCardDetail(ctx, cardID)
		if detailErr != nil {
			return nil, detailErr
		}
		boardID, err = detail.BoardID, nil
	}
	if err != nil {
		return nil, err
	}
	return c.App.BoardService.GetBoard(ctx, boardID)
}

// ReadDescription returns value, or all of stdin when value is "-"
func ReadDescription(value string) (string, error) {
	if value != "-" {
		return value, nil
	}
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", fmt.Errorf("failed to read description from stdin: %w", err)
	}
	return strings.TrimRight(string(data), "\n"), nil
}

// PositiveID reads an integer flag and rejects values below 1
func PositiveID(cmd *cobra.Command, name string) (int, error) {
	id, _ := cmd.Flags().GetInt(name)
	if id <= 0 {
		return 0, fmt.Errorf("--%s must be a positive integer", name)
	}
	return id, nil
}

// Context returns the command's context, never nil
func Context(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}

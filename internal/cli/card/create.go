package card

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/quadro/internal/cli"
	cardservice "github.com/thenoetrevino/quadro/internal/services/card"
)

// CreateCmd returns the card create subcommand
func CreateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a new card in the board's initial column",
		Long: `Create a new card. Cards always start in the INITIAL column of their board.

Examples:
  # Simple card (human-readable output)
  quadro card create --title="Fix login" --board=1

  # JSON output for agents
  quadro card create --title="Fix login" --board=1 --json

  # Quiet mode for bash capture
  CARD_ID=$(quadro card create --title="Fix login" --board=1 --quiet)

  # Description from stdin
  cat notes.md | quadro card create --title="Write docs" --description=-
`,
		RunE: runCreate,
	}

	cmd.Flags().String("title", "", "Card title (required)")
	_ = cmd.MarkFlagRequired("title")

	cmd.Flags().Int("board", 0, "Board ID (uses QUADRO_BOARD env var if not specified)")
	cmd.Flags().String("description", "", "Card description in markdown (use - for stdin)")

	cli.AddOutputFlags(cmd)

	return cmd
}

func runCreate(cmd *cobra.Command, args []string) error {
	ctx := cli.Context(cmd)
	formatter := cli.NewFormatter(cmd)

	boardID, err := cli.GetBoardID(cmd)
	if err != nil {
		return formatter.Usage("NO_BOARD", err.Error(),
			"Set a default board with: export QUADRO_BOARD=<board-id>")
	}

	title, _ := cmd.Flags().GetString("title")
	rawDescription, _ := cmd.Flags().GetString("description")
	description, err := cli.ReadDescription(rawDescription)
	if err != nil {
		return formatter.FailWith("STDIN_READ_ERROR", cli.ExitDataErr, err)
	}

	cliInstance, release, err := cli.Open(cmd, formatter)
	if err != nil {
		return err
	}
	defer release()

	board, err := cliInstance.App.BoardService.GetBoard(ctx, boardID)
	if err != nil {
		return formatter.Fail(err)
	}

	card, err := cliInstance.App.CardService.CreateCard(ctx, cardservice.CreateCardRequest{
		Title:       title,
		Description: description,
		Columns:     board.ColumnSet(),
	})
	if err != nil {
		return formatter.Fail(err)
	}

	if formatter.Quiet {
		fmt.Printf("%d\n", card.ID)
		return nil
	}

	if formatter.JSON {
		return formatter.JSONSuccess(map[string]any{
			"card":  cardJSON(card),
			"board": map[string]any{"id": board.ID, "name": board.Name},
		})
	}

	fmt.Printf("✓ Card '%s' created successfully (ID: %d)\n", card.Title, card.ID)
	fmt.Printf("  Board: %s\n", board.Name)
	if initial := board.InitialColumn(); initial != nil {
		fmt.Printf("  Column: %s\n", initial.Name)
	}

	return nil
}

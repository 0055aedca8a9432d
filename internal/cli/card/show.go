package card

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/quadro/internal/cli"
	"github.com/thenoetrevino/quadro/internal/cli/styles"
	"github.com/thenoetrevino/quadro/internal/models"
	"github.com/thenoetrevino/quadro/internal/types"
)

// ShowCmd returns the card show subcommand
func ShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show [id]",
		Short: "Show card details",
		Long:  "Display all details of a card: its column, block state, block count and markdown description.",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runShow,
	}

	cmd.Flags().Int("id", 0, "Card ID (can also be provided as positional argument)")
	cli.AddOutputFlags(cmd)

	return cmd
}

func runShow(cmd *cobra.Command, args []string) error {
	ctx := cli.Context(cmd)
	formatter := cli.NewFormatter(cmd)

	cardID, _ := cmd.Flags().GetInt("id")
	if len(args) > 0 {
		parsed, err := strconv.Atoi(args[0])
		if err != nil {
			return formatter.Usage("INVALID_CARD_ID",
				fmt.Sprintf("invalid card ID: %s", args[0]),
				"Usage: quadro card show <id> or quadro card show --id=<id>")
		}
		cardID = parsed
	}
	if cardID <= 0 {
		return formatter.Usage("INVALID_CARD_ID",
			"card ID must be a positive integer",
			"Usage: quadro card show <id> or quadro card show --id=<id>")
	}

	cliInstance, release, err := cli.Open(cmd, formatter)
	if err != nil {
		return err
	}
	defer release()

	detail, err := cliInstance.App.CardService.GetCardDetail(ctx, types.CardID(cardID))
	if err != nil {
		return formatter.Fail(err)
	}

	if formatter.Quiet {
		fmt.Printf("%d\n", detail.ID)
		return nil
	}

	if formatter.JSON {
		return formatter.JSONSuccess(map[string]any{"card": cardDetailJSON(detail)})
	}

	fmt.Println(renderDetail(detail))
	return nil
}

func renderDetail(d *models.CardDetail) string {
	var content strings.Builder

	content.WriteString(styles.TitleStyle.Render(d.Title))
	if d.Blocked {
		content.WriteString("  " + styles.RenderBlocked())
	}
	content.WriteString("\n")
	content.WriteString(styles.SubtitleStyle.Render(fmt.Sprintf("Card #%d on board #%d", d.ID, d.BoardID)))
	content.WriteString("\n\n")

	content.WriteString(styles.RenderField("Column", d.ColumnName) + " " + styles.RenderKind(d.ColumnKind) + "\n")
	if d.Blocked {
		content.WriteString(styles.RenderField("Blocked", d.BlockReason) + "\n")
	}
	content.WriteString(styles.RenderField("Times blocked", strconv.Itoa(d.BlocksAmount)) + "\n")
	content.WriteString(styles.RenderField("Created", formatTime(d.CreatedAt)) + "\n")
	content.WriteString(styles.RenderField("Updated", formatTime(d.UpdatedAt)) + "\n")

	content.WriteString(styles.SectionStyle.Render("Description"))
	content.WriteString("\n")
	content.WriteString(styles.RenderMarkdown(d.Description, styles.CardWidth-6))

	return styles.RenderCard(content.String())
}

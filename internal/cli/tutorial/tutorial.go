package tutorial

import (
	_ "embed"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/quadro/internal/cli/styles"
)

//go:embed tutorial.md
var tutorialContent string

// TutorialCmd returns the tutorial command
func TutorialCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tutorial",
		Short: "Explain the quadro card workflow",
		Long: `Output a short guide to boards, columns and the card lifecycle.

The guide is markdown; it is rendered when stdout is a terminal and printed
raw otherwise, so it can be piped into other tools.`,
		Run: func(cmd *cobra.Command, args []string) {
			outputTutorial()
		},
	}
	return cmd
}

func outputTutorial() {
	fmt.Println(styles.RenderMarkdown(tutorialContent, styles.CardWidth))
}

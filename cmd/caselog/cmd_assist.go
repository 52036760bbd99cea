package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"

	"caselog/internal/assist"
	"caselog/internal/record"
)

// assistCmd drafts text through the external generative-text service.
var assistCmd = &cobra.Command{
	Use:   "assist",
	Short: "Draft reflection or learning text with the AI assistant",
	Long: `Sends the case's details to the generative-text service and prints a
draft for you to copy into the record. Nothing is written to the
logbook; the draft is advisory text only.

The API key comes from --api-key or the ANTHROPIC_API_KEY environment
variable and is held in memory for this run only.

Subcommands:
  reflection <id>  - draft a reflection for the case
  learning <id>    - draft learning points for the case
  ask <id> <q...>  - ask a free question about the case`,
}

var assistReflectionCmd = &cobra.Command{
	Use:   "reflection <id>",
	Short: "Draft a reflection for a case",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runAssist(cmd, args[0], func(c record.Case) string {
			return assist.ReflectionPrompt(c)
		})
	},
}

var assistLearningCmd = &cobra.Command{
	Use:   "learning <id>",
	Short: "Draft learning points for a case",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runAssist(cmd, args[0], func(c record.Case) string {
			return assist.LearningPrompt(c)
		})
	},
}

var assistAskCmd = &cobra.Command{
	Use:   "ask <id> <question...>",
	Short: "Ask a question about a case",
	Args:  cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		question := strings.Join(args[1:], " ")
		return runAssist(cmd, args[0], func(c record.Case) string {
			return assist.QuestionPrompt(c, question)
		})
	},
}

func init() {
	assistCmd.AddCommand(assistReflectionCmd)
	assistCmd.AddCommand(assistLearningCmd)
	assistCmd.AddCommand(assistAskCmd)
}

func runAssist(cmd *cobra.Command, idArg string, buildPrompt func(record.Case) string) error {
	id, err := parseID(idArg)
	if err != nil {
		return err
	}
	c, err := app.Logbook.Get(id)
	if err != nil {
		return err
	}

	text, err := app.AssistClient().Generate(cmd.Context(), buildPrompt(c))
	if err != nil {
		// Service failures become inline advisory text; the logbook is
		// never at risk from them.
		fmt.Println(hintStyle.Render(assist.UserMessage(err)))
		return nil
	}

	rendered, err := glamour.Render(text, "auto")
	if err != nil {
		fmt.Println(text)
	} else {
		fmt.Print(rendered)
	}
	fmt.Println(hintStyle.Render("Copy the draft into the case with 'caselog log --edit " + idArg + "'."))
	return nil
}

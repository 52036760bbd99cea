package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"caselog/internal/export"
	"caselog/internal/portfolio"
	"caselog/internal/record"
)

var listFilter string

// listCmd shows the logbook, newest first.
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List cases, newest first",
	Long: `Lists cases sorted by date descending. The stored collection order is
never changed; sorting happens at display time only.

Filter with --filter all|complete|incomplete.`,
	RunE: runList,
}

// showCmd prints one case's formatted export block.
var showCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Print one case in the export format",
	Args:  cobra.ExactArgs(1),
	RunE:  runShow,
}

func init() {
	listCmd.Flags().StringVar(&listFilter, "filter", "all", "all, complete or incomplete")
}

func runList(cmd *cobra.Command, args []string) error {
	mode, err := portfolio.ParseFilterMode(listFilter)
	if err != nil {
		return err
	}

	st, err := app.Logbook.Stats()
	if err != nil {
		return err
	}
	fmt.Println(statsStrip(st))
	fmt.Println()

	cases := portfolio.SortedForDisplay(app.Logbook.Filter(mode))
	if len(cases) == 0 {
		fmt.Println(hintStyle.Render("No cases to display. Start with 'caselog log'."))
		return nil
	}
	for _, c := range cases {
		fmt.Println(renderCard(c))
	}
	return nil
}

func runShow(cmd *cobra.Command, args []string) error {
	id, err := parseID(args[0])
	if err != nil {
		return err
	}
	c, err := app.Logbook.Get(id)
	if err != nil {
		return err
	}
	fmt.Println(export.Format(c))
	return nil
}

func statsStrip(st portfolio.Stats) string {
	return strings.Join([]string{
		statStyle.Render(fmt.Sprintf("%d total", st.Total)),
		statStyle.Render(fmt.Sprintf("%d done", st.Complete)),
		statStyle.Render(fmt.Sprintf("%d to finish", st.Incomplete)),
		statStyle.Render(fmt.Sprintf("%d this week", st.ThisWeek)),
	}, " ")
}

func renderCard(c record.Case) string {
	var b strings.Builder

	header := c.Date
	if c.Time != "" {
		header += " (" + c.Time + ")"
	}
	badge := badgeTodo.String()
	if c.Completed {
		badge = badgeDone.String()
	}
	b.WriteString(fmt.Sprintf("%s  %s  %s\n", titleStyle.Render(header), badge,
		metaStyle.Render(record.AssessmentLabel(c.AssessmentType))))

	procedure := c.Procedure
	if procedure == "" {
		procedure = "Unknown procedure"
	}
	b.WriteString(procedure + "\n")

	var meta []string
	for _, s := range []string{c.Urgency, c.OperationType, c.AnaestheticType, c.AgeCategory} {
		if s != "" {
			meta = append(meta, s)
		}
	}
	if c.ASAGrade != "" {
		meta = append(meta, "ASA "+c.ASAGrade)
	}
	if len(meta) > 0 {
		b.WriteString(metaStyle.Render(strings.Join(meta, " • ")) + "\n")
	}

	var who []string
	for _, s := range []string{c.SupervisionLevel, c.Supervisor} {
		if s != "" {
			who = append(who, s)
		}
	}
	if len(who) > 0 {
		b.WriteString(metaStyle.Render(strings.Join(who, " • ")) + "\n")
	}
	b.WriteString(metaStyle.Render(fmt.Sprintf("id %d", c.ID)))

	if c.Completed {
		return doneCardStyle.Render(b.String())
	}
	return cardStyle.Render(b.String())
}

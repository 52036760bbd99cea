package main

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"caselog/cmd/caselog/ui"
	"caselog/internal/record"
	"caselog/internal/templates"
)

// logCmd opens the interactive entry form.
var logCmd = &cobra.Command{
	Use:   "log",
	Short: "Log a case through the interactive form",
	Long: `Opens the interactive entry form. Pick the assessment type, fill in
the fields you have, and save. Catalogue fields cycle with left/right;
free text fields accept anything.

Template text and curriculum tag suggestions are offered while editing
and only applied when you opt in.`,
	RunE: runLogForm,
}

var editFlag int64

// addCmd logs a case non-interactively from flags.
var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Log a case from flags, without the form",
	Long: `Creates a case record directly from flags. Date defaults to today.

Example:
  caselog add --type case --procedure "Spinal" --urgency Elective \
    --specialty Orthopaedic --link "EPA3 - Safe Conduct of Anaesthesia"`,
	RunE: runAdd,
}

var addFlags struct {
	assessmentType string
	date           string
	timeOfDay      string
	ageCategory    string
	asaGrade       string
	urgency        string
	operationType  string
	anaesthetic    string
	supervision    string
	caseType       string
	procedure      string
	supervisor     string
	notes          string
	reflection     string
	learning       string
	links          []string
	completed      bool
	useTemplate    bool
	suggestTags    bool
}

func init() {
	logCmd.Flags().Int64Var(&editFlag, "edit", 0, "edit the case with this id instead of creating one")

	f := addCmd.Flags()
	f.StringVar(&addFlags.assessmentType, "type", record.AssessmentCase, "assessment type (case, cbd, cex, dops, acat, sle)")
	f.StringVar(&addFlags.date, "date", "", "case date YYYY-MM-DD (default today)")
	f.StringVar(&addFlags.timeOfDay, "time", "", "time of day (Morning, Afternoon, Evening, Night)")
	f.StringVar(&addFlags.ageCategory, "age", "", "patient age category")
	f.StringVar(&addFlags.asaGrade, "asa", "", "ASA grade")
	f.StringVar(&addFlags.urgency, "urgency", "", "urgency")
	f.StringVar(&addFlags.operationType, "specialty", "", "operation specialty")
	f.StringVar(&addFlags.anaesthetic, "anaesthetic", "", "anaesthetic technique")
	f.StringVar(&addFlags.supervision, "supervision", "", "role / supervision level")
	f.StringVar(&addFlags.caseType, "case-type", "", "case category")
	f.StringVar(&addFlags.procedure, "procedure", "", "procedure performed")
	f.StringVar(&addFlags.supervisor, "supervisor", "", "supervisor name")
	f.StringVar(&addFlags.notes, "notes", "", "quick notes")
	f.StringVar(&addFlags.reflection, "reflection", "", "reflection text")
	f.StringVar(&addFlags.learning, "learning", "", "learning points")
	f.StringArrayVar(&addFlags.links, "link", nil, "curriculum tag to link (repeatable)")
	f.BoolVar(&addFlags.completed, "completed", false, "mark the case complete")
	f.BoolVar(&addFlags.useTemplate, "use-template", false, "prefill empty reflection/learning from the template tables")
	f.BoolVar(&addFlags.suggestTags, "suggest-tags", false, "print suggested curriculum tags after saving")
}

func runLogForm(cmd *cobra.Command, args []string) error {
	var initial record.Case
	editing := false
	if editFlag != 0 {
		c, err := app.Logbook.Get(editFlag)
		if err != nil {
			return err
		}
		initial = c
		editing = true
	} else {
		initial.Date = time.Now().Format(record.DateLayout)
	}

	model := ui.NewForm(initial, editing)
	final, err := tea.NewProgram(model).Run()
	if err != nil {
		return fmt.Errorf("form failed: %w", err)
	}
	form, ok := final.(ui.FormModel)
	if !ok || !form.Submitted() {
		fmt.Println("Cancelled.")
		return nil
	}

	c := form.Result()
	if editing {
		if err := app.Logbook.Update(editFlag, c); err != nil {
			return err
		}
		fmt.Printf("Case %d updated.\n", editFlag)
		return nil
	}
	added, err := app.Logbook.Add(c)
	if err != nil {
		return err
	}
	fmt.Printf("Case %d saved.\n", added.ID)
	return nil
}

func runAdd(cmd *cobra.Command, args []string) error {
	c := record.Case{
		AssessmentType:   addFlags.assessmentType,
		Date:             addFlags.date,
		Time:             addFlags.timeOfDay,
		AgeCategory:      addFlags.ageCategory,
		ASAGrade:         addFlags.asaGrade,
		Urgency:          addFlags.urgency,
		OperationType:    addFlags.operationType,
		AnaestheticType:  addFlags.anaesthetic,
		SupervisionLevel: addFlags.supervision,
		CaseType:         addFlags.caseType,
		Procedure:        addFlags.procedure,
		Supervisor:       addFlags.supervisor,
		Notes:            addFlags.notes,
		Reflection:       addFlags.reflection,
		Learning:         addFlags.learning,
		LinkedTo:         addFlags.links,
		Completed:        addFlags.completed,
	}
	if c.Date == "" {
		c.Date = time.Now().Format(record.DateLayout)
	}

	if addFlags.useTemplate {
		if c.Reflection == "" {
			c.Reflection = templates.Reflection(c.CaseType, c.Procedure)
		}
		if c.Learning == "" {
			c.Learning = templates.Learning(c.CaseType, c.Procedure)
		}
	}

	added, err := app.Logbook.Add(c)
	if err != nil {
		return err
	}
	fmt.Printf("Case %d saved.\n", added.ID)

	if addFlags.suggestTags {
		tags := templates.SuggestTags(c.AssessmentType, c.Procedure, c.Notes)
		fmt.Println(hintStyle.Render("Suggested curriculum links (apply with 'caselog log --edit " +
			fmt.Sprint(added.ID) + "'):"))
		fmt.Println("  " + strings.Join(tags, "\n  "))
	}
	return nil
}

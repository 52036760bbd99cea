// Package ui holds the interactive bubbletea shell for case entry. The
// form collects validated field values and hands a finished record back
// to the command layer; it never touches the store itself.
package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"caselog/internal/record"
	"caselog/internal/templates"
)

type fieldKind int

const (
	kindInput  fieldKind = iota // free text line
	kindArea                    // multi-line text
	kindOption                  // cycle through a catalogue, empty first
	kindToggle                  // boolean
	kindTags                    // multi-select over the EPA catalogue
)

// field is one row of the form. Option fields cycle with left/right;
// the empty choice at index 0 means "not recorded".
type field struct {
	key     string
	label   string
	kind    fieldKind
	input   textinput.Model
	area    textarea.Model
	options []string
	choice  int
	on      bool
	picks   map[int]bool
}

// FormModel is the case entry form.
type FormModel struct {
	fields    []field
	focus     int
	editing   bool
	submitted bool
	initial   record.Case
	styles    Styles
	err       string
}

// NewForm builds the form, prefilled from initial (zero value plus date
// for a new case, the stored record when editing).
func NewForm(initial record.Case, editing bool) FormModel {
	m := FormModel{
		editing: editing,
		initial: initial,
		styles:  DefaultStyles(),
	}
	m.fields = buildFields(initial)
	m.setFocus(0)
	return m
}

func buildFields(c record.Case) []field {
	fields := []field{
		optionField("type", "Assessment type", assessmentLabels(), indexOf(record.AssessmentOrder, c.AssessmentType)),
		inputField("date", "Date (YYYY-MM-DD)", c.Date, "2024-01-15"),
		optionField("time", "Time of day", withEmpty(record.TimesOfDay), optionIndex(record.TimesOfDay, c.Time)),
		inputField("age", "Patient age", c.AgeCategory, "e.g. 45y, 6m, 3 weeks"),
		optionField("asa", "ASA grade", withEmpty(record.ASAGrades), optionIndex(record.ASAGrades, c.ASAGrade)),
		optionField("urgency", "Urgency", withEmpty(record.UrgencyTypes), optionIndex(record.UrgencyTypes, c.Urgency)),
		optionField("specialty", "Operation type", withEmpty(record.OperationTypes), optionIndex(record.OperationTypes, c.OperationType)),
		optionField("anaesthetic", "Anaesthetic type", withEmpty(record.AnaestheticTypes), optionIndex(record.AnaestheticTypes, c.AnaestheticType)),
		optionField("supervision", "Role / supervision", withEmpty(record.SupervisionLevels), optionIndex(record.SupervisionLevels, c.SupervisionLevel)),
		optionField("casetype", "Case type", withEmpty(record.CaseTypes), optionIndex(record.CaseTypes, c.CaseType)),
		inputField("procedure", "Procedure", c.Procedure, "e.g. Emergency laparotomy"),
		inputField("supervisor", "Supervisor", c.Supervisor, "e.g. Dr Smith"),
		areaField("notes", "Quick notes", c.Notes),
	}
	fields = append(fields, ratingFields(c)...)
	fields = append(fields,
		areaField("reflection", "Reflection", c.Reflection),
		areaField("learning", "Learning points", c.Learning),
		tagsField(c.LinkedTo),
		toggleField("completed", "Mark as complete", c.Completed),
	)
	return fields
}

// ratingFields emits one option row per competency area for the rating
// assessment types.
func ratingFields(c record.Case) []field {
	areas := c.RatingAreas()
	if areas == nil {
		return nil
	}
	var scale []string
	switch c.AssessmentType {
	case record.AssessmentCBD:
		scale = record.CBDScale
	case record.AssessmentCEX:
		scale = record.CEXScale
	}
	scores := c.Scores()
	fields := make([]field, 0, len(areas))
	for _, area := range areas {
		fields = append(fields, optionField("rating:"+area, area,
			withEmpty(scale), optionIndex(scale, scores[area])))
	}
	return fields
}

func inputField(key, label, value, placeholder string) field {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.CharLimit = 200
	ti.SetValue(value)
	return field{key: key, label: label, kind: kindInput, input: ti}
}

func areaField(key, label, value string) field {
	ta := textarea.New()
	ta.SetHeight(3)
	ta.SetValue(value)
	ta.ShowLineNumbers = false
	return field{key: key, label: label, kind: kindArea, area: ta}
}

func optionField(key, label string, options []string, choice int) field {
	if choice < 0 || choice >= len(options) {
		choice = 0
	}
	return field{key: key, label: label, kind: kindOption, options: options, choice: choice}
}

func toggleField(key, label string, on bool) field {
	return field{key: key, label: label, kind: kindToggle, on: on}
}

func tagsField(linked []string) field {
	picks := make(map[int]bool)
	for i, tag := range record.EPAOptions {
		for _, l := range linked {
			if l == tag {
				picks[i] = true
			}
		}
	}
	return field{key: "links", label: "Curriculum links", kind: kindTags, picks: picks}
}

func assessmentLabels() []string {
	labels := make([]string, len(record.AssessmentOrder))
	for i, code := range record.AssessmentOrder {
		labels[i] = record.AssessmentLabels[code]
	}
	return labels
}

func withEmpty(options []string) []string {
	return append([]string{""}, options...)
}

func indexOf(xs []string, x string) int {
	for i, v := range xs {
		if v == x {
			return i
		}
	}
	return 0
}

// optionIndex maps a stored value into a withEmpty options list.
func optionIndex(options []string, value string) int {
	if value == "" {
		return 0
	}
	for i, v := range options {
		if v == value {
			return i + 1
		}
	}
	return 0
}

func (m *FormModel) setFocus(i int) {
	for j := range m.fields {
		m.fields[j].input.Blur()
		m.fields[j].area.Blur()
	}
	m.focus = i
	switch m.fields[i].kind {
	case kindInput:
		m.fields[i].input.Focus()
	case kindArea:
		m.fields[i].area.Focus()
	}
}

// fieldValue reads an option row back into its stored string.
func (f field) value() string {
	switch f.kind {
	case kindInput:
		return strings.TrimSpace(f.input.Value())
	case kindArea:
		return strings.TrimSpace(f.area.Value())
	case kindOption:
		return f.options[f.choice]
	}
	return ""
}

func (m FormModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m FormModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m.updateFocused(msg)
	}

	switch key.String() {
	case "esc", "ctrl+c":
		m.submitted = false
		return m, tea.Quit

	case "ctrl+d":
		date := m.fields[m.fieldIndex("date")].value()
		if date == "" {
			m.err = "date is required"
			return m, nil
		}
		if _, err := time.Parse(record.DateLayout, date); err != nil {
			m.err = "date must be YYYY-MM-DD"
			return m, nil
		}
		m.submitted = true
		return m, tea.Quit

	case "tab", "down", "enter":
		// Textareas keep enter for newlines.
		if key.String() == "enter" && m.fields[m.focus].kind == kindArea {
			return m.updateFocused(msg)
		}
		m.setFocus((m.focus + 1) % len(m.fields))
		return m, nil

	case "shift+tab", "up":
		m.setFocus((m.focus + len(m.fields) - 1) % len(m.fields))
		return m, nil

	case "left", "right":
		f := &m.fields[m.focus]
		if f.kind == kindOption {
			delta := 1
			if key.String() == "left" {
				delta = len(f.options) - 1
			}
			f.choice = (f.choice + delta) % len(f.options)
			if f.key == "type" {
				m.rebuildRatings()
			}
			return m, nil
		}
		if f.kind == kindTags {
			return m, nil
		}
		return m.updateFocused(msg)

	case " ":
		f := &m.fields[m.focus]
		switch f.kind {
		case kindToggle:
			f.on = !f.on
			return m, nil
		case kindTags:
			// Space cycles nothing here; digits pick tags below.
		default:
			return m.updateFocused(msg)
		}

	case "ctrl+t":
		m.applyTemplates()
		return m, nil

	case "ctrl+s":
		m.applySuggestedTags()
		return m, nil
	}

	// Digit keys toggle curriculum tags while the tag row is focused.
	if f := &m.fields[m.focus]; f.kind == kindTags && len(key.String()) == 1 {
		d := int(key.String()[0] - '1')
		if d >= 0 && d < len(record.EPAOptions) {
			f.picks[d] = !f.picks[d]
			return m, nil
		}
	}

	return m.updateFocused(msg)
}

func (m FormModel) updateFocused(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	f := &m.fields[m.focus]
	switch f.kind {
	case kindInput:
		f.input, cmd = f.input.Update(msg)
	case kindArea:
		f.area, cmd = f.area.Update(msg)
	}
	return m, cmd
}

func (m *FormModel) fieldIndex(key string) int {
	for i, f := range m.fields {
		if f.key == key {
			return i
		}
	}
	return 0
}

// rebuildRatings swaps the rating rows when the assessment type changes,
// keeping everything else the author already entered.
func (m *FormModel) rebuildRatings() {
	c := m.assemble()
	focusKey := m.fields[m.focus].key
	m.fields = buildFields(c)
	m.setFocus(m.fieldIndex(focusKey))
}

// applyTemplates prefills empty reflection/learning from the canned
// tables. Opt-in only, and never overwrites the author's text.
func (m *FormModel) applyTemplates() {
	caseType := m.fields[m.fieldIndex("casetype")].value()
	procedure := m.fields[m.fieldIndex("procedure")].value()

	if i := m.fieldIndex("reflection"); m.fields[i].value() == "" {
		if text := templates.Reflection(caseType, procedure); text != "" {
			m.fields[i].area.SetValue(text)
		}
	}
	if i := m.fieldIndex("learning"); m.fields[i].value() == "" {
		if text := templates.Learning(caseType, procedure); text != "" {
			m.fields[i].area.SetValue(text)
		}
	}
}

// applySuggestedTags merges keyword-derived tag suggestions into the
// current selection.
func (m *FormModel) applySuggestedTags() {
	c := m.assemble()
	suggested := templates.SuggestTags(c.AssessmentType, c.Procedure, c.Notes)
	f := &m.fields[m.fieldIndex("links")]
	for i, tag := range record.EPAOptions {
		for _, s := range suggested {
			if s == tag {
				f.picks[i] = true
			}
		}
	}
}

// assemble reads every field back into a record.
func (m FormModel) assemble() record.Case {
	c := m.initial // keeps ID and Exported for edits

	typeIdx := m.fields[m.fieldIndex("type")].choice
	c.AssessmentType = record.AssessmentOrder[typeIdx]

	c.Date = m.fields[m.fieldIndex("date")].value()
	c.Time = m.fields[m.fieldIndex("time")].value()
	c.AgeCategory = m.fields[m.fieldIndex("age")].value()
	c.ASAGrade = m.fields[m.fieldIndex("asa")].value()
	c.Urgency = m.fields[m.fieldIndex("urgency")].value()
	c.OperationType = m.fields[m.fieldIndex("specialty")].value()
	c.AnaestheticType = m.fields[m.fieldIndex("anaesthetic")].value()
	c.SupervisionLevel = m.fields[m.fieldIndex("supervision")].value()
	c.CaseType = m.fields[m.fieldIndex("casetype")].value()
	c.Procedure = m.fields[m.fieldIndex("procedure")].value()
	c.Supervisor = m.fields[m.fieldIndex("supervisor")].value()
	c.Notes = m.fields[m.fieldIndex("notes")].value()
	c.Reflection = m.fields[m.fieldIndex("reflection")].value()
	c.Learning = m.fields[m.fieldIndex("learning")].value()

	c.CBDScores = nil
	c.CEXScores = nil
	scores := make(map[string]string)
	for _, f := range m.fields {
		if area, ok := strings.CutPrefix(f.key, "rating:"); ok {
			scores[area] = f.value()
		}
	}
	if len(scores) > 0 {
		switch c.AssessmentType {
		case record.AssessmentCBD:
			c.CBDScores = scores
		case record.AssessmentCEX:
			c.CEXScores = scores
		}
	}

	var linked []string
	for i, tag := range record.EPAOptions {
		if m.fields[m.fieldIndex("links")].picks[i] {
			linked = append(linked, tag)
		}
	}
	c.LinkedTo = linked

	c.Completed = m.fields[m.fieldIndex("completed")].on
	return c
}

// Submitted reports whether the author saved (vs cancelled).
func (m FormModel) Submitted() bool {
	return m.submitted
}

// Result returns the assembled record after a submit.
func (m FormModel) Result() record.Case {
	return m.assemble()
}

func (m FormModel) View() string {
	var b strings.Builder
	title := "New case"
	if m.editing {
		title = fmt.Sprintf("Edit case %d", m.initial.ID)
	}
	b.WriteString(m.styles.Title.Render(title) + "\n\n")

	for i, f := range m.fields {
		label := m.styles.Label.Render(f.label)
		if i == m.focus {
			label = m.styles.Focused.Render("> " + f.label)
		}
		b.WriteString(label + " ")
		switch f.kind {
		case kindInput:
			b.WriteString(f.input.View())
		case kindArea:
			b.WriteString("\n" + f.area.View())
		case kindOption:
			choice := f.options[f.choice]
			if choice == "" {
				choice = "—"
			}
			b.WriteString(m.styles.Value.Render("< " + choice + " >"))
		case kindToggle:
			mark := "[ ]"
			if f.on {
				mark = m.styles.Selected.Render("[x]")
			}
			b.WriteString(mark)
		case kindTags:
			b.WriteString("\n")
			for j, tag := range record.EPAOptions {
				mark := "[ ]"
				if f.picks[j] {
					mark = m.styles.Selected.Render("[x]")
				}
				b.WriteString(fmt.Sprintf("    %d %s %s\n", j+1, mark, tag))
			}
		}
		b.WriteString("\n")
	}

	if m.err != "" {
		b.WriteString(m.styles.Hint.Render("! "+m.err) + "\n")
	}
	b.WriteString(m.styles.Hint.Render(
		"tab/↑↓ move · ←→ cycle · 1-7 toggle links · ctrl+t template · ctrl+s suggest tags · ctrl+d save · esc cancel"))
	return b.String()
}

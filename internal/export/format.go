// Package export renders case records into the clipboard-ready text
// blocks pasted into the learning platform, and writes export artifact
// files. The section labels, rule widths and ordering are a contract:
// output must be byte-stable across releases.
package export

import (
	"strings"

	"caselog/internal/record"
)

const ruleWidth = 70

var (
	heavyRule = strings.Repeat("=", ruleWidth)
	lightRule = strings.Repeat("-", ruleWidth)
)

// Format renders one record. Sections appear in a fixed order and only
// when their underlying data is non-empty.
func Format(c record.Case) string {
	lines := []string{
		heavyRule,
		strings.ToUpper(record.AssessmentLabel(c.AssessmentType)),
		heavyRule,
		"",
		"CASE DETAILS",
		lightRule,
	}

	if c.Date != "" {
		dateDisplay := c.Date
		if c.Time != "" {
			dateDisplay += " (" + c.Time + ")"
		}
		lines = append(lines, "Date: "+dateDisplay)
	}

	// Patient line, anonymised: age category and ASA only.
	var patient []string
	if c.AgeCategory != "" {
		patient = append(patient, "Age: "+c.AgeCategory)
	}
	if c.ASAGrade != "" {
		patient = append(patient, "ASA: "+c.ASAGrade)
	}
	if len(patient) > 0 {
		lines = append(lines, strings.Join(patient, ", "))
	}

	if c.Urgency != "" {
		lines = append(lines, "Urgency: "+c.Urgency)
	}
	if c.OperationType != "" {
		lines = append(lines, "Specialty: "+c.OperationType)
	}
	if c.AnaestheticType != "" {
		lines = append(lines, "Anaesthetic: "+c.AnaestheticType)
	}
	if c.SupervisionLevel != "" {
		lines = append(lines, "Role/Supervision: "+c.SupervisionLevel)
	}
	if c.Procedure != "" {
		lines = append(lines, "Procedure: "+c.Procedure)
	}
	if c.Supervisor != "" {
		lines = append(lines, "Supervisor: "+c.Supervisor)
	}

	if c.Notes != "" {
		lines = append(lines, "", "CLINICAL NOTES", lightRule, c.Notes)
	}

	lines = appendRatings(lines, "CBD COMPETENCY RATINGS", record.CBDAreas, c.CBDScores)
	lines = appendRatings(lines, "CEX COMPETENCY RATINGS", record.CEXAreas, c.CEXScores)

	if c.Reflection != "" {
		lines = append(lines, "", "REFLECTION", lightRule, c.Reflection)
	}
	if c.Learning != "" {
		lines = append(lines, "", "LEARNING POINTS", lightRule, c.Learning)
	}

	if len(c.LinkedTo) > 0 {
		lines = append(lines, "", "CURRICULUM LINKS", lightRule)
		for _, tag := range c.LinkedTo {
			lines = append(lines, "• "+tag)
		}
	}

	lines = append(lines, "", heavyRule, "")
	return strings.Join(lines, "\n")
}

// appendRatings emits one ratings block, iterating the kind's fixed area
// catalogue rather than map order. The block is omitted entirely when
// the map is absent or every rating is empty.
func appendRatings(lines []string, header string, areas []string, scores map[string]string) []string {
	hasScores := false
	for _, v := range scores {
		if v != "" {
			hasScores = true
			break
		}
	}
	if !hasScores {
		return lines
	}
	lines = append(lines, "", header, lightRule)
	for _, area := range areas {
		if score := scores[area]; score != "" {
			lines = append(lines, area+": "+score)
		}
	}
	return lines
}

// FormatAll concatenates Format over the given records in order,
// separated by a newline.
func FormatAll(cases []record.Case) string {
	blocks := make([]string, len(cases))
	for i, c := range cases {
		blocks[i] = Format(c)
	}
	return strings.Join(blocks, "\n")
}

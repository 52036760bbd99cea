// Package templates offers canned reflection and learning text plus
// curriculum tag suggestions during authoring. Everything here is
// advisory: the author opts in explicitly, nothing is auto-applied.
package templates

// reflectionTexts is keyed by case type, with procedure names as a
// fallback key. Bracketed placeholders are for the author to fill in.
var reflectionTexts = map[string]string{
	"Emergency - Trauma":       "Assessed trauma patient in ED. Key considerations included potential difficult airway, hypovolaemia, and full stomach. Prepared for RSI with appropriate pre-oxygenation and blood products available. Discussed plan with consultant before proceeding.",
	"RSI":                      "Performed RSI for emergency case. Ensured adequate pre-oxygenation, positioning, and preparation for failed intubation (CICO plan ready). Used appropriate induction agents considering haemodynamic status. Successful first-pass intubation with grade [X] view.",
	"Pre-operative Assessment": "Conducted pre-operative assessment for emergency list patient. Assessed airway, cardiovascular and respiratory risk. Discussed anaesthetic plan with patient including risks/benefits. Documented clearly and communicated plan to theatre team.",
	"Spinal":                   "Performed spinal anaesthetic for [procedure]. Ensured sterile technique, appropriate positioning, and monitoring. Discussed risks with patient. Achieved successful placement with good block height. Managed haemodynamic changes appropriately.",
	"Failed Intubation":        "Encountered difficult/failed intubation. Followed DAS guidelines - declared failed intubation, called for help, maintained oxygenation. Used [technique] successfully. Team worked well, patient safety maintained throughout. Debriefed afterwards.",
}

var learningTexts = map[string]string{
	"Emergency - Trauma":       "Reinforced importance of systematic ATLS approach, preparation for difficult airway, and clear communication with trauma team. Reviewed massive transfusion protocols.",
	"RSI":                      "Consolidated RSI technique including optimal positioning, pre-oxygenation methods, and backup planning. Reviewed drug doses and indications for different clinical scenarios.",
	"Pre-operative Assessment": "Enhanced skills in risk stratification and anaesthetic planning. Improved communication of complex information to patients under time pressure.",
	"Spinal":                   "Developed technical skills in neuraxial techniques. Better understanding of contraindications, block assessment, and management of hypotension.",
	"Failed Intubation":        "Valuable learning on crisis resource management, following algorithms under pressure, and importance of early escalation. Reviewed DAS guidelines in detail afterwards.",
}

// Reflection returns the canned reflection for the case type, falling
// back to the procedure name, or "" when neither has an entry.
func Reflection(caseType, procedure string) string {
	return lookup(reflectionTexts, caseType, procedure)
}

// Learning returns the canned learning points with the same key fallback.
func Learning(caseType, procedure string) string {
	return lookup(learningTexts, caseType, procedure)
}

func lookup(table map[string]string, caseType, procedure string) string {
	if text, ok := table[caseType]; ok {
		return text
	}
	return table[procedure]
}

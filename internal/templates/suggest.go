package templates

import (
	"strings"

	"caselog/internal/record"
)

// tagRule maps a keyword found in the procedure or notes to curriculum
// tags. Rules are scanned in order so suggestions come out deterministic.
type tagRule struct {
	keyword string
	tags    []string
}

// Shared rule set. Keyword match is case-insensitive substring over the
// concatenation of procedure and notes.
var tagRules = []tagRule{
	{"pre-op", []string{"EPA2 - Pre-operative Assessment"}},
	{"preop", []string{"EPA2 - Pre-operative Assessment"}},
	{"rsi", []string{"EPA3 - Safe Conduct of Anaesthesia", "EPA1 - Initial Assessment & Management"}},
	{"intubation", []string{"EPA3 - Safe Conduct of Anaesthesia"}},
	{"airway", []string{"EPA3 - Safe Conduct of Anaesthesia"}},
	{"spinal", []string{"EPA3 - Safe Conduct of Anaesthesia", "EPA5 - Managing Acute Pain"}},
	{"epidural", []string{"EPA3 - Safe Conduct of Anaesthesia", "EPA5 - Managing Acute Pain"}},
	{"block", []string{"EPA5 - Managing Acute Pain"}},
	{"pain", []string{"EPA5 - Managing Acute Pain"}},
	{"trauma", []string{"EPA1 - Initial Assessment & Management", "EPA6 - Resuscitation & Transfer"}},
	{"resus", []string{"EPA6 - Resuscitation & Transfer"}},
	{"arrest", []string{"EPA6 - Resuscitation & Transfer"}},
	{"transfer", []string{"EPA6 - Resuscitation & Transfer"}},
	{"post-op", []string{"EPA4 - Peri-operative Care"}},
	{"recovery", []string{"EPA4 - Peri-operative Care"}},
	{"consent", []string{"EPA7 - General & Communication Skills"}},
	{"communication", []string{"EPA7 - General & Communication Skills"}},
}

// defaultTags is the per-kind fallback when no keyword matches.
var defaultTags = map[string][]string{
	record.AssessmentCase: {"EPA3 - Safe Conduct of Anaesthesia"},
	record.AssessmentCBD:  {"EPA7 - General & Communication Skills"},
	record.AssessmentCEX:  {"EPA1 - Initial Assessment & Management", "EPA7 - General & Communication Skills"},
	record.AssessmentDOPS: {"EPA3 - Safe Conduct of Anaesthesia"},
	record.AssessmentACAT: {"EPA1 - Initial Assessment & Management", "EPA6 - Resuscitation & Transfer"},
	record.AssessmentSLE:  {"EPA7 - General & Communication Skills"},
}

// SuggestTags proposes curriculum tags for the assessment from keywords
// in the procedure and notes text. Duplicates are removed preserving
// first occurrence; the kind's default set applies when nothing matches.
func SuggestTags(assessmentType, procedure, notes string) []string {
	haystack := strings.ToLower(procedure + " " + notes)

	var out []string
	seen := make(map[string]bool)
	for _, rule := range tagRules {
		if !strings.Contains(haystack, rule.keyword) {
			continue
		}
		for _, tag := range rule.tags {
			if !seen[tag] {
				seen[tag] = true
				out = append(out, tag)
			}
		}
	}
	if len(out) > 0 {
		return out
	}

	if defaults, ok := defaultTags[assessmentType]; ok {
		return append([]string(nil), defaults...)
	}
	return append([]string(nil), defaultTags[record.AssessmentCase]...)
}

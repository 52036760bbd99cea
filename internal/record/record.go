// Package record defines the case record model: one logged clinical case
// or workplace-based assessment, plus the fixed option catalogues the
// authoring form draws from.
package record

import "time"

// Case is one portfolio entry. All classification fields are optional
// strings; the form offers the catalogues below but free text is allowed
// as a fallback. Date is required and must be YYYY-MM-DD.
type Case struct {
	ID int64 `json:"id"`

	AssessmentType   string `json:"assessment_type"`
	Date             string `json:"date"`
	Time             string `json:"time"`
	AgeCategory      string `json:"age_category"`
	ASAGrade         string `json:"asa_grade"`
	Urgency          string `json:"urgency"`
	OperationType    string `json:"operation_type"`
	AnaestheticType  string `json:"anaesthetic_type"`
	SupervisionLevel string `json:"supervision_level"`
	CaseType         string `json:"case_type"`
	Procedure        string `json:"procedure"`
	Supervisor       string `json:"supervisor"`

	Notes      string `json:"notes"`
	Reflection string `json:"reflection"`
	Learning   string `json:"learning"`

	// Competency ratings, present only for the matching assessment type.
	// An absent map and a map of all-empty ratings render identically.
	CBDScores map[string]string `json:"cbd_scores,omitempty"`
	CEXScores map[string]string `json:"cex_scores,omitempty"`

	// Curriculum tags in selection order.
	LinkedTo []string `json:"linked_to"`

	Completed bool `json:"completed"`
	// Exported was added after the first release; documents written
	// before then lack the key and unmarshal to false.
	Exported bool `json:"exported"`
}

// DateLayout is the calendar date format used everywhere. Lexicographic
// order on these strings equals chronological order.
const DateLayout = "2006-01-02"

// NewID derives an identifier from the creation instant in epoch
// milliseconds. Uniqueness relies on millisecond granularity and is not
// otherwise enforced.
func NewID(now time.Time) int64 {
	return now.UnixMilli()
}

// Duplicate returns a copy of c with a fresh identifier, today's date,
// and both status flags cleared. Everything else carries over, including
// ratings and curriculum links.
func (c Case) Duplicate(now time.Time) Case {
	dup := c
	dup.ID = NewID(now)
	dup.Date = now.Format(DateLayout)
	dup.Completed = false
	dup.Exported = false
	if c.CBDScores != nil {
		dup.CBDScores = make(map[string]string, len(c.CBDScores))
		for k, v := range c.CBDScores {
			dup.CBDScores[k] = v
		}
	}
	if c.CEXScores != nil {
		dup.CEXScores = make(map[string]string, len(c.CEXScores))
		for k, v := range c.CEXScores {
			dup.CEXScores[k] = v
		}
	}
	if c.LinkedTo != nil {
		dup.LinkedTo = append([]string(nil), c.LinkedTo...)
	}
	return dup
}

// RatingAreas returns the competency area catalogue for c's assessment
// type, or nil when the type carries no rating map.
func (c Case) RatingAreas() []string {
	switch c.AssessmentType {
	case AssessmentCBD:
		return CBDAreas
	case AssessmentCEX:
		return CEXAreas
	}
	return nil
}

// Scores returns the rating map matching c's assessment type.
func (c Case) Scores() map[string]string {
	switch c.AssessmentType {
	case AssessmentCBD:
		return c.CBDScores
	case AssessmentCEX:
		return c.CEXScores
	}
	return nil
}

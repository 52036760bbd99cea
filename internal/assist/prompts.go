package assist

import (
	"fmt"

	"caselog/internal/record"
)

func orNotSpecified(s string) string {
	if s == "" {
		return "Not specified"
	}
	return s
}

// ReflectionPrompt embeds the case's classification fields and notes
// into a request for a portfolio reflection draft.
func ReflectionPrompt(c record.Case) string {
	return fmt.Sprintf(`I'm an anaesthetic CT1 trainee documenting a case for my portfolio. Can you help me write a reflection?

Case details:
- Type: %s
- Procedure: %s
- Patient: %s, ASA %s
- Notes: %s

Please write a concise clinical reflection (3-4 sentences) covering:
1. What happened and what I did
2. Key clinical decisions or considerations
3. Any challenges or interesting aspects

Keep it professional and suitable for a portfolio.`,
		orNotSpecified(c.CaseType),
		orNotSpecified(c.Procedure),
		orNotSpecified(c.AgeCategory),
		orNotSpecified(c.ASAGrade),
		orNotSpecified(c.Notes))
}

// LearningPrompt asks for learning points, including any reflection
// already written.
func LearningPrompt(c record.Case) string {
	return fmt.Sprintf(`I'm an anaesthetic CT1 trainee documenting a case for my portfolio. Can you help me write learning points?

Case details:
- Type: %s
- Procedure: %s
- Patient: %s, ASA %s
- Notes: %s
- Reflection: %s

Please write 2-3 specific learning points covering:
1. What I learned or consolidated
2. What I'd do differently or what to review
3. Practical takeaways for future cases

Keep it concise and actionable.`,
		orNotSpecified(c.CaseType),
		orNotSpecified(c.Procedure),
		orNotSpecified(c.AgeCategory),
		orNotSpecified(c.ASAGrade),
		orNotSpecified(c.Notes),
		orNotSpecified(c.Reflection))
}

// QuestionPrompt asks a free-form question about the case at the
// author's training level.
func QuestionPrompt(c record.Case, question string) string {
	return fmt.Sprintf(`I'm an anaesthetic CT1 trainee. Case: %s
Details: %s

Question: %s

Provide a helpful, concise answer for my training level.`,
		orNotSpecified(c.Procedure),
		orNotSpecified(c.Notes),
		question)
}

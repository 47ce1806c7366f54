package quizgen

import (
	"fmt"
	"strings"
)

const systemPrompt = `You are an examiner setting practice questions for a Nigerian university student.

Rules:
- Generate multiple-choice questions appropriate for the given course, subject, and level.
- Each question has exactly 4 options with exactly one correct answer.
- Distractors should reflect common student mistakes, not random values.
- Question text must be clear, self-contained, and in plain text. No LaTeX, no markup.
- Mix recall, comprehension, and application questions the way a real exam would.
- Where it fits the course, use Nigerian context and examples (institutions, law, geography, commerce).
- Do not number the questions inside the question text.`

// buildUserMessage constructs the generation request from the input.
func buildUserMessage(input GenerateInput) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Course: %s\n", input.Course)
	if input.Subject != nil {
		fmt.Fprintf(&b, "Subject: %s (%s)\n", input.Subject.Title, input.Subject.Code)
	}
	if input.Level != "" {
		fmt.Fprintf(&b, "Level: %s\n", input.Level)
	}
	fmt.Fprintf(&b, "Number of questions: %d\n", input.Count)

	return b.String()
}

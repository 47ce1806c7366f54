package catalog

// QuizQuestion is a single multiple-choice question.
// CorrectAnswer indexes into Options.
type QuizQuestion struct {
	ID            int
	Question      string
	Options       []string
	CorrectAnswer int
}

var quizBank = []QuizQuestion{
	{
		ID:            1,
		Question:      "Which of these is NOT a primitive data type in Java?",
		Options:       []string{"int", "float", "boolean", "String"},
		CorrectAnswer: 3,
	},
	{
		ID:            2,
		Question:      "What does SQL stand for?",
		Options:       []string{"Structured Query Language", "Strong Question Language", "Structured Question List", "Simple Query Logic"},
		CorrectAnswer: 0,
	},
	{
		ID:            3,
		Question:      "In the Nigerian Legal System, which court is the highest?",
		Options:       []string{"Court of Appeal", "Federal High Court", "Supreme Court", "Magistrate Court"},
		CorrectAnswer: 2,
	},
	{
		ID:            4,
		Question:      "Who is the current Vice Chancellor of UNILAG (Hypothetical)?",
		Options:       []string{"Prof. Ogundipe", "Prof. Salami", "Prof. Folasade Ogunsola", "Prof. Adebayo"},
		CorrectAnswer: 2,
	},
	{
		ID:            5,
		Question:      "What is the capital of Nigeria?",
		Options:       []string{"Lagos", "Kano", "Abuja", "Port Harcourt"},
		CorrectAnswer: 2,
	},
}

// Questions returns the fixed ordered quiz bank. The returned slice is
// a copy; progression state (index, score) is owned by the quiz view.
func Questions() []QuizQuestion {
	out := make([]QuizQuestion, len(quizBank))
	copy(out, quizBank)
	return out
}

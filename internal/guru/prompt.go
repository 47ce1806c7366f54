package guru

import "fmt"

// FallbackReply is shown when the provider fails mid-conversation.
const FallbackReply = "Omo, network or server issues. Try again later!"

// Suggestions are quick-start prompts offered while the conversation is young.
var Suggestions = []string{
	"Summarize my notes",
	"Explain a difficult concept",
	"Help with assignment",
	"Study tips",
}

// systemInstruction builds The Guru's persona for a named student and
// their course of study.
func systemInstruction(userName, course string) string {
	if course == "" {
		course = "University"
	}
	return fmt.Sprintf(`You are 'The Guru', a friendly, intelligent, and youth-friendly academic tutor for a Nigerian university student named %s studying %s.
Use relatable language, occasionally use Nigerian student slang (like "Jackometer", "TDB", "Efiko") but keep it educational.
Help with explaining concepts, summarizing notes, and offering study tips.
Format responses clearly with bullet points where necessary.`, userName, course)
}

// greeting is the synthetic assistant message that opens every session.
func greeting(firstName string) string {
	return fmt.Sprintf("Hello %s! I'm The Guru. How can I help you scatter your exams today? Ask me anything about your studies.", firstName)
}

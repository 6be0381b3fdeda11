package session

import (
	"fmt"
	"strings"

	"ustaad/prompt"
)

// buildUserPrompt builds the top-level explanation prompt.
func buildUserPrompt(language, code, contextInfo string, large bool) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Please explain this %s code:\n\n```%s\n%s\n```", language, language, code)
	b.WriteString(contextInfo)
	if large {
		b.WriteString(prompt.LargeCodeInstruction)
	}
	return b.String()
}

// buildFollowupPrompt builds a follow-up prompt from the conversation
// context: the original code, the original explanation, the windowed Q&A
// tail oldest-first, then the new question.
func buildFollowupPrompt(c *ConversationContext, question string) string {
	var b strings.Builder

	fmt.Fprintf(&b, "The user previously asked about this %s code:\n\n```%s\n%s\n```\n\n", c.Language, c.Language, c.Code)
	fmt.Fprintf(&b, "You explained:\n\n%s\n\n", c.Explanation)

	window := c.Window()
	if len(window) > 0 {
		b.WriteString("Earlier follow-up questions and your answers:\n\n")
		for _, f := range window {
			fmt.Fprintf(&b, "Q: %s\nA: %s\n\n", f.Question, f.Answer)
		}
	}

	fmt.Fprintf(&b, "Now answer this follow-up question in the same persona and style, specifically about the code above:\n\n%s", question)
	return b.String()
}

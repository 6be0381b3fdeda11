package session

import (
	"fmt"

	"ustaad/editor"
)

// Selection size thresholds, in characters and lines.
const (
	// MinSelectionLength is the character count below which the selection
	// alone is too little context for a meaningful explanation.
	MinSelectionLength = 20

	// ContextLines is how many document lines before and after the
	// selection are pulled in when expanding a tiny selection.
	ContextLines = 10

	// LargeSelectionThreshold is the line count past which the prompt asks
	// for a high-level summary instead of line-by-line detail.
	LargeSelectionThreshold = 100

	// VeryLargeSelectionThreshold is the line count past which the user
	// must confirm before any request is made.
	VeryLargeSelectionThreshold = 300
)

// explainInput is the prompt-ready form of a selection.
type explainInput struct {
	// code is the text sent to the model: the selection itself, or the
	// context-expanded range around a tiny selection.
	code string

	// contextInfo annotates an expanded prompt with the literal selected
	// substring so the model knows the actual focus. Empty when no
	// expansion happened.
	contextInfo string
}

// buildInput expands tiny selections with surrounding document lines.
// History always records the original selection, never the expanded code.
func buildInput(src editor.Source, sel editor.Selection) (explainInput, error) {
	if len(sel.Text) >= MinSelectionLength {
		return explainInput{code: sel.Text}, nil
	}

	start := sel.StartLine - ContextLines
	if start < 0 {
		start = 0
	}
	end := sel.EndLine + ContextLines
	if end > src.LineCount()-1 {
		end = src.LineCount() - 1
	}

	expanded, err := src.LineRange(start, end)
	if err != nil {
		return explainInput{}, fmt.Errorf("failed to read context range: %w", err)
	}

	return explainInput{
		code: expanded,
		contextInfo: fmt.Sprintf(
			"\n\nNote: The user selected %q. Focus on explaining this specific part.\n\nSelected: %q",
			sel.Text, sel.Text,
		),
	}, nil
}

package generation

import (
	"fmt"
	"strings"
)

// ParsedExercise is the displayable structure extracted from a backend
// response.
type ParsedExercise struct {
	PromptText string
	Feedback   string
	Hint       string
}

// Section labels accepted at the start of a line, English and German.
// The prompts ask for the English labels; the German variants show up
// anyway when the model answers fully in German.
var sectionLabels = map[string]string{
	"exercise": "exercise",
	"aufgabe":  "exercise",
	"feedback": "feedback",
	"hint":     "hint",
	"hinweis":  "hint",
}

// ParseExercise splits raw backend text into exercise, feedback and hint
// sections. It fails when no exercise section is present. Parsing is
// idempotent: the same input always yields the same result.
func ParseExercise(raw string) (ParsedExercise, error) {
	sections, err := splitSections(raw)
	if err != nil {
		return ParsedExercise{}, err
	}

	promptText, ok := sections["exercise"]
	if !ok || promptText == "" {
		return ParsedExercise{}, fmt.Errorf("%w: no exercise section found", ErrInvalidResponse)
	}

	return ParsedExercise{
		PromptText: promptText,
		Feedback:   sections["feedback"],
		Hint:       sections["hint"],
	}, nil
}

// ParseFeedback extracts feedback and hint sections from an evaluation
// response. Models often ignore the label instruction and answer
// free-form; in that case the whole text counts as feedback rather than
// throwing usable feedback away.
func ParseFeedback(raw string) (feedback, hint string, err error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return "", "", fmt.Errorf("%w: empty feedback response", ErrInvalidResponse)
	}

	sections, err := splitSections(raw)
	if err != nil {
		return "", "", err
	}

	if fb, ok := sections["feedback"]; ok && fb != "" {
		return fb, sections["hint"], nil
	}
	if _, ok := sections["feedback"]; ok {
		// Labeled but empty feedback; keep the hint if any.
		return "", sections["hint"], nil
	}
	return trimmed, sections["hint"], nil
}

// splitSections walks the text line by line, starting a new section at
// every recognized "Label:" line. Text before the first label is ignored.
func splitSections(raw string) (map[string]string, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, fmt.Errorf("%w: empty response", ErrInvalidResponse)
	}

	sections := make(map[string]string)
	current := ""
	var buf strings.Builder

	flush := func() {
		if current != "" {
			sections[current] = strings.TrimSpace(buf.String())
			buf.Reset()
		}
	}

	for _, line := range strings.Split(raw, "\n") {
		if key, rest, ok := matchLabel(line); ok {
			flush()
			current = key
			buf.WriteString(rest)
			buf.WriteString("\n")
			continue
		}
		if current != "" {
			buf.WriteString(line)
			buf.WriteString("\n")
		}
	}
	flush()

	return sections, nil
}

// matchLabel reports whether the line starts a new labeled section and
// returns the canonical section key plus the remainder of the line.
func matchLabel(line string) (key, rest string, ok bool) {
	trimmed := strings.TrimSpace(line)
	idx := strings.Index(trimmed, ":")
	if idx <= 0 {
		return "", "", false
	}
	label := strings.ToLower(strings.TrimSpace(trimmed[:idx]))
	canonical, known := sectionLabels[label]
	if !known {
		return "", "", false
	}
	return canonical, strings.TrimSpace(trimmed[idx+1:]), true
}

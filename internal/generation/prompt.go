package generation

import (
	"bytes"
	"fmt"
	"text/template"

	"german_coach/internal/model"
)

// systemPrompt is the coach persona sent with every request.
const systemPrompt = `You are a friendly, supportive German teacher helping a learner prepare
for Goethe B2 and C1 exams and build vocabulary from A1 to C1.

Your style:
- Mostly answer in German, but use short English explanations if helpful.
- Be encouraging and not too formal.
- Keep answers fairly short.
- Correct mistakes gently and clearly.`

// The builders instruct the model to answer in labeled sections so the
// parser has a stable format to work against.
var (
	vocabExerciseTmpl = template.Must(template.New("vocab_exercise").Parse(
		`Level: {{.Level}}
Type: {{.Type}}

Choose ONE useful German word or phrase for this level.
Then:
- show the word,
- briefly show its English meaning in brackets,
- give a short task in German, e.g. 'Übersetze...' or 'Bilde einen Satz...'.
Keep it compact.

Reply with exactly one labeled section that starts with "Exercise:" on its own line,
followed by the task.`))

	examExerciseTmpl = template.Must(template.New("exam_exercise").Parse(
		`Level: {{.Level}}
Type: {{.Type}}

Create ONE {{.Level}} task similar to the Goethe exam (writing or speaking).
Examples:
- Schreibe einen kurzen Kommentar zu einer Meinung.
- Schreibe eine formelle E-Mail.
- Halte einen kurzen Vortrag zu einem Thema.
Explain the task in German. Be clear but not too long.

Reply with exactly one labeled section that starts with "Exercise:" on its own line,
followed by the task.`))

	vocabFeedbackTmpl = template.Must(template.New("vocab_feedback").Parse(
		`Here is the exercise you gave the learner:
{{.Task}}

Here is their answer:
{{.Answer}}

Evaluate the answer (correct / partly correct / incorrect).
Correct mistakes. Give 1-2 natural example sentences in German.
Use very short English explanations only if really needed.

Reply with a section starting with "Feedback:" on its own line and, if a short study tip
helps, a final section starting with "Hint:" on its own line (the hint in English).`))

	examFeedbackTmpl = template.Must(template.New("exam_feedback").Parse(
		`Task:
{{.Task}}

Learner's answer:
{{.Answer}}

Give feedback in German (you may add very short English hints).
1) Comment on content and structure.
2) Correct important grammar and vocabulary mistakes.
3) Suggest 2-3 improved sentences or phrases.
4) Roughly say if this feels more like B1, B2, or C1.

Reply with a section starting with "Feedback:" on its own line and, if a short study tip
helps, a final section starting with "Hint:" on its own line (the hint in English).`))
)

type exercisePromptData struct {
	Level string
	Type  string
}

type feedbackPromptData struct {
	Task   string
	Answer string
}

// TypeLabel is the identifier embedded in prompts for an exercise type.
func TypeLabel(t model.ExerciseType) string {
	if t == model.ExerciseExamTask {
		return "ExamTask"
	}
	return "Vocabulary"
}

// BuildExercisePrompt constructs the request for a fresh exercise. It is
// a pure function: no side effects, deterministic output. The returned
// prompt embeds the level and exercise type identifiers.
func BuildExercisePrompt(level model.Level, exerciseType model.ExerciseType) (Prompt, error) {
	if !level.IsValid() {
		return Prompt{}, model.ErrInvalidLevel
	}

	tmpl := vocabExerciseTmpl
	instruction := fmt.Sprintf("Create one short vocabulary exercise for CEFR level %s.", level)
	if exerciseType == model.ExerciseExamTask {
		tmpl = examExerciseTmpl
		instruction = fmt.Sprintf("Create one Goethe-style %s exam task.", level)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, exercisePromptData{Level: string(level), Type: TypeLabel(exerciseType)}); err != nil {
		return Prompt{}, fmt.Errorf("executing exercise prompt template: %w", err)
	}

	return Prompt{
		System:      systemPrompt,
		Instruction: instruction,
		UserMessage: buf.String(),
	}, nil
}

// BuildFeedbackPrompt constructs the answer-evaluation request for an
// already presented exercise.
func BuildFeedbackPrompt(level model.Level, exerciseType model.ExerciseType, taskText, answer string) (Prompt, error) {
	if !level.IsValid() {
		return Prompt{}, model.ErrInvalidLevel
	}

	tmpl := vocabFeedbackTmpl
	instruction := fmt.Sprintf("The learner practices vocabulary at level %s.", level)
	if exerciseType == model.ExerciseExamTask {
		tmpl = examFeedbackTmpl
		instruction = fmt.Sprintf("You are evaluating a Goethe %s exam-style answer.", level)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, feedbackPromptData{Task: taskText, Answer: answer}); err != nil {
		return Prompt{}, fmt.Errorf("executing feedback prompt template: %w", err)
	}

	return Prompt{
		System:      systemPrompt,
		Instruction: instruction,
		UserMessage: buf.String(),
	}, nil
}

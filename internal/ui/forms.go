package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"coursedeck/internal/models"
)

// authForm is a vertical stack of labelled text inputs with tab-cycled
// focus, shared by the login and register screens.
type authForm struct {
	labels []string
	inputs []textinput.Model
	focus  int
}

func newInput(placeholder string, secret bool) textinput.Model {
	in := textinput.New()
	in.Placeholder = placeholder
	in.CharLimit = 128
	in.Width = 40
	if secret {
		in.EchoMode = textinput.EchoPassword
		in.EchoCharacter = '•'
	}
	return in
}

func newLoginForm() authForm {
	f := authForm{
		labels: []string{"Email", "Password"},
		inputs: []textinput.Model{
			newInput("you@example.com", false),
			newInput("password", true),
		},
	}
	f.inputs[0].Focus()
	return f
}

func newRegisterForm() authForm {
	f := authForm{
		labels: []string{"Username", "Email", "Password"},
		inputs: []textinput.Model{
			newInput("username", false),
			newInput("you@example.com", false),
			newInput("password", true),
		},
	}
	f.inputs[0].Focus()
	return f
}

// Advance moves focus to the next input, wrapping to the first.
func (f *authForm) Advance() {
	f.inputs[f.focus].Blur()
	f.focus = (f.focus + 1) % len(f.inputs)
	f.inputs[f.focus].Focus()
}

// Update forwards a message to the focused input.
func (f *authForm) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
	return cmd
}

// Values returns the trimmed contents of every input in order.
func (f *authForm) Values() []string {
	out := make([]string, len(f.inputs))
	for i, in := range f.inputs {
		out[i] = strings.TrimSpace(in.Value())
	}
	return out
}

// Filled reports whether every input has content.
func (f *authForm) Filled() bool {
	for _, v := range f.Values() {
		if v == "" {
			return false
		}
	}
	return true
}

// Reset clears every input and refocuses the first.
func (f *authForm) Reset() {
	for i := range f.inputs {
		f.inputs[i].SetValue("")
		f.inputs[i].Blur()
	}
	f.focus = 0
	f.inputs[0].Focus()
}

func (f *authForm) View() string {
	var b strings.Builder
	for i, in := range f.inputs {
		label := f.labels[i]
		if i == f.focus {
			label = styles.ok.Render(label)
		} else {
			label = styles.help.Render(label)
		}
		fmt.Fprintf(&b, "%s\n%s\n\n", label, in.View())
	}
	return b.String()
}

// quizStep is one single-choice question in the questionnaire.
type quizStep struct {
	prompt   string
	options  []string
	cursor   int
	selected int
}

// questionnaireForm walks the learner through the four profile
// questions one step at a time. A step cannot be passed without a
// selection, and esc returns to the previous step with its answer
// intact.
type questionnaireForm struct {
	steps []quizStep
	step  int
}

func newQuestionnaireForm() questionnaireForm {
	mk := func(prompt string, options []string) quizStep {
		return quizStep{prompt: prompt, options: options, selected: -1}
	}
	return questionnaireForm{
		steps: []quizStep{
			mk("What is your education level?", models.EducationLevels()),
			mk("Which domain interests you?", models.Domains()),
			mk("How much do you already know?", models.KnowledgeLevels()),
			mk("How do you learn best?", models.LearningStyles()),
		},
	}
}

func (q *questionnaireForm) current() *quizStep { return &q.steps[q.step] }

func (q *questionnaireForm) Up() {
	s := q.current()
	if s.cursor > 0 {
		s.cursor--
	}
}

func (q *questionnaireForm) Down() {
	s := q.current()
	if s.cursor < len(s.options)-1 {
		s.cursor++
	}
}

// Select records the highlighted option and advances. It returns true
// once the final step has been answered.
func (q *questionnaireForm) Select() bool {
	s := q.current()
	s.selected = s.cursor
	if q.step == len(q.steps)-1 {
		return true
	}
	q.step++
	return false
}

// Back returns to the previous step, or reports false from the first.
func (q *questionnaireForm) Back() bool {
	if q.step == 0 {
		return false
	}
	q.step--
	return true
}

// Answers assembles the collected selections.
func (q *questionnaireForm) Answers() models.QuestionnaireAnswers {
	answer := func(i int) string {
		if q.steps[i].selected < 0 {
			return ""
		}
		return q.steps[i].options[q.steps[i].selected]
	}
	return models.QuestionnaireAnswers{
		EducationLevel: answer(0),
		Domain:         answer(1),
		KnowledgeLevel: answer(2),
		LearningStyle:  answer(3),
	}
}

// Reset clears every selection and rewinds to the first step.
func (q *questionnaireForm) Reset() {
	for i := range q.steps {
		q.steps[i].cursor = 0
		q.steps[i].selected = -1
	}
	q.step = 0
}

// visibleOptions caps how many options render at once; the domain list
// is long, so the window follows the cursor.
const visibleOptions = 9

func (q *questionnaireForm) View() string {
	s := q.current()

	var b strings.Builder
	fmt.Fprintf(&b, "%s\n", styles.title.Render(fmt.Sprintf("Step %d of %d", q.step+1, len(q.steps))))
	fmt.Fprintf(&b, "%s\n\n", s.prompt)

	start := 0
	if s.cursor >= visibleOptions {
		start = s.cursor - visibleOptions + 1
	}
	end := min(start+visibleOptions, len(s.options))

	for i := start; i < end; i++ {
		marker := "  "
		line := s.options[i]
		if i == s.cursor {
			marker = styles.ok.Render("> ")
		}
		if i == s.selected {
			line = styles.ok.Render(line)
		}
		fmt.Fprintf(&b, "%s%s\n", marker, line)
	}
	if end < len(s.options) {
		fmt.Fprintf(&b, "%s\n", styles.help.Render(fmt.Sprintf("… %d more", len(s.options)-end)))
	}

	return b.String()
}

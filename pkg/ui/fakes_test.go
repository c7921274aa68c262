package ui

import (
	"testing"

	"supercli/pkg/prompt"
)

// answer scripts one prompt. before runs while the prompt is "open".
// enter submits a select without moving the cursor.
type answer struct {
	index   int
	enter   bool
	indices []int
	text    string
	before  func()
}

type fakePrompter struct {
	t       *testing.T
	answers []answer
	labels  []string
	choices map[string][]string
}

func newFakePrompter(t *testing.T, answers ...answer) *fakePrompter {
	return &fakePrompter{t: t, answers: answers, choices: map[string][]string{}}
}

func (f *fakePrompter) next(label string) (answer, error) {
	f.labels = append(f.labels, label)
	if len(f.answers) == 0 {
		return answer{}, prompt.ErrAborted
	}
	a := f.answers[0]
	f.answers = f.answers[1:]
	if a.before != nil {
		a.before()
	}
	return a, nil
}

func (f *fakePrompter) Select(label string, choices []string, opts prompt.SelectOptions) (int, error) {
	if len(choices) == 0 {
		return 0, prompt.ErrNoChoices
	}
	f.choices[label] = choices
	a, err := f.next(label)
	if err != nil {
		return 0, err
	}
	if a.enter {
		return opts.Default, nil
	}
	if a.index >= len(choices) {
		f.t.Fatalf("answer %d out of range for %q", a.index, label)
	}
	return a.index, nil
}

func (f *fakePrompter) Input(label string, opts prompt.InputOptions) (string, error) {
	a, err := f.next(label)
	if err != nil {
		return "", err
	}
	value := a.text
	if value == "" {
		value = opts.Default
	}
	if opts.Validate != nil {
		if err := opts.Validate(value); err != nil {
			f.t.Fatalf("scripted answer %q for %q rejected: %v", value, label, err)
		}
	}
	return value, nil
}

func (f *fakePrompter) Checkbox(label string, choices []string) ([]int, error) {
	if len(choices) == 0 {
		return nil, prompt.ErrNoChoices
	}
	f.choices[label] = choices
	a, err := f.next(label)
	if err != nil {
		return nil, err
	}
	return a.indices, nil
}

func (f *fakePrompter) Editor(label string, opts prompt.InputOptions) (string, error) {
	a, err := f.next(label)
	if err != nil {
		return "", err
	}
	value := a.text
	if value == "" {
		value = opts.Default
	}
	if opts.Validate != nil {
		if err := opts.Validate(value); err != nil {
			f.t.Fatalf("scripted answer %q for %q rejected: %v", value, label, err)
		}
	}
	return value, nil
}

type fakeProgress struct {
	started   []string
	succeeded []string
	failed    []string
}

func (p *fakeProgress) Start(msg string) prompt.Spinner {
	p.started = append(p.started, msg)
	return fakeSpinner{p}
}

type fakeSpinner struct{ p *fakeProgress }

func (s fakeSpinner) Success(msg string) { s.p.succeeded = append(s.p.succeeded, msg) }
func (s fakeSpinner) Error(msg string)   { s.p.failed = append(s.p.failed, msg) }

type fakeRunner struct {
	runs int
	err  error
}

func (r *fakeRunner) Run() error {
	r.runs++
	return r.err
}

func pick(i int) answer      { return answer{index: i} }
func enter() answer          { return answer{enter: true} }
func check(is ...int) answer { return answer{indices: is} }
func typed(s string) answer  { return answer{text: s} }

package content

import (
	"context"
	"errors"
)

// TextGenerator is the injected generation capability. Transport-level
// failures are returned as-is; the reviser never reinterprets them.
type TextGenerator interface {
	GenerateText(ctx context.Context, model, system, prompt string) (string, error)
}

// DefaultRetryBudget caps self-correction attempts per script.
const DefaultRetryBudget = 3

// Quality summarizes the gate outcome a script shipped with.
type Quality struct {
	ErrorCount   int `json:"errorCount"`
	WarningCount int `json:"warningCount"`
	Attempts     int `json:"attempts"`
}

// Script is one produced piece of content tied to one idea. FullText is the
// authoritative document; Narration and Quality are always derived from the
// latest attempt.
type Script struct {
	IdeaTitle string  `json:"ideaTitle"`
	FullText  string  `json:"fullScript"`
	Narration string  `json:"narration"`
	Quality   Quality `json:"qualityScore"`
}

type reviseState int

const (
	stateGenerating reviseState = iota
	stateValidating
	stateRetrying
	stateAccepted
	stateExhausted
)

// Reviser generates a script and re-generates it while the quality gate
// reports errors, feeding the findings back into the next prompt. Exhausting
// the budget is a normal outcome: the last text is kept and its residual
// counts are recorded in Quality.
type Reviser struct {
	gen    TextGenerator
	model  string
	system string
	budget int
}

// NewReviser builds a reviser around the given generator. A budget of zero
// or less selects DefaultRetryBudget.
func NewReviser(gen TextGenerator, model, system string, budget int) *Reviser {
	if budget <= 0 {
		budget = DefaultRetryBudget
	}
	return &Reviser{gen: gen, model: model, system: system, budget: budget}
}

// Revise runs the state machine
// Generating -> Validating -> {Accepted | Retrying -> Generating | Exhausted}
// for one idea. The returned error is only ever a generator failure.
func (r *Reviser) Revise(ctx context.Context, ideaTitle, prompt string) (Script, error) {
	if r.gen == nil {
		return Script{}, errors.New("text generator is required")
	}

	state := stateGenerating
	attempts := 0
	var fullText, narration string
	var result Result

	for {
		switch state {
		case stateGenerating:
			text, err := r.gen.GenerateText(ctx, r.model, r.system, prompt)
			if err != nil {
				return Script{}, err
			}
			attempts++
			fullText = text
			narration = ExtractNarration(text)
			state = stateValidating

		case stateValidating:
			result = CheckScript(fullText, narration)
			switch {
			case result.ErrorCount == 0:
				state = stateAccepted
			case attempts < r.budget:
				state = stateRetrying
			default:
				state = stateExhausted
			}

		case stateRetrying:
			prompt = BuildFixPrompt(result.Errors, fullText)
			state = stateGenerating

		case stateAccepted, stateExhausted:
			return Script{
				IdeaTitle: ideaTitle,
				FullText:  fullText,
				Narration: narration,
				Quality: Quality{
					ErrorCount:   result.ErrorCount,
					WarningCount: result.WarningCount,
					Attempts:     attempts,
				},
			}, nil
		}
	}
}

// ItemError records a generator failure for one batch item.
type ItemError struct {
	Index     int
	IdeaTitle string
	Err       error
}

func (e ItemError) Error() string { return e.IdeaTitle + ": " + e.Err.Error() }
func (e ItemError) Unwrap() error { return e.Err }

// ReviseAll revises each idea in order. One item's failure does not stop the
// batch; failures come back alongside the scripts that did succeed.
func (r *Reviser) ReviseAll(ctx context.Context, ideas []Idea, buildPrompt func(Idea) string) ([]Script, []ItemError) {
	var scripts []Script
	var failed []ItemError
	for i, idea := range ideas {
		script, err := r.Revise(ctx, idea.Title, buildPrompt(idea))
		if err != nil {
			failed = append(failed, ItemError{Index: i, IdeaTitle: idea.Title, Err: err})
			continue
		}
		scripts = append(scripts, script)
	}
	return scripts, failed
}

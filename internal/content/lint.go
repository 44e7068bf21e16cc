package content

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"
)

// Severity classifies a finding. Errors block finalization in the revise
// loop; warnings never block anything.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
)

// Finding kinds.
const (
	KindBoldUsage         = "bold_usage"
	KindAIPattern         = "ai_pattern"
	KindNarrationLength   = "narration_length"
	KindForbiddenPhrase   = "forbidden_phrase"
	KindToneInconsistency = "tone_inconsistency"
)

// Text-body labels recorded as a finding's context.
const (
	ContextScript    = "台本"
	ContextNarration = "ナレーション"
)

// Finding is one quality-gate result.
type Finding struct {
	Kind       string   `json:"type"`
	Severity   Severity `json:"severity"`
	Context    string   `json:"context"`
	Message    string   `json:"message"`
	Suggestion string   `json:"suggestion"`
}

// Result is a full quality-gate run over one script.
type Result struct {
	Errors       []Finding `json:"errors"`
	Warnings     []Finding `json:"warnings"`
	ErrorCount   int       `json:"errorCount"`
	WarningCount int       `json:"warningCount"`
	Passed       bool      `json:"passed"`
}

// Stock transitional phrasings that generative models overuse.
var aiPatterns = []*regexp.Regexp{
	regexp.MustCompile("〜することで"),
	regexp.MustCompile("〜することができます"),
	regexp.MustCompile("〜してみましょう"),
	regexp.MustCompile("重要なポイント"),
	regexp.MustCompile("効果的な"),
	regexp.MustCompile("最適な"),
	regexp.MustCompile("ぜひ.*してみてください"),
	regexp.MustCompile("いかがでしたか"),
}

// Self-referential and product-name terms that must never survive into
// published content.
var forbiddenPhrases = []string{
	"AI",
	"Claude",
	"生成しました",
	"自動生成",
	"プロンプト",
	"GPT",
	"ChatGPT",
}

var (
	boldPattern     = regexp.MustCompile(`\*\*(.*?)\*\*`)
	desuMasuPattern = regexp.MustCompile("です[。、]|ます[。、]")
	daDearuPattern  = regexp.MustCompile("だ[。、]|である[。、]")
)

// Narration length bounds (runes).
const (
	narrationMinLen = 100
	narrationMaxLen = 2000
)

// CheckScript runs the fixed quality rule battery over a script and its
// narration. The rule tables are static; every call returns a fresh Result,
// so concurrent callers never share state.
func CheckScript(scriptText, narration string) Result {
	var r Result

	r.checkBoldUsage(scriptText, ContextScript)
	r.checkBoldUsage(narration, ContextNarration)
	r.checkAIPatterns(scriptText, ContextScript)
	r.checkAIPatterns(narration, ContextNarration)
	r.checkNarrationLength(narration)
	r.checkForbiddenPhrases(scriptText, ContextScript)
	r.checkForbiddenPhrases(narration, ContextNarration)
	r.checkToneConsistency(narration)

	r.ErrorCount = len(r.Errors)
	r.WarningCount = len(r.Warnings)
	r.Passed = r.ErrorCount == 0
	return r
}

func (r *Result) checkBoldUsage(text, context string) {
	if !strings.Contains(text, "**") {
		return
	}
	for _, m := range boldPattern.FindAllStringSubmatch(text, -1) {
		r.Errors = append(r.Errors, Finding{
			Kind:       KindBoldUsage,
			Severity:   SeverityError,
			Context:    context,
			Message:    fmt.Sprintf("太字が使用されています: %s", m[1]),
			Suggestion: "太字を削除してください（AIっぽさを避けるため）",
		})
	}
}

func (r *Result) checkAIPatterns(text, context string) {
	for _, pattern := range aiPatterns {
		for _, m := range pattern.FindAllString(text, -1) {
			r.Warnings = append(r.Warnings, Finding{
				Kind:       KindAIPattern,
				Severity:   SeverityWarning,
				Context:    context,
				Message:    fmt.Sprintf("AIっぽい表現が含まれています: %s", m),
				Suggestion: "より自然な口語表現に変更を検討してください",
			})
		}
	}
}

func (r *Result) checkNarrationLength(narration string) {
	length := utf8.RuneCountInString(strings.TrimSpace(narration))
	switch {
	case length < narrationMinLen:
		r.Warnings = append(r.Warnings, Finding{
			Kind:       KindNarrationLength,
			Severity:   SeverityWarning,
			Context:    ContextNarration,
			Message:    fmt.Sprintf("ナレーションが短すぎます（%d文字）", length),
			Suggestion: "最低100文字以上のナレーションを推奨します",
		})
	case length > narrationMaxLen:
		r.Warnings = append(r.Warnings, Finding{
			Kind:       KindNarrationLength,
			Severity:   SeverityWarning,
			Context:    ContextNarration,
			Message:    fmt.Sprintf("ナレーションが長すぎます（%d文字）", length),
			Suggestion: "2000文字以下に収めることを推奨します（音声時間の制約）",
		})
	}
}

func (r *Result) checkForbiddenPhrases(text, context string) {
	for _, phrase := range forbiddenPhrases {
		if strings.Contains(text, phrase) {
			r.Errors = append(r.Errors, Finding{
				Kind:       KindForbiddenPhrase,
				Severity:   SeverityError,
				Context:    context,
				Message:    fmt.Sprintf("禁止フレーズが含まれています: %s", phrase),
				Suggestion: "メタ表現（AI、生成等）は削除してください",
			})
		}
	}
}

func (r *Result) checkToneConsistency(narration string) {
	desuMasu := len(desuMasuPattern.FindAllString(narration, -1))
	daDearu := len(daDearuPattern.FindAllString(narration, -1))
	if desuMasu > 0 && daDearu > 0 {
		r.Warnings = append(r.Warnings, Finding{
			Kind:       KindToneInconsistency,
			Severity:   SeverityWarning,
			Context:    ContextNarration,
			Message:    fmt.Sprintf("「です・ます」調と「だ・である」調が混在しています（です・ます: %d箇所、だ・である: %d箇所）", desuMasu, daDearu),
			Suggestion: "統一された口調に修正してください",
		})
	}
}

// Format renders the result as an operator-readable summary.
func (r Result) Format() string {
	var b strings.Builder
	rule := strings.Repeat("=", 60)
	b.WriteString(rule + "\n")
	b.WriteString("台本品質チェック結果\n")
	b.WriteString(rule + "\n\n")

	if len(r.Errors) > 0 {
		fmt.Fprintf(&b, "エラー: %d件\n\n", r.ErrorCount)
		for i, f := range r.Errors {
			fmt.Fprintf(&b, "%d. [%s] %s\n   %s\n\n", i+1, f.Context, f.Message, f.Suggestion)
		}
	}
	if len(r.Warnings) > 0 {
		fmt.Fprintf(&b, "警告: %d件\n\n", r.WarningCount)
		for i, f := range r.Warnings {
			fmt.Fprintf(&b, "%d. [%s] %s\n   %s\n\n", i+1, f.Context, f.Message, f.Suggestion)
		}
	}

	b.WriteString(rule + "\n")
	if r.Passed {
		b.WriteString("全ての品質基準をクリアしました\n")
	} else {
		fmt.Fprintf(&b, "%d件のエラーがあります。修正してください。\n", r.ErrorCount)
	}
	b.WriteString(rule)
	return b.String()
}

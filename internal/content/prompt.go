package content

import (
	"fmt"
	"strings"
)

const ideaSystemPrompt = "あなたはSNSショート動画の企画を量産するプロの放送作家です。" +
	"ターゲットの悩みに刺さるフックを最優先し、メタ的な表現（AI、生成など）は一切使いません。"

const scriptSystemPrompt = "あなたはSNSショート動画の台本を書くプロの構成作家です。" +
	"視聴維持率を最優先し、口語で自然な日本語を書きます。" +
	"太字などの装飾は使わず、メタ的な表現（AI、生成など）は一切使いません。"

// fixErrorLimit caps how many findings are embedded into a corrective
// prompt.
const fixErrorLimit = 3

// BuildIdeaPrompts returns the system and user prompt for one 20-idea
// generation round. startNo continues numbering across rounds.
func BuildIdeaPrompts(persona string, pains []string, startNo int) (string, string) {
	var b strings.Builder
	fmt.Fprintf(&b, "以下のペルソナに向けたSNSショート動画の企画を20本考えてください（No.%d〜No.%d）。\n\n", startNo, startNo+19)
	b.WriteString("【ペルソナ】\n")
	b.WriteString(strings.TrimSpace(persona))
	b.WriteString("\n\n【ターゲットの悩み】\n")
	for i, pain := range pains {
		fmt.Fprintf(&b, "%d. %s\n", i+1, pain)
	}
	b.WriteString("\n以下のマークダウンテーブル形式で出力してください。\n\n")
	b.WriteString("| No | 企画タイトル（フック） | 狙い・内容の要約 |\n")
	b.WriteString("|---|---|---|\n")
	b.WriteString("\n恐怖・メリット・権威・共感・好奇心・緊急性など、訴求タイプが偏らないようにしてください。")
	return ideaSystemPrompt, b.String()
}

// BuildScriptPrompts returns the system and user prompt for generating one
// script from an idea.
func BuildScriptPrompts(idea Idea, persona string, pains []string) (string, string) {
	var b strings.Builder
	b.WriteString("以下の企画からSNSショート動画の台本を作成してください。\n\n")
	fmt.Fprintf(&b, "【企画タイトル】\n%s\n\n", idea.Title)
	if idea.Summary != "" {
		fmt.Fprintf(&b, "【狙い・内容の要約】\n%s\n\n", idea.Summary)
	}
	b.WriteString("【ペルソナ】\n")
	b.WriteString(strings.TrimSpace(persona))
	b.WriteString("\n\n【ターゲットの悩み】\n")
	for i, pain := range pains {
		fmt.Fprintf(&b, "%d. %s\n", i+1, pain)
	}
	b.WriteString("\n出力フォーマット:\n")
	b.WriteString("## Midjourneyプロンプト（モデル人物）\n")
	b.WriteString("### 日本語訳\n```\n（日本語の画像説明）\n```\n")
	b.WriteString("### Midjourneyプロンプト（英語）\n```\n(English prompt)\n```\n\n")
	b.WriteString("## 台本表\n")
	b.WriteString("| スライドNo | 秒数(目安) | ナレーション/テロップ（CapCut用） | 動画生成指示（日本語） | 動画生成指示（英語・Kling AI用） |\n")
	b.WriteString("|---|---|---|---|---|\n\n")
	b.WriteString("## ナレーション全文\n```\n（ナレーション全文）\n```\n\n")
	b.WriteString("各スライドのナレーションは30〜49文字、全体で24〜42秒に収めてください。口調は「です・ます」調で統一してください。")
	return scriptSystemPrompt, b.String()
}

// BuildFixPrompt builds the corrective prompt for a retry: the first few
// gate errors plus the complete previous output, so the model can fix in
// place instead of starting over.
func BuildFixPrompt(findings []Finding, priorText string) string {
	if len(findings) > fixErrorLimit {
		findings = findings[:fixErrorLimit]
	}
	var b strings.Builder
	b.WriteString("以下の台本に品質エラーがあります。修正してください。\n\n")
	b.WriteString("【エラー内容】\n")
	for _, f := range findings {
		fmt.Fprintf(&b, "- [%s] %s\n", f.Context, f.Message)
	}
	b.WriteString("\n【元の台本】\n")
	b.WriteString(priorText)
	b.WriteString("\n\n【修正後の台本】\n")
	b.WriteString("※元のフォーマット（Midjourneyプロンプト、台本表、ナレーション全文）を維持してください。")
	return b.String()
}

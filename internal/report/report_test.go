package report

import (
	"strings"
	"testing"

	"snsforge/internal/content"
)

func TestRender(t *testing.T) {
	narration := strings.Repeat("これは落ち着いたナレーションです。", 15)
	result := content.BatchResult{
		Ideas: []content.Idea{
			{No: "1", Title: "貯金が増えない人の習慣", Summary: "固定費の見直し", AppealType: "恐怖訴求"},
		},
		Scripts: []content.Script{
			{
				IdeaTitle: "貯金が増えない人の習慣",
				FullText:  "## ナレーション全文\n```\n" + narration + "\n```\n",
				Narration: narration,
				Quality:   content.Quality{Attempts: 2, WarningCount: 1},
			},
		},
	}

	out, err := Render("savings", result)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	html := string(out)

	if !strings.Contains(html, "台本レビュー: savings") {
		t.Fatalf("expected project heading:\n%s", html)
	}
	if !strings.Contains(html, "貯金が増えない人の習慣") {
		t.Fatalf("expected idea title in output")
	}
	if !strings.Contains(html, "恐怖訴求") {
		t.Fatalf("expected appeal type in idea table")
	}
	if !strings.Contains(html, "試行回数: 2") {
		t.Fatalf("expected attempt count in output")
	}
	// goldmark turns the markdown heading into HTML.
	if !strings.Contains(html, "<h2>ナレーション全文</h2>") {
		t.Fatalf("expected converted markdown body:\n%s", html)
	}
}

func TestRenderEscapesScriptText(t *testing.T) {
	result := content.BatchResult{
		Scripts: []content.Script{
			{IdeaTitle: "<script>alert(1)</script>", FullText: "本文", Narration: "本文"},
		},
	}
	out, err := Render("p", result)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.Contains(string(out), "<script>alert(1)</script>") {
		t.Fatalf("expected idea title to be escaped")
	}
}

func TestRenderEmptyRun(t *testing.T) {
	out, err := Render("empty", content.BatchResult{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(string(out), "企画一覧（0本）") {
		t.Fatalf("expected empty idea table heading:\n%s", out)
	}
}

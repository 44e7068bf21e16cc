package content

import "testing"

const sampleScript = "## Midjourneyプロンプト（モデル人物）\n" +
	"### 日本語訳\n```\n30代の女性がデスクで悩んでいる\n```\n" +
	"### Midjourneyプロンプト（英語）\n```\na woman in her 30s worrying at a desk --ar 9:16\n```\n\n" +
	"## 台本表\n" +
	"| スライドNo | 秒数(目安) | ナレーション/テロップ（CapCut用） | 動画生成指示（日本語） | 動画生成指示（英語・Kling AI用） |\n" +
	"|---|---|---|---|---|\n" +
	"| 1 | 6-7秒 | 貯金が増えない人には共通のNG習慣があります | 悩む女性のアップ | close-up of a worried woman |\n" +
	"| 2 | 6-7秒 | それは毎月の固定費を見直していないことです | 請求書を見る手元 | hands holding bills |\n\n" +
	"## ナレーション全文\n```\n貯金が増えない人には共通のNG習慣があります。それは毎月の固定費を見直していないことです。\n```\n"

func TestExtractNarrationFromSection(t *testing.T) {
	got := ExtractNarration(sampleScript)
	want := "貯金が増えない人には共通のNG習慣があります。それは毎月の固定費を見直していないことです。"
	if got != want {
		t.Fatalf("unexpected narration: %q", got)
	}
}

func TestExtractNarrationTableFallback(t *testing.T) {
	text := "| 1 | 最初のナレーション | 指示 |\n" +
		"|---|---|---|\n" +
		"| 2 | 次のナレーション | 指示 |\n"
	got := ExtractNarration(text)
	// Second cell of each data row, joined with single spaces. The separator
	// row is skipped.
	want := "最初のナレーション 次のナレーション"
	if got != want {
		t.Fatalf("unexpected fallback narration: %q", got)
	}
}

func TestExtractNarrationPrefersSection(t *testing.T) {
	text := "| 1 | テーブル側 | x |\n\n# ナレーション全文\n```\nセクション側\n```\n"
	if got := ExtractNarration(text); got != "セクション側" {
		t.Fatalf("expected section strategy to win, got %q", got)
	}
}

func TestExtractNarrationBothMiss(t *testing.T) {
	if got := ExtractNarration("ただの文章です。"); got != "" {
		t.Fatalf("expected empty narration, got %q", got)
	}
}

func TestExtractNarrationUnclosedFence(t *testing.T) {
	text := "## ナレーション全文\n```\n途中で切れた出力"
	if got := ExtractNarration(text); got != "途中で切れた出力" {
		t.Fatalf("unexpected narration from unclosed fence: %q", got)
	}
}

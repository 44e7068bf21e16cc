package content

import "testing"

func TestParseIdeasTable(t *testing.T) {
	text := "| 1 | Title A | Summary A |\n| 2 | Title B | Summary B |"
	ideas := ParseIdeas(text)
	if len(ideas) != 2 {
		t.Fatalf("expected 2 ideas, got %d", len(ideas))
	}
	if ideas[0].No != "1" || ideas[1].No != "2" {
		t.Fatalf("expected sequence 1,2, got %q,%q", ideas[0].No, ideas[1].No)
	}
	if ideas[0].Title != "Title A" || ideas[0].Summary != "Summary A" {
		t.Fatalf("unexpected first idea: %+v", ideas[0])
	}
	if ideas[0].RawLine == "" {
		t.Fatalf("expected raw line to be kept")
	}
}

func TestParseIdeasSkipsHeaderAndSeparator(t *testing.T) {
	text := "| No | 企画タイトル（フック） | 狙い・内容の要約 |\n" +
		"|---|---|---|\n" +
		"| 1 | 貯金が増えない人のNG習慣 | 失敗例から入る |\n"
	ideas := ParseIdeas(text)
	if len(ideas) != 1 {
		t.Fatalf("expected 1 idea, got %d", len(ideas))
	}
	if ideas[0].Title != "貯金が増えない人のNG習慣" {
		t.Fatalf("unexpected title: %q", ideas[0].Title)
	}
}

func TestParseIdeasExcludesExampleRows(t *testing.T) {
	text := "| 1 | （例：こういうタイトル） | サンプル |\n| 2 | 本物のタイトル | 要約 |"
	ideas := ParseIdeas(text)
	if len(ideas) != 1 {
		t.Fatalf("expected example row to be excluded, got %d ideas", len(ideas))
	}
	if ideas[0].No != "2" {
		t.Fatalf("expected remaining idea 2, got %q", ideas[0].No)
	}
}

func TestParseIdeasNumberedListFallback(t *testing.T) {
	text := "ここからが企画です。\n1. 最初のタイトル\n2) 二番目のタイトル\nただの文章\n"
	ideas := ParseIdeas(text)
	if len(ideas) != 2 {
		t.Fatalf("expected 2 ideas from fallback, got %d", len(ideas))
	}
	if ideas[0].Title != "最初のタイトル" || ideas[1].Title != "二番目のタイトル" {
		t.Fatalf("unexpected titles: %q, %q", ideas[0].Title, ideas[1].Title)
	}
	if ideas[0].Summary != "" {
		t.Fatalf("fallback ideas should have empty summaries, got %q", ideas[0].Summary)
	}
}

func TestParseIdeasFallbackOnlyWhenTableEmpty(t *testing.T) {
	text := "| 1 | テーブルの企画 | 要約 |\n2. リストの企画\n"
	ideas := ParseIdeas(text)
	if len(ideas) != 1 {
		t.Fatalf("expected table strategy only, got %d ideas", len(ideas))
	}
	if ideas[0].Title != "テーブルの企画" {
		t.Fatalf("unexpected title: %q", ideas[0].Title)
	}
}

func TestParseIdeasUnrecognizableText(t *testing.T) {
	ideas := ParseIdeas("何の構造もないテキスト。\n\nそれだけ。")
	if len(ideas) != 0 {
		t.Fatalf("expected no ideas, got %d", len(ideas))
	}
}

func TestParseIdeasEmptyInput(t *testing.T) {
	if ideas := ParseIdeas(""); len(ideas) != 0 {
		t.Fatalf("expected no ideas for empty input, got %d", len(ideas))
	}
}

func TestRenumberIdeas(t *testing.T) {
	ideas := []Idea{{No: "1"}, {No: "2"}, {No: "3"}}
	RenumberIdeas(ideas, 21)
	if ideas[0].No != "21" || ideas[2].No != "23" {
		t.Fatalf("unexpected renumbering: %+v", ideas)
	}
}

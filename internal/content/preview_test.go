package content

import (
	"math"
	"strings"
	"testing"
)

func TestPreviewScriptTooShort(t *testing.T) {
	narration := strings.Repeat("あ", 150)
	p := PreviewScript(narration, nil)
	if p.NarrationLength != 150 {
		t.Fatalf("expected 150 chars, got %d", p.NarrationLength)
	}
	if math.Abs(p.EstimatedDuration-23.1) > 0.05 {
		t.Fatalf("expected ~23.1s, got %.2f", p.EstimatedDuration)
	}
	if p.TimeWarning == "" {
		t.Fatalf("expected too-short timing warning")
	}
	if !strings.Contains(p.TimeWarning, "短すぎる") {
		t.Fatalf("unexpected warning: %q", p.TimeWarning)
	}
	if !p.HasIssues {
		t.Fatalf("expected HasIssues")
	}
}

func TestPreviewScriptTooLong(t *testing.T) {
	narration := strings.Repeat("あ", 300) // ~46s
	p := PreviewScript(narration, nil)
	if p.TimeWarning == "" || !strings.Contains(p.TimeWarning, "長すぎる") {
		t.Fatalf("expected too-long warning, got %q", p.TimeWarning)
	}
}

func TestPreviewScriptInRange(t *testing.T) {
	narration := strings.Repeat("あ", 200) // ~30.8s
	segments := []Segment{
		{No: "1", Narration: strings.Repeat("い", 35)},
		{No: "2", Narration: strings.Repeat("う", 49)},
		{No: "3", Narration: strings.Repeat("え", 30)},
	}
	p := PreviewScript(narration, segments)
	if p.TimeWarning != "" {
		t.Fatalf("unexpected timing warning: %q", p.TimeWarning)
	}
	if len(p.SegmentWarnings) != 0 {
		t.Fatalf("unexpected segment warnings: %v", p.SegmentWarnings)
	}
	if p.HasIssues {
		t.Fatalf("did not expect issues")
	}
	if p.SegmentCount != 3 {
		t.Fatalf("expected 3 segments, got %d", p.SegmentCount)
	}
}

func TestPreviewScriptSegmentBounds(t *testing.T) {
	narration := strings.Repeat("あ", 200)
	segments := []Segment{
		{No: "1", Narration: strings.Repeat("い", 29)},
		{No: "2", Narration: strings.Repeat("う", 35)},
		{No: "3", Narration: strings.Repeat("え", 50)},
	}
	p := PreviewScript(narration, segments)
	if len(p.SegmentWarnings) != 2 {
		t.Fatalf("expected 2 segment warnings, got %v", p.SegmentWarnings)
	}
	if !strings.Contains(p.SegmentWarnings[0], "スライド1") || !strings.Contains(p.SegmentWarnings[0], "少なすぎます") {
		t.Fatalf("unexpected first warning: %q", p.SegmentWarnings[0])
	}
	if !strings.Contains(p.SegmentWarnings[1], "スライド3") || !strings.Contains(p.SegmentWarnings[1], "多すぎます") {
		t.Fatalf("unexpected second warning: %q", p.SegmentWarnings[1])
	}
	if !p.HasIssues {
		t.Fatalf("expected HasIssues")
	}
}

func TestPreviewDurationMonotonic(t *testing.T) {
	prev := -1.0
	for _, n := range []int{0, 1, 50, 150, 500, 2000} {
		p := PreviewScript(strings.Repeat("あ", n), nil)
		if p.EstimatedDuration < prev {
			t.Fatalf("duration decreased at %d chars: %.2f < %.2f", n, p.EstimatedDuration, prev)
		}
		prev = p.EstimatedDuration
	}
}

func TestPreviewFor(t *testing.T) {
	script := Script{FullText: sampleScript, Narration: ExtractNarration(sampleScript)}
	p := PreviewFor(script)
	if p.SegmentCount != 2 {
		t.Fatalf("expected 2 segments from full text, got %d", p.SegmentCount)
	}
	if p.NarrationLength == 0 {
		t.Fatalf("expected non-empty narration length")
	}
}

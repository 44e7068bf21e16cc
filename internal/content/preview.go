package content

import (
	"fmt"
	"unicode/utf8"
)

// ReadingSpeed is the assumed Japanese read-aloud speed in characters per
// second (about 390 characters per minute).
const ReadingSpeed = 6.5

// Per-segment narration bounds (runes) for a 6-7 second segment.
const (
	segmentMinChars = 30
	segmentMaxChars = 49
)

// Overall estimated duration bounds in seconds: 4 segments x 6s up to
// 6 segments x 7s.
const (
	durationMinSeconds = 24
	durationMaxSeconds = 42
)

// Preview is advisory timing and length diagnostics for one script. It never
// blocks anything; an operator decides what to do with it.
type Preview struct {
	NarrationLength   int       `json:"narrationLength"`
	EstimatedDuration float64   `json:"estimatedDuration"`
	SegmentCount      int       `json:"segmentCount"`
	Segments          []Segment `json:"segments"`
	SegmentWarnings   []string  `json:"segmentWarnings"`
	TimeWarning       string    `json:"timeWarning,omitempty"`
	HasIssues         bool      `json:"hasIssues"`
}

// PreviewScript estimates read-aloud time for the narration and checks each
// segment's caption length against the per-segment bounds.
func PreviewScript(narration string, segments []Segment) Preview {
	p := Preview{
		NarrationLength: utf8.RuneCountInString(narration),
		SegmentCount:    len(segments),
		Segments:        segments,
	}
	p.EstimatedDuration = float64(p.NarrationLength) / ReadingSpeed

	for i, seg := range segments {
		chars := utf8.RuneCountInString(seg.Narration)
		if chars < segmentMinChars {
			p.SegmentWarnings = append(p.SegmentWarnings,
				fmt.Sprintf("スライド%d: 文字数が少なすぎます（%d文字 < %d文字）", i+1, chars, segmentMinChars))
		} else if chars > segmentMaxChars {
			p.SegmentWarnings = append(p.SegmentWarnings,
				fmt.Sprintf("スライド%d: 文字数が多すぎます（%d文字 > %d文字）", i+1, chars, segmentMaxChars))
		}
	}

	if p.EstimatedDuration < durationMinSeconds {
		p.TimeWarning = fmt.Sprintf("動画が短すぎる可能性があります（推定%.1f秒 < %d秒）", p.EstimatedDuration, durationMinSeconds)
	} else if p.EstimatedDuration > durationMaxSeconds {
		p.TimeWarning = fmt.Sprintf("動画が長すぎる可能性があります（推定%.1f秒 > %d秒）", p.EstimatedDuration, durationMaxSeconds)
	}

	p.HasIssues = len(p.SegmentWarnings) > 0 || p.TimeWarning != ""
	return p
}

// PreviewFor runs PreviewScript over a script's latest text.
func PreviewFor(s Script) Preview {
	return PreviewScript(s.Narration, ParseSegments(s.FullText))
}

package content

import (
	"regexp"
	"strconv"
	"strings"
)

// Segment is one timed unit (table row) of a script.
type Segment struct {
	No        string `json:"no"`
	Duration  string `json:"duration"`
	Narration string `json:"narration"`
	VisualJA  string `json:"visualJa"`
	VisualEN  string `json:"visualEn,omitempty"`
}

// Sections is a script split into its image-prompt, table, and narration
// parts.
type Sections struct {
	ImagePrompt string
	Narration   string
	Segments    []Segment
}

// BilingualPrompt is an image-generation prompt in both languages.
type BilingualPrompt struct {
	JA string `json:"ja"`
	EN string `json:"en"`
}

// Level-2 heading keywords marking the image-prompt section. Matched
// case-insensitively so "Midjourney" and "midjourney" both hit.
var imageSectionKeywords = []string{"midjourney", "画像生成", "モデル人物"}

// SplitSections walks a script's markdown and separates the image-prompt
// section, the segment table, and the narration code block. Unrecognized
// text is ignored; missing sections come back empty.
func SplitSections(scriptText string) Sections {
	var sections Sections

	const (
		sectionNone = iota
		sectionImage
		sectionTable
		sectionNarration
	)
	current := sectionNone
	inFence := false
	var fenceLines, tableLines, imageLines []string

	flushImage := func() {
		if len(imageLines) > 0 {
			sections.ImagePrompt = strings.TrimSpace(strings.Join(imageLines, "\n"))
			imageLines = nil
		}
	}

	for _, line := range strings.Split(scriptText, "\n") {
		stripped := strings.TrimSpace(line)

		// Only level-2 headings delimit sections; "###" is a sub-heading
		// inside the image-prompt section.
		if strings.HasPrefix(stripped, "## ") {
			lower := strings.ToLower(stripped)
			switch {
			case containsAny(lower, imageSectionKeywords):
				current = sectionImage
				continue
			case strings.Contains(stripped, "台本表"):
				flushImage()
				current = sectionTable
				continue
			case strings.Contains(stripped, "ナレーション"):
				flushImage()
				current = sectionNarration
				continue
			}
		}

		if current == sectionImage {
			imageLines = append(imageLines, line)
		}

		if strings.HasPrefix(stripped, "```") {
			inFence = !inFence
			if !inFence && len(fenceLines) > 0 {
				if current == sectionNarration {
					sections.Narration = strings.TrimSpace(strings.Join(fenceLines, "\n"))
				}
				fenceLines = nil
			}
			continue
		}
		if inFence {
			fenceLines = append(fenceLines, line)
			continue
		}

		if current == sectionTable && strings.HasPrefix(stripped, "|") {
			if strings.Contains(stripped, "スライドNo") || strings.Contains(stripped, "時間") || strings.HasPrefix(stripped, "|---") {
				continue
			}
			if strings.Contains(stripped, "例：") || strings.Contains(stripped, "...") {
				continue
			}
			tableLines = append(tableLines, stripped)
		}
	}
	flushImage()

	sections.Segments = parseSegmentRows(tableLines)
	return sections
}

// ParseSegments extracts the segment table from a script.
func ParseSegments(scriptText string) []Segment {
	return SplitSections(scriptText).Segments
}

// parseSegmentRows maps table rows to segments, accepting the three
// historical column layouts. The 5-column layout is
// | No | 秒数 | ナレーション/テロップ | 動画生成指示（日本語） | 動画生成指示（英語） |;
// 4 columns drop the English instruction and 3 columns also drop the
// leading number, which is then synthesized from the row's position.
func parseSegmentRows(rows []string) []Segment {
	var segments []Segment
	for _, row := range rows {
		cells := splitRow(row)
		switch {
		case len(cells) >= 5:
			segments = append(segments, Segment{
				No:        cells[0],
				Duration:  cells[1],
				Narration: cells[2],
				VisualJA:  cells[3],
				VisualEN:  cells[4],
			})
		case len(cells) >= 4:
			segments = append(segments, Segment{
				No:        cells[0],
				Duration:  cells[1],
				Narration: cells[2],
				VisualJA:  cells[3],
			})
		case len(cells) >= 3:
			segments = append(segments, Segment{
				No:        strconv.Itoa(len(segments) + 1),
				Duration:  cells[0],
				Narration: cells[1],
				VisualJA:  cells[2],
			})
		}
	}
	return segments
}

var (
	bilingualJAPattern = regexp.MustCompile("(?s)###\\s*日本語.*?\n+```[^\n]*\n+(.*?)\n+```")
	bilingualENPattern = regexp.MustCompile("(?is)###\\s*(?:Midjourney.*?(?:英語|English)|英語|English).*?\n+```[^\n]*\n+(.*?)\n+```")
)

// ExtractBilingualPrompt pulls the Japanese and English image prompts out of
// an image-prompt section. When neither sub-heading is present the whole
// section is assumed to already be plain Japanese text.
func ExtractBilingualPrompt(sectionText string) BilingualPrompt {
	var p BilingualPrompt
	if m := bilingualJAPattern.FindStringSubmatch(sectionText); m != nil {
		p.JA = strings.TrimSpace(m[1])
	}
	if m := bilingualENPattern.FindStringSubmatch(sectionText); m != nil {
		p.EN = strings.TrimSpace(m[1])
	}
	if p.JA == "" && p.EN == "" {
		p.JA = sectionText
	}
	return p
}

func containsAny(s string, keywords []string) bool {
	for _, k := range keywords {
		if strings.Contains(s, k) {
			return true
		}
	}
	return false
}

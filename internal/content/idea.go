package content

import (
	"strconv"
	"strings"
)

// Idea is one candidate content concept parsed from a generation response.
type Idea struct {
	No         string `json:"no"`
	Title      string `json:"title"`
	Summary    string `json:"summary"`
	RawLine    string `json:"rawText,omitempty"`
	AppealType string `json:"appealType,omitempty"`
}

// exampleMarker flags placeholder rows the model sometimes copies from the
// prompt template.
const exampleMarker = "（例："

// fallbackListMax bounds the numbered-list prefixes the loose parser accepts.
const fallbackListMax = 20

// ParseIdeas extracts ideas from a generation response. The primary strategy
// reads a markdown pipe table whose first cell is an integer; if that yields
// nothing, a looser numbered-list parse ("1. title" / "1) title") runs
// instead. Malformed input returns an empty slice, never an error.
func ParseIdeas(text string) []Idea {
	ideas := parseIdeaTable(text)
	if len(ideas) == 0 {
		ideas = parseIdeaList(text)
	}
	return ideas
}

func parseIdeaTable(text string) []Idea {
	var ideas []Idea
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "|---|") || strings.HasPrefix(line, "| No |") {
			continue
		}
		if !strings.HasPrefix(line, "|") || !strings.HasSuffix(line, "|") {
			continue
		}
		inner := strings.Split(line, "|")
		inner = inner[1 : len(inner)-1]
		cells := make([]string, len(inner))
		for i, c := range inner {
			cells[i] = strings.TrimSpace(c)
		}
		if len(cells) < 3 {
			continue
		}
		no := cells[0]
		if _, err := strconv.Atoi(no); err != nil {
			// Header or separator row.
			continue
		}
		title := cells[1]
		if strings.HasPrefix(title, exampleMarker) {
			continue
		}
		ideas = append(ideas, Idea{
			No:      no,
			Title:   title,
			Summary: cells[2],
			RawLine: line,
		})
	}
	return ideas
}

func parseIdeaList(text string) []Idea {
	var ideas []Idea
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
	prefixes:
		for n := 1; n <= fallbackListMax; n++ {
			for _, prefix := range []string{strconv.Itoa(n) + ".", strconv.Itoa(n) + ")"} {
				if strings.HasPrefix(line, prefix) {
					ideas = append(ideas, Idea{
						No:      strconv.Itoa(n),
						Title:   strings.TrimSpace(line[len(prefix):]),
						RawLine: line,
					})
					break prefixes
				}
			}
		}
	}
	return ideas
}

// splitRow splits a markdown table row on "|", trimming each cell and
// dropping the empty boundary cells.
func splitRow(line string) []string {
	parts := strings.Split(line, "|")
	cells := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			cells = append(cells, p)
		}
	}
	return cells
}

// RenumberIdeas rewrites sequence numbers so an additional generation round
// continues from the cumulative count rather than restarting at 1.
func RenumberIdeas(ideas []Idea, start int) {
	for i := range ideas {
		ideas[i].No = strconv.Itoa(start + i)
	}
}

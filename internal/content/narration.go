package content

import "strings"

// narrationMarker is the heading token that introduces the full narration
// section of a script.
const narrationMarker = "ナレーション全文"

// ExtractNarration pulls the full narration out of a script. The primary
// strategy finds the narration heading and captures the fenced code block
// that follows it. If no such section exists, the fallback concatenates the
// second column of every table row. Returns "" when both strategies miss.
func ExtractNarration(scriptText string) string {
	if n := narrationFromSection(scriptText); n != "" {
		return n
	}
	return narrationFromTable(scriptText)
}

func narrationFromSection(scriptText string) string {
	var lines []string
	inSection := false
	inFence := false

	for _, line := range strings.Split(scriptText, "\n") {
		stripped := strings.TrimSpace(line)

		if strings.Contains(stripped, narrationMarker) && strings.HasPrefix(stripped, "#") {
			inSection = true
			continue
		}
		if !inSection {
			continue
		}
		if strings.HasPrefix(stripped, "```") {
			if inFence {
				break
			}
			inFence = true
			continue
		}
		if inFence {
			lines = append(lines, line)
		}
	}
	return strings.TrimSpace(strings.Join(lines, "\n"))
}

func narrationFromTable(scriptText string) string {
	var lines []string
	for _, line := range strings.Split(scriptText, "\n") {
		line = strings.TrimSpace(line)
		if !strings.HasPrefix(line, "|") || strings.HasPrefix(line, "|---") || strings.HasPrefix(line, "| 時間") {
			continue
		}
		cells := splitRow(line)
		if len(cells) >= 2 {
			lines = append(lines, cells[1])
		}
	}
	return strings.TrimSpace(strings.Join(lines, " "))
}

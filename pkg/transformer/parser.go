package transformer

import "strings"

// ParseLines splits raw model output into candidate query strings.
//
// The input is split on newline characters; lines that are empty or consist
// solely of whitespace are dropped, and the relative order of the remaining
// lines is preserved. No other normalization happens: numbering, hyphens,
// or bullet markers the model emitted despite being told not to pass
// through unchanged.
//
// ParseLines is a pure function: same input, same output, no side effects.
func ParseLines(responseText string) []string {
	var lines []string
	for _, line := range strings.Split(responseText, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		lines = append(lines, line)
	}
	return lines
}

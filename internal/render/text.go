package render

import (
	"math"
	"strconv"
	"strings"
)

const emphasisMark = "**"

// SplitStyled splits text on matched pairs of double asterisks. Text between
// a pair is emphasized. Unmatched delimiters stay literal and empty segments
// are dropped.
func SplitStyled(text string) []Run {
	var runs []Run
	var plain strings.Builder

	flush := func() {
		if plain.Len() > 0 {
			runs = append(runs, Run{Text: plain.String()})
			plain.Reset()
		}
	}

	rest := text
	for {
		open := strings.Index(rest, emphasisMark)
		if open < 0 {
			plain.WriteString(rest)
			break
		}
		closeAt := strings.Index(rest[open+len(emphasisMark):], emphasisMark)
		if closeAt < 0 {
			plain.WriteString(rest)
			break
		}
		plain.WriteString(rest[:open])
		inner := rest[open+len(emphasisMark) : open+len(emphasisMark)+closeAt]
		if inner != "" {
			flush()
			runs = append(runs, Run{Text: inner, Emphasis: true})
		}
		rest = rest[open+2*len(emphasisMark)+closeAt:]
	}
	flush()
	return runs
}

// formatNumber prints a value the way a chart label shows it: no trailing zeros.
func formatNumber(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return "0"
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// coord rounds a canvas coordinate to two decimals for path data.
func coord(v float64) string {
	r := math.Round(v*100) / 100
	if r == 0 {
		r = 0
	}
	return formatNumber(r)
}

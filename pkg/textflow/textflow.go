// Package textflow wraps text against a width budget and reports the
// resulting block height before anything is painted. Every card in the
// layout engine sizes itself through this package first, then paints the
// same lines with the same font, so measured and painted heights agree.
package textflow

import "strings"

// LineHeightFactor converts a font size into the fixed distance between
// consecutive baselines. The factor is applied after the point-to-unit
// conversion; line height does not vary per line.
const LineHeightFactor = 1.15

// ptToUnit converts a font size in points to page units.
const ptToUnit = 0.3528

// WidthFunc measures the painted width of a string in page units. It must
// reflect the exact font (face, style, size) that will paint the text.
type WidthFunc func(s string) float64

// Block is the measured shape of a wrapped run of text.
type Block struct {
	Lines      []string
	LineHeight float64
	Height     float64
}

// LineHeight returns the fixed baseline spacing for a font size in points.
func LineHeight(sizePt float64) float64 {
	return sizePt * ptToUnit * LineHeightFactor
}

// Measure wraps text to the width budget and computes the block height for
// the given font size. The width function must measure under that same
// font. Empty text measures as zero lines and zero height.
func Measure(text string, budget float64, sizePt float64, width WidthFunc) Block {
	lines := Wrap(text, budget, width)
	lh := LineHeight(sizePt)
	return Block{
		Lines:      lines,
		LineHeight: lh,
		Height:     float64(len(lines)) * lh,
	}
}

// Wrap splits text into lines no wider than the budget. Wrapping is greedy
// on whitespace-separated words; a single word wider than the budget is
// hard-broken by runes. Explicit newlines always break. The result is
// stable: re-wrapping the joined output at the same budget reproduces the
// same lines.
func Wrap(text string, budget float64, width WidthFunc) []string {
	if strings.TrimSpace(text) == "" {
		return nil
	}

	var lines []string
	for _, para := range strings.Split(text, "\n") {
		words := strings.Fields(para)
		if len(words) == 0 {
			continue
		}

		current := ""
		flush := func() {
			if current != "" {
				lines = append(lines, current)
				current = ""
			}
		}

		for _, word := range words {
			if width(word) > budget {
				// Oversized word: emit what we have, then hard-break it.
				flush()
				lines = append(lines, breakWord(word, budget, width)...)
				// Keep the final fragment open so following words join it.
				if n := len(lines); n > 0 && width(lines[n-1]) < budget {
					current = lines[n-1]
					lines = lines[:n-1]
				}
				continue
			}
			candidate := word
			if current != "" {
				candidate = current + " " + word
			}
			if width(candidate) <= budget {
				current = candidate
			} else {
				flush()
				current = word
			}
		}
		flush()
	}
	return lines
}

// breakWord splits one oversized word into rune chunks that each fit the
// budget. Always makes progress, even at absurdly small budgets.
func breakWord(word string, budget float64, width WidthFunc) []string {
	var out []string
	runes := []rune(word)
	start := 0
	for start < len(runes) {
		end := start + 1
		for end < len(runes) && width(string(runes[start:end+1])) <= budget {
			end++
		}
		out = append(out, string(runes[start:end]))
		start = end
	}
	return out
}

// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package grammar

// Candidate is a substring of the input that structurally matches the
// date grammar, prior to semantic resolution. Start preserves scan
// order; candidates are not retained after resolution.
type Candidate struct {
	Text  string
	Start int
}

// Scan applies the compiled pattern to text in one left-to-right pass
// and returns every non-overlapping match in document order. Empty or
// malformed input yields zero candidates, never an error.
func (g *Grammar) Scan(text string) []Candidate {
	spans := g.re.FindAllStringIndex(text, -1)
	if spans == nil {
		return nil
	}

	candidates := make([]Candidate, len(spans))
	for i, span := range spans {
		candidates[i] = Candidate{
			Text:  text[span[0]:span[1]],
			Start: span[0],
		}
	}
	return candidates
}

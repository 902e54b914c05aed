package chart

import "github.com/okian/mingpan/internal/domain/sexagenary"

// Display colors per element, fixed five-entry table.
var elementColors = map[sexagenary.Element]string{
	sexagenary.Gold:  "#FFD700",
	sexagenary.Wood:  "#4CAF50",
	sexagenary.Water: "#2196F3",
	sexagenary.Fire:  "#FF5722",
	sexagenary.Earth: "#8D6E63",
}

// TallyElements counts the element of every stem and branch across the four
// pillars. All five element keys are present in the result. A symbol outside
// the 22 valid characters contributes nothing; that leniency is part of the
// contract, not a validation gap.
func TallyElements(p sexagenary.FourPillars) Tally {
	t := make(Tally, len(sexagenary.ElementOrder))
	for _, e := range sexagenary.ElementOrder {
		t[e] = 0
	}
	for _, pair := range p.Pairs() {
		if e, ok := sexagenary.StemElement(pair.Stem); ok {
			t[e]++
		}
		if e, ok := sexagenary.BranchElement(pair.Branch); ok {
			t[e]++
		}
	}
	return t
}

// ColorOf returns the hex display color for an element, or "" for a value
// outside the five-element set.
func ColorOf(e sexagenary.Element) string {
	return elementColors[e]
}

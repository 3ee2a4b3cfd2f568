/**
 * @description
 * Pure odds/price conversions shared by the reconciliation engine and the
 * cross-source comparison math. All probabilities are expressed on a 0-1
 * scale; scaling to percentages happens at the presentation boundary only.
 */

package oddsmath

import "math"

// CentsToProbability converts a price in minor units (0-100 cents) into a
// probability rounded to 2 decimal places. Nil in, nil out.
func CentsToProbability(v *float64) *float64 {
	if v == nil {
		return nil
	}
	p := Round2(*v / 100.0)
	return &p
}

// AmericanToProbability converts signed American odds to implied probability.
// Favorites (odds < 0): |odds| / (|odds| + 100). Underdogs (odds > 0):
// 100 / (odds + 100). Zero odds are an input error and map to probability 0.
func AmericanToProbability(odds int) float64 {
	if odds == 0 {
		return 0
	}
	if odds > 0 {
		return 100.0 / float64(odds+100)
	}
	abs := float64(-odds)
	return abs / (abs + 100.0)
}

// Complement derives the opposite side's probability, rounded to 2 decimal
// places. Nil in, nil out.
func Complement(p *float64) *float64 {
	if p == nil {
		return nil
	}
	c := Round2(1 - *p)
	return &c
}

// Round2 rounds to 2 decimal places
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

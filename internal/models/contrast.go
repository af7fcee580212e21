package models

import "strings"

// ContrastType identifies which pair of sounds a word pair tests
type ContrastType string

const (
	ContrastPlosiveVoicedUnvoiced   ContrastType = "plosive-voiced-unvoiced"   // p/b, t/d, k/g
	ContrastFricativeVoicedUnvoiced ContrastType = "fricative-voiced-unvoiced" // f/v, s/z
	ContrastNasalPlosive            ContrastType = "nasal-plosive"             // m/b, n/d
	ContrastPlosiveNasal            ContrastType = "plosive-nasal"             // p/m, t/n
	ContrastFricativePlosive        ContrastType = "fricative-plosive"         // f/p, s/t
	ContrastApproximantFricative    ContrastType = "approximant-fricative"     // w/f, r/s
	ContrastLateralRhotic           ContrastType = "lateral-rhotic"            // l/r
	ContrastFricativeApproximant    ContrastType = "fricative-approximant"     // v/w
	ContrastPlosivePlosive          ContrastType = "plosive-plosive"           // p/t, t/k
)

// DefaultContrastType is substituted when a word pair arrives without one
const DefaultContrastType = ContrastPlosiveVoicedUnvoiced

// AllContrastTypes returns every known contrast category
func AllContrastTypes() []ContrastType {
	return []ContrastType{
		ContrastPlosiveVoicedUnvoiced,
		ContrastFricativeVoicedUnvoiced,
		ContrastNasalPlosive,
		ContrastPlosiveNasal,
		ContrastFricativePlosive,
		ContrastApproximantFricative,
		ContrastLateralRhotic,
		ContrastFricativeApproximant,
		ContrastPlosivePlosive,
	}
}

// Valid reports whether c is one of the known contrast categories
func (c ContrastType) Valid() bool {
	switch c {
	case ContrastPlosiveVoicedUnvoiced,
		ContrastFricativeVoicedUnvoiced,
		ContrastNasalPlosive,
		ContrastPlosiveNasal,
		ContrastFricativePlosive,
		ContrastApproximantFricative,
		ContrastLateralRhotic,
		ContrastFricativeApproximant,
		ContrastPlosivePlosive:
		return true
	}
	return false
}

// DisplayName returns a human-readable label for reports and exports.
// This is a presentation concern; the enum value itself is what gets stored.
func (c ContrastType) DisplayName() string {
	words := strings.Split(string(c), "-")
	for i, word := range words {
		if word == "" {
			continue
		}
		words[i] = strings.ToUpper(word[:1]) + word[1:]
	}
	return strings.Join(words, " ")
}

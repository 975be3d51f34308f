package bracket

import (
	"strconv"

	"github.com/riskibarqy/club-brackets/internal/domain/match"
)

var groupLetters = [...]string{"A", "B", "C", "D", "E", "F", "G", "H"}

// Pairing is one knockout slot seeded from the group stage.
type Pairing struct {
	Home string `json:"home"`
	Away string `json:"away"`
}

// GroupLetter maps a one-based group number to its letter. Numbers outside A..H keep their digits.
func GroupLetter(groupNumber int) string {
	if groupNumber >= 1 && groupNumber <= len(groupLetters) {
		return groupLetters[groupNumber-1]
	}
	return strconv.Itoa(groupNumber)
}

// GeneratePairings crosses consecutive group pairs: first of one group meets second of the other.
// An unpaired trailing group produces no pairing.
func GeneratePairings(numGroups int) []Pairing {
	if numGroups < 2 {
		return nil
	}

	out := make([]Pairing, 0, numGroups/2*2)
	for g := 1; g+1 <= numGroups; g += 2 {
		first, second := GroupLetter(g), GroupLetter(g+1)
		out = append(out,
			Pairing{Home: first + "1", Away: second + "2"},
			Pairing{Home: second + "1", Away: first + "2"},
		)
	}
	return out
}

// PositionLabel describes the expected occupant of an unresolved slot.
func PositionLabel(matchIndex int, isHome bool, stage match.Stage, numGroups int) string {
	label, _ := positionLabel(matchIndex, isHome, stage, numGroups)
	return label
}

// positionLabel also reports whether the index fell outside the generated pairings.
func positionLabel(matchIndex int, isHome bool, stage match.Stage, numGroups int) (string, bool) {
	switch stage {
	case match.StageFinal:
		if isHome {
			return "winner of " + MatchLabel(match.StageSemiFinal, 0), false
		}
		return "winner of " + MatchLabel(match.StageSemiFinal, 1), false
	case match.StageThirdPlace:
		if isHome {
			return "loser 1", false
		}
		return "loser 2", false
	}

	pairings := GeneratePairings(numGroups)
	if matchIndex >= 0 && matchIndex < len(pairings) {
		if isHome {
			return pairings[matchIndex].Home, false
		}
		return pairings[matchIndex].Away, false
	}

	fallbackGroup := (matchIndex/2)*2 + 1
	first, second := GroupLetter(fallbackGroup), GroupLetter(fallbackGroup+1)
	if matchIndex%2 == 0 {
		if isHome {
			return first + "1", true
		}
		return second + "2", true
	}
	if isHome {
		return second + "1", true
	}
	return first + "2", true
}

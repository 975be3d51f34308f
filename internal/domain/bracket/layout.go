package bracket

import (
	"github.com/riskibarqy/club-brackets/internal/domain/match"
)

type Layout string

const (
	LayoutFullTree Layout = "full_tree"
	LayoutSimple   Layout = "simple"
	LayoutEmpty    Layout = "empty"
)

type EmptyState string

const (
	EmptyStateNone                 EmptyState = ""
	EmptyStateGroupStageIncomplete EmptyState = "group_stage_incomplete"
	EmptyStateKnockoutNotStarted   EmptyState = "knockout_not_started"
)

const (
	roundOf16HalfSize    = 4
	quarterFinalHalfSize = 2
	semiFinalHalfSize    = 1
)

// Buckets holds the knockout matches of a snapshot split per stage, each in display order.
type Buckets struct {
	RoundOf16     []match.Match
	QuarterFinals []match.Match
	SemiFinals    []match.Match
	Finals        []match.Match
	ThirdPlace    []match.Match
}

func (b Buckets) Total() int {
	return len(b.RoundOf16) + len(b.QuarterFinals) + len(b.SemiFinals) + len(b.Finals) + len(b.ThirdPlace)
}

// Stage returns the bucket for a knockout stage, nil for any other stage.
func (b Buckets) Stage(stage match.Stage) []match.Match {
	switch stage {
	case match.StageRoundOf16:
		return b.RoundOf16
	case match.StageQuarterFinal:
		return b.QuarterFinals
	case match.StageSemiFinal:
		return b.SemiFinals
	case match.StageFinal:
		return b.Finals
	case match.StageThirdPlace:
		return b.ThirdPlace
	default:
		return nil
	}
}

// Partition splits the knockout matches of a snapshot into sorted per-stage buckets.
// group, league and unknown stages are left out.
func Partition(matches []match.Match) Buckets {
	var out Buckets
	for _, item := range SortMatches(matches) {
		switch item.Stage {
		case match.StageRoundOf16:
			out.RoundOf16 = append(out.RoundOf16, item)
		case match.StageQuarterFinal:
			out.QuarterFinals = append(out.QuarterFinals, item)
		case match.StageSemiFinal:
			out.SemiFinals = append(out.SemiFinals, item)
		case match.StageFinal:
			out.Finals = append(out.Finals, item)
		case match.StageThirdPlace:
			out.ThirdPlace = append(out.ThirdPlace, item)
		}
	}
	return out
}

func SelectLayout(b Buckets) Layout {
	switch {
	case b.Total() == 0:
		return LayoutEmpty
	case len(b.RoundOf16) > 0 || len(b.QuarterFinals) > 0:
		return LayoutFullTree
	default:
		return LayoutSimple
	}
}

// Halves is one column pair of the tree: left side and right side of the final.
type Halves struct {
	Left  []Card `json:"left"`
	Right []Card `json:"right"`
}

func splitHalves(cards []Card, size int) Halves {
	out := Halves{Left: []Card{}, Right: []Card{}}
	if len(cards) == 0 {
		return out
	}
	leftEnd := min(size, len(cards))
	rightEnd := min(2*size, len(cards))
	out.Left = append(out.Left, cards[:leftEnd]...)
	out.Right = append(out.Right, cards[leftEnd:rightEnd]...)
	return out
}

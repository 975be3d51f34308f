package bracket

import (
	"sort"

	"github.com/riskibarqy/club-brackets/internal/domain/match"
)

// SourceText renders a slot source against the match collection it refers to.
// It returns "" whenever the source cannot be resolved, so callers can fall back to PositionLabel.
func SourceText(source string, matches []match.Match) string {
	parsed, ok := match.ParseSource(source)
	if !ok {
		return ""
	}
	if parsed.Kind == match.SourceSeed {
		return "seed " + parsed.Ref
	}

	origin, ok := findMatch(matches, parsed.Ref)
	if !ok {
		return ""
	}

	if origin.Stage == match.StageGroup {
		groupNumber := 1
		if origin.GroupNumber != nil {
			groupNumber = *origin.GroupNumber
		}
		if parsed.Kind == match.SourceWinnerOf {
			return GroupLetter(groupNumber) + "1"
		}
		return GroupLetter(groupNumber) + "2"
	}

	label := MatchLabel(origin.Stage, stageIndex(origin, matches))
	if parsed.Kind == match.SourceWinnerOf {
		return "winner of " + label
	}
	return "loser of " + label
}

func findMatch(matches []match.Match, id string) (match.Match, bool) {
	for _, item := range matches {
		if item.ID == id {
			return item, true
		}
	}
	return match.Match{}, false
}

// stageIndex locates target among matches of its stage keyed by bracket position, then round.
func stageIndex(target match.Match, matches []match.Match) int {
	sameStage := make([]match.Match, 0, len(matches))
	for _, item := range matches {
		if item.Stage == target.Stage {
			sameStage = append(sameStage, item)
		}
	}

	sort.SliceStable(sameStage, func(i, j int) bool {
		return sourceSortKey(sameStage[i]) < sourceSortKey(sameStage[j])
	})

	for i, item := range sameStage {
		if item.ID == target.ID {
			return i
		}
	}
	return 0
}

func sourceSortKey(m match.Match) int {
	if m.BracketPosition != nil {
		return *m.BracketPosition
	}
	if m.Round != nil {
		return *m.Round
	}
	return 0
}

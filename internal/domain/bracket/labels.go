package bracket

import (
	"sort"
	"strconv"

	"github.com/riskibarqy/club-brackets/internal/domain/match"
)

// UnrankedStage is the sort rank of every stage outside the knockout display order.
const UnrankedStage = 999

var stageLabels = map[match.Stage]string{
	match.StageRoundOf16:    "round of 16",
	match.StageQuarterFinal: "quarter-final",
	match.StageSemiFinal:    "semi-final",
	match.StageFinal:        "final",
	match.StageThirdPlace:   "third place",
	match.StageGroup:        "group stage",
	match.StageLeague:       "league",
}

// third_place is rendered next to the final and deliberately has no rank.
var stageOrder = []match.Stage{
	match.StageRoundOf16,
	match.StageQuarterFinal,
	match.StageSemiFinal,
	match.StageFinal,
}

var stageRanks = func() map[match.Stage]int {
	out := make(map[match.Stage]int, len(stageOrder))
	for i, stage := range stageOrder {
		out[stage] = i
	}
	return out
}()

var statusLabels = map[match.Status]string{
	match.StatusScheduled: "scheduled",
	match.StatusLive:      "live",
	match.StatusCompleted: "full time",
	match.StatusPostponed: "postponed",
}

// StageLabel returns the display label of a stage. Unknown codes are returned verbatim.
func StageLabel(stage match.Stage) string {
	label, _ := LookupStageLabel(stage)
	return label
}

// LookupStageLabel is StageLabel that also reports whether the code was known.
func LookupStageLabel(stage match.Stage) (string, bool) {
	label, ok := stageLabels[stage]
	if !ok {
		return string(stage), false
	}
	return label, true
}

func StageRank(stage match.Stage) int {
	rank, ok := stageRanks[stage]
	if !ok {
		return UnrankedStage
	}
	return rank
}

// SortMatches returns a copy of matches ordered by stage rank, round and bracket position.
// Matches with equal keys keep their input order.
func SortMatches(matches []match.Match) []match.Match {
	out := make([]match.Match, len(matches))
	copy(out, matches)
	sort.SliceStable(out, func(i, j int) bool {
		ri, rj := StageRank(out[i].Stage), StageRank(out[j].Stage)
		if ri != rj {
			return ri < rj
		}
		if out[i].RoundOrZero() != out[j].RoundOrZero() {
			return out[i].RoundOrZero() < out[j].RoundOrZero()
		}
		return out[i].BracketPositionOrZero() < out[j].BracketPositionOrZero()
	})
	return out
}

// MatchLabel labels the match at index within its stage, e.g. "semi-final 1".
// final and third_place are singletons and keep the bare stage label.
func MatchLabel(stage match.Stage, index int) string {
	label := StageLabel(stage)
	switch stage {
	case match.StageFinal, match.StageThirdPlace:
		return label
	default:
		return label + " " + strconv.Itoa(index+1)
	}
}

func StatusLabel(status match.Status) string {
	normalized := match.NormalizeStatus(string(status))
	if label, ok := statusLabels[normalized]; ok {
		return label
	}
	return string(normalized)
}

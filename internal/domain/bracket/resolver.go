package bracket

import (
	"github.com/riskibarqy/club-brackets/internal/domain/match"
	"github.com/riskibarqy/club-brackets/internal/domain/tournament"
)

// FallbackObserver is notified whenever a degraded-mode rule produced a label.
// Notifications never change what the resolver returns.
type FallbackObserver interface {
	UnknownStage(stage match.Stage)
	PairingFallback(stage match.Stage, matchIndex int)
}

type nopObserver struct{}

func (nopObserver) UnknownStage(match.Stage)         {}
func (nopObserver) PairingFallback(match.Stage, int) {}

// Snapshot is the already-fetched input of one bracket resolution.
type Snapshot struct {
	Matches            []match.Match
	Tournament         *tournament.Tournament
	GroupStageComplete bool
}

func (s Snapshot) numGroups() int {
	if s.Tournament == nil {
		return tournament.DefaultNumberOfGroups
	}
	return s.Tournament.GroupCount()
}

// Round is every card of one knockout stage in display order.
type Round struct {
	Stage match.Stage `json:"stage"`
	Label string      `json:"label"`
	Cards []Card      `json:"cards"`
}

// View is the resolved, renderable bracket.
type View struct {
	Layout         Layout     `json:"layout"`
	EmptyState     EmptyState `json:"empty_state,omitempty"`
	NumberOfGroups int        `json:"number_of_groups"`
	TrophyImageURL string     `json:"trophy_image_url,omitempty"`
	Rounds         []Round    `json:"rounds"`
	RoundOf16      Halves     `json:"round_of_16"`
	QuarterFinals  Halves     `json:"quarter_finals"`
	SemiFinals     Halves     `json:"semi_finals"`
	Final          *Card      `json:"final,omitempty"`
	ThirdPlace     *Card      `json:"third_place,omitempty"`
}

// Champion returns the display name of the final's winner.
func (v View) Champion() (string, bool) {
	if v.Final == nil || v.Final.Placeholder {
		return "", false
	}
	switch v.Final.Winner {
	case WinnerHome:
		return v.Final.Home.Name, true
	case WinnerAway:
		return v.Final.Away.Name, true
	default:
		return "", false
	}
}

func (v View) KnockoutMatchCount() int {
	total := 0
	for _, round := range v.Rounds {
		for _, card := range round.Cards {
			if !card.Placeholder {
				total++
			}
		}
	}
	return total
}

// Resolver turns match snapshots into bracket views.
type Resolver struct {
	observer FallbackObserver
}

func NewResolver(observer FallbackObserver) *Resolver {
	if observer == nil {
		observer = nopObserver{}
	}
	return &Resolver{observer: observer}
}

// Resolve derives the bracket view of a snapshot. The snapshot is never modified.
func (r *Resolver) Resolve(snapshot Snapshot) View {
	numGroups := snapshot.numGroups()
	r.reportUnknownStages(snapshot.Matches)

	view := View{
		NumberOfGroups: numGroups,
		Rounds:         []Round{},
		RoundOf16:      Halves{Left: []Card{}, Right: []Card{}},
		QuarterFinals:  Halves{Left: []Card{}, Right: []Card{}},
		SemiFinals:     Halves{Left: []Card{}, Right: []Card{}},
	}
	if snapshot.Tournament != nil {
		view.TrophyImageURL = snapshot.Tournament.TrophyImageURL
	}

	buckets := Partition(snapshot.Matches)
	view.Layout = SelectLayout(buckets)
	if view.Layout == LayoutEmpty {
		view.EmptyState = EmptyStateKnockoutNotStarted
		if !snapshot.GroupStageComplete {
			view.EmptyState = EmptyStateGroupStageIncomplete
		}
		return view
	}

	cardsByStage := make(map[match.Stage][]Card, len(stageOrder)+1)
	for _, stage := range []match.Stage{
		match.StageRoundOf16,
		match.StageQuarterFinal,
		match.StageSemiFinal,
		match.StageFinal,
		match.StageThirdPlace,
	} {
		bucket := buckets.Stage(stage)
		if len(bucket) == 0 {
			continue
		}
		cards := make([]Card, 0, len(bucket))
		for i, item := range bucket {
			cards = append(cards, r.card(item, i, snapshot.Matches, numGroups))
		}
		cardsByStage[stage] = cards
		view.Rounds = append(view.Rounds, Round{Stage: stage, Label: StageLabel(stage), Cards: cards})
	}

	if view.Layout == LayoutFullTree {
		view.RoundOf16 = splitHalves(cardsByStage[match.StageRoundOf16], roundOf16HalfSize)
		view.QuarterFinals = splitHalves(cardsByStage[match.StageQuarterFinal], quarterFinalHalfSize)
	}
	view.SemiFinals = splitHalves(cardsByStage[match.StageSemiFinal], semiFinalHalfSize)

	if finals := cardsByStage[match.StageFinal]; len(finals) > 0 {
		final := finals[0]
		view.Final = &final
	} else if view.Layout == LayoutSimple {
		final := placeholderCard(match.StageFinal, numGroups)
		view.Final = &final
	}
	if thirdPlace := cardsByStage[match.StageThirdPlace]; len(thirdPlace) > 0 {
		card := thirdPlace[0]
		view.ThirdPlace = &card
	}

	return view
}

func (r *Resolver) card(m match.Match, index int, matches []match.Match, numGroups int) Card {
	homeName, homeFallback := displayName(m, SideHome, index, matches, numGroups)
	awayName, awayFallback := displayName(m, SideAway, index, matches, numGroups)
	if homeFallback || awayFallback {
		r.observer.PairingFallback(m.Stage, index)
	}

	status := match.NormalizeStatus(string(m.Status))
	out := Card{
		MatchID:     m.ID,
		Stage:       m.Stage,
		Label:       MatchLabel(m.Stage, index),
		Index:       index,
		Home:        newSlot(m.HomeTeam, m.HomeTeamSource, m.HomeScore, homeName),
		Away:        newSlot(m.AwayTeam, m.AwayTeamSource, m.AwayScore, awayName),
		Status:      string(status),
		StatusLabel: StatusLabel(status),
		Venue:       m.Venue,
		Winner:      Winner(m),
	}
	if !m.MatchDate.IsZero() {
		date := m.MatchDate
		out.MatchDate = &date
	}
	if m.Penalties != nil {
		out.Penalties = &Penalties{Home: m.Penalties.HomeScore, Away: m.Penalties.AwayScore}
	}
	return out
}

func (r *Resolver) reportUnknownStages(matches []match.Match) {
	seen := make(map[match.Stage]struct{})
	for _, item := range matches {
		if _, ok := LookupStageLabel(item.Stage); ok {
			continue
		}
		if _, ok := seen[item.Stage]; ok {
			continue
		}
		seen[item.Stage] = struct{}{}
		r.observer.UnknownStage(item.Stage)
	}
}

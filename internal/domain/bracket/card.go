package bracket

import (
	"time"

	"github.com/riskibarqy/club-brackets/internal/domain/match"
)

type WinnerSide string

const (
	WinnerNone WinnerSide = ""
	WinnerHome WinnerSide = "home"
	WinnerAway WinnerSide = "away"
)

// Slot is one side of a bracket card.
type Slot struct {
	Name     string `json:"name"`
	TeamID   string `json:"team_id,omitempty"`
	LogoURL  string `json:"logo_url,omitempty"`
	Source   string `json:"source,omitempty"`
	Resolved bool   `json:"resolved"`
	Score    *int   `json:"score,omitempty"`
}

type Penalties struct {
	Home int `json:"home"`
	Away int `json:"away"`
}

// Card is the renderable form of one knockout match.
type Card struct {
	MatchID     string      `json:"match_id,omitempty"`
	Stage       match.Stage `json:"stage"`
	Label       string      `json:"label"`
	Index       int         `json:"index"`
	Home        Slot        `json:"home"`
	Away        Slot        `json:"away"`
	Status      string      `json:"status"`
	StatusLabel string      `json:"status_label"`
	MatchDate   *time.Time  `json:"match_date,omitempty"`
	Venue       string      `json:"venue,omitempty"`
	Penalties   *Penalties  `json:"penalties,omitempty"`
	Winner      WinnerSide  `json:"winner,omitempty"`
	Placeholder bool        `json:"placeholder"`
}

// Winner derives the winning side of a completed match. A level score is settled by penalties.
func Winner(m match.Match) WinnerSide {
	if !m.Status.IsCompleted() || m.HomeScore == nil || m.AwayScore == nil {
		return WinnerNone
	}

	switch {
	case *m.HomeScore > *m.AwayScore:
		return WinnerHome
	case *m.HomeScore < *m.AwayScore:
		return WinnerAway
	}

	if m.Penalties == nil {
		return WinnerNone
	}
	switch {
	case m.Penalties.HomeScore > m.Penalties.AwayScore:
		return WinnerHome
	case m.Penalties.HomeScore < m.Penalties.AwayScore:
		return WinnerAway
	default:
		return WinnerNone
	}
}

func newSlot(team *match.Team, source string, score *int, name string) Slot {
	out := Slot{
		Name:   name,
		Source: source,
		Score:  copyInt(score),
	}
	if team != nil && team.Name != "" && team.Name == name {
		out.TeamID = team.ID
		out.LogoURL = team.LogoURL
		out.Resolved = true
	}
	return out
}

func placeholderCard(stage match.Stage, numGroups int) Card {
	return Card{
		Stage:       stage,
		Label:       MatchLabel(stage, 0),
		Home:        Slot{Name: PositionLabel(0, true, stage, numGroups)},
		Away:        Slot{Name: PositionLabel(0, false, stage, numGroups)},
		Status:      string(match.StatusScheduled),
		StatusLabel: StatusLabel(match.StatusScheduled),
		Placeholder: true,
	}
}

func copyInt(v *int) *int {
	if v == nil {
		return nil
	}
	out := *v
	return &out
}

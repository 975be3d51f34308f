package match

import (
	"strings"
	"time"
)

// Stage is the competition phase a match belongs to.
type Stage string

const (
	StageGroup        Stage = "group"
	StageRoundOf16    Stage = "round_of_16"
	StageQuarterFinal Stage = "quarter_final"
	StageSemiFinal    Stage = "semi_final"
	StageFinal        Stage = "final"
	StageThirdPlace   Stage = "third_place"
	StageLeague       Stage = "league"
)

// IsKnockout reports whether the stage is part of the single-elimination tree.
func (s Stage) IsKnockout() bool {
	switch s {
	case StageRoundOf16, StageQuarterFinal, StageSemiFinal, StageFinal, StageThirdPlace:
		return true
	default:
		return false
	}
}

type Status string

const (
	StatusScheduled Status = "scheduled"
	StatusLive      Status = "live"
	StatusCompleted Status = "completed"
	StatusPostponed Status = "postponed"
)

func NormalizeStatus(value string) Status {
	status := strings.ToLower(strings.TrimSpace(value))
	if status == "" {
		return StatusScheduled
	}
	return Status(status)
}

func (s Status) IsCompleted() bool {
	return NormalizeStatus(string(s)) == StatusCompleted
}

// Team is a participant already resolved for a bracket slot.
type Team struct {
	ID      string
	Name    string
	LogoURL string
}

// PenaltyOutcome is the shoot-out result of a match that ended level.
type PenaltyOutcome struct {
	HomeScore int
	AwayScore int
}

// Match is one scheduled or played fixture inside a tournament.
type Match struct {
	ID              string
	TournamentID    string
	Stage           Stage
	Round           *int
	GroupNumber     *int
	BracketPosition *int
	HomeTeam        *Team
	AwayTeam        *Team
	HomeTeamSource  string
	AwayTeamSource  string
	Status          Status
	HomeScore       *int
	AwayScore       *int
	Penalties       *PenaltyOutcome
	MatchDate       time.Time
	Venue           string
}

func (m Match) RoundOrZero() int {
	if m.Round == nil {
		return 0
	}
	return *m.Round
}

func (m Match) BracketPositionOrZero() int {
	if m.BracketPosition == nil {
		return 0
	}
	return *m.BracketPosition
}

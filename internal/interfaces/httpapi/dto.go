package httpapi

import (
	"strings"
	"time"

	"github.com/riskibarqy/club-brackets/internal/domain/bracket"
	"github.com/riskibarqy/club-brackets/internal/domain/match"
	"github.com/riskibarqy/club-brackets/internal/domain/tournament"
)

type tournamentDTO struct {
	ID             string     `json:"id"`
	Name           string     `json:"name"`
	Sport          string     `json:"sport,omitempty"`
	NumberOfGroups int        `json:"number_of_groups"`
	TrophyImageURL string     `json:"trophy_image_url,omitempty"`
	StartsAt       *time.Time `json:"starts_at,omitempty"`
}

type teamDTO struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	LogoURL string `json:"logo_url,omitempty"`
}

type matchDTO struct {
	ID               string     `json:"id"`
	TournamentID     string     `json:"tournament_id"`
	Stage            string     `json:"stage"`
	StageLabel       string     `json:"stage_label"`
	Round            *int       `json:"round,omitempty"`
	GroupNumber      *int       `json:"group_number,omitempty"`
	BracketPosition  *int       `json:"bracket_position,omitempty"`
	HomeTeam         *teamDTO   `json:"home_team,omitempty"`
	AwayTeam         *teamDTO   `json:"away_team,omitempty"`
	HomeTeamSource   string     `json:"home_team_source,omitempty"`
	AwayTeamSource   string     `json:"away_team_source,omitempty"`
	Status           string     `json:"status"`
	StatusLabel      string     `json:"status_label"`
	HomeScore        *int       `json:"home_score,omitempty"`
	AwayScore        *int       `json:"away_score,omitempty"`
	HomePenaltyScore *int       `json:"home_penalty_score,omitempty"`
	AwayPenaltyScore *int       `json:"away_penalty_score,omitempty"`
	MatchDate        *time.Time `json:"match_date,omitempty"`
	Venue            string     `json:"venue,omitempty"`
}

type pairingsDTO struct {
	NumberOfGroups int               `json:"number_of_groups"`
	Pairings       []bracket.Pairing `json:"pairings"`
}

type resolveBracketRequest struct {
	Tournament         *resolveTournamentRequest `json:"tournament"`
	GroupStageComplete bool                      `json:"group_stage_complete"`
	Matches            []resolveMatchRequest     `json:"matches" validate:"max=512,dive"`
}

type resolveTournamentRequest struct {
	ID             string `json:"id" validate:"max=128"`
	Name           string `json:"name" validate:"max=200"`
	NumberOfGroups *int   `json:"number_of_groups" validate:"omitempty,min=0,max=64"`
	TrophyImageURL string `json:"trophy_image_url" validate:"omitempty,url"`
}

type resolveTeamRequest struct {
	ID      string `json:"id" validate:"required,max=128"`
	Name    string `json:"name" validate:"max=200"`
	LogoURL string `json:"logo_url" validate:"omitempty,url"`
}

type resolveMatchRequest struct {
	ID               string              `json:"id" validate:"required,max=128"`
	Stage            string              `json:"stage" validate:"required,max=64"`
	Round            *int                `json:"round" validate:"omitempty,min=0"`
	GroupNumber      *int                `json:"group_number" validate:"omitempty,min=1"`
	BracketPosition  *int                `json:"bracket_position" validate:"omitempty,min=0"`
	HomeTeam         *resolveTeamRequest `json:"home_team"`
	AwayTeam         *resolveTeamRequest `json:"away_team"`
	HomeTeamSource   string              `json:"home_team_source" validate:"max=256"`
	AwayTeamSource   string              `json:"away_team_source" validate:"max=256"`
	Status           string              `json:"status" validate:"max=32"`
	HomeScore        *int                `json:"home_score" validate:"omitempty,min=0"`
	AwayScore        *int                `json:"away_score" validate:"omitempty,min=0"`
	HomePenaltyScore *int                `json:"home_penalty_score" validate:"omitempty,min=0"`
	AwayPenaltyScore *int                `json:"away_penalty_score" validate:"omitempty,min=0"`
	MatchDate        *time.Time          `json:"match_date"`
	Venue            string              `json:"venue" validate:"max=200"`
}

func tournamentToDTO(item tournament.Tournament) tournamentDTO {
	out := tournamentDTO{
		ID:             item.ID,
		Name:           item.Name,
		Sport:          item.Sport,
		NumberOfGroups: item.GroupCount(),
		TrophyImageURL: item.TrophyImageURL,
	}
	if !item.StartsAt.IsZero() {
		startsAt := item.StartsAt.UTC()
		out.StartsAt = &startsAt
	}
	return out
}

func teamToDTO(team *match.Team) *teamDTO {
	if team == nil {
		return nil
	}
	return &teamDTO{ID: team.ID, Name: team.Name, LogoURL: team.LogoURL}
}

func matchToDTO(item match.Match) matchDTO {
	out := matchDTO{
		ID:              item.ID,
		TournamentID:    item.TournamentID,
		Stage:           string(item.Stage),
		StageLabel:      bracket.StageLabel(item.Stage),
		Round:           item.Round,
		GroupNumber:     item.GroupNumber,
		BracketPosition: item.BracketPosition,
		HomeTeam:        teamToDTO(item.HomeTeam),
		AwayTeam:        teamToDTO(item.AwayTeam),
		HomeTeamSource:  item.HomeTeamSource,
		AwayTeamSource:  item.AwayTeamSource,
		Status:          string(item.Status),
		StatusLabel:     bracket.StatusLabel(item.Status),
		HomeScore:       item.HomeScore,
		AwayScore:       item.AwayScore,
		Venue:           item.Venue,
	}
	if item.Penalties != nil {
		home, away := item.Penalties.HomeScore, item.Penalties.AwayScore
		out.HomePenaltyScore = &home
		out.AwayPenaltyScore = &away
	}
	if !item.MatchDate.IsZero() {
		matchDate := item.MatchDate.UTC()
		out.MatchDate = &matchDate
	}
	return out
}

func (req resolveBracketRequest) toSnapshot() bracket.Snapshot {
	out := bracket.Snapshot{
		Matches:            make([]match.Match, 0, len(req.Matches)),
		GroupStageComplete: req.GroupStageComplete,
	}
	if req.Tournament != nil {
		out.Tournament = &tournament.Tournament{
			ID:             strings.TrimSpace(req.Tournament.ID),
			Name:           strings.TrimSpace(req.Tournament.Name),
			NumberOfGroups: req.Tournament.NumberOfGroups,
			TrophyImageURL: strings.TrimSpace(req.Tournament.TrophyImageURL),
		}
	}
	for _, item := range req.Matches {
		out.Matches = append(out.Matches, item.toDomain())
	}
	return out
}

func (req resolveMatchRequest) toDomain() match.Match {
	out := match.Match{
		ID:              strings.TrimSpace(req.ID),
		Stage:           match.Stage(strings.TrimSpace(req.Stage)),
		Round:           req.Round,
		GroupNumber:     req.GroupNumber,
		BracketPosition: req.BracketPosition,
		HomeTeam:        req.HomeTeam.toDomain(),
		AwayTeam:        req.AwayTeam.toDomain(),
		HomeTeamSource:  strings.TrimSpace(req.HomeTeamSource),
		AwayTeamSource:  strings.TrimSpace(req.AwayTeamSource),
		Status:          match.NormalizeStatus(req.Status),
		HomeScore:       req.HomeScore,
		AwayScore:       req.AwayScore,
		Venue:           strings.TrimSpace(req.Venue),
	}
	if req.HomePenaltyScore != nil && req.AwayPenaltyScore != nil {
		out.Penalties = &match.PenaltyOutcome{HomeScore: *req.HomePenaltyScore, AwayScore: *req.AwayPenaltyScore}
	}
	if req.MatchDate != nil {
		out.MatchDate = req.MatchDate.UTC()
	}
	return out
}

func (req *resolveTeamRequest) toDomain() *match.Team {
	if req == nil {
		return nil
	}
	return &match.Team{ID: strings.TrimSpace(req.ID), Name: req.Name, LogoURL: strings.TrimSpace(req.LogoURL)}
}

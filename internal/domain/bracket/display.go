package bracket

import (
	"strings"

	"github.com/riskibarqy/club-brackets/internal/domain/match"
)

type Side string

const (
	SideHome Side = "home"
	SideAway Side = "away"
)

// DisplayName picks the text rendered for one side of a card:
// the resolved team name, else the resolved source, else the expected seed position.
func DisplayName(m match.Match, side Side, index int, matches []match.Match, numGroups int) string {
	name, _ := displayName(m, side, index, matches, numGroups)
	return name
}

func displayName(m match.Match, side Side, index int, matches []match.Match, numGroups int) (string, bool) {
	team, source := m.HomeTeam, m.HomeTeamSource
	if side == SideAway {
		team, source = m.AwayTeam, m.AwayTeamSource
	}

	if team != nil && strings.TrimSpace(team.Name) != "" {
		return team.Name, false
	}
	if source != "" {
		if text := SourceText(source, matches); text != "" {
			return text, false
		}
	}
	return positionLabel(index, side == SideHome, m.Stage, numGroups)
}

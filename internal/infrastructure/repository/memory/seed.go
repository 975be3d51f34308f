package memory

import (
	"time"

	"github.com/riskibarqy/club-brackets/internal/domain/match"
	"github.com/riskibarqy/club-brackets/internal/domain/tournament"
)

const (
	TournamentIDFutsalCup     = "futsal-cup-2026"
	TournamentIDFiveASide     = "five-a-side-2026"
	TournamentIDTableTennis   = "table-tennis-2026"
	seedVenueMainHall         = "Main Hall"
	seedVenueRooftopPitch     = "Rooftop Pitch"
	seedVenueRecreationCentre = "Recreation Centre"
)

func SeedTournaments() []tournament.Tournament {
	fourGroups := 4
	return []tournament.Tournament{
		{
			ID:             TournamentIDFutsalCup,
			Name:           "Futsal Cup",
			Sport:          "futsal",
			NumberOfGroups: &fourGroups,
			TrophyImageURL: "https://cdn.example.com/trophies/futsal-cup.png",
			StartsAt:       time.Date(2026, 5, 4, 17, 0, 0, 0, time.UTC),
		},
		{
			ID:       TournamentIDFiveASide,
			Name:     "Five-a-side Invitational",
			Sport:    "football",
			StartsAt: time.Date(2026, 6, 12, 17, 0, 0, 0, time.UTC),
		},
		{
			ID:       TournamentIDTableTennis,
			Name:     "Table Tennis League",
			Sport:    "table_tennis",
			StartsAt: time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC),
		},
	}
}

func SeedMatches() []match.Match {
	out := make([]match.Match, 0, 24)
	out = append(out, seedFutsalCup()...)
	out = append(out, seedFiveASide()...)
	out = append(out, seedTableTennis()...)
	return out
}

func seedFutsalCup() []match.Match {
	day := time.Date(2026, 5, 4, 17, 0, 0, 0, time.UTC)
	groups := []struct {
		number int
		home   match.Team
		away   match.Team
		score  [2]int
	}{
		{number: 1, home: match.Team{ID: "t-finance", Name: "Finance"}, away: match.Team{ID: "t-legal", Name: "Legal"}, score: [2]int{3, 1}},
		{number: 2, home: match.Team{ID: "t-eng", Name: "Engineering"}, away: match.Team{ID: "t-design", Name: "Design"}, score: [2]int{2, 2}},
		{number: 3, home: match.Team{ID: "t-sales", Name: "Sales"}, away: match.Team{ID: "t-ops", Name: "Operations"}, score: [2]int{0, 1}},
		{number: 4, home: match.Team{ID: "t-hr", Name: "People"}, away: match.Team{ID: "t-support", Name: "Support"}, score: [2]int{4, 2}},
	}

	out := make([]match.Match, 0, 12)
	for i, g := range groups {
		home, away := g.home, g.away
		out = append(out, match.Match{
			ID:           "futsal-g" + string(rune('1'+i)),
			TournamentID: TournamentIDFutsalCup,
			Stage:        match.StageGroup,
			Round:        seedInt(1),
			GroupNumber:  seedInt(g.number),
			HomeTeam:     &home,
			AwayTeam:     &away,
			Status:       match.StatusCompleted,
			HomeScore:    seedInt(g.score[0]),
			AwayScore:    seedInt(g.score[1]),
			MatchDate:    day.Add(time.Duration(i) * time.Hour),
			Venue:        seedVenueMainHall,
		})
	}

	knockoutDay := day.AddDate(0, 0, 7)
	out = append(out,
		match.Match{
			ID: "futsal-qf1", TournamentID: TournamentIDFutsalCup, Stage: match.StageQuarterFinal, BracketPosition: seedInt(1),
			HomeTeam: &match.Team{ID: "t-finance", Name: "Finance"}, AwayTeam: &match.Team{ID: "t-design", Name: "Design"},
			HomeTeamSource: "WINNER_OF:futsal-g1", AwayTeamSource: "LOSER_OF:futsal-g2",
			Status: match.StatusCompleted, HomeScore: seedInt(2), AwayScore: seedInt(1),
			MatchDate: knockoutDay, Venue: seedVenueMainHall,
		},
		match.Match{
			ID: "futsal-qf2", TournamentID: TournamentIDFutsalCup, Stage: match.StageQuarterFinal, BracketPosition: seedInt(2),
			HomeTeamSource: "WINNER_OF:futsal-g2", AwayTeamSource: "LOSER_OF:futsal-g1",
			Status: match.StatusScheduled, MatchDate: knockoutDay.Add(time.Hour), Venue: seedVenueMainHall,
		},
		match.Match{
			ID: "futsal-qf3", TournamentID: TournamentIDFutsalCup, Stage: match.StageQuarterFinal, BracketPosition: seedInt(3),
			Status: match.StatusScheduled, MatchDate: knockoutDay.Add(2 * time.Hour), Venue: seedVenueMainHall,
		},
		match.Match{
			ID: "futsal-qf4", TournamentID: TournamentIDFutsalCup, Stage: match.StageQuarterFinal, BracketPosition: seedInt(4),
			Status: match.StatusPostponed, Venue: seedVenueMainHall,
		},
		match.Match{
			ID: "futsal-sf1", TournamentID: TournamentIDFutsalCup, Stage: match.StageSemiFinal, BracketPosition: seedInt(1),
			HomeTeamSource: "WINNER_OF:futsal-qf1", AwayTeamSource: "WINNER_OF:futsal-qf2",
			Status: match.StatusScheduled, MatchDate: knockoutDay.AddDate(0, 0, 7), Venue: seedVenueMainHall,
		},
		match.Match{
			ID: "futsal-sf2", TournamentID: TournamentIDFutsalCup, Stage: match.StageSemiFinal, BracketPosition: seedInt(2),
			HomeTeamSource: "WINNER_OF:futsal-qf3", AwayTeamSource: "WINNER_OF:futsal-qf4",
			Status: match.StatusScheduled, MatchDate: knockoutDay.AddDate(0, 0, 7).Add(time.Hour), Venue: seedVenueMainHall,
		},
		match.Match{
			ID: "futsal-final", TournamentID: TournamentIDFutsalCup, Stage: match.StageFinal,
			HomeTeamSource: "WINNER_OF:futsal-sf1", AwayTeamSource: "WINNER_OF:futsal-sf2",
			Status: match.StatusScheduled, MatchDate: knockoutDay.AddDate(0, 0, 14), Venue: seedVenueMainHall,
		},
		match.Match{
			ID: "futsal-third", TournamentID: TournamentIDFutsalCup, Stage: match.StageThirdPlace,
			HomeTeamSource: "LOSER_OF:futsal-sf1", AwayTeamSource: "LOSER_OF:futsal-sf2",
			Status: match.StatusScheduled, MatchDate: knockoutDay.AddDate(0, 0, 14).Add(-2 * time.Hour), Venue: seedVenueMainHall,
		},
	)
	return out
}

func seedFiveASide() []match.Match {
	day := time.Date(2026, 6, 12, 17, 0, 0, 0, time.UTC)
	marketing := match.Team{ID: "t-marketing", Name: "Marketing"}
	data := match.Team{ID: "t-data", Name: "Data"}
	security := match.Team{ID: "t-security", Name: "Security"}
	platform := match.Team{ID: "t-platform", Name: "Platform"}

	return []match.Match{
		{
			ID: "five-sf1", TournamentID: TournamentIDFiveASide, Stage: match.StageSemiFinal, BracketPosition: seedInt(1),
			HomeTeam: &marketing, AwayTeam: &data, HomeTeamSource: "SEED:1", AwayTeamSource: "SEED:4",
			Status: match.StatusCompleted, HomeScore: seedInt(1), AwayScore: seedInt(3),
			MatchDate: day, Venue: seedVenueRooftopPitch,
		},
		{
			ID: "five-sf2", TournamentID: TournamentIDFiveASide, Stage: match.StageSemiFinal, BracketPosition: seedInt(2),
			HomeTeam: &security, AwayTeam: &platform, HomeTeamSource: "SEED:2", AwayTeamSource: "SEED:3",
			Status: match.StatusCompleted, HomeScore: seedInt(2), AwayScore: seedInt(0),
			MatchDate: day.Add(time.Hour), Venue: seedVenueRooftopPitch,
		},
		{
			ID: "five-final", TournamentID: TournamentIDFiveASide, Stage: match.StageFinal,
			HomeTeam: &data, AwayTeam: &security, HomeTeamSource: "WINNER_OF:five-sf1", AwayTeamSource: "WINNER_OF:five-sf2",
			Status: match.StatusCompleted, HomeScore: seedInt(2), AwayScore: seedInt(2),
			Penalties: &match.PenaltyOutcome{HomeScore: 4, AwayScore: 3},
			MatchDate: day.AddDate(0, 0, 7), Venue: seedVenueRooftopPitch,
		},
	}
}

func seedTableTennis() []match.Match {
	day := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	return []match.Match{
		{
			ID: "tt-g1", TournamentID: TournamentIDTableTennis, Stage: match.StageGroup, Round: seedInt(1), GroupNumber: seedInt(1),
			HomeTeam: &match.Team{ID: "p-rina", Name: "Rina"}, AwayTeam: &match.Team{ID: "p-bayu", Name: "Bayu"},
			Status: match.StatusCompleted, HomeScore: seedInt(3), AwayScore: seedInt(1),
			MatchDate: day, Venue: seedVenueRecreationCentre,
		},
		{
			ID: "tt-g2", TournamentID: TournamentIDTableTennis, Stage: match.StageGroup, Round: seedInt(1), GroupNumber: seedInt(2),
			HomeTeam: &match.Team{ID: "p-sari", Name: "Sari"}, AwayTeam: &match.Team{ID: "p-dimas", Name: "Dimas"},
			Status: match.StatusLive, HomeScore: seedInt(1), AwayScore: seedInt(1),
			MatchDate: day.Add(30 * time.Minute), Venue: seedVenueRecreationCentre,
		},
	}
}

func seedInt(v int) *int {
	return &v
}

package bracket

import (
	"testing"

	"github.com/riskibarqy/club-brackets/internal/domain/match"
)

func TestGeneratePairings_FourGroups(t *testing.T) {
	t.Parallel()

	got := GeneratePairings(4)
	want := []Pairing{
		{Home: "A1", Away: "B2"},
		{Home: "B1", Away: "A2"},
		{Home: "C1", Away: "D2"},
		{Home: "D1", Away: "C2"},
	}
	if len(got) != len(want) {
		t.Fatalf("unexpected pairing count: got=%d want=%d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("pairing %d: got=%+v want=%+v", i, got[i], want[i])
		}
	}
}

func TestGeneratePairings_EvenCountsProduceOnePairingPerGroup(t *testing.T) {
	t.Parallel()

	for _, n := range []int{2, 4, 6, 8, 10} {
		if got := len(GeneratePairings(n)); got != n {
			t.Fatalf("numGroups=%d: got %d pairings", n, got)
		}
	}
}

func TestGeneratePairings_OddCountDropsTrailingGroup(t *testing.T) {
	t.Parallel()

	got := GeneratePairings(3)
	if len(got) != 2 {
		t.Fatalf("expected trailing group to be dropped, got %d pairings", len(got))
	}
	for _, p := range got {
		if p.Home == "C1" || p.Away == "C2" {
			t.Fatalf("group C must not be paired: %+v", p)
		}
	}
	if len(GeneratePairings(1)) != 0 || len(GeneratePairings(0)) != 0 || len(GeneratePairings(-2)) != 0 {
		t.Fatalf("expected no pairings below two groups")
	}
}

func TestGroupLetter(t *testing.T) {
	t.Parallel()

	if GroupLetter(1) != "A" || GroupLetter(8) != "H" {
		t.Fatalf("unexpected letter mapping")
	}
	if got := GroupLetter(9); got != "9" {
		t.Fatalf("expected numeric fallback, got %q", got)
	}
	if got := GroupLetter(0); got != "0" {
		t.Fatalf("expected numeric fallback, got %q", got)
	}
}

func TestPositionLabel(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name   string
		index  int
		isHome bool
		stage  match.Stage
		groups int
		want   string
	}{
		{name: "final home", index: 5, isHome: true, stage: match.StageFinal, groups: 4, want: "winner of semi-final 1"},
		{name: "final away", index: 0, isHome: false, stage: match.StageFinal, groups: 4, want: "winner of semi-final 2"},
		{name: "third place home", index: 3, isHome: true, stage: match.StageThirdPlace, groups: 4, want: "loser 1"},
		{name: "third place away", index: 0, isHome: false, stage: match.StageThirdPlace, groups: 4, want: "loser 2"},
		{name: "quarter-final in range", index: 0, isHome: true, stage: match.StageQuarterFinal, groups: 4, want: "A1"},
		{name: "quarter-final in range away", index: 1, isHome: false, stage: match.StageQuarterFinal, groups: 4, want: "A2"},
		{name: "fallback even index home", index: 2, isHome: true, stage: match.StageSemiFinal, groups: 2, want: "C1"},
		{name: "fallback even index away", index: 2, isHome: false, stage: match.StageSemiFinal, groups: 2, want: "D2"},
		{name: "fallback odd index home", index: 3, isHome: true, stage: match.StageSemiFinal, groups: 2, want: "D1"},
		{name: "fallback odd index away", index: 3, isHome: false, stage: match.StageSemiFinal, groups: 2, want: "C2"},
		{name: "fallback with odd groups", index: 2, isHome: true, stage: match.StageQuarterFinal, groups: 3, want: "C1"},
		{name: "fallback beyond letters", index: 8, isHome: false, stage: match.StageRoundOf16, groups: 0, want: "102"},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if got := PositionLabel(tc.index, tc.isHome, tc.stage, tc.groups); got != tc.want {
				t.Fatalf("got=%q want=%q", got, tc.want)
			}
		})
	}
}

func TestPositionLabel_ReportsFallback(t *testing.T) {
	t.Parallel()

	if _, fallback := positionLabel(1, true, match.StageQuarterFinal, 4); fallback {
		t.Fatalf("in-range index must not report fallback")
	}
	if _, fallback := positionLabel(4, true, match.StageQuarterFinal, 4); !fallback {
		t.Fatalf("out-of-range index must report fallback")
	}
	if _, fallback := positionLabel(9, true, match.StageFinal, 4); fallback {
		t.Fatalf("final labels are fixed and never fall back")
	}
}

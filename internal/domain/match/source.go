package match

import "strings"

// SourceKind identifies how an unresolved slot will be filled.
type SourceKind string

const (
	SourceWinnerOf SourceKind = "WINNER_OF"
	SourceLoserOf  SourceKind = "LOSER_OF"
	SourceSeed     SourceKind = "SEED"
)

// Source is the parsed form of a slot source such as "WINNER_OF:m-12" or "SEED:3".
type Source struct {
	Kind SourceKind
	Ref  string
}

// ParseSource splits raw into kind and reference. The kind must match exactly.
// It returns false for empty input, an unknown kind, or a missing reference.
func ParseSource(raw string) (Source, bool) {
	kind, ref, found := strings.Cut(raw, ":")
	if !found {
		return Source{}, false
	}

	switch SourceKind(kind) {
	case SourceWinnerOf, SourceLoserOf, SourceSeed:
	default:
		return Source{}, false
	}
	if ref == "" {
		return Source{}, false
	}

	return Source{Kind: SourceKind(kind), Ref: ref}, true
}

func (s Source) String() string {
	return string(s.Kind) + ":" + s.Ref
}

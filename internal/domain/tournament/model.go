package tournament

import (
	"fmt"
	"time"
)

const DefaultNumberOfGroups = 2

// Tournament is a club competition whose knockout phase is rendered as a bracket.
type Tournament struct {
	ID             string
	Name           string
	Sport          string
	NumberOfGroups *int
	TrophyImageURL string
	StartsAt       time.Time
	CreatedAt      time.Time
}

// GroupCount returns the configured number of groups or DefaultNumberOfGroups.
func (t Tournament) GroupCount() int {
	if t.NumberOfGroups == nil {
		return DefaultNumberOfGroups
	}
	return *t.NumberOfGroups
}

func (t Tournament) Validate() error {
	if t.ID == "" {
		return fmt.Errorf("tournament id is required")
	}
	if t.Name == "" {
		return fmt.Errorf("tournament name is required")
	}
	if t.NumberOfGroups != nil && *t.NumberOfGroups < 0 {
		return fmt.Errorf("tournament number of groups must be >= 0")
	}

	return nil
}

package postgres

import (
	"database/sql"
	"time"
)

type tournamentTableModel struct {
	ID             int64          `db:"id"`
	PublicID       string         `db:"public_id"`
	Name           string         `db:"name"`
	Sport          string         `db:"sport"`
	NumberOfGroups sql.NullInt64  `db:"number_of_groups"`
	TrophyImageURL sql.NullString `db:"trophy_image_url"`
	StartsAt       sql.NullTime   `db:"starts_at"`
	CreatedAt      time.Time      `db:"created_at"`
	UpdatedAt      time.Time      `db:"updated_at"`
	DeletedAt      *time.Time     `db:"deleted_at"`
}

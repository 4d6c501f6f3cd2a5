package repository

import (
	"time"

	"github.com/jackc/pgx/v5/pgtype"
)

func nullableString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func timestamptz(t *time.Time) pgtype.Timestamptz {
	if t == nil {
		return pgtype.Timestamptz{}
	}
	return pgtype.Timestamptz{Time: *t, Valid: true}
}

func timePtr(t pgtype.Timestamptz) *time.Time {
	if !t.Valid {
		return nil
	}
	v := t.Time
	return &v
}

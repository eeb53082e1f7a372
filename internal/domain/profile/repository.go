package profile

import (
	"context"
	"time"
)

type Repository interface {
	Create(ctx context.Context, p Profile) (Profile, error)
	// GetEffective returns the profile whose effective range covers the whole
	// settlement period, preferring the most recent effective_from.
	GetEffective(ctx context.Context, teacherID string, periodStart, periodEnd time.Time) (Profile, error)
	ListByTeacher(ctx context.Context, teacherID string) ([]Profile, error)
}

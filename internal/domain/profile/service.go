package profile

import "context"

type ProfileService interface {
	CreateProfile(ctx context.Context, req CreateProfileRequest) (ProfileResponse, error)
	ListProfiles(ctx context.Context, teacherID string) ([]ProfileResponse, error)
}

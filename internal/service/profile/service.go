package profile

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/edupay/edupay-backend-go/internal/domain/profile"
)

type ProfileServiceImpl struct {
	profileRepo profile.Repository
	loc         *time.Location
}

func NewProfileService(profileRepo profile.Repository, loc *time.Location) profile.ProfileService {
	return &ProfileServiceImpl{profileRepo: profileRepo, loc: loc}
}

func (s *ProfileServiceImpl) CreateProfile(ctx context.Context, req profile.CreateProfileRequest) (profile.ProfileResponse, error) {
	if err := req.Validate(); err != nil {
		return profile.ProfileResponse{}, err
	}

	effectiveFrom, _ := time.ParseInLocation("2006-01-02", req.EffectiveFrom, s.loc)
	var effectiveTo *time.Time
	if req.EffectiveTo != nil {
		parsed, _ := time.ParseInLocation("2006-01-02", *req.EffectiveTo, s.loc)
		if parsed.Before(effectiveFrom) {
			return profile.ProfileResponse{}, profile.ErrEffectiveRangeFlip
		}
		effectiveTo = &parsed
	}

	insuranceEnrolled := false
	if req.InsuranceEnrolled != nil {
		insuranceEnrolled = *req.InsuranceEnrolled
	}

	prof := profile.Profile{
		ID:                uuid.NewString(),
		TeacherID:         req.TeacherID,
		HourlyRate:        req.HourlyRate,
		BaseSalaryAmount:  req.BaseSalaryAmount,
		ContractType:      profile.ContractType(req.ContractType),
		InsuranceEnrolled: insuranceEnrolled,
		EffectiveFrom:     effectiveFrom,
		EffectiveTo:       effectiveTo,
	}

	created, err := s.profileRepo.Create(ctx, prof)
	if err != nil {
		return profile.ProfileResponse{}, fmt.Errorf("failed to create pay profile: %w", err)
	}
	return mapProfileResponse(created), nil
}

func (s *ProfileServiceImpl) ListProfiles(ctx context.Context, teacherID string) ([]profile.ProfileResponse, error) {
	profiles, err := s.profileRepo.ListByTeacher(ctx, teacherID)
	if err != nil {
		return nil, fmt.Errorf("failed to list pay profiles: %w", err)
	}

	result := make([]profile.ProfileResponse, 0, len(profiles))
	for _, prof := range profiles {
		result = append(result, mapProfileResponse(prof))
	}
	return result, nil
}

func mapProfileResponse(prof profile.Profile) profile.ProfileResponse {
	var effectiveTo *string
	if prof.EffectiveTo != nil {
		str := prof.EffectiveTo.Format("2006-01-02")
		effectiveTo = &str
	}
	return profile.ProfileResponse{
		ID:                prof.ID,
		TeacherID:         prof.TeacherID,
		HourlyRate:        prof.HourlyRate,
		BaseSalaryAmount:  prof.BaseSalaryAmount,
		ContractType:      string(prof.ContractType),
		InsuranceEnrolled: prof.InsuranceEnrolled,
		EffectiveFrom:     prof.EffectiveFrom.Format("2006-01-02"),
		EffectiveTo:       effectiveTo,
	}
}

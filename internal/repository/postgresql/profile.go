package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/edupay/edupay-backend-go/internal/domain/profile"
	"github.com/edupay/edupay-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

type profileRepository struct {
	db *database.DB
}

func NewProfileRepository(db *database.DB) profile.Repository {
	return &profileRepository{db: db}
}

const profileColumns = `id, teacher_id, hourly_rate, base_salary_amount, contract_type,
	insurance_enrolled, effective_from, effective_to, created_at, updated_at`

func scanProfile(row pgx.Row) (profile.Profile, error) {
	var p profile.Profile
	var baseSalary decimal.NullDecimal
	err := row.Scan(
		&p.ID, &p.TeacherID, &p.HourlyRate, &baseSalary, &p.ContractType,
		&p.InsuranceEnrolled, &p.EffectiveFrom, &p.EffectiveTo, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return profile.Profile{}, err
	}
	if baseSalary.Valid {
		p.BaseSalaryAmount = &baseSalary.Decimal
	}
	return p, nil
}

func (r *profileRepository) Create(ctx context.Context, p profile.Profile) (profile.Profile, error) {
	query := `
		INSERT INTO teacher_pay_profiles (
			id, teacher_id, hourly_rate, base_salary_amount, contract_type,
			insurance_enrolled, effective_from, effective_to
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING ` + profileColumns

	baseSalary := decimal.NullDecimal{}
	if p.BaseSalaryAmount != nil {
		baseSalary = decimal.NullDecimal{Decimal: *p.BaseSalaryAmount, Valid: true}
	}

	created, err := scanProfile(r.db.Pool.QueryRow(ctx, query,
		p.ID, p.TeacherID, p.HourlyRate, baseSalary, p.ContractType,
		p.InsuranceEnrolled, p.EffectiveFrom, p.EffectiveTo,
	))
	if err != nil {
		return profile.Profile{}, fmt.Errorf("failed to create pay profile: %w", err)
	}
	return created, nil
}

func (r *profileRepository) GetEffective(ctx context.Context, teacherID string, periodStart, periodEnd time.Time) (profile.Profile, error) {
	query := `
		SELECT ` + profileColumns + `
		FROM teacher_pay_profiles
		WHERE teacher_id = $1
		  AND effective_from <= $2
		  AND (effective_to IS NULL OR effective_to >= $3)
		ORDER BY effective_from DESC
		LIMIT 1
	`

	p, err := scanProfile(r.db.Pool.QueryRow(ctx, query, teacherID, periodStart, periodEnd))
	if err != nil {
		if err == pgx.ErrNoRows {
			return profile.Profile{}, profile.ErrProfileNotFound
		}
		return profile.Profile{}, fmt.Errorf("failed to get effective pay profile: %w", err)
	}
	return p, nil
}

func (r *profileRepository) ListByTeacher(ctx context.Context, teacherID string) ([]profile.Profile, error) {
	query := `
		SELECT ` + profileColumns + `
		FROM teacher_pay_profiles
		WHERE teacher_id = $1
		ORDER BY effective_from DESC
	`

	rows, err := r.db.Pool.Query(ctx, query, teacherID)
	if err != nil {
		return nil, fmt.Errorf("failed to list pay profiles: %w", err)
	}
	defer rows.Close()

	var profiles []profile.Profile
	for rows.Next() {
		p, err := scanProfile(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan pay profile: %w", err)
		}
		profiles = append(profiles, p)
	}
	return profiles, rows.Err()
}

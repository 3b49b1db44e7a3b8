package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"event-experience/internal/model"
	apperrors "event-experience/pkg/app_errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const organizerProfileColumns = `user_id, display_name, profile_picture, phone, bio, created_at, updated_at`

type OrganizerProfileRepository interface {
	Create(ctx context.Context, profile *model.OrganizerProfile) (*model.OrganizerProfile, error)
	FindByUserID(ctx context.Context, userID int) (*model.OrganizerProfile, error)
	Update(ctx context.Context, userID int, params model.UpdateOrganizerProfileParams) (*model.OrganizerProfile, error)
	Delete(ctx context.Context, userID int) (bool, error)
}

type OrganizerProfileRepositoryImpl struct {
	pool *pgxpool.Pool
}

func NewOrganizerProfileRepository(pool *pgxpool.Pool) OrganizerProfileRepository {
	return &OrganizerProfileRepositoryImpl{
		pool: pool,
	}
}

func scanOrganizerProfile(row pgx.Row, profile *model.OrganizerProfile) error {
	return row.Scan(
		&profile.UserID,
		&profile.DisplayName,
		&profile.ProfilePicture,
		&profile.Phone,
		&profile.Bio,
		&profile.CreatedAt,
		&profile.UpdatedAt,
	)
}

func (r *OrganizerProfileRepositoryImpl) Create(ctx context.Context, profile *model.OrganizerProfile) (*model.OrganizerProfile, error) {
	query := fmt.Sprintf(`
		INSERT INTO organizer_profiles (user_id, display_name, profile_picture, phone, bio)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING %s
	`, organizerProfileColumns)

	err := scanOrganizerProfile(r.pool.QueryRow(ctx, query,
		profile.UserID, profile.DisplayName, profile.ProfilePicture, profile.Phone, profile.Bio,
	), profile)

	if err != nil {
		return nil, err
	}

	return profile, nil
}

func (r *OrganizerProfileRepositoryImpl) FindByUserID(ctx context.Context, userID int) (*model.OrganizerProfile, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM organizer_profiles
		WHERE user_id = $1
	`, organizerProfileColumns)

	var profile model.OrganizerProfile
	err := scanOrganizerProfile(r.pool.QueryRow(ctx, query, userID), &profile)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.ErrOrganizerProfileNotFound
		}
		return nil, err
	}

	return &profile, nil
}

func (r *OrganizerProfileRepositoryImpl) Update(ctx context.Context, userID int, params model.UpdateOrganizerProfileParams) (*model.OrganizerProfile, error) {
	sets := []string{}
	args := []interface{}{}
	argPos := 1

	if params.DisplayName != nil {
		sets = append(sets, fmt.Sprintf("display_name = $%d", argPos))
		args = append(args, *params.DisplayName)
		argPos++
	}

	if params.ProfilePicture != nil {
		sets = append(sets, fmt.Sprintf("profile_picture = $%d", argPos))
		args = append(args, *params.ProfilePicture)
		argPos++
	}

	if params.Phone != nil {
		sets = append(sets, fmt.Sprintf("phone = $%d", argPos))
		args = append(args, *params.Phone)
		argPos++
	}

	if params.Bio != nil {
		sets = append(sets, fmt.Sprintf("bio = $%d", argPos))
		args = append(args, *params.Bio)
		argPos++
	}

	if len(sets) == 0 {
		return nil, apperrors.ErrInvalidInput
	}

	// add updated_at
	sets = append(sets, fmt.Sprintf("updated_at = $%d", argPos))
	args = append(args, time.Now().UTC())
	argPos++

	// add user_id
	args = append(args, userID)

	query := fmt.Sprintf(`
		UPDATE organizer_profiles
		SET %s
		WHERE user_id = $%d
		RETURNING %s
	`, strings.Join(sets, ", "), argPos, organizerProfileColumns)

	var profile model.OrganizerProfile
	err := scanOrganizerProfile(r.pool.QueryRow(ctx, query, args...), &profile)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.ErrOrganizerProfileNotFound
		}
		return nil, err
	}

	return &profile, nil
}

// Delete removes the row outright so the organizer can start a fresh profile
// later; the user id is the primary key.
func (r *OrganizerProfileRepositoryImpl) Delete(ctx context.Context, userID int) (bool, error) {
	query := `
		DELETE FROM organizer_profiles
		WHERE user_id = $1
	`

	result, err := r.pool.Exec(ctx, query, userID)
	if err != nil {
		return false, err
	}

	return result.RowsAffected() > 0, nil
}

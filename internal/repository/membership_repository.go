package repository

import (
	"context"

	"event-experience/internal/model"
	apperrors "event-experience/pkg/app_errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// MembershipRepository manages the (organization_id, user_id) association.
// Membership rows carry no payload, so there is no update operation.
type MembershipRepository interface {
	Create(ctx context.Context, member *model.OrganizationMember) (*model.OrganizationMember, error)
	Find(ctx context.Context, organizationID, userID int) (*model.OrganizationMember, error)
	ListByOrganizationID(ctx context.Context, organizationID int) ([]*model.OrganizationMember, error)
	Delete(ctx context.Context, organizationID, userID int) (bool, error)
}

type MembershipRepositoryImpl struct {
	pool *pgxpool.Pool
}

func NewMembershipRepository(pool *pgxpool.Pool) MembershipRepository {
	return &MembershipRepositoryImpl{
		pool: pool,
	}
}

func (r *MembershipRepositoryImpl) Create(ctx context.Context, member *model.OrganizationMember) (*model.OrganizationMember, error) {
	query := `
		INSERT INTO organization_members (organization_id, user_id)
		VALUES ($1, $2)
		RETURNING organization_id, user_id, created_at
	`
	err := r.pool.QueryRow(ctx, query,
		member.OrganizationID, member.UserID,
	).Scan(
		&member.OrganizationID,
		&member.UserID,
		&member.CreatedAt,
	)

	if err != nil {
		return nil, err
	}

	return member, nil
}

func (r *MembershipRepositoryImpl) Find(ctx context.Context, organizationID, userID int) (*model.OrganizationMember, error) {
	query := `
		SELECT organization_id, user_id, created_at
		FROM organization_members
		WHERE organization_id = $1 AND user_id = $2
	`

	var member model.OrganizationMember
	err := r.pool.QueryRow(ctx, query, organizationID, userID).Scan(
		&member.OrganizationID,
		&member.UserID,
		&member.CreatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.ErrMembershipNotFound
		}
		return nil, err
	}

	return &member, nil
}

func (r *MembershipRepositoryImpl) ListByOrganizationID(ctx context.Context, organizationID int) ([]*model.OrganizationMember, error) {
	query := `
		SELECT organization_id, user_id, created_at
		FROM organization_members
		WHERE organization_id = $1
		ORDER BY created_at DESC
	`

	rows, err := r.pool.Query(ctx, query, organizationID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	members := make([]*model.OrganizationMember, 0)
	for rows.Next() {
		var member model.OrganizationMember
		err := rows.Scan(
			&member.OrganizationID,
			&member.UserID,
			&member.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		members = append(members, &member)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return members, nil
}

func (r *MembershipRepositoryImpl) Delete(ctx context.Context, organizationID, userID int) (bool, error) {
	query := `
		DELETE FROM organization_members
		WHERE organization_id = $1 AND user_id = $2
	`

	result, err := r.pool.Exec(ctx, query, organizationID, userID)
	if err != nil {
		return false, err
	}

	return result.RowsAffected() > 0, nil
}

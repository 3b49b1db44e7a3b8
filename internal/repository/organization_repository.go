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

type OrganizationRepository interface {
	Create(ctx context.Context, org *model.Organization) (*model.Organization, error)
	List(ctx context.Context) ([]*model.Organization, error)
	FindByID(ctx context.Context, id int) (*model.Organization, error)
	Update(ctx context.Context, id int, params model.UpdateOrganizationParams) (*model.Organization, error)
	Delete(ctx context.Context, id int) (bool, error)
}

type OrganizationRepositoryImpl struct {
	pool *pgxpool.Pool
}

func NewOrganizationRepository(pool *pgxpool.Pool) OrganizationRepository {
	return &OrganizationRepositoryImpl{
		pool: pool,
	}
}

func (r *OrganizationRepositoryImpl) Create(ctx context.Context, org *model.Organization) (*model.Organization, error) {
	query := `
		INSERT INTO organizations (title, description, status)
		VALUES ($1, $2, $3)
		RETURNING id, title, description, status, created_at, updated_at
	`
	err := r.pool.QueryRow(ctx, query,
		org.Title, org.Description, org.Status,
	).Scan(
		&org.ID,
		&org.Title,
		&org.Description,
		&org.Status,
		&org.CreatedAt,
		&org.UpdatedAt,
	)

	if err != nil {
		return nil, err
	}

	return org, nil
}

func (r *OrganizationRepositoryImpl) List(ctx context.Context) ([]*model.Organization, error) {
	query := `
		SELECT id, title, description, status, created_at, updated_at
		FROM organizations
		WHERE deleted_at IS NULL
		ORDER BY created_at DESC
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orgs := make([]*model.Organization, 0)
	for rows.Next() {
		var org model.Organization
		err := rows.Scan(
			&org.ID,
			&org.Title,
			&org.Description,
			&org.Status,
			&org.CreatedAt,
			&org.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		orgs = append(orgs, &org)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return orgs, nil
}

func (r *OrganizationRepositoryImpl) FindByID(ctx context.Context, id int) (*model.Organization, error) {
	query := `
		SELECT id, title, description, status, created_at, updated_at
		FROM organizations
		WHERE id = $1 AND deleted_at IS NULL
	`

	var org model.Organization
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&org.ID,
		&org.Title,
		&org.Description,
		&org.Status,
		&org.CreatedAt,
		&org.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.ErrOrganizationNotFound
		}
		return nil, err
	}

	return &org, nil
}

func (r *OrganizationRepositoryImpl) Update(ctx context.Context, id int, params model.UpdateOrganizationParams) (*model.Organization, error) {
	sets := []string{}
	args := []interface{}{}
	argPos := 1

	if params.Title != nil {
		sets = append(sets, fmt.Sprintf("title = $%d", argPos))
		args = append(args, *params.Title)
		argPos++
	}

	if params.Description != nil {
		sets = append(sets, fmt.Sprintf("description = $%d", argPos))
		args = append(args, *params.Description)
		argPos++
	}

	if params.Status != nil {
		sets = append(sets, fmt.Sprintf("status = $%d", argPos))
		args = append(args, *params.Status)
		argPos++
	}

	if len(sets) == 0 {
		return nil, apperrors.ErrInvalidInput
	}

	// add updated_at
	sets = append(sets, fmt.Sprintf("updated_at = $%d", argPos))
	args = append(args, time.Now().UTC())
	argPos++

	// add id
	args = append(args, id)

	query := fmt.Sprintf(`
		UPDATE organizations
		SET %s
		WHERE id = $%d AND deleted_at IS NULL
		RETURNING id, title, description, status, created_at, updated_at
	`, strings.Join(sets, ", "), argPos)

	var org model.Organization
	err := r.pool.QueryRow(ctx, query, args...).Scan(
		&org.ID,
		&org.Title,
		&org.Description,
		&org.Status,
		&org.CreatedAt,
		&org.UpdatedAt,
	)

	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.ErrOrganizationNotFound
		}
		return nil, err
	}

	return &org, nil
}

func (r *OrganizationRepositoryImpl) Delete(ctx context.Context, id int) (bool, error) {
	query := `
		UPDATE organizations
		SET deleted_at = $1, updated_at = $2
		WHERE id = $3 AND deleted_at IS NULL
	`

	now := time.Now().UTC()
	result, err := r.pool.Exec(ctx, query, now, now, id)
	if err != nil {
		return false, err
	}

	return result.RowsAffected() > 0, nil
}

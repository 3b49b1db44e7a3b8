package service

import (
	"context"
	"errors"

	"event-experience/internal/model"
	"event-experience/internal/repository"
	apperrors "event-experience/pkg/app_errors"
)

type UserService interface {
	List(ctx context.Context) ([]*model.User, error)
	GetByID(ctx context.Context, id int) (*model.User, error)
	Create(ctx context.Context, user *model.User) (*model.User, error)
	Update(ctx context.Context, id int, params model.UpdateUserParams) (*model.User, error)
	Delete(ctx context.Context, id int) (bool, error)
}

type UserServiceImpl struct {
	repo repository.UserRepository
}

func NewUserService(repo repository.UserRepository) UserService {
	return &UserServiceImpl{repo: repo}
}

func (s *UserServiceImpl) List(ctx context.Context) ([]*model.User, error) {
	return s.repo.List(ctx)
}

func (s *UserServiceImpl) GetByID(ctx context.Context, id int) (*model.User, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *UserServiceImpl) Create(ctx context.Context, user *model.User) (*model.User, error) {
	if user.Username == "" || user.Password == "" || user.Email == "" {
		return nil, apperrors.ErrInvalidInput
	}

	// surface a taken username/email as a client error, not a constraint
	// violation from the store
	if err := s.ensureAvailable(ctx, user.Username, user.Email); err != nil {
		return nil, err
	}

	return s.repo.Create(ctx, user)
}

func (s *UserServiceImpl) ensureAvailable(ctx context.Context, username, email string) error {
	if _, err := s.repo.FindByUsername(ctx, username); err == nil {
		return apperrors.ErrUserAlreadyExists
	} else if !errors.Is(err, apperrors.ErrUserNotFound) {
		return err
	}

	if _, err := s.repo.FindByEmail(ctx, email); err == nil {
		return apperrors.ErrUserAlreadyExists
	} else if !errors.Is(err, apperrors.ErrUserNotFound) {
		return err
	}

	return nil
}

func (s *UserServiceImpl) Update(ctx context.Context, id int, params model.UpdateUserParams) (*model.User, error) {
	return s.repo.Update(ctx, id, params)
}

func (s *UserServiceImpl) Delete(ctx context.Context, id int) (bool, error) {
	return s.repo.Delete(ctx, id)
}

package service

import (
	"context"

	"event-experience/internal/model"
	"event-experience/internal/repository"
)

type OrganizationService interface {
	List(ctx context.Context) ([]*model.Organization, error)
	GetByID(ctx context.Context, id int) (*model.Organization, error)
	Create(ctx context.Context, org *model.Organization) (*model.Organization, error)
	Update(ctx context.Context, id int, params model.UpdateOrganizationParams) (*model.Organization, error)
	Delete(ctx context.Context, id int) (bool, error)

	AddMember(ctx context.Context, organizationID, userID int) (*model.OrganizationMember, error)
	GetMember(ctx context.Context, organizationID, userID int) (*model.OrganizationMember, error)
	ListMembers(ctx context.Context, organizationID int) ([]*model.OrganizationMember, error)
	RemoveMember(ctx context.Context, organizationID, userID int) (bool, error)
}

type OrganizationServiceImpl struct {
	repo       repository.OrganizationRepository
	memberRepo repository.MembershipRepository
}

func NewOrganizationService(repo repository.OrganizationRepository, memberRepo repository.MembershipRepository) OrganizationService {
	return &OrganizationServiceImpl{
		repo:       repo,
		memberRepo: memberRepo,
	}
}

func (s *OrganizationServiceImpl) List(ctx context.Context) ([]*model.Organization, error) {
	return s.repo.List(ctx)
}

func (s *OrganizationServiceImpl) GetByID(ctx context.Context, id int) (*model.Organization, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *OrganizationServiceImpl) Create(ctx context.Context, org *model.Organization) (*model.Organization, error) {
	return s.repo.Create(ctx, org)
}

func (s *OrganizationServiceImpl) Update(ctx context.Context, id int, params model.UpdateOrganizationParams) (*model.Organization, error) {
	return s.repo.Update(ctx, id, params)
}

func (s *OrganizationServiceImpl) Delete(ctx context.Context, id int) (bool, error) {
	return s.repo.Delete(ctx, id)
}

func (s *OrganizationServiceImpl) AddMember(ctx context.Context, organizationID, userID int) (*model.OrganizationMember, error) {
	// membership of a missing organization is rejected up front
	if _, err := s.repo.FindByID(ctx, organizationID); err != nil {
		return nil, err
	}
	return s.memberRepo.Create(ctx, &model.OrganizationMember{
		OrganizationID: organizationID,
		UserID:         userID,
	})
}

func (s *OrganizationServiceImpl) GetMember(ctx context.Context, organizationID, userID int) (*model.OrganizationMember, error) {
	return s.memberRepo.Find(ctx, organizationID, userID)
}

func (s *OrganizationServiceImpl) ListMembers(ctx context.Context, organizationID int) ([]*model.OrganizationMember, error) {
	return s.memberRepo.ListByOrganizationID(ctx, organizationID)
}

func (s *OrganizationServiceImpl) RemoveMember(ctx context.Context, organizationID, userID int) (bool, error) {
	return s.memberRepo.Delete(ctx, organizationID, userID)
}

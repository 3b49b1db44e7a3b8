package service

import (
	"context"
	"testing"

	"event-experience/internal/model"
	repoMocks "event-experience/internal/repository/mocks"
	"event-experience/internal/service"
	apperrors "event-experience/pkg/app_errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupOrganizationServiceMocks(t *testing.T) (
	*repoMocks.MockOrganizationRepository,
	*repoMocks.MockMembershipRepository,
) {
	orgRepo := repoMocks.NewMockOrganizationRepository(t)
	memberRepo := repoMocks.NewMockMembershipRepository(t)
	return orgRepo, memberRepo
}

func TestOrganizationService_AddMember(t *testing.T) {
	ctx := context.Background()
	org := &model.Organization{ID: 5, Title: "Chess Club"}

	t.Run("Success", func(t *testing.T) {
		orgRepo, memberRepo := setupOrganizationServiceMocks(t)
		orgService := service.NewOrganizationService(orgRepo, memberRepo)

		member := &model.OrganizationMember{OrganizationID: 5, UserID: 7}
		orgRepo.EXPECT().FindByID(ctx, 5).Return(org, nil).Once()
		memberRepo.EXPECT().Create(ctx, member).Return(member, nil).Once()

		got, err := orgService.AddMember(ctx, 5, 7)

		require.NoError(t, err)
		assert.Equal(t, member, got)
		orgRepo.AssertExpectations(t)
		memberRepo.AssertExpectations(t)
	})

	t.Run("Failed - organization not found", func(t *testing.T) {
		orgRepo, memberRepo := setupOrganizationServiceMocks(t)
		orgService := service.NewOrganizationService(orgRepo, memberRepo)

		orgRepo.EXPECT().FindByID(ctx, 5).Return(nil, apperrors.ErrOrganizationNotFound).Once()

		_, err := orgService.AddMember(ctx, 5, 7)

		require.Error(t, err)
		assert.ErrorIs(t, err, apperrors.ErrOrganizationNotFound)
		memberRepo.AssertNotCalled(t, "Create")
	})
}

func TestOrganizationService_RemoveMember(t *testing.T) {
	ctx := context.Background()

	t.Run("Not found is a result, not an error", func(t *testing.T) {
		orgRepo, memberRepo := setupOrganizationServiceMocks(t)
		orgService := service.NewOrganizationService(orgRepo, memberRepo)

		memberRepo.EXPECT().Delete(ctx, 5, 7).Return(false, nil).Once()

		removed, err := orgService.RemoveMember(ctx, 5, 7)

		require.NoError(t, err)
		assert.False(t, removed)
		orgRepo.AssertNotCalled(t, "FindByID")
	})
}

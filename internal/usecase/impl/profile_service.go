package impl

import (
	"context"
	"log/slog"
	"strings"

	"cheeserater/internal/domain/entity"
	domainerrors "cheeserater/internal/domain/errors"
	"cheeserater/internal/domain/repository"
	"cheeserater/internal/domain/service"
	"cheeserater/internal/usecase"
	"cheeserater/internal/util"

	"go.uber.org/fx"
)

// profileService implements the ProfileUsecase interface.
type profileService struct {
	catalogRepo repository.CatalogRepository
	profileRepo repository.ProfileRepository
	notifier    changeNotifier
}

// ProfileServiceParams holds dependencies for ProfileService, injected by Fx.
type ProfileServiceParams struct {
	fx.In

	CatalogRepo repository.CatalogRepository
	ProfileRepo repository.ProfileRepository
	Publisher   service.EventPublisher
	Clock       util.Clock
	Logger      *slog.Logger
}

// NewProfileService is the constructor for profileService.
func NewProfileService(params ProfileServiceParams) usecase.ProfileUsecase {
	return &profileService{
		catalogRepo: params.CatalogRepo,
		profileRepo: params.ProfileRepo,
		notifier: changeNotifier{
			publisher: params.Publisher,
			clock:     params.Clock,
			logger:    params.Logger,
		},
	}
}

func (s *profileService) GetProfile(ctx context.Context, userID string) (entity.UserProfile, error) {
	return s.profileRepo.Load(ctx, userID)
}

func (s *profileService) SetNickname(ctx context.Context, userID, nickname string) (entity.UserProfile, error) {
	nickname = strings.TrimSpace(nickname)
	if nickname == "" {
		return entity.UserProfile{}, domainerrors.ErrValidationFailed.WithDetails("nickname must not be blank")
	}

	profile, err := s.profileRepo.Update(ctx, userID, func(current entity.UserProfile) (entity.UserProfile, error) {
		return current.WithNickname(nickname), nil
	})
	if err != nil {
		return entity.UserProfile{}, err
	}

	s.notifier.notify(ctx, service.DocumentProfile, service.ActionNicknameSet, userID, userID)

	return profile, nil
}

func (s *profileService) ToggleWishlist(ctx context.Context, userID, cheeseID string) (entity.UserProfile, bool, error) {
	items, err := s.catalogRepo.Load(ctx)
	if err != nil {
		return entity.UserProfile{}, false, err
	}
	if _, ok := entity.FindCheese(items, cheeseID); !ok {
		return entity.UserProfile{}, false, domainerrors.ErrCheeseNotFound
	}

	var added bool
	profile, err := s.profileRepo.Update(ctx, userID, func(current entity.UserProfile) (entity.UserProfile, error) {
		var next entity.UserProfile
		next, added = current.ToggleWishlist(cheeseID)

		return next, nil
	})
	if err != nil {
		return entity.UserProfile{}, false, err
	}

	s.notifier.notify(ctx, service.DocumentProfile, service.ActionWishlistToggled, cheeseID, userID)

	return profile, added, nil
}

package impl

import (
	"context"
	"log/slog"
	"strings"

	"cheeserater/internal/domain/catalog"
	"cheeserater/internal/domain/constants"
	"cheeserater/internal/domain/entity"
	domainerrors "cheeserater/internal/domain/errors"
	"cheeserater/internal/domain/repository"
	"cheeserater/internal/domain/service"
	"cheeserater/internal/usecase"
	"cheeserater/internal/util"

	deliverycontext "cheeserater/internal/delivery/context"

	"go.uber.org/fx"
)

// reviewService implements the ReviewUsecase interface.
type reviewService struct {
	catalogRepo repository.CatalogRepository
	reviewRepo  repository.ReviewRepository
	profileRepo repository.ProfileRepository
	metrics     service.Metrics
	clock       util.Clock
	notifier    changeNotifier
	logger      *slog.Logger
}

// ReviewServiceParams holds dependencies for ReviewService, injected by Fx.
type ReviewServiceParams struct {
	fx.In

	CatalogRepo repository.CatalogRepository
	ReviewRepo  repository.ReviewRepository
	ProfileRepo repository.ProfileRepository
	Publisher   service.EventPublisher
	Metrics     service.Metrics
	Clock       util.Clock
	Logger      *slog.Logger
}

// NewReviewService is the constructor for reviewService.
func NewReviewService(params ReviewServiceParams) usecase.ReviewUsecase {
	return &reviewService{
		catalogRepo: params.CatalogRepo,
		reviewRepo:  params.ReviewRepo,
		profileRepo: params.ProfileRepo,
		metrics:     params.Metrics,
		clock:       params.Clock,
		notifier: changeNotifier{
			publisher: params.Publisher,
			clock:     params.Clock,
			logger:    params.Logger,
		},
		logger: params.Logger,
	}
}

func (s *reviewService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.LoggerOr(ctx, s.logger)
}

// SubmitReview stores the caller's review of a cheese. An existing review by
// the same user keeps its id, nickname and creation time.
func (s *reviewService) SubmitReview(ctx context.Context, userID string, input *usecase.SubmitReviewInput) (*usecase.SubmitReviewResult, error) {
	if input == nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails("review data is required")
	}
	if !entity.ValidRating(input.Rating) {
		return nil, domainerrors.ErrInvalidRating
	}

	profile, err := s.profileRepo.Load(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !profile.HasNickname() {
		return nil, domainerrors.ErrNicknameRequired
	}

	items, err := s.catalogRepo.Load(ctx)
	if err != nil {
		return nil, err
	}
	if _, ok := entity.FindCheese(items, input.CheeseID); !ok {
		return nil, domainerrors.ErrCheeseNotFound
	}

	notes := strings.TrimSpace(input.Notes)
	var stored entity.Review
	var created bool
	if _, err := s.reviewRepo.Update(ctx, func(current []entity.Review) ([]entity.Review, error) {
		for i := range current {
			if current[i].CheeseID == input.CheeseID && current[i].UserID == userID {
				current[i].Rating = input.Rating
				current[i].Notes = notes
				stored, created = current[i], false

				return current, nil
			}
		}

		stored = entity.Review{
			ID:        util.NewID(constants.ReviewIDPrefix),
			CheeseID:  input.CheeseID,
			UserID:    userID,
			Nickname:  profile.Nickname,
			Rating:    input.Rating,
			Notes:     notes,
			CreatedAt: s.clock.NowMillis(),
		}
		created = true

		return append(current, stored), nil
	}); err != nil {
		return nil, err
	}

	updated, err := s.profileRepo.Update(ctx, userID, func(current entity.UserProfile) (entity.UserProfile, error) {
		return current.MarkReviewed(input.CheeseID), nil
	})
	if err != nil {
		return nil, err
	}

	action := service.ActionReviewUpdated
	if created {
		action = service.ActionReviewCreated
	}
	s.metrics.ReviewSubmitted(created)
	s.notifier.notify(ctx, service.DocumentReviews, action, stored.ID, userID)
	s.log(ctx).InfoContext(ctx, "Review submitted",
		slog.String("review_id", stored.ID),
		slog.String("cheese_id", stored.CheeseID),
		slog.Bool("created", created),
	)

	return &usecase.SubmitReviewResult{
		Review:  stored,
		Created: created,
		Profile: updated,
	}, nil
}

// UpdateReview edits rating and notes of a review written by the caller.
func (s *reviewService) UpdateReview(ctx context.Context, userID, reviewID string, rating int, notes string) (*entity.Review, error) {
	if !entity.ValidRating(rating) {
		return nil, domainerrors.ErrInvalidRating
	}

	var stored entity.Review
	if _, err := s.reviewRepo.Update(ctx, func(current []entity.Review) ([]entity.Review, error) {
		for i := range current {
			if current[i].ID != reviewID {
				continue
			}
			if current[i].UserID != userID {
				return nil, domainerrors.ErrReviewOwnership
			}
			current[i].Rating = rating
			current[i].Notes = strings.TrimSpace(notes)
			stored = current[i]

			return current, nil
		}

		return nil, domainerrors.ErrReviewNotFound
	}); err != nil {
		return nil, err
	}

	s.notifier.notify(ctx, service.DocumentReviews, service.ActionReviewUpdated, stored.ID, userID)

	return &stored, nil
}

// ListReviews returns the cheese's reviews, newest first.
func (s *reviewService) ListReviews(ctx context.Context, cheeseID string) ([]entity.Review, error) {
	items, err := s.catalogRepo.Load(ctx)
	if err != nil {
		return nil, err
	}
	if _, ok := entity.FindCheese(items, cheeseID); !ok {
		return nil, domainerrors.ErrCheeseNotFound
	}

	reviews, err := s.reviewRepo.Load(ctx)
	if err != nil {
		return nil, err
	}

	return catalog.ReviewsFor(cheeseID, reviews), nil
}

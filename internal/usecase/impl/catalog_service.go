package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"cheeserater/config"
	deliverycontext "cheeserater/internal/delivery/context"
	"cheeserater/internal/domain/catalog"
	"cheeserater/internal/domain/constants"
	"cheeserater/internal/domain/entity"
	domainerrors "cheeserater/internal/domain/errors"
	"cheeserater/internal/domain/repository"
	"cheeserater/internal/domain/service"
	"cheeserater/internal/usecase"
	"cheeserater/internal/util"

	"go.uber.org/fx"
)

// catalogService implements the CatalogUsecase interface.
type catalogService struct {
	catalogRepo repository.CatalogRepository
	reviewRepo  repository.ReviewRepository
	profileRepo repository.ProfileRepository
	engine      *catalog.Engine
	qrcode      service.QRCodeService
	metrics     service.Metrics
	clock       util.Clock
	notifier    changeNotifier
	defaultView entity.ViewMode
	defaultSort entity.SortOption
	logger      *slog.Logger
}

// CatalogServiceParams holds dependencies for CatalogService, injected by Fx.
type CatalogServiceParams struct {
	fx.In

	CatalogRepo repository.CatalogRepository
	ReviewRepo  repository.ReviewRepository
	ProfileRepo repository.ProfileRepository
	Engine      *catalog.Engine
	QRCode      service.QRCodeService
	Publisher   service.EventPublisher
	Metrics     service.Metrics
	Clock       util.Clock
	Config      *config.Config
	Logger      *slog.Logger
}

// NewCatalogService is the constructor for catalogService.
func NewCatalogService(params CatalogServiceParams) usecase.CatalogUsecase {
	defaultView := entity.ViewAll
	defaultSort := entity.SortByRating
	if params.Config != nil {
		if view, ok := catalog.ParseViewMode(params.Config.Catalog.DefaultView); ok {
			defaultView = view
		}
		if sort, ok := catalog.ParseSortOption(params.Config.Catalog.DefaultSort); ok {
			defaultSort = sort
		}
	}

	return &catalogService{
		catalogRepo: params.CatalogRepo,
		reviewRepo:  params.ReviewRepo,
		profileRepo: params.ProfileRepo,
		engine:      params.Engine,
		qrcode:      params.QRCode,
		metrics:     params.Metrics,
		clock:       params.Clock,
		notifier: changeNotifier{
			publisher: params.Publisher,
			clock:     params.Clock,
			logger:    params.Logger,
		},
		defaultView: defaultView,
		defaultSort: defaultSort,
		logger:      params.Logger,
	}
}

// NewEngine builds the derivation engine for the configured locale.
func NewEngine(cfg *config.Config) *catalog.Engine {
	return catalog.NewEngine(cfg.Catalog.Locale)
}

func (s *catalogService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.LoggerOr(ctx, s.logger)
}

// snapshot is one consistent-enough read of the three documents.
type snapshot struct {
	catalog []entity.Cheese
	reviews []entity.Review
	profile entity.UserProfile
}

func (s *catalogService) load(ctx context.Context, userID string) (snapshot, error) {
	var snap snapshot
	var err error

	if snap.catalog, err = s.catalogRepo.Load(ctx); err != nil {
		return snap, err
	}
	if snap.reviews, err = s.reviewRepo.Load(ctx); err != nil {
		return snap, err
	}
	if snap.profile, err = s.profileRepo.Load(ctx, userID); err != nil {
		return snap, err
	}

	return snap, nil
}

// normalize applies configured defaults to an empty view or sort. Unknown
// view modes become "all" so that facets follow the all-view rule; unknown
// sort keys are kept and leave the list unsorted.
func (s *catalogService) normalize(sel catalog.Selection) catalog.Selection {
	if sel.View == "" {
		sel.View = s.defaultView
	}
	if _, ok := catalog.ParseViewMode(string(sel.View)); !ok {
		sel.View = entity.ViewAll
	}
	if sel.Sort == "" {
		sel.Sort = s.defaultSort
	}

	return sel
}

func (s *catalogService) derive(snap snapshot, sel catalog.Selection) *usecase.BrowseResult {
	start := time.Now()
	res := s.engine.Derive(catalog.Input{
		Catalog:   snap.catalog,
		Reviews:   snap.reviews,
		Profile:   snap.profile,
		Selection: sel,
	})
	s.metrics.ObserveDerive(string(sel.View), string(sel.Sort), time.Since(start))

	summaries := catalog.Summaries(snap.reviews)
	items := make([]usecase.CatalogItem, 0, len(res.Items))
	for _, c := range res.Items {
		items = append(items, usecase.CatalogItem{
			Cheese:        c,
			RatingSummary: summaries[c.ID],
			Tried:         snap.profile.HasTried(c.ID),
			Wishlisted:    snap.profile.IsWishlisted(c.ID),
		})
	}

	return &usecase.BrowseResult{
		Items:         items,
		Facets:        res.Facets,
		TriedCount:    len(snap.profile.TriedCheeses),
		WishlistCount: len(snap.profile.Wishlist),
		CatalogSize:   len(snap.catalog),
		ActiveFilters: sel.Filters.ActiveCount(),
	}
}

// Browse derives the list and facets for the caller's selection.
func (s *catalogService) Browse(ctx context.Context, userID string, selection catalog.Selection) (*usecase.BrowseResult, error) {
	snap, err := s.load(ctx, userID)
	if err != nil {
		return nil, err
	}

	return s.derive(snap, s.normalize(selection)), nil
}

// WatchBrowse re-derives on every change of the catalog, the reviews or the
// caller's profile. Subscriptions are opened before the initial read so no
// write in between is lost.
func (s *catalogService) WatchBrowse(ctx context.Context, userID string, selection catalog.Selection) (<-chan *usecase.BrowseResult, error) {
	sel := s.normalize(selection)
	watchCtx, cancel := context.WithCancel(ctx)

	catalogCh, err := s.catalogRepo.Watch(watchCtx)
	if err != nil {
		cancel()

		return nil, err
	}
	reviewCh, err := s.reviewRepo.Watch(watchCtx)
	if err != nil {
		cancel()

		return nil, err
	}
	profileCh, err := s.profileRepo.Watch(watchCtx, userID)
	if err != nil {
		cancel()

		return nil, err
	}

	snap, err := s.load(watchCtx, userID)
	if err != nil {
		cancel()

		return nil, err
	}

	out := make(chan *usecase.BrowseResult)
	go func() {
		defer close(out)
		defer cancel()

		result := s.derive(snap, sel)
		for {
			select {
			case out <- result:
			case <-watchCtx.Done():
				return
			}

			select {
			case items, ok := <-catalogCh:
				if !ok {
					return
				}
				snap.catalog = items
			case reviews, ok := <-reviewCh:
				if !ok {
					return
				}
				snap.reviews = reviews
			case profile, ok := <-profileCh:
				if !ok {
					return
				}
				snap.profile = profile
			case <-watchCtx.Done():
				return
			}

			result = s.derive(snap, sel)
		}
	}()

	return out, nil
}

// GetCheese returns the detail view of one cheese.
func (s *catalogService) GetCheese(ctx context.Context, userID, cheeseID string) (*usecase.CheeseDetail, error) {
	snap, err := s.load(ctx, userID)
	if err != nil {
		return nil, err
	}

	cheese, ok := entity.FindCheese(snap.catalog, cheeseID)
	if !ok {
		return nil, domainerrors.ErrCheeseNotFound
	}

	detail := &usecase.CheeseDetail{
		Cheese:     *cheese,
		Rating:     catalog.Summarize(cheeseID, snap.reviews),
		Reviews:    catalog.ReviewsFor(cheeseID, snap.reviews),
		Tried:      snap.profile.HasTried(cheeseID),
		Wishlisted: snap.profile.IsWishlisted(cheeseID),
	}
	if mine, ok := catalog.FindUserReview(cheeseID, userID, snap.reviews); ok {
		detail.MyReview = mine
	}

	return detail, nil
}

// AddCheese validates the input and appends a new entry to the catalog.
func (s *catalogService) AddCheese(ctx context.Context, input *usecase.NewCheeseInput) (*entity.Cheese, error) {
	cheese, err := s.buildCheese(input)
	if err != nil {
		return nil, err
	}

	if _, err := s.catalogRepo.Update(ctx, func(current []entity.Cheese) ([]entity.Cheese, error) {
		return append(current, *cheese), nil
	}); err != nil {
		return nil, err
	}

	s.metrics.CheeseAdded()
	s.notifier.notify(ctx, service.DocumentCatalog, service.ActionCheeseAdded, cheese.ID, "")
	s.log(ctx).InfoContext(ctx, "Cheese added",
		slog.String("cheese_id", cheese.ID),
		slog.String("name", cheese.Name),
	)

	return cheese, nil
}

func (s *catalogService) buildCheese(input *usecase.NewCheeseInput) (*entity.Cheese, error) {
	if input == nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails("cheese data is required")
	}

	cheese := &entity.Cheese{
		Name:          strings.TrimSpace(input.Name),
		Origin:        strings.TrimSpace(input.Origin),
		MilkType:      strings.TrimSpace(input.MilkType),
		Texture:       strings.TrimSpace(input.Texture),
		FlavorProfile: util.UniqueTrimmed(input.FlavorProfile),
		Description:   strings.TrimSpace(input.Description),
		ImageURL:      strings.TrimSpace(input.ImageURL),
		PurchaseURL:   strings.TrimSpace(input.PurchaseURL),
	}

	required := []struct {
		field string
		value string
	}{
		{"name", cheese.Name},
		{"origin", cheese.Origin},
		{"milkType", cheese.MilkType},
		{"texture", cheese.Texture},
		{"description", cheese.Description},
	}
	var missing []string
	for _, r := range required {
		if r.value == "" {
			missing = append(missing, r.field)
		}
	}
	if len(missing) > 0 {
		return nil, domainerrors.ErrValidationFailed.WithDetails("missing required fields: " + strings.Join(missing, ", "))
	}

	cheese.ID = util.NewID(constants.CheeseIDPrefix)
	cheese.CreatedAt = s.clock.NowMillis()

	return cheese, nil
}

// ShareCode renders a QR code for an existing cheese.
func (s *catalogService) ShareCode(ctx context.Context, cheeseID string) ([]byte, error) {
	items, err := s.catalogRepo.Load(ctx)
	if err != nil {
		return nil, err
	}
	if _, ok := entity.FindCheese(items, cheeseID); !ok {
		return nil, domainerrors.ErrCheeseNotFound
	}

	png, err := s.qrcode.GenerateCheeseQR(cheeseID)
	if err != nil {
		return nil, domainerrors.ErrInternalError.WithDetails(err.Error())
	}

	return png, nil
}

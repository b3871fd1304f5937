package impl

import (
	"io"
	"log/slog"
	"testing"

	"cheeserater/internal/domain/catalog"
	"cheeserater/internal/domain/entity"
	mockRepo "cheeserater/internal/mocks/repository"
	mockSvc "cheeserater/internal/mocks/service"
)

// stepClock returns increasing timestamps starting at next.
type stepClock struct {
	next int64
}

func (c *stepClock) NowMillis() int64 {
	c.next++

	return c.next
}

// serviceFixtures holds all test dependencies shared by the use case tests.
type serviceFixtures struct {
	catalogRepo *mockRepo.MockCatalogRepository
	reviewRepo  *mockRepo.MockReviewRepository
	profileRepo *mockRepo.MockProfileRepository
	qrcode      *mockSvc.MockQRCodeService
	publisher   *mockSvc.MockEventPublisher
	metrics     *mockSvc.MockMetrics
	clock       *stepClock
	logger      *slog.Logger
}

func newServiceFixtures(t *testing.T) serviceFixtures {
	return serviceFixtures{
		catalogRepo: mockRepo.NewMockCatalogRepository(t),
		reviewRepo:  mockRepo.NewMockReviewRepository(t),
		profileRepo: mockRepo.NewMockProfileRepository(t),
		qrcode:      mockSvc.NewMockQRCodeService(t),
		publisher:   mockSvc.NewMockEventPublisher(t),
		metrics:     mockSvc.NewMockMetrics(t),
		clock:       &stepClock{next: 1000},
		logger:      slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

func (f serviceFixtures) catalogService() *catalogService {
	svc := NewCatalogService(CatalogServiceParams{
		CatalogRepo: f.catalogRepo,
		ReviewRepo:  f.reviewRepo,
		ProfileRepo: f.profileRepo,
		Engine:      catalog.NewEngine("en"),
		QRCode:      f.qrcode,
		Publisher:   f.publisher,
		Metrics:     f.metrics,
		Clock:       f.clock,
		Logger:      f.logger,
	})

	return svc.(*catalogService)
}

func (f serviceFixtures) reviewService() *reviewService {
	svc := NewReviewService(ReviewServiceParams{
		CatalogRepo: f.catalogRepo,
		ReviewRepo:  f.reviewRepo,
		ProfileRepo: f.profileRepo,
		Publisher:   f.publisher,
		Metrics:     f.metrics,
		Clock:       f.clock,
		Logger:      f.logger,
	})

	return svc.(*reviewService)
}

func (f serviceFixtures) profileService() *profileService {
	svc := NewProfileService(ProfileServiceParams{
		CatalogRepo: f.catalogRepo,
		ProfileRepo: f.profileRepo,
		Publisher:   f.publisher,
		Clock:       f.clock,
		Logger:      f.logger,
	})

	return svc.(*profileService)
}

func testCatalog() []entity.Cheese {
	return []entity.Cheese{
		{ID: "cheese-1", Name: "Comté", Origin: "France", MilkType: "Cow's Milk", Texture: "Hard", FlavorProfile: []string{"Nutty"}, CreatedAt: 10},
		{ID: "cheese-2", Name: "Brie", Origin: "France", MilkType: "Cow's Milk", Texture: "Soft", FlavorProfile: []string{"Buttery"}, CreatedAt: 20},
		{ID: "cheese-3", Name: "Manchego", Origin: "Spain", MilkType: "Sheep's Milk", Texture: "Hard", FlavorProfile: []string{"Nutty", "Tangy"}, CreatedAt: 30},
	}
}

package handler

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"cheeserater/config"
	"cheeserater/internal/delivery/http/middleware"
	"cheeserater/internal/delivery/http/validator"
	"cheeserater/internal/domain/catalog"
	"cheeserater/internal/domain/constants"
	"cheeserater/internal/domain/entity"
	domainerrors "cheeserater/internal/domain/errors"
	mockUC "cheeserater/internal/mocks/usecase"
	"cheeserater/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const testClientID = "user-test"

// handlerFixtures wires every handler to mocked use cases on one echo instance.
type handlerFixtures struct {
	echo      *echo.Echo
	catalogUC *mockUC.MockCatalogUsecase
	reviewUC  *mockUC.MockReviewUsecase
	profileUC *mockUC.MockProfileUsecase
}

func createTestHandlers(t *testing.T) handlerFixtures {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	f := handlerFixtures{
		echo:      echo.New(),
		catalogUC: mockUC.NewMockCatalogUsecase(t),
		reviewUC:  mockUC.NewMockReviewUsecase(t),
		profileUC: mockUC.NewMockProfileUsecase(t),
	}
	f.echo.Validator = validator.New()
	f.echo.HTTPErrorHandler = middleware.NewErrorMiddleware(logger).HandleHTTPError

	catalogHandler := NewCatalogHandler(CatalogHandlerParams{CatalogUC: f.catalogUC, Logger: logger})
	cheeseHandler := NewCheeseHandler(CheeseHandlerParams{CatalogUC: f.catalogUC, Logger: logger})
	reviewHandler := NewReviewHandler(ReviewHandlerParams{ReviewUC: f.reviewUC, Logger: logger})
	profileHandler := NewProfileHandler(ProfileHandlerParams{ProfileUC: f.profileUC, Logger: logger})

	g := f.echo.Group("", middleware.NewClientIdentityMiddleware(&config.Config{}).Resolve)
	g.GET("/catalog", catalogHandler.Browse)
	g.GET("/catalog/stream", catalogHandler.Stream)
	g.POST("/cheeses", cheeseHandler.AddCheese)
	g.GET("/cheeses/:id", cheeseHandler.GetCheese)
	g.GET("/cheeses/:id/qr", cheeseHandler.ShareQR)
	g.GET("/cheeses/:id/reviews", reviewHandler.ListReviews)
	g.PUT("/cheeses/:id/review", reviewHandler.SubmitReview)
	g.PATCH("/reviews/:id", reviewHandler.UpdateReview)
	g.GET("/me", profileHandler.GetProfile)
	g.PUT("/me/nickname", profileHandler.SetNickname)
	g.POST("/me/wishlist/:cheeseId/toggle", profileHandler.ToggleWishlist)

	return f
}

func (f handlerFixtures) do(method, target, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	req.Header.Set(constants.ClientIDHeader, testClientID)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	f.echo.ServeHTTP(rec, req)

	return rec
}

type envelope struct {
	Data  json.RawMessage `json:"data"`
	Error *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
		Details any    `json:"details"`
	} `json:"error"`
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) envelope {
	t.Helper()

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))

	return env
}

func TestCatalogHandler_Browse(t *testing.T) {
	f := createTestHandlers(t)

	want := catalog.Selection{
		View:  entity.ViewTried,
		Sort:  entity.SortByName,
		Query: "br",
		Filters: entity.FilterState{
			Origin:        []string{"France", "Italy"},
			MilkType:      []string{},
			Texture:       []string{"Soft"},
			FlavorProfile: []string{},
		},
	}
	f.catalogUC.EXPECT().
		Browse(mock.Anything, testClientID, want).
		Return(&usecase.BrowseResult{CatalogSize: 7, Items: []usecase.CatalogItem{}}, nil)

	rec := f.do(http.MethodGet, "/catalog?view=tried&sort=name&q=br&origin=France&origin=+Italy&origin=France&texture=Soft&page=2", "")

	require.Equal(t, http.StatusOK, rec.Code)
	var res usecase.BrowseResult
	require.NoError(t, json.Unmarshal(decode(t, rec).Data, &res))
	assert.Equal(t, 7, res.CatalogSize)
}

func TestCatalogHandler_Browse_StoreFailure(t *testing.T) {
	f := createTestHandlers(t)

	f.catalogUC.EXPECT().
		Browse(mock.Anything, testClientID, mock.Anything).
		Return(nil, domainerrors.NewStoreError(errors.New("redis: connection refused"), "load cheeses"))

	rec := f.do(http.MethodGet, "/catalog", "")

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	env := decode(t, rec)
	require.NotNil(t, env.Error)
	assert.Equal(t, "STORE_UNAVAILABLE", env.Error.Code)
	assert.Nil(t, env.Error.Details)
}

func TestCatalogHandler_Stream(t *testing.T) {
	f := createTestHandlers(t)

	results := make(chan *usecase.BrowseResult, 2)
	results <- &usecase.BrowseResult{CatalogSize: 1, Items: []usecase.CatalogItem{}}
	results <- &usecase.BrowseResult{CatalogSize: 2, Items: []usecase.CatalogItem{}}
	close(results)

	f.catalogUC.EXPECT().
		WatchBrowse(mock.Anything, testClientID, mock.Anything).
		Return(results, nil)

	rec := f.do(http.MethodGet, "/catalog/stream?view=all", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/event-stream", rec.Header().Get(echo.HeaderContentType))
	body := rec.Body.String()
	assert.Equal(t, 2, strings.Count(body, "event: catalog\n"))
	assert.Contains(t, body, `"catalogSize":1`)
	assert.Contains(t, body, `"catalogSize":2`)
}

func TestCheeseHandler_GetCheese_NotFound(t *testing.T) {
	f := createTestHandlers(t)

	f.catalogUC.EXPECT().
		GetCheese(mock.Anything, testClientID, "cheese-x").
		Return(nil, domainerrors.ErrCheeseNotFound)

	rec := f.do(http.MethodGet, "/cheeses/cheese-x", "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "CHEESE_NOT_FOUND", decode(t, rec).Error.Code)
}

func TestCheeseHandler_AddCheese(t *testing.T) {
	t.Run("validation failure skips the use case", func(t *testing.T) {
		f := createTestHandlers(t)

		rec := f.do(http.MethodPost, "/cheeses", `{"origin":"Italy","milkType":"Cow's Milk","texture":"Hard","description":"x"}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		env := decode(t, rec)
		assert.Equal(t, "VALIDATION_FAILED", env.Error.Code)
		assert.NotNil(t, env.Error.Details)
	})

	t.Run("created", func(t *testing.T) {
		f := createTestHandlers(t)

		f.catalogUC.EXPECT().
			AddCheese(mock.Anything, &usecase.NewCheeseInput{
				Name:          "Taleggio",
				Origin:        "Italy",
				MilkType:      "Cow's Milk",
				Texture:       "Soft",
				FlavorProfile: []string{"Fruity"},
				Description:   "Washed rind",
			}).
			Return(&entity.Cheese{ID: "cheese-1", Name: "Taleggio"}, nil)

		rec := f.do(http.MethodPost, "/cheeses",
			`{"name":"Taleggio","origin":"Italy","milkType":"Cow's Milk","texture":"Soft","flavorProfile":["Fruity"],"description":"Washed rind"}`)

		assert.Equal(t, http.StatusCreated, rec.Code)
		assert.Contains(t, string(decode(t, rec).Data), `"id":"cheese-1"`)
	})

	t.Run("malformed body", func(t *testing.T) {
		f := createTestHandlers(t)

		rec := f.do(http.MethodPost, "/cheeses", `{"name":`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "INVALID_INPUT", decode(t, rec).Error.Code)
	})
}

func TestCheeseHandler_ShareQR(t *testing.T) {
	f := createTestHandlers(t)

	f.catalogUC.EXPECT().ShareCode(mock.Anything, "cheese-1").Return([]byte{0x89, 'P', 'N', 'G'}, nil)

	rec := f.do(http.MethodGet, "/cheeses/cheese-1/qr", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get(echo.HeaderContentType))
	assert.Equal(t, []byte{0x89, 'P', 'N', 'G'}, rec.Body.Bytes())
}

func TestReviewHandler_SubmitReview(t *testing.T) {
	tests := []struct {
		name       string
		result     *usecase.SubmitReviewResult
		err        error
		wantStatus int
		wantCode   string
	}{
		{
			name:       "created",
			result:     &usecase.SubmitReviewResult{Created: true, Review: entity.Review{ID: "review-1"}},
			wantStatus: http.StatusCreated,
		},
		{
			name:       "replaced",
			result:     &usecase.SubmitReviewResult{Created: false, Review: entity.Review{ID: "review-1"}},
			wantStatus: http.StatusOK,
		},
		{
			name:       "invalid rating",
			err:        domainerrors.ErrInvalidRating,
			wantStatus: http.StatusBadRequest,
			wantCode:   "INVALID_RATING",
		},
		{
			name:       "nickname required",
			err:        domainerrors.ErrNicknameRequired,
			wantStatus: http.StatusBadRequest,
			wantCode:   "NICKNAME_REQUIRED",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := createTestHandlers(t)

			f.reviewUC.EXPECT().
				SubmitReview(mock.Anything, testClientID, &usecase.SubmitReviewInput{CheeseID: "cheese-1", Rating: 4, Notes: "good"}).
				Return(tt.result, tt.err)

			rec := f.do(http.MethodPut, "/cheeses/cheese-1/review", `{"rating":4,"notes":"good"}`)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantCode != "" {
				assert.Equal(t, tt.wantCode, decode(t, rec).Error.Code)
			}
		})
	}
}

func TestReviewHandler_UpdateReview_Ownership(t *testing.T) {
	f := createTestHandlers(t)

	f.reviewUC.EXPECT().
		UpdateReview(mock.Anything, testClientID, "review-9", 2, "changed").
		Return(nil, domainerrors.ErrReviewOwnership)

	rec := f.do(http.MethodPatch, "/reviews/review-9", `{"rating":2,"notes":"changed"}`)

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, "REVIEW_OWNERSHIP_VIOLATION", decode(t, rec).Error.Code)
}

func TestReviewHandler_ListReviews(t *testing.T) {
	f := createTestHandlers(t)

	f.reviewUC.EXPECT().
		ListReviews(mock.Anything, "cheese-1").
		Return([]entity.Review{{ID: "review-2"}, {ID: "review-1"}}, nil)

	rec := f.do(http.MethodGet, "/cheeses/cheese-1/reviews", "")

	require.Equal(t, http.StatusOK, rec.Code)
	var reviews []entity.Review
	require.NoError(t, json.Unmarshal(decode(t, rec).Data, &reviews))
	require.Len(t, reviews, 2)
	assert.Equal(t, "review-2", reviews[0].ID)
}

func TestProfileHandler_GetProfile(t *testing.T) {
	f := createTestHandlers(t)

	f.profileUC.EXPECT().
		GetProfile(mock.Anything, testClientID).
		Return(entity.UserProfile{Nickname: "Ana", TriedCheeses: []string{}, Wishlist: []string{"cheese-1"}}, nil)

	rec := f.do(http.MethodGet, "/me", "")

	require.Equal(t, http.StatusOK, rec.Code)
	var res ProfileResponse
	require.NoError(t, json.Unmarshal(decode(t, rec).Data, &res))
	assert.Equal(t, testClientID, res.UserID)
	assert.Equal(t, "Ana", res.Nickname)
	assert.False(t, res.IsOwner)
}

func TestProfileHandler_SetNickname(t *testing.T) {
	t.Run("blank nickname is rejected", func(t *testing.T) {
		f := createTestHandlers(t)

		rec := f.do(http.MethodPut, "/me/nickname", `{"nickname":""}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("stored", func(t *testing.T) {
		f := createTestHandlers(t)

		f.profileUC.EXPECT().
			SetNickname(mock.Anything, testClientID, "Brie Fan").
			Return(entity.UserProfile{Nickname: "Brie Fan", TriedCheeses: []string{}, Wishlist: []string{}}, nil)

		rec := f.do(http.MethodPut, "/me/nickname", `{"nickname":"Brie Fan"}`)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, string(decode(t, rec).Data), `"nickname":"Brie Fan"`)
	})
}

func TestProfileHandler_ToggleWishlist(t *testing.T) {
	f := createTestHandlers(t)

	f.profileUC.EXPECT().
		ToggleWishlist(mock.Anything, testClientID, "cheese-3").
		Return(entity.UserProfile{TriedCheeses: []string{}, Wishlist: []string{"cheese-3"}}, true, nil)

	rec := f.do(http.MethodPost, "/me/wishlist/cheese-3/toggle", "")

	require.Equal(t, http.StatusOK, rec.Code)
	var res WishlistToggleResponse
	require.NoError(t, json.Unmarshal(decode(t, rec).Data, &res))
	assert.True(t, res.Added)
	assert.Equal(t, []string{"cheese-3"}, res.Profile.Wishlist)
}

package impl

import (
	"context"
	"testing"

	"cheeserater/internal/domain/entity"
	domainerrors "cheeserater/internal/domain/errors"
	"cheeserater/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestProfileService_GetProfile(t *testing.T) {
	f := newServiceFixtures(t)
	ctx := context.Background()

	f.profileRepo.EXPECT().Load(ctx, "user-a").Return(entity.EmptyProfile(), nil)

	profile, err := f.profileService().GetProfile(ctx, "user-a")
	require.NoError(t, err)
	assert.False(t, profile.HasNickname())
	assert.Empty(t, profile.TriedCheeses)
}

func TestProfileService_SetNickname(t *testing.T) {
	f := newServiceFixtures(t)
	ctx := context.Background()

	onProfileUpdate(f, "user-a", entity.UserProfile{Nickname: "old", TriedCheeses: []string{"cheese-1"}, Wishlist: []string{}})
	f.publisher.EXPECT().
		PublishChangeEvent(ctx, mock.MatchedBy(func(e *service.ChangeEvent) bool {
			return e.Action == service.ActionNicknameSet && e.Document == service.DocumentProfile
		})).
		Return(nil)

	profile, err := f.profileService().SetNickname(ctx, "user-a", "  Cheese Lover ")
	require.NoError(t, err)
	assert.Equal(t, "Cheese Lover", profile.Nickname)
	assert.Equal(t, []string{"cheese-1"}, profile.TriedCheeses)
}

func TestProfileService_SetNickname_Blank(t *testing.T) {
	f := newServiceFixtures(t)

	_, err := f.profileService().SetNickname(context.Background(), "user-a", "   ")
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestProfileService_ToggleWishlist(t *testing.T) {
	tests := []struct {
		name      string
		current   []string
		wantAdded bool
		wantList  []string
	}{
		{name: "adds when absent", current: []string{"cheese-2"}, wantAdded: true, wantList: []string{"cheese-2", "cheese-1"}},
		{name: "removes when present", current: []string{"cheese-1", "cheese-2"}, wantAdded: false, wantList: []string{"cheese-2"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newServiceFixtures(t)
			ctx := context.Background()

			f.catalogRepo.EXPECT().Load(ctx).Return(testCatalog(), nil)
			onProfileUpdate(f, "user-a", entity.UserProfile{TriedCheeses: []string{}, Wishlist: tt.current})
			f.publisher.EXPECT().PublishChangeEvent(ctx, mock.Anything).Return(nil)

			profile, added, err := f.profileService().ToggleWishlist(ctx, "user-a", "cheese-1")
			require.NoError(t, err)
			assert.Equal(t, tt.wantAdded, added)
			assert.Equal(t, tt.wantList, profile.Wishlist)
		})
	}
}

func TestProfileService_ToggleWishlist_UnknownCheese(t *testing.T) {
	f := newServiceFixtures(t)
	ctx := context.Background()

	f.catalogRepo.EXPECT().Load(ctx).Return(testCatalog(), nil)

	_, _, err := f.profileService().ToggleWishlist(ctx, "user-a", "cheese-404")
	assert.ErrorIs(t, err, domainerrors.ErrCheeseNotFound)
}

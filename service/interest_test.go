package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tnavInter19/twitter-backend/forms"
	"github.com/tnavInter19/twitter-backend/models"
)

func TestSeedInterests(t *testing.T) {
	interests := newFakeInterests()
	svc := NewInterestService(interests, newFakeUsers())
	ctx := context.Background()

	require.NoError(t, svc.Seed(ctx))

	listed, err := svc.GetInterests(ctx)
	require.NoError(t, err)
	require.Len(t, listed, len(models.DefaultInterests))

	// A second seed must not duplicate anything.
	require.NoError(t, svc.Seed(ctx))

	listed, err = svc.GetInterests(ctx)
	require.NoError(t, err)
	require.Len(t, listed, len(models.DefaultInterests))
}

func TestSetUserInterests(t *testing.T) {
	interests := newFakeInterests()
	users := newFakeUsers()
	svc := NewInterestService(interests, users)
	ctx := context.Background()

	require.NoError(t, svc.Seed(ctx))
	alice := addUser(t, users, "alice@example.com", "alice")

	result, err := svc.SetUserInterests(ctx, alice.ID, forms.SetInterestsForm{
		Interests: []forms.InterestEntry{
			{InterestName: models.DefaultInterests[0]},
			{InterestName: "Gardening 🌱"},
		},
	})
	require.NoError(t, err)
	require.Equal(t, alice.ID, result.User.ID)
	require.Len(t, result.Interests, 2)
	for _, interest := range result.Interests {
		require.Contains(t, interest.Users, alice.ID.Hex())
	}

	// The made-up interest was created in the catalogue.
	listed, err := svc.GetInterests(ctx)
	require.NoError(t, err)
	require.Len(t, listed, len(models.DefaultInterests)+1)
}

func TestSetUserInterestsIdempotent(t *testing.T) {
	interests := newFakeInterests()
	users := newFakeUsers()
	svc := NewInterestService(interests, users)
	ctx := context.Background()

	alice := addUser(t, users, "alice@example.com", "alice")
	form := forms.SetInterestsForm{
		Interests: []forms.InterestEntry{{InterestName: "Go"}},
	}

	_, err := svc.SetUserInterests(ctx, alice.ID, form)
	require.NoError(t, err)
	result, err := svc.SetUserInterests(ctx, alice.ID, form)
	require.NoError(t, err)

	require.Len(t, result.Interests, 1)
	require.Equal(t, []string{alice.ID.Hex()}, result.Interests[0].Users)
}

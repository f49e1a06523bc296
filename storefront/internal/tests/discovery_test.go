package tests

import (
	"context"
	"errors"
	"testing"
	"time"

	"tiffin-finder/storefront/internal/discovery"
	"tiffin-finder/storefront/internal/mocks"
	"tiffin-finder/storefront/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var (
	connaughtPlace = model.Coordinates{Lat: 28.6315, Lng: 77.2167}
	indiaGate      = model.Coordinates{Lat: 28.6129, Lng: 77.2295}
	mumbai         = model.Coordinates{Lat: 19.0760, Lng: 72.8777}
)

func TestDistance(t *testing.T) {
	t.Run("same point is zero", func(t *testing.T) {
		assert.Zero(t, discovery.Distance(connaughtPlace, connaughtPlace))
	})

	t.Run("symmetric", func(t *testing.T) {
		pairs := [][2]model.Coordinates{
			{connaughtPlace, indiaGate},
			{indiaGate, mumbai},
			{discovery.DefaultOrigin, mumbai},
		}
		for _, pair := range pairs {
			assert.InDelta(t, discovery.Distance(pair[0], pair[1]), discovery.Distance(pair[1], pair[0]), 1e-6)
		}
	})

	t.Run("known distances", func(t *testing.T) {
		assert.InDelta(t, 2400, discovery.Distance(connaughtPlace, indiaGate), 150)
		assert.InDelta(t, 1150000, discovery.Distance(discovery.DefaultOrigin, mumbai), 20000)
	})
}

func TestWithinRadius_Boundary(t *testing.T) {
	kitchen := kitchenAt("k1", "Maa ki Rasoi", "North Indian", indiaGate.Lat, indiaGate.Lng)
	exact := discovery.Distance(connaughtPlace, indiaGate)

	inside := discovery.WithinRadius([]model.Kitchen{kitchen}, connaughtPlace, exact)
	assert.Len(t, inside, 1)

	outside := discovery.WithinRadius([]model.Kitchen{kitchen}, connaughtPlace, exact-1)
	assert.Empty(t, outside)
}

func TestFilter(t *testing.T) {
	kitchens := []model.Kitchen{
		kitchenAt("1", "Maa ki Rasoi", "North Indian", 28.6139, 77.2090),
		kitchenAt("2", "Dosa Corner", "South Indian", 28.6200, 77.2100),
		kitchenAt("3", "Thali House", "Gujarati", 28.6300, 77.2200),
		kitchenAt("4", "Far Away Dhaba", "North Indian", 19.0760, 72.8777),
		{ID: "5", Name: "No Address Kitchen", CuisineType: "North Indian"},
	}
	kitchens[2].Description = "Unlimited rotis and dal"

	tests := []struct {
		name    string
		query   discovery.Query
		wantIDs []string
	}{
		{
			name:    "radius only keeps nearby kitchens in order",
			query:   discovery.Query{Origin: discovery.DefaultOrigin, Radius: discovery.DefaultRadius},
			wantIDs: []string{"1", "2", "3"},
		},
		{
			name:    "text matches name case-insensitively",
			query:   discovery.Query{Origin: discovery.DefaultOrigin, Radius: discovery.DefaultRadius, Text: "dosa"},
			wantIDs: []string{"2"},
		},
		{
			name:    "text matches cuisine",
			query:   discovery.Query{Origin: discovery.DefaultOrigin, Radius: discovery.DefaultRadius, Text: "indian"},
			wantIDs: []string{"1", "2"},
		},
		{
			name:    "text matches description",
			query:   discovery.Query{Origin: discovery.DefaultOrigin, Radius: discovery.DefaultRadius, Text: "ROTIS"},
			wantIDs: []string{"3"},
		},
		{
			name:    "category is an exact match",
			query:   discovery.Query{Origin: discovery.DefaultOrigin, Radius: discovery.DefaultRadius, Category: "North Indian"},
			wantIDs: []string{"1"},
		},
		{
			name:    "category does not match partially",
			query:   discovery.Query{Origin: discovery.DefaultOrigin, Radius: discovery.DefaultRadius, Category: "Indian"},
			wantIDs: []string{},
		},
		{
			name:    "text and category intersect",
			query:   discovery.Query{Origin: discovery.DefaultOrigin, Radius: discovery.DefaultRadius, Text: "corner", Category: "North Indian"},
			wantIDs: []string{},
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			got := discovery.Filter(kitchens, testCase.query)
			ids := make([]string, 0, len(got))
			for _, k := range got {
				ids = append(ids, k.ID)
			}
			assert.Equal(t, testCase.wantIDs, ids)
		})
	}
}

func TestFinder_Find(t *testing.T) {
	nearby := []model.Kitchen{
		kitchenAt("1", "Maa ki Rasoi", "North Indian", 28.6139, 77.2090),
		kitchenAt("2", "Mumbai Tiffins", "Maharashtrian", 19.0760, 72.8777),
	}
	query := discovery.Query{Origin: discovery.DefaultOrigin, Radius: discovery.DefaultRadius}

	t.Run("filters backend results", func(t *testing.T) {
		source := mocks.NewKitchenSource(t)
		source.On("NearbyKitchens", mock.Anything).Return(nearby, nil).Once()
		finder := discovery.NewFinder(source, discovery.DemoKitchens(), quietLogger())

		result, err := finder.Find(context.Background(), query)
		require.NoError(t, err)
		assert.False(t, result.Fallback)
		require.Len(t, result.Kitchens, 1)
		assert.Equal(t, "1", result.Kitchens[0].ID)
	})

	t.Run("falls back to the sample listing", func(t *testing.T) {
		source := mocks.NewKitchenSource(t)
		source.On("NearbyKitchens", mock.Anything).Return(nil, errors.New("connection refused")).Once()
		finder := discovery.NewFinder(source, discovery.DemoKitchens(), quietLogger())

		result, err := finder.Find(context.Background(), discovery.Query{Origin: mumbai, Radius: 1000, Text: "rasoi"})
		require.NoError(t, err)
		assert.True(t, result.Fallback)
		assert.Equal(t, discovery.FallbackWarning, result.Warning)
		require.Len(t, result.Kitchens, 1)
		assert.Equal(t, "Maa ki Rasoi", result.Kitchens[0].Name)
		assert.Equal(t, "Sunita Sharma", result.Kitchens[0].OwnerName)
	})

	t.Run("without fallback the error is returned", func(t *testing.T) {
		source := mocks.NewKitchenSource(t)
		source.On("NearbyKitchens", mock.Anything).Return(nil, errors.New("connection refused")).Once()
		finder := discovery.NewFinder(source, nil, quietLogger())

		result, err := finder.Find(context.Background(), query)
		assert.Error(t, err)
		assert.Nil(t, result)
	})

	t.Run("cancellation is not masked", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		source := mocks.NewKitchenSource(t)
		source.On("NearbyKitchens", ctx).Return(nil, context.Canceled).Once()
		finder := discovery.NewFinder(source, discovery.DemoKitchens(), quietLogger())

		_, err := finder.Find(ctx, query)
		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestSearch_Supersede(t *testing.T) {
	source := mocks.NewKitchenSource(t)
	started := make(chan struct{})
	source.On("NearbyKitchens", mock.Anything).Run(func(args mock.Arguments) {
		close(started)
		<-args.Get(0).(context.Context).Done()
	}).Return(nil, context.Canceled).Once()
	source.On("NearbyKitchens", mock.Anything).Return([]model.Kitchen{
		kitchenAt("1", "Maa ki Rasoi", "North Indian", 28.6139, 77.2090),
	}, nil).Once()

	search := discovery.NewSearch(discovery.NewFinder(source, discovery.DemoKitchens(), quietLogger()))
	query := discovery.Query{Origin: discovery.DefaultOrigin, Radius: discovery.DefaultRadius}

	firstErr := make(chan error, 1)
	go func() {
		_, err := search.Run(context.Background(), query)
		firstErr <- err
	}()
	<-started

	result, err := search.Run(context.Background(), query)
	require.NoError(t, err)
	assert.Len(t, result.Kitchens, 1)

	select {
	case err := <-firstErr:
		assert.ErrorIs(t, err, discovery.ErrSuperseded)
	case <-time.After(time.Second):
		t.Fatal("first search was not cancelled")
	}
}

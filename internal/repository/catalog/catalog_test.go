package catalog

import (
	"context"
	"testing"

	"github.com/conecta-coleta/internal/domain"
	"github.com/conecta-coleta/internal/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDisposalPointRepository_List(t *testing.T) {
	repo := NewDisposalPointRepository()
	ctx := context.Background()

	all, err := repo.List(ctx, "")
	require.NoError(t, err)
	assert.Len(t, all, len(defaultPoints))

	ecopontos, err := repo.List(ctx, domain.CategoryEcoponto)
	require.NoError(t, err)
	require.NotEmpty(t, ecopontos)
	for _, p := range ecopontos {
		assert.Equal(t, domain.CategoryEcoponto, p.Category)
		assert.True(t, p.Location().Valid())
	}
}

func TestDisposalPointRepository_ListReturnsCopies(t *testing.T) {
	repo := NewDisposalPointRepository()
	ctx := context.Background()

	first, err := repo.List(ctx, "")
	require.NoError(t, err)
	first[0].Materials[0] = "changed"
	first[0].Title = "changed"

	second, err := repo.List(ctx, "")
	require.NoError(t, err)
	assert.NotEqual(t, "changed", second[0].Title)
	assert.NotEqual(t, "changed", second[0].Materials[0])
}

func TestDisposalPointRepository_GetByIDAndUpsert(t *testing.T) {
	repo := NewDisposalPointRepositoryWith(nil)
	ctx := context.Background()

	_, err := repo.GetByID(ctx, "pev-x")
	assert.ErrorIs(t, err, errors.ErrDisposalPointNotFound)

	point := &domain.DisposalPoint{ID: "pev-x", Category: domain.CategoryReciclagem, Title: "PEV X"}
	require.NoError(t, repo.Upsert(ctx, point))

	got, err := repo.GetByID(ctx, "pev-x")
	require.NoError(t, err)
	assert.Equal(t, "PEV X", got.Title)

	point.Title = "PEV X2"
	require.NoError(t, repo.Upsert(ctx, point))

	all, err := repo.List(ctx, "")
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "PEV X2", all[0].Title)
}

func TestRouteRepository(t *testing.T) {
	repo := NewRouteRepository()
	ctx := context.Background()

	route, err := repo.GetRoute(ctx, FallbackRouteID)
	require.NoError(t, err)
	assert.Equal(t, domain.RouteSourceFallback, route.Source)
	assert.Greater(t, route.Len(), 1)

	_, err = repo.GetRoute(ctx, "unknown")
	assert.ErrorIs(t, err, errors.ErrRouteNotFound)

	err = repo.SaveRoute(ctx, &domain.Route{ID: "empty"})
	assert.ErrorIs(t, err, errors.ErrInvalidRoute)

	custom := &domain.Route{ID: "custom", Points: []domain.Point{{Lat: -8, Lon: -34.9}}}
	require.NoError(t, repo.SaveRoute(ctx, custom))
	got, err := repo.GetRoute(ctx, "custom")
	require.NoError(t, err)
	assert.Equal(t, custom.Points, got.Points)
}

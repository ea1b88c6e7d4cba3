package postgres_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/conecta-coleta/internal/domain"
	"github.com/conecta-coleta/internal/pkg/errors"
	"github.com/conecta-coleta/internal/repository/catalog"
	"github.com/conecta-coleta/internal/repository/postgres/testhelpers"
)

func TestDisposalPointRepository_UpsertAndList(t *testing.T) {
	tdb := testhelpers.SetupTestDB(t)
	repo := tdb.NewDisposalPointRepository()
	ctx := context.Background()

	points := catalog.DefaultPoints()
	for i := range points {
		require.NoError(t, repo.Upsert(ctx, &points[i]))
	}

	all, err := repo.List(ctx, "")
	require.NoError(t, err)
	require.Len(t, all, len(points))

	// catalog order is preserved
	for i := range points {
		assert.Equal(t, points[i].ID, all[i].ID)
		assert.Equal(t, points[i].Materials, all[i].Materials)
	}

	ecopontos, err := repo.List(ctx, domain.CategoryEcoponto)
	require.NoError(t, err)
	require.NotEmpty(t, ecopontos)
	for _, p := range ecopontos {
		assert.Equal(t, domain.CategoryEcoponto, p.Category)
	}
}

func TestDisposalPointRepository_GetByID(t *testing.T) {
	tdb := testhelpers.SetupTestDB(t)
	repo := tdb.NewDisposalPointRepository()
	ctx := context.Background()

	_, err := repo.GetByID(ctx, "missing")
	assert.ErrorIs(t, err, errors.ErrDisposalPointNotFound)

	point := &domain.DisposalPoint{
		ID:       "pev-test",
		Category: domain.CategoryReciclagem,
		Title:    "PEV Teste",
		Lat:      -8.05,
		Lon:      -34.9,
	}
	require.NoError(t, repo.Upsert(ctx, point))

	got, err := repo.GetByID(ctx, "pev-test")
	require.NoError(t, err)
	assert.Equal(t, "PEV Teste", got.Title)
	assert.Empty(t, got.Materials)

	point.Title = "PEV Teste 2"
	point.Materials = []string{"Vidro"}
	require.NoError(t, repo.Upsert(ctx, point))

	got, err = repo.GetByID(ctx, "pev-test")
	require.NoError(t, err)
	assert.Equal(t, "PEV Teste 2", got.Title)
	assert.Equal(t, []string{"Vidro"}, got.Materials)
}

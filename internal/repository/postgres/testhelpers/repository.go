package testhelpers

import (
	"github.com/conecta-coleta/internal/domain/repository"
	"github.com/conecta-coleta/internal/repository/postgres"
)

// NewDisposalPointRepository creates a disposal point repository over the test database
func (tdb *TestDB) NewDisposalPointRepository() repository.DisposalPointRepository {
	return postgres.NewDisposalPointRepository(postgres.NewDBForTest(tdb.DB, tdb.Logger))
}

// NewRouteRepository creates a route repository over the test database
func (tdb *TestDB) NewRouteRepository() repository.RouteRepository {
	return postgres.NewRouteRepository(postgres.NewDBForTest(tdb.DB, tdb.Logger))
}

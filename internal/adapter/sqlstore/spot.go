// Package sqlstore resolves spot/region identifiers against the
// relational store: parameterized SQL, never interpolated.
package sqlstore

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/praiaforecast/forecast-api/internal/apperr"
	"github.com/praiaforecast/forecast-api/internal/domain"
)

const (
	querySurfSpot = `
SELECT l.litoral_id, l.nome, b.praia_id, b.orientacao, b.nome, l.latitude, l.longitude, l.uf,
       b.nome_do_mapa, b.dt_mapa_atualizado
FROM beaches b
JOIN locations l ON l.id = b.location_id
WHERE b.praia_id = $1
LIMIT 1`

	queryRegional = `
SELECT l.id, l.nome, l.latitude, l.longitude, l.uf
FROM locations l
WHERE l.litoral_id = $1
LIMIT 1`
)

// Resolver is the process-wide relational connection handle: a pool
// lazily constructed on first use and reused across requests. A failed
// query invalidates the pool so the next call reconnects, rather than
// continuing to hand out broken connections.
type Resolver struct {
	dsn string

	mu   sync.Mutex
	pool *pgxpool.Pool
}

// NewResolver creates a resolver bound to dsn. The pool is not opened
// until the first query.
func NewResolver(dsn string) *Resolver {
	return &Resolver{dsn: dsn}
}

func (r *Resolver) ensure(ctx context.Context) (*pgxpool.Pool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.pool != nil {
		return r.pool, nil
	}

	pool, err := pgxpool.New(ctx, r.dsn)
	if err != nil {
		return nil, fmt.Errorf("sqlstore: open pool: %w", err)
	}
	r.pool = pool
	return r.pool, nil
}

// invalidate closes and drops the pool so the next call reconnects.
// Called when a query fails; the error is not classified first.
func (r *Resolver) invalidate() {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.pool != nil {
		r.pool.Close()
		r.pool = nil
	}
}

// ResolveSpot resolves a surf spot by its praia_id.
func (r *Resolver) ResolveSpot(ctx context.Context, spotID int) (domain.SpotMeta, error) {
	pool, err := r.ensure(ctx)
	if err != nil {
		return domain.SpotMeta{}, apperr.Transient(err, "sqlstore: connect")
	}

	var meta domain.SpotMeta
	var orientation int
	var mapName, mapUpdatedAt *string

	row := pool.QueryRow(ctx, querySurfSpot, spotID)
	err = row.Scan(&meta.RegionID, &meta.RegionName, &meta.SpotID, &orientation,
		&meta.DisplayName, &meta.Lat, &meta.Lon, &meta.UF, &mapName, &mapUpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.SpotMeta{}, apperr.NotFound("spot %d not found", spotID)
	}
	if err != nil {
		r.invalidate()
		return domain.SpotMeta{}, apperr.Transient(err, "sqlstore: resolve spot %d", spotID)
	}

	meta.Orientation = &orientation
	meta.IsSurf = true
	if mapName != nil {
		meta.MapName = *mapName
	}
	if mapUpdatedAt != nil {
		meta.MapUpdatedAt = *mapUpdatedAt
	}
	return meta, nil
}

// ResolveRegion resolves a regional coast/litoral location by its
// coast_id. Orientation is unset: regional requests carry no beach
// orientation.
func (r *Resolver) ResolveRegion(ctx context.Context, coastID int) (domain.SpotMeta, error) {
	pool, err := r.ensure(ctx)
	if err != nil {
		return domain.SpotMeta{}, apperr.Transient(err, "sqlstore: connect")
	}

	var meta domain.SpotMeta
	var locationID int

	row := pool.QueryRow(ctx, queryRegional, coastID)
	err = row.Scan(&locationID, &meta.RegionName, &meta.Lat, &meta.Lon, &meta.UF)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.SpotMeta{}, apperr.NotFound("coast %d not found", coastID)
	}
	if err != nil {
		r.invalidate()
		return domain.SpotMeta{}, apperr.Transient(err, "sqlstore: resolve coast %d", coastID)
	}

	meta.SpotID = locationID
	meta.RegionID = coastID
	meta.DisplayName = meta.RegionName
	meta.IsSurf = false
	return meta, nil
}

// Close releases the pool, if one was ever opened.
func (r *Resolver) Close() {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.pool != nil {
		r.pool.Close()
		r.pool = nil
	}
}

package sqlstore

import (
	"context"
	"fmt"
	"sort"

	"github.com/praiaforecast/forecast-api/internal/domain"
)

// LocationNode is one entry of the hierarchical locations tree served
// by GET /locations: straightforward SQL, no caching or ranking beyond
// what the query itself does.
type LocationNode struct {
	ID       int            `json:"id"`
	Name     string         `json:"name"`
	UF       string         `json:"uf"`
	Children []LocationNode `json:"children,omitempty"`
}

// Tree returns the full region -> spot hierarchy.
func (r *Resolver) Tree(ctx context.Context) ([]LocationNode, error) {
	pool, err := r.ensure(ctx)
	if err != nil {
		return nil, fmt.Errorf("sqlstore: connect: %w", err)
	}

	rows, err := pool.Query(ctx, `SELECT id, nome, uf FROM locations ORDER BY uf, nome`)
	if err != nil {
		r.invalidate()
		return nil, fmt.Errorf("sqlstore: list locations: %w", err)
	}
	defer rows.Close()

	var tree []LocationNode
	for rows.Next() {
		var n LocationNode
		if err := rows.Scan(&n.ID, &n.Name, &n.UF); err != nil {
			return nil, fmt.Errorf("sqlstore: scan location: %w", err)
		}

		childRows, err := pool.Query(ctx, `SELECT praia_id, nome, '' FROM beaches WHERE location_id = $1 ORDER BY nome`, n.ID)
		if err != nil {
			r.invalidate()
			return nil, fmt.Errorf("sqlstore: list beaches for location %d: %w", n.ID, err)
		}
		for childRows.Next() {
			var c LocationNode
			if err := childRows.Scan(&c.ID, &c.Name, &c.UF); err != nil {
				childRows.Close()
				return nil, fmt.Errorf("sqlstore: scan beach: %w", err)
			}
			n.Children = append(n.Children, c)
		}
		childRows.Close()

		tree = append(tree, n)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("sqlstore: iterate locations: %w", err)
	}

	return tree, nil
}

// NearbySpot is one ranked result of a nearest-spots search.
type NearbySpot struct {
	SpotID  int     `json:"spotId"`
	Name    string  `json:"name"`
	Lat     float64 `json:"lat"`
	Lon     float64 `json:"lon"`
	RangeKm float64 `json:"rangeKm"`
}

// NearestSpots loads every beach and filters to those within rangeKm of
// (lat, lon) using Haversine distance, ordered nearest-first. This
// scans the full beaches table — acceptable for the dataset sizes the
// reference targets; no spatial index is mandated.
func (r *Resolver) NearestSpots(ctx context.Context, lat, lon, rangeKm float64) ([]NearbySpot, error) {
	pool, err := r.ensure(ctx)
	if err != nil {
		return nil, fmt.Errorf("sqlstore: connect: %w", err)
	}

	rows, err := pool.Query(ctx, `
SELECT b.praia_id, b.nome, l.latitude, l.longitude
FROM beaches b
JOIN locations l ON l.id = b.location_id`)
	if err != nil {
		r.invalidate()
		return nil, fmt.Errorf("sqlstore: list beaches: %w", err)
	}
	defer rows.Close()

	var results []NearbySpot
	for rows.Next() {
		var s NearbySpot
		if err := rows.Scan(&s.SpotID, &s.Name, &s.Lat, &s.Lon); err != nil {
			return nil, fmt.Errorf("sqlstore: scan beach: %w", err)
		}

		d := domain.HaversineKm(lat, lon, s.Lat, s.Lon)
		if d <= rangeKm {
			s.RangeKm = d
			results = append(results, s)
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("sqlstore: iterate beaches: %w", err)
	}

	sort.Slice(results, func(i, j int) bool { return results[i].RangeKm < results[j].RangeKm })

	return results, nil
}

// SearchByName finds locations whose name contains q (case-insensitive,
// parameterized to avoid the injection risk a naive LIKE concatenation
// would carry).
func (r *Resolver) SearchByName(ctx context.Context, q string) ([]LocationNode, error) {
	pool, err := r.ensure(ctx)
	if err != nil {
		return nil, fmt.Errorf("sqlstore: connect: %w", err)
	}

	rows, err := pool.Query(ctx,
		`SELECT id, nome, uf FROM locations WHERE nome ILIKE '%' || $1 || '%' ORDER BY nome`, q)
	if err != nil {
		r.invalidate()
		return nil, fmt.Errorf("sqlstore: search locations: %w", err)
	}
	defer rows.Close()

	var results []LocationNode
	for rows.Next() {
		var n LocationNode
		if err := rows.Scan(&n.ID, &n.Name, &n.UF); err != nil {
			return nil, fmt.Errorf("sqlstore: scan location: %w", err)
		}
		results = append(results, n)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("sqlstore: iterate locations: %w", err)
	}

	return results, nil
}

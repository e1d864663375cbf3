// Package usecase orchestrates a forecast request: resolve spot/region,
// fetch the encoded atmospheric and oceanic blobs, decode and assemble
// the 15-day response document.
package usecase

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/praiaforecast/forecast-api/internal/adapter/blobstore"
	"github.com/praiaforecast/forecast-api/internal/adapter/sqlstore"
	"github.com/praiaforecast/forecast-api/internal/apperr"
	"github.com/praiaforecast/forecast-api/internal/domain"
)

// blobFetchTimeout is the per-call timeout for a single blob fetch.
const blobFetchTimeout = 10 * time.Second

// ForecastRequest selects either a surf spot or a regional coast.
// Exactly one of SpotID/CoastID is set; the handler enforces this
// before calling Execute.
type ForecastRequest struct {
	SpotID  *int
	CoastID *int
}

// SpotResolver maps a spot/region identifier to its relational
// metadata. Satisfied by *sqlstore.Resolver.
type SpotResolver interface {
	ResolveSpot(ctx context.Context, spotID int) (domain.SpotMeta, error)
	ResolveRegion(ctx context.Context, coastID int) (domain.SpotMeta, error)
}

// BlobFetcher fetches and parses an encoded layer file, returning nil
// when the key does not exist. Satisfied by *blobstore.Client.
type BlobFetcher interface {
	FetchOptional(ctx context.Context, key string) (*domain.LayerFile, error)
}

// ForecastAssembler resolves, fetches and decodes a forecast request
// into a response document. It holds no per-request state; the
// resolver and blob client are process-wide handles shared across
// requests.
type ForecastAssembler struct {
	resolver SpotResolver
	blobs    BlobFetcher
}

// NewForecastAssembler wires a resolver and blob client into an
// assembler.
func NewForecastAssembler(resolver *sqlstore.Resolver, blobs *blobstore.Client) *ForecastAssembler {
	return &ForecastAssembler{resolver: resolver, blobs: blobs}
}

// Execute resolves req, fetches its layer files, and builds the
// response document.
func (a *ForecastAssembler) Execute(ctx context.Context, req ForecastRequest) (domain.Document, error) {
	meta, err := a.resolveSpot(ctx, req)
	if err != nil {
		return domain.Document{}, err
	}

	// A surf request's oceanic data comes from its beach-specific file,
	// which carries both the v-blob (oceanic rows) and the s-blob
	// (beach-overlay rows) together. A regional request's oceanic data
	// comes from the region's oceanic file, which carries no overlay.
	// Only two blobs are ever fetched for a given request; the regional
	// oceanic key is never combined with a beach-specific file.
	atmosKey := fmt.Sprintf("atmos/atmos%dpro.json", meta.RegionID)
	var oceanKey string
	if meta.IsSurf {
		oceanKey = fmt.Sprintf("oceanos/praia%d.json", meta.SpotID)
	} else {
		oceanKey = fmt.Sprintf("oceanos/oceano%d.json", meta.RegionID)
	}

	var atmosFile, oceanFile *domain.LayerFile

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		fetchCtx, cancel := context.WithTimeout(gctx, blobFetchTimeout)
		defer cancel()
		lf, err := a.blobs.FetchOptional(fetchCtx, atmosKey)
		if err != nil {
			return fmt.Errorf("fetch atmospheric layer: %w", err)
		}
		atmosFile = lf
		return nil
	})

	g.Go(func() error {
		fetchCtx, cancel := context.WithTimeout(gctx, blobFetchTimeout)
		defer cancel()
		lf, err := a.blobs.FetchOptional(fetchCtx, oceanKey)
		if err != nil {
			return fmt.Errorf("fetch oceanic layer: %w", err)
		}
		oceanFile = lf
		return nil
	})

	if err := g.Wait(); err != nil {
		return domain.Document{}, apperr.Transient(err, "forecast: fetch layers")
	}

	// Oceanic data is required: a surf request with no oceanic blob is
	// not recoverable. A regional request technically permits it
	// missing too, but with nothing to decode every day would come back
	// empty, so a missing oceanic layer is treated as not-found either
	// way.
	if oceanFile == nil {
		return domain.Document{}, apperr.NotFound("no oceanic data for region %d", meta.RegionID)
	}

	days, allHours := a.buildDays(oceanFile, atmosFile, meta)
	maxima := domain.Aggregate(allHours)

	docType := "OCEANIC"
	orientation := 0
	if meta.IsSurf {
		docType = "SURF"
		if meta.Orientation != nil {
			orientation = *meta.Orientation
		}
	}

	id := fmt.Sprintf("%d", meta.RegionID)
	if meta.IsSurf {
		id = fmt.Sprintf("%d", meta.SpotID)
	}

	forecastBody := domain.ForecastBody{
		Maxima: maxima,
		Days:   days,
	}
	if meta.MapName != "" {
		forecastBody.ForecastMapURL = fmt.Sprintf("https://surfguru.space/mapas/%s%s.png", meta.MapName, meta.MapUpdatedAt)
	}

	doc := domain.Document{
		ID:          id,
		Date:        fmt.Sprintf("%d-%d-%d", oceanFile.Ano, oceanFile.Mes, oceanFile.Dia),
		Type:        docType,
		Name:        meta.DisplayName,
		Orientation: orientation,
		Forecast:    forecastBody,
	}

	return doc, nil
}

func (a *ForecastAssembler) resolveSpot(ctx context.Context, req ForecastRequest) (domain.SpotMeta, error) {
	switch {
	case req.SpotID != nil:
		return a.resolver.ResolveSpot(ctx, *req.SpotID)
	case req.CoastID != nil:
		return a.resolver.ResolveRegion(ctx, *req.CoastID)
	default:
		return domain.SpotMeta{}, apperr.BadRequest("either praia_id or coastId must be provided")
	}
}

// baseDate derives day-0's calendar date from the oceanic layer file,
// falling back to "today" in UTC when the file's ano/mes/dia fields are
// missing or malformed.
func baseDate(lf *domain.LayerFile) time.Time {
	if lf.Ano <= 0 || lf.Mes <= 0 || lf.Mes > 12 || lf.Dia <= 0 || lf.Dia > 31 {
		now := time.Now().UTC()
		return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	}
	return time.Date(lf.Ano, time.Month(lf.Mes), lf.Dia, 0, 0, 0, 0, time.UTC)
}

// buildDays decodes all 15 days of the horizon and returns both the
// per-day records for the response document and the flat slice of
// every hour produced, for aggregation. The beach-overlay matrix, when
// present, is decoded from ocean's own sN field — a beach-specific
// layer file carries its overlay alongside its own oceanic rows, not in
// a separate file.
func (a *ForecastAssembler) buildDays(ocean, atmos *domain.LayerFile, meta domain.SpotMeta) ([]domain.Day, []domain.Hour) {
	base := baseDate(ocean)

	mode := domain.ModeOceanic
	var orientation *int
	if meta.IsSurf {
		mode = domain.ModeSurf
		orientation = meta.Orientation
	}

	days := make([]domain.Day, 15)
	var allHours []domain.Hour

	for n := 0; n < 15; n++ {
		date := base.AddDate(0, 0, n)
		day := domain.Day{
			Day:   date.Format("2006-01-02"),
			Tides: []domain.TideEntry{},
			Hours: []domain.Hour{},
		}

		oceanMatrix, ok := domain.DecodeDay(ocean.V[n])
		if !ok {
			days[n] = day
			continue
		}

		var beachMatrix domain.Matrix
		if ocean.HasS {
			beachMatrix, _ = domain.DecodeDay(ocean.S[n])
		}

		var atmosMatrix domain.Matrix
		if atmos != nil {
			atmosMatrix, _ = domain.DecodeDay(atmos.V[n])
		}

		hours := make([]domain.Hour, 8)
		for slot := 0; slot < 8; slot++ {
			hours[slot] = domain.BuildHour(oceanMatrix, beachMatrix, atmosMatrix, slot, orientation, mode)
		}
		day.Hours = hours
		allHours = append(allHours, hours...)

		if n == 0 {
			day.Tides = domain.DecodeTides(domain.TidesSlot0(oceanMatrix))
		}

		days[n] = day
	}

	return days, allHours
}

package usecase

import (
	"context"
	"testing"

	"github.com/praiaforecast/forecast-api/internal/apperr"
	"github.com/praiaforecast/forecast-api/internal/domain"
)

type fakeResolver struct {
	spot   domain.SpotMeta
	region domain.SpotMeta
	err    error
}

func (f *fakeResolver) ResolveSpot(ctx context.Context, spotID int) (domain.SpotMeta, error) {
	if f.err != nil {
		return domain.SpotMeta{}, f.err
	}
	return f.spot, nil
}

func (f *fakeResolver) ResolveRegion(ctx context.Context, coastID int) (domain.SpotMeta, error) {
	if f.err != nil {
		return domain.SpotMeta{}, f.err
	}
	return f.region, nil
}

type fakeBlobs struct {
	files map[string]*domain.LayerFile
}

func (f *fakeBlobs) FetchOptional(ctx context.Context, key string) (*domain.LayerFile, error) {
	return f.files[key], nil
}

func allDaysBlob(row0 string) [15]string {
	var v [15]string
	for i := range v {
		v[i] = row0
	}
	return v
}

func TestExecuteSurfRequest(t *testing.T) {
	orientation := 90
	resolver := &fakeResolver{
		spot: domain.SpotMeta{
			RegionID: 1, SpotID: 42, Orientation: &orientation,
			DisplayName: "Praia Central", IsSurf: true,
		},
	}

	ocean := &domain.LayerFile{Ano: 2026, Mes: 3, Dia: 1}
	ocean.V = allDaysBlob("15:14:13:12:11:10:9:8")

	blobs := &fakeBlobs{files: map[string]*domain.LayerFile{
		"oceanos/praia42.json": ocean,
	}}

	assembler := &ForecastAssembler{resolver: resolver, blobs: blobs}

	spotID := 42
	doc, err := assembler.Execute(context.Background(), ForecastRequest{SpotID: &spotID})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if doc.Type != "SURF" {
		t.Errorf("expected type SURF, got %v", doc.Type)
	}
	if doc.Orientation != 90 {
		t.Errorf("expected orientation 90, got %v", doc.Orientation)
	}
	if doc.Date != "2026-3-1" {
		t.Errorf("expected date \"2026-3-1\" (no zero-pad), got %q", doc.Date)
	}
	if len(doc.Forecast.Days) != 15 {
		t.Fatalf("expected 15 days, got %d", len(doc.Forecast.Days))
	}
	if doc.Forecast.Days[0].Day != "2026-03-01" {
		t.Errorf("day 0: expected zero-padded 2026-03-01, got %q", doc.Forecast.Days[0].Day)
	}
	if doc.Forecast.Days[14].Day != "2026-03-15" {
		t.Errorf("day 14: expected 2026-03-15, got %q", doc.Forecast.Days[14].Day)
	}
	if doc.Forecast.MaxHeight != 1.5 {
		t.Errorf("expected maxHeight 1.5, got %v", doc.Forecast.MaxHeight)
	}
}

func TestExecuteMissingOceanicIsNotFound(t *testing.T) {
	resolver := &fakeResolver{
		spot: domain.SpotMeta{RegionID: 1, SpotID: 42, IsSurf: true},
	}
	blobs := &fakeBlobs{files: map[string]*domain.LayerFile{}}

	assembler := &ForecastAssembler{resolver: resolver, blobs: blobs}

	spotID := 42
	_, err := assembler.Execute(context.Background(), ForecastRequest{SpotID: &spotID})
	if apperr.KindOf(err) != apperr.KindNotFound {
		t.Errorf("expected NotFound, got %v", err)
	}
}

func TestExecuteRequiresOneSelector(t *testing.T) {
	assembler := &ForecastAssembler{resolver: &fakeResolver{}, blobs: &fakeBlobs{files: map[string]*domain.LayerFile{}}}

	_, err := assembler.Execute(context.Background(), ForecastRequest{})
	if apperr.KindOf(err) != apperr.KindBadRequest {
		t.Errorf("expected BadRequest, got %v", err)
	}
}

func TestExecuteResolverError(t *testing.T) {
	resolver := &fakeResolver{err: apperr.NotFound("spot not found")}
	blobs := &fakeBlobs{files: map[string]*domain.LayerFile{}}
	assembler := &ForecastAssembler{resolver: resolver, blobs: blobs}

	spotID := 1
	_, err := assembler.Execute(context.Background(), ForecastRequest{SpotID: &spotID})
	if apperr.KindOf(err) != apperr.KindNotFound {
		t.Errorf("expected NotFound passthrough, got %v", err)
	}
}

func TestExecuteSurfRequestMapURL(t *testing.T) {
	resolver := &fakeResolver{
		spot: domain.SpotMeta{
			RegionID: 1, SpotID: 42, DisplayName: "Praia Central", IsSurf: true,
			MapName: "praia-central", MapUpdatedAt: "20260301",
		},
	}

	ocean := &domain.LayerFile{Ano: 2026, Mes: 3, Dia: 1}
	ocean.V = allDaysBlob("15:14:13:12:11:10:9:8")

	blobs := &fakeBlobs{files: map[string]*domain.LayerFile{
		"oceanos/praia42.json": ocean,
	}}

	assembler := &ForecastAssembler{resolver: resolver, blobs: blobs}

	spotID := 42
	doc, err := assembler.Execute(context.Background(), ForecastRequest{SpotID: &spotID})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := "https://surfguru.space/mapas/praia-central20260301.png"
	if doc.Forecast.ForecastMapURL != want {
		t.Errorf("expected forecastMapUrl %q, got %q", want, doc.Forecast.ForecastMapURL)
	}
}

func TestExecuteSurfRequestNoMapName(t *testing.T) {
	resolver := &fakeResolver{
		spot: domain.SpotMeta{
			RegionID: 1, SpotID: 42, DisplayName: "Praia Central", IsSurf: true,
		},
	}

	ocean := &domain.LayerFile{Ano: 2026, Mes: 3, Dia: 1}
	ocean.V = allDaysBlob("15:14:13:12:11:10:9:8")

	blobs := &fakeBlobs{files: map[string]*domain.LayerFile{
		"oceanos/praia42.json": ocean,
	}}

	assembler := &ForecastAssembler{resolver: resolver, blobs: blobs}

	spotID := 42
	doc, err := assembler.Execute(context.Background(), ForecastRequest{SpotID: &spotID})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if doc.Forecast.ForecastMapURL != "" {
		t.Errorf("expected empty forecastMapUrl when no map name, got %q", doc.Forecast.ForecastMapURL)
	}
}

func TestExecuteRegionalNoOverlay(t *testing.T) {
	resolver := &fakeResolver{
		region: domain.SpotMeta{RegionID: 7, SpotID: 7, DisplayName: "Litoral Norte", IsSurf: false},
	}

	ocean := &domain.LayerFile{Ano: 2026, Mes: 1, Dia: 10}
	ocean.V = allDaysBlob("10:0:0:0:0:0:0:0")

	blobs := &fakeBlobs{files: map[string]*domain.LayerFile{
		"oceanos/oceano7.json": ocean,
	}}

	assembler := &ForecastAssembler{resolver: resolver, blobs: blobs}

	coastID := 7
	doc, err := assembler.Execute(context.Background(), ForecastRequest{CoastID: &coastID})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if doc.Type != "OCEANIC" {
		t.Errorf("expected type OCEANIC, got %v", doc.Type)
	}
	if doc.Orientation != 0 {
		t.Errorf("expected orientation 0 for regional, got %v", doc.Orientation)
	}
}

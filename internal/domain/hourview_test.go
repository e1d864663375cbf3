package domain

import "testing"

func TestBuildHourOverlayOverride(t *testing.T) {
	ocean, ok := DecodeDay("15:14:13:12:11:10:9:8")
	if !ok {
		t.Fatalf("unexpected decode failure")
	}

	hNoOverlay := BuildHour(ocean, nil, nil, 0, nil, ModeOceanic)
	if hNoOverlay.Waves.TotalHeight.Value != 1.5 {
		t.Errorf("no overlay: expected totalHeight.value 1.5, got %v", hNoOverlay.Waves.TotalHeight.Value)
	}

	beach, ok := DecodeDay("12:0:0:0:0:0:0:0")
	if !ok {
		t.Fatalf("unexpected decode failure")
	}

	hOverlay := BuildHour(ocean, beach, nil, 0, nil, ModeSurf)
	if hOverlay.Waves.TotalHeight.Value != 1.2 {
		t.Errorf("with overlay: expected totalHeight.value 1.2, got %v", hOverlay.Waves.TotalHeight.Value)
	}
}

func TestBuildHourMissingAtmospheric(t *testing.T) {
	ocean, _ := DecodeDay("15:14:13:12:11:10:9:8")
	orientation := 90

	h := BuildHour(ocean, nil, nil, 0, &orientation, ModeSurf)

	if h.Winds.Coast.Wind != 0 {
		t.Errorf("missing atmospheric: expected coast.wind 0, got %v", h.Winds.Coast.Wind)
	}
	if h.Winds.Coast.Type != string(TypeOceanic) {
		t.Errorf("missing atmospheric: expected type OCEANIC, got %v", h.Winds.Coast.Type)
	}
	if h.Atmospheric.Pressure != 0 {
		t.Errorf("missing atmospheric: expected pressure 0, got %v", h.Atmospheric.Pressure)
	}
}

func TestBuildHourOceanicModeAlwaysOceanicWind(t *testing.T) {
	ocean, _ := DecodeDay("1:1:1:1:1:1:1:1")
	atmos, _ := DecodeDay("10:10:10:10:10:10:10:10;90:90:90:90:90:90:90:90")

	h := BuildHour(ocean, nil, atmos, 0, nil, ModeOceanic)
	if h.Winds.Coast.Type != string(TypeOceanic) {
		t.Errorf("OCEANIC mode: expected wind type OCEANIC, got %v", h.Winds.Coast.Type)
	}
}

func TestBuildHourSeaWindAlwaysSlotZero(t *testing.T) {
	// rowSeaWind = 20, rowSeaWindDirection = 21.
	rows := make([]string, 24)
	for i := range rows {
		rows[i] = "0:0:0:0:0:0:0:0"
	}
	rows[rowSeaWind] = "5:6:7:8:9:10:11:12"
	rows[rowSeaWindDirection] = "90:91:92:93:94:95:96:97"

	blob := ""
	for i, r := range rows {
		if i > 0 {
			blob += ";"
		}
		blob += r
	}

	ocean, ok := DecodeDay(blob)
	if !ok {
		t.Fatalf("unexpected decode failure")
	}

	for slot := 0; slot < slotsPerDay; slot++ {
		h := BuildHour(ocean, nil, nil, slot, nil, ModeOceanic)
		if h.Winds.Sea.Wind != 5 {
			t.Errorf("slot %d: expected sea.wind always 5 (slot 0), got %v", slot, h.Winds.Sea.Wind)
		}
		if h.Winds.Sea.DirectionDegree != 90 {
			t.Errorf("slot %d: expected sea.directionDegree always 90 (slot 0), got %v", slot, h.Winds.Sea.DirectionDegree)
		}
	}
}

func TestBuildHourBeachFewerThanFourRows(t *testing.T) {
	rows := make([]string, 24)
	for i := range rows {
		rows[i] = "0:0:0:0:0:0:0:0"
	}
	rows[rowWaveHeight] = "15:0:0:0:0:0:0:0"
	rows[rowWindseasHeight] = "7:0:0:0:0:0:0:0"

	blob := ""
	for i, r := range rows {
		if i > 0 {
			blob += ";"
		}
		blob += r
	}
	ocean, ok := DecodeDay(blob)
	if !ok {
		t.Fatalf("unexpected decode failure")
	}

	// Beach overlay has only 1 row: total height overrides, windseas
	// falls through to oceanic.
	beach, _ := DecodeDay("12:0:0:0:0:0:0:0")

	h := BuildHour(ocean, beach, nil, 0, nil, ModeSurf)
	if h.Waves.TotalHeight.Value != 1.2 {
		t.Errorf("expected overlay-sourced totalHeight.value 1.2, got %v", h.Waves.TotalHeight.Value)
	}
	if h.Waves.Windseas.Value != 0.7 {
		t.Errorf("expected oceanic-sourced windseas.value 0.7 (fall-through), got %v", h.Waves.Windseas.Value)
	}
}

func TestSlotHoursLabels(t *testing.T) {
	expected := []string{"00:00", "03:00", "06:00", "09:00", "12:00", "15:00", "18:00", "21:00"}
	for i, want := range expected {
		if slotHours[i] != want {
			t.Errorf("slotHours[%d]: expected %q, got %q", i, want, slotHours[i])
		}
	}
}

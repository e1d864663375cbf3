package domain

// SpotMeta is the relational metadata resolved for a forecast request:
// either a surf spot (beach-level, carries Orientation) or a regional
// coast/litoral location (Orientation unset).
type SpotMeta struct {
	RegionID     int
	RegionName   string
	SpotID       int
	Orientation  *int
	DisplayName  string
	Lat          float64
	Lon          float64
	UF           string
	IsSurf       bool
	MapName      string
	MapUpdatedAt string
}

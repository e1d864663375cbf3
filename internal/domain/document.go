package domain

// Day is one day of the 15-day horizon. An empty day (no oceanic blob
// for that date) has no hours and no tides, but still counts toward
// the 15-day total.
type Day struct {
	Day   string      `json:"day"`
	Tides []TideEntry `json:"tides"`
	Hours []Hour      `json:"hours"`
}

// ForecastBody is the "forecast" object of the response document.
type ForecastBody struct {
	Maxima
	ForecastMapURL string `json:"forecastMapUrl,omitempty"`
	Days           []Day  `json:"days"`
}

// Document is the top-level response document for GET /forecast.
type Document struct {
	ID          string       `json:"id"`
	Date        string       `json:"date"`
	Type        string       `json:"type"`
	Name        string       `json:"name"`
	Orientation int          `json:"orientation"`
	Forecast    ForecastBody `json:"forecast"`
}

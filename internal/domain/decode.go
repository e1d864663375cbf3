package domain

import (
	"strconv"
	"strings"
)

// slotsPerDay is the number of fixed intra-day times a wire-format
// variable carries: {00, 03, 06, 09, 12, 15, 18, 21} local.
const slotsPerDay = 8

// Matrix is a decoded day-blob: rows are variables (by wire position),
// each row holds exactly slotsPerDay string cells. Short input rows are
// padded with "0" cells rather than rejected — parse failures never
// become request failures.
type Matrix [][]string

// DecodeDay splits a semicolon/colon-delimited day-blob into a Matrix.
// An empty or whitespace-only blob yields (nil, false): the caller
// treats the day as present-but-empty.
func DecodeDay(dayBlob string) (Matrix, bool) {
	if strings.TrimSpace(dayBlob) == "" {
		return nil, false
	}

	rows := strings.Split(dayBlob, ";")
	matrix := make(Matrix, len(rows))

	for i, row := range rows {
		slots := strings.Split(row, ":")
		padded := make([]string, slotsPerDay)
		for s := 0; s < slotsPerDay; s++ {
			if s < len(slots) {
				padded[s] = slots[s]
			} else {
				padded[s] = "0"
			}
		}
		matrix[i] = padded
	}

	return matrix, true
}

// cellInt parses a matrix cell as an integer, falling back to 0 on any
// parse failure (truncated/sparse upstream data is expected, not an
// error condition).
func cellInt(s string) int {
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0
	}
	return v
}

// cellFloat parses a matrix cell as a float, falling back to 0.0 on any
// parse failure.
func cellFloat(s string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0
	}
	return v
}

// TideEntry is a single decoded tide reading for day 0.
type TideEntry struct {
	Time   string `json:"time"`
	Height string `json:"height"`
}

// TidesSlot0 extracts slot 0 of the tides row of a decoded day matrix
// — the only cell the packed tide sub-string is ever carried in.
// Returns "" if the row or slot is absent.
func TidesSlot0(m Matrix) string {
	return at(m, rowTides, 0, "")
}

// DecodeTides parses the packed tide sub-string carried in slot 0 of
// variable 23 of day-0's oceanic v-blob. Each 6-character group is
// "HHMMDd": time "HH:MM" and height "D.d" meters. Strings shorter than
// 6 characters yield no tides; a trailing run shorter than 6 characters
// is ignored silently.
func DecodeTides(s string) []TideEntry {
	entries := make([]TideEntry, 0)

	for i := 0; i+6 <= len(s); i += 6 {
		group := s[i : i+6]
		t := group[0:2] + ":" + group[2:4]
		h := group[4:5] + "." + group[5:6]
		entries = append(entries, TideEntry{Time: t, Height: h})
	}

	return entries
}

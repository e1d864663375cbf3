package domain

import "encoding/json"

// horizonDays is the fixed length of the served forecast: 15 days,
// numbered 0..14.
const horizonDays = 15

// LayerFile is an encoded location file as produced by upstream models:
// a base calendar date plus up to 15 oceanic/atmospheric day-blobs
// (v0..v14) and, for beach-specific files only, 15 parallel overlay
// day-blobs (s0..s14).
type LayerFile struct {
	Ano int `json:"ano"`
	Mes int `json:"mes"`
	Dia int `json:"dia"`

	V [horizonDays]string `json:"-"`
	S [horizonDays]string `json:"-"`
	HasS bool              `json:"-"`
}

// layerFileWire is the literal on-the-wire field layout (v0..v14,
// s0..s14) that LayerFile is unmarshaled from/through; kept separate so
// LayerFile.V/.S can stay fixed-size arrays instead of fifteen loose
// struct fields.
type layerFileWire struct {
	Ano int `json:"ano"`
	Mes int `json:"mes"`
	Dia int `json:"dia"`

	V0  string `json:"v0"`
	V1  string `json:"v1"`
	V2  string `json:"v2"`
	V3  string `json:"v3"`
	V4  string `json:"v4"`
	V5  string `json:"v5"`
	V6  string `json:"v6"`
	V7  string `json:"v7"`
	V8  string `json:"v8"`
	V9  string `json:"v9"`
	V10 string `json:"v10"`
	V11 string `json:"v11"`
	V12 string `json:"v12"`
	V13 string `json:"v13"`
	V14 string `json:"v14"`

	S0  *string `json:"s0,omitempty"`
	S1  *string `json:"s1,omitempty"`
	S2  *string `json:"s2,omitempty"`
	S3  *string `json:"s3,omitempty"`
	S4  *string `json:"s4,omitempty"`
	S5  *string `json:"s5,omitempty"`
	S6  *string `json:"s6,omitempty"`
	S7  *string `json:"s7,omitempty"`
	S8  *string `json:"s8,omitempty"`
	S9  *string `json:"s9,omitempty"`
	S10 *string `json:"s10,omitempty"`
	S11 *string `json:"s11,omitempty"`
	S12 *string `json:"s12,omitempty"`
	S13 *string `json:"s13,omitempty"`
	S14 *string `json:"s14,omitempty"`
}

// toLayerFile converts the literal v0..v14/s0..s14 JSON shape into a
// LayerFile with indexable arrays.
func (w layerFileWire) toLayerFile() LayerFile {
	lf := LayerFile{Ano: w.Ano, Mes: w.Mes, Dia: w.Dia}
	lf.V = [horizonDays]string{
		w.V0, w.V1, w.V2, w.V3, w.V4, w.V5, w.V6, w.V7,
		w.V8, w.V9, w.V10, w.V11, w.V12, w.V13, w.V14,
	}

	sPtrs := []*string{
		w.S0, w.S1, w.S2, w.S3, w.S4, w.S5, w.S6, w.S7,
		w.S8, w.S9, w.S10, w.S11, w.S12, w.S13, w.S14,
	}
	for i, p := range sPtrs {
		if p != nil {
			lf.HasS = true
			lf.S[i] = *p
		}
	}

	return lf
}

// ParseLayerFile decodes the raw JSON bytes of an encoded location
// file into a LayerFile.
func ParseLayerFile(data []byte) (LayerFile, error) {
	var w layerFileWire
	if err := json.Unmarshal(data, &w); err != nil {
		return LayerFile{}, err
	}
	return w.toLayerFile(), nil
}

package domain

import "testing"

func TestClassify(t *testing.T) {
	tests := []struct {
		orientation int
		windFrom    int
		expected    WindType
	}{
		{90, 270, TypeOffshore},
		{90, 90, TypeOnshore},
		{0, 180, TypeOffshore},
		{0, 66, TypeCrossed},
		{0, 65, TypeOnshore},
		{0, 125, TypeCrossed},
		{0, 126, TypeOffshore},
	}

	for _, tt := range tests {
		got := Classify(tt.orientation, tt.windFrom)
		if got != tt.expected {
			t.Errorf("Classify(%d, %d): expected %s, got %s", tt.orientation, tt.windFrom, tt.expected, got)
		}
	}
}

// TestClassifyWrap verifies classify(o, w) == classify(o+360, w) == classify(o, w+360).
func TestClassifyWrap(t *testing.T) {
	want := Classify(90, 270)

	if got := Classify(90+360, 270); got != want {
		t.Errorf("Classify(450, 270): expected %s, got %s", want, got)
	}
	if got := Classify(90, 270+360); got != want {
		t.Errorf("Classify(90, 630): expected %s, got %s", want, got)
	}
}

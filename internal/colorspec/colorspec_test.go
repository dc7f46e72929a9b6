package colorspec

import (
	"image/color"
	"testing"
)

func TestParse(t *testing.T) {
	tests := []struct {
		in      string
		want    color.RGBA
		wantErr bool
	}{
		{in: "#C8DCFF", want: color.RGBA{200, 220, 255, 255}},
		{in: "#c8dcff80", want: color.RGBA{200, 220, 255, 128}},
		{in: " LightGray ", want: color.RGBA{211, 211, 211, 255}},
		{in: "", wantErr: true},
		{in: "#12345", wantErr: true},
		{in: "#zzzzzz", wantErr: true},
		{in: "notacolour", wantErr: true},
	}
	for _, tc := range tests {
		got, err := Parse(tc.in)
		if tc.wantErr {
			if err == nil {
				t.Errorf("Parse(%q) = %v, want error", tc.in, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("Parse(%q) error: %v", tc.in, err)
			continue
		}
		if got != tc.want {
			t.Errorf("Parse(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestHexRoundTrip(t *testing.T) {
	for _, sw := range DefaultPalette {
		got, err := Parse(Hex(sw.Color))
		if err != nil || got != sw.Color {
			t.Errorf("%s: Parse(Hex) = %v, %v", sw.Name, got, err)
		}
	}
	if h := Hex(color.RGBA{1, 2, 3, 4}); h != "#01020304" {
		t.Errorf("Hex = %s", h)
	}
}

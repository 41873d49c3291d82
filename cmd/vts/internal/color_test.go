package internal

import "testing"

func TestParseHexColor(t *testing.T) {
	cases := []struct {
		in   string
		want RGBA
	}{
		{"#ffffff", RGBA{255, 255, 255, 255}},
		{"ffffff", RGBA{255, 255, 255, 255}},
		{"#ff8000", RGBA{255, 128, 0, 255}},
		{"#ff800080", RGBA{255, 128, 0, 128}},
		{"  #000000 ", RGBA{0, 0, 0, 255}},
	}

	for _, tc := range cases {
		got, err := ParseHexColor(tc.in)
		if err != nil {
			t.Errorf("ParseHexColor(%q): unexpected error: %v", tc.in, err)
			continue
		}
		if got != tc.want {
			t.Errorf("ParseHexColor(%q) = %+v, want %+v", tc.in, got, tc.want)
		}
	}
}

func TestParseHexColorRejectsInvalid(t *testing.T) {
	for _, in := range []string{"", "#fff", "#ffff", "#fffffff", "#gggggg", "red"} {
		if _, err := ParseHexColor(in); err == nil {
			t.Errorf("ParseHexColor(%q): expected error", in)
		}
	}
}

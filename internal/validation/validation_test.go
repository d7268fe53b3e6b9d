package validation

import "testing"

func TestPhone(t *testing.T) {
	cases := []struct {
		in   string
		want bool
	}{
		{"658508638", true},
		{"654046210", true},
		{"600000000", true},
		{"558508638", false}, // wrong leading digit
		{"65850863", false},  // eight digits
		{"6585086381", false},
		{"65850863a", false},
		{"+237658508638", false}, // no country-code normalization
		{" 658508638", false},
		{"", false},
	}
	for _, tc := range cases {
		if got := Phone(tc.in); got != tc.want {
			t.Errorf("Phone(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestPassword(t *testing.T) {
	if Password("abcde") {
		t.Error("five characters should be rejected")
	}
	if !Password("abcdef") {
		t.Error("six characters should be accepted")
	}
	if !Password("      ") {
		t.Error("no charset rule: six spaces are accepted")
	}
	if Password("ééé") { // six bytes, three characters
		t.Error("length is counted in characters, not bytes")
	}
	if !Password("sésame") {
		t.Error("six accented characters should be accepted")
	}
}

func TestTransactionReference(t *testing.T) {
	cases := []struct {
		in   string
		want bool
	}{
		{"PP250116.2359.B69653", true},
		{"AB123456.1234.C56789", true},
		{"PP2501162359B69653", false},   // missing dots
		{"pp250116.2359.b69653", false}, // lowercase
		{"P250116.2359.B69653", false},  // one-letter prefix
		{"PP250116.235.B69653", false},  // short middle block
		{"PP250116.2359.B6965", false},  // short final block
		{"PP250116.2359.B696531", false},
		{"", false},
	}
	for _, tc := range cases {
		if got := TransactionReference(tc.in); got != tc.want {
			t.Errorf("TransactionReference(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

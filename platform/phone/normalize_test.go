package phone

import "testing"

func TestNormalizeE164(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"41234567", "+4741234567"},
		{"412 34 567", "+4741234567"},
		{"+47 412 34 567", "+4741234567"},
		{"+4741234567", "+4741234567"},
		{"  41234567  ", "+4741234567"},
		{"", ""},
		{"ikke et nummer", "ikke et nummer"},
		{"123", "123"},
	}

	for _, tc := range tests {
		if got := NormalizeE164(tc.input); got != tc.want {
			t.Fatalf("NormalizeE164(%q) = %q, want %q", tc.input, got, tc.want)
		}
	}
}

package shared

import "testing"

func TestGenerateID(t *testing.T) {
	a := GenerateID()
	b := GenerateID()

	if a == "" || b == "" {
		t.Fatal("expected non-empty IDs")
	}

	if a == b {
		t.Errorf("expected unique IDs, got %s twice", a)
	}
}

func TestFormatDuration(t *testing.T) {
	tc := []struct {
		name    string
		seconds int
		want    string
	}{
		{
			name:    "under a minute",
			seconds: 45,
			want:    "45s",
		},
		{
			name:    "exact minutes",
			seconds: 120,
			want:    "2min",
		},
		{
			name:    "rounds to nearest minute",
			seconds: 150,
			want:    "3min",
		},
	}

	for _, tt := range tc {
		t.Run(tt.name, func(t *testing.T) {
			got := FormatDuration(tt.seconds)
			if got != tt.want {
				t.Errorf("FormatDuration(%d) = %v, want %v", tt.seconds, got, tt.want)
			}
		})
	}
}

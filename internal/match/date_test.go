package match

import (
	"errors"
	"testing"
	"time"
)

func TestParseStart(t *testing.T) {
	warsaw, err := time.LoadLocation("Europe/Warsaw")
	if err != nil {
		t.Skipf("time zone data unavailable: %v", err)
	}

	tests := []struct {
		name    string
		raw     string
		want    time.Time
		wantErr bool
	}{
		{
			name: "two digit day",
			raw:  "12 Mar 2024, 18:30",
			want: time.Date(2024, time.March, 12, 18, 30, 0, 0, warsaw),
		},
		{
			name: "single digit day",
			raw:  "5 Oct 2024, 09:00",
			want: time.Date(2024, time.October, 5, 9, 0, 0, 0, warsaw),
		},
		{
			name: "single digit hour",
			raw:  "5 Oct 2024, 9:15",
			want: time.Date(2024, time.October, 5, 9, 15, 0, 0, warsaw),
		},
		{
			name:    "invalid day and month",
			raw:     "32 Foo 2024",
			wantErr: true,
		},
		{
			name:    "missing time",
			raw:     "12 Mar 2024",
			wantErr: true,
		},
		{
			name:    "iso format",
			raw:     "2024-03-12 18:30",
			wantErr: true,
		},
		{
			name:    "surrounding whitespace",
			raw:     " 12 Mar 2024, 18:30 ",
			wantErr: true,
		},
		{
			name:    "empty",
			raw:     "",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseStart(tt.raw, warsaw)

			if tt.wantErr {
				var formatErr *FormatError
				if !errors.As(err, &formatErr) {
					t.Fatalf("ParseStart(%q) error = %v, want *FormatError", tt.raw, err)
				}
				if formatErr.Value != tt.raw {
					t.Errorf("FormatError.Value = %q, want %q", formatErr.Value, tt.raw)
				}
				return
			}

			if err != nil {
				t.Fatalf("ParseStart(%q) unexpected error: %v", tt.raw, err)
			}
			if !got.Equal(tt.want) {
				t.Errorf("ParseStart(%q) = %v, want %v", tt.raw, got, tt.want)
			}
			if got.Location() != warsaw {
				t.Errorf("ParseStart(%q) location = %v, want %v", tt.raw, got.Location(), warsaw)
			}
		})
	}
}

func TestParseStart_NilLocation(t *testing.T) {
	got, err := ParseStart("12 Mar 2024, 18:30", nil)
	if err != nil {
		t.Fatalf("ParseStart() unexpected error: %v", err)
	}
	if got.Location() != time.UTC {
		t.Errorf("location = %v, want UTC", got.Location())
	}
}

func TestIsBlank(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"", true},
		{" ", true},
		{"\n\t ", true},
		{"0", false},
		{" 87 ", false},
	}

	for _, tt := range tests {
		if got := IsBlank(tt.in); got != tt.want {
			t.Errorf("IsBlank(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

package dateutil

import (
	"errors"
	"testing"
	"time"
)

func TestParseDateFormat(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		format  string
		want    string
		wantErr error
	}{
		{name: "letter format", format: LetterDateFormat, want: "1/2/06"},
		{name: "ISO format", format: "YYYY-MM-DD", want: "2006-01-02"},
		{name: "long format", format: "MMMM D, YYYY", want: "January 2, 2006"},
		{name: "brackets preserve literal text", format: "[Date]: M/D/YY", want: "Date: 1/2/06"},
		{name: "only literal characters", format: "---", want: "---"},
		{name: "unclosed bracket", format: "[Date YYYY", wantErr: ErrInvalidDateFormat},
		{name: "empty format", format: "", wantErr: ErrInvalidDateFormat},
		{
			name:    "too long",
			format:  string(make([]byte, MaxDateFormatLength+1)),
			wantErr: ErrInvalidDateFormat,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := ParseDateFormat(tt.format)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("ParseDateFormat(%q) error = %v, wantErr %v", tt.format, err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseDateFormat(%q) unexpected error: %v", tt.format, err)
			}
			if got != tt.want {
				t.Errorf("ParseDateFormat(%q) = %q, want %q", tt.format, got, tt.want)
			}
		})
	}
}

func TestFormatDate(t *testing.T) {
	t.Parallel()

	newYork, err := time.LoadLocation("America/New_York")
	if err != nil {
		t.Skipf("tzdata unavailable: %v", err)
	}

	tests := []struct {
		name    string
		value   string
		loc     *time.Location
		want    string
		wantErr error
	}{
		{name: "no zero padding", value: "2024-03-05", want: "3/5/24"},
		{name: "two digit month and day", value: "2023-12-25", want: "12/25/23"},
		{name: "surrounding whitespace", value: " 2024-03-05 ", want: "3/5/24"},
		{name: "date-only keeps its day in any zone", value: "2024-03-05", loc: newYork, want: "3/5/24"},
		{name: "UTC instant", value: "2024-03-05T10:00:00Z", want: "3/5/24"},
		{name: "instant converted into zone", value: "2024-03-05T02:00:00Z", loc: newYork, want: "3/4/24"},
		{name: "offset instant converted to UTC", value: "2024-03-05T23:30:00-05:00", want: "3/6/24"},
		{name: "local timestamp", value: "2024-03-05T08:15", want: "3/5/24"},
		{name: "empty", value: "", wantErr: ErrInvalidDate},
		{name: "garbage", value: "next tuesday", wantErr: ErrInvalidDate},
		{name: "impossible day", value: "2024-02-30", wantErr: ErrInvalidDate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := FormatDate(tt.value, LetterDateFormat, tt.loc)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("FormatDate(%q) error = %v, wantErr %v", tt.value, err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("FormatDate(%q) unexpected error: %v", tt.value, err)
			}
			if got != tt.want {
				t.Errorf("FormatDate(%q) = %q, want %q", tt.value, got, tt.want)
			}
		})
	}
}

func TestLoadLocation(t *testing.T) {
	t.Parallel()

	loc, err := LoadLocation("")
	if err != nil || loc != time.UTC {
		t.Errorf("LoadLocation(\"\") = %v, %v; want UTC, nil", loc, err)
	}

	if _, err := LoadLocation("Mars/Olympus_Mons"); !errors.Is(err, ErrInvalidTimezone) {
		t.Errorf("LoadLocation(unknown) error = %v, want ErrInvalidTimezone", err)
	}
}

func TestResolveDate(t *testing.T) {
	t.Parallel()

	fixedTime := time.Date(2024, 3, 15, 10, 30, 0, 0, time.UTC)

	tests := []struct {
		name    string
		value   string
		want    string
		wantErr error
	}{
		{name: "literal date passthrough", value: "2024-01-01", want: "2024-01-01"},
		{name: "auto uses ISO format", value: "auto", want: "2024-03-15"},
		{name: "AUTO is case insensitive", value: "AUTO", want: "2024-03-15"},
		{name: "auto with letter preset", value: "auto:letter", want: "3/15/24"},
		{name: "auto with custom format", value: "auto:MMMM D, YYYY", want: "March 15, 2024"},
		{name: "auto: with empty format", value: "auto:", wantErr: ErrInvalidDateFormat},
		{name: "autoX invalid syntax", value: "autoX", wantErr: ErrInvalidDateFormat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := ResolveDate(tt.value, fixedTime)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("ResolveDate(%q) error = %v, wantErr %v", tt.value, err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("ResolveDate(%q) unexpected error: %v", tt.value, err)
			}
			if got != tt.want {
				t.Errorf("ResolveDate(%q) = %q, want %q", tt.value, got, tt.want)
			}
		})
	}
}

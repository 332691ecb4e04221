package utils

import (
	"testing"
	"time"
)

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2024-01-05")
	if err != nil {
		t.Fatalf("ParseDate: %v", err)
	}
	if got := FormatDate(d); got != "2024-01-05" {
		t.Errorf("FormatDate = %q, want 2024-01-05", got)
	}
}

// The MySQL driver serializes values in the DSN's loc before the server
// truncates them into DATE columns. Parsed dates must land on the same
// calendar day after that conversion or round-trips shift by a day on
// non-UTC hosts.
func TestParseDateSurvivesDriverSerialization(t *testing.T) {
	d, err := ParseDate("2024-01-05")
	if err != nil {
		t.Fatalf("ParseDate: %v", err)
	}
	if got := d.In(time.Local).Format(DateLayout); got != "2024-01-05" {
		t.Errorf("date serialized in the driver zone = %q, want 2024-01-05", got)
	}
}

func TestParseDateRejectsGarbage(t *testing.T) {
	for _, input := range []string{"", "05-01-2024", "2024/01/05", "2024-13-01", "not-a-date"} {
		if _, err := ParseDate(input); err == nil {
			t.Errorf("ParseDate(%q) should fail", input)
		}
	}
}

package model

import (
	"testing"
	"time"

	"github.com/goccy/go-json"
)

func TestDateMarshalJSON(t *testing.T) {
	tests := []struct {
		d    Date
		want string
	}{
		{d: NewDate(2024, time.April, 1), want: `"2024-04-01"`},
		{d: NewDate(2023, time.December, 31), want: `"2023-12-31"`},
	}

	for _, tc := range tests {
		t.Run(tc.want, func(t *testing.T) {
			b, err := json.Marshal(tc.d)
			if err != nil {
				t.Fatalf("error marshaling date: %v", err)
			}
			if string(b) != tc.want {
				t.Errorf("expected: '%s', got: '%s'", tc.want, string(b))
			}
		})
	}
}

func TestDateUnmarshalJSON(t *testing.T) {
	tests := []struct {
		input   string
		want    Date
		wantErr bool
	}{
		{input: `"2024-04-01"`, want: NewDate(2024, time.April, 1)},
		{input: `null`, want: Date{}},
		{input: `"April 1st"`, wantErr: true},
	}

	for _, tc := range tests {
		t.Run(tc.input, func(t *testing.T) {
			var d Date
			err := json.Unmarshal([]byte(tc.input), &d)
			if tc.wantErr {
				if err == nil {
					t.Fatalf("expected an error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("error unmarshaling date: %v", err)
			}
			if !d.Equal(tc.want.Time) {
				t.Errorf("expected: '%v', got: '%v'", tc.want, d)
			}
		})
	}
}

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2024-09-05")
	if err != nil {
		t.Fatalf("error parsing date: %v", err)
	}
	if d.String() != "2024-09-05" {
		t.Errorf("expected: '2024-09-05', got: '%s'", d.String())
	}

	if _, err := ParseDate("09/05/2024"); err == nil {
		t.Errorf("expected an error for a non ISO date")
	}
}

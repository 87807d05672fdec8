package model

import "testing"

func TestParsePosition(t *testing.T) {
	tests := []struct {
		input string
		want  Position
	}{
		{input: "QB", want: POS_QB},
		{input: "rb", want: POS_RB},
		{input: "Wr", want: POS_WR},
		{input: "TE", want: POS_TE},
		{input: "K", want: POS_K},
		{input: "DST", want: POS_DEF},
		{input: "DEF", want: POS_DEF},
		{input: "coach", want: POS_UNKNOWN},
		{input: "", want: POS_UNKNOWN},
	}

	for _, tc := range tests {
		t.Run(tc.input, func(t *testing.T) {
			got := ParsePosition(tc.input)
			if got != tc.want {
				t.Errorf("expected: '%v', got: '%v'", tc.want, got)
			}
		})
	}
}

func TestParseScoringType(t *testing.T) {
	tests := []struct {
		input string
		want  ScoringType
	}{
		{input: "Standard", want: SCORING_STANDARD},
		{input: "PPR", want: SCORING_PPR},
		{input: "ppr", want: SCORING_PPR},
		{input: "Half-PPR", want: SCORING_HALF_PPR},
		{input: "half ppr", want: SCORING_HALF_PPR},
		{input: "bestball", want: SCORING_UNKNOWN},
	}

	for _, tc := range tests {
		t.Run(tc.input, func(t *testing.T) {
			got := ParseScoringType(tc.input)
			if got != tc.want {
				t.Errorf("expected: '%v', got: '%v'", tc.want, got)
			}
		})
	}
}

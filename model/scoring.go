package model

import (
	"strings"
)

type ScoringType string

const (
	SCORING_UNKNOWN  ScoringType = "UNK"
	SCORING_STANDARD ScoringType = "Standard"
	SCORING_PPR      ScoringType = "PPR"
	SCORING_HALF_PPR ScoringType = "Half-PPR"
)

func ParseScoringType(s string) ScoringType {
	switch strings.ToLower(s) {
	case "standard":
		return SCORING_STANDARD
	case "ppr":
		return SCORING_PPR
	case "half-ppr", "half ppr", "half":
		return SCORING_HALF_PPR
	default:
		return SCORING_UNKNOWN
	}
}

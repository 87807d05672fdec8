package swc

import (
	"errors"
	"fmt"
	"time"
)

const (
	defaultTimeout           = 5 * time.Second
	defaultBackoffMaxElapsed = 30 * time.Second

	// Bulk file formats the API can serve.
	FormatCSV     = "csv"
	FormatParquet = "parquet"
)

// Config holds the SDK settings. The zero value of every field other than
// BaseURL means "use the default".
type Config struct {
	// BaseURL is the root of the SWC API, e.g. https://api.sportsworldcentral.com
	BaseURL string

	// Timeout applies to each individual HTTP call.
	Timeout time.Duration

	// DisableBackoff turns off the retry policy so every call is attempted
	// exactly once. Retrying is on by default.
	DisableBackoff bool

	// BackoffMaxElapsed bounds the total time spent retrying a single call,
	// including the time spent waiting between attempts.
	BackoffMaxElapsed time.Duration

	// BulkFileFormat selects the file format of the bulk download
	// endpoints, csv (the default) or parquet.
	BulkFileFormat string
}

func (c *Config) applyDefaults() error {
	if c.BaseURL == "" {
		return errors.New("config BaseURL must be provided")
	}
	if c.Timeout == 0 {
		c.Timeout = defaultTimeout
	}
	if c.BackoffMaxElapsed == 0 {
		c.BackoffMaxElapsed = defaultBackoffMaxElapsed
	}
	switch c.BulkFileFormat {
	case "":
		c.BulkFileFormat = FormatCSV
	case FormatCSV, FormatParquet:
	default:
		return fmt.Errorf("unsupported bulk file format: %s", c.BulkFileFormat)
	}
	return nil
}

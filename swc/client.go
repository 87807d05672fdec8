// Package swc is the Go SDK for the Sports World Central fantasy football
// API. Every call is a single synchronous HTTP request wrapped in an
// exponential backoff retry policy for transient failures.
package swc

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/goccy/go-json"
	"github.com/sportsworldcentral/swc_api/model"
)

const (
	healthCheckEndpoint      = "/"
	listPlayersEndpoint      = "/v0/players/"
	getPlayerEndpoint        = "/v0/players/%d"
	listPerformancesEndpoint = "/v0/performances/"
	listLeaguesEndpoint      = "/v0/leagues/"
	getLeagueEndpoint        = "/v0/leagues/%d"
	listTeamsEndpoint        = "/v0/teams/"
	getCountsEndpoint        = "/v0/counts/"
	bulkEndpoint             = "/v0/bulk/"
)

type Client interface {
	HealthCheck(ctx context.Context) (*HealthCheck, error)

	ListPlayers(ctx context.Context, opts ListPlayersOptions) ([]model.Player, error)
	GetPlayer(ctx context.Context, playerID int32) (*model.Player, error)

	ListPerformances(ctx context.Context, opts ListPerformancesOptions) ([]model.Performance, error)

	ListLeagues(ctx context.Context, opts ListLeaguesOptions) ([]model.League, error)
	GetLeague(ctx context.Context, leagueID int32) (*model.League, error)

	ListTeams(ctx context.Context, opts ListTeamsOptions) ([]model.Team, error)

	GetCounts(ctx context.Context) (*model.Counts, error)

	// Bulk downloads return the raw file contents in the configured
	// BulkFileFormat. The files contain every row regardless of filters.
	GetBulkPlayerFile(ctx context.Context) ([]byte, error)
	GetBulkLeagueFile(ctx context.Context) ([]byte, error)
	GetBulkTeamFile(ctx context.Context) ([]byte, error)
	GetBulkPerformanceFile(ctx context.Context) ([]byte, error)
	GetBulkTeamPlayerFile(ctx context.Context) ([]byte, error)
}

type HealthCheck struct {
	Message string `json:"message"`
}

// ListOptions are the pagination and watermark parameters shared by every
// list call. Zero values mean "omit the parameter" and leave the server
// defaults (skip 0, limit 100) in charge.
type ListOptions struct {
	Skip  int
	Limit int
	// MinimumLastChangedDate keeps only records changed on or after the
	// given date. The zero value omits the filter entirely.
	MinimumLastChangedDate model.Date
}

func (o ListOptions) values() url.Values {
	v := url.Values{}
	if o.Skip > 0 {
		v.Set("skip", strconv.Itoa(o.Skip))
	}
	if o.Limit > 0 {
		v.Set("limit", strconv.Itoa(o.Limit))
	}
	if !o.MinimumLastChangedDate.IsZero() {
		v.Set("minimum_last_changed_date", o.MinimumLastChangedDate.String())
	}
	return v
}

// Name filters are exact, case-sensitive matches. An empty string omits
// the filter; it never means "match the empty string".
type ListPlayersOptions struct {
	ListOptions
	FirstName string
	LastName  string
}

type ListPerformancesOptions struct {
	ListOptions
}

type ListLeaguesOptions struct {
	ListOptions
	LeagueName string
}

type ListTeamsOptions struct {
	ListOptions
	TeamName string
	// LeagueID filters teams to one league. Nil omits the filter.
	LeagueID *int32
}

type client struct {
	baseURL           string
	httpClient        *http.Client
	backoff           bool
	backoffMaxElapsed time.Duration
	bulkFileFormat    string
}

func New(cfg Config) (Client, error) {
	if err := cfg.applyDefaults(); err != nil {
		return nil, err
	}

	c := &client{
		baseURL: cfg.BaseURL,
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		backoff:           !cfg.DisableBackoff,
		backoffMaxElapsed: cfg.BackoffMaxElapsed,
		bulkFileFormat:    cfg.BulkFileFormat,
	}
	return c, nil
}

func (c *client) HealthCheck(ctx context.Context) (*HealthCheck, error) {
	var result HealthCheck
	if err := c.getJSON(ctx, healthCheckEndpoint, nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *client) ListPlayers(ctx context.Context, opts ListPlayersOptions) ([]model.Player, error) {
	query := opts.values()
	if opts.FirstName != "" {
		query.Set("first_name", opts.FirstName)
	}
	if opts.LastName != "" {
		query.Set("last_name", opts.LastName)
	}

	var result []model.Player
	if err := c.getJSON(ctx, listPlayersEndpoint, query, &result); err != nil {
		return nil, err
	}
	return result, nil
}

func (c *client) GetPlayer(ctx context.Context, playerID int32) (*model.Player, error) {
	var result model.Player
	if err := c.getJSON(ctx, fmt.Sprintf(getPlayerEndpoint, playerID), nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *client) ListPerformances(ctx context.Context, opts ListPerformancesOptions) ([]model.Performance, error) {
	var result []model.Performance
	if err := c.getJSON(ctx, listPerformancesEndpoint, opts.values(), &result); err != nil {
		return nil, err
	}
	return result, nil
}

func (c *client) ListLeagues(ctx context.Context, opts ListLeaguesOptions) ([]model.League, error) {
	query := opts.values()
	if opts.LeagueName != "" {
		query.Set("league_name", opts.LeagueName)
	}

	var result []model.League
	if err := c.getJSON(ctx, listLeaguesEndpoint, query, &result); err != nil {
		return nil, err
	}
	return result, nil
}

func (c *client) GetLeague(ctx context.Context, leagueID int32) (*model.League, error) {
	var result model.League
	if err := c.getJSON(ctx, fmt.Sprintf(getLeagueEndpoint, leagueID), nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *client) ListTeams(ctx context.Context, opts ListTeamsOptions) ([]model.Team, error) {
	query := opts.values()
	if opts.TeamName != "" {
		query.Set("team_name", opts.TeamName)
	}
	if opts.LeagueID != nil {
		query.Set("league_id", strconv.FormatInt(int64(*opts.LeagueID), 10))
	}

	var result []model.Team
	if err := c.getJSON(ctx, listTeamsEndpoint, query, &result); err != nil {
		return nil, err
	}
	return result, nil
}

func (c *client) GetCounts(ctx context.Context) (*model.Counts, error) {
	var result model.Counts
	if err := c.getJSON(ctx, getCountsEndpoint, nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *client) GetBulkPlayerFile(ctx context.Context) ([]byte, error) {
	return c.getBulkFile(ctx, "players")
}

func (c *client) GetBulkLeagueFile(ctx context.Context) ([]byte, error) {
	return c.getBulkFile(ctx, "leagues")
}

func (c *client) GetBulkTeamFile(ctx context.Context) ([]byte, error) {
	return c.getBulkFile(ctx, "teams")
}

func (c *client) GetBulkPerformanceFile(ctx context.Context) ([]byte, error) {
	return c.getBulkFile(ctx, "performances")
}

func (c *client) GetBulkTeamPlayerFile(ctx context.Context) ([]byte, error) {
	return c.getBulkFile(ctx, "team-players")
}

func (c *client) getBulkFile(ctx context.Context, entity string) ([]byte, error) {
	query := url.Values{}
	query.Set("format", c.bulkFileFormat)
	return c.get(ctx, bulkEndpoint+entity, query)
}

func (c *client) getJSON(ctx context.Context, path string, query url.Values, out any) error {
	body, err := c.get(ctx, path, query)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("error parsing response from %s: %w", path, err)
	}
	return nil
}

// get performs one GET against the API with the retry policy applied.
// Network failures and transient status codes are retried with exponential
// backoff and jitter until the elapsed budget runs out; everything else is
// surfaced immediately. The last error seen is always returned, a call
// never fails silently.
func (c *client) get(ctx context.Context, path string, query url.Values) ([]byte, error) {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var body []byte
	op := func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
		if err != nil {
			return backoff.Permanent(err)
		}

		resp, err := c.httpClient.Do(req)
		if err != nil {
			return fmt.Errorf("error sending http request: %w", err)
		}
		defer resp.Body.Close()

		b, err := io.ReadAll(resp.Body)
		if err != nil {
			return fmt.Errorf("error reading response body: %w", err)
		}

		if resp.StatusCode == http.StatusOK {
			body = b
			return nil
		}

		// Anything that is not a success is an error, including status
		// codes outside the expected ranges.
		apiErr := newAPIError(resp, b)
		if isTransient(resp.StatusCode) {
			return apiErr
		}
		return backoff.Permanent(apiErr)
	}

	if err := backoff.Retry(op, c.newBackOff(ctx)); err != nil {
		return nil, err
	}
	return body, nil
}

func (c *client) newBackOff(ctx context.Context) backoff.BackOffContext {
	if !c.backoff {
		return backoff.WithContext(&backoff.StopBackOff{}, ctx)
	}

	bo := backoff.NewExponentialBackOff()
	bo.MaxElapsedTime = c.backoffMaxElapsed
	return backoff.WithContext(bo, ctx)
}

func isTransient(status int) bool {
	switch status {
	case http.StatusTooManyRequests,
		http.StatusInternalServerError,
		http.StatusBadGateway,
		http.StatusServiceUnavailable,
		http.StatusGatewayTimeout:
		return true
	}
	return false
}

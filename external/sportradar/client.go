package sportradar

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"strings"
	"time"

	sonic "github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"
	"github.com/riskibarqy/gridiron-ingest/internal/platform/logging"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"golang.org/x/time/rate"
)

const defaultBaseURL = "https://api.sportradar.com/nfl/official/v7/en/"

var apiKeyParamRegex = regexp.MustCompile(`api_key=[^&\s"']+`)

// ErrRateLimited marks a 429 response. The caller decides the retry policy;
// the client itself makes exactly one attempt per call.
var ErrRateLimited = crerr.New("sportradar rate limited")

func IsRateLimited(err error) bool {
	return crerr.Is(err, ErrRateLimited)
}

type ClientConfig struct {
	HTTPClient        *http.Client
	BaseURL           string
	APIKey            string
	Timeout           time.Duration
	RequestsPerMinute int
	Logger            *logging.Logger
}

type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	limiter    *rate.Limiter
	logger     *logging.Logger
}

func NewClient(cfg ClientConfig) *Client {
	logger := cfg.Logger
	if logger == nil {
		logger = logging.Default()
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{
			Timeout:   cfg.Timeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		}
	}
	if httpClient.Timeout <= 0 {
		httpClient.Timeout = 20 * time.Second
	}

	baseURL := strings.TrimSpace(cfg.BaseURL)
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	if !strings.HasSuffix(baseURL, "/") {
		baseURL += "/"
	}

	rpm := cfg.RequestsPerMinute
	if rpm < 1 {
		rpm = 10
	}

	return &Client{
		httpClient: httpClient,
		baseURL:    baseURL,
		apiKey:     strings.TrimSpace(cfg.APIKey),
		limiter:    rate.NewLimiter(rate.Every(time.Minute/time.Duration(rpm)), 1),
		logger:     logger,
	}
}

// GameStatistics fetches the per-game statistics payload. The raw body is
// returned alongside the decoded payload so callers can snapshot it.
func (c *Client) GameStatistics(ctx context.Context, gameUUID string) (map[string]any, []byte, error) {
	if strings.TrimSpace(gameUUID) == "" {
		return nil, nil, fmt.Errorf("game uuid is required")
	}

	var payload map[string]any
	raw, err := c.doJSON(ctx, fmt.Sprintf("games/%s/statistics.json", gameUUID), &payload)
	if err != nil {
		return nil, nil, fmt.Errorf("fetch game statistics game=%s: %w", gameUUID, err)
	}
	return payload, raw, nil
}

func (c *Client) LeagueTeams(ctx context.Context) (TeamsPayload, []byte, error) {
	var payload TeamsPayload
	raw, err := c.doJSON(ctx, "league/teams.json", &payload)
	if err != nil {
		return TeamsPayload{}, nil, fmt.Errorf("fetch league teams: %w", err)
	}
	return payload, raw, nil
}

func (c *Client) SeasonSchedule(ctx context.Context, year int) (SchedulePayload, []byte, error) {
	var payload SchedulePayload
	raw, err := c.doJSON(ctx, fmt.Sprintf("games/%d/REG/schedule.json", year), &payload)
	if err != nil {
		return SchedulePayload{}, nil, fmt.Errorf("fetch season schedule year=%d: %w", year, err)
	}
	return payload, raw, nil
}

func (c *Client) WeeklyDepthCharts(ctx context.Context, year, week int) (DepthChartsPayload, []byte, error) {
	var payload DepthChartsPayload
	raw, err := c.doJSON(ctx, fmt.Sprintf("seasons/%d/REG/%02d/depth_charts.json", year, week), &payload)
	if err != nil {
		return DepthChartsPayload{}, nil, fmt.Errorf("fetch depth charts year=%d week=%d: %w", year, week, err)
	}
	return payload, raw, nil
}

func (c *Client) WeeklyInjuries(ctx context.Context, year, week int) (InjuriesPayload, []byte, error) {
	var payload InjuriesPayload
	raw, err := c.doJSON(ctx, fmt.Sprintf("seasons/%d/REG/%02d/injuries.json", year, week), &payload)
	if err != nil {
		return InjuriesPayload{}, nil, fmt.Errorf("fetch injuries year=%d week=%d: %w", year, week, err)
	}
	return payload, raw, nil
}

func (c *Client) doJSON(ctx context.Context, path string, target any) ([]byte, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	fullURL := c.baseURL + path
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("accept", "application/json")
	req.Header.Set("x-api-key", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("send request: %s", c.sanitize(err.Error()))
	}
	raw, readErr := io.ReadAll(io.LimitReader(resp.Body, 32<<20))
	_ = resp.Body.Close()
	if readErr != nil {
		return nil, fmt.Errorf("read response body: %w", readErr)
	}

	if resp.StatusCode == http.StatusTooManyRequests {
		c.logger.WarnContext(ctx, "sportradar rate limit hit", "path", path)
		return nil, crerr.Mark(fmt.Errorf("provider status=%d", resp.StatusCode), ErrRateLimited)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		err := fmt.Errorf("provider status=%d body=%s", resp.StatusCode, abbreviateBody(raw))
		c.logger.WarnContext(ctx, "sportradar request failed", "path", path, "error", err)
		return nil, err
	}

	if err := sonic.Unmarshal(raw, target); err != nil {
		return nil, fmt.Errorf("decode provider payload: %w", err)
	}
	return raw, nil
}

func (c *Client) sanitize(value string) string {
	value = strings.TrimSpace(value)
	if c.apiKey != "" {
		value = strings.ReplaceAll(value, c.apiKey, "REDACTED")
	}
	return apiKeyParamRegex.ReplaceAllString(value, "api_key=REDACTED")
}

func abbreviateBody(raw []byte) string {
	const limit = 256
	body := strings.TrimSpace(string(raw))
	if len(body) > limit {
		return body[:limit] + "..."
	}
	return body
}

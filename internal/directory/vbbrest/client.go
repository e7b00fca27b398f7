package vbbrest

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/vbb-change-positions/internal/common/logger"
	"github.com/vbb-change-positions/internal/directory"
	"github.com/vbb-change-positions/pkg/positions/models"
)

const DefaultBaseURL = "https://v6.vbb.transport.rest"

// Client talks to a hafas-rest-api instance for the VBB network.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     logger.Logger
}

func New(baseURL string, timeout time.Duration, logger logger.Logger) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
		logger: logger,
	}
}

type apiLine struct {
	Name    string `json:"name"`
	Product string `json:"product"`
}

type apiStop struct {
	Type  string    `json:"type"`
	ID    string    `json:"id"`
	Name  string    `json:"name"`
	Lines []apiLine `json:"lines"`
}

func (s apiStop) toDomain() models.Station {
	return models.Station{ID: s.ID, Name: s.Name}
}

func (c *Client) StationByID(ctx context.Context, id string) (models.Station, error) {
	stop, err := c.fetchStop(ctx, id, false)
	if err != nil {
		return models.Station{}, err
	}
	return stop.toDomain(), nil
}

func (c *Client) LinesAt(ctx context.Context, stationID string) ([]models.Line, error) {
	stop, err := c.fetchStop(ctx, stationID, true)
	if err != nil {
		return nil, err
	}

	lines := make([]models.Line, 0, len(stop.Lines))
	for _, l := range stop.Lines {
		lines = append(lines, models.Line{Name: l.Name, Product: l.Product})
	}
	return lines, nil
}

func (c *Client) SearchStations(ctx context.Context, query string, limit int) ([]models.Station, error) {
	if strings.TrimSpace(query) == "" {
		return nil, nil
	}

	params := url.Values{}
	params.Set("query", query)
	params.Set("results", strconv.Itoa(limit))
	params.Set("stops", "true")
	params.Set("addresses", "false")
	params.Set("poi", "false")
	params.Set("fuzzy", "true")
	params.Set("linesOfStops", "false")

	var locations []apiStop
	if err := c.get(ctx, "/locations", params, &locations); err != nil {
		return nil, err
	}

	stations := make([]models.Station, 0, len(locations))
	for _, loc := range locations {
		if loc.Type != "stop" && loc.Type != "station" {
			continue
		}
		stations = append(stations, loc.toDomain())
		if len(stations) == limit {
			break
		}
	}
	return stations, nil
}

func (c *Client) fetchStop(ctx context.Context, id string, withLines bool) (*apiStop, error) {
	params := url.Values{}
	params.Set("linesOfStops", strconv.FormatBool(withLines))

	var stop apiStop
	if err := c.get(ctx, "/stops/"+url.PathEscape(id), params, &stop); err != nil {
		return nil, err
	}
	return &stop, nil
}

func (c *Client) get(ctx context.Context, path string, params url.Values, out interface{}) error {
	reqURL := fmt.Sprintf("%s%s?%s", c.baseURL, path, params.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", "vbb-change-positions")

	c.logger.Debug("Requesting VBB API", "url", reqURL)
	start := time.Now()

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("Failed to execute request", "url", reqURL, "error", err)
		return fmt.Errorf("executing request to %s: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return directory.ErrNotFound
	}
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		c.logger.Error("API returned error status",
			"status_code", resp.StatusCode,
			"url", reqURL,
			"response_body", string(body))
		return fmt.Errorf("API returned status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decoding response: %w", err)
	}

	c.logger.Debug("VBB API responded", "url", reqURL, "duration_ms", time.Since(start).Milliseconds())
	return nil
}

package osrm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"
)

var (
	// ErrUnavailable marks timeouts and connection failures. The caller keeps
	// its previous route and retries with backoff.
	ErrUnavailable = errors.New("osrm: routing engine unavailable")
	// ErrNoRoute is returned when the engine answers but finds no route.
	ErrNoRoute = errors.New("osrm: no route found")
)

// Client calls the OSRM route service. Stateless and safe to retry; every
// call is bounded by the configured timeout.
type Client struct {
	baseURL    string
	profile    string
	httpClient *http.Client
}

// NewClient creates a routing engine client
func NewClient(baseURL, profile string, timeout time.Duration) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		profile:    profile,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// Route requests a route through the given lon,lat waypoints in order.
// At least two waypoints are required; the first is the origin.
func (c *Client) Route(ctx context.Context, waypoints [][2]float64) (*RouteData, error) {
	if len(waypoints) < 2 {
		return nil, errors.New("osrm: at least 2 waypoints required")
	}
	coords := make([]string, len(waypoints))
	for i, wp := range waypoints {
		coords[i] = strconv.FormatFloat(wp[0], 'f', 6, 64) + "," + strconv.FormatFloat(wp[1], 'f', 6, 64)
	}
	url := fmt.Sprintf("%s/route/v1/%s/%s?overview=full&geometries=geojson&steps=true",
		c.baseURL, c.profile, strings.Join(coords, ";"))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: HTTP %d", ErrUnavailable, resp.StatusCode)
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return parseResponse(body)
}

func parseResponse(body []byte) (*RouteData, error) {
	var parsed osrmResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, fmt.Errorf("osrm: decode response: %w", err)
	}
	if parsed.Code != "" && parsed.Code != "Ok" {
		return nil, fmt.Errorf("%w: %s", ErrNoRoute, parsed.Code)
	}
	if len(parsed.Routes) == 0 {
		return nil, ErrNoRoute
	}
	r := parsed.Routes[0]
	geom, err := decodeGeometry(r.Geometry)
	if err != nil {
		return nil, err
	}
	data := &RouteData{
		Geometry:  geom,
		DistanceM: r.Distance,
		DurationS: r.Duration,
	}
	for _, leg := range r.Legs {
		for _, step := range leg.Steps {
			if len(step.Maneuver.Location) < 2 {
				continue
			}
			name := step.Name
			if name == "" {
				name = step.Ref
			}
			data.Steps = append(data.Steps, Step{
				Name:     name,
				Type:     step.Maneuver.Type,
				Modifier: step.Maneuver.Modifier,
				Location: pointFromPair(step.Maneuver.Location),
			})
		}
	}
	return data, nil
}

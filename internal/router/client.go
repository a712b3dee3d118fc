// Package router is a client for the external routing advisor. The advisor
// receives the board occupancy and current routes and answers with a full
// replacement routing grid.
package router

import (
	"bytes"
	"context"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/santhosh-tekuri/jsonschema/v5"
)

// Cells is the number of tiles in a request or response grid.
const Cells = 100

// ActionPath is appended to the endpoint for every request.
const ActionPath = "/get_action"

const (
	defaultTimeout = 2 * time.Second
	maxBodyBytes   = 1 << 20
	schemaURL      = "https://routeboard.schemas/get_action.response.schema.json"
)

// ErrDisabled is returned when no endpoint is configured.
var ErrDisabled = errors.New("router: advisor disabled")

//go:embed schemas/get_action.response.schema.json
var responseSchemaJSON []byte

// Config configures a Client.
type Config struct {
	Endpoint string        // Base URL, empty disables the advisor
	Timeout  time.Duration // Per-request timeout
	Logger   *log.Logger   // Optional, defaults to log.Default()
}

// Client talks to the routing advisor over HTTP.
type Client struct {
	endpoint string
	http     *http.Client
	logger   *log.Logger
	schema   *jsonschema.Schema
}

type actionRequest struct {
	Board      []int `json:"board"`
	Directions []int `json:"directions"`
}

type actionResponse struct {
	NewDirections []int `json:"new_directions"`
}

// New creates a client. An empty endpoint yields a disabled client whose
// Advise always returns ErrDisabled.
func New(cfg Config) (*Client, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = log.Default()
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	endpoint := strings.TrimRight(strings.TrimSpace(cfg.Endpoint), "/")
	if endpoint != "" {
		u, err := url.Parse(endpoint)
		if err != nil {
			return nil, fmt.Errorf("router: invalid endpoint %q: %w", cfg.Endpoint, err)
		}
		if u.Scheme != "http" && u.Scheme != "https" {
			return nil, fmt.Errorf("router: invalid endpoint %q: scheme must be http or https", cfg.Endpoint)
		}
	}

	schema, err := compileSchema()
	if err != nil {
		return nil, err
	}

	return &Client{
		endpoint: endpoint,
		http:     &http.Client{Timeout: timeout},
		logger:   logger,
		schema:   schema,
	}, nil
}

func compileSchema() (*jsonschema.Schema, error) {
	c := jsonschema.NewCompiler()
	if err := c.AddResource(schemaURL, bytes.NewReader(responseSchemaJSON)); err != nil {
		return nil, fmt.Errorf("router: cannot load response schema: %w", err)
	}
	s, err := c.Compile(schemaURL)
	if err != nil {
		return nil, fmt.Errorf("router: cannot compile response schema: %w", err)
	}
	return s, nil
}

// Enabled reports whether an endpoint is configured.
func (c *Client) Enabled() bool {
	return c != nil && c.endpoint != ""
}

// Endpoint returns the configured base URL.
func (c *Client) Endpoint() string {
	if c == nil {
		return ""
	}
	return c.endpoint
}

// Advise sends the board and current routes and returns the advisor's
// routing grid, already mapped to direction values 0..4.
func (c *Client) Advise(ctx context.Context, board, directions []uint8) ([]uint8, error) {
	if !c.Enabled() {
		return nil, ErrDisabled
	}
	if len(board) != Cells || len(directions) != Cells {
		return nil, fmt.Errorf("router: expected %d cells, got board=%d directions=%d", Cells, len(board), len(directions))
	}

	dirs, err := c.advise(ctx, board, directions)
	if err != nil {
		c.logger.Warn("routing advisor request failed", "endpoint", c.endpoint, "err", err)
		return nil, err
	}
	c.logger.Debug("routing advisor applied", "endpoint", c.endpoint, "routed", countRouted(dirs))
	return dirs, nil
}

func (c *Client) advise(ctx context.Context, board, directions []uint8) ([]uint8, error) {
	body, err := json.Marshal(actionRequest{
		Board:      widen(board),
		Directions: widen(directions),
	})
	if err != nil {
		return nil, fmt.Errorf("router: cannot encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint+ActionPath, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("router: cannot build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("router: request failed: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("router: cannot read response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("router: unexpected status %s", resp.Status)
	}

	return c.decode(raw)
}

// decode validates the response document and maps its directions.
func (c *Client) decode(raw []byte) ([]uint8, error) {
	var doc any
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("router: malformed response: %w", err)
	}
	if err := c.schema.Validate(doc); err != nil {
		return nil, fmt.Errorf("router: invalid response: %w", err)
	}

	var out actionResponse
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("router: malformed response: %w", err)
	}

	dirs := make([]uint8, len(out.NewDirections))
	for i, v := range out.NewDirections {
		dirs[i] = MapDirection(v)
	}
	return dirs, nil
}

// MapDirection converts an advisor action to a direction value.
// Actions 0..3 are Up, Right, Down, Left (1..4). A 4 already names Left and
// is kept. Anything else means no route.
func MapDirection(v int) uint8 {
	switch {
	case v >= 0 && v <= 3:
		return uint8(v + 1)
	case v == 4:
		return 4
	default:
		return 0
	}
}

func widen(b []uint8) []int {
	out := make([]int, len(b))
	for i, v := range b {
		out[i] = int(v)
	}
	return out
}

func countRouted(dirs []uint8) int {
	n := 0
	for _, d := range dirs {
		if d != 0 {
			n++
		}
	}
	return n
}

package rosterapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/mcoot/puppybowl-roster/internal/model"
)

// DefaultBaseURL is the hosted Puppy Bowl players endpoint
const DefaultBaseURL = "https://fsa-puppy-bowl.herokuapp.com/api/2302-ACC-PT-WEB-PT-B/players"

// DefaultTimeout bounds a single request; calls are never retried
const DefaultTimeout = 30 * time.Second

// Client talks to a Players API rooted at a fixed base endpoint
type Client struct {
	baseURL    string
	httpClient *http.Client
	timeout    time.Duration
	logger     *slog.Logger
}

// Option customises a Client
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client. The client is copied,
// never modified.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithTimeout sets the per-request timeout, whichever HTTP client is used
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.timeout = d
	}
}

// WithLogger sets the logger used for per-call diagnostics
func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// NewClient creates a client for the players collection at baseURL
func NewClient(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		httpClient: &http.Client{Timeout: DefaultTimeout},
		logger:     slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(c)
	}

	hc := *c.httpClient
	if c.timeout > 0 {
		hc.Timeout = c.timeout
	}
	c.httpClient = &hc

	c.logger = c.logger.With(slog.String("component", "rosterapi"))
	return c
}

// BaseURL returns the players collection endpoint
func (c *Client) BaseURL() string {
	return c.baseURL
}

// ListAll returns the roster in the order the API reports it
func (c *Client) ListAll(ctx context.Context) ([]model.Player, error) {
	const op = "list players"

	data, err := c.do(ctx, op, http.MethodGet, c.baseURL, nil)
	if err != nil {
		return nil, err
	}

	var payload playersData
	if err := decodeData(op, data, &payload); err != nil {
		return nil, err
	}
	if payload.Players == nil {
		return nil, &Error{Kind: KindMissingData, Op: op, Message: "data.players"}
	}

	players := make([]model.Player, len(payload.Players))
	for i, p := range payload.Players {
		players[i] = p.toModel()
	}

	c.logger.Debug("fetched players", slog.Int("count", len(players)))
	return players, nil
}

// GetOne returns the player with the given id
func (c *Client) GetOne(ctx context.Context, id model.PlayerID) (*model.Player, error) {
	const op = "get player"

	data, err := c.do(ctx, op, http.MethodGet, c.playerURL(id), nil)
	if err != nil {
		return nil, err
	}

	var payload playerData
	if err := decodeData(op, data, &payload); err != nil {
		return nil, err
	}
	if payload.Player == nil {
		return nil, &Error{Kind: KindMissingData, Op: op, Message: "data.player"}
	}

	player := payload.Player.toModel()
	c.logger.Debug("fetched player", slog.String("player_id", string(player.ID)))
	return &player, nil
}

// Create adds a player built from the draft. The created player is returned
// when the API echoes it back; a nil player with a nil error is still a success.
func (c *Client) Create(ctx context.Context, draft model.PlayerDraft) (*model.Player, error) {
	const op = "create player"

	data, err := c.do(ctx, op, http.MethodPost, c.baseURL, createRequestFromDraft(draft))
	if err != nil {
		return nil, err
	}

	if isEmptyData(data) {
		c.logger.Debug("created player without echo")
		return nil, nil
	}

	var payload playerData
	if err := decodeData(op, data, &payload); err != nil {
		return nil, err
	}

	created := payload.NewPlayer
	if created == nil {
		created = payload.Player
	}
	if created == nil {
		c.logger.Debug("created player without echo")
		return nil, nil
	}

	player := created.toModel()
	c.logger.Debug("created player", slog.String("player_id", string(player.ID)))
	return &player, nil
}

// Delete removes the player with the given id
func (c *Client) Delete(ctx context.Context, id model.PlayerID) error {
	const op = "delete player"

	if _, err := c.do(ctx, op, http.MethodDelete, c.playerURL(id), nil); err != nil {
		return err
	}

	c.logger.Debug("deleted player", slog.String("player_id", string(id)))
	return nil
}

// Health checks that the base endpoint answers with a successful envelope
func (c *Client) Health(ctx context.Context) error {
	_, err := c.do(ctx, "health", http.MethodGet, c.baseURL, nil)
	return err
}

func (c *Client) playerURL(id model.PlayerID) string {
	return c.baseURL + "/" + url.PathEscape(string(id))
}

// do performs a single request and returns the envelope's data field
func (c *Client) do(ctx context.Context, op, method, target string, body any) (json.RawMessage, error) {
	var bodyReader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, &Error{Kind: KindTransport, Op: op, Err: fmt.Errorf("failed to marshal request: %w", err)}
		}
		bodyReader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, bodyReader)
	if err != nil {
		return nil, &Error{Kind: KindTransport, Op: op, Err: fmt.Errorf("failed to create request: %w", err)}
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &Error{Kind: KindTransport, Op: op, Err: err}
	}
	defer func() { _ = resp.Body.Close() }()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &Error{Kind: KindTransport, Op: op, StatusCode: resp.StatusCode, Err: fmt.Errorf("failed to read response: %w", err)}
	}

	c.logger.Debug("players api request",
		slog.String("method", method),
		slog.String("url", target),
		slog.Int("status", resp.StatusCode),
		slog.Duration("duration", time.Since(start)),
	)

	var env envelope
	decodeErr := json.Unmarshal(respBody, &env)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		apiErr := &Error{Kind: KindStatus, Op: op, StatusCode: resp.StatusCode}
		if decodeErr == nil && env.Error != nil {
			apiErr.Name = env.Error.Name
			apiErr.Message = env.Error.Message
		}
		return nil, apiErr
	}

	if len(bytes.TrimSpace(respBody)) == 0 {
		// Some deployments answer DELETE with an empty 204
		return nil, nil
	}
	if decodeErr != nil {
		return nil, &Error{Kind: KindDecode, Op: op, StatusCode: resp.StatusCode, Err: decodeErr}
	}

	if !env.Success && env.Error != nil {
		return nil, &Error{
			Kind:       KindStatus,
			Op:         op,
			StatusCode: resp.StatusCode,
			Name:       env.Error.Name,
			Message:    env.Error.Message,
		}
	}

	return env.Data, nil
}

func isEmptyData(data json.RawMessage) bool {
	trimmed := bytes.TrimSpace(data)
	return len(trimmed) == 0 || string(trimmed) == "null"
}

func decodeData(op string, data json.RawMessage, v any) error {
	if isEmptyData(data) {
		return &Error{Kind: KindMissingData, Op: op, Message: "data"}
	}
	if err := json.Unmarshal(data, v); err != nil {
		return &Error{Kind: KindDecode, Op: op, Err: fmt.Errorf("unexpected data shape: %w", err)}
	}
	return nil
}

// Package client calls a running antennacalc server over its JSON API.
package client

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"antennacalc/internal/calc"
	"antennacalc/internal/coax"
	"antennacalc/internal/models"
	"antennacalc/internal/units"
)

// Client is a thin JSON API client
type Client struct {
	http *resty.Client
}

// Option configures a Client
type Option func(*resty.Client)

// WithTimeout sets the per-request timeout
func WithTimeout(d time.Duration) Option {
	return func(c *resty.Client) { c.SetTimeout(d) }
}

// WithRetries sets how often failed requests are retried
func WithRetries(n int) Option {
	return func(c *resty.Client) {
		c.SetRetryCount(n)
		c.SetRetryWaitTime(500 * time.Millisecond)
	}
}

// New creates a client for the server at baseURL
func New(baseURL string, opts ...Option) *Client {
	rc := resty.New()
	rc.SetBaseURL(strings.TrimRight(baseURL, "/"))
	rc.SetTimeout(10 * time.Second)
	rc.SetHeader("Accept", "application/json")
	for _, opt := range opts {
		opt(rc)
	}
	return &Client{http: rc}
}

type apiError struct {
	Error  string   `json:"error"`
	Errors []string `json:"errors"`
}

// SavedReport is the answer of a report request
type SavedReport struct {
	Folder string   `json:"folder"`
	Files  []string `json:"files"`
	URL    string   `json:"url"`
}

func (c *Client) post(ctx context.Context, path string, query map[string]string, body, out interface{}) error {
	var apiErr apiError
	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParams(query).
		SetBody(body).
		SetResult(out).
		SetError(&apiErr).
		Post(path)
	if err != nil {
		return fmt.Errorf("failed to call %s: %w", path, err)
	}
	return responseError(resp, &apiErr)
}

// responseError maps a 400 to a validation error and other failures to plain errors
func responseError(resp *resty.Response, apiErr *apiError) error {
	if !resp.IsError() {
		return nil
	}
	if resp.StatusCode() == http.StatusBadRequest && len(apiErr.Errors) > 0 {
		return &calc.ValidationError{Messages: apiErr.Errors, Err: errors.New(apiErr.Error)}
	}
	msg := apiErr.Error
	if msg == "" {
		msg = strings.TrimSpace(string(resp.Body()))
	}
	return fmt.Errorf("server returned status %d: %s", resp.StatusCode(), msg)
}

func calculate[R any](ctx context.Context, c *Client, kind models.Kind, in interface{}) (R, error) {
	var out R
	if err := c.post(ctx, "/api/"+string(kind), nil, in, &out); err != nil {
		return out, err
	}
	return out, nil
}

// FlowerPot calculates a flower-pot dipole
func (c *Client) FlowerPot(ctx context.Context, in models.FlowerPotInput) (models.FlowerPotResult, error) {
	return calculate[models.FlowerPotResult](ctx, c, models.KindFlowerPot, in)
}

// GroundPlane calculates a ground-plane
func (c *Client) GroundPlane(ctx context.Context, in models.GroundPlaneInput) (models.GroundPlaneResult, error) {
	return calculate[models.GroundPlaneResult](ctx, c, models.KindGroundPlane, in)
}

// JPole calculates a J-pole
func (c *Client) JPole(ctx context.Context, in models.JPoleInput) (models.JPoleResult, error) {
	return calculate[models.JPoleResult](ctx, c, models.KindJPole, in)
}

// Yagi calculates a DL6WU Yagi
func (c *Client) Yagi(ctx context.Context, in models.YagiInput) (models.YagiResult, error) {
	return calculate[models.YagiResult](ctx, c, models.KindYagi, in)
}

// Kharchenko calculates a BiQuad
func (c *Client) Kharchenko(ctx context.Context, in models.KharchenkoInput) (models.KharchenkoResult, error) {
	return calculate[models.KharchenkoResult](ctx, c, models.KindKharchenko, in)
}

// Coax sweeps a feed line over the amateur bands
func (c *Client) Coax(ctx context.Context, in models.CoaxInput) (models.CoaxResult, error) {
	return calculate[models.CoaxResult](ctx, c, models.KindCoax, in)
}

// SaveReport runs the calculator of kind on in and stores its report on the server
func (c *Client) SaveReport(ctx context.Context, kind models.Kind, in interface{}, u units.Unit) (*SavedReport, error) {
	var out SavedReport
	query := map[string]string{"unit": string(u)}
	if err := c.post(ctx, "/api/"+string(kind)+"/report", query, in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Catalog returns the server's component catalog
func (c *Client) Catalog(ctx context.Context) ([]coax.Group, error) {
	var out struct {
		Groups []coax.Group `json:"groups"`
	}
	var apiErr apiError
	resp, err := c.http.R().
		SetContext(ctx).
		SetResult(&out).
		SetError(&apiErr).
		Get("/api/coax/catalog")
	if err != nil {
		return nil, fmt.Errorf("failed to fetch catalog: %w", err)
	}
	if err := responseError(resp, &apiErr); err != nil {
		return nil, err
	}
	return out.Groups, nil
}

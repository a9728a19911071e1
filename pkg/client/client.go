// Package client is a typed HTTP client for the storefront API. Credentials
// come from the TokenSource the client is built with.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"ev-storefront/internal/api"
	"ev-storefront/internal/domain"
)

type TokenSource interface {
	Token(ctx context.Context) (string, error)
}

// StaticToken always returns the same token.
type StaticToken string

func (s StaticToken) Token(context.Context) (string, error) { return string(s), nil }

// Session is a TokenSource holding the token of the last successful login.
type Session struct {
	mu    sync.RWMutex
	token string
}

func (s *Session) Token(context.Context) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token, nil
}

func (s *Session) Set(token string) {
	s.mu.Lock()
	s.token = token
	s.mu.Unlock()
}

type APIError struct {
	StatusCode int
	Message    string
	Group      string
	Option     string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("storefront api status %d: %s", e.StatusCode, e.Message)
}

type Client struct {
	baseURL    string
	httpClient *http.Client
	tokens     TokenSource
}

// New builds a client for baseURL (e.g. http://localhost:5000/api). tokens may
// be nil when only public endpoints are used.
func New(baseURL string, tokens TokenSource) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		tokens:  tokens,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
			Transport: &http.Transport{
				DialContext: (&net.Dialer{
					Timeout:   5 * time.Second,
					KeepAlive: 30 * time.Second,
				}).DialContext,
				MaxIdleConns:        100,
				MaxIdleConnsPerHost: 10,
			},
		},
	}
}

func (c *Client) ListProducts(ctx context.Context) ([]domain.Product, error) {
	var products []domain.Product
	err := c.do(ctx, http.MethodGet, "/products", nil, false, &products)
	return products, err
}

func (c *Client) GetProduct(ctx context.Context, id uuid.UUID) (*domain.Product, error) {
	var product domain.Product
	if err := c.do(ctx, http.MethodGet, "/products/"+id.String(), nil, false, &product); err != nil {
		return nil, err
	}
	return &product, nil
}

func (c *Client) Quote(ctx context.Context, id uuid.UUID, sel domain.Selection) (*api.QuoteResponse, error) {
	var quote api.QuoteResponse
	if err := c.do(ctx, http.MethodPost, "/products/"+id.String()+"/quote", api.NewSelectionPayload(sel), false, &quote); err != nil {
		return nil, err
	}
	return &quote, nil
}

func (c *Client) Register(ctx context.Context, req api.RegisterRequest) (*api.AuthResponse, error) {
	var res api.AuthResponse
	if err := c.do(ctx, http.MethodPost, "/auth/register", req, false, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func (c *Client) Login(ctx context.Context, req api.LoginRequest) (*api.AuthResponse, error) {
	var res api.AuthResponse
	if err := c.do(ctx, http.MethodPost, "/auth/login", req, false, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func (c *Client) PlaceOrder(ctx context.Context, req api.PlaceOrderRequest) (*domain.Order, error) {
	var order domain.Order
	if err := c.do(ctx, http.MethodPost, "/orders", req, true, &order); err != nil {
		return nil, err
	}
	return &order, nil
}

func (c *Client) do(ctx context.Context, method, path string, in any, authenticated bool, out any) error {
	var body io.Reader
	if in != nil {
		payload, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if authenticated && c.tokens != nil {
		token, err := c.tokens.Token(ctx)
		if err != nil {
			return fmt.Errorf("obtain token: %w", err)
		}
		if token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("call storefront api: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		var e api.ErrorResponse
		_ = json.NewDecoder(resp.Body).Decode(&e)
		if e.Error == "" {
			e.Error = http.StatusText(resp.StatusCode)
		}
		return &APIError{StatusCode: resp.StatusCode, Message: e.Error, Group: e.Group, Option: e.Option}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

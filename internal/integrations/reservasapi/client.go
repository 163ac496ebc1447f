package reservasapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

// Client HTTP client for the reservations API. Cart calls carry the bearer
// token from the TokenSource; the availability check is public.
type Client struct {
	baseURL    string
	httpClient *http.Client
	tokens     TokenSource
	log        Logger
}

// NewClient creates a reservations API client
func NewClient(baseURL string, timeout time.Duration, tokens TokenSource, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		tokens: tokens,
		log:    log,
	}
}

// GetCart fetches the user's pending cart. A nil cart with a nil error means
// the user has no pending cart yet.
func (c *Client) GetCart(ctx context.Context) (*Cart, error) {
	env, err := c.do(ctx, http.MethodGet, "/reservas/carrito", nil, true)
	if err != nil {
		return nil, err
	}

	if len(env.Data) == 0 || string(env.Data) == "null" {
		return nil, nil
	}

	var cart Cart
	if err := json.Unmarshal(env.Data, &cart); err != nil {
		return nil, fmt.Errorf("%w: failed to decode cart: %v", ErrInvalidResponse, err)
	}

	return &cart, nil
}

// AddItem adds a service to the cart, creating the cart if needed
func (c *Client) AddItem(ctx context.Context, req AddItemRequest) (*AddItemResult, error) {
	env, err := c.do(ctx, http.MethodPost, "/reservas/carrito/agregar", req, true)
	if err != nil {
		return nil, err
	}

	var result AddItemResult
	if err := json.Unmarshal(env.Data, &result); err != nil {
		return nil, fmt.Errorf("%w: failed to decode add result: %v", ErrInvalidResponse, err)
	}

	return &result, nil
}

// RemoveItem removes one line item from the cart
func (c *Client) RemoveItem(ctx context.Context, itemID int64) error {
	path := "/reservas/carrito/servicio/" + strconv.FormatInt(itemID, 10)
	_, err := c.do(ctx, http.MethodDelete, path, nil, true)
	return err
}

// Confirm turns the pending cart into a confirmed reservation
func (c *Client) Confirm(ctx context.Context) (*Cart, error) {
	env, err := c.do(ctx, http.MethodPost, "/reservas/carrito/confirmar", nil, true)
	if err != nil {
		return nil, err
	}

	var cart Cart
	if err := json.Unmarshal(env.Data, &cart); err != nil {
		return nil, fmt.Errorf("%w: failed to decode confirmed cart: %v", ErrInvalidResponse, err)
	}

	return &cart, nil
}

// Empty removes every item and the cart itself
func (c *Client) Empty(ctx context.Context) error {
	_, err := c.do(ctx, http.MethodDelete, "/reservas/carrito/vaciar", nil, true)
	return err
}

// CheckAvailability asks whether the slot is free. No token is attached;
// the endpoint is public.
func (c *Client) CheckAvailability(ctx context.Context, query AvailabilityQuery) (*AvailabilityResult, error) {
	params := url.Values{}
	params.Set("servicio_id", strconv.FormatInt(query.ServicioID, 10))
	params.Set("fecha_inicio", query.FechaInicio)
	if query.FechaFin != "" {
		params.Set("fecha_fin", query.FechaFin)
	}
	params.Set("hora_inicio", query.HoraInicio)
	params.Set("hora_fin", query.HoraFin)

	reqURL := c.baseURL + "/servicios/verificar-disponibilidad?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	var body struct {
		Success    bool   `json:"success"`
		Disponible bool   `json:"disponible"`
		Message    string `json:"message,omitempty"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("%w: failed to decode availability response: %v", ErrInvalidResponse, err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: status %d: %s", ErrRequestFailed, resp.StatusCode, body.Message)
	}

	return &AvailabilityResult{
		Disponible: body.Disponible,
		Message:    body.Message,
	}, nil
}

// do sends one request and unwraps the response envelope
func (c *Client) do(ctx context.Context, method, path string, payload interface{}, authed bool) (*envelope, error) {
	var body io.Reader
	if payload != nil {
		buf, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("%w: failed to encode request body: %v", ErrInternal, err)
		}
		body = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")
	if authed {
		token, err := c.tokens.Token()
		if err != nil {
			return nil, fmt.Errorf("%w: no session token: %v", ErrUnauthorized, err)
		}
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		c.log.Warn("reservasapi: %s %s answered 401", method, path)
		return nil, ErrUnauthorized
	}

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 || !env.Success {
		c.log.Warn("reservasapi: %s %s failed with status %d: %s", method, path, resp.StatusCode, env.Message)
		return nil, fmt.Errorf("%w: status %d: %s", ErrRequestFailed, resp.StatusCode, env.Message)
	}

	return &env, nil
}

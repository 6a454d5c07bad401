package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/plotline/plotline/internal/client/models"
)

// HTTPClient talks JSON over HTTP to the listing backend. It holds no
// session state of its own: tokens are passed in per call by the services
// layer, which owns the session store.
type HTTPClient struct {
	baseURL string
	http    *http.Client
}

// NewHTTPClient builds a client for the given base URL (e.g.
// "https://backend.example.com/api"). timeout bounds every request.
func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	return &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}
}

func (c *HTTPClient) Close() error {
	c.http.CloseIdleConnections()
	return nil
}

// do performs one request and decodes a 2xx JSON body into out (when out is
// non-nil). Non-2xx statuses are returned as *statusError for the caller to
// map; transport failures map to ErrUnavailable.
func (c *HTTPClient) do(ctx context.Context, method, path, token string, body, out any) error {
	var reqBody io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reqBody = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		// drain so the connection can be reused
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))
		return &statusError{code: resp.StatusCode}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: %v", ErrBadResponse, err)
	}
	return nil
}

// statusError carries a non-2xx HTTP status until the calling method maps
// it onto the sentinel taxonomy.
type statusError struct {
	code int
}

func (e *statusError) Error() string {
	return fmt.Sprintf("unexpected status %d", e.code)
}

// mapStatus converts a do() error into a sentinel using the generic mapping:
// 401/403 unauthorized, 404 not found, everything else unavailable.
// Endpoints with a more specific taxonomy remap before calling this.
func mapStatus(err error) error {
	se, ok := err.(*statusError)
	if !ok {
		return err
	}
	switch se.code {
	case http.StatusUnauthorized, http.StatusForbidden:
		return ErrUnauthorized
	case http.StatusNotFound:
		return ErrNotFound
	default:
		return fmt.Errorf("%w: %s", ErrUnavailable, se.Error())
	}
}

type plotsResponse struct {
	Plots []models.PlotSummary `json:"plots"`
}

func (c *HTTPClient) ListPlots(ctx context.Context) ([]models.PlotSummary, error) {
	var resp plotsResponse
	if err := c.do(ctx, http.MethodGet, "/plots", "", nil, &resp); err != nil {
		return nil, mapStatus(err)
	}
	for i := range resp.Plots {
		if err := resp.Plots[i].Validate(); err != nil {
			return nil, fmt.Errorf("%w: plot %d: %v", ErrBadResponse, i, err)
		}
	}
	return resp.Plots, nil
}

type plotResponse struct {
	Plot *models.PlotDetail `json:"plot"`
}

func (c *HTTPClient) GetPlot(ctx context.Context, id int64, token string) (*models.PlotDetail, error) {
	var resp plotResponse
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/plots/%d", id), token, nil, &resp); err != nil {
		return nil, mapStatus(err)
	}
	if resp.Plot == nil {
		return nil, fmt.Errorf("%w: missing plot", ErrBadResponse)
	}
	if err := resp.Plot.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadResponse, err)
	}
	return resp.Plot, nil
}

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type authResponse struct {
	User  *models.User `json:"user"`
	Token string       `json:"token"`
}

func (c *HTTPClient) Register(ctx context.Context, name, email string, password []byte) (*models.User, string, error) {
	req := registerRequest{Name: name, Email: email, Password: string(password)}

	var resp authResponse
	if err := c.do(ctx, http.MethodPost, "/register", "", req, &resp); err != nil {
		if se, ok := err.(*statusError); ok {
			switch se.code {
			case http.StatusConflict:
				return nil, "", ErrDuplicateEmail
			case http.StatusBadRequest, http.StatusUnprocessableEntity:
				return nil, "", ErrValidation
			}
		}
		return nil, "", mapStatus(err)
	}

	if resp.User == nil || resp.Token == "" {
		return nil, "", fmt.Errorf("%w: missing user or token", ErrBadResponse)
	}
	return resp.User, resp.Token, nil
}

func (c *HTTPClient) Login(ctx context.Context, email string, password []byte) (*models.User, string, error) {
	req := loginRequest{Email: email, Password: string(password)}

	var resp authResponse
	if err := c.do(ctx, http.MethodPost, "/login", "", req, &resp); err != nil {
		if se, ok := err.(*statusError); ok {
			if se.code == http.StatusUnauthorized || se.code == http.StatusBadRequest {
				return nil, "", ErrInvalidCredentials
			}
		}
		return nil, "", mapStatus(err)
	}

	if resp.User == nil || resp.Token == "" {
		return nil, "", fmt.Errorf("%w: missing user or token", ErrBadResponse)
	}
	return resp.User, resp.Token, nil
}

func (c *HTTPClient) AdminLogin(ctx context.Context, email string, password []byte) (string, error) {
	req := loginRequest{Email: email, Password: string(password)}

	var resp authResponse
	if err := c.do(ctx, http.MethodPost, "/admin/login", "", req, &resp); err != nil {
		if se, ok := err.(*statusError); ok && se.code == http.StatusUnauthorized {
			return "", ErrInvalidCredentials
		}
		return "", mapStatus(err)
	}

	if resp.Token == "" {
		return "", fmt.Errorf("%w: missing token", ErrBadResponse)
	}
	return resp.Token, nil
}

type interestRequest struct {
	Reference string `json:"reference"`
}

func (c *HTTPClient) ExpressInterest(ctx context.Context, id int64, token, reference string) error {
	req := interestRequest{Reference: reference}
	if err := c.do(ctx, http.MethodPost, fmt.Sprintf("/plots/%d/interest", id), token, req, nil); err != nil {
		return mapStatus(err)
	}
	return nil
}

type interestsResponse struct {
	Interests []models.Interest `json:"interests"`
}

func (c *HTTPClient) ListInterests(ctx context.Context, adminToken string) ([]models.Interest, error) {
	var resp interestsResponse
	if err := c.do(ctx, http.MethodGet, "/admin/interests", adminToken, nil, &resp); err != nil {
		return nil, mapStatus(err)
	}
	return resp.Interests, nil
}

// Ping reports reachability only: any HTTP response, whatever the status,
// means the backend is up.
func (c *HTTPClient) Ping(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/plots", nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))
	_ = resp.Body.Close()
	return nil
}

package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"sync"

	"github.com/MKhiriev/go-fare-card/internal/config"
	"github.com/MKhiriev/go-fare-card/internal/logger"
	"github.com/MKhiriev/go-fare-card/internal/utils"
	"github.com/MKhiriev/go-fare-card/models"
	"github.com/go-resty/resty/v2"
)

type httpServerAdapter struct {
	client *utils.HTTPClient

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs an HTTP/REST implementation of [ServerAdapter].
// It normalises and validates the base URL from adapterCfg.HTTPAddress
// (e.g. http://localhost:8080/v1) and installs two resty hooks: one attaching
// the bearer token, one logging every error response.
//
// Returns an error if adapterCfg.HTTPAddress is empty or cannot be parsed as a
// valid URL.
func NewHTTPServerAdapter(adapterCfg config.ClientAdapter, logger *logger.Logger) (ServerAdapter, error) {
	client := utils.NewHTTPClient()
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	h := &httpServerAdapter{client: client, logger: logger}

	client.
		SetBaseURL(baseURL).
		SetTimeout(adapterCfg.RequestTimeout).
		SetHeader("Accept", "application/json").
		OnBeforeRequest(h.attachToken).
		OnAfterResponse(h.logErrorResponse)

	return h, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// attachToken is the request interceptor adding "Authorization: Bearer".
func (h *httpServerAdapter) attachToken(_ *resty.Client, req *resty.Request) error {
	if token := h.Token(); token != "" {
		req.SetAuthToken(token)
	}
	return nil
}

// logErrorResponse is the response interceptor reporting non-2xx answers.
func (h *httpServerAdapter) logErrorResponse(_ *resty.Client, resp *resty.Response) error {
	if resp.IsError() {
		h.logger.Error().
			Int("status", resp.StatusCode()).
			Str("method", resp.Request.Method).
			Str("url", resp.Request.URL).
			Str("error", errorText(resp.Body())).
			Msg("API ERROR")
	}
	return nil
}

// SetToken implements [ServerAdapter].
func (h *httpServerAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

// Token implements [ServerAdapter].
func (h *httpServerAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

// Register implements [ServerAdapter]. It POSTs the form to /auth/register
// and expects 201 Created with the new rider id.
func (h *httpServerAdapter) Register(ctx context.Context, req models.RegisterRequest) (models.RegisterResponse, error) {
	var created models.RegisterResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		SetResult(&created).
		Post("/auth/register")
	if err != nil {
		return models.RegisterResponse{}, fmt.Errorf("register request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.RegisterResponse{}, err
	}

	return created, nil
}

// Login implements [ServerAdapter]. The token comes back in the JSON body,
// not in a header.
func (h *httpServerAdapter) Login(ctx context.Context, creds models.Credentials) (models.LoginResponse, error) {
	var found models.LoginResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(creds).
		SetResult(&found).
		Post("/auth/login")
	if err != nil {
		return models.LoginResponse{}, fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.LoginResponse{}, err
	}
	if found.Token == "" {
		return models.LoginResponse{}, fmt.Errorf("login response without token")
	}

	h.SetToken(found.Token)
	return found, nil
}

func (h *httpServerAdapter) BasicInfo(ctx context.Context) (models.UserInfo, error) {
	var info models.UserInfo
	if err := h.getJSON(ctx, "/user/info/basic", &info); err != nil {
		return models.UserInfo{}, fmt.Errorf("basic info: %w", err)
	}
	return info, nil
}

func (h *httpServerAdapter) Dashboard(ctx context.Context) (models.Dashboard, error) {
	var d models.Dashboard
	if err := h.getJSON(ctx, "/user/info/dashboard", &d); err != nil {
		return models.Dashboard{}, fmt.Errorf("dashboard: %w", err)
	}
	return d, nil
}

func (h *httpServerAdapter) BalanceHistory(ctx context.Context) ([]models.BalanceEntry, error) {
	var entries []models.BalanceEntry
	if err := h.getJSON(ctx, "/user/balance/history", &entries); err != nil {
		return nil, fmt.Errorf("balance history: %w", err)
	}
	return entries, nil
}

func (h *httpServerAdapter) FareHistory(ctx context.Context, userID string) ([]models.FareEntry, error) {
	var entries []models.FareEntry
	if err := h.getJSON(ctx, "/user/fare/history/"+url.PathEscape(userID), &entries); err != nil {
		return nil, fmt.Errorf("fare history: %w", err)
	}
	return entries, nil
}

// getJSON issues an authenticated GET and decodes the 2xx body into out.
func (h *httpServerAdapter) getJSON(ctx context.Context, path string, out any) error {
	resp, err := h.client.R().
		SetContext(ctx).
		SetResult(out).
		Get(path)
	if err != nil {
		return fmt.Errorf("request: %w", err)
	}

	return mapHTTPError(resp)
}

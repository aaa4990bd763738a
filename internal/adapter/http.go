package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"slices"
	"strings"
	"time"

	"github.com/MKhiriev/go-relief-sync/internal/config"
	"github.com/MKhiriev/go-relief-sync/internal/logger"
	"github.com/MKhiriev/go-relief-sync/internal/utils"
	"github.com/MKhiriev/go-relief-sync/models"
)

// DefaultRequestTimeout is the client-side deadline used when none is configured.
const DefaultRequestTimeout = 5 * time.Second

const (
	pathShelters           = "/api/getShelters"
	pathMissions           = "/api/getAllMissions"
	pathRegisterToken      = "/api/registerToken"
	pathSetMissionDone     = "/api/setMissionDone"
	pathRegionNotification = "/api/sendNotificationByRegion"
	pathChat               = "/chat/"
	pathHealth             = "/health"
)

type httpServerAdapter struct {
	client  *utils.HTTPClient
	timeout time.Duration
	ids     *utils.UUIDGenerator

	logger *logger.Logger
}

// NewHTTPServerAdapter returns the REST implementation of [ServerAdapter].
// The API key, when set, is sent as a bearer credential on every call.
func NewHTTPServerAdapter(adapterCfg config.ClientAdapter, log *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	timeout := adapterCfg.RequestTimeout
	if timeout <= 0 {
		timeout = DefaultRequestTimeout
	}

	return &httpServerAdapter{
		client:  utils.NewHTTPClient(baseURL, adapterCfg.APIKey),
		timeout: timeout,
		ids:     utils.NewUUIDGenerator(),
		logger:  log,
	}, nil
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

func (h *httpServerAdapter) FetchShelters(ctx context.Context) ([]models.Shelter, error) {
	body, err := h.do(ctx, http.MethodGet, pathShelters, nil)
	if err != nil {
		return nil, fmt.Errorf("fetch shelters: %w", err)
	}

	var resp models.SheltersResponse
	if err = json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("fetch shelters: %w: %w", ErrDecode, err)
	}

	shelters, err := acceptCollection[models.Shelter](resp.Envelope, resp.Shelters, "shelters")
	if err != nil {
		return nil, fmt.Errorf("fetch shelters: %w", err)
	}
	return shelters, nil
}

func (h *httpServerAdapter) FetchMissions(ctx context.Context) ([]models.Mission, error) {
	body, err := h.do(ctx, http.MethodGet, pathMissions, nil)
	if err != nil {
		return nil, fmt.Errorf("fetch missions: %w", err)
	}

	var resp models.MissionsResponse
	if err = json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("fetch missions: %w: %w", ErrDecode, err)
	}

	missions, err := acceptCollection[models.Mission](resp.Envelope, resp.Missions, "missions")
	if err != nil {
		return nil, fmt.Errorf("fetch missions: %w", err)
	}
	return missions, nil
}

func (h *httpServerAdapter) RegisterToken(ctx context.Context, req models.RegisterTokenRequest) error {
	body, err := h.do(ctx, http.MethodPost, pathRegisterToken, req)
	if err != nil {
		return fmt.Errorf("register token: %w", err)
	}
	if err = checkEnvelope(body, true); err != nil {
		return fmt.Errorf("register token: %w", err)
	}
	return nil
}

func (h *httpServerAdapter) SetMissionDone(ctx context.Context, req models.MissionDoneRequest) error {
	body, err := h.do(ctx, http.MethodPost, pathSetMissionDone, req)
	if err != nil {
		return fmt.Errorf("set mission done: %w", err)
	}
	if err = checkEnvelope(body, false); err != nil {
		return fmt.Errorf("set mission done: %w", err)
	}
	return nil
}

// ChatMessages returns the room oldest first; the server sends newest first.
func (h *httpServerAdapter) ChatMessages(ctx context.Context, region models.Region) ([]models.ChatMessage, error) {
	body, err := h.do(ctx, http.MethodGet, pathChat+url.PathEscape(string(region)), nil)
	if err != nil {
		return nil, fmt.Errorf("chat messages: %w", err)
	}

	var resp models.ChatRowsResponse
	if err = json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("chat messages: %w: %w", ErrDecode, err)
	}

	rows, err := acceptCollection[models.ChatMessage](models.Envelope{Success: true}, resp.Rows, "rows")
	if err != nil {
		return nil, fmt.Errorf("chat messages: %w", err)
	}

	slices.Reverse(rows)
	return rows, nil
}

func (h *httpServerAdapter) SendChatMessage(ctx context.Context, req models.SendMessageRequest) error {
	body, err := h.do(ctx, http.MethodPost, pathChat, req)
	if err != nil {
		return fmt.Errorf("send chat message: %w", err)
	}
	if err = checkEnvelope(body, false); err != nil {
		return fmt.Errorf("send chat message: %w", err)
	}
	return nil
}

func (h *httpServerAdapter) SendRegionNotification(ctx context.Context, req models.RegionNotificationRequest) error {
	body, err := h.do(ctx, http.MethodPost, pathRegionNotification, req)
	if err != nil {
		return fmt.Errorf("send region notification: %w", err)
	}
	if err = checkEnvelope(body, false); err != nil {
		return fmt.Errorf("send region notification: %w", err)
	}
	return nil
}

func (h *httpServerAdapter) Health(ctx context.Context) error {
	if _, err := h.do(ctx, http.MethodGet, pathHealth, nil); err != nil {
		return fmt.Errorf("health: %w", err)
	}
	return nil
}

// do executes one request under the client-side deadline and returns the
// body of a 2xx response. The body is fully read before the deadline's
// context is released.
func (h *httpServerAdapter) do(ctx context.Context, method, endpoint string, payload any) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, h.timeout)
	defer cancel()

	requestID := h.ids.Generate()
	req := h.client.R().
		SetContext(ctx).
		SetHeader("X-Request-ID", requestID)
	if payload != nil {
		req.SetHeader("Content-Type", "application/json").SetBody(payload)
	}

	start := time.Now()
	resp, err := req.Execute(method, endpoint)
	if err != nil {
		err = mapTransportError(err)
		h.logger.Warn().Err(err).
			Str("func", "*httpServerAdapter.do").
			Str("request_id", requestID).
			Str("method", method).
			Str("endpoint", endpoint).
			Dur("elapsed", time.Since(start)).
			Msg("request failed")
		return nil, err
	}

	h.logger.Debug().
		Str("func", "*httpServerAdapter.do").
		Str("request_id", requestID).
		Str("method", method).
		Str("endpoint", endpoint).
		Int("status", resp.StatusCode()).
		Dur("elapsed", time.Since(start)).
		Msg("request done")

	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}
	return resp.Body(), nil
}

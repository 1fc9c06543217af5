// SPDX-License-Identifier: Apache-2.0

package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/promptdock/promptdock/internal/config"
	"github.com/promptdock/promptdock/internal/logger"
	"github.com/promptdock/promptdock/internal/utils"
	"github.com/promptdock/promptdock/models"
)

type httpServerAdapter struct {
	client *utils.HTTPClient

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs an HTTP/REST implementation of
// [ServerAdapter]. It normalises and validates the base URL from
// cfg.ServerURL and configures the underlying HTTP client with the resolved
// base URL and request timeout.
//
// Returns an error if cfg.ServerURL is empty or cannot be parsed as a valid
// URL.
func NewHTTPServerAdapter(cfg config.Client, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(cfg.ServerURL)
	if err != nil {
		return nil, fmt.Errorf("invalid server url: %w", err)
	}

	client := utils.NewHTTPClient()
	client.
		SetBaseURL(baseURL).
		SetTimeout(cfg.Timeout)

	return &httpServerAdapter{
		client: client,
		logger: logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("address is empty")
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

// EncodeConfig implements [ServerAdapter]. It POSTs cfg to
// POST /api/config/encode and returns the produced code with any advisory
// warnings.
func (h *httpServerAdapter) EncodeConfig(ctx context.Context, cfg models.SiteConfig) (models.CodeResponse, error) {
	var out models.CodeResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(models.EncodeRequest{Config: cfg}).
		SetResult(&out).
		Post("/api/config/encode")
	if err != nil {
		return models.CodeResponse{}, fmt.Errorf("encode request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.CodeResponse{}, err
	}

	return out, nil
}

// DecodeConfig implements [ServerAdapter]. It POSTs the pasted code to
// POST /api/config/decode and returns the sanitized configuration preview.
func (h *httpServerAdapter) DecodeConfig(ctx context.Context, code string) (models.ConfigResponse, error) {
	var out models.ConfigResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(models.DecodeRequest{Code: code}).
		SetResult(&out).
		Post("/api/config/decode")
	if err != nil {
		return models.ConfigResponse{}, fmt.Errorf("decode request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.ConfigResponse{}, err
	}

	return out, nil
}

// ValidateConfig implements [ServerAdapter]. It POSTs cfg to
// POST /api/config/validate.
func (h *httpServerAdapter) ValidateConfig(ctx context.Context, cfg models.SiteConfig) (models.ConfigResponse, error) {
	var out models.ConfigResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(models.ValidateRequest{Config: cfg}).
		SetResult(&out).
		Post("/api/config/validate")
	if err != nil {
		return models.ConfigResponse{}, fmt.Errorf("validate request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.ConfigResponse{}, err
	}

	return out, nil
}

// ImportConfig implements [ServerAdapter]. It POSTs the code to
// POST /api/config/import. Returns [ErrConflict] (wrapped) on HTTP 409.
func (h *httpServerAdapter) ImportConfig(ctx context.Context, code string, overwrite bool) (models.ImportResponse, error) {
	var out models.ImportResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(models.ImportRequest{Code: code, Overwrite: overwrite}).
		SetResult(&out).
		Post("/api/config/import")
	if err != nil {
		return models.ImportResponse{}, fmt.Errorf("import request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.ImportResponse{}, err
	}

	return out, nil
}

// ListConfigs implements [ServerAdapter]. It GETs /api/config/list and
// decodes the response into a slice of [models.SiteConfig].
func (h *httpServerAdapter) ListConfigs(ctx context.Context) ([]models.SiteConfig, error) {
	resp, err := h.client.R().SetContext(ctx).Get("/api/config/list")
	if err != nil {
		return nil, fmt.Errorf("list configs request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var configs []models.SiteConfig
	if err = json.Unmarshal(resp.Body(), &configs); err != nil {
		return nil, fmt.Errorf("decode list configs response: %w", err)
	}

	return configs, nil
}

// GetConfig implements [ServerAdapter]. It GETs /api/config/{hostname}.
// Returns [ErrNotFound] (wrapped) on HTTP 404.
func (h *httpServerAdapter) GetConfig(ctx context.Context, hostname string) (models.ConfigResponse, error) {
	var out models.ConfigResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetResult(&out).
		Get("/api/config/" + url.PathEscape(hostname))
	if err != nil {
		return models.ConfigResponse{}, fmt.Errorf("get config request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.ConfigResponse{}, err
	}

	return out, nil
}

// DeleteConfig implements [ServerAdapter]. It sends a DELETE request to
// DELETE /api/config/{hostname}. Returns [ErrNotFound] (wrapped) on HTTP 404.
func (h *httpServerAdapter) DeleteConfig(ctx context.Context, hostname string) error {
	resp, err := h.client.R().
		SetContext(ctx).
		Delete("/api/config/" + url.PathEscape(hostname))
	if err != nil {
		return fmt.Errorf("delete config request: %w", err)
	}

	return mapHTTPError(resp)
}

// EncryptBackup implements [ServerAdapter]. It POSTs the plaintext and
// password to POST /api/backup/encrypt and returns the encrypted payload.
func (h *httpServerAdapter) EncryptBackup(ctx context.Context, plaintext, password, label string) (models.EncryptedPayload, error) {
	var out models.EncryptedPayload

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(models.BackupEncryptRequest{Plaintext: plaintext, Password: password, Label: label}).
		SetResult(&out).
		Post("/api/backup/encrypt")
	if err != nil {
		return models.EncryptedPayload{}, fmt.Errorf("encrypt backup request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.EncryptedPayload{}, err
	}

	return out, nil
}

// DecryptBackup implements [ServerAdapter]. It POSTs the payload and password
// to POST /api/backup/decrypt. Returns [ErrUnauthorized] (wrapped) on
// HTTP 401.
func (h *httpServerAdapter) DecryptBackup(ctx context.Context, payload models.EncryptedPayload, password string) (string, error) {
	var out models.BackupDecryptResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(models.BackupDecryptRequest{Payload: payload, Password: password}).
		SetResult(&out).
		Post("/api/backup/decrypt")
	if err != nil {
		return "", fmt.Errorf("decrypt backup request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return out.Plaintext, nil
}

// ListBackups implements [ServerAdapter]. It GETs /api/backup/list and
// decodes the response into a slice of [models.BackupRecord].
func (h *httpServerAdapter) ListBackups(ctx context.Context) ([]models.BackupRecord, error) {
	resp, err := h.client.R().SetContext(ctx).Get("/api/backup/list")
	if err != nil {
		return nil, fmt.Errorf("list backups request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var backups []models.BackupRecord
	if err = json.Unmarshal(resp.Body(), &backups); err != nil {
		return nil, fmt.Errorf("decode list backups response: %w", err)
	}

	return backups, nil
}

// ServerVersion implements [ServerAdapter]. It GETs /api/version and decodes
// the build metadata map.
func (h *httpServerAdapter) ServerVersion(ctx context.Context) (map[string]string, error) {
	resp, err := h.client.R().SetContext(ctx).Get("/api/version")
	if err != nil {
		return nil, fmt.Errorf("server version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var info map[string]string
	if err = json.Unmarshal(resp.Body(), &info); err != nil {
		return nil, fmt.Errorf("decode server version response: %w", err)
	}

	return info, nil
}

// SPDX-License-Identifier: Apache-2.0

package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/promptdock/promptdock/internal/codec"
	"github.com/promptdock/promptdock/internal/validators"
	"github.com/promptdock/promptdock/models"
)

type configCodeService struct {
	structural validators.Validator
	selectors  *validators.SelectorValidator
}

// NewConfigCodeService constructs a [ConfigCodeService] with the given
// selector policy.
func NewConfigCodeService(policy validators.SelectorPolicy) ConfigCodeService {
	return &configCodeService{
		structural: validators.NewSiteConfigValidator(),
		selectors:  validators.NewSelectorValidator(policy),
	}
}

// EncodeConfig implements [ConfigCodeService].
func (s *configCodeService) EncodeConfig(_ context.Context, cfg models.SiteConfig) (string, error) {
	payload, err := json.Marshal(cfg)
	if err != nil {
		return "", fmt.Errorf("marshal config: %w", err)
	}

	code, err := codec.Encode(codec.Version, payload)
	if err != nil {
		return "", fmt.Errorf("encode config: %w", err)
	}

	return code, nil
}

// DecodeConfig implements [ConfigCodeService]. Parse and trust are separate
// steps: the codec verifies version and checksum before any payload byte is
// seen here, and the JSON decode is strict so unknown fields in a foreign
// payload fail instead of being silently dropped.
func (s *configCodeService) DecodeConfig(_ context.Context, code string) (models.SiteConfig, error) {
	_, payload, err := codec.Decode(strings.TrimSpace(code))
	if err != nil {
		return models.SiteConfig{}, err
	}

	dec := json.NewDecoder(bytes.NewReader(payload))
	dec.DisallowUnknownFields()

	var cfg models.SiteConfig
	if err := dec.Decode(&cfg); err != nil {
		return models.SiteConfig{}, codec.ErrInvalidFormat
	}

	return cfg, nil
}

// ValidateConfig implements [ConfigCodeService].
func (s *configCodeService) ValidateConfig(ctx context.Context, cfg models.SiteConfig) (models.ValidationResult, error) {
	sanitized := sanitizeConfig(cfg)

	if err := s.structural.Validate(ctx, sanitized); err != nil {
		return models.ValidationResult{}, fmt.Errorf("%w: %w", ErrValidationFailed, err)
	}

	var warnings []models.SecurityWarning
	if sanitized.Positioning != nil {
		res := s.selectors.Inspect(sanitized.Positioning.Selector)
		if res.Rejected() {
			return models.ValidationResult{}, fmt.Errorf("%w: %s", ErrSecurityViolation, res.Message)
		}
		warnings = res.Warnings
	}

	return models.ValidationResult{
		SanitizedConfig: sanitized,
		Warnings:        warnings,
	}, nil
}

// sanitizeConfig trims whitespace, lower-cases the hostname and drops empty
// optional strings. The input value is not modified.
func sanitizeConfig(cfg models.SiteConfig) models.SiteConfig {
	out := models.SiteConfig{
		Hostname:    strings.ToLower(strings.TrimSpace(cfg.Hostname)),
		DisplayName: strings.TrimSpace(cfg.DisplayName),
	}

	if cfg.Positioning == nil {
		return out
	}

	p := *cfg.Positioning
	p.Selector = strings.TrimSpace(p.Selector)
	p.Description = strings.TrimSpace(p.Description)

	if p.Fingerprint != nil {
		fp := *p.Fingerprint
		fp.TagName = strings.ToLower(strings.TrimSpace(fp.TagName))
		fp.ID = strings.TrimSpace(fp.ID)
		p.Fingerprint = &fp
	}

	out.Positioning = &p
	return out
}

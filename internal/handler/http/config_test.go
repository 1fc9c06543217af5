// SPDX-License-Identifier: Apache-2.0

package http

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/promptdock/promptdock/models"
)

func TestEncodeDecode_RoundTrip(t *testing.T) {
	router, _ := newTestHandler(t)

	encoded := doJSON(t, router, http.MethodPost, "/api/config/encode", models.EncodeRequest{Config: testSiteConfig()})
	require.Equal(t, http.StatusOK, encoded.Code, encoded.Body.String())

	codeResp := decodeBody[models.CodeResponse](t, encoded)
	require.NotEmpty(t, codeResp.Code)

	decoded := doJSON(t, router, http.MethodPost, "/api/config/decode", models.DecodeRequest{Code: codeResp.Code})
	require.Equal(t, http.StatusOK, decoded.Code, decoded.Body.String())

	configResp := decodeBody[models.ConfigResponse](t, decoded)
	assert.Equal(t, "chat.example.com", configResp.Config.Hostname)
	require.NotNil(t, configResp.Config.Positioning)
	assert.Equal(t, "#prompt-input", configResp.Config.Positioning.Selector)
}

func TestEncodeConfig_InvalidJSON(t *testing.T) {
	router, _ := newTestHandler(t)

	req := doJSON(t, router, http.MethodPost, "/api/config/encode", nil)
	assert.Equal(t, http.StatusBadRequest, req.Code)
}

func TestEncodeConfig_RejectsForbiddenSelector(t *testing.T) {
	router, _ := newTestHandler(t)

	cfg := testSiteConfig()
	cfg.Positioning.Selector = "<script>alert(1)</script>"

	w := doJSON(t, router, http.MethodPost, "/api/config/encode", models.EncodeRequest{Config: cfg})
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestEncodeConfig_RejectsStructuralProblems(t *testing.T) {
	router, _ := newTestHandler(t)

	cfg := testSiteConfig()
	cfg.Hostname = ""

	w := doJSON(t, router, http.MethodPost, "/api/config/encode", models.EncodeRequest{Config: cfg})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDecodeConfig_TamperedCode(t *testing.T) {
	router, _ := newTestHandler(t)

	encoded := doJSON(t, router, http.MethodPost, "/api/config/encode", models.EncodeRequest{Config: testSiteConfig()})
	require.Equal(t, http.StatusOK, encoded.Code)
	code := decodeBody[models.CodeResponse](t, encoded).Code

	w := doJSON(t, router, http.MethodPost, "/api/config/decode", models.DecodeRequest{Code: code + "x"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestValidateConfig_ReturnsSanitizedConfig(t *testing.T) {
	router, _ := newTestHandler(t)

	cfg := testSiteConfig()
	cfg.Hostname = "  Chat.Example.COM  "

	w := doJSON(t, router, http.MethodPost, "/api/config/validate", models.ValidateRequest{Config: cfg})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	resp := decodeBody[models.ConfigResponse](t, w)
	assert.Equal(t, "chat.example.com", resp.Config.Hostname)
}

func TestImportConfig_PersistsDecodedConfig(t *testing.T) {
	router, fs := newTestHandler(t)

	encoded := doJSON(t, router, http.MethodPost, "/api/config/encode", models.EncodeRequest{Config: testSiteConfig()})
	require.Equal(t, http.StatusOK, encoded.Code)
	code := decodeBody[models.CodeResponse](t, encoded).Code

	w := doJSON(t, router, http.MethodPost, "/api/config/import", models.ImportRequest{Code: code})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	resp := decodeBody[models.ImportResponse](t, w)
	assert.False(t, resp.Replaced)
	assert.Contains(t, fs.configs, "chat.example.com")
}

func TestImportConfig_DuplicateWithoutOverwrite(t *testing.T) {
	router, _ := newTestHandler(t)

	encoded := doJSON(t, router, http.MethodPost, "/api/config/encode", models.EncodeRequest{Config: testSiteConfig()})
	require.Equal(t, http.StatusOK, encoded.Code)
	code := decodeBody[models.CodeResponse](t, encoded).Code

	first := doJSON(t, router, http.MethodPost, "/api/config/import", models.ImportRequest{Code: code})
	require.Equal(t, http.StatusCreated, first.Code)

	second := doJSON(t, router, http.MethodPost, "/api/config/import", models.ImportRequest{Code: code})
	assert.Equal(t, http.StatusConflict, second.Code)

	overwrite := doJSON(t, router, http.MethodPost, "/api/config/import", models.ImportRequest{Code: code, Overwrite: true})
	require.Equal(t, http.StatusCreated, overwrite.Code)
	assert.True(t, decodeBody[models.ImportResponse](t, overwrite).Replaced)
}

func TestImportConfig_RejectsGarbageCode(t *testing.T) {
	router, fs := newTestHandler(t)

	w := doJSON(t, router, http.MethodPost, "/api/config/import", models.ImportRequest{Code: "not-a-code"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Empty(t, fs.configs)
}

func TestGetConfig(t *testing.T) {
	router, fs := newTestHandler(t)
	fs.configs["chat.example.com"] = testSiteConfig()

	found := doJSON(t, router, http.MethodGet, "/api/config/chat.example.com", nil)
	require.Equal(t, http.StatusOK, found.Code)
	assert.Equal(t, "Example Chat", decodeBody[models.ConfigResponse](t, found).Config.DisplayName)

	missing := doJSON(t, router, http.MethodGet, "/api/config/absent.example.com", nil)
	assert.Equal(t, http.StatusNotFound, missing.Code)
}

func TestListConfigs_EmptyIsJSONArray(t *testing.T) {
	router, _ := newTestHandler(t)

	w := doJSON(t, router, http.MethodGet, "/api/config/list", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, "[]", w.Body.String())
}

func TestDeleteConfig(t *testing.T) {
	router, fs := newTestHandler(t)
	fs.configs["chat.example.com"] = testSiteConfig()

	w := doJSON(t, router, http.MethodDelete, "/api/config/chat.example.com", nil)
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, fs.configs)

	again := doJSON(t, router, http.MethodDelete, "/api/config/chat.example.com", nil)
	assert.Equal(t, http.StatusNotFound, again.Code)
}

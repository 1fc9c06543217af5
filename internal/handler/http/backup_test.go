// SPDX-License-Identifier: Apache-2.0

package http

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/promptdock/promptdock/models"
)

func TestBackupEncryptDecrypt_RoundTrip(t *testing.T) {
	router, fs := newTestHandler(t)

	encrypted := doJSON(t, router, http.MethodPost, "/api/backup/encrypt", models.BackupEncryptRequest{
		Plaintext: `{"prompts":[{"title":"greeting","body":"hello"}]}`,
		Password:  "correct horse battery staple",
	})
	require.Equal(t, http.StatusOK, encrypted.Code, encrypted.Body.String())

	payload := decodeBody[models.EncryptedPayload](t, encrypted)
	require.NotEmpty(t, payload.CipherText)
	require.NotEmpty(t, payload.Salt)
	require.NotEmpty(t, payload.IV)
	assert.Empty(t, fs.backups, "unlabeled backups must not be persisted")

	decrypted := doJSON(t, router, http.MethodPost, "/api/backup/decrypt", models.BackupDecryptRequest{
		Payload:  payload,
		Password: "correct horse battery staple",
	})
	require.Equal(t, http.StatusOK, decrypted.Code, decrypted.Body.String())
	assert.Equal(t,
		`{"prompts":[{"title":"greeting","body":"hello"}]}`,
		decodeBody[models.BackupDecryptResponse](t, decrypted).Plaintext)
}

func TestBackupEncrypt_EmptyPassword(t *testing.T) {
	router, _ := newTestHandler(t)

	w := doJSON(t, router, http.MethodPost, "/api/backup/encrypt", models.BackupEncryptRequest{
		Plaintext: "data",
		Password:  "   ",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestBackupEncrypt_LabelPersistsRecord(t *testing.T) {
	router, fs := newTestHandler(t)

	w := doJSON(t, router, http.MethodPost, "/api/backup/encrypt", models.BackupEncryptRequest{
		Plaintext: "data",
		Password:  "pw",
		Label:     "weekly",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	require.Len(t, fs.backups, 1)
	assert.Equal(t, "weekly", fs.backups[0].Label)
}

func TestBackupDecrypt_WrongPassword(t *testing.T) {
	router, _ := newTestHandler(t)

	encrypted := doJSON(t, router, http.MethodPost, "/api/backup/encrypt", models.BackupEncryptRequest{
		Plaintext: "data",
		Password:  "right",
	})
	require.Equal(t, http.StatusOK, encrypted.Code)
	payload := decodeBody[models.EncryptedPayload](t, encrypted)

	w := doJSON(t, router, http.MethodPost, "/api/backup/decrypt", models.BackupDecryptRequest{
		Payload:  payload,
		Password: "wrong",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestBackupDecrypt_MalformedPayload(t *testing.T) {
	router, _ := newTestHandler(t)

	w := doJSON(t, router, http.MethodPost, "/api/backup/decrypt", models.BackupDecryptRequest{
		Payload:  models.EncryptedPayload{CipherText: "!!!", Salt: "!!!", IV: "!!!"},
		Password: "pw",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestListBackups(t *testing.T) {
	router, fs := newTestHandler(t)

	empty := doJSON(t, router, http.MethodGet, "/api/backup/list", nil)
	require.Equal(t, http.StatusOK, empty.Code)
	assert.JSONEq(t, "[]", empty.Body.String())

	fs.backups = append(fs.backups, models.BackupRecord{ID: "backup-1", Label: "weekly"})

	w := doJSON(t, router, http.MethodGet, "/api/backup/list", nil)
	require.Equal(t, http.StatusOK, w.Code)
	backups := decodeBody[[]models.BackupRecord](t, w)
	require.Len(t, backups, 1)
	assert.Equal(t, "weekly", backups[0].Label)
}

// SPDX-License-Identifier: Apache-2.0

package service

import (
	"context"

	"github.com/promptdock/promptdock/internal/crypto"
	"github.com/promptdock/promptdock/models"
)

type backupService struct {
	cipher crypto.PayloadCipher
}

// NewBackupService constructs a [BackupService] on top of the given payload
// cipher.
func NewBackupService(cipher crypto.PayloadCipher) BackupService {
	return &backupService{cipher: cipher}
}

// ExportBackup implements [BackupService]. The context is accepted for
// interface symmetry: key derivation is CPU-bound and not interruptible, so
// callers that abandon a slow call simply discard the result.
func (s *backupService) ExportBackup(_ context.Context, plaintext, password string) (models.EncryptedPayload, error) {
	return s.cipher.Encrypt(plaintext, password)
}

// RestoreBackup implements [BackupService].
func (s *backupService) RestoreBackup(_ context.Context, payload models.EncryptedPayload, password string) (string, error) {
	return s.cipher.Decrypt(payload, password)
}

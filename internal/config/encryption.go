// Package config provides encryption utilities for sensitive configuration fields.
//
// This module implements age-based encryption for sensitive data when SOPS is
// not used. It allows users to manually edit config files with cleartext
// secrets, which can be encrypted in place afterwards.
package config

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"filippo.io/age"
)

const (
	// encryptionPrefix marks encrypted fields in the config file.
	encryptionPrefix = "age1:"
	// identityFileName is the name of the age identity file stored in the config directory.
	identityFileName = ".age-identity"
	// recipientFileName is the name of the age recipient file stored in the config directory.
	recipientFileName = ".age-recipient"
)

// getOrCreateAgeIdentity returns an age identity for encryption/decryption.
// Creates a new identity if one doesn't exist, storing it in the config directory.
func getOrCreateAgeIdentity() (age.Identity, age.Recipient, error) {
	configDir := getXDGConfigDir()
	identityPath := filepath.Join(configDir, identityFileName)
	recipientPath := filepath.Join(configDir, recipientFileName)

	if data, err := os.ReadFile(identityPath); err == nil {
		identities, err := age.ParseIdentities(strings.NewReader(string(data)))
		if err != nil {
			return nil, nil, fmt.Errorf("parse existing identity: %w", err)
		}
		if len(identities) == 0 {
			return nil, nil, fmt.Errorf("no identity found in file")
		}
		identity := identities[0]

		var recipient age.Recipient
		if recipientData, err := os.ReadFile(recipientPath); err == nil {
			recipients, err := age.ParseRecipients(strings.NewReader(string(recipientData)))
			if err == nil && len(recipients) > 0 {
				recipient = recipients[0]
			}
		}
		if recipient == nil {
			if x25519Identity, ok := identity.(*age.X25519Identity); ok {
				recipient = x25519Identity.Recipient()
			} else {
				return nil, nil, fmt.Errorf("unsupported identity type, cannot get recipient")
			}
		}

		return identity, recipient, nil
	}

	identity, err := age.GenerateX25519Identity()
	if err != nil {
		return nil, nil, fmt.Errorf("generate identity: %w", err)
	}

	recipient := identity.Recipient()

	if err := os.MkdirAll(configDir, 0o700); err != nil {
		return nil, nil, fmt.Errorf("create config directory: %w", err)
	}

	if err := os.WriteFile(identityPath, []byte(identity.String()+"\n"), 0o600); err != nil {
		return nil, nil, fmt.Errorf("save identity: %w", err)
	}

	if err := os.WriteFile(recipientPath, []byte(recipient.String()+"\n"), 0o600); err != nil {
		return nil, nil, fmt.Errorf("save recipient: %w", err)
	}

	return identity, recipient, nil
}

// isEncrypted checks if a string value is encrypted (starts with encryption prefix).
func isEncrypted(value string) bool {
	return strings.HasPrefix(value, encryptionPrefix)
}

// EncryptField encrypts a sensitive field value using age encryption.
// Returns the encrypted value with the encryption prefix, or an error.
func EncryptField(value string) (string, error) {
	if value == "" {
		return "", nil
	}

	if isEncrypted(value) {
		return value, nil
	}

	_, recipient, err := getOrCreateAgeIdentity()
	if err != nil {
		return "", fmt.Errorf("get age identity: %w", err)
	}

	var encrypted bytes.Buffer

	encryptWriter, err := age.Encrypt(&encrypted, recipient)
	if err != nil {
		return "", fmt.Errorf("create encrypt writer: %w", err)
	}

	if _, err := encryptWriter.Write([]byte(value)); err != nil {
		return "", fmt.Errorf("write to encrypt: %w", err)
	}

	if err := encryptWriter.Close(); err != nil {
		return "", fmt.Errorf("close encrypt writer: %w", err)
	}

	// Base64 encode the encrypted data for safe YAML storage.
	encryptedData := base64.StdEncoding.EncodeToString(encrypted.Bytes())

	return encryptionPrefix + encryptedData, nil
}

// DecryptField decrypts an encrypted field value.
// Returns the decrypted value, or the original value if not encrypted.
func DecryptField(value string) (string, error) {
	if value == "" {
		return "", nil
	}

	if !isEncrypted(value) {
		return value, nil
	}

	encryptedData := strings.TrimPrefix(value, encryptionPrefix)
	decoded, err := base64.StdEncoding.DecodeString(encryptedData)
	if err != nil {
		return "", fmt.Errorf("decode base64: %w", err)
	}

	identity, _, err := getOrCreateAgeIdentity()
	if err != nil {
		return "", fmt.Errorf("get age identity: %w", err)
	}

	decryptReader, err := age.Decrypt(bytes.NewReader(decoded), identity)
	if err != nil {
		return "", fmt.Errorf("create decrypt reader: %w", err)
	}

	var decrypted bytes.Buffer
	if _, err := io.Copy(&decrypted, decryptReader); err != nil {
		return "", fmt.Errorf("read decrypted data: %w", err)
	}

	return decrypted.String(), nil
}

// EncryptSensitiveFields encrypts the password and token fields of a Config.
// Fields that are already encrypted are left unchanged.
func EncryptSensitiveFields(cfg *Config) error {
	var err error

	if cfg.Password != "" && !isEncrypted(cfg.Password) {
		cfg.Password, err = EncryptField(cfg.Password)
		if err != nil {
			return fmt.Errorf("encrypt password: %w", err)
		}
	}

	if cfg.Token != "" && !isEncrypted(cfg.Token) {
		cfg.Token, err = EncryptField(cfg.Token)
		if err != nil {
			return fmt.Errorf("encrypt token: %w", err)
		}
	}

	return nil
}

// DecryptSensitiveFields decrypts the password and token fields of a Config.
// Cleartext fields pass through unchanged.
func DecryptSensitiveFields(cfg *Config) error {
	var err error

	cfg.Password, err = DecryptField(cfg.Password)
	if err != nil {
		return fmt.Errorf("decrypt password: %w", err)
	}

	cfg.Token, err = DecryptField(cfg.Token)
	if err != nil {
		return fmt.Errorf("decrypt token: %w", err)
	}

	return nil
}

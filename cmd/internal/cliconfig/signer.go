package cliconfig

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"golang.org/x/crypto/scrypt"

	"github.com/jito-foundation/restaking-sub002/internal/addr"
)

// Signer is the opaque keypair abstraction the CLI drivers bind to
// --keypair (spec §6 CLI surface). It deliberately does not implement
// transaction signing itself — that belongs to the host runtime's
// signed-instruction model (spec §1, out of scope) — it only resolves a
// --keypair path to the principal address the instruction is built
// against. A usb:// path is recognized but left to a hardware-wallet
// driver this core does not ship (spec §1 "Ledger/hardware-wallet signer
// plumbing").
type Signer struct {
	Address addr.Address
	IsUSB   bool
}

// ErrUSBSignerNotSupported is returned by LoadSigner for a usb:// path:
// hardware-wallet plumbing is an explicitly out-of-scope collaborator.
var ErrUSBSignerNotSupported = errors.New("cliconfig: hardware-wallet signer plumbing is not implemented in this core; wire a host-side driver")

// encryptedKeyFile mirrors the teacher's crypto.EncryptedKey layout
// (pkg/crypto/keystore.go), adapted to hold an opaque 32-byte principal
// address instead of a secp256k1-derived Ethereum address, and to use
// golang.org/x/crypto/scrypt for the real KDF rather than the teacher's
// simplified stand-in.
type encryptedKeyFile struct {
	Address    addr.Address
	CipherText []byte
	Nonce      []byte
	Salt       []byte
}

const (
	scryptN = 1 << 15
	scryptR = 8
	scryptP = 1
	keyLen  = 32
)

// LoadSigner resolves --keypair into a Signer. A "usb://" prefix is
// rejected with ErrUSBSignerNotSupported; anything else is read as a
// scrypt-encrypted key file produced by SaveKeyFile.
func LoadSigner(path, passphrase string) (*Signer, error) {
	if len(path) >= 6 && path[:6] == "usb://" {
		return nil, ErrUSBSignerNotSupported
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("cliconfig: read keypair file: %w", err)
	}
	var kf encryptedKeyFile
	if err := json.Unmarshal(raw, &kf); err != nil {
		return nil, fmt.Errorf("cliconfig: parse keypair file: %w", err)
	}

	key, err := scrypt.Key([]byte(passphrase), kf.Salt, scryptN, scryptR, scryptP, keyLen)
	if err != nil {
		return nil, fmt.Errorf("cliconfig: derive key: %w", err)
	}
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("cliconfig: init cipher: %w", err)
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("cliconfig: init gcm: %w", err)
	}
	if _, err := gcm.Open(nil, kf.Nonce, kf.CipherText, nil); err != nil {
		return nil, fmt.Errorf("cliconfig: wrong passphrase or corrupt keypair file: %w", err)
	}

	return &Signer{Address: kf.Address}, nil
}

// SaveKeyFile encrypts secret under passphrase and writes it to path in the
// format LoadSigner reads. None of the CLI subcommands calls it.
func SaveKeyFile(path string, address addr.Address, secret, passphrase string) error {
	salt := make([]byte, 32)
	if _, err := rand.Read(salt); err != nil {
		return fmt.Errorf("cliconfig: generate salt: %w", err)
	}
	key, err := scrypt.Key([]byte(passphrase), salt, scryptN, scryptR, scryptP, keyLen)
	if err != nil {
		return fmt.Errorf("cliconfig: derive key: %w", err)
	}
	block, err := aes.NewCipher(key)
	if err != nil {
		return fmt.Errorf("cliconfig: init cipher: %w", err)
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return fmt.Errorf("cliconfig: init gcm: %w", err)
	}
	nonce := make([]byte, gcm.NonceSize())
	if _, err := rand.Read(nonce); err != nil {
		return fmt.Errorf("cliconfig: generate nonce: %w", err)
	}
	ciphertext := gcm.Seal(nil, nonce, []byte(secret), nil)

	kf := encryptedKeyFile{Address: address, CipherText: ciphertext, Nonce: nonce, Salt: salt}
	data, err := json.Marshal(kf)
	if err != nil {
		return fmt.Errorf("cliconfig: marshal keypair file: %w", err)
	}
	return os.WriteFile(path, data, 0o600)
}

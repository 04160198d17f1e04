// Package addr implements canonical, content-derived addressing for every
// long-lived record in the restaking and vault programs: an address is the
// hash of a program identifier and a seed tuple, never a random key. This
// mirrors a PDA derivation on the host chain (spec §6 "Addresses"), but
// since the host's account-storage and signature-verification runtime is an
// external collaborator (out of scope), this package only fixes the
// derivation function itself — the piece of the contract the core owns.
package addr

import (
	"encoding/binary"
	"errors"

	"github.com/ethereum/go-ethereum/common"
	ethcrypto "github.com/ethereum/go-ethereum/crypto"
	"golang.org/x/crypto/sha3"
)

// Address is a 32-byte content-derived account identifier.
type Address = common.Hash

// ErrAddressMismatch is returned when a caller-supplied address does not
// match the canonical derivation for the given seeds.
var ErrAddressMismatch = errors.New("addr: account key does not match its canonical derivation")

// ProgramID distinguishes the restaking program's address space from the
// vault program's, so that e.g. a VaultNcnTicket and an NcnVaultTicket never
// collide even when keyed by the same (ncn, vault) pair.
type ProgramID byte

const (
	RestakingProgram ProgramID = iota
	VaultProgram
)

// Derive computes the canonical address for a program + seed tuple, using
// sha3 (Keccak-256 family) the way the teacher's committee-shuffle derivation
// hashes a seed plus index (validator_set.go's shuffleValidatorIndices).
//
// The hash input is the program byte, then the length-prefixed string tag,
// then each additional seed in order: Address seeds contribute their 32 raw
// bytes, uint64 seeds 8 big-endian bytes, and string or []byte seeds an
// 8-byte big-endian length followed by their bytes.
func Derive(program ProgramID, tag string, seeds ...any) Address {
	h := sha3.NewLegacyKeccak256()
	h.Write([]byte{byte(program)})
	writeLenPrefixed(h, []byte(tag))
	for _, s := range seeds {
		switch v := s.(type) {
		case Address:
			h.Write(v[:])
		case []byte:
			writeLenPrefixed(h, v)
		case uint64:
			var buf [8]byte
			binary.BigEndian.PutUint64(buf[:], v)
			h.Write(buf[:])
		case string:
			writeLenPrefixed(h, []byte(v))
		default:
			panic("addr: unsupported seed type")
		}
	}
	var out Address
	copy(out[:], h.Sum(nil))
	return out
}

func writeLenPrefixed(h interface{ Write([]byte) (int, error) }, b []byte) {
	var lenBuf [8]byte
	binary.BigEndian.PutUint64(lenBuf[:], uint64(len(b)))
	h.Write(lenBuf[:])
	h.Write(b)
}

// DeriveEpoched computes the canonical address for a record keyed by an
// additional per-epoch suffix — used only by VaultNcnSlasherOperatorTicket
// and VaultUpdateStateTracker (spec §6), whose seed tuple ends in
// epoch_le_bytes. Uses go-ethereum's Keccak256 directly rather than the
// sha3 package, so the two address families are trivially distinguishable
// by which hash entry point produced them (documented per spec §9's open
// question about duplicate/overlapping tables: this module keeps one
// canonical derivation per record kind and never reuses a tag across kinds).
func DeriveEpoched(program ProgramID, tag string, epoch uint64, seeds ...any) Address {
	var buf []byte
	buf = append(buf, byte(program))
	buf = append(buf, []byte(tag)...)
	for _, s := range seeds {
		switch v := s.(type) {
		case Address:
			buf = append(buf, v[:]...)
		case []byte:
			buf = append(buf, v...)
		case string:
			buf = append(buf, []byte(v)...)
		default:
			panic("addr: unsupported seed type")
		}
	}
	var epochBuf [8]byte
	binary.LittleEndian.PutUint64(epochBuf[:], epoch)
	buf = append(buf, epochBuf[:]...)
	return Address(ethcrypto.Keccak256Hash(buf))
}

// Verify reports whether addr is the canonical derivation of program + tag +
// seeds, returning ErrAddressMismatch otherwise. The record types in this
// module compute their own addresses with Derive or DeriveEpoched in their
// Address methods and do not call Verify; it is available for checking a
// caller-supplied address against its canonical derivation.
func Verify(got Address, program ProgramID, tag string, seeds ...any) error {
	if Derive(program, tag, seeds...) != got {
		return ErrAddressMismatch
	}
	return nil
}

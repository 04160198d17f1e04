package addr

import "testing"

func TestDeriveDeterministic(t *testing.T) {
	ncn := Derive(RestakingProgram, "ncn", "alice")
	vault := Derive(VaultProgram, "vault", "alice")
	if ncn == vault {
		t.Fatalf("expected different programs to derive different addresses")
	}
	again := Derive(RestakingProgram, "ncn", "alice")
	if ncn != again {
		t.Fatalf("derivation is not deterministic")
	}
}

func TestVerify(t *testing.T) {
	a := Derive(RestakingProgram, "ncn_vault_ticket", Address{1}, Address{2})
	if err := Verify(a, RestakingProgram, "ncn_vault_ticket", Address{1}, Address{2}); err != nil {
		t.Fatalf("expected match, got %v", err)
	}
	if err := Verify(a, RestakingProgram, "ncn_vault_ticket", Address{1}, Address{3}); err != ErrAddressMismatch {
		t.Fatalf("expected ErrAddressMismatch, got %v", err)
	}
}

func TestDeriveEpochedDistinctFromDerive(t *testing.T) {
	a := Derive(VaultProgram, "vault_update_state_tracker", Address{9})
	b := DeriveEpoched(VaultProgram, "vault_update_state_tracker", 4, Address{9})
	if a == b {
		t.Fatalf("expected epoched derivation to diverge from keyless derivation")
	}
}

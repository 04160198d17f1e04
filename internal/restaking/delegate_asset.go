package restaking

import (
	"context"

	"github.com/jito-foundation/restaking-sub002/internal/addr"
	"github.com/jito-foundation/restaking-sub002/internal/ledger"
)

// delegateAsset moves amount of mint out of owner's own token account to
// delegate, shared by Ncn.DelegateTokenAccount and
// Operator.DelegateTokenAccount (spec §12 supplemented feature, grounded
// on original_source's ncn_delegate_token_account.rs /
// operator_delegate_token_account.rs; mirrors vault.ApproveDelegate's
// shape on the Vault side).
func delegateAsset(ctx context.Context, tl ledger.TokenLedger, owner addr.Address, admin, signer, mint, delegate addr.Address, amount uint64, adminErr error) error {
	if signer != admin {
		return adminErr
	}
	return tl.Transfer(ctx, mint, owner, delegate, amount)
}

// DelegateTokenAccount transfers amount of mint from the Ncn's own token
// account to delegate. Signed by the Ncn's DelegateAdmin.
func (n Ncn) DelegateTokenAccount(ctx context.Context, tl ledger.TokenLedger, mint, delegate addr.Address, amount uint64, signer addr.Address) error {
	return delegateAsset(ctx, tl, n.Address(), n.DelegateAdmin, signer, mint, delegate, amount, ErrNcnAdminInvalid)
}

// DelegateTokenAccount transfers amount of mint from the Operator's own
// token account to delegate. Signed by the Operator's DelegateAdmin.
func (o Operator) DelegateTokenAccount(ctx context.Context, tl ledger.TokenLedger, mint, delegate addr.Address, amount uint64, signer addr.Address) error {
	return delegateAsset(ctx, tl, o.Address(), o.DelegateAdmin, signer, mint, delegate, amount, ErrOperatorAdminInvalid)
}

package token

import (
	"github.com/nspcc-dev/binder-contract/common"
	"github.com/nspcc-dev/binder-contract/contracts/token/tokenconst"
	"github.com/nspcc-dev/neo-go/pkg/interop"
	"github.com/nspcc-dev/neo-go/pkg/interop/contract"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/management"
	"github.com/nspcc-dev/neo-go/pkg/interop/runtime"
	"github.com/nspcc-dev/neo-go/pkg/interop/storage"
)

// Token holds all token info.
type Token struct {
	// Ticker symbol
	Symbol string
	// Amount of decimals
	Decimals int
	// Storage key for circulation value
	CirculationKey string
}

const (
	circulation = "TokenCirculation"
	accPrefix   = 'a'
)

var token Token

func createToken() Token {
	return Token{
		Symbol:         tokenconst.Symbol,
		Decimals:       tokenconst.Decimals,
		CirculationKey: circulation,
	}
}

func init() {
	token = createToken()
}

// nolint:unused
func _deploy(data any, isUpdate bool) {
	if isUpdate {
		args := data.([]any)
		common.CheckVersion(args[len(args)-1].(int))
		return
	}

	runtime.Log("token contract initialized")
}

// Update method updates contract source code and manifest. It can be
// invoked only by committee.
func Update(nefFile, manifest []byte, data any) {
	if !common.HasUpdateAccess() {
		panic("only committee can update contract")
	}

	contract.Call(interop.Hash160(management.Hash), "update",
		contract.All, nefFile, manifest, common.AppendVersion(data))
	runtime.Log("token contract updated")
}

// Version returns the version of the contract.
func Version() int {
	return common.Version
}

// Symbol is a NEP-17 standard method that returns the settlement token symbol.
func Symbol() string {
	return token.Symbol
}

// Decimals is a NEP-17 standard method that returns precision of settlement
// token balances.
func Decimals() int {
	return token.Decimals
}

// TotalSupply is a NEP-17 standard method that returns the total amount of
// settlement tokens in circulation.
func TotalSupply() int {
	ctx := storage.GetReadOnlyContext()
	return token.getSupply(ctx)
}

// BalanceOf is a NEP-17 standard method that returns the settlement token
// balance of the specified account.
func BalanceOf(account interop.Hash160) int {
	ctx := storage.GetReadOnlyContext()
	return token.balanceOf(ctx, account)
}

// Transfer is a NEP-17 standard method that transfers settlement tokens
// from one account to another. It can be invoked by the account owner or
// by a contract moving its own funds.
//
// It produces Transfer and TransferX notifications. TransferX carries the
// payment details supplied by the caller.
func Transfer(from, to interop.Hash160, amount int, data any) bool {
	ctx := storage.GetContext()
	var details []byte
	if data != nil {
		details = data.([]byte)
	}
	return token.transfer(ctx, from, to, amount, false, details)
}

// Mint creates the specified amount of settlement tokens on the account.
// It can be invoked only by committee.
//
// It produces Transfer and TransferX notifications.
func Mint(to interop.Hash160, amount int, txDetails []byte) {
	common.CheckCommitteeWitness()
	ctx := storage.GetContext()

	ok := token.transfer(ctx, nil, to, amount, true, txDetails)
	if !ok {
		panic("can't transfer assets")
	}

	supply := token.getSupply(ctx)
	supply = supply + amount
	storage.Put(ctx, token.CirculationKey, supply)
	runtime.Log("assets were minted")
}

// Burn destroys the specified amount of settlement tokens on the account.
// It can be invoked only by committee.
//
// It produces Transfer and TransferX notifications.
func Burn(from interop.Hash160, amount int, txDetails []byte) {
	common.CheckCommitteeWitness()
	ctx := storage.GetContext()

	ok := token.transfer(ctx, from, nil, amount, true, txDetails)
	if !ok {
		panic("can't transfer assets")
	}

	supply := token.getSupply(ctx)
	if supply < amount {
		panic("negative supply after burn")
	}

	supply = supply - amount
	storage.Put(ctx, token.CirculationKey, supply)
	runtime.Log("assets were burned")
}

func (t Token) getSupply(ctx storage.Context) int {
	supply := storage.Get(ctx, t.CirculationKey)
	if supply != nil {
		return supply.(int)
	}

	return 0
}

// balanceOf gets the token balance of a specific address.
func (t Token) balanceOf(ctx storage.Context, holder interop.Hash160) int {
	return common.GetInt(ctx, append([]byte{accPrefix}, holder...))
}

func (t Token) transfer(ctx storage.Context, from, to interop.Hash160, amount int, committee bool, details []byte) bool {
	if amount < 0 {
		panic("negative amount")
	}

	balanceFrom, ok := t.canTransfer(ctx, from, to, amount, committee)
	if !ok {
		return false
	}

	if len(from) == interop.Hash160Len {
		var fromKey = append([]byte{accPrefix}, from...)

		if balanceFrom == amount {
			storage.Delete(ctx, fromKey)
		} else {
			storage.Put(ctx, fromKey, balanceFrom-amount)
		}
	}

	if len(to) == interop.Hash160Len {
		var toKey = append([]byte{accPrefix}, to...)
		storage.Put(ctx, toKey, common.GetInt(ctx, toKey)+amount)
	}

	runtime.Notify("Transfer", from, to, amount)
	runtime.Notify("TransferX", from, to, amount, details)

	return true
}

// canTransfer returns the balance it can transfer from.
func (t Token) canTransfer(ctx storage.Context, from, to interop.Hash160, amount int, committee bool) (int, bool) {
	if !committee {
		if len(to) != interop.Hash160Len || !isUsableAddress(from) {
			runtime.Log("bad script hashes")
			return 0, false
		}
	} else if len(from) == 0 {
		return 0, true
	}

	balanceFrom := t.balanceOf(ctx, from)
	if balanceFrom < amount {
		runtime.Log("not enough assets")
		return 0, false
	}

	return balanceFrom, true
}

// isUsableAddress checks if the sender is either a correct account address
// or the calling contract itself.
func isUsableAddress(addr interop.Hash160) bool {
	if len(addr) == interop.Hash160Len {
		if runtime.CheckWitness(addr) {
			return true
		}

		// Check if a smart contract is calling script hash
		callingScriptHash := runtime.GetCallingScriptHash()
		if callingScriptHash.Equals(addr) {
			return true
		}
	}

	return false
}

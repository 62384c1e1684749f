// Package binder contains RPC wrappers for Binder contract.
package binder

import (
	"errors"
	"fmt"
	"github.com/google/uuid"
	"github.com/nspcc-dev/neo-go/pkg/core/transaction"
	"github.com/nspcc-dev/neo-go/pkg/crypto/keys"
	"github.com/nspcc-dev/neo-go/pkg/neorpc/result"
	"github.com/nspcc-dev/neo-go/pkg/rpcclient/unwrap"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/neo-go/pkg/vm/stackitem"
	"math/big"
)

// BinderBinder is a contract-specific binder.Binder type used by its methods.
type BinderBinder struct {
	Name string
	State *big.Int
	Owner util.Uint160
	LastTimePoint *big.Int
	AuctionEpoch *big.Int
	TotalShare *big.Int
}

// RegisterEvent represents "Register" event emitted by the contract.
type RegisterEvent struct {
	Name string
	Registrant util.Uint160
}

// AuctionStartedEvent represents "AuctionStarted" event emitted by the contract.
type AuctionStartedEvent struct {
	Name string
	Epoch *big.Int
}

// AuctionResolvedEvent represents "AuctionResolved" event emitted by the contract.
type AuctionResolvedEvent struct {
	Name string
	Epoch *big.Int
	Winner util.Uint160
}

// OwnershipExpiredEvent represents "OwnershipExpired" event emitted by the contract.
type OwnershipExpiredEvent struct {
	Name string
	Owner util.Uint160
}

// OwnershipRenewedEvent represents "OwnershipRenewed" event emitted by the contract.
type OwnershipRenewedEvent struct {
	Name string
	Owner util.Uint160
	Amount *big.Int
}

// OwnershipReleasedEvent represents "OwnershipReleased" event emitted by the contract.
type OwnershipReleasedEvent struct {
	Name string
	Owner util.Uint160
}

// BuyShareEvent represents "BuyShare" event emitted by the contract.
type BuyShareEvent struct {
	Name string
	Buyer util.Uint160
	ShareNum *big.Int
	Cost *big.Int
}

// SellShareEvent represents "SellShare" event emitted by the contract.
type SellShareEvent struct {
	Name string
	Seller util.Uint160
	ShareNum *big.Int
	Payout *big.Int
}

// FeeCollectedEvent represents "FeeCollected" event emitted by the contract.
type FeeCollectedEvent struct {
	Name string
	Collector util.Uint160
	Amount *big.Int
}

// Invoker is used by ContractReader to call various safe methods.
type Invoker interface {
	Call(contract util.Uint160, operation string, params ...any) (*result.Invoke, error)
	CallAndExpandIterator(contract util.Uint160, method string, maxItems int, params ...any) (*result.Invoke, error)
	TerminateSession(sessionID uuid.UUID) error
	TraverseIterator(sessionID uuid.UUID, iterator *result.Iterator, num int) ([]stackitem.Item, error)
}

// Actor is used by Contract to call state-changing methods.
type Actor interface {
	Invoker

	MakeCall(contract util.Uint160, method string, params ...any) (*transaction.Transaction, error)
	MakeRun(script []byte) (*transaction.Transaction, error)
	MakeUnsignedCall(contract util.Uint160, method string, attrs []transaction.Attribute, params ...any) (*transaction.Transaction, error)
	MakeUnsignedRun(script []byte, attrs []transaction.Attribute) (*transaction.Transaction, error)
	SendCall(contract util.Uint160, method string, params ...any) (util.Uint256, uint32, error)
	SendRun(script []byte) (util.Uint256, uint32, error)
}

// ContractReader implements safe contract methods.
type ContractReader struct {
	invoker Invoker
	hash util.Uint160
}

// Contract implements all contract methods.
type Contract struct {
	ContractReader
	actor Actor
	hash util.Uint160
}

// NewReader creates an instance of ContractReader using provided contract hash and the given Invoker.
func NewReader(invoker Invoker, hash util.Uint160) *ContractReader {
	return &ContractReader{invoker, hash}
}

// New creates an instance of Contract using provided contract hash and the given Actor.
func New(actor Actor, hash util.Uint160) *Contract {
	return &Contract{ContractReader{actor, hash}, actor, hash}
}

// AuctionEpoch invokes `auctionEpoch` method of contract.
func (c *ContractReader) AuctionEpoch(name string) (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "auctionEpoch", name))
}

// AuctionLeader invokes `auctionLeader` method of contract.
func (c *ContractReader) AuctionLeader(name string, epoch *big.Int) (util.Uint160, error) {
	return unwrap.Uint160(c.invoker.Call(c.hash, "auctionLeader", name, epoch))
}

// Binders invokes `binders` method of contract.
func (c *ContractReader) Binders() (uuid.UUID, result.Iterator, error) {
	return unwrap.SessionIterator(c.invoker.Call(c.hash, "binders"))
}

// BindersExpanded is similar to Binders (uses the same contract
// method), but can be useful if the server used doesn't support sessions and
// doesn't expand iterators. It creates a script that will get the specified
// number of result items from the iterator right in the VM and return them to
// you. It's only limited by VM stack and GAS available for RPC invocations.
func (c *ContractReader) BindersExpanded(_numOfIteratorItems int) ([]stackitem.Item, error) {
	return unwrap.Array(c.invoker.CallAndExpandIterator(c.hash, "binders", _numOfIteratorItems))
}

// CostOf invokes `costOf` method of contract.
func (c *ContractReader) CostOf(start *big.Int, end *big.Int) (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "costOf", start, end))
}

// InvestedAmount invokes `investedAmount` method of contract.
func (c *ContractReader) InvestedAmount(name string, epoch *big.Int, user util.Uint160) (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "investedAmount", name, epoch, user))
}

// OwnerFeePool invokes `ownerFeePool` method of contract.
func (c *ContractReader) OwnerFeePool(name string) (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "ownerFeePool", name))
}

// OwnerOf invokes `ownerOf` method of contract.
func (c *ContractReader) OwnerOf(name string) (util.Uint160, error) {
	return unwrap.Uint160(c.invoker.Call(c.hash, "ownerOf", name))
}

// OwnerTaxRate invokes `ownerTaxRate` method of contract.
func (c *ContractReader) OwnerTaxRate() (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "ownerTaxRate"))
}

// Participants invokes `participants` method of contract.
func (c *ContractReader) Participants(name string, epoch *big.Int) ([]util.Uint160, error) {
	return unwrap.ArrayOfUint160(c.invoker.Call(c.hash, "participants", name, epoch))
}

// PendingState invokes `pendingState` method of contract.
func (c *ContractReader) PendingState(name string) (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "pendingState", name))
}

// ProtocolFeePool invokes `protocolFeePool` method of contract.
func (c *ContractReader) ProtocolFeePool() (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "protocolFeePool"))
}

// ProtocolTaxRate invokes `protocolTaxRate` method of contract.
func (c *ContractReader) ProtocolTaxRate() (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "protocolTaxRate"))
}

// ShareOf invokes `shareOf` method of contract.
func (c *ContractReader) ShareOf(name string, user util.Uint160) (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "shareOf", name, user))
}

// State invokes `state` method of contract.
func (c *ContractReader) State(name string) (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "state", name))
}

// TimeRemaining invokes `timeRemaining` method of contract.
func (c *ContractReader) TimeRemaining(name string) (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "timeRemaining", name))
}

// TotalShare invokes `totalShare` method of contract.
func (c *ContractReader) TotalShare(name string) (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "totalShare", name))
}

// UnitPrice invokes `unitPrice` method of contract.
func (c *ContractReader) UnitPrice(x *big.Int) (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "unitPrice", x))
}

// Version invokes `version` method of contract.
func (c *ContractReader) Version() (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "version"))
}

// BuyShare creates a transaction invoking `buyShare` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) BuyShare(name string, buyer util.Uint160, shareNum *big.Int, maxPayment *big.Int, timestamp *big.Int, token []byte) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "buyShare", name, buyer, shareNum, maxPayment, timestamp, token)
}

// BuyShareTransaction creates a transaction invoking `buyShare` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) BuyShareTransaction(name string, buyer util.Uint160, shareNum *big.Int, maxPayment *big.Int, timestamp *big.Int, token []byte) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "buyShare", name, buyer, shareNum, maxPayment, timestamp, token)
}

// BuyShareUnsigned creates a transaction invoking `buyShare` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) BuyShareUnsigned(name string, buyer util.Uint160, shareNum *big.Int, maxPayment *big.Int, timestamp *big.Int, token []byte) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "buyShare", nil, name, buyer, shareNum, maxPayment, timestamp, token)
}

// CollectOwnerFee creates a transaction invoking `collectOwnerFee` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) CollectOwnerFee(name string, owner util.Uint160) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "collectOwnerFee", name, owner)
}

// CollectOwnerFeeTransaction creates a transaction invoking `collectOwnerFee` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) CollectOwnerFeeTransaction(name string, owner util.Uint160) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "collectOwnerFee", name, owner)
}

// CollectOwnerFeeUnsigned creates a transaction invoking `collectOwnerFee` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) CollectOwnerFeeUnsigned(name string, owner util.Uint160) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "collectOwnerFee", nil, name, owner)
}

// CollectProtocolFee creates a transaction invoking `collectProtocolFee` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) CollectProtocolFee() (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "collectProtocolFee")
}

// CollectProtocolFeeTransaction creates a transaction invoking `collectProtocolFee` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) CollectProtocolFeeTransaction() (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "collectProtocolFee")
}

// CollectProtocolFeeUnsigned creates a transaction invoking `collectProtocolFee` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) CollectProtocolFeeUnsigned() (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "collectProtocolFee", nil)
}

// Register creates a transaction invoking `register` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) Register(name string, registrant util.Uint160, timestamp *big.Int, token []byte) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "register", name, registrant, timestamp, token)
}

// RegisterTransaction creates a transaction invoking `register` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) RegisterTransaction(name string, registrant util.Uint160, timestamp *big.Int, token []byte) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "register", name, registrant, timestamp, token)
}

// RegisterUnsigned creates a transaction invoking `register` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) RegisterUnsigned(name string, registrant util.Uint160, timestamp *big.Int, token []byte) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "register", nil, name, registrant, timestamp, token)
}

// RenewOwnership creates a transaction invoking `renewOwnership` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) RenewOwnership(name string, owner util.Uint160, amount *big.Int, timestamp *big.Int, token []byte) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "renewOwnership", name, owner, amount, timestamp, token)
}

// RenewOwnershipTransaction creates a transaction invoking `renewOwnership` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) RenewOwnershipTransaction(name string, owner util.Uint160, amount *big.Int, timestamp *big.Int, token []byte) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "renewOwnership", name, owner, amount, timestamp, token)
}

// RenewOwnershipUnsigned creates a transaction invoking `renewOwnership` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) RenewOwnershipUnsigned(name string, owner util.Uint160, amount *big.Int, timestamp *big.Int, token []byte) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "renewOwnership", nil, name, owner, amount, timestamp, token)
}

// SellShare creates a transaction invoking `sellShare` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) SellShare(name string, seller util.Uint160, shareNum *big.Int, minPayout *big.Int, timestamp *big.Int, token []byte) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "sellShare", name, seller, shareNum, minPayout, timestamp, token)
}

// SellShareTransaction creates a transaction invoking `sellShare` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) SellShareTransaction(name string, seller util.Uint160, shareNum *big.Int, minPayout *big.Int, timestamp *big.Int, token []byte) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "sellShare", name, seller, shareNum, minPayout, timestamp, token)
}

// SellShareUnsigned creates a transaction invoking `sellShare` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) SellShareUnsigned(name string, seller util.Uint160, shareNum *big.Int, minPayout *big.Int, timestamp *big.Int, token []byte) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "sellShare", nil, name, seller, shareNum, minPayout, timestamp, token)
}

// SetOwnerTaxRate creates a transaction invoking `setOwnerTaxRate` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) SetOwnerTaxRate(rate *big.Int) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "setOwnerTaxRate", rate)
}

// SetOwnerTaxRateTransaction creates a transaction invoking `setOwnerTaxRate` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) SetOwnerTaxRateTransaction(rate *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "setOwnerTaxRate", rate)
}

// SetOwnerTaxRateUnsigned creates a transaction invoking `setOwnerTaxRate` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) SetOwnerTaxRateUnsigned(rate *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "setOwnerTaxRate", nil, rate)
}

// SetProtocolTaxRate creates a transaction invoking `setProtocolTaxRate` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) SetProtocolTaxRate(rate *big.Int) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "setProtocolTaxRate", rate)
}

// SetProtocolTaxRateTransaction creates a transaction invoking `setProtocolTaxRate` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) SetProtocolTaxRateTransaction(rate *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "setProtocolTaxRate", rate)
}

// SetProtocolTaxRateUnsigned creates a transaction invoking `setProtocolTaxRate` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) SetProtocolTaxRateUnsigned(rate *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "setProtocolTaxRate", nil, rate)
}

// SetSignatureTTL creates a transaction invoking `setSignatureTTL` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) SetSignatureTTL(ttl *big.Int) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "setSignatureTTL", ttl)
}

// SetSignatureTTLTransaction creates a transaction invoking `setSignatureTTL` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) SetSignatureTTLTransaction(ttl *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "setSignatureTTL", ttl)
}

// SetSignatureTTLUnsigned creates a transaction invoking `setSignatureTTL` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) SetSignatureTTLUnsigned(ttl *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "setSignatureTTL", nil, ttl)
}

// SetSigner creates a transaction invoking `setSigner` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) SetSigner(pub *keys.PublicKey) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "setSigner", pub)
}

// SetSignerTransaction creates a transaction invoking `setSigner` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) SetSignerTransaction(pub *keys.PublicKey) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "setSigner", pub)
}

// SetSignerUnsigned creates a transaction invoking `setSigner` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) SetSignerUnsigned(pub *keys.PublicKey) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "setSigner", nil, pub)
}

// Update creates a transaction invoking `update` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) Update(script []byte, manifest []byte, data any) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "update", script, manifest, data)
}

// UpdateTransaction creates a transaction invoking `update` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) UpdateTransaction(script []byte, manifest []byte, data any) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "update", script, manifest, data)
}

// UpdateUnsigned creates a transaction invoking `update` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) UpdateUnsigned(script []byte, manifest []byte, data any) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "update", nil, script, manifest, data)
}

func itemToBinderBinder(item stackitem.Item, err error) (*BinderBinder, error) {
	if err != nil {
		return nil, err
	}
	var res = new(BinderBinder)
	err = res.FromStackItem(item)
	return res, err
}

// FromStackItem retrieves fields of BinderBinder from the given
// [stackitem.Item] or returns an error if it's not possible to do to so.
func (res *BinderBinder) FromStackItem(item stackitem.Item) error {
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 6 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err error
	)
	index++
	res.Name, err = func (item stackitem.Item) (string, error) {
		b, err := item.TryBytes()
		if err != nil {
			return "", err
		}
		return string(b), nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field Name: %w", err)
	}

	index++
	res.State, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field State: %w", err)
	}

	index++
	res.Owner, err = func (item stackitem.Item) (util.Uint160, error) {
		if _, ok := item.(stackitem.Null); ok {
			return util.Uint160{}, nil
		}
		b, err := item.TryBytes()
		if err != nil {
			return util.Uint160{}, err
		}
		u, err := util.Uint160DecodeBytesBE(b)
		if err != nil {
			return util.Uint160{}, err
		}
		return u, nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field Owner: %w", err)
	}

	index++
	res.LastTimePoint, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field LastTimePoint: %w", err)
	}

	index++
	res.AuctionEpoch, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field AuctionEpoch: %w", err)
	}

	index++
	res.TotalShare, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field TotalShare: %w", err)
	}

	return nil
}

// RegisterEventsFromApplicationLog retrieves a set of all emitted events
// with "Register" name from the provided [result.ApplicationLog].
func RegisterEventsFromApplicationLog(log *result.ApplicationLog) ([]*RegisterEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*RegisterEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "Register" {
				continue
			}
			event := new(RegisterEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize RegisterEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to RegisterEvent or
// returns an error if it's not possible to do to so.
func (e *RegisterEvent) FromStackItem(item *stackitem.Array) error {
	if item == nil {
		return errors.New("nil item")
	}
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 2 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err error
	)
	index++
	e.Name, err = func (item stackitem.Item) (string, error) {
		b, err := item.TryBytes()
		if err != nil {
			return "", err
		}
		return string(b), nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field Name: %w", err)
	}

	index++
	e.Registrant, err = func (item stackitem.Item) (util.Uint160, error) {
		b, err := item.TryBytes()
		if err != nil {
			return util.Uint160{}, err
		}
		u, err := util.Uint160DecodeBytesBE(b)
		if err != nil {
			return util.Uint160{}, err
		}
		return u, nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field Registrant: %w", err)
	}

	return nil
}

// AuctionStartedEventsFromApplicationLog retrieves a set of all emitted events
// with "AuctionStarted" name from the provided [result.ApplicationLog].
func AuctionStartedEventsFromApplicationLog(log *result.ApplicationLog) ([]*AuctionStartedEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*AuctionStartedEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "AuctionStarted" {
				continue
			}
			event := new(AuctionStartedEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize AuctionStartedEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to AuctionStartedEvent or
// returns an error if it's not possible to do to so.
func (e *AuctionStartedEvent) FromStackItem(item *stackitem.Array) error {
	if item == nil {
		return errors.New("nil item")
	}
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 2 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err error
	)
	index++
	e.Name, err = func (item stackitem.Item) (string, error) {
		b, err := item.TryBytes()
		if err != nil {
			return "", err
		}
		return string(b), nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field Name: %w", err)
	}

	index++
	e.Epoch, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Epoch: %w", err)
	}

	return nil
}

// AuctionResolvedEventsFromApplicationLog retrieves a set of all emitted events
// with "AuctionResolved" name from the provided [result.ApplicationLog].
func AuctionResolvedEventsFromApplicationLog(log *result.ApplicationLog) ([]*AuctionResolvedEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*AuctionResolvedEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "AuctionResolved" {
				continue
			}
			event := new(AuctionResolvedEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize AuctionResolvedEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to AuctionResolvedEvent or
// returns an error if it's not possible to do to so.
func (e *AuctionResolvedEvent) FromStackItem(item *stackitem.Array) error {
	if item == nil {
		return errors.New("nil item")
	}
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 3 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err error
	)
	index++
	e.Name, err = func (item stackitem.Item) (string, error) {
		b, err := item.TryBytes()
		if err != nil {
			return "", err
		}
		return string(b), nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field Name: %w", err)
	}

	index++
	e.Epoch, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Epoch: %w", err)
	}

	index++
	e.Winner, err = func (item stackitem.Item) (util.Uint160, error) {
		b, err := item.TryBytes()
		if err != nil {
			return util.Uint160{}, err
		}
		u, err := util.Uint160DecodeBytesBE(b)
		if err != nil {
			return util.Uint160{}, err
		}
		return u, nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field Winner: %w", err)
	}

	return nil
}

// OwnershipExpiredEventsFromApplicationLog retrieves a set of all emitted events
// with "OwnershipExpired" name from the provided [result.ApplicationLog].
func OwnershipExpiredEventsFromApplicationLog(log *result.ApplicationLog) ([]*OwnershipExpiredEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*OwnershipExpiredEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "OwnershipExpired" {
				continue
			}
			event := new(OwnershipExpiredEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize OwnershipExpiredEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to OwnershipExpiredEvent or
// returns an error if it's not possible to do to so.
func (e *OwnershipExpiredEvent) FromStackItem(item *stackitem.Array) error {
	if item == nil {
		return errors.New("nil item")
	}
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 2 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err error
	)
	index++
	e.Name, err = func (item stackitem.Item) (string, error) {
		b, err := item.TryBytes()
		if err != nil {
			return "", err
		}
		return string(b), nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field Name: %w", err)
	}

	index++
	e.Owner, err = func (item stackitem.Item) (util.Uint160, error) {
		b, err := item.TryBytes()
		if err != nil {
			return util.Uint160{}, err
		}
		u, err := util.Uint160DecodeBytesBE(b)
		if err != nil {
			return util.Uint160{}, err
		}
		return u, nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field Owner: %w", err)
	}

	return nil
}

// OwnershipRenewedEventsFromApplicationLog retrieves a set of all emitted events
// with "OwnershipRenewed" name from the provided [result.ApplicationLog].
func OwnershipRenewedEventsFromApplicationLog(log *result.ApplicationLog) ([]*OwnershipRenewedEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*OwnershipRenewedEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "OwnershipRenewed" {
				continue
			}
			event := new(OwnershipRenewedEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize OwnershipRenewedEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to OwnershipRenewedEvent or
// returns an error if it's not possible to do to so.
func (e *OwnershipRenewedEvent) FromStackItem(item *stackitem.Array) error {
	if item == nil {
		return errors.New("nil item")
	}
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 3 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err error
	)
	index++
	e.Name, err = func (item stackitem.Item) (string, error) {
		b, err := item.TryBytes()
		if err != nil {
			return "", err
		}
		return string(b), nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field Name: %w", err)
	}

	index++
	e.Owner, err = func (item stackitem.Item) (util.Uint160, error) {
		b, err := item.TryBytes()
		if err != nil {
			return util.Uint160{}, err
		}
		u, err := util.Uint160DecodeBytesBE(b)
		if err != nil {
			return util.Uint160{}, err
		}
		return u, nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field Owner: %w", err)
	}

	index++
	e.Amount, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Amount: %w", err)
	}

	return nil
}

// OwnershipReleasedEventsFromApplicationLog retrieves a set of all emitted events
// with "OwnershipReleased" name from the provided [result.ApplicationLog].
func OwnershipReleasedEventsFromApplicationLog(log *result.ApplicationLog) ([]*OwnershipReleasedEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*OwnershipReleasedEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "OwnershipReleased" {
				continue
			}
			event := new(OwnershipReleasedEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize OwnershipReleasedEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to OwnershipReleasedEvent or
// returns an error if it's not possible to do to so.
func (e *OwnershipReleasedEvent) FromStackItem(item *stackitem.Array) error {
	if item == nil {
		return errors.New("nil item")
	}
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 2 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err error
	)
	index++
	e.Name, err = func (item stackitem.Item) (string, error) {
		b, err := item.TryBytes()
		if err != nil {
			return "", err
		}
		return string(b), nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field Name: %w", err)
	}

	index++
	e.Owner, err = func (item stackitem.Item) (util.Uint160, error) {
		b, err := item.TryBytes()
		if err != nil {
			return util.Uint160{}, err
		}
		u, err := util.Uint160DecodeBytesBE(b)
		if err != nil {
			return util.Uint160{}, err
		}
		return u, nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field Owner: %w", err)
	}

	return nil
}

// BuyShareEventsFromApplicationLog retrieves a set of all emitted events
// with "BuyShare" name from the provided [result.ApplicationLog].
func BuyShareEventsFromApplicationLog(log *result.ApplicationLog) ([]*BuyShareEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*BuyShareEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "BuyShare" {
				continue
			}
			event := new(BuyShareEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize BuyShareEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to BuyShareEvent or
// returns an error if it's not possible to do to so.
func (e *BuyShareEvent) FromStackItem(item *stackitem.Array) error {
	if item == nil {
		return errors.New("nil item")
	}
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 4 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err error
	)
	index++
	e.Name, err = func (item stackitem.Item) (string, error) {
		b, err := item.TryBytes()
		if err != nil {
			return "", err
		}
		return string(b), nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field Name: %w", err)
	}

	index++
	e.Buyer, err = func (item stackitem.Item) (util.Uint160, error) {
		b, err := item.TryBytes()
		if err != nil {
			return util.Uint160{}, err
		}
		u, err := util.Uint160DecodeBytesBE(b)
		if err != nil {
			return util.Uint160{}, err
		}
		return u, nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field Buyer: %w", err)
	}

	index++
	e.ShareNum, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field ShareNum: %w", err)
	}

	index++
	e.Cost, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Cost: %w", err)
	}

	return nil
}

// SellShareEventsFromApplicationLog retrieves a set of all emitted events
// with "SellShare" name from the provided [result.ApplicationLog].
func SellShareEventsFromApplicationLog(log *result.ApplicationLog) ([]*SellShareEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*SellShareEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "SellShare" {
				continue
			}
			event := new(SellShareEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize SellShareEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to SellShareEvent or
// returns an error if it's not possible to do to so.
func (e *SellShareEvent) FromStackItem(item *stackitem.Array) error {
	if item == nil {
		return errors.New("nil item")
	}
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 4 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err error
	)
	index++
	e.Name, err = func (item stackitem.Item) (string, error) {
		b, err := item.TryBytes()
		if err != nil {
			return "", err
		}
		return string(b), nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field Name: %w", err)
	}

	index++
	e.Seller, err = func (item stackitem.Item) (util.Uint160, error) {
		b, err := item.TryBytes()
		if err != nil {
			return util.Uint160{}, err
		}
		u, err := util.Uint160DecodeBytesBE(b)
		if err != nil {
			return util.Uint160{}, err
		}
		return u, nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field Seller: %w", err)
	}

	index++
	e.ShareNum, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field ShareNum: %w", err)
	}

	index++
	e.Payout, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Payout: %w", err)
	}

	return nil
}

// FeeCollectedEventsFromApplicationLog retrieves a set of all emitted events
// with "FeeCollected" name from the provided [result.ApplicationLog].
func FeeCollectedEventsFromApplicationLog(log *result.ApplicationLog) ([]*FeeCollectedEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*FeeCollectedEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "FeeCollected" {
				continue
			}
			event := new(FeeCollectedEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize FeeCollectedEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to FeeCollectedEvent or
// returns an error if it's not possible to do to so.
func (e *FeeCollectedEvent) FromStackItem(item *stackitem.Array) error {
	if item == nil {
		return errors.New("nil item")
	}
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 3 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err error
	)
	index++
	e.Name, err = func (item stackitem.Item) (string, error) {
		b, err := item.TryBytes()
		if err != nil {
			return "", err
		}
		return string(b), nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field Name: %w", err)
	}

	index++
	e.Collector, err = func (item stackitem.Item) (util.Uint160, error) {
		b, err := item.TryBytes()
		if err != nil {
			return util.Uint160{}, err
		}
		u, err := util.Uint160DecodeBytesBE(b)
		if err != nil {
			return util.Uint160{}, err
		}
		return u, nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field Collector: %w", err)
	}

	index++
	e.Amount, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Amount: %w", err)
	}

	return nil
}

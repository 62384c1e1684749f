package binder

import (
	"github.com/nspcc-dev/binder-contract/common"
	cst "github.com/nspcc-dev/binder-contract/contracts/binder/binderconst"
	"github.com/nspcc-dev/neo-go/pkg/interop"
	"github.com/nspcc-dev/neo-go/pkg/interop/contract"
	"github.com/nspcc-dev/neo-go/pkg/interop/convert"
	"github.com/nspcc-dev/neo-go/pkg/interop/iterator"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/crypto"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/management"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/std"
	"github.com/nspcc-dev/neo-go/pkg/interop/runtime"
	"github.com/nspcc-dev/neo-go/pkg/interop/storage"
	"github.com/nspcc-dev/neo-go/pkg/interop/util"
)

// Binder is the state of a single named binder. Owner is the current
// controller account; it is nil while the binder belongs to the system
// (NoOwner and OnAuction states). LastTimePoint anchors the countdown of
// the current phase, AuctionEpoch counts started auction cycles and
// TotalShare is the aggregate outstanding share supply across all epochs.
type Binder struct {
	Name          string
	State         cst.State
	Owner         interop.Hash160
	LastTimePoint int
	AuctionEpoch  int
	TotalShare    int
}

// Prefixes used for contract data storage.
const (
	// prefixBinder contains map from ripemd160(name) to serialized Binder.
	prefixBinder byte = 0x01
	// prefixInvested contains map from (binder ID + user + epoch) to the
	// signed net invested amount of the user within the epoch.
	prefixInvested byte = 0x02
	// prefixParticipants contains map from (binder ID + epoch) to the
	// serialized append-only list of epoch participants.
	prefixParticipants byte = 0x03
	// prefixShare contains map from (binder ID + user) to the user's
	// cumulative share balance.
	prefixShare byte = 0x04
	// prefixOwnerFee contains map from binder ID to the accumulated owner
	// fee pool.
	prefixOwnerFee byte = 0x05
	// prefixUsedToken contains set of sha256 hashes of consumed
	// authorization tokens.
	prefixUsedToken byte = 0x07
)

// Keys used for contract configuration storage.
const (
	signerKey          = "authSigner"
	signatureTTLKey    = "signatureTTL"
	protocolTaxRateKey = "protocolTaxRate"
	ownerTaxRateKey    = "ownerTaxRate"
	auctionDurationKey = "auctionDuration"
	holdingPeriodKey   = "holdingPeriod"
	renewalWindowKey   = "renewalWindow"
	tokenContractKey   = "tokenScriptHash"
	treasuryKey        = "treasuryScriptHash"
	protocolFeeKey     = "protocolFeePool"
)

// nolint:deadcode,unused
func _deploy(data any, isUpdate bool) {
	ctx := storage.GetContext()
	if isUpdate {
		args := data.([]any)
		common.CheckVersion(args[len(args)-1].(int))
		return
	}

	args := data.([]any)
	signer := args[0].(interop.PublicKey)
	if len(signer) != interop.PublicKeyCompressedLen {
		panic("invalid backend signer key")
	}
	tokenH := args[1].(interop.Hash160)
	if len(tokenH) != interop.Hash160Len {
		panic("invalid settlement token address")
	}
	treasury := args[2].(interop.Hash160)
	if len(treasury) != interop.Hash160Len {
		panic("invalid treasury address")
	}

	storage.Put(ctx, signerKey, signer)
	storage.Put(ctx, tokenContractKey, tokenH)
	storage.Put(ctx, treasuryKey, treasury)
	storage.Put(ctx, signatureTTLKey, cst.DefaultSignatureTTL)
	storage.Put(ctx, protocolTaxRateKey, cst.DefaultProtocolTaxRate)
	storage.Put(ctx, ownerTaxRateKey, cst.DefaultOwnerTaxRate)
	storage.Put(ctx, auctionDurationKey, cst.DefaultAuctionDuration)
	storage.Put(ctx, holdingPeriodKey, cst.DefaultHoldingPeriod)
	storage.Put(ctx, renewalWindowKey, cst.DefaultRenewalWindow)

	runtime.Log("binder contract initialized")
}

// Update method updates contract source code and manifest. It can be
// invoked by committee only.
func Update(script []byte, manifest []byte, data any) {
	if !common.HasUpdateAccess() {
		panic("only committee can update contract")
	}

	contract.Call(interop.Hash160(management.Hash), "update",
		contract.All, script, manifest, common.AppendVersion(data))
	runtime.Log("binder contract updated")
}

// Version returns the version of the contract.
func Version() int {
	return common.Version
}

// Register registers a new binder with the provided name. The binder
// starts in NoOwner state, open for the first auction cycle. The call must
// be witnessed by the registrant and authorized by a backend token issued
// for the registration action.
func Register(name string, registrant interop.Hash160, timestamp int, token interop.Signature) {
	if len(name) == 0 || len(name) > cst.MaxNameLength {
		panic("invalid binder name")
	}
	ctx := storage.GetContext()
	id := binderID(name)
	if storage.Get(ctx, binderKey(id)) != nil {
		panic(cst.AlreadyRegisteredError)
	}
	common.CheckOwnerWitness(registrant)
	authorize(ctx, cst.ActionRegister, name, 0, registrant, timestamp, token)

	b := Binder{
		Name:          name,
		State:         cst.NoOwner,
		Owner:         nil,
		LastTimePoint: runtime.GetTime(),
		AuctionEpoch:  0,
		TotalShare:    0,
	}
	putBinder(ctx, id, b)
	runtime.Notify("Register", name, registrant)
}

// BuyShare purchases shareNum shares of the binder for the buyer, paying
// the bonding curve cost in settlement tokens. A purchase from NoOwner
// state opens a new auction epoch with the buyer as its first participant.
// A purchase during an open auction counts towards the buyer's bid.
// maxPayment bounds the accepted cost, zero disables the bound. Returns
// true if the binder state changed during the call (including overdue
// transitions resolved lazily before the trade).
func BuyShare(name string, buyer interop.Hash160, shareNum, maxPayment, timestamp int, token interop.Signature) bool {
	if shareNum <= 0 {
		panic(cst.ZeroShareError)
	}
	ctx := storage.GetContext()
	id := binderID(name)
	b, ok := getBinder(ctx, id)
	if !ok {
		panic(cst.NotFoundError)
	}
	common.CheckOwnerWitness(buyer)
	authorize(ctx, cst.ActionBuy, name, shareNum, buyer, timestamp, token)

	now := runtime.GetTime()
	nb, changed := advance(ctx, id, b, now)
	b = nb

	cost := CostOf(b.TotalShare, b.TotalShare+shareNum)
	if maxPayment > 0 && cost > maxPayment {
		panic(cst.SlippageError)
	}
	if cost > 0 {
		pay(ctx, buyer, runtime.GetExecutingScriptHash(), cost, common.BuyTransferDetails([]byte(name)))
	}

	switch b.State {
	case cst.NoOwner:
		b.AuctionEpoch = b.AuctionEpoch + 1
		b.State = cst.OnAuction
		b.Owner = nil
		b.LastTimePoint = now
		changed = true
		recordContribution(ctx, id, b.AuctionEpoch, buyer, cost, true)
		runtime.Notify("AuctionStarted", name, b.AuctionEpoch)
	case cst.OnAuction:
		recordContribution(ctx, id, b.AuctionEpoch, buyer, cost, false)
	}

	addShares(ctx, id, buyer, shareNum)
	b.TotalShare += shareNum
	putBinder(ctx, id, b)
	runtime.Notify("BuyShare", name, buyer, shareNum, cost)
	return changed
}

// SellShare redeems shareNum shares of the seller against the bonding
// curve. The curve reward is taxed with the protocol and owner fee rates,
// both truncated independently, and the remainder is paid out in
// settlement tokens. During an open auction the gross reward is subtracted
// from the seller's bid. minPayout bounds the accepted payout, zero
// disables the bound. Returns true if the binder state changed during the
// call.
func SellShare(name string, seller interop.Hash160, shareNum, minPayout, timestamp int, token interop.Signature) bool {
	if shareNum <= 0 {
		panic(cst.ZeroShareError)
	}
	ctx := storage.GetContext()
	id := binderID(name)
	b, ok := getBinder(ctx, id)
	if !ok {
		panic(cst.NotFoundError)
	}
	common.CheckOwnerWitness(seller)
	authorize(ctx, cst.ActionSell, name, shareNum, seller, timestamp, token)

	now := runtime.GetTime()
	nb, changed := advance(ctx, id, b, now)
	b = nb

	shareKey := userShareKey(id, seller)
	owned := common.GetInt(ctx, shareKey)
	if owned < shareNum {
		panic(cst.NotEnoughSharesError)
	}

	reward := CostOf(b.TotalShare-shareNum, b.TotalShare)
	protocolFee := reward * protocolTaxRate(ctx) / cst.TaxRateDivisor
	ownerFee := reward * ownerTaxRate(ctx) / cst.TaxRateDivisor
	payout := reward - protocolFee - ownerFee
	if minPayout > 0 && payout < minPayout {
		panic(cst.SlippageError)
	}

	if protocolFee > 0 {
		addToPool(ctx, protocolFeeKey, protocolFee)
	}
	if ownerFee > 0 {
		addToPool(ctx, ownerPoolKey(id), ownerFee)
	}
	if b.State == cst.OnAuction {
		recordContribution(ctx, id, b.AuctionEpoch, seller, -reward, false)
	}

	storage.Put(ctx, shareKey, owned-shareNum)
	b.TotalShare -= shareNum
	putBinder(ctx, id, b)

	if payout > 0 {
		pay(ctx, runtime.GetExecutingScriptHash(), seller, payout, common.SellTransferDetails([]byte(name)))
	}
	runtime.Notify("SellShare", name, seller, shareNum, payout)
	return changed
}

// RenewOwnership extends the ownership of the binder for another holding
// period. It can be invoked by the current owner during the renewal window
// only. The payment amount is routed entirely to the protocol fee pool.
func RenewOwnership(name string, owner interop.Hash160, amount, timestamp int, token interop.Signature) {
	if amount < 0 {
		panic("negative renewal amount")
	}
	ctx := storage.GetContext()
	id := binderID(name)
	b, ok := getBinder(ctx, id)
	if !ok {
		panic(cst.NotFoundError)
	}
	common.CheckOwnerWitness(owner)
	authorize(ctx, cst.ActionRenew, name, amount, owner, timestamp, token)

	now := runtime.GetTime()
	b, _ = advance(ctx, id, b, now)
	if b.State != cst.WaitingForRenewal {
		panic(cst.NotRenewableError)
	}
	if !util.Equals(b.Owner, owner) {
		panic(cst.NotOwnerError)
	}

	if amount > 0 {
		pay(ctx, owner, runtime.GetExecutingScriptHash(), amount, common.RenewTransferDetails([]byte(name)))
		addToPool(ctx, protocolFeeKey, amount)
	}

	b.State = cst.HasOwner
	b.LastTimePoint = now
	putBinder(ctx, id, b)
	runtime.Notify("OwnershipRenewed", name, owner, amount)
}

// CollectOwnerFee drains the accumulated owner fee pool of the binder to
// its current owner. Invoking with an empty pool is a no-op, not an error.
func CollectOwnerFee(name string, owner interop.Hash160) {
	ctx := storage.GetContext()
	id := binderID(name)
	b, ok := getBinder(ctx, id)
	if !ok {
		panic(cst.NotFoundError)
	}
	common.CheckOwnerWitness(owner)
	if len(b.Owner) != interop.Hash160Len || !util.Equals(b.Owner, owner) {
		panic(cst.NotOwnerError)
	}

	key := ownerPoolKey(id)
	pool := common.GetInt(ctx, key)
	if pool > 0 {
		storage.Delete(ctx, key)
		pay(ctx, runtime.GetExecutingScriptHash(), owner, pool, common.OwnerFeeTransferDetails([]byte(name)))
	}
	runtime.Notify("FeeCollected", name, owner, pool)
}

// CollectProtocolFee drains the protocol fee pool to the configured
// treasury account. It can be invoked by committee only. Invoking with an
// empty pool is a no-op, not an error.
func CollectProtocolFee() {
	common.CheckCommitteeWitness()
	ctx := storage.GetContext()
	treasury := storage.Get(ctx, treasuryKey).(interop.Hash160)

	pool := common.GetInt(ctx, protocolFeeKey)
	if pool > 0 {
		storage.Delete(ctx, protocolFeeKey)
		pay(ctx, runtime.GetExecutingScriptHash(), treasury, pool, common.ProtocolFeeTransferDetails())
	}
	runtime.Notify("FeeCollected", "", treasury, pool)
}

// SetSigner sets the public key of the backend service issuing
// authorization tokens. It can be invoked by committee only.
func SetSigner(pub interop.PublicKey) {
	common.CheckCommitteeWitness()
	if len(pub) != interop.PublicKeyCompressedLen {
		panic("invalid backend signer key")
	}
	ctx := storage.GetContext()
	storage.Put(ctx, signerKey, pub)
}

// SetSignatureTTL sets the validity window of authorization tokens in
// milliseconds. It can be invoked by committee only.
func SetSignatureTTL(ttl int) {
	common.CheckCommitteeWitness()
	if ttl <= 0 {
		panic("non-positive signature TTL")
	}
	ctx := storage.GetContext()
	storage.Put(ctx, signatureTTLKey, ttl)
}

// SetProtocolTaxRate sets the protocol share of sell rewards in basis
// points. It can be invoked by committee only.
func SetProtocolTaxRate(rate int) {
	common.CheckCommitteeWitness()
	ctx := storage.GetContext()
	checkTaxRate(rate, common.GetInt(ctx, ownerTaxRateKey))
	storage.Put(ctx, protocolTaxRateKey, rate)
}

// SetOwnerTaxRate sets the binder owner share of sell rewards in basis
// points. It can be invoked by committee only.
func SetOwnerTaxRate(rate int) {
	common.CheckCommitteeWitness()
	ctx := storage.GetContext()
	checkTaxRate(rate, common.GetInt(ctx, protocolTaxRateKey))
	storage.Put(ctx, ownerTaxRateKey, rate)
}

func checkTaxRate(rate, other int) {
	if rate < 0 || rate+other > cst.TaxRateDivisor {
		panic("tax rate out of range")
	}
}

// State returns the stored lifecycle state of the binder. Overdue
// time-based transitions are not reflected until the next mutating call,
// see PendingState.
func State(name string) cst.State {
	ctx := storage.GetReadOnlyContext()
	b, ok := getBinder(ctx, binderID(name))
	if !ok {
		return cst.NotRegistered
	}
	return b.State
}

// PendingState returns the state the binder resolves to once the next
// mutating call touches it at the current time.
func PendingState(name string) cst.State {
	ctx := storage.GetReadOnlyContext()
	b, ok := getBinder(ctx, binderID(name))
	if !ok {
		return cst.NotRegistered
	}
	if overdue(ctx, b, runtime.GetTime()) {
		switch b.State {
		case cst.OnAuction:
			return cst.HasOwner
		case cst.HasOwner:
			return cst.WaitingForRenewal
		case cst.WaitingForRenewal:
			return cst.NoOwner
		}
	}
	return b.State
}

// OwnerOf returns the current owner account of the binder or nil if the
// binder belongs to the system.
func OwnerOf(name string) interop.Hash160 {
	ctx := storage.GetReadOnlyContext()
	b, ok := getBinder(ctx, binderID(name))
	if !ok {
		panic(cst.NotFoundError)
	}
	return b.Owner
}

// AuctionEpoch returns the number of auction cycles started for the binder.
func AuctionEpoch(name string) int {
	ctx := storage.GetReadOnlyContext()
	b, ok := getBinder(ctx, binderID(name))
	if !ok {
		panic(cst.NotFoundError)
	}
	return b.AuctionEpoch
}

// TotalShare returns the aggregate outstanding share supply of the binder.
func TotalShare(name string) int {
	ctx := storage.GetReadOnlyContext()
	b, ok := getBinder(ctx, binderID(name))
	if !ok {
		panic(cst.NotFoundError)
	}
	return b.TotalShare
}

// ShareOf returns the cumulative share balance of the user for the binder.
func ShareOf(name string, user interop.Hash160) int {
	ctx := storage.GetReadOnlyContext()
	return common.GetInt(ctx, userShareKey(binderID(name), user))
}

// TimeRemaining returns the number of milliseconds left in the current
// binder phase or zero if the phase has no deadline or has already run out.
func TimeRemaining(name string) int {
	ctx := storage.GetReadOnlyContext()
	b, ok := getBinder(ctx, binderID(name))
	if !ok {
		panic(cst.NotFoundError)
	}
	d := phaseDuration(ctx, b.State)
	if d == 0 {
		return 0
	}
	left := b.LastTimePoint + d - runtime.GetTime()
	if left < 0 {
		return 0
	}
	return left
}

// InvestedAmount returns the signed net invested amount of the user within
// the given auction epoch of the binder.
func InvestedAmount(name string, epoch int, user interop.Hash160) int {
	ctx := storage.GetReadOnlyContext()
	return common.GetInt(ctx, investedKey(binderID(name), epoch, user))
}

// Participants returns the ordered list of accounts that contributed to
// the given auction epoch of the binder.
func Participants(name string, epoch int) []interop.Hash160 {
	ctx := storage.GetReadOnlyContext()
	list := common.GetList(ctx, participantsKey(binderID(name), epoch))
	res := []interop.Hash160{}
	for i := 0; i < len(list); i++ {
		res = append(res, list[i])
	}
	return res
}

// AuctionLeader returns the account leading the given auction epoch of the
// binder, or nil if the epoch had no participants. Ties go to the earliest
// participant.
func AuctionLeader(name string, epoch int) interop.Hash160 {
	ctx := storage.GetReadOnlyContext()
	return auctionWinner(ctx, binderID(name), epoch)
}

// Binders returns iterator over all registered binders.
func Binders() iterator.Iterator {
	ctx := storage.GetReadOnlyContext()
	return storage.Find(ctx, []byte{prefixBinder}, storage.ValuesOnly|storage.DeserializeValues)
}

// OwnerFeePool returns the accumulated owner fee pool of the binder.
func OwnerFeePool(name string) int {
	ctx := storage.GetReadOnlyContext()
	return common.GetInt(ctx, ownerPoolKey(binderID(name)))
}

// ProtocolFeePool returns the accumulated protocol fee pool.
func ProtocolFeePool() int {
	ctx := storage.GetReadOnlyContext()
	return common.GetInt(ctx, protocolFeeKey)
}

// ProtocolTaxRate returns the protocol share of sell rewards in basis points.
func ProtocolTaxRate() int {
	ctx := storage.GetReadOnlyContext()
	return protocolTaxRate(ctx)
}

// OwnerTaxRate returns the binder owner share of sell rewards in basis points.
func OwnerTaxRate() int {
	ctx := storage.GetReadOnlyContext()
	return ownerTaxRate(ctx)
}

// UnitPrice returns the bonding curve price of the share with the given
// zero-based index.
func UnitPrice(x int) int {
	if x < 0 {
		panic("negative share index")
	}
	return 10 * x * x
}

// CostOf returns the total bonding curve cost of the shares with indexes
// in [start, end). An empty or inverted range costs zero.
func CostOf(start, end int) int {
	if start < 0 {
		panic("negative share index")
	}
	if end <= start {
		return 0
	}
	return 10 * (sumOfSquares(end-1) - sumOfSquares(start-1))
}

// sumOfSquares returns the sum of squares of integers in [0, n].
func sumOfSquares(n int) int {
	if n < 0 {
		return 0
	}
	return n * (n + 1) * (2*n + 1) / 6
}

// advance lazily resolves an overdue time-based transition of the binder.
// It is invoked at the top of every mutating entry point before the call's
// own trade is applied. At most one phase resolves per touch and every
// resolved phase re-anchors the countdown at the moment of the touch.
// The updated binder is persisted by the caller.
func advance(ctx storage.Context, id []byte, b Binder, now int) (Binder, bool) {
	if !overdue(ctx, b, now) {
		return b, false
	}
	switch b.State {
	case cst.OnAuction:
		winner := auctionWinner(ctx, id, b.AuctionEpoch)
		b.Owner = winner
		b.State = cst.HasOwner
		b.LastTimePoint = now
		runtime.Notify("AuctionResolved", b.Name, b.AuctionEpoch, winner)
	case cst.HasOwner:
		b.State = cst.WaitingForRenewal
		b.LastTimePoint = now
		runtime.Notify("OwnershipExpired", b.Name, b.Owner)
	case cst.WaitingForRenewal:
		runtime.Notify("OwnershipReleased", b.Name, b.Owner)
		b.State = cst.NoOwner
		b.Owner = nil
		b.LastTimePoint = now
	}
	return b, true
}

func overdue(ctx storage.Context, b Binder, now int) bool {
	d := phaseDuration(ctx, b.State)
	return d != 0 && now-b.LastTimePoint > d
}

// phaseDuration returns the deadline of the given state in milliseconds or
// zero for states without a deadline.
func phaseDuration(ctx storage.Context, state cst.State) int {
	switch state {
	case cst.OnAuction:
		return common.GetInt(ctx, auctionDurationKey)
	case cst.HasOwner:
		return common.GetInt(ctx, holdingPeriodKey)
	case cst.WaitingForRenewal:
		return common.GetInt(ctx, renewalWindowKey)
	}
	return 0
}

// auctionWinner scans the epoch participant list in insertion order and
// returns the participant with the strictly greatest net invested amount.
// The first participant wins exact ties.
func auctionWinner(ctx storage.Context, id []byte, epoch int) interop.Hash160 {
	list := common.GetList(ctx, participantsKey(id, epoch))
	if len(list) == 0 {
		return nil
	}
	winner := list[0]
	best := common.GetInt(ctx, investedKey(id, epoch, winner))
	for i := 1; i < len(list); i++ {
		amount := common.GetInt(ctx, investedKey(id, epoch, list[i]))
		if amount > best {
			best = amount
			winner = list[i]
		}
	}
	return winner
}

// authorize validates a single-use authorization token binding the action,
// the binder name, a content value, the actor and the timestamp. The token
// is consumed right after its signature validates, before any downstream
// business check, so a failed business check still burns it.
func authorize(ctx storage.Context, action int, name string, content int, actor interop.Hash160, timestamp int, token interop.Signature) {
	now := runtime.GetTime()
	if now-timestamp > common.GetInt(ctx, signatureTTLKey) {
		panic(cst.TokenExpiredError)
	}
	if timestamp > now {
		panic(cst.TokenNotYetValidError)
	}

	usedKey := append([]byte{prefixUsedToken}, crypto.Sha256(token)...)
	if storage.Get(ctx, usedKey) != nil {
		panic(cst.TokenUsedError)
	}

	signer := storage.Get(ctx, signerKey).(interop.PublicKey)
	msg := authPayload(action, name, content, actor, timestamp)
	if !crypto.VerifyWithECDsa(msg, signer, token, crypto.Secp256r1) {
		panic(cst.TokenSignatureError)
	}

	storage.Put(ctx, usedKey, timestamp)
}

// authPayload builds the signed token payload: tag byte, sha256 of the
// name, the actor script hash and big-endian 8-byte content and timestamp.
// Every segment is fixed width so the concatenation cannot be reparsed
// ambiguously.
func authPayload(action int, name string, content int, actor interop.Hash160, timestamp int) []byte {
	msg := []byte{byte(action)}
	msg = append(msg, crypto.Sha256([]byte(name))...)
	msg = append(msg, actor...)
	msg = append(msg, uint64be(content)...)
	msg = append(msg, uint64be(timestamp)...)
	return msg
}

func uint64be(x int) []byte {
	buf := []byte{0, 0, 0, 0, 0, 0, 0, 0}
	for i := 7; i >= 0; i-- {
		buf[i] = byte(x % 256)
		x /= 256
	}
	return buf
}

// recordContribution adjusts the signed invested amount of the user within
// the epoch and appends the user to the epoch participant list on their
// first nonzero contribution. epochStart forces the append for the buyer
// opening the epoch whose very first share may cost zero.
func recordContribution(ctx storage.Context, id []byte, epoch int, user interop.Hash160, delta int, epochStart bool) {
	key := investedKey(id, epoch, user)
	amount := common.GetInt(ctx, key) + delta
	storage.Put(ctx, key, amount)
	if epochStart || amount != 0 {
		appendParticipant(ctx, id, epoch, user)
	}
}

func appendParticipant(ctx storage.Context, id []byte, epoch int, user interop.Hash160) {
	key := participantsKey(id, epoch)
	list := common.GetList(ctx, key)
	for i := 0; i < len(list); i++ {
		if util.Equals(list[i], user) {
			return
		}
	}
	list = append(list, user)
	common.SetSerialized(ctx, key, list)
}

func addShares(ctx storage.Context, id []byte, user interop.Hash160, delta int) {
	key := userShareKey(id, user)
	storage.Put(ctx, key, common.GetInt(ctx, key)+delta)
}

func addToPool(ctx storage.Context, key any, amount int) {
	storage.Put(ctx, key, common.GetInt(ctx, key)+amount)
}

// pay moves settlement tokens between accounts. The token contract aborts
// the whole call unless the transfer is witnessed by the sender (or the
// sender is the calling contract itself).
func pay(ctx storage.Context, from, to interop.Hash160, amount int, details []byte) {
	tokenH := storage.Get(ctx, tokenContractKey).(interop.Hash160)
	ok := contract.Call(tokenH, "transfer", contract.All, from, to, amount, details).(bool)
	if !ok {
		panic(cst.PaymentError)
	}
}

func protocolTaxRate(ctx storage.Context) int {
	return common.GetInt(ctx, protocolTaxRateKey)
}

func ownerTaxRate(ctx storage.Context) int {
	return common.GetInt(ctx, ownerTaxRateKey)
}

func binderID(name string) []byte {
	return crypto.Ripemd160([]byte(name))
}

func binderKey(id []byte) []byte {
	return append([]byte{prefixBinder}, id...)
}

func getBinder(ctx storage.Context, id []byte) (Binder, bool) {
	data := storage.Get(ctx, binderKey(id))
	if data == nil {
		return Binder{}, false
	}
	return std.Deserialize(data.([]byte)).(Binder), true
}

func putBinder(ctx storage.Context, id []byte, b Binder) {
	common.SetSerialized(ctx, binderKey(id), b)
}

func userShareKey(id []byte, user interop.Hash160) []byte {
	key := append([]byte{prefixShare}, id...)
	return append(key, user...)
}

func investedKey(id []byte, epoch int, user interop.Hash160) []byte {
	key := append([]byte{prefixInvested}, id...)
	key = append(key, user...)
	return append(key, convert.ToBytes(epoch)...)
}

func participantsKey(id []byte, epoch int) []byte {
	key := append([]byte{prefixParticipants}, id...)
	return append(key, convert.ToBytes(epoch)...)
}

func ownerPoolKey(id []byte) []byte {
	return append([]byte{prefixOwnerFee}, id...)
}

package tests

import (
	"crypto/sha256"
	"encoding/binary"
	"testing"

	cst "github.com/nspcc-dev/binder-contract/contracts/binder/binderconst"
	binderrpc "github.com/nspcc-dev/binder-contract/rpc/binder"
	"github.com/nspcc-dev/neo-go/pkg/core/interop/storage"
	"github.com/nspcc-dev/neo-go/pkg/crypto/keys"
	"github.com/nspcc-dev/neo-go/pkg/neotest"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/neo-go/pkg/vm/stackitem"
	"github.com/stretchr/testify/require"
)

const binderPath = "../contracts/binder"

type binderEnv struct {
	e        *neotest.Executor
	binder   *neotest.ContractInvoker
	token    *neotest.ContractInvoker
	signer   *keys.PrivateKey
	treasury neotest.Signer

	binderHash util.Uint160
	tokenHash  util.Uint160

	seq int64
}

func newBinderEnv(t *testing.T) *binderEnv {
	e := newExecutor(t)

	tokCtr := neotest.CompileFile(t, e.CommitteeHash, tokenPath, tokenPath+"/config.yml")
	e.DeployContract(t, tokCtr, nil)

	signer, err := keys.NewPrivateKey()
	require.NoError(t, err)
	treasury := e.NewAccount(t)

	ctr := neotest.CompileFile(t, e.CommitteeHash, binderPath, binderPath+"/config.yml")
	e.DeployContract(t, ctr, []interface{}{
		signer.PublicKey().Bytes(),
		tokCtr.Hash,
		treasury.ScriptHash(),
	})

	return &binderEnv{
		e:          e,
		binder:     e.CommitteeInvoker(ctr.Hash),
		token:      e.CommitteeInvoker(tokCtr.Hash),
		signer:     signer,
		treasury:   treasury,
		binderHash: ctr.Hash,
		tokenHash:  tokCtr.Hash,
	}
}

// authToken issues a backend authorization token for the given action the
// way the off-chain signer service does. Issue timestamps are made unique
// so that two tokens for the same action never collide.
func (env *binderEnv) authToken(t *testing.T, action byte, name string, content int64, actor util.Uint160) (int64, []byte) {
	env.seq++
	ts := int64(env.e.TopBlock(t).Timestamp) - env.seq
	return ts, env.signer.Sign(authPayload(action, name, content, actor, ts))
}

func authPayload(action byte, name string, content int64, actor util.Uint160, ts int64) []byte {
	nameHash := sha256.Sum256([]byte(name))
	msg := append([]byte{action}, nameHash[:]...)
	msg = append(msg, actor.BytesBE()...)
	msg = append(msg, be8(content)...)
	msg = append(msg, be8(ts)...)
	return msg
}

func be8(x int64) []byte {
	buf := make([]byte, 8)
	binary.BigEndian.PutUint64(buf, uint64(x))
	return buf
}

// skip moves chain time forward by ms milliseconds.
func (env *binderEnv) skip(t *testing.T, ms int64) {
	b := env.e.NewUnsignedBlock(t)
	b.Timestamp = env.e.TopBlock(t).Timestamp + uint64(ms)
	require.NoError(t, env.e.Chain.AddBlock(env.e.SignBlock(b)))
}

func (env *binderEnv) mint(t *testing.T, to util.Uint160, amount int64) {
	env.token.Invoke(t, stackitem.Null{}, "mint", to, amount, []byte("test deposit"))
}

func (env *binderEnv) register(t *testing.T, name string, acc neotest.Signer) {
	ts, sig := env.authToken(t, cst.ActionRegister, name, 0, acc.ScriptHash())
	env.binder.WithSigners(acc).Invoke(t, stackitem.Null{}, "register", name, acc.ScriptHash(), ts, sig)
}

func (env *binderEnv) buy(t *testing.T, name string, acc neotest.Signer, shareNum int64, expectChanged bool) {
	ts, sig := env.authToken(t, cst.ActionBuy, name, shareNum, acc.ScriptHash())
	env.binder.WithSigners(acc).Invoke(t, expectChanged, "buyShare",
		name, acc.ScriptHash(), shareNum, int64(0), ts, sig)
}

func (env *binderEnv) sell(t *testing.T, name string, acc neotest.Signer, shareNum int64, expectChanged bool) {
	ts, sig := env.authToken(t, cst.ActionSell, name, shareNum, acc.ScriptHash())
	env.binder.WithSigners(acc).Invoke(t, expectChanged, "sellShare",
		name, acc.ScriptHash(), shareNum, int64(0), ts, sig)
}

func (env *binderEnv) balanceOf(t *testing.T, acc util.Uint160) int64 {
	s, err := env.token.TestInvoke(t, "balanceOf", acc)
	require.NoError(t, err)
	return s.Pop().BigInt().Int64()
}

func (env *binderEnv) intCall(t *testing.T, method string, args ...interface{}) int64 {
	s, err := env.binder.TestInvoke(t, method, args...)
	require.NoError(t, err)
	return s.Pop().BigInt().Int64()
}

// costOf mirrors the contract's bonding curve: the sum of 10*i^2 over the
// share indexes in [start, end).
func costOf(start, end int64) int64 {
	var sum int64
	for i := start; i < end; i++ {
		sum += 10 * i * i
	}
	return sum
}

func TestBinderGeneric(t *testing.T) {
	env := newBinderEnv(t)

	require.EqualValues(t, 10*7*7, env.intCall(t, "unitPrice", int64(7)))
	require.EqualValues(t, 0, env.intCall(t, "costOf", int64(0), int64(1)))
	require.EqualValues(t, costOf(2, 5), env.intCall(t, "costOf", int64(2), int64(5)))
	require.EqualValues(t, 0, env.intCall(t, "costOf", int64(5), int64(5)))
	require.EqualValues(t, cst.DefaultProtocolTaxRate, env.intCall(t, "protocolTaxRate"))
	require.EqualValues(t, cst.DefaultOwnerTaxRate, env.intCall(t, "ownerTaxRate"))
	require.Positive(t, env.intCall(t, "version"))
}

func TestBinderRegister(t *testing.T) {
	env := newBinderEnv(t)
	acc := env.e.NewAccount(t)

	require.EqualValues(t, cst.NotRegistered, env.intCall(t, "state", "alice"))

	env.register(t, "alice", acc)
	require.EqualValues(t, cst.NoOwner, env.intCall(t, "state", "alice"))
	require.EqualValues(t, 0, env.intCall(t, "auctionEpoch", "alice"))
	env.binder.Invoke(t, stackitem.Null{}, "ownerOf", "alice")

	ts, sig := env.authToken(t, cst.ActionRegister, "alice", 0, acc.ScriptHash())
	env.binder.WithSigners(acc).InvokeFail(t, cst.AlreadyRegisteredError,
		"register", "alice", acc.ScriptHash(), ts, sig)

	// a token issued for somebody else is useless without their witness
	other := env.e.NewAccount(t)
	ts, sig = env.authToken(t, cst.ActionRegister, "bob", 0, other.ScriptHash())
	env.binder.WithSigners(acc).InvokeFail(t, "owner witness check failed",
		"register", "bob", other.ScriptHash(), ts, sig)
}

func TestBinderAuthToken(t *testing.T) {
	env := newBinderEnv(t)
	acc := env.e.NewAccount(t)
	cAcc := env.binder.WithSigners(acc)

	t.Run("expired", func(t *testing.T) {
		ts := int64(env.e.TopBlock(t).Timestamp) - cst.DefaultSignatureTTL - 1000
		sig := env.signer.Sign(authPayload(cst.ActionRegister, "alice", 0, acc.ScriptHash(), ts))
		cAcc.InvokeFail(t, cst.TokenExpiredError, "register", "alice", acc.ScriptHash(), ts, sig)
	})

	t.Run("not yet valid", func(t *testing.T) {
		ts := int64(env.e.TopBlock(t).Timestamp) + 60_000
		sig := env.signer.Sign(authPayload(cst.ActionRegister, "alice", 0, acc.ScriptHash(), ts))
		cAcc.InvokeFail(t, cst.TokenNotYetValidError, "register", "alice", acc.ScriptHash(), ts, sig)
	})

	t.Run("cross-action replay", func(t *testing.T) {
		ts, sig := env.authToken(t, cst.ActionBuy, "alice", 0, acc.ScriptHash())
		cAcc.InvokeFail(t, cst.TokenSignatureError, "register", "alice", acc.ScriptHash(), ts, sig)
	})

	t.Run("foreign signer", func(t *testing.T) {
		rogue, err := keys.NewPrivateKey()
		require.NoError(t, err)
		ts := int64(env.e.TopBlock(t).Timestamp)
		sig := rogue.Sign(authPayload(cst.ActionRegister, "alice", 0, acc.ScriptHash(), ts))
		cAcc.InvokeFail(t, cst.TokenSignatureError, "register", "alice", acc.ScriptHash(), ts, sig)
	})

	t.Run("single use", func(t *testing.T) {
		env.register(t, "alice", acc)
		env.mint(t, acc.ScriptHash(), 1_000_000)

		ts, sig := env.authToken(t, cst.ActionBuy, "alice", 2, acc.ScriptHash())
		cAcc.Invoke(t, true, "buyShare", "alice", acc.ScriptHash(), int64(2), int64(0), ts, sig)
		cAcc.InvokeFail(t, cst.TokenUsedError, "buyShare", "alice", acc.ScriptHash(), int64(2), int64(0), ts, sig)
	})

	t.Run("aborted call leaves token unconsumed", func(t *testing.T) {
		// The chain rolls the whole transaction back on failure, token
		// consumption included, so a token whose business check failed
		// stays usable. This pins the platform behavior explicitly.
		poor := env.e.NewAccount(t)
		cPoor := env.binder.WithSigners(poor)
		ts, sig := env.authToken(t, cst.ActionBuy, "alice", 5, poor.ScriptHash())
		cPoor.InvokeFail(t, cst.PaymentError, "buyShare", "alice", poor.ScriptHash(), int64(5), int64(0), ts, sig)

		env.mint(t, poor.ScriptHash(), 1_000_000)
		cPoor.Invoke(t, false, "buyShare", "alice", poor.ScriptHash(), int64(5), int64(0), ts, sig)
	})
}

func TestBinderBuyStartsAuction(t *testing.T) {
	env := newBinderEnv(t)
	acc := env.e.NewAccount(t)

	env.register(t, "alice", acc)
	env.mint(t, acc.ScriptHash(), 1_000_000)

	// The very first share costs 10*0^2 = 0.
	env.buy(t, "alice", acc, 1, true)
	require.EqualValues(t, cst.OnAuction, env.intCall(t, "state", "alice"))
	require.EqualValues(t, 1, env.intCall(t, "auctionEpoch", "alice"))
	require.EqualValues(t, 1, env.intCall(t, "totalShare", "alice"))
	require.EqualValues(t, 1, env.intCall(t, "shareOf", "alice", acc.ScriptHash()))
	require.EqualValues(t, 0, env.balanceOf(t, env.binderHash))
	require.EqualValues(t, 0, env.intCall(t, "investedAmount", "alice", int64(1), acc.ScriptHash()))

	// zero share purchases are rejected, not free
	ts, sig := env.authToken(t, cst.ActionBuy, "alice", 0, acc.ScriptHash())
	env.binder.WithSigners(acc).InvokeFail(t, cst.ZeroShareError,
		"buyShare", "alice", acc.ScriptHash(), int64(0), int64(0), ts, sig)

	env.binder.WithSigners(acc).InvokeFail(t, cst.NotFoundError,
		"buyShare", "unknown", acc.ScriptHash(), int64(1), int64(0), ts, sig)
}

func TestBinderAuctionResolution(t *testing.T) {
	env := newBinderEnv(t)
	first := env.e.NewAccount(t)
	second := env.e.NewAccount(t)

	env.register(t, "alice", first)
	env.mint(t, first.ScriptHash(), 1_000_000)
	env.mint(t, second.ScriptHash(), 1_000_000)

	env.buy(t, "alice", first, 1, true)
	env.buy(t, "alice", second, 5, false)

	require.EqualValues(t, costOf(1, 6), env.intCall(t, "investedAmount", "alice", int64(1), second.ScriptHash()))
	env.binder.Invoke(t, stackitem.NewArray([]stackitem.Item{
		stackitem.NewByteArray(first.ScriptHash().BytesBE()),
		stackitem.NewByteArray(second.ScriptHash().BytesBE()),
	}), "participants", "alice", int64(1))

	env.skip(t, cst.DefaultAuctionDuration+1000)
	require.EqualValues(t, cst.OnAuction, env.intCall(t, "state", "alice"))
	require.EqualValues(t, cst.HasOwner, env.intCall(t, "pendingState", "alice"))

	// the next trade resolves the overdue auction before applying itself
	env.buy(t, "alice", first, 1, true)
	require.EqualValues(t, cst.HasOwner, env.intCall(t, "state", "alice"))
	require.EqualValues(t, 1, env.intCall(t, "auctionEpoch", "alice"))
	env.binder.Invoke(t, second.ScriptHash().BytesBE(), "ownerOf", "alice")
	require.EqualValues(t, 7, env.intCall(t, "totalShare", "alice"))
}

func TestBinderAuctionTieBreak(t *testing.T) {
	env := newBinderEnv(t)
	first := env.e.NewAccount(t)
	second := env.e.NewAccount(t)

	env.register(t, "alice", first)
	env.mint(t, first.ScriptHash(), 1_000_000)
	env.mint(t, second.ScriptHash(), 1_000_000)

	// first opens the epoch with a zero-cost share, second buys one share
	// and sells it back within the auction, netting zero as well
	env.buy(t, "alice", first, 1, true)
	env.buy(t, "alice", second, 1, false)
	env.sell(t, "alice", second, 1, false)

	require.EqualValues(t, 0, env.intCall(t, "investedAmount", "alice", int64(1), first.ScriptHash()))
	require.EqualValues(t, 0, env.intCall(t, "investedAmount", "alice", int64(1), second.ScriptHash()))

	env.binder.Invoke(t, first.ScriptHash().BytesBE(), "auctionLeader", "alice", int64(1))

	env.skip(t, cst.DefaultAuctionDuration+1000)
	env.sell(t, "alice", first, 1, true)

	env.binder.Invoke(t, first.ScriptHash().BytesBE(), "ownerOf", "alice")
}

func TestBinderSellFeeSplit(t *testing.T) {
	env := newBinderEnv(t)
	first := env.e.NewAccount(t)
	second := env.e.NewAccount(t)

	env.register(t, "alice", first)
	env.mint(t, first.ScriptHash(), 1_000_000)
	env.mint(t, second.ScriptHash(), 1_000_000)

	env.buy(t, "alice", first, 1, true)
	env.buy(t, "alice", second, 5, false)

	balanceBefore := env.balanceOf(t, second.ScriptHash())
	reward := costOf(3, 6)
	protocolFee := reward * cst.DefaultProtocolTaxRate / cst.TaxRateDivisor
	ownerFee := reward * cst.DefaultOwnerTaxRate / cst.TaxRateDivisor
	payout := reward - protocolFee - ownerFee

	env.sell(t, "alice", second, 3, false)

	require.EqualValues(t, payout, env.balanceOf(t, second.ScriptHash())-balanceBefore)
	require.EqualValues(t, protocolFee, env.intCall(t, "protocolFeePool"))
	require.EqualValues(t, ownerFee, env.intCall(t, "ownerFeePool", "alice"))
	require.EqualValues(t, 3, env.intCall(t, "totalShare", "alice"))
	require.EqualValues(t, 2, env.intCall(t, "shareOf", "alice", second.ScriptHash()))
	// the gross reward leaves the bid, not the net payout
	require.EqualValues(t, costOf(1, 6)-reward,
		env.intCall(t, "investedAmount", "alice", int64(1), second.ScriptHash()))

	t.Run("oversell", func(t *testing.T) {
		ts, sig := env.authToken(t, cst.ActionSell, "alice", 10, second.ScriptHash())
		env.binder.WithSigners(second).InvokeFail(t, cst.NotEnoughSharesError,
			"sellShare", "alice", second.ScriptHash(), int64(10), int64(0), ts, sig)
	})
}

func TestBinderSlippage(t *testing.T) {
	env := newBinderEnv(t)
	acc := env.e.NewAccount(t)

	env.register(t, "alice", acc)
	env.mint(t, acc.ScriptHash(), 1_000_000)
	env.buy(t, "alice", acc, 3, true)

	cost := costOf(3, 5)
	ts, sig := env.authToken(t, cst.ActionBuy, "alice", 2, acc.ScriptHash())
	env.binder.WithSigners(acc).InvokeFail(t, cst.SlippageError,
		"buyShare", "alice", acc.ScriptHash(), int64(2), cost-1, ts, sig)
	env.binder.WithSigners(acc).Invoke(t, false,
		"buyShare", "alice", acc.ScriptHash(), int64(2), cost, ts, sig)

	reward := costOf(4, 5)
	fees := reward*cst.DefaultProtocolTaxRate/cst.TaxRateDivisor +
		reward*cst.DefaultOwnerTaxRate/cst.TaxRateDivisor
	ts, sig = env.authToken(t, cst.ActionSell, "alice", 1, acc.ScriptHash())
	env.binder.WithSigners(acc).InvokeFail(t, cst.SlippageError,
		"sellShare", "alice", acc.ScriptHash(), int64(1), reward-fees+1, ts, sig)
	env.binder.WithSigners(acc).Invoke(t, false,
		"sellShare", "alice", acc.ScriptHash(), int64(1), reward-fees, ts, sig)
}

func TestBinderRenewalCycle(t *testing.T) {
	env := newBinderEnv(t)
	acc := env.e.NewAccount(t)
	cAcc := env.binder.WithSigners(acc)

	env.register(t, "alice", acc)
	env.mint(t, acc.ScriptHash(), 10_000_000)

	env.buy(t, "alice", acc, 2, true)
	env.skip(t, cst.DefaultAuctionDuration+1000)
	env.buy(t, "alice", acc, 1, true) // resolves the auction
	require.EqualValues(t, cst.HasOwner, env.intCall(t, "state", "alice"))

	t.Run("renew requires renewal window", func(t *testing.T) {
		ts, sig := env.authToken(t, cst.ActionRenew, "alice", 100, acc.ScriptHash())
		cAcc.InvokeFail(t, cst.NotRenewableError, "renewOwnership",
			"alice", acc.ScriptHash(), int64(100), ts, sig)
	})

	env.skip(t, cst.DefaultHoldingPeriod+1000)
	require.EqualValues(t, cst.WaitingForRenewal, env.intCall(t, "pendingState", "alice"))

	poolBefore := env.intCall(t, "protocolFeePool")
	ts, sig := env.authToken(t, cst.ActionRenew, "alice", 100, acc.ScriptHash())
	cAcc.Invoke(t, stackitem.Null{}, "renewOwnership", "alice", acc.ScriptHash(), int64(100), ts, sig)
	require.EqualValues(t, cst.HasOwner, env.intCall(t, "state", "alice"))
	require.EqualValues(t, poolBefore+100, env.intCall(t, "protocolFeePool"))

	t.Run("renew by non-owner", func(t *testing.T) {
		env.skip(t, cst.DefaultHoldingPeriod+1000)
		other := env.e.NewAccount(t)
		env.mint(t, other.ScriptHash(), 1_000_000)
		ts, sig := env.authToken(t, cst.ActionRenew, "alice", 100, other.ScriptHash())
		env.binder.WithSigners(other).InvokeFail(t, cst.NotOwnerError, "renewOwnership",
			"alice", other.ScriptHash(), int64(100), ts, sig)
	})

	t.Run("missed window releases ownership", func(t *testing.T) {
		// materialize the renewal window first: one overdue transition
		// resolves per touch and each one restarts the countdown
		env.sell(t, "alice", acc, 1, true)
		require.EqualValues(t, cst.WaitingForRenewal, env.intCall(t, "state", "alice"))

		env.skip(t, cst.DefaultRenewalWindow+1000)
		ts, sig := env.authToken(t, cst.ActionRenew, "alice", 100, acc.ScriptHash())
		cAcc.InvokeFail(t, cst.NotRenewableError, "renewOwnership",
			"alice", acc.ScriptHash(), int64(100), ts, sig)

		// the failed renew rolled everything back, so the release lands
		// with the next trade only
		require.EqualValues(t, cst.WaitingForRenewal, env.intCall(t, "state", "alice"))
		env.sell(t, "alice", acc, 1, true)
		require.EqualValues(t, cst.NoOwner, env.intCall(t, "state", "alice"))
		env.binder.Invoke(t, stackitem.Null{}, "ownerOf", "alice")

		// the next purchase opens the second epoch
		env.buy(t, "alice", acc, 1, true)
		require.EqualValues(t, 2, env.intCall(t, "auctionEpoch", "alice"))
	})
}

func TestBinderCollectOwnerFee(t *testing.T) {
	env := newBinderEnv(t)
	first := env.e.NewAccount(t)
	second := env.e.NewAccount(t)

	env.register(t, "alice", first)
	env.mint(t, first.ScriptHash(), 1_000_000)
	env.mint(t, second.ScriptHash(), 1_000_000)

	env.buy(t, "alice", first, 5, true)
	env.skip(t, cst.DefaultAuctionDuration+1000)
	require.EqualValues(t, cst.OnAuction, env.intCall(t, "state", "alice"))

	env.buy(t, "alice", second, 3, true) // resolves, first owns the binder
	env.sell(t, "alice", second, 3, false)

	pool := env.intCall(t, "ownerFeePool", "alice")
	require.Positive(t, pool)

	env.binder.WithSigners(second).InvokeFail(t, cst.NotOwnerError,
		"collectOwnerFee", "alice", second.ScriptHash())

	balanceBefore := env.balanceOf(t, first.ScriptHash())
	env.binder.WithSigners(first).Invoke(t, stackitem.Null{}, "collectOwnerFee", "alice", first.ScriptHash())
	require.EqualValues(t, pool, env.balanceOf(t, first.ScriptHash())-balanceBefore)
	require.EqualValues(t, 0, env.intCall(t, "ownerFeePool", "alice"))

	// empty pool collection is a no-op, not an error
	env.binder.WithSigners(first).Invoke(t, stackitem.Null{}, "collectOwnerFee", "alice", first.ScriptHash())
}

func TestBinderCollectProtocolFee(t *testing.T) {
	env := newBinderEnv(t)
	acc := env.e.NewAccount(t)

	env.register(t, "alice", acc)
	env.mint(t, acc.ScriptHash(), 1_000_000)
	env.buy(t, "alice", acc, 5, true)
	env.sell(t, "alice", acc, 2, false)

	pool := env.intCall(t, "protocolFeePool")
	require.Positive(t, pool)

	env.binder.WithSigners(acc).InvokeFail(t, "not witnessed by committee", "collectProtocolFee")

	balanceBefore := env.balanceOf(t, env.treasury.ScriptHash())
	env.binder.Invoke(t, stackitem.Null{}, "collectProtocolFee")
	require.EqualValues(t, pool, env.balanceOf(t, env.treasury.ScriptHash())-balanceBefore)
	require.EqualValues(t, 0, env.intCall(t, "protocolFeePool"))

	env.binder.Invoke(t, stackitem.Null{}, "collectProtocolFee")
}

func TestBinderSetters(t *testing.T) {
	env := newBinderEnv(t)
	acc := env.e.NewAccount(t)
	cAcc := env.binder.WithSigners(acc)

	cAcc.InvokeFail(t, "not witnessed by committee", "setProtocolTaxRate", int64(100))
	cAcc.InvokeFail(t, "not witnessed by committee", "setOwnerTaxRate", int64(100))
	cAcc.InvokeFail(t, "not witnessed by committee", "setSignatureTTL", int64(1000))
	cAcc.InvokeFail(t, "not witnessed by committee", "setSigner", env.signer.PublicKey().Bytes())

	env.binder.Invoke(t, stackitem.Null{}, "setProtocolTaxRate", int64(700))
	require.EqualValues(t, 700, env.intCall(t, "protocolTaxRate"))
	env.binder.InvokeFail(t, "tax rate out of range", "setOwnerTaxRate", int64(9500))
	env.binder.Invoke(t, stackitem.Null{}, "setOwnerTaxRate", int64(300))
	require.EqualValues(t, 300, env.intCall(t, "ownerTaxRate"))

	env.binder.InvokeFail(t, "non-positive signature TTL", "setSignatureTTL", int64(0))
	env.binder.Invoke(t, stackitem.Null{}, "setSignatureTTL", int64(60_000))

	newSigner, err := keys.NewPrivateKey()
	require.NoError(t, err)
	env.binder.Invoke(t, stackitem.Null{}, "setSigner", newSigner.PublicKey().Bytes())

	// tokens from the old signer no longer verify
	ts := int64(env.e.TopBlock(t).Timestamp)
	sig := env.signer.Sign(authPayload(cst.ActionRegister, "alice", 0, acc.ScriptHash(), ts))
	cAcc.InvokeFail(t, cst.TokenSignatureError, "register", "alice", acc.ScriptHash(), ts, sig)

	env.signer = newSigner
	env.register(t, "alice", acc)
}

func TestBinderConservation(t *testing.T) {
	env := newBinderEnv(t)
	first := env.e.NewAccount(t)
	second := env.e.NewAccount(t)

	env.register(t, "alice", first)
	env.mint(t, first.ScriptHash(), 10_000_000)
	env.mint(t, second.ScriptHash(), 10_000_000)

	check := func() {
		total := env.intCall(t, "totalShare", "alice")
		sum := env.intCall(t, "shareOf", "alice", first.ScriptHash()) +
			env.intCall(t, "shareOf", "alice", second.ScriptHash())
		require.Equal(t, total, sum)

		// contract funds exactly cover the curve reserve plus the pools
		reserve := costOf(0, total)
		pools := env.intCall(t, "protocolFeePool") + env.intCall(t, "ownerFeePool", "alice")
		require.Equal(t, reserve+pools, env.balanceOf(t, env.binderHash))
	}

	env.buy(t, "alice", first, 3, true)
	check()
	env.buy(t, "alice", second, 7, false)
	check()
	env.sell(t, "alice", second, 4, false)
	check()
	env.skip(t, cst.DefaultAuctionDuration+1000)
	env.buy(t, "alice", first, 2, true)
	check()
	env.sell(t, "alice", first, 5, false)
	check()
}

func TestBinderTimeRemaining(t *testing.T) {
	env := newBinderEnv(t)
	acc := env.e.NewAccount(t)

	env.register(t, "alice", acc)
	require.EqualValues(t, 0, env.intCall(t, "timeRemaining", "alice"))

	env.mint(t, acc.ScriptHash(), 1_000_000)
	env.buy(t, "alice", acc, 1, true)

	left := env.intCall(t, "timeRemaining", "alice")
	require.Positive(t, left)
	require.LessOrEqual(t, left, int64(cst.DefaultAuctionDuration))

	env.skip(t, cst.DefaultAuctionDuration+1000)
	require.EqualValues(t, 0, env.intCall(t, "timeRemaining", "alice"))
}

func TestBinderIterator(t *testing.T) {
	env := newBinderEnv(t)
	acc := env.e.NewAccount(t)

	env.register(t, "alice", acc)
	env.register(t, "bob", acc)

	s, err := env.binder.TestInvoke(t, "binders")
	require.NoError(t, err)
	iter, ok := s.Pop().Value().(*storage.Iterator)
	require.True(t, ok)
	items := iteratorToArray(iter)
	require.Len(t, items, 2)

	names := make([]string, 0, len(items))
	for _, item := range items {
		var b binderrpc.BinderBinder
		require.NoError(t, b.FromStackItem(item))
		require.Equal(t, util.Uint160{}, b.Owner)
		require.Equal(t, int64(cst.NoOwner), b.State.Int64())
		names = append(names, b.Name)
	}
	require.ElementsMatch(t, []string{"alice", "bob"}, names)
}

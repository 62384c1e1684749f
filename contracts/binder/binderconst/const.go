package binderconst

// State is an enumeration for binder lifecycle states.
type State int

// Various binder states. A binder that was never registered has no stored
// record at all which maps to NotRegistered.
const (
	// NotRegistered stands for a binder that has not been registered yet.
	NotRegistered State = iota

	// NoOwner stands for a registered binder with no current controller,
	// open for a new auction cycle.
	NoOwner

	// OnAuction stands for a binder whose ownership is under open bidding.
	OnAuction

	// HasOwner stands for a binder held by the latest auction winner.
	HasOwner

	// WaitingForRenewal stands for a binder whose holding period ran out
	// and whose owner may still renew within the renewal window.
	WaitingForRenewal
)

// Authorization token actions. The signed payload binds one of these tags
// so a token issued for one action cannot replay another.
const (
	// ActionRegister authorizes binder registration.
	ActionRegister = 1
	// ActionBuy authorizes a share purchase.
	ActionBuy = 2
	// ActionSell authorizes a share sale.
	ActionSell = 3
	// ActionRenew authorizes an ownership renewal payment.
	ActionRenew = 4
)

const (
	// NotFoundError is returned on attempt to act on an unregistered binder.
	NotFoundError = "binder is not registered"

	// AlreadyRegisteredError is returned on attempt to register a binder twice.
	AlreadyRegisteredError = "binder is already registered"

	// TokenExpiredError is returned when an authorization token timestamp
	// is older than the configured validity window.
	TokenExpiredError = "authorization token expired"

	// TokenNotYetValidError is returned when an authorization token
	// timestamp is in the future.
	TokenNotYetValidError = "authorization token not yet valid"

	// TokenUsedError is returned on authorization token replay.
	TokenUsedError = "authorization token already used"

	// TokenSignatureError is returned when an authorization token is not
	// signed by the configured backend signer.
	TokenSignatureError = "invalid authorization signature"

	// ZeroShareError is returned on attempt to trade zero shares.
	ZeroShareError = "share number must be positive"

	// NotEnoughSharesError is returned on attempt to sell more shares than owned.
	NotEnoughSharesError = "not enough shares"

	// NotOwnerError is returned on owner-only actions invoked by anyone else.
	NotOwnerError = "caller does not own the binder"

	// NotRenewableError is returned on renewal outside the renewal window.
	NotRenewableError = "binder is not waiting for renewal"

	// SlippageError is returned when cost or payout runs outside the
	// caller-supplied bound.
	SlippageError = "slippage bound exceeded"

	// PaymentError is returned when the settlement token transfer fails.
	PaymentError = "settlement token transfer failed"
)

const (
	// MaxNameLength is the maximum length of a binder name.
	MaxNameLength = 255

	// TaxRateDivisor scales fee rates: rates are expressed in basis
	// points out of this value.
	TaxRateDivisor = 10_000

	// DefaultAuctionDuration is the default open bidding phase length in
	// milliseconds (2 days).
	DefaultAuctionDuration = 2 * 24 * 3600 * 1000

	// DefaultHoldingPeriod is the default ownership phase length in
	// milliseconds (90 days).
	DefaultHoldingPeriod = 90 * 24 * 3600 * 1000

	// DefaultRenewalWindow is the default renewal phase length in
	// milliseconds (2 days).
	DefaultRenewalWindow = 2 * 24 * 3600 * 1000

	// DefaultSignatureTTL is the default authorization token validity
	// window in milliseconds (10 min).
	DefaultSignatureTTL = 10 * 60 * 1000

	// DefaultProtocolTaxRate is the default protocol share of sell
	// rewards in basis points.
	DefaultProtocolTaxRate = 500

	// DefaultOwnerTaxRate is the default binder owner share of sell
	// rewards in basis points.
	DefaultOwnerTaxRate = 500
)

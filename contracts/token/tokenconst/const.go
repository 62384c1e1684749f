package tokenconst

const (
	// Symbol is the ticker symbol of the settlement token.
	Symbol = "BIND"

	// Decimals is the precision of the settlement token.
	Decimals = 12
)

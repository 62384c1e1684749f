package common

var (
	buyPrefix         = []byte{0x01}
	sellPrefix        = []byte{0x02}
	renewPrefix       = []byte{0x03}
	ownerFeePrefix    = []byte{0x10}
	protocolFeePrefix = []byte{0x11}
)

// BuyTransferDetails marks a settlement token transfer as a share purchase
// for the named binder.
func BuyTransferDetails(name []byte) []byte {
	return append(buyPrefix, name...)
}

// SellTransferDetails marks a settlement token transfer as a share sale
// payout for the named binder.
func SellTransferDetails(name []byte) []byte {
	return append(sellPrefix, name...)
}

// RenewTransferDetails marks a settlement token transfer as an ownership
// renewal payment for the named binder.
func RenewTransferDetails(name []byte) []byte {
	return append(renewPrefix, name...)
}

// OwnerFeeTransferDetails marks a settlement token transfer as an owner
// fee pool collection for the named binder.
func OwnerFeeTransferDetails(name []byte) []byte {
	return append(ownerFeePrefix, name...)
}

// ProtocolFeeTransferDetails marks a settlement token transfer as a
// protocol fee pool collection.
func ProtocolFeeTransferDetails() []byte {
	return protocolFeePrefix
}

/*
Package token implements the settlement token contract of the binder
protocol.

It is a NEP-17 compatible contract, so it can be tracked and controlled by
N3 compatible network monitors and wallet software. All binder payments
run through it: bonding curve purchase costs, sale payouts, renewal
payments and fee pool collections. The binder contract moves only its own
funds when paying out, which requires no extra witness because the sender
of such transfers is the calling contract itself.

Committee mints and burns supply. The contract has higher (12) decimal
precision than native GAS to keep fee truncation losses small.

# Contract notifications

Transfer notification. This is a NEP-17 standard notification.

	Transfer:
	  - name: from
	    type: Hash160
	  - name: to
	    type: Hash160
	  - name: amount
	    type: Integer

TransferX notification. This is an enhanced transfer notification with
payment details.

	TransferX:
	  - name: from
	    type: Hash160
	  - name: to
	    type: Hash160
	  - name: amount
	    type: Integer
	  - name: details
	    type: ByteArray
*/
package token

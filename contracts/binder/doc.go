/*
Package binder implements Binder contract, the core of the binder ownership
protocol.

A binder is a named resource whose ownership cycles through open bidding,
a fixed holding period and a renewal window, falling back to the unowned
state when not renewed. Participation is priced by a quadratic bonding
curve: the x-th share costs 10*x^2 settlement tokens, buying mints shares
against the curve and selling redeems them for the curve reward minus
protocol and owner fees. During an open auction net invested amounts rank
the bidders and the top investor becomes the owner once the bidding phase
runs out.

There is no background scheduler on chain: overdue phase transitions are
resolved lazily by the next mutating call touching the binder, before that
call's own trade is applied.

Every mutating user action must carry a single-use authorization token
issued off chain by the configured backend signer. The token signs the
action tag, the binder name, a content value (share number or payment
amount), the acting account and an issue timestamp, and is consumed as
soon as its signature validates.

All payments are made in the settlement token contract configured at
deployment, see the token package.

# Contract notifications

Register notification. This notification is produced when a new binder is
registered.

	Register:
	  - name: name
	    type: String
	  - name: registrant
	    type: Hash160

AuctionStarted notification. This notification is produced when a share
purchase opens a new auction epoch.

	AuctionStarted:
	  - name: name
	    type: String
	  - name: epoch
	    type: Integer

AuctionResolved notification. This notification is produced when an
overdue auction is resolved and the top investor takes ownership.

	AuctionResolved:
	  - name: name
	    type: String
	  - name: epoch
	    type: Integer
	  - name: winner
	    type: Hash160

OwnershipExpired notification. This notification is produced when the
holding period of an owned binder runs out and the renewal window opens.

	OwnershipExpired:
	  - name: name
	    type: String
	  - name: owner
	    type: Hash160

OwnershipRenewed notification. This notification is produced when the
owner renews an expiring binder within the renewal window.

	OwnershipRenewed:
	  - name: name
	    type: String
	  - name: owner
	    type: Hash160
	  - name: amount
	    type: Integer

OwnershipReleased notification. This notification is produced when the
renewal window runs out and the binder returns to the unowned state.

	OwnershipReleased:
	  - name: name
	    type: String
	  - name: owner
	    type: Hash160

BuyShare notification. This notification is produced on every share
purchase.

	BuyShare:
	  - name: name
	    type: String
	  - name: buyer
	    type: Hash160
	  - name: shareNum
	    type: Integer
	  - name: cost
	    type: Integer

SellShare notification. This notification is produced on every share sale.

	SellShare:
	  - name: name
	    type: String
	  - name: seller
	    type: Hash160
	  - name: shareNum
	    type: Integer
	  - name: payout
	    type: Integer

FeeCollected notification. This notification is produced when a fee pool
is drained. The name is empty for the protocol pool.

	FeeCollected:
	  - name: name
	    type: String
	  - name: collector
	    type: Hash160
	  - name: amount
	    type: Integer
*/
package binder

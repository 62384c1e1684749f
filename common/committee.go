package common

import (
	"github.com/nspcc-dev/neo-go/pkg/interop"
	"github.com/nspcc-dev/neo-go/pkg/interop/contract"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/neo"
	"github.com/nspcc-dev/neo-go/pkg/interop/runtime"
)

// ErrCommitteeWitnessFailed appears when the method must be called
// by the network committee but was not.
var ErrCommitteeWitnessFailed = "not witnessed by committee"

// CommitteeAddress returns multi signature address of the network committee
// (M = N/2+1 account).
func CommitteeAddress() []byte {
	committee := neo.GetCommittee()
	if committee == nil {
		panic("failed to get committee")
	}

	return Multiaddress(committee)
}

// CheckCommitteeWitness checks that the invocation is witnessed by the
// network committee. It panics with ErrCommitteeWitnessFailed message on
// fail.
func CheckCommitteeWitness() {
	addr := CommitteeAddress()
	if addr == nil || !runtime.CheckWitness(addr) {
		panic(ErrCommitteeWitnessFailed)
	}
}

// Multiaddress returns M = N/2+1 multi signature account address for
// the given list of public keys.
func Multiaddress(n []interop.PublicKey) []byte {
	threshold := len(n)/2 + 1

	keys := []interop.PublicKey{}
	for _, key := range n {
		keys = append(keys, key)
	}

	return contract.CreateMultisigAccount(threshold, keys)
}

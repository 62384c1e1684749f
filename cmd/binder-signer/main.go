// binder-signer issues single-use authorization tokens accepted by the
// Binder contract. It is the reference implementation of the backend signing
// service: the operator keeps the signer key off-chain and hands tokens to
// users whose requests passed its own checks.
//
// The token signs a fixed-width payload binding the action tag, the binder
// name, a content value (share number or renewal amount), the actor account
// and an issue timestamp checked against the contract TTL.
package main

import (
	"crypto/sha256"
	"encoding/binary"
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/mr-tron/base58"
	cst "github.com/nspcc-dev/binder-contract/contracts/binder/binderconst"
	"github.com/nspcc-dev/neo-go/pkg/crypto/keys"
	"github.com/nspcc-dev/neo-go/pkg/encoding/address"
	"github.com/nspcc-dev/neo-go/pkg/util"
)

var actions = map[string]byte{
	"register": cst.ActionRegister,
	"buy":      cst.ActionBuy,
	"sell":     cst.ActionSell,
	"renew":    cst.ActionRenew,
}

func main() {
	wif := flag.String("wif", "", "WIF of the backend signer key")
	action := flag.String("action", "", "Authorized action: register, buy, sell or renew")
	name := flag.String("name", "", "Binder name")
	content := flag.Int64("content", 0, "Action content: share number for buy/sell, amount for renew")
	actorStr := flag.String("actor", "", "Actor account: Neo address or LE script hash")

	flag.Parse()

	switch {
	case *wif == "":
		log.Fatal("missing signer WIF")
	case *name == "":
		log.Fatal("missing binder name")
	case *actorStr == "":
		log.Fatal("missing actor account")
	}

	tag, ok := actions[*action]
	if !ok {
		log.Fatalf("unknown action %q", *action)
	}

	priv, err := keys.NewPrivateKeyFromWIF(*wif)
	if err != nil {
		log.Fatal(fmt.Errorf("decode signer WIF: %w", err))
	}

	actor, err := parseActor(*actorStr)
	if err != nil {
		log.Fatal(fmt.Errorf("parse actor account: %w", err))
	}

	ts := time.Now().UnixMilli()
	sig := priv.Sign(tokenPayload(tag, *name, *content, actor, ts))

	fmt.Printf("timestamp: %d\n", ts)
	fmt.Printf("token: %s\n", base58.Encode(sig))
}

func parseActor(s string) (util.Uint160, error) {
	h, err := address.StringToUint160(s)
	if err == nil {
		return h, nil
	}
	return util.Uint160DecodeStringLE(s)
}

// tokenPayload mirrors the payload layout verified by the contract: tag byte,
// sha256 of the name, actor script hash and big-endian 8-byte content and
// timestamp.
func tokenPayload(tag byte, name string, content int64, actor util.Uint160, ts int64) []byte {
	nameHash := sha256.Sum256([]byte(name))
	msg := append([]byte{tag}, nameHash[:]...)
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

// binder-stat queries the Binder contract on a live network and prints the
// current state of a binder in a human-readable form.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"math/big"
	"time"

	"github.com/nspcc-dev/binder-contract/rpc/binder"
	"github.com/nspcc-dev/neo-go/pkg/rpcclient"
	"github.com/nspcc-dev/neo-go/pkg/rpcclient/invoker"
	"github.com/nspcc-dev/neo-go/pkg/util"
)

var stateNames = map[int64]string{
	0: "NotRegistered",
	1: "NoOwner",
	2: "OnAuction",
	3: "HasOwner",
	4: "WaitingForRenewal",
}

func main() {
	neoRPCEndpoint := flag.String("rpc", "", "Network address of the Neo RPC server")
	contractStr := flag.String("contract", "", "LE script hash of the Binder contract")
	name := flag.String("name", "", "Binder name to query, all binders are listed when omitted")

	flag.Parse()

	switch {
	case *neoRPCEndpoint == "":
		log.Fatal("missing Neo RPC endpoint")
	case *contractStr == "":
		log.Fatal("missing Binder contract hash")
	}

	contractHash, err := util.Uint160DecodeStringLE(*contractStr)
	if err != nil {
		log.Fatal(fmt.Errorf("decode contract hash: %w", err))
	}

	c, err := rpcclient.New(context.Background(), *neoRPCEndpoint, rpcclient.Options{
		DialTimeout:    15 * time.Second,
		RequestTimeout: 15 * time.Second,
	})
	if err != nil {
		log.Fatal(fmt.Errorf("RPC client dial: %w", err))
	}

	defer c.Close()

	reader := binder.NewReader(invoker.New(c, nil), contractHash)

	if *name == "" {
		err = listBinders(reader)
	} else {
		err = printBinder(reader, *name)
	}
	if err != nil {
		log.Fatal(err)
	}
}

func listBinders(reader *binder.ContractReader) error {
	const pageSize = 100

	items, err := reader.BindersExpanded(pageSize)
	if err != nil {
		return fmt.Errorf("list binders: %w", err)
	}

	for _, item := range items {
		var b binder.BinderBinder

		err := b.FromStackItem(item)
		if err != nil {
			return fmt.Errorf("decode binder: %w", err)
		}

		fmt.Printf("%s\t%s\tepoch %d\tshares %d\n",
			b.Name, stateName(b.State), b.AuctionEpoch, b.TotalShare)
	}

	return nil
}

func printBinder(reader *binder.ContractReader, name string) error {
	state, err := reader.State(name)
	if err != nil {
		return fmt.Errorf("get state: %w", err)
	}

	fmt.Printf("name: %s\n", name)
	fmt.Printf("state: %s\n", stateName(state))

	if state.Sign() == 0 {
		return nil
	}

	pending, err := reader.PendingState(name)
	if err != nil {
		return fmt.Errorf("get pending state: %w", err)
	}
	if pending.Cmp(state) != 0 {
		fmt.Printf("pending state: %s\n", stateName(pending))
	}

	owner, err := reader.OwnerOf(name)
	if err == nil && !owner.Equals(util.Uint160{}) {
		fmt.Printf("owner: %s\n", owner.StringLE())
	}

	epoch, err := reader.AuctionEpoch(name)
	if err != nil {
		return fmt.Errorf("get auction epoch: %w", err)
	}
	fmt.Printf("auction epoch: %d\n", epoch)

	total, err := reader.TotalShare(name)
	if err != nil {
		return fmt.Errorf("get total share: %w", err)
	}
	fmt.Printf("total share: %d\n", total)

	left, err := reader.TimeRemaining(name)
	if err != nil {
		return fmt.Errorf("get time remaining: %w", err)
	}
	if left.Sign() > 0 {
		fmt.Printf("time remaining: %s\n", time.Duration(left.Int64())*time.Millisecond)
	}

	pool, err := reader.OwnerFeePool(name)
	if err != nil {
		return fmt.Errorf("get owner fee pool: %w", err)
	}
	fmt.Printf("owner fee pool: %d\n", pool)

	return nil
}

func stateName(state *big.Int) string {
	if name, ok := stateNames[state.Int64()]; ok {
		return name
	}
	return fmt.Sprintf("unknown (%s)", state)
}

// Command spongebench drives a batch of sponges over random field
// elements and reports throughput, mirroring the shape of a load-testing
// helper: fixed workload, fixed concurrency, one summary line.
package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"
	"time"

	safe "github.com/dusk-network/safe-go"
	"github.com/dusk-network/safe-go/batch"
	"github.com/dusk-network/safe-go/internal/config"
	"github.com/dusk-network/safe-go/internal/field"
)

var (
	count      = flag.Int("count", 10000, "number of independent hashes to run")
	messageLen = flag.Int("message-len", 8, "elements absorbed per hash")
	workers    = flag.Int("workers", 8, "number of concurrent workers")
)

func main() {
	flag.Parse()

	if *count <= 0 || *messageLen <= 0 || *workers <= 0 {
		fmt.Fprintln(os.Stderr, "spongebench: count, message-len, and workers must all be positive")
		os.Exit(1)
	}

	cfg := config.Load()
	caps := field.NewPoseidon(cfg.Width)
	pattern := safe.NewPattern().Absorb(uint32(*messageLen)).Squeeze(4)
	domainSep := safe.DomainSeparatorBytes([]byte(cfg.DomainLabel))

	rng := rand.New(rand.NewSource(1))
	inputs := make([][]field.Elem, *count)
	for i := range inputs {
		msg := make([]field.Elem, *messageLen)
		for j := range msg {
			msg[j] = field.FromUint64(rng.Uint64())
		}
		inputs[i] = msg
	}

	start := time.Now()
	results, err := batch.HashAll(caps, cfg.Width, pattern, domainSep, inputs, *workers)
	elapsed := time.Since(start)
	if err != nil {
		fmt.Fprintln(os.Stderr, "spongebench:", err)
		os.Exit(1)
	}

	fmt.Printf("hashed %d messages of %d elements each across %d workers in %s\n",
		len(results), *messageLen, *workers, elapsed)
	fmt.Printf("%.0f hashes/sec\n", float64(len(results))/elapsed.Seconds())
}

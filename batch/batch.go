// Package batch runs many independent sponge computations concurrently.
// Each worker owns its own Sponge instance for the lifetime of one input;
// nothing is shared across goroutines except the read-only capability
// bundle and io pattern, matching the sponge core's single-owner,
// single-threaded contract.
package batch

import (
	"sync"

	safe "github.com/dusk-network/safe-go"
)

// HashAll runs one Start/Absorb/Squeeze/Finish cycle per entry of inputs,
// using up to workers goroutines concurrently, and returns the squeeze
// output for each input in the same order. Every input is processed; if
// any fail, the error of the lowest-indexed failing input is returned
// together with the results, in which failed inputs have nil entries.
//
// pattern must be exactly [Absorb(n), Squeeze(m)]: one absorb call sized
// to the whole input, one squeeze call producing the whole digest. Batch
// hashing has no use for a caller that wants to interleave calls per
// input; use the Sponge API directly for that.
func HashAll[T any, C safe.Permutation[T]](caps C, width int, pattern safe.Pattern, domainSep safe.DomainSeparator, inputs [][]T, workers int) ([][]T, error) {
	if workers < 1 {
		workers = 1
	}
	if len(pattern) != 2 || pattern[0].Kind != safe.KindAbsorb || pattern[1].Kind != safe.KindSqueeze {
		return nil, &safe.PatternValidationError{Reason: "batch.HashAll requires a pattern of exactly [Absorb(n), Squeeze(m)]"}
	}

	results := make([][]T, len(inputs))
	errs := make([]error, len(inputs))

	jobs := make(chan int)
	var wg sync.WaitGroup
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func() {
			defer wg.Done()
			for i := range jobs {
				out, err := hashOne(caps, width, pattern, domainSep, inputs[i])
				results[i] = out
				errs[i] = err
			}
		}()
	}

	for i := range inputs {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return results, err
		}
	}
	return results, nil
}

func hashOne[T any, C safe.Permutation[T]](caps C, width int, pattern safe.Pattern, domainSep safe.DomainSeparator, input []T) ([]T, error) {
	sponge, err := safe.Start[T](caps, width, pattern, domainSep)
	if err != nil {
		return nil, err
	}
	if err := sponge.Absorb(int(pattern[0].N), input); err != nil {
		return nil, err
	}
	if err := sponge.Squeeze(int(pattern[1].N)); err != nil {
		return nil, err
	}
	return sponge.Finish()
}

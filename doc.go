// Package safe implements a generic Sponge API for Field Elements (SAFE):
// a permutation-based symmetric primitive whose state is an array of
// user-supplied element values rather than bytes.
//
// SAFE builds hashing, message authentication, and authenticated
// encryption on top of an abstract permutation supplied by the caller.
// The package never chooses or implements that permutation, the tag
// hash, or the field's addition operation — those are injected through
// the [Permutation] capability interface. This mirrors sponge
// constructions such as Poseidon over BLS12-381 scalars, but the state
// machine here works over any value type.
//
// Basic usage:
//
//	pattern := safe.NewPattern().Absorb(4).Squeeze(2)
//	sponge, err := safe.Start[MyElem](caps, 7, pattern, safe.DomainSeparatorBytes([]byte("v1")))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if err := sponge.Absorb(4, input); err != nil {
//	    log.Fatal(err)
//	}
//	if err := sponge.Squeeze(2); err != nil {
//	    log.Fatal(err)
//	}
//	output, err := sponge.Finish()
//
// # Security notes
//
// A [Sponge] is single-owner and single-threaded: no method may be
// invoked concurrently on the same instance. On any error the instance
// is erased and rejects all further operations. State is never included
// in error messages.
package safe

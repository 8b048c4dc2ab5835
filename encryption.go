package safe

// encryptionDomainSeparator is the fixed domain separator §4.4 mandates
// for both Encrypt and Decrypt, so the two sides always derive the same
// initial tag from the same io pattern.
var encryptionDomainSeparator = DomainSeparatorBytes([]byte("SAFE/authenticated-encryption/v1"))

// encryptionPattern builds the io pattern §4.4 uses for both directions:
// absorb the key and nonce, squeeze a keystream the length of the
// message, absorb the message (binding it into the running state before
// the tag is derived), then squeeze the one-element authentication tag.
//
// The keystream must be squeezed before the message is absorbed: it is
// derived purely from the key/nonce state, which is exactly what lets
// Decrypt recompute it without already knowing the plaintext. Absorbing
// the message before squeezing it, as a naive reading of the operation
// list might suggest, would make decryption impossible: the keystream
// would depend on the very plaintext decrypt is trying to recover. See
// DESIGN.md for this Open Question's resolution against the reference
// implementation.
func encryptionPattern(secretLen, m int) Pattern {
	return NewPattern().
		Absorb(uint32(secretLen)).
		Squeeze(uint32(m)).
		Absorb(uint32(m)).
		Squeeze(1)
}

// Encrypt authenticates and encrypts message under key and nonce,
// returning a cipher of length len(message)+1: the encrypted elements
// followed by a one-element authentication tag.
//
// message must be non-empty; the Call model this package builds on has
// no representation for a zero-length absorb or squeeze.
func Encrypt[T any, C Encryption[T]](caps C, width int, key T, nonce []T, message []T) ([]T, error) {
	m := len(message)
	if m == 0 {
		return nil, &LengthError{Want: 1, Got: 0, Sentinel: ErrInvalidLength}
	}

	secretLen := 1 + len(nonce)
	sponge, err := Start[T, C](caps, width, encryptionPattern(secretLen, m), encryptionDomainSeparator)
	if err != nil {
		return nil, err
	}

	secret := make([]T, 0, secretLen)
	secret = append(secret, key)
	secret = append(secret, nonce...)
	if err := sponge.Absorb(secretLen, secret); err != nil {
		return nil, err
	}

	if err := sponge.Squeeze(m); err != nil {
		return nil, err
	}
	keystream := append([]T(nil), sponge.output[len(sponge.output)-m:]...)

	if err := sponge.Absorb(m, message); err != nil {
		return nil, err
	}
	if err := sponge.Squeeze(1); err != nil {
		return nil, err
	}
	tag := sponge.output[len(sponge.output)-1]

	if _, err := sponge.Finish(); err != nil {
		return nil, err
	}

	cipher := make([]T, m+1)
	for i := 0; i < m; i++ {
		cipher[i] = caps.Add(message[i], keystream[i])
	}
	cipher[m] = tag

	if len(cipher) != m+1 {
		return nil, &LengthError{Want: m + 1, Got: len(cipher), Sentinel: ErrInvalidLength}
	}

	return cipher, nil
}

// Decrypt reverses Encrypt: it recovers the plaintext from cipher under
// key and nonce, and returns ErrVerificationFailed if the trailing
// authentication tag does not match. cipher must have length at least 2
// (a non-empty message plus its tag).
func Decrypt[T any, C Encryption[T]](caps C, width int, key T, nonce []T, cipher []T) ([]T, error) {
	if len(cipher) < 2 {
		return nil, &LengthError{Want: 2, Got: len(cipher), Sentinel: ErrInvalidLength}
	}
	m := len(cipher) - 1

	secretLen := 1 + len(nonce)
	sponge, err := Start[T, C](caps, width, encryptionPattern(secretLen, m), encryptionDomainSeparator)
	if err != nil {
		return nil, err
	}

	secret := make([]T, 0, secretLen)
	secret = append(secret, key)
	secret = append(secret, nonce...)
	if err := sponge.Absorb(secretLen, secret); err != nil {
		return nil, err
	}

	if err := sponge.Squeeze(m); err != nil {
		return nil, err
	}
	keystream := sponge.output[len(sponge.output)-m:]

	plaintext := make([]T, m)
	for i := 0; i < m; i++ {
		plaintext[i] = caps.Subtract(cipher[i], keystream[i])
	}

	if err := sponge.Absorb(m, plaintext); err != nil {
		return nil, err
	}
	if err := sponge.Squeeze(1); err != nil {
		return nil, err
	}
	computedTag := sponge.output[len(sponge.output)-1]

	// Compare before Finish erases the sponge, and without branching on
	// the comparison result until after both terminal actions have run.
	valid := caps.IsEqual(computedTag, cipher[m])

	if _, err := sponge.Finish(); err != nil {
		return nil, err
	}

	if !valid {
		var zero T
		for i := range plaintext {
			plaintext[i] = zero
		}
		return nil, ErrVerificationFailed
	}

	return plaintext, nil
}

package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/codec_mock.go -package=mock

// Codec encrypts and decrypts a single value under a fixed symmetric key.
// Implementations must be stateless and safe for concurrent use.
//
// The encrypted data store is the only component allowed to apply a Codec to
// persisted fields; everything else treats those fields as opaque data.
type Codec interface {
	// Encrypt serializes value to its canonical JSON form and returns the
	// encrypted blob. A fresh random nonce is used on every call, so two
	// encryptions of the same value never produce the same blob.
	Encrypt(value any) (string, error)

	// Decrypt is the inverse of Encrypt. It returns the original value as
	// decoded JSON (string, float64, bool, map[string]any, []any or nil).
	// Fails if the blob is malformed, the authentication tag does not
	// verify, or the plaintext is not valid JSON.
	Decrypt(blob string) (any, error)
}

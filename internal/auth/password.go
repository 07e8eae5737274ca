package auth

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/argon2"
)

// argon2id parameters baked into every new hash. Verification reads the
// parameters back out of the stored string, so these can change without
// invalidating existing hashes.
const (
	argonVersion     = 19 // argon2.Version (0x13)
	argonMemoryKiB   = 64 * 1024
	argonIterations  = 3
	argonParallelism = 2
	argonSaltLen     = 16
	argonKeyLen      = 32
)

// Verification refuses attacker-controlled parameters beyond these bounds so
// a corrupt stored hash cannot demand pathological amounts of work.
const (
	maxVerifyMemoryKiB  = 2 * argonMemoryKiB
	maxVerifyIterations = 2 * argonIterations
)

// HashPassword derives an argon2id hash of password and returns it in PHC
// string form: $argon2id$v=19$m=..,t=..,p=..$<salt>$<digest>. The string is
// self-describing; verification needs no out-of-band parameters. A failure
// here is a server-side fault, never a client-input one.
func HashPassword(password string) (string, error) {
	salt := make([]byte, argonSaltLen)
	if _, err := rand.Read(salt); err != nil {
		return "", fmt.Errorf("generating salt: %w", err)
	}

	key := argon2.IDKey([]byte(password), salt, argonIterations, argonMemoryKiB, argonParallelism, argonKeyLen)
	if len(key) == 0 {
		return "", errors.New("hashing produced empty digest")
	}

	b64 := base64.RawStdEncoding
	return fmt.Sprintf("$argon2id$v=%d$m=%d,t=%d,p=%d$%s$%s",
		argonVersion, argonMemoryKiB, argonIterations, argonParallelism,
		b64.EncodeToString(salt), b64.EncodeToString(key)), nil
}

// CheckPasswordHash reports whether password matches the stored hash. It
// returns false for a wrong password, an empty password, or a structurally
// invalid hash string, and never returns an error: a caller must not be able
// to tell corrupt stored data apart from a wrong guess.
func CheckPasswordHash(password, hash string) bool {
	memoryKiB, iterations, parallelism, salt, expected, ok := decodeArgonHash(hash)
	if !ok {
		return false
	}

	key := argon2.IDKey([]byte(password), salt, iterations, memoryKiB, parallelism, uint32(len(expected)))
	return subtle.ConstantTimeCompare(key, expected) == 1
}

func decodeArgonHash(encoded string) (memoryKiB, iterations uint32, parallelism uint8, salt, key []byte, ok bool) {
	parts := strings.Split(encoded, "$")
	if len(parts) != 6 || parts[0] != "" || parts[1] != "argon2id" {
		return 0, 0, 0, nil, nil, false
	}
	if parts[2] != fmt.Sprintf("v=%d", argonVersion) {
		return 0, 0, 0, nil, nil, false
	}

	var mem, it, par uint32
	if _, err := fmt.Sscanf(parts[3], "m=%d,t=%d,p=%d", &mem, &it, &par); err != nil {
		return 0, 0, 0, nil, nil, false
	}
	if mem == 0 || it == 0 || par == 0 || par > 255 {
		return 0, 0, 0, nil, nil, false
	}
	if mem > maxVerifyMemoryKiB || it > maxVerifyIterations {
		return 0, 0, 0, nil, nil, false
	}

	b64 := base64.RawStdEncoding
	salt, err := b64.DecodeString(parts[4])
	if err != nil || len(salt) < 8 || len(salt) > 64 {
		return 0, 0, 0, nil, nil, false
	}
	key, err = b64.DecodeString(parts[5])
	if err != nil || len(key) < 16 || len(key) > 128 {
		return 0, 0, 0, nil, nil, false
	}

	return mem, it, uint8(par), salt, key, true
}

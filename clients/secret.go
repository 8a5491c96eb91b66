package clients

import (
	"github.com/pkg/errors"
	"golang.org/x/crypto/bcrypt"
)

// HashSecret hashes a client secret for storage.
func HashSecret(secret string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(secret), bcrypt.DefaultCost)
	if err != nil {
		return "", errors.Wrap(err, "[HashSecret] bcrypt.GenerateFromPassword")
	}
	return string(hash), nil
}

// CheckSecretHash verifies a presented client secret against the stored hash.
func CheckSecretHash(secret, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(secret)) == nil
}

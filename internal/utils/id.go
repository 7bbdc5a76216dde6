// Package utils provides small helpers shared by the s9s packages.
//
// GenerateID creates the correlation IDs the controller client attaches to
// every RPC request. The same ID appears in the client debug log and in the
// X-Request-Id header, so a request can be found in the controller log.
package utils

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
)

// IDLength is the number of hex characters GenerateID returns.
const IDLength = 12

// GenerateID returns a random 12 character hex identifier such as
// "a1b2c3d4e5f6".
func GenerateID() (string, error) {
	bytes := make([]byte, IDLength/2)
	if _, err := rand.Read(bytes); err != nil {
		return "", fmt.Errorf("failed to generate random bytes: %w", err)
	}
	return hex.EncodeToString(bytes), nil
}

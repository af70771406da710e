package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
)

// hashKey builds "keyType:digest", where digest covers the JSON encoding of
// parts. Option structs hash by field name, so adding an option field
// changes every key.
func hashKey(keyType string, parts ...any) string {
	data, err := json.Marshal(parts)
	if err != nil {
		// Parts are strings and plain option structs.
		panic("cache: unencodable key part: " + err.Error())
	}
	return keyType + ":" + Hash(data)
}

// Hash returns the hex SHA-256 digest of data.
func Hash(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}

package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
)

// Key derives the deterministic fingerprint for a cached result from the
// canonical document identity, the operation name and the extraction
// parameters. Parameter serialization relies on encoding/json writing map
// keys in sorted order, so semantically identical parameter sets hash
// identically regardless of how the map was built; any parameter change
// produces a different key.
//
// Parameter values must be JSON-serializable.
func Key(document, operation string, params map[string]any) string {
	h := sha256.New()
	h.Write([]byte(document))
	h.Write([]byte{0})
	h.Write([]byte(operation))
	h.Write([]byte{0})
	if len(params) > 0 {
		encoded, _ := json.Marshal(params)
		h.Write(encoded)
	}
	return hex.EncodeToString(h.Sum(nil))
}

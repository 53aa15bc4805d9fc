// Package version centralizes the versioning of the assistant's logical
// components for cache invalidation.
//
// Cache keys for conversational replies embed these version strings, so
// bumping a version after a deploy automatically orphans every cached entry
// produced by the old logic or the old catalog, forcing fresh completions.
package version

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
)

// ComponentVersions holds the version strings for the parts of the assistant
// whose changes should invalidate cached replies. Increment manually before
// deploying a change to the corresponding component.
var ComponentVersions = struct {
	// Catalog should be bumped whenever products.json is edited.
	Catalog string

	// PromptLogic should be bumped whenever the conversational fallback's
	// generation parameters or fixed messages change.
	PromptLogic string
}{
	Catalog:     "v1.0",
	PromptLogic: "v1.0",
}

// GenerateVersionedCacheKey creates a consistent, version-aware cache key for
// a user query.
//
// Example output: "chatcache:a1b2c3d4...:cv1.0_pv1.0"
func GenerateVersionedCacheKey(prefix, query string) string {
	hasher := sha256.New()
	hasher.Write([]byte(query))
	queryHash := hex.EncodeToString(hasher.Sum(nil))

	versionString := fmt.Sprintf("c%s_p%s",
		ComponentVersions.Catalog,
		ComponentVersions.PromptLogic,
	)

	return fmt.Sprintf("%s:%s:%s", prefix, queryHash, versionString)
}

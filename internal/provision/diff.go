package provision

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/aymanbagabas/go-udiff"
)

// DefaultDiffMaxLines is the maximum number of diff lines shown per file in
// the interactive confirmation.
const DefaultDiffMaxLines = 40

// Preview returns a unified diff of what overwriting path with newContent
// would change, truncated to maxLines. An absent target or identical content
// yields an empty diff. The preview is display-only: the overwrite itself is
// always unconditional.
func Preview(path string, newContent string, maxLines int) (diff string, truncated bool) {
	if maxLines <= 0 {
		maxLines = DefaultDiffMaxLines
	}
	existing, err := os.ReadFile(path)
	if err != nil {
		return "", false
	}
	if string(existing) == newContent {
		return "", false
	}
	base := filepath.Base(path)
	unified := udiff.Unified("a/"+base, "b/"+base, string(existing), newContent)
	lines := strings.Split(strings.TrimRight(unified, "\n"), "\n")
	if len(lines) > maxLines {
		return strings.Join(lines[:maxLines], "\n") + "\n", true
	}
	return unified, false
}

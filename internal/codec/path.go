package codec

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// UniquePath returns path unchanged if nothing exists there; otherwise it
// probes "base (1)ext", "base (2)ext", ... and returns the first free
// candidate. The existence check and the later create are not atomic, but
// distinct input filenames in one run always map to distinct output
// basenames, so sibling workers never race here; only files left over from
// earlier runs trigger the probe.
func UniquePath(path string) string {
	ext := filepath.Ext(path)
	base := strings.TrimSuffix(path, ext)

	candidate := path
	for n := 1; exists(candidate); n++ {
		candidate = fmt.Sprintf("%s (%d)%s", base, n, ext)
	}
	return candidate
}

func exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

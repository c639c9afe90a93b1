package hash

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// DigestFile hashes the raw bytes of a file.
func DigestFile(path string) (digest string, size int64, err error) {
	f, err := os.Open(path)
	if err != nil {
		return "", 0, fmt.Errorf("open file %s: %w", path, err)
	}
	defer f.Close()

	h := sha256.New()
	n, err := io.Copy(h, f)
	if err != nil {
		return "", 0, fmt.Errorf("hash file %s: %w", path, err)
	}
	return prefix + hex.EncodeToString(h.Sum(nil)), n, nil
}

// DirEntry is one file of a digested directory.
type DirEntry struct {
	Path   string // slash-separated, relative to the root
	Digest string
	Size   int64
}

// DigestDir fingerprints every regular file under root. The digest covers
// relative paths, file digests and sizes in path order, so renaming a file
// changes it.
func DigestDir(root string) (string, []DirEntry, error) {
	var entries []DirEntry
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if !d.Type().IsRegular() {
			return nil
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		digest, size, err := DigestFile(path)
		if err != nil {
			return err
		}
		entries = append(entries, DirEntry{Path: filepath.ToSlash(rel), Digest: digest, Size: size})
		return nil
	})
	if err != nil {
		return "", nil, fmt.Errorf("walk %s: %w", root, err)
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Path < entries[j].Path })

	var manifest strings.Builder
	for _, e := range entries {
		fmt.Fprintf(&manifest, "%s\x00%s\x00%d\n", e.Path, e.Digest, e.Size)
	}
	sum := sha256.Sum256([]byte(manifest.String()))
	return prefix + hex.EncodeToString(sum[:]), entries, nil
}

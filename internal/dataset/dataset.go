// Package dataset turns assembler parameter records into the inputs of a
// spades.py run: a YAML dataset file listing the staged read files and the
// command-line options derived from the record.
package dataset

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/kbaseapps/assembly-params/internal/logger"
	"github.com/kbaseapps/assembly-params/pkg/types/spades"
)

// FileName is the dataset file spades.py reads via --dataset.
const FileName = "input_data_set.yaml"

// Files are the local paths a read library was staged to. Rev is empty for
// interleaved or unpaired reads.
type Files struct {
	Fwd string `yaml:"fwd"`
	Rev string `yaml:"rev,omitempty"`
}

// ResolvedLibrary is a read library with defaults applied and files attached.
type ResolvedLibrary struct {
	Ref         string
	LibType     string
	Orientation string
	FwdFile     string
	RevFile     string
}

// Library is one entry of the YAML dataset.
type Library struct {
	Type        string   `yaml:"type"`
	Orientation string   `yaml:"orientation,omitempty"`
	RightReads  []string `yaml:"right reads,omitempty"`
	LeftReads   []string `yaml:"left reads,omitempty"`
	SingleReads []string `yaml:"single reads,omitempty"`
}

func isPaired(libType string) bool {
	switch libType {
	case spades.LibPairedEnd, spades.LibMatePairs, spades.LibHQMatePairs:
		return true
	}
	return false
}

func defaultOrientation(libType string) string {
	switch libType {
	case spades.LibPairedEnd:
		return spades.OrientationFR
	case spades.LibMatePairs, spades.LibHQMatePairs:
		return spades.OrientationRF
	}
	return ""
}

// Resolve applies library defaults to a HybridSPAdes request. A missing
// lib_type means paired-end; paired-end reads default to fr orientation and
// mate pairs to rf. Unpaired and long reads carry no orientation.
func Resolve(p *spades.HybridSPAdesParams, files map[string]Files) ([]ResolvedLibrary, error) {
	var out []ResolvedLibrary
	for _, lib := range p.GetReadsLibraries() {
		libType := lib.GetLibType()
		if libType == "" {
			libType = spades.LibPairedEnd
		}
		orientation := ""
		if isPaired(libType) {
			orientation = lib.GetOrientation()
			if orientation == "" {
				orientation = defaultOrientation(libType)
			}
		}
		r, err := attach(lib.GetLibRef(), libType, orientation, files)
		if err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	for _, lib := range p.GetLongReadsLibraries() {
		r, err := attach(lib.GetLongReadsRef(), lib.GetLongReadsType(), "", files)
		if err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, nil
}

// ResolveSPAdes treats every read library of a SPAdes request as paired-end
// fr reads.
func ResolveSPAdes(p *spades.SPAdesParams, files map[string]Files) ([]ResolvedLibrary, error) {
	var out []ResolvedLibrary
	for _, ref := range p.GetReadLibraries() {
		r, err := attach(ref, spades.LibPairedEnd, spades.OrientationFR, files)
		if err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, nil
}

func attach(ref, libType, orientation string, files map[string]Files) (ResolvedLibrary, error) {
	if ref == "" {
		return ResolvedLibrary{}, fmt.Errorf("%s library has no reference", libType)
	}
	if libType == "" {
		return ResolvedLibrary{}, fmt.Errorf("library %s has no type", ref)
	}
	f, ok := files[ref]
	if !ok || f.Fwd == "" {
		return ResolvedLibrary{}, fmt.Errorf("no staged reads for library %s", ref)
	}
	return ResolvedLibrary{Ref: ref, LibType: libType, Orientation: orientation, FwdFile: f.Fwd, RevFile: f.Rev}, nil
}

// Build groups libraries of the same type and orientation into dataset
// entries, in the order each group is first seen. Forward files of paired
// libraries go to "right reads" and reverse files to "left reads"; all
// other libraries list their file under "single reads".
func Build(libs []ResolvedLibrary) []Library {
	type groupKey struct{ libType, orientation string }
	index := make(map[groupKey]int)
	var out []Library
	for _, lib := range libs {
		key := groupKey{lib.LibType, lib.Orientation}
		i, ok := index[key]
		if !ok {
			i = len(out)
			index[key] = i
			out = append(out, Library{Type: lib.LibType, Orientation: lib.Orientation})
		}
		entry := &out[i]
		if isPaired(lib.LibType) {
			entry.RightReads = append(entry.RightReads, lib.FwdFile)
			if lib.RevFile != "" {
				entry.LeftReads = append(entry.LeftReads, lib.RevFile)
			}
			continue
		}
		entry.SingleReads = append(entry.SingleReads, lib.FwdFile)
	}
	return out
}

// Write renders the dataset for libs into dir and returns the file path.
func Write(dir string, libs []ResolvedLibrary) (string, error) {
	if len(libs) == 0 {
		return "", fmt.Errorf("no read libraries to write")
	}
	raw, err := yaml.Marshal(Build(libs))
	if err != nil {
		return "", fmt.Errorf("encode dataset: %w", err)
	}
	path := filepath.Join(dir, FileName)
	if err := os.WriteFile(path, raw, 0o644); err != nil {
		return "", fmt.Errorf("write dataset %s: %w", path, err)
	}
	logger.Logger.Debugw("wrote spades dataset", "path", path, "libraries", len(libs))
	return path, nil
}

// Read parses a dataset file written by Write.
func Read(path string) ([]Library, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read dataset %s: %w", path, err)
	}
	var libs []Library
	if err := yaml.Unmarshal(raw, &libs); err != nil {
		return nil, fmt.Errorf("parse dataset %s: %w", path, err)
	}
	return libs, nil
}

// NewProject creates a fresh run directory under base.
func NewProject(base string) (string, error) {
	dir := filepath.Join(base, "spades_"+uuid.NewString())
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create project dir: %w", err)
	}
	return dir, nil
}

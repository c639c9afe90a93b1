// Package estimate predicts the compute a metaSPAdes run needs from the
// size of its read libraries.
package estimate

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/kbaseapps/assembly-params/internal/logger"
	"github.com/kbaseapps/assembly-params/pkg/types/spades"
)

const (
	DefaultCPUs     = 16
	DefaultMemoryMB = 4096
	DefaultWalltime = 300 // seconds

	kmerLen = 31

	// Memory model fitted on metaSPAdes runs: GB = kmers*memPerKmer + memBase,
	// padded by memHeadroom.
	memPerKmer   = 2.962e-08
	memBase      = 16.3
	memHeadroom  = 1.1
	kmersPerSec  = 100000
	metaReadCnt  = "read_count"
	metaReadMean = "read_length_mean"
)

var (
	ErrNoParams     = errors.New("params is required to estimate metaSPAdes requirements")
	ErrNoWorkspace  = errors.New("workspace_name is required to estimate metaSPAdes requirements")
	ErrNoLibraries  = errors.New("at least one read library is required to estimate metaSPAdes requirements")
	errInfoMismatch = errors.New("object info count does not match requested libraries")
)

// ObjectInfo is the part of a workspace object description the estimator
// reads. Metadata values are strings, as the workspace stores them.
type ObjectInfo struct {
	Ref      string
	Name     string
	Type     string
	Metadata map[string]string
}

// ObjectInfoSource looks up object descriptions with metadata, in request
// order.
type ObjectInfoSource interface {
	GetObjectInfo(ctx context.Context, refs []string) ([]ObjectInfo, error)
}

// Defaults returns the fixed requirements used when no estimate is wanted.
func Defaults() *spades.MetaSPAdesEstimate {
	return (&spades.MetaSPAdesEstimate{}).
		WithCPUs(DefaultCPUs).
		WithMemory(DefaultMemoryMB).
		WithWalltime(DefaultWalltime)
}

// Estimate computes the requirements for req. The defaults are returned
// when use_defaults is set or use_heuristic is explicitly turned off;
// otherwise read counts and mean read lengths are fetched from src.
func Estimate(ctx context.Context, req *spades.MetaSPAdesEstimatorParams, src ObjectInfoSource) (*spades.MetaSPAdesEstimate, error) {
	p := req.GetParams()
	if p == nil {
		return nil, ErrNoParams
	}
	ws := p.GetWorkspaceName()
	if ws == "" {
		return nil, ErrNoWorkspace
	}
	if len(p.ReadLibraries) == 0 {
		return nil, ErrNoLibraries
	}
	if req.UsesDefaults() || !req.UsesHeuristic() {
		return Defaults(), nil
	}

	refs := LibraryRefs(ws, p.ReadLibraries)
	infos, err := src.GetObjectInfo(ctx, refs)
	if err != nil {
		return nil, fmt.Errorf("fetch read library info: %w", err)
	}
	if len(infos) != len(refs) {
		return nil, fmt.Errorf("%w: got %d, want %d", errInfoMismatch, len(infos), len(refs))
	}

	kmers := TotalKmers(infos)
	est := FromKmers(kmers)
	logger.With("workspace", ws).Debugw("estimated metaSPAdes requirements",
		"libraries", len(refs), "kmers", kmers, "memory_mb", est.GetMemory(), "walltime_s", est.GetWalltime())
	return est, nil
}

// LibraryRefs qualifies bare object names with the workspace name.
func LibraryRefs(workspace string, libs []string) []string {
	refs := make([]string, len(libs))
	for i, lib := range libs {
		if strings.Contains(lib, "/") {
			refs[i] = lib
		} else {
			refs[i] = workspace + "/" + lib
		}
	}
	return refs
}

// TotalKmers sums an upper bound on the k-mers in each library:
// reads * (mean length - k + 1). Libraries without read metadata are
// charged the average of those that have it.
func TotalKmers(infos []ObjectInfo) float64 {
	var (
		sum     float64
		counted int
		missing int
	)
	for _, info := range infos {
		kmers, ok := libraryKmers(info.Metadata)
		if !ok {
			missing++
			continue
		}
		sum += kmers
		counted++
	}
	if counted == 0 {
		return 0
	}
	return sum + sum/float64(counted)*float64(missing)
}

func libraryKmers(meta map[string]string) (float64, bool) {
	countStr, ok1 := meta[metaReadCnt]
	meanStr, ok2 := meta[metaReadMean]
	if !ok1 || !ok2 {
		return 0, false
	}
	reads, err := strconv.ParseInt(countStr, 10, 64)
	if err != nil {
		logger.Logger.Warnw("unparseable read_count", "value", countStr)
		return 0, false
	}
	mean, err := strconv.ParseFloat(meanStr, 64)
	if err != nil {
		logger.Logger.Warnw("unparseable read_length_mean", "value", meanStr)
		return 0, false
	}
	return float64(reads) * math.Max(0, mean-kmerLen+1), true
}

// FromKmers converts a k-mer count into requirements, never going below the
// defaults.
func FromKmers(kmers float64) *spades.MetaSPAdesEstimate {
	memory := int64((kmers*memPerKmer + memBase) * memHeadroom * 1024)
	walltime := int64(kmers / kmersPerSec)
	return (&spades.MetaSPAdesEstimate{}).
		WithCPUs(DefaultCPUs).
		WithMemory(max(memory, DefaultMemoryMB)).
		WithWalltime(max(walltime, DefaultWalltime))
}

// Package types maps qualified record names, as they appear in the
// service interface descriptions, to the Go records that carry them.
package types

import (
	"encoding/json"
	"fmt"
	"sort"

	"github.com/kbaseapps/assembly-params/pkg/types/gaprice"
	"github.com/kbaseapps/assembly-params/pkg/types/spades"
	"github.com/kbaseapps/assembly-params/pkg/types/unicycler"
)

// Record is implemented by every parameter record pointer.
type Record interface {
	json.Marshaler
	json.Unmarshaler
	fmt.Stringer
}

const (
	SPAdesParams              = "kb_SPAdes.SPAdesParams"
	ReadsParams               = "kb_SPAdes.ReadsParams"
	LongReadsParams           = "kb_SPAdes.LongReadsParams"
	HybridSPAdesParams        = "kb_SPAdes.HybridSPAdesParams"
	MetaSPAdesEstimate        = "kb_SPAdes.MetaSPAdesEstimate"
	MetaSPAdesEstimatorParams = "kb_SPAdes.MetaSPAdesEstimatorParams"
	AssemblyOutput            = "kb_SPAdes.AssemblyOutput"
	LegacySPAdesParams        = "gaprice_SPAdes.SPAdesParams"
	UnicyclerParams           = "kb_unicycler.UnicyclerParams"
)

var registry = map[string]func() Record{
	SPAdesParams:              func() Record { return &spades.SPAdesParams{} },
	ReadsParams:               func() Record { return &spades.ReadsParams{} },
	LongReadsParams:           func() Record { return &spades.LongReadsParams{} },
	HybridSPAdesParams:        func() Record { return &spades.HybridSPAdesParams{} },
	MetaSPAdesEstimate:        func() Record { return &spades.MetaSPAdesEstimate{} },
	MetaSPAdesEstimatorParams: func() Record { return &spades.MetaSPAdesEstimatorParams{} },
	AssemblyOutput:            func() Record { return &spades.AssemblyOutput{} },
	LegacySPAdesParams:        func() Record { return &gaprice.SPAdesParams{} },
	UnicyclerParams:           func() Record { return &unicycler.UnicyclerParams{} },
}

// New returns an empty record for a qualified type name.
func New(name string) (Record, error) {
	ctor, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("unknown record type %q", name)
	}
	return ctor(), nil
}

// Decode returns a record of the named type populated from data.
func Decode(name string, data []byte) (Record, error) {
	rec, err := New(name)
	if err != nil {
		return nil, err
	}
	if err := rec.UnmarshalJSON(data); err != nil {
		return nil, err
	}
	return rec, nil
}

// Names lists every registered type name, sorted.
func Names() []string {
	out := make([]string, 0, len(registry))
	for name := range registry {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

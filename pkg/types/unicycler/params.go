// Package unicycler holds the kb_unicycler parameter record.
package unicycler

import "github.com/kbaseapps/assembly-params/pkg/jsonrecord"

// Bridging modes.
const (
	BridgingConservative = "conservative"
	BridgingNormal       = "normal"
	BridgingBold         = "bold"
)

var BridgingModes = []string{BridgingConservative, BridgingNormal, BridgingBold}

// UnicyclerParams is the input of run_unicycler. Unicycler needs at least
// one short paired-end library; unpaired short reads and a single long-read
// library are optional. Reads of the same kind are combined into one file
// before assembly.
type UnicyclerParams struct {
	WorkspaceName          *string  `json:"workspace_name,omitempty"`
	OutputContigsetName    *string  `json:"output_contigset_name,omitempty"`
	ShortPairedLibraries   []string `json:"short_paired_libraries,omitempty"`
	ShortUnpairedLibraries []string `json:"short_unpaired_libraries,omitempty"`
	LongReadsLibrary       *string  `json:"long_reads_library,omitempty"`
	MinContigLength        *int64   `json:"min_contig_length,omitempty"`
	NumLinearSeqs          *int64   `json:"num_linear_seqs,omitempty"`
	BridgingMode           *string  `json:"bridging_mode,omitempty"`

	Extras jsonrecord.Extras `json:"-"`
}

func (p *UnicyclerParams) GetWorkspaceName() string {
	if p == nil {
		return ""
	}
	return jsonrecord.Value(p.WorkspaceName)
}

func (p *UnicyclerParams) GetOutputContigsetName() string {
	if p == nil {
		return ""
	}
	return jsonrecord.Value(p.OutputContigsetName)
}

func (p *UnicyclerParams) GetShortPairedLibraries() []string {
	if p == nil {
		return nil
	}
	return p.ShortPairedLibraries
}

func (p *UnicyclerParams) GetShortUnpairedLibraries() []string {
	if p == nil {
		return nil
	}
	return p.ShortUnpairedLibraries
}

func (p *UnicyclerParams) GetLongReadsLibrary() string {
	if p == nil {
		return ""
	}
	return jsonrecord.Value(p.LongReadsLibrary)
}

func (p *UnicyclerParams) GetMinContigLength() int64 {
	if p == nil {
		return 0
	}
	return jsonrecord.Value(p.MinContigLength)
}

func (p *UnicyclerParams) GetNumLinearSeqs() int64 {
	if p == nil {
		return 0
	}
	return jsonrecord.Value(p.NumLinearSeqs)
}

func (p *UnicyclerParams) GetBridgingMode() string {
	if p == nil {
		return ""
	}
	return jsonrecord.Value(p.BridgingMode)
}

func (p *UnicyclerParams) WithWorkspaceName(v string) *UnicyclerParams {
	p.WorkspaceName = &v
	return p
}

func (p *UnicyclerParams) WithOutputContigsetName(v string) *UnicyclerParams {
	p.OutputContigsetName = &v
	return p
}

func (p *UnicyclerParams) WithShortPairedLibraries(v ...string) *UnicyclerParams {
	p.ShortPairedLibraries = v
	return p
}

func (p *UnicyclerParams) WithShortUnpairedLibraries(v ...string) *UnicyclerParams {
	p.ShortUnpairedLibraries = v
	return p
}

func (p *UnicyclerParams) WithLongReadsLibrary(v string) *UnicyclerParams {
	p.LongReadsLibrary = &v
	return p
}

func (p *UnicyclerParams) WithMinContigLength(v int64) *UnicyclerParams {
	p.MinContigLength = &v
	return p
}

func (p *UnicyclerParams) WithNumLinearSeqs(v int64) *UnicyclerParams {
	p.NumLinearSeqs = &v
	return p
}

func (p *UnicyclerParams) WithBridgingMode(v string) *UnicyclerParams {
	p.BridgingMode = &v
	return p
}

func (p UnicyclerParams) MarshalJSON() ([]byte, error) { return jsonrecord.Marshal(&p) }

func (p *UnicyclerParams) UnmarshalJSON(data []byte) error { return jsonrecord.Unmarshal(data, p) }

func (p UnicyclerParams) String() string { return jsonrecord.Describe(&p) }

package spades

import "github.com/kbaseapps/assembly-params/pkg/jsonrecord"

// SPAdesParams is the input of run_SPAdes and run_metaSPAdes.
//
//	workspace_name        workspace to read input from and write output to
//	output_contigset_name name of the output assembly
//	read_libraries        Illumina paired-end library references
//	dna_source            "single_cell" for MDA-amplified DNA, else standard
//	min_contig_length     drop contigs shorter than this; 0 means no filter
//	kmer_sizes            odd, < 128, ascending; absent lets SPAdes choose
//	skip_error_correction assembly only, no read error correction
type SPAdesParams struct {
	WorkspaceName       *string  `json:"workspace_name,omitempty"`
	OutputContigsetName *string  `json:"output_contigset_name,omitempty"`
	ReadLibraries       []string `json:"read_libraries,omitempty"`
	DNASource           *string  `json:"dna_source,omitempty"`
	MinContigLength     *int64   `json:"min_contig_length,omitempty"`
	KmerSizes           []int64  `json:"kmer_sizes,omitempty"`
	SkipErrorCorrection *int64   `json:"skip_error_correction,omitempty"`

	Extras jsonrecord.Extras `json:"-"`
}

func (p *SPAdesParams) GetWorkspaceName() string {
	if p == nil {
		return ""
	}
	return jsonrecord.Value(p.WorkspaceName)
}

func (p *SPAdesParams) GetOutputContigsetName() string {
	if p == nil {
		return ""
	}
	return jsonrecord.Value(p.OutputContigsetName)
}

func (p *SPAdesParams) GetReadLibraries() []string {
	if p == nil {
		return nil
	}
	return p.ReadLibraries
}

func (p *SPAdesParams) GetDNASource() string {
	if p == nil {
		return ""
	}
	return jsonrecord.Value(p.DNASource)
}

func (p *SPAdesParams) GetMinContigLength() int64 {
	if p == nil {
		return 0
	}
	return jsonrecord.Value(p.MinContigLength)
}

func (p *SPAdesParams) GetKmerSizes() []int64 {
	if p == nil {
		return nil
	}
	return p.KmerSizes
}

func (p *SPAdesParams) GetSkipErrorCorrection() int64 {
	if p == nil {
		return 0
	}
	return jsonrecord.Value(p.SkipErrorCorrection)
}

// SkipsErrorCorrection reports whether skip_error_correction is set to a
// nonzero value.
func (p *SPAdesParams) SkipsErrorCorrection() bool {
	return p != nil && jsonrecord.Truthy(p.SkipErrorCorrection)
}

// IsSingleCell reports whether the DNA was amplified from a single cell.
func (p *SPAdesParams) IsSingleCell() bool {
	return p.GetDNASource() == DNASingleCell
}

func (p *SPAdesParams) WithWorkspaceName(v string) *SPAdesParams {
	p.WorkspaceName = &v
	return p
}

func (p *SPAdesParams) WithOutputContigsetName(v string) *SPAdesParams {
	p.OutputContigsetName = &v
	return p
}

func (p *SPAdesParams) WithReadLibraries(v ...string) *SPAdesParams {
	p.ReadLibraries = v
	return p
}

func (p *SPAdesParams) WithDNASource(v string) *SPAdesParams {
	p.DNASource = &v
	return p
}

func (p *SPAdesParams) WithMinContigLength(v int64) *SPAdesParams {
	p.MinContigLength = &v
	return p
}

func (p *SPAdesParams) WithKmerSizes(v ...int64) *SPAdesParams {
	p.KmerSizes = v
	return p
}

func (p *SPAdesParams) WithSkipErrorCorrection(v bool) *SPAdesParams {
	p.SkipErrorCorrection = jsonrecord.Flag(v)
	return p
}

func (p SPAdesParams) MarshalJSON() ([]byte, error) { return jsonrecord.Marshal(&p) }

func (p *SPAdesParams) UnmarshalJSON(data []byte) error { return jsonrecord.Unmarshal(data, p) }

func (p SPAdesParams) String() string { return jsonrecord.Describe(&p) }

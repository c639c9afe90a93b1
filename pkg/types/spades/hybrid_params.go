package spades

import "github.com/kbaseapps/assembly-params/pkg/jsonrecord"

// HybridSPAdesParams is the input of run_HybridSPAdes. At least one short
// read library (Illumina or IonTorrent paired-end, high-quality mate-pairs,
// or unpaired reads) is expected; long reads and extra contigs are optional.
type HybridSPAdesParams struct {
	WorkspaceName       *string           `json:"workspace_name,omitempty"`
	OutputContigsetName *string           `json:"output_contigset_name,omitempty"`
	ReadsLibraries      []ReadsParams     `json:"reads_libraries,omitempty"`
	LongReadsLibraries  []LongReadsParams `json:"long_reads_libraries,omitempty"`
	DNASource           *string           `json:"dna_source,omitempty"`
	PipelineOptions     []string          `json:"pipeline_options,omitempty"`
	KmerSizes           []int64           `json:"kmer_sizes,omitempty"`
	MinContigLength     *int64            `json:"min_contig_length,omitempty"`
	CreateReport        *int64            `json:"create_report,omitempty"`

	Extras jsonrecord.Extras `json:"-"`
}

func (p *HybridSPAdesParams) GetWorkspaceName() string {
	if p == nil {
		return ""
	}
	return jsonrecord.Value(p.WorkspaceName)
}

func (p *HybridSPAdesParams) GetOutputContigsetName() string {
	if p == nil {
		return ""
	}
	return jsonrecord.Value(p.OutputContigsetName)
}

func (p *HybridSPAdesParams) GetReadsLibraries() []ReadsParams {
	if p == nil {
		return nil
	}
	return p.ReadsLibraries
}

func (p *HybridSPAdesParams) GetLongReadsLibraries() []LongReadsParams {
	if p == nil {
		return nil
	}
	return p.LongReadsLibraries
}

func (p *HybridSPAdesParams) GetDNASource() string {
	if p == nil {
		return ""
	}
	return jsonrecord.Value(p.DNASource)
}

func (p *HybridSPAdesParams) GetPipelineOptions() []string {
	if p == nil {
		return nil
	}
	return p.PipelineOptions
}

func (p *HybridSPAdesParams) GetKmerSizes() []int64 {
	if p == nil {
		return nil
	}
	return p.KmerSizes
}

func (p *HybridSPAdesParams) GetMinContigLength() int64 {
	if p == nil {
		return 0
	}
	return jsonrecord.Value(p.MinContigLength)
}

func (p *HybridSPAdesParams) GetCreateReport() int64 {
	if p == nil {
		return 0
	}
	return jsonrecord.Value(p.CreateReport)
}

// CreatesReport reports whether create_report is nonzero.
func (p *HybridSPAdesParams) CreatesReport() bool {
	return p != nil && jsonrecord.Truthy(p.CreateReport)
}

func (p *HybridSPAdesParams) WithWorkspaceName(v string) *HybridSPAdesParams {
	p.WorkspaceName = &v
	return p
}

func (p *HybridSPAdesParams) WithOutputContigsetName(v string) *HybridSPAdesParams {
	p.OutputContigsetName = &v
	return p
}

func (p *HybridSPAdesParams) WithReadsLibraries(v ...ReadsParams) *HybridSPAdesParams {
	p.ReadsLibraries = v
	return p
}

func (p *HybridSPAdesParams) WithLongReadsLibraries(v ...LongReadsParams) *HybridSPAdesParams {
	p.LongReadsLibraries = v
	return p
}

func (p *HybridSPAdesParams) WithDNASource(v string) *HybridSPAdesParams {
	p.DNASource = &v
	return p
}

func (p *HybridSPAdesParams) WithPipelineOptions(v ...string) *HybridSPAdesParams {
	p.PipelineOptions = v
	return p
}

func (p *HybridSPAdesParams) WithKmerSizes(v ...int64) *HybridSPAdesParams {
	p.KmerSizes = v
	return p
}

func (p *HybridSPAdesParams) WithMinContigLength(v int64) *HybridSPAdesParams {
	p.MinContigLength = &v
	return p
}

func (p *HybridSPAdesParams) WithCreateReport(v bool) *HybridSPAdesParams {
	p.CreateReport = jsonrecord.Flag(v)
	return p
}

func (p HybridSPAdesParams) MarshalJSON() ([]byte, error) { return jsonrecord.Marshal(&p) }

func (p *HybridSPAdesParams) UnmarshalJSON(data []byte) error {
	return jsonrecord.Unmarshal(data, p)
}

func (p HybridSPAdesParams) String() string { return jsonrecord.Describe(&p) }

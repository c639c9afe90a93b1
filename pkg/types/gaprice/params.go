// Package gaprice holds the legacy gaprice_SPAdes parameter record. It
// predates kb_SPAdes and names its fields differently, so it is a separate
// type rather than a variant of spades.SPAdesParams.
package gaprice

import "github.com/kbaseapps/assembly-params/pkg/jsonrecord"

// SPAdesParams is the input of the legacy run_SPAdes method.
//
//	workspace   workspace holding the libraries and receiving the output
//	libraries   paired-end library object names
//	single_cell 1 if the reads come from MDA-amplified single-cell DNA
type SPAdesParams struct {
	Workspace  *string  `json:"workspace,omitempty"`
	Libraries  []string `json:"libraries,omitempty"`
	SingleCell *int64   `json:"single_cell,omitempty"`

	Extras jsonrecord.Extras `json:"-"`
}

func (p *SPAdesParams) GetWorkspace() string {
	if p == nil {
		return ""
	}
	return jsonrecord.Value(p.Workspace)
}

func (p *SPAdesParams) GetLibraries() []string {
	if p == nil {
		return nil
	}
	return p.Libraries
}

func (p *SPAdesParams) GetSingleCell() int64 {
	if p == nil {
		return 0
	}
	return jsonrecord.Value(p.SingleCell)
}

// IsSingleCell reports whether single_cell is nonzero.
func (p *SPAdesParams) IsSingleCell() bool {
	return p != nil && jsonrecord.Truthy(p.SingleCell)
}

func (p *SPAdesParams) WithWorkspace(v string) *SPAdesParams {
	p.Workspace = &v
	return p
}

func (p *SPAdesParams) WithLibraries(v ...string) *SPAdesParams {
	p.Libraries = v
	return p
}

func (p *SPAdesParams) WithSingleCell(v bool) *SPAdesParams {
	p.SingleCell = jsonrecord.Flag(v)
	return p
}

func (p SPAdesParams) MarshalJSON() ([]byte, error) { return jsonrecord.Marshal(&p) }

func (p *SPAdesParams) UnmarshalJSON(data []byte) error { return jsonrecord.Unmarshal(data, p) }

func (p SPAdesParams) String() string { return jsonrecord.Describe(&p) }

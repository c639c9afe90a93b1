package spades

import "github.com/kbaseapps/assembly-params/pkg/jsonrecord"

// MetaSPAdesEstimate is the compute a metaSPAdes run is expected to need.
type MetaSPAdesEstimate struct {
	CPUs     *int64 `json:"cpus,omitempty"`
	Memory   *int64 `json:"memory,omitempty"`   // MB
	Walltime *int64 `json:"walltime,omitempty"` // seconds

	Extras jsonrecord.Extras `json:"-"`
}

func (e *MetaSPAdesEstimate) GetCPUs() int64 {
	if e == nil {
		return 0
	}
	return jsonrecord.Value(e.CPUs)
}

func (e *MetaSPAdesEstimate) GetMemory() int64 {
	if e == nil {
		return 0
	}
	return jsonrecord.Value(e.Memory)
}

func (e *MetaSPAdesEstimate) GetWalltime() int64 {
	if e == nil {
		return 0
	}
	return jsonrecord.Value(e.Walltime)
}

func (e *MetaSPAdesEstimate) WithCPUs(v int64) *MetaSPAdesEstimate {
	e.CPUs = &v
	return e
}

func (e *MetaSPAdesEstimate) WithMemory(v int64) *MetaSPAdesEstimate {
	e.Memory = &v
	return e
}

func (e *MetaSPAdesEstimate) WithWalltime(v int64) *MetaSPAdesEstimate {
	e.Walltime = &v
	return e
}

func (e MetaSPAdesEstimate) MarshalJSON() ([]byte, error) { return jsonrecord.Marshal(&e) }

func (e *MetaSPAdesEstimate) UnmarshalJSON(data []byte) error {
	return jsonrecord.Unmarshal(data, e)
}

func (e MetaSPAdesEstimate) String() string { return jsonrecord.Describe(&e) }

// MetaSPAdesEstimatorParams is the input of estimate_metaSPAdes_requirements.
//
//	params        the parameters metaSPAdes would be run with
//	use_defaults  optional, default 0; if 1 return the default requirements
//	use_heuristic optional, default 1; if 1 estimate from reads metadata
type MetaSPAdesEstimatorParams struct {
	Params       *SPAdesParams `json:"params,omitempty"`
	UseDefaults  *int64        `json:"use_defaults,omitempty"`
	UseHeuristic *int64        `json:"use_heuristic,omitempty"`

	Extras jsonrecord.Extras `json:"-"`
}

func (p *MetaSPAdesEstimatorParams) GetParams() *SPAdesParams {
	if p == nil {
		return nil
	}
	return p.Params
}

func (p *MetaSPAdesEstimatorParams) GetUseDefaults() int64 {
	if p == nil {
		return 0
	}
	return jsonrecord.Value(p.UseDefaults)
}

func (p *MetaSPAdesEstimatorParams) GetUseHeuristic() int64 {
	if p == nil {
		return 0
	}
	return jsonrecord.Value(p.UseHeuristic)
}

// UsesDefaults reports whether use_defaults is nonzero.
func (p *MetaSPAdesEstimatorParams) UsesDefaults() bool {
	return p != nil && jsonrecord.Truthy(p.UseDefaults)
}

// UsesHeuristic reports whether the heuristic applies. An unset
// use_heuristic defaults to true.
func (p *MetaSPAdesEstimatorParams) UsesHeuristic() bool {
	if p == nil || p.UseHeuristic == nil {
		return true
	}
	return *p.UseHeuristic != 0
}

func (p *MetaSPAdesEstimatorParams) WithParams(v *SPAdesParams) *MetaSPAdesEstimatorParams {
	p.Params = v
	return p
}

func (p *MetaSPAdesEstimatorParams) WithUseDefaults(v bool) *MetaSPAdesEstimatorParams {
	p.UseDefaults = jsonrecord.Flag(v)
	return p
}

func (p *MetaSPAdesEstimatorParams) WithUseHeuristic(v bool) *MetaSPAdesEstimatorParams {
	p.UseHeuristic = jsonrecord.Flag(v)
	return p
}

func (p MetaSPAdesEstimatorParams) MarshalJSON() ([]byte, error) { return jsonrecord.Marshal(&p) }

func (p *MetaSPAdesEstimatorParams) UnmarshalJSON(data []byte) error {
	return jsonrecord.Unmarshal(data, p)
}

func (p MetaSPAdesEstimatorParams) String() string { return jsonrecord.Describe(&p) }

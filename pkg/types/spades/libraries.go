package spades

import "github.com/kbaseapps/assembly-params/pkg/jsonrecord"

// ReadsParams describes one short-read library for HybridSPAdes.
// Orientation is one of fr, rf, ff; LibType one of LibTypes.
type ReadsParams struct {
	LibRef      *string `json:"lib_ref,omitempty"`
	Orientation *string `json:"orientation,omitempty"`
	LibType     *string `json:"lib_type,omitempty"`

	Extras jsonrecord.Extras `json:"-"`
}

func (r *ReadsParams) GetLibRef() string {
	if r == nil {
		return ""
	}
	return jsonrecord.Value(r.LibRef)
}

func (r *ReadsParams) GetOrientation() string {
	if r == nil {
		return ""
	}
	return jsonrecord.Value(r.Orientation)
}

func (r *ReadsParams) GetLibType() string {
	if r == nil {
		return ""
	}
	return jsonrecord.Value(r.LibType)
}

func (r *ReadsParams) WithLibRef(v string) *ReadsParams {
	r.LibRef = &v
	return r
}

func (r *ReadsParams) WithOrientation(v string) *ReadsParams {
	r.Orientation = &v
	return r
}

func (r *ReadsParams) WithLibType(v string) *ReadsParams {
	r.LibType = &v
	return r
}

func (r ReadsParams) MarshalJSON() ([]byte, error) { return jsonrecord.Marshal(&r) }

func (r *ReadsParams) UnmarshalJSON(data []byte) error { return jsonrecord.Unmarshal(data, r) }

func (r ReadsParams) String() string { return jsonrecord.Describe(&r) }

// LongReadsParams describes one long-read library (PacBio, Nanopore, Sanger)
// or an additional contig set.
type LongReadsParams struct {
	LongReadsRef  *string `json:"long_reads_ref,omitempty"`
	LongReadsType *string `json:"long_reads_type,omitempty"`

	Extras jsonrecord.Extras `json:"-"`
}

func (l *LongReadsParams) GetLongReadsRef() string {
	if l == nil {
		return ""
	}
	return jsonrecord.Value(l.LongReadsRef)
}

func (l *LongReadsParams) GetLongReadsType() string {
	if l == nil {
		return ""
	}
	return jsonrecord.Value(l.LongReadsType)
}

func (l *LongReadsParams) WithLongReadsRef(v string) *LongReadsParams {
	l.LongReadsRef = &v
	return l
}

func (l *LongReadsParams) WithLongReadsType(v string) *LongReadsParams {
	l.LongReadsType = &v
	return l
}

func (l LongReadsParams) MarshalJSON() ([]byte, error) { return jsonrecord.Marshal(&l) }

func (l *LongReadsParams) UnmarshalJSON(data []byte) error { return jsonrecord.Unmarshal(data, l) }

func (l LongReadsParams) String() string { return jsonrecord.Describe(&l) }

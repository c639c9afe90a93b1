package spades

import "github.com/kbaseapps/assembly-params/pkg/jsonrecord"

// AssemblyOutput is returned by every assembler run method: the name and
// reference of the report object the service saved.
type AssemblyOutput struct {
	ReportName *string `json:"report_name,omitempty"`
	ReportRef  *string `json:"report_ref,omitempty"`

	Extras jsonrecord.Extras `json:"-"`
}

func (o *AssemblyOutput) GetReportName() string {
	if o == nil {
		return ""
	}
	return jsonrecord.Value(o.ReportName)
}

func (o *AssemblyOutput) GetReportRef() string {
	if o == nil {
		return ""
	}
	return jsonrecord.Value(o.ReportRef)
}

func (o *AssemblyOutput) WithReportName(v string) *AssemblyOutput {
	o.ReportName = &v
	return o
}

func (o *AssemblyOutput) WithReportRef(v string) *AssemblyOutput {
	o.ReportRef = &v
	return o
}

func (o AssemblyOutput) MarshalJSON() ([]byte, error) { return jsonrecord.Marshal(&o) }

func (o *AssemblyOutput) UnmarshalJSON(data []byte) error { return jsonrecord.Unmarshal(data, o) }

func (o AssemblyOutput) String() string { return jsonrecord.Describe(&o) }

package unicycler

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestUnicyclerParams_RoundTrip(t *testing.T) {
	in := `{"workspace_name":"ws","output_contigset_name":"uni","short_paired_libraries":["pe1"],"short_unpaired_libraries":["se1","se2"],"long_reads_library":"ont","min_contig_length":1000,"num_linear_seqs":0,"bridging_mode":"normal","keep":2}`
	var p UnicyclerParams
	if err := json.Unmarshal([]byte(in), &p); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if p.GetLongReadsLibrary() != "ont" {
		t.Errorf("long_reads_library = %q", p.GetLongReadsLibrary())
	}
	if p.NumLinearSeqs == nil || p.GetNumLinearSeqs() != 0 {
		t.Error("explicit zero num_linear_seqs must be kept")
	}
	if p.GetBridgingMode() != BridgingNormal {
		t.Errorf("bridging_mode = %q", p.GetBridgingMode())
	}
	out, err := json.Marshal(p)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(out) != in {
		t.Errorf("got %s\nwant %s", out, in)
	}
}

func TestUnicyclerParams_Builders(t *testing.T) {
	p := (&UnicyclerParams{}).
		WithWorkspaceName("ws").
		WithOutputContigsetName("uni").
		WithShortPairedLibraries("pe").
		WithBridgingMode(BridgingBold).
		WithMinContigLength(500).
		WithNumLinearSeqs(1)
	out, err := json.Marshal(p)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	want := `{"workspace_name":"ws","output_contigset_name":"uni","short_paired_libraries":["pe"],"min_contig_length":500,"num_linear_seqs":1,"bridging_mode":"bold"}`
	if string(out) != want {
		t.Errorf("got %s\nwant %s", out, want)
	}

	p.ShortUnpairedLibraries = []string{}
	out, _ = json.Marshal(p)
	if !strings.Contains(string(out), `"short_unpaired_libraries":[]`) {
		t.Errorf("explicit empty list dropped: %s", out)
	}
}

func TestUnicyclerParams_StringAndNil(t *testing.T) {
	var none *UnicyclerParams
	if none.GetWorkspaceName() != "" || none.GetShortPairedLibraries() != nil {
		t.Error("nil receiver should read as zero")
	}
	p := (&UnicyclerParams{}).WithLongReadsLibrary("ont")
	if !strings.Contains(p.String(), "LongReadsLibrary=ont") {
		t.Errorf("String() = %s", p.String())
	}
	if !strings.HasPrefix(p.String(), "UnicyclerParams{WorkspaceName=<nil>") {
		t.Errorf("String() = %s", p.String())
	}
}

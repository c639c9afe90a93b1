package contract

import (
	"slices"
	"strings"
	"testing"

	"github.com/kbaseapps/assembly-params/pkg/schema"
	"github.com/kbaseapps/assembly-params/pkg/types"
)

func TestEveryRecordHasSchema(t *testing.T) {
	if !slices.Equal(types.Names(), schema.Names()) {
		t.Fatalf("registry %v and schemas %v differ", types.Names(), schema.Names())
	}
}

func TestCheck(t *testing.T) {
	tests := []struct {
		name     string
		record   string
		payload  string
		wantExit int
		wantMsg  string
	}{
		{
			name:     "valid spades params",
			record:   types.SPAdesParams,
			payload:  `{"workspace_name":"ws","output_contigset_name":"out","read_libraries":["lib1","lib2"],"dna_source":"single_cell","kmer_sizes":[33,55,77]}`,
			wantExit: ExitPass,
		},
		{
			name:     "even kmer rejected by schema",
			record:   types.SPAdesParams,
			payload:  `{"workspace_name":"ws","output_contigset_name":"out","read_libraries":["l"],"kmer_sizes":[32]}`,
			wantExit: ExitSchemaFail,
			wantMsg:  "schema:",
		},
		{
			name:     "descending kmers",
			record:   types.SPAdesParams,
			payload:  `{"workspace_name":"ws","output_contigset_name":"out","read_libraries":["l"],"kmer_sizes":[55,33]}`,
			wantExit: ExitContractFail,
			wantMsg:  "strictly ascending",
		},
		{
			name:     "missing workspace",
			record:   types.SPAdesParams,
			payload:  `{"output_contigset_name":"out","read_libraries":["l"]}`,
			wantExit: ExitContractFail,
			wantMsg:  "workspace_name parameter is required",
		},
		{
			name:     "bad workspace chars",
			record:   types.SPAdesParams,
			payload:  `{"workspace_name":"my ws","output_contigset_name":"out","read_libraries":["l"]}`,
			wantExit: ExitContractFail,
			wantMsg:  `invalid workspace name "my ws"`,
		},
		{
			name:     "bad object name",
			record:   types.SPAdesParams,
			payload:  `{"workspace_name":"ws","output_contigset_name":"a/b","read_libraries":["l"]}`,
			wantExit: ExitContractFail,
			wantMsg:  "invalid workspace object name",
		},
		{
			name:     "no libraries",
			record:   types.SPAdesParams,
			payload:  `{"workspace_name":"ws","output_contigset_name":"out","read_libraries":[]}`,
			wantExit: ExitContractFail,
			wantMsg:  "read_libraries",
		},
		{
			name:     "unknown dna source",
			record:   types.SPAdesParams,
			payload:  `{"workspace_name":"ws","output_contigset_name":"out","read_libraries":["l"],"dna_source":"soil"}`,
			wantExit: ExitContractFail,
			wantMsg:  `dna_source "soil"`,
		},
		{
			name:     "negative min contig length",
			record:   types.SPAdesParams,
			payload:  `{"workspace_name":"ws","output_contigset_name":"out","read_libraries":["l"],"min_contig_length":-1}`,
			wantExit: ExitContractFail,
			wantMsg:  "min_contig_length must be >= 0",
		},
		{
			name:     "not an object",
			record:   types.SPAdesParams,
			payload:  `[1,2]`,
			wantExit: ExitSchemaFail,
		},
		{
			name:     "malformed json",
			record:   types.SPAdesParams,
			payload:  `{"workspace_name":`,
			wantExit: ExitSchemaFail,
			wantMsg:  "decode:",
		},
		{
			name:     "hybrid valid",
			record:   types.HybridSPAdesParams,
			payload:  `{"workspace_name":"ws","output_contigset_name":"h","reads_libraries":[{"lib_ref":"1/2/3","lib_type":"paired-end","orientation":"fr"}],"long_reads_libraries":[{"long_reads_ref":"1/4/1","long_reads_type":"pacbio"}],"pipeline_options":["careful"]}`,
			wantExit: ExitPass,
		},
		{
			name:     "hybrid bad nested library",
			record:   types.HybridSPAdesParams,
			payload:  `{"workspace_name":"ws","output_contigset_name":"h","reads_libraries":[{"lib_type":"paired-end","orientation":"xx"}]}`,
			wantExit: ExitContractFail,
			wantMsg:  "reads_libraries[0].lib_ref parameter is required",
		},
		{
			name:     "hybrid unknown pipeline option",
			record:   types.HybridSPAdesParams,
			payload:  `{"workspace_name":"ws","output_contigset_name":"h","reads_libraries":[{"lib_ref":"r"}],"pipeline_options":["fast"]}`,
			wantExit: ExitContractFail,
			wantMsg:  `pipeline_options "fast"`,
		},
		{
			name:     "estimator without params",
			record:   types.MetaSPAdesEstimatorParams,
			payload:  `{"use_defaults":1}`,
			wantExit: ExitContractFail,
			wantMsg:  "params is required",
		},
		{
			name:     "estimator nested field prefix",
			record:   types.MetaSPAdesEstimatorParams,
			payload:  `{"params":{"output_contigset_name":"o","read_libraries":["r"]}}`,
			wantExit: ExitContractFail,
			wantMsg:  "params.workspace_name",
		},
		{
			name:     "legacy valid",
			record:   types.LegacySPAdesParams,
			payload:  `{"workspace":"ws","libraries":["pe_reads"],"single_cell":1}`,
			wantExit: ExitPass,
		},
		{
			name:     "legacy library name",
			record:   types.LegacySPAdesParams,
			payload:  `{"workspace":"ws","libraries":["bad name"]}`,
			wantExit: ExitContractFail,
			wantMsg:  `invalid workspace object name "bad name"`,
		},
		{
			name:     "unicycler valid",
			record:   types.UnicyclerParams,
			payload:  `{"workspace_name":"ws","output_contigset_name":"u","short_paired_libraries":["pe"],"min_contig_length":500,"num_linear_seqs":0,"bridging_mode":"normal"}`,
			wantExit: ExitPass,
		},
		{
			name:     "unicycler without paired reads",
			record:   types.UnicyclerParams,
			payload:  `{"workspace_name":"ws","output_contigset_name":"u","short_unpaired_libraries":["se"],"min_contig_length":500,"num_linear_seqs":0,"bridging_mode":"bold"}`,
			wantExit: ExitContractFail,
			wantMsg:  "short_paired_libraries",
		},
		{
			name:     "unicycler bridging mode",
			record:   types.UnicyclerParams,
			payload:  `{"workspace_name":"ws","output_contigset_name":"u","short_paired_libraries":["pe"],"min_contig_length":500,"num_linear_seqs":0,"bridging_mode":"reckless"}`,
			wantExit: ExitContractFail,
			wantMsg:  "bridging_mode",
		},
		{
			name:     "output record has no conventions",
			record:   types.AssemblyOutput,
			payload:  `{"report_name":"r","report_ref":"1/2/3"}`,
			wantExit: ExitPass,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			report, err := Check(tt.record, []byte(tt.payload))
			if err != nil {
				t.Fatalf("Check: %v", err)
			}
			if report.ExitCode != tt.wantExit {
				t.Fatalf("exit = %d, want %d; violations: %v", report.ExitCode, tt.wantExit, report.Violations)
			}
			if report.Passed != (tt.wantExit == ExitPass) {
				t.Errorf("passed = %v with exit %d", report.Passed, report.ExitCode)
			}
			if tt.wantMsg != "" && !strings.Contains(strings.Join(report.Violations, "\n"), tt.wantMsg) {
				t.Errorf("violations %v should mention %q", report.Violations, tt.wantMsg)
			}
		})
	}
}

func TestCheck_ReportDetails(t *testing.T) {
	report, err := Check(types.SPAdesParams, []byte(`{"workspace_name":"ws","output_contigset_name":"out","read_libraries":["l"]}`))
	if err != nil {
		t.Fatal(err)
	}
	if report.Record != types.SPAdesParams {
		t.Errorf("record = %q", report.Record)
	}
	if !strings.HasPrefix(report.Digest, "sha256:") {
		t.Errorf("digest = %q", report.Digest)
	}
	if report.Checks[0].Check != "schema" || !report.Checks[0].Passed {
		t.Errorf("first check = %+v", report.Checks[0])
	}
	if len(report.Violations) != 0 {
		t.Errorf("violations = %v", report.Violations)
	}
}

func TestCheck_UnknownRecord(t *testing.T) {
	if _, err := Check("kb_SPAdes.Nope", []byte(`{}`)); err == nil {
		t.Fatal("expected error for unknown record type")
	}
}

func TestKmerSizes(t *testing.T) {
	tests := []struct {
		ks   []int64
		want int
	}{
		{nil, 0},
		{[]int64{21, 33, 55, 77, 99, 127}, 0},
		{[]int64{128}, 1},
		{[]int64{-1}, 1},
		{[]int64{33, 33}, 1},
		{[]int64{22, 21}, 2},
	}
	for _, tt := range tests {
		if got := kmerSizes("kmer_sizes", tt.ks); len(got) != tt.want {
			t.Errorf("kmerSizes(%v) = %v, want %d problems", tt.ks, got, tt.want)
		}
	}
}

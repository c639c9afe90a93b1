package contract

import (
	"fmt"
	"regexp"
	"slices"

	"github.com/kbaseapps/assembly-params/pkg/types"
	"github.com/kbaseapps/assembly-params/pkg/types/gaprice"
	"github.com/kbaseapps/assembly-params/pkg/types/spades"
	"github.com/kbaseapps/assembly-params/pkg/types/unicycler"
)

var (
	invalidWorkspaceName = regexp.MustCompile(`[^\w:._-]`)
	invalidObjectName    = regexp.MustCompile(`[^\w|._-]`)
)

// rule is one named convention; it returns a message per problem found.
type rule struct {
	name  string
	check func() []string
}

func rulesFor(rec types.Record) []rule {
	switch r := rec.(type) {
	case *spades.SPAdesParams:
		return spadesRules("", r)
	case *spades.HybridSPAdesParams:
		return hybridRules(r)
	case *spades.ReadsParams:
		return []rule{{"reads_library", func() []string { return readsLibrary("", r) }}}
	case *spades.LongReadsParams:
		return []rule{{"long_reads_library", func() []string { return longReadsLibrary("", r) }}}
	case *spades.MetaSPAdesEstimatorParams:
		return estimatorRules(r)
	case *gaprice.SPAdesParams:
		return legacyRules(r)
	case *unicycler.UnicyclerParams:
		return unicyclerRules(r)
	}
	return nil
}

func spadesRules(prefix string, p *spades.SPAdesParams) []rule {
	return []rule{
		{"workspace_name", func() []string { return workspaceName(prefix+"workspace_name", p.GetWorkspaceName()) }},
		{"output_contigset_name", func() []string {
			return objectName(prefix+"output_contigset_name", p.GetOutputContigsetName())
		}},
		{"read_libraries", func() []string { return atLeastOne(prefix+"read_libraries", len(p.ReadLibraries)) }},
		{"dna_source", func() []string { return oneOf(prefix+"dna_source", p.DNASource, spades.DNASources) }},
		{"min_contig_length", func() []string { return nonNegative(prefix+"min_contig_length", p.MinContigLength) }},
		{"kmer_sizes", func() []string { return kmerSizes(prefix+"kmer_sizes", p.KmerSizes) }},
	}
}

func hybridRules(p *spades.HybridSPAdesParams) []rule {
	return []rule{
		{"workspace_name", func() []string { return workspaceName("workspace_name", p.GetWorkspaceName()) }},
		{"output_contigset_name", func() []string {
			return objectName("output_contigset_name", p.GetOutputContigsetName())
		}},
		{"reads_libraries", func() []string {
			problems := atLeastOne("reads_libraries", len(p.ReadsLibraries))
			for i := range p.ReadsLibraries {
				problems = append(problems, readsLibrary(fmt.Sprintf("reads_libraries[%d].", i), &p.ReadsLibraries[i])...)
			}
			return problems
		}},
		{"long_reads_libraries", func() []string {
			var problems []string
			for i := range p.LongReadsLibraries {
				problems = append(problems, longReadsLibrary(fmt.Sprintf("long_reads_libraries[%d].", i), &p.LongReadsLibraries[i])...)
			}
			return problems
		}},
		{"dna_source", func() []string { return oneOf("dna_source", p.DNASource, spades.DNASources) }},
		{"pipeline_options", func() []string {
			var problems []string
			for _, opt := range p.PipelineOptions {
				problems = append(problems, oneOf("pipeline_options", &opt, spades.PipelineOptions)...)
			}
			return problems
		}},
		{"kmer_sizes", func() []string { return kmerSizes("kmer_sizes", p.KmerSizes) }},
		{"min_contig_length", func() []string { return nonNegative("min_contig_length", p.MinContigLength) }},
	}
}

func estimatorRules(p *spades.MetaSPAdesEstimatorParams) []rule {
	if p.Params == nil {
		return []rule{{"params", func() []string { return []string{"params is required"} }}}
	}
	return spadesRules("params.", p.Params)
}

func legacyRules(p *gaprice.SPAdesParams) []rule {
	return []rule{
		{"workspace", func() []string { return workspaceName("workspace", p.GetWorkspace()) }},
		{"libraries", func() []string {
			problems := atLeastOne("libraries", len(p.Libraries))
			for _, lib := range p.Libraries {
				if invalidObjectName.MatchString(lib) {
					problems = append(problems, fmt.Sprintf("invalid workspace object name %q", lib))
				}
			}
			return problems
		}},
	}
}

func unicyclerRules(p *unicycler.UnicyclerParams) []rule {
	return []rule{
		{"workspace_name", func() []string { return workspaceName("workspace_name", p.GetWorkspaceName()) }},
		{"output_contigset_name", func() []string {
			return objectName("output_contigset_name", p.GetOutputContigsetName())
		}},
		{"short_paired_libraries", func() []string {
			return atLeastOne("short_paired_libraries", len(p.ShortPairedLibraries))
		}},
		{"min_contig_length", func() []string {
			return append(required("min_contig_length", p.MinContigLength != nil),
				nonNegative("min_contig_length", p.MinContigLength)...)
		}},
		{"num_linear_seqs", func() []string {
			return append(required("num_linear_seqs", p.NumLinearSeqs != nil),
				nonNegative("num_linear_seqs", p.NumLinearSeqs)...)
		}},
		{"bridging_mode", func() []string {
			return append(required("bridging_mode", p.BridgingMode != nil),
				oneOf("bridging_mode", p.BridgingMode, unicycler.BridgingModes)...)
		}},
	}
}

func readsLibrary(prefix string, r *spades.ReadsParams) []string {
	problems := required(prefix+"lib_ref", r.GetLibRef() != "")
	problems = append(problems, oneOf(prefix+"lib_type", r.LibType, spades.LibTypes)...)
	return append(problems, oneOf(prefix+"orientation", r.Orientation, spades.Orientations)...)
}

func longReadsLibrary(prefix string, l *spades.LongReadsParams) []string {
	problems := required(prefix+"long_reads_ref", l.GetLongReadsRef() != "")
	return append(problems, oneOf(prefix+"long_reads_type", l.LongReadsType, spades.LibTypes)...)
}

func required(field string, present bool) []string {
	if present {
		return nil
	}
	return []string{field + " parameter is required"}
}

func workspaceName(field, name string) []string {
	if name == "" {
		return required(field, false)
	}
	if invalidWorkspaceName.MatchString(name) {
		return []string{fmt.Sprintf("invalid workspace name %q", name)}
	}
	return nil
}

func objectName(field, name string) []string {
	if name == "" {
		return required(field, false)
	}
	if invalidObjectName.MatchString(name) {
		return []string{fmt.Sprintf("invalid workspace object name %q", name)}
	}
	return nil
}

func atLeastOne(field string, n int) []string {
	if n > 0 {
		return nil
	}
	return []string{"at least one entry is required in " + field}
}

func oneOf(field string, v *string, vocab []string) []string {
	if v == nil || slices.Contains(vocab, *v) {
		return nil
	}
	return []string{fmt.Sprintf("%s %q is not one of %v", field, *v, vocab)}
}

func nonNegative(field string, v *int64) []string {
	if v == nil || *v >= 0 {
		return nil
	}
	return []string{fmt.Sprintf("%s must be >= 0, got %d", field, *v)}
}

// kmerSizes enforces odd sizes below 128 in strictly ascending order.
func kmerSizes(field string, ks []int64) []string {
	var problems []string
	for i, k := range ks {
		if k <= 0 || k >= spades.MaxKmerSize || k%2 == 0 {
			problems = append(problems, fmt.Sprintf("%s[%d] = %d must be odd and between 1 and %d", field, i, k, spades.MaxKmerSize-1))
		}
		if i > 0 && k <= ks[i-1] {
			problems = append(problems, fmt.Sprintf("%s must be strictly ascending: %d follows %d", field, k, ks[i-1]))
		}
	}
	return problems
}

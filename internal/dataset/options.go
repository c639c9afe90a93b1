package dataset

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/kbaseapps/assembly-params/pkg/types/spades"
)

var dnaFlags = map[string]string{
	spades.DNASingleCell:  "--sc",
	spades.DNAMetagenomic: "--meta",
	spades.DNAPlasmid:     "--plasmid",
	spades.DNARNA:         "--rna",
	spades.DNAIonTorrent:  "--iontorrent",
}

// Options derives spades.py arguments for a SPAdesParams or
// HybridSPAdesParams record. Unknown DNA sources add no flag. Unknown
// pipeline options fall back to --careful, which is also the default;
// metagenomic runs never get --careful since metaSPAdes rejects it.
func Options(projectDir string, params any) ([]string, error) {
	var (
		dnaSource string
		pipeline  []string
		kmers     []int64
	)
	switch p := params.(type) {
	case *spades.SPAdesParams:
		dnaSource = p.GetDNASource()
		kmers = p.GetKmerSizes()
		if p.SkipsErrorCorrection() {
			pipeline = []string{spades.PipelineOnlyAssembler}
		}
	case *spades.HybridSPAdesParams:
		dnaSource = p.GetDNASource()
		kmers = p.GetKmerSizes()
		pipeline = p.GetPipelineOptions()
	default:
		return nil, fmt.Errorf("no spades.py options for %T", params)
	}

	args := []string{"-o", projectDir}
	if flag, ok := dnaFlags[dnaSource]; ok {
		args = append(args, flag)
	}
	args = append(args, pipelineFlags(pipeline, dnaSource == spades.DNAMetagenomic)...)
	if len(kmers) > 0 {
		parts := make([]string, len(kmers))
		for i, k := range kmers {
			parts[i] = strconv.FormatInt(k, 10)
		}
		args = append(args, "-k", strings.Join(parts, ","))
	}
	return args, nil
}

func pipelineFlags(options []string, meta bool) []string {
	var flags []string
	add := func(opt string) {
		if opt == spades.PipelineCareful && meta {
			return
		}
		if f := "--" + opt; !slices.Contains(flags, f) {
			flags = append(flags, f)
		}
	}
	if len(options) == 0 {
		add(spades.PipelineCareful)
	}
	for _, opt := range options {
		if slices.Contains(spades.PipelineOptions, opt) {
			add(opt)
		} else {
			add(spades.PipelineCareful)
		}
	}
	return flags
}

// Command assembles the full spades.py invocation for a dataset file.
func Command(bin, datasetPath string, options []string) []string {
	return append([]string{bin, "--dataset", datasetPath}, options...)
}

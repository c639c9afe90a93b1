// Package spades holds the kb_SPAdes request and response records:
// SPAdes, HybridSPAdes and metaSPAdes parameters, read library descriptors,
// and the metaSPAdes resource estimate.
//
// The records are plain parameter bags. The vocabularies below document the
// values the assembler service understands; the records accept any string.
package spades

// Library types accepted in ReadsParams.LibType and LongReadsParams.LongReadsType.
const (
	LibPairedEnd        = "paired-end"
	LibMatePairs        = "mate-pairs"
	LibHQMatePairs      = "hq-mate-pairs"
	LibSingle           = "single"
	LibPacBio           = "pacbio"
	LibNanopore         = "nanopore"
	LibSanger           = "sanger"
	LibTrustedContigs   = "trusted-contigs"
	LibUntrustedContigs = "untrusted-contigs"
)

// Read orientations.
const (
	OrientationFR = "fr"
	OrientationRF = "rf"
	OrientationFF = "ff"
)

// DNA sources. Anything else means a standard multi-cell sample.
const (
	DNASingleCell  = "single_cell"
	DNAMetagenomic = "metagenomic"
	DNAPlasmid     = "plasmid"
	DNARNA         = "rna"
	DNAIonTorrent  = "iontorrent"
)

// Pipeline options.
const (
	PipelineOnlyErrorCorrection = "only-error-correction"
	PipelineOnlyAssembler       = "only-assembler"
	PipelineCareful             = "careful"
	PipelineContinue            = "continue"
	PipelineDisableGzip         = "disable-gzip-output"
)

// MaxKmerSize is the exclusive upper bound on k-mer sizes.
const MaxKmerSize = 128

var (
	LibTypes = []string{
		LibPairedEnd, LibMatePairs, LibHQMatePairs, LibSingle, LibPacBio,
		LibNanopore, LibSanger, LibTrustedContigs, LibUntrustedContigs,
	}
	Orientations    = []string{OrientationFR, OrientationRF, OrientationFF}
	DNASources      = []string{DNASingleCell, DNAMetagenomic, DNAPlasmid, DNARNA, DNAIonTorrent}
	PipelineOptions = []string{
		PipelineOnlyErrorCorrection, PipelineOnlyAssembler, PipelineCareful,
		PipelineContinue, PipelineDisableGzip,
	}
)

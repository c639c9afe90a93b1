package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/kbaseapps/assembly-params/internal/config"
	"github.com/kbaseapps/assembly-params/internal/contract"
	"github.com/kbaseapps/assembly-params/internal/dataset"
	"github.com/kbaseapps/assembly-params/internal/estimate"
	"github.com/kbaseapps/assembly-params/internal/hash"
	"github.com/kbaseapps/assembly-params/internal/logger"
	"github.com/kbaseapps/assembly-params/pkg/jsonrecord"
	"github.com/kbaseapps/assembly-params/pkg/types"
	"github.com/kbaseapps/assembly-params/pkg/types/spades"
)

// metadataSource serves object metadata from a YAML map keyed by reference
// or bare object name.
type metadataSource map[string]map[string]string

func (m metadataSource) GetObjectInfo(_ context.Context, refs []string) ([]estimate.ObjectInfo, error) {
	out := make([]estimate.ObjectInfo, 0, len(refs))
	for _, ref := range refs {
		name := ref[strings.LastIndex(ref, "/")+1:]
		meta, ok := m[ref]
		if !ok {
			meta = m[name]
		}
		out = append(out, estimate.ObjectInfo{Ref: ref, Name: name, Metadata: meta})
	}
	return out, nil
}

func newEstimateCommand() *cobra.Command {
	var inPath, metadataPath string
	cmd := &cobra.Command{
		Use:   "estimate",
		Short: "Estimate metaSPAdes memory, walltime and CPU requirements",
		RunE: func(cmd *cobra.Command, _ []string) error {
			raw, err := readInput(cmd, inPath)
			if err != nil {
				return err
			}
			var req spades.MetaSPAdesEstimatorParams
			if err := req.UnmarshalJSON(raw); err != nil {
				return cliError{code: contract.ExitSchemaFail, err: err}
			}

			var src estimate.ObjectInfoSource
			if metadataPath != "" {
				var meta metadataSource
				if err := config.LoadYAML(metadataPath, &meta); err != nil {
					return err
				}
				src = meta
			} else {
				cfg, err := loadSettings()
				if err != nil {
					return err
				}
				if src, err = newObjectSourceFunc(cfg); err != nil {
					return err
				}
			}

			est, err := estimate.Estimate(cmd.Context(), &req, src)
			if err != nil {
				return err
			}
			out, err := jsonrecord.Marshal(est)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(out))
			return nil
		},
	}
	cmd.Flags().StringVar(&inPath, "in", "", "MetaSPAdesEstimatorParams JSON file, - for stdin")
	cmd.Flags().StringVar(&metadataPath, "metadata", "", "YAML map of library name to object metadata; skips the workspace lookup")
	return cmd
}

func newDatasetCommand() *cobra.Command {
	var typeName, inPath, filesPath, outDir, spadesBin string
	cmd := &cobra.Command{
		Use:   "dataset",
		Short: "Write a spades.py dataset file and print the derived command",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if filesPath == "" {
				return fmt.Errorf("--files is required")
			}
			rec, err := decodeRecord(cmd, typeName, inPath)
			if err != nil {
				return err
			}
			var files map[string]dataset.Files
			if err := config.LoadYAML(filesPath, &files); err != nil {
				return err
			}

			var libs []dataset.ResolvedLibrary
			switch p := rec.(type) {
			case *spades.SPAdesParams:
				libs, err = dataset.ResolveSPAdes(p, files)
			case *spades.HybridSPAdesParams:
				libs, err = dataset.Resolve(p, files)
			default:
				return fmt.Errorf("dataset needs %s or %s, got %s", types.SPAdesParams, types.HybridSPAdesParams, typeName)
			}
			if err != nil {
				return cliError{code: contract.ExitContractFail, err: err}
			}

			dir, err := dataset.NewProject(outDir)
			if err != nil {
				return err
			}
			path, err := dataset.Write(dir, libs)
			if err != nil {
				return err
			}
			opts, err := dataset.Options(dir, rec)
			if err != nil {
				return err
			}
			digest, entries, err := hash.DigestDir(dir)
			if err != nil {
				return err
			}
			logger.With("project", dir).Infow("prepared spades run", "libraries", len(libs), "files", len(entries))

			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "dataset: %s\n", path)
			fmt.Fprintf(w, "command: %s\n", strings.Join(dataset.Command(spadesBin, path, opts), " "))
			fmt.Fprintf(w, "digest: %s\n", digest)
			return nil
		},
	}
	cmd.Flags().StringVar(&typeName, "type", types.HybridSPAdesParams, "record type name")
	cmd.Flags().StringVar(&inPath, "in", "", "input JSON file, - for stdin")
	cmd.Flags().StringVar(&filesPath, "files", "", "YAML map of library reference to staged fwd/rev read files")
	cmd.Flags().StringVar(&outDir, "out", os.TempDir(), "directory the run directory is created in")
	cmd.Flags().StringVar(&spadesBin, "spades-bin", "spades.py", "assembler executable")
	return cmd
}

func newSubmitCommand() *cobra.Command {
	var method, inPath string
	cmd := &cobra.Command{
		Use:   "submit",
		Short: "Send a parameter record to the configured assembler service",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if method == "" {
				return fmt.Errorf("--method is required")
			}
			raw, err := readInput(cmd, inPath)
			if err != nil {
				return err
			}
			if !json.Valid(raw) {
				return cliError{code: contract.ExitSchemaFail, err: fmt.Errorf("input is not valid JSON")}
			}
			cfg, err := loadSettings()
			if err != nil {
				return err
			}
			client, err := newServiceClientFunc(cfg)
			if err != nil {
				return err
			}
			out, err := client.Submit(cmd.Context(), method, json.RawMessage(raw))
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(out))
			return nil
		},
	}
	cmd.Flags().StringVar(&method, "method", "", "service method, e.g. kb_SPAdes.run_SPAdes")
	cmd.Flags().StringVar(&inPath, "in", "", "input JSON file, - for stdin")
	return cmd
}

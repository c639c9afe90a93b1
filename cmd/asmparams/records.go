package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kbaseapps/assembly-params/internal/contract"
	"github.com/kbaseapps/assembly-params/internal/hash"
	"github.com/kbaseapps/assembly-params/internal/report"
	"github.com/kbaseapps/assembly-params/pkg/jsonrecord"
	"github.com/kbaseapps/assembly-params/pkg/types"
)

func newTypesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "types",
		Short: "List the known record type names",
		RunE: func(cmd *cobra.Command, _ []string) error {
			for _, name := range types.Names() {
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}
			return nil
		},
	}
}

func decodeRecord(cmd *cobra.Command, typeName, inPath string) (types.Record, error) {
	if typeName == "" {
		return nil, fmt.Errorf("--type is required")
	}
	raw, err := readInput(cmd, inPath)
	if err != nil {
		return nil, err
	}
	rec, err := types.Decode(typeName, raw)
	if err != nil {
		return nil, cliError{code: contract.ExitSchemaFail, err: err}
	}
	return rec, nil
}

func newRoundtripCommand() *cobra.Command {
	var typeName, inPath string
	cmd := &cobra.Command{
		Use:   "roundtrip",
		Short: "Decode a record and print its canonical encoding",
		RunE: func(cmd *cobra.Command, _ []string) error {
			rec, err := decodeRecord(cmd, typeName, inPath)
			if err != nil {
				return err
			}
			out, err := jsonrecord.Marshal(rec)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(out))
			return nil
		},
	}
	cmd.Flags().StringVar(&typeName, "type", "", "record type name")
	cmd.Flags().StringVar(&inPath, "in", "", "input JSON file, - for stdin")
	return cmd
}

func newDescribeCommand() *cobra.Command {
	var typeName, inPath string
	cmd := &cobra.Command{
		Use:   "describe",
		Short: "Print the diagnostic rendering of a record",
		RunE: func(cmd *cobra.Command, _ []string) error {
			rec, err := decodeRecord(cmd, typeName, inPath)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), rec.String())
			return nil
		},
	}
	cmd.Flags().StringVar(&typeName, "type", "", "record type name")
	cmd.Flags().StringVar(&inPath, "in", "", "input JSON file, - for stdin")
	return cmd
}

func newCheckCommand() *cobra.Command {
	var typeName, inPath, format, outPath string
	cmd := &cobra.Command{
		Use:   "check",
		Short: "Check a payload against the record schema and service conventions",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if typeName == "" {
				return fmt.Errorf("--type is required")
			}
			raw, err := readInput(cmd, inPath)
			if err != nil {
				return err
			}
			r, err := contract.Check(typeName, raw)
			if err != nil {
				return err
			}

			switch format {
			case "json":
				if outPath == "" {
					out, err := json.MarshalIndent(r, "", "  ")
					if err != nil {
						return err
					}
					fmt.Fprintln(cmd.OutOrStdout(), string(out))
				} else {
					if err := report.WriteJSON(outPath, r); err != nil {
						return err
					}
					fmt.Fprintln(cmd.OutOrStdout(), outPath)
				}
			case "md":
				if outPath == "" {
					fmt.Fprint(cmd.OutOrStdout(), report.BuildMarkdown(r))
				} else {
					if err := report.WriteMarkdown(outPath, r); err != nil {
						return err
					}
					fmt.Fprintln(cmd.OutOrStdout(), outPath)
				}
			default:
				return fmt.Errorf("unsupported format %s", format)
			}

			if !r.Passed {
				return cliError{code: r.ExitCode, err: fmt.Errorf("check failed for %s", typeName)}
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&typeName, "type", "", "record type name")
	cmd.Flags().StringVar(&inPath, "in", "", "input JSON file, - for stdin")
	cmd.Flags().StringVar(&format, "format", "json", "report format: json or md")
	cmd.Flags().StringVar(&outPath, "out", "", "write the report to this path instead of stdout")
	return cmd
}

func newDigestCommand() *cobra.Command {
	var inPath string
	var raw bool
	cmd := &cobra.Command{
		Use:   "digest",
		Short: "Print the SHA-256 digest of a JSON payload",
		Long:  "By default the payload is canonicalized first, so key order and whitespace do not change the digest. --raw hashes the file bytes as they are.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if raw {
				if inPath == "" || inPath == "-" {
					return fmt.Errorf("--raw needs a file path for --in")
				}
				d, _, err := hash.DigestFile(inPath)
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), d)
				return nil
			}
			payload, err := readInput(cmd, inPath)
			if err != nil {
				return err
			}
			d, err := hash.Digest(payload)
			if err != nil {
				return cliError{code: contract.ExitSchemaFail, err: err}
			}
			fmt.Fprintln(cmd.OutOrStdout(), d)
			return nil
		},
	}
	cmd.Flags().StringVar(&inPath, "in", "", "input JSON file, - for stdin")
	cmd.Flags().BoolVar(&raw, "raw", false, "hash file bytes without canonicalizing")
	return cmd
}

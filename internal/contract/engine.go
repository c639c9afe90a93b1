// Package contract checks parameter payloads against the conventions the
// assembler services rely on but the records themselves never enforce:
// structural schema first, then naming, library and k-mer rules.
package contract

import (
	"bytes"
	"encoding/json"

	"github.com/kbaseapps/assembly-params/internal/hash"
	"github.com/kbaseapps/assembly-params/internal/logger"
	"github.com/kbaseapps/assembly-params/pkg/schema"
	"github.com/kbaseapps/assembly-params/pkg/types"
)

// Check validates payload as the named record type. An error means the
// check could not run at all; a failing payload yields a report with
// Passed false and a nonzero ExitCode.
func Check(name string, payload []byte) (Report, error) {
	report := Report{Passed: true, ExitCode: ExitPass, Record: name}
	if _, err := types.New(name); err != nil {
		return report, err
	}
	log := logger.With("record", name)

	digest, err := hash.Digest(payload)
	if err != nil {
		report.fail("decode", ExitSchemaFail, "%v", err)
		return report, nil
	}
	report.Digest = digest

	var doc any
	dec := json.NewDecoder(bytes.NewReader(payload))
	dec.UseNumber()
	if err := dec.Decode(&doc); err != nil {
		report.fail("decode", ExitSchemaFail, "%v", err)
		return report, nil
	}
	violations, err := schema.Validate(name, doc)
	if err != nil {
		return report, err
	}
	if len(violations) > 0 {
		for _, v := range violations {
			report.fail("schema", ExitSchemaFail, "%s", v)
		}
		log.Debugw("schema check failed", "violations", len(violations))
		return report, nil
	}
	report.pass("schema")

	rec, err := types.Decode(name, payload)
	if err != nil {
		report.fail("decode", ExitSchemaFail, "%v", err)
		return report, nil
	}
	for _, r := range rulesFor(rec) {
		problems := r.check()
		if len(problems) == 0 {
			report.pass(r.name)
			continue
		}
		for _, p := range problems {
			report.fail(r.name, ExitContractFail, "%s", p)
		}
	}
	log.Debugw("contract check finished", "passed", report.Passed, "checks", len(report.Checks))
	return report, nil
}

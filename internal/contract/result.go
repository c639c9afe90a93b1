package contract

import "fmt"

const (
	ExitPass         = 0
	ExitSchemaFail   = 14
	ExitContractFail = 15
)

type CheckResult struct {
	Check   string `json:"check"`
	Passed  bool   `json:"passed"`
	Message string `json:"message"`
}

type Report struct {
	Passed     bool          `json:"passed"`
	ExitCode   int           `json:"exit_code"`
	Record     string        `json:"record"`
	Digest     string        `json:"digest,omitempty"`
	Checks     []CheckResult `json:"checks"`
	Violations []string      `json:"violations"`
}

func (r *Report) pass(check string) {
	r.Checks = append(r.Checks, CheckResult{Check: check, Passed: true, Message: "ok"})
}

func (r *Report) fail(check string, exit int, format string, args ...any) {
	r.Passed = false
	if exit > r.ExitCode {
		r.ExitCode = exit
	}
	msg := fmt.Sprintf(format, args...)
	r.Checks = append(r.Checks, CheckResult{Check: check, Passed: false, Message: msg})
	r.Violations = append(r.Violations, fmt.Sprintf("%s: %s", check, msg))
}

// Package report renders contract check reports for humans and machines.
package report

import (
	"fmt"
	"os"
	"strings"

	"github.com/kbaseapps/assembly-params/internal/contract"
)

func BuildMarkdown(r contract.Report) string {
	status := "PASS"
	if !r.Passed {
		status = "FAIL"
	}
	var b strings.Builder
	b.WriteString("# Assembly Parameter Check Report\n\n")
	b.WriteString(fmt.Sprintf("- Record: `%s`\n", r.Record))
	b.WriteString(fmt.Sprintf("- Status: **%s**\n", status))
	b.WriteString(fmt.Sprintf("- Exit Code: `%d`\n", r.ExitCode))
	if r.Digest != "" {
		b.WriteString(fmt.Sprintf("- Digest: `%s`\n", r.Digest))
	}

	b.WriteString("\n## Checks\n\n")
	b.WriteString("| Check | Passed | Message |\n")
	b.WriteString("|---|---:|---|\n")
	for _, c := range r.Checks {
		b.WriteString(fmt.Sprintf("| %s | %t | %s |\n", escapeCell(c.Check), c.Passed, escapeCell(c.Message)))
	}

	if len(r.Violations) > 0 {
		b.WriteString("\n## Violations\n\n")
		for _, v := range r.Violations {
			b.WriteString("- " + v + "\n")
		}
	}
	return b.String()
}

func escapeCell(s string) string {
	if s == "" {
		return "-"
	}
	return strings.ReplaceAll(s, "|", "\\|")
}

func WriteMarkdown(path string, r contract.Report) error {
	return os.WriteFile(path, []byte(BuildMarkdown(r)), 0o644)
}

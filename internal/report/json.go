package report

import (
	"encoding/json"
	"os"

	"github.com/kbaseapps/assembly-params/internal/contract"
)

func WriteJSON(path string, r contract.Report) error {
	raw, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, append(raw, '\n'), 0o644)
}

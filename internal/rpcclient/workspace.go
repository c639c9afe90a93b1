package rpcclient

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/kbaseapps/assembly-params/internal/estimate"
)

const methodGetObjectInfo = "Workspace.get_object_info3"

// WorkspaceClient reads object descriptions from the workspace service.
type WorkspaceClient struct {
	*Client
}

func NewWorkspace(c *Client) *WorkspaceClient {
	return &WorkspaceClient{Client: c}
}

type objectSpec struct {
	Ref string `json:"ref"`
}

type getObjectInfoParams struct {
	Objects         []objectSpec `json:"objects"`
	IncludeMetadata int          `json:"includeMetadata"`
}

type getObjectInfoResult struct {
	Infos [][]json.RawMessage `json:"infos"`
}

// GetObjectInfo fetches info with user metadata for each ref, in order.
func (w *WorkspaceClient) GetObjectInfo(ctx context.Context, refs []string) ([]estimate.ObjectInfo, error) {
	params := getObjectInfoParams{IncludeMetadata: 1}
	for _, ref := range refs {
		params.Objects = append(params.Objects, objectSpec{Ref: ref})
	}
	res, err := callOne[getObjectInfoResult](ctx, w.Client, methodGetObjectInfo, params)
	if err != nil {
		return nil, err
	}
	out := make([]estimate.ObjectInfo, 0, len(res.Infos))
	for i, tuple := range res.Infos {
		info, err := parseObjectInfo(tuple)
		if err != nil {
			return nil, fmt.Errorf("object info %d: %w", i, err)
		}
		out = append(out, info)
	}
	return out, nil
}

// parseObjectInfo reads the workspace object_info tuple:
// [objid, name, type, save_date, version, saved_by, wsid, workspace, chsum, size, meta].
func parseObjectInfo(tuple []json.RawMessage) (estimate.ObjectInfo, error) {
	if len(tuple) < 11 {
		return estimate.ObjectInfo{}, fmt.Errorf("expected 11 fields, got %d", len(tuple))
	}
	var (
		objID, version, wsID int64
		info                 estimate.ObjectInfo
	)
	fields := []struct {
		idx int
		dst any
	}{
		{0, &objID}, {1, &info.Name}, {2, &info.Type}, {4, &version}, {6, &wsID},
	}
	for _, f := range fields {
		if err := json.Unmarshal(tuple[f.idx], f.dst); err != nil {
			return estimate.ObjectInfo{}, fmt.Errorf("field %d: %w", f.idx, err)
		}
	}
	// Metadata is null when the object has none.
	if err := json.Unmarshal(tuple[10], &info.Metadata); err != nil {
		return estimate.ObjectInfo{}, fmt.Errorf("metadata: %w", err)
	}
	info.Ref = fmt.Sprintf("%d/%d/%d", wsID, objID, version)
	return info, nil
}

package repositories

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/courseadmin/dashboard/internal/client"
)

// getCount reads a count endpoint.
// The count may be a bare number or an object with a "count" or "total" field.
func getCount(ctx context.Context, c *client.Client, path string) (int, error) {
	var raw json.RawMessage
	if err := c.Get(ctx, path, &raw); err != nil {
		return 0, err
	}
	if len(raw) == 0 {
		return 0, nil
	}

	var n int
	if err := json.Unmarshal(raw, &n); err == nil {
		return n, nil
	}

	var obj struct {
		Count *int `json:"count"`
		Total *int `json:"total"`
	}
	if err := json.Unmarshal(raw, &obj); err == nil {
		if obj.Count != nil {
			return *obj.Count, nil
		}
		if obj.Total != nil {
			return *obj.Total, nil
		}
	}

	return 0, fmt.Errorf("unexpected count response: %s", string(raw))
}

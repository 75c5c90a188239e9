package server

import (
	"math"

	"golang.org/x/xerrors"
)

// MCP arguments arrive as generic JSON values, so numbers are float64.

func optFloat(args map[string]any, key string) *float64 {
	if v, ok := args[key].(float64); ok {
		return &v
	}
	return nil
}

// optInt rejects fractional values instead of truncating them, so a caller
// asking for page 2.7 gets an error rather than a different page.
func optInt(args map[string]any, key string) (*int, error) {
	v, ok := args[key].(float64)
	if !ok {
		return nil, nil
	}
	if v != math.Trunc(v) {
		return nil, xerrors.Errorf("argument %q must be an integer, got %v", key, v)
	}
	n := int(v)
	return &n, nil
}

func optString(args map[string]any, key string) *string {
	if v, ok := args[key].(string); ok {
		return &v
	}
	return nil
}

func optBool(args map[string]any, key string) *bool {
	if v, ok := args[key].(bool); ok {
		return &v
	}
	return nil
}

package api

import (
	"context"
	"fmt"
	"sort"
)

// serverInfoResponse is the subset of GET /admin/serverinfo we consume.
type serverInfoResponse struct {
	Themes map[string][]ThemeInfo `json:"themes"`
}

// ListThemes returns the installed themes grouped by theme type
// (e.g. "login", "account", "admin"). The result is cached because the
// installed theme set only changes when the server is redeployed.
func (c *Client) ListThemes(ctx context.Context) (map[string][]ThemeInfo, error) {
	var res serverInfoResponse
	if err := c.GetWithCache(ctx, "/admin/serverinfo", &res, ThemeDataTTL); err != nil {
		return nil, fmt.Errorf("failed to get server info: %w", err)
	}

	if res.Themes == nil {
		return nil, fmt.Errorf("no themes in server info response")
	}

	return res.Themes, nil
}

// ThemeNames flattens a theme map into a deduplicated, sorted list of theme
// names across all theme types.
func ThemeNames(themes map[string][]ThemeInfo) []string {
	seen := make(map[string]struct{})

	var names []string

	for _, infos := range themes {
		for _, info := range infos {
			if _, ok := seen[info.Name]; ok {
				continue
			}

			seen[info.Name] = struct{}{}
			names = append(names, info.Name)
		}
	}

	sort.Strings(names)

	return names
}

// ThemeTypes returns the sorted theme type keys of a theme map.
func ThemeTypes(themes map[string][]ThemeInfo) []string {
	types := make([]string, 0, len(themes))
	for t := range themes {
		types = append(types, t)
	}

	sort.Strings(types)

	return types
}

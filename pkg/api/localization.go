package api

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
)

// GetRealmLocalization returns the locale settings of a realm. The result
// is cached; realm locale settings change rarely.
func (c *Client) GetRealmLocalization(ctx context.Context, realm string) (*RealmLocalization, error) {
	if realm == "" {
		return nil, fmt.Errorf("realm cannot be empty")
	}

	var res RealmLocalization

	path := "/admin/realms/" + url.PathEscape(realm)
	if err := c.GetWithCache(ctx, path, &res, RealmDataTTL); err != nil {
		return nil, fmt.Errorf("failed to get realm %s: %w", realm, err)
	}

	return &res, nil
}

// FindEffectiveMessageBundles fetches the resolved message bundle entries
// for a theme, theme type and locale. Results are never cached: the server
// applies override and fallback rules per request, and entries carry no
// identity across fetches.
func (c *Client) FindEffectiveMessageBundles(ctx context.Context, q BundleQuery) ([]BundleEntry, error) {
	if q.Realm == "" {
		return nil, fmt.Errorf("realm cannot be empty")
	}

	params := url.Values{}
	params.Set("theme", q.Theme)
	params.Set("themeType", q.ThemeType)
	params.Set("locale", q.Locale)
	params.Set("source", strconv.FormatBool(q.Source))

	path := fmt.Sprintf("/admin/realms/%s/effective-message-bundles?%s",
		url.PathEscape(q.Realm), params.Encode())

	var entries []BundleEntry
	if err := c.Get(ctx, path, &entries); err != nil {
		return nil, fmt.Errorf("failed to get effective message bundles: %w", err)
	}

	return entries, nil
}

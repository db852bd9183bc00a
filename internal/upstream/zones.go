package upstream

import "context"

// ListZones returns the zones visible to the active token.
func (c *Client) ListZones(ctx context.Context) ([]Zone, error) {
	var zones []Zone
	if err := c.post(ctx, "/cloudflare/zones", map[string]interface{}{}, &zones); err != nil {
		return nil, err
	}
	return zones, nil
}

// GetZoneSettings reads all settings of a zone.
func (c *Client) GetZoneSettings(ctx context.Context, zoneID string) ([]ZoneSetting, error) {
	var settings []ZoneSetting
	err := c.post(ctx, "/cloudflare/zone/settings", map[string]interface{}{"zone_id": zoneID}, &settings)
	if err != nil {
		return nil, err
	}
	return settings, nil
}

// UpdateZoneSettings applies a batch of setting writes to a zone.
func (c *Client) UpdateZoneSettings(ctx context.Context, zoneID string, settings []UpdateSetting) (string, error) {
	var result string
	err := c.post(ctx, "/cloudflare/zone/settings/update", map[string]interface{}{
		"zone_id":  zoneID,
		"settings": settings,
	}, &result)
	if err != nil {
		return "", err
	}
	return result, nil
}

// OptimizeZone applies the provider's security or performance preset.
func (c *Client) OptimizeZone(ctx context.Context, zoneID string, mode OptimizeMode) (string, error) {
	var result string
	err := c.post(ctx, "/cloudflare/zone/optimize", map[string]interface{}{
		"zone_id": zoneID,
		"mode":    string(mode),
	}, &result)
	if err != nil {
		return "", err
	}
	return result, nil
}

// GetAnalytics runs an analytics query over the given time range
// (e.g. "24h", "7d", "30d").
func (c *Client) GetAnalytics(ctx context.Context, zoneID, timeRange string) (*AnalyticsData, error) {
	var data AnalyticsData
	err := c.post(ctx, "/cloudflare/analytics", map[string]interface{}{
		"zone_id":    zoneID,
		"time_range": timeRange,
	}, &data)
	if err != nil {
		return nil, err
	}
	return &data, nil
}

// PurgeCache purges cached content for a zone.
func (c *Client) PurgeCache(ctx context.Context, req PurgeCacheRequest) (*PurgeCacheResponse, error) {
	var resp PurgeCacheResponse
	if err := c.post(ctx, "/cloudflare/cache/purge", toFields(req), &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

package upstream

import "context"

// ListRateLimits returns the rate-limiting rules of a zone.
func (c *Client) ListRateLimits(ctx context.Context, zoneID string) ([]RateLimit, error) {
	var limits []RateLimit
	err := c.post(ctx, "/cloudflare/ratelimits", map[string]interface{}{"zone_id": zoneID}, &limits)
	if err != nil {
		return nil, err
	}
	return limits, nil
}

// CreateRateLimit creates a rate-limiting rule.
func (c *Client) CreateRateLimit(ctx context.Context, req CreateRateLimitRequest) (*RateLimit, error) {
	var limit RateLimit
	if err := c.post(ctx, "/cloudflare/ratelimits/create", toFields(req), &limit); err != nil {
		return nil, err
	}
	return &limit, nil
}

// UpdateRateLimit rewrites an existing rate-limiting rule.
func (c *Client) UpdateRateLimit(ctx context.Context, zoneID, rateLimitID string, req CreateRateLimitRequest) (*RateLimit, error) {
	fields := toFields(req)
	fields["zone_id"] = zoneID
	fields["rate_limit_id"] = rateLimitID
	var limit RateLimit
	if err := c.post(ctx, "/cloudflare/ratelimits/update", fields, &limit); err != nil {
		return nil, err
	}
	return &limit, nil
}

// DeleteRateLimit removes a rule and returns its id.
func (c *Client) DeleteRateLimit(ctx context.Context, zoneID, rateLimitID string) (string, error) {
	var id string
	err := c.post(ctx, "/cloudflare/ratelimits/delete", map[string]interface{}{
		"zone_id":       zoneID,
		"rate_limit_id": rateLimitID,
	}, &id)
	if err != nil {
		return "", err
	}
	return id, nil
}

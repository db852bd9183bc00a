package upstream

import "context"

// ListPageRules returns the page rules of a zone.
func (c *Client) ListPageRules(ctx context.Context, zoneID string) ([]PageRule, error) {
	var rules []PageRule
	err := c.post(ctx, "/cloudflare/pagerules", map[string]interface{}{"zone_id": zoneID}, &rules)
	if err != nil {
		return nil, err
	}
	return rules, nil
}

// CreatePageRule creates a rule in a zone.
func (c *Client) CreatePageRule(ctx context.Context, zoneID string, rule PageRule) (*PageRule, error) {
	var created PageRule
	err := c.post(ctx, "/cloudflare/pagerules/create", map[string]interface{}{
		"zone_id": zoneID,
		"rule":    rule,
	}, &created)
	if err != nil {
		return nil, err
	}
	return &created, nil
}

// UpdatePageRule rewrites an existing rule.
func (c *Client) UpdatePageRule(ctx context.Context, zoneID, ruleID string, rule PageRule) (*PageRule, error) {
	var updated PageRule
	err := c.post(ctx, "/cloudflare/pagerules/update", map[string]interface{}{
		"zone_id": zoneID,
		"rule_id": ruleID,
		"rule":    rule,
	}, &updated)
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// DeletePageRule removes a rule and returns its id.
func (c *Client) DeletePageRule(ctx context.Context, zoneID, ruleID string) (string, error) {
	var id string
	err := c.post(ctx, "/cloudflare/pagerules/delete", map[string]interface{}{
		"zone_id": zoneID,
		"rule_id": ruleID,
	}, &id)
	if err != nil {
		return "", err
	}
	return id, nil
}

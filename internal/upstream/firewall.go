package upstream

import "context"

// ListFirewallRules returns the firewall rules of a zone.
func (c *Client) ListFirewallRules(ctx context.Context, zoneID string) ([]FirewallRule, error) {
	var rules []FirewallRule
	err := c.post(ctx, "/cloudflare/firewall/rules", map[string]interface{}{"zone_id": zoneID}, &rules)
	if err != nil {
		return nil, err
	}
	return rules, nil
}

// CreateFirewallRule creates a rule (and its filter) in a zone.
func (c *Client) CreateFirewallRule(ctx context.Context, zoneID string, rule FirewallRule) (*FirewallRule, error) {
	var created FirewallRule
	err := c.post(ctx, "/cloudflare/firewall/rules/create", map[string]interface{}{
		"zone_id": zoneID,
		"rule":    rule,
	}, &created)
	if err != nil {
		return nil, err
	}
	return &created, nil
}

// UpdateFirewallRule rewrites an existing rule.
func (c *Client) UpdateFirewallRule(ctx context.Context, zoneID, ruleID string, rule FirewallRule) (*FirewallRule, error) {
	var updated FirewallRule
	err := c.post(ctx, "/cloudflare/firewall/rules/update", map[string]interface{}{
		"zone_id": zoneID,
		"rule_id": ruleID,
		"rule":    rule,
	}, &updated)
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// DeleteFirewallRule removes a rule and returns its id.
func (c *Client) DeleteFirewallRule(ctx context.Context, zoneID, ruleID string) (string, error) {
	var id string
	err := c.post(ctx, "/cloudflare/firewall/rules/delete", map[string]interface{}{
		"zone_id": zoneID,
		"rule_id": ruleID,
	}, &id)
	if err != nil {
		return "", err
	}
	return id, nil
}

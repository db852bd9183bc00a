package upstream

import "context"

// ListWafPackages returns the WAF packages of a zone.
func (c *Client) ListWafPackages(ctx context.Context, zoneID string) ([]WafPackage, error) {
	var packages []WafPackage
	err := c.post(ctx, "/cloudflare/waf/packages", map[string]interface{}{"zone_id": zoneID}, &packages)
	if err != nil {
		return nil, err
	}
	return packages, nil
}

// UpdateWafPackage adjusts a package's sensitivity and/or action mode.
// Empty strings leave the corresponding setting unchanged.
func (c *Client) UpdateWafPackage(ctx context.Context, zoneID, packageID, sensitivity, actionMode string) (*WafPackage, error) {
	fields := map[string]interface{}{
		"zone_id":    zoneID,
		"package_id": packageID,
	}
	if sensitivity != "" {
		fields["sensitivity"] = sensitivity
	}
	if actionMode != "" {
		fields["action_mode"] = actionMode
	}
	var pkg WafPackage
	if err := c.post(ctx, "/cloudflare/waf/packages/update", fields, &pkg); err != nil {
		return nil, err
	}
	return &pkg, nil
}

// ListWafRules returns the rules of a WAF package.
func (c *Client) ListWafRules(ctx context.Context, zoneID, packageID string) ([]WafRule, error) {
	var rules []WafRule
	err := c.post(ctx, "/cloudflare/waf/rules", map[string]interface{}{
		"zone_id":    zoneID,
		"package_id": packageID,
	}, &rules)
	if err != nil {
		return nil, err
	}
	return rules, nil
}

// UpdateWafRule sets a rule's mode.
func (c *Client) UpdateWafRule(ctx context.Context, zoneID, packageID, ruleID, mode string) (*WafRule, error) {
	var rule WafRule
	err := c.post(ctx, "/cloudflare/waf/rules/update", map[string]interface{}{
		"zone_id":    zoneID,
		"package_id": packageID,
		"rule_id":    ruleID,
		"mode":       mode,
	}, &rule)
	if err != nil {
		return nil, err
	}
	return &rule, nil
}

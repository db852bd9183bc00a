package upstream

import "context"

// DeployWorker deploys a templated edge script and returns the gateway's
// status message.
func (c *Client) DeployWorker(ctx context.Context, req DeployWorkerRequest) (string, error) {
	var result string
	if err := c.post(ctx, "/cloudflare/workers/deploy", toFields(req), &result); err != nil {
		return "", err
	}
	return result, nil
}

// ListWorkers returns the scripts deployed under a provider account.
func (c *Client) ListWorkers(ctx context.Context, accountID string) ([]Worker, error) {
	var workers []Worker
	err := c.post(ctx, "/cloudflare/workers/list", map[string]interface{}{"account_id": accountID}, &workers)
	if err != nil {
		return nil, err
	}
	return workers, nil
}

// GetWorker fetches a script's source.
func (c *Client) GetWorker(ctx context.Context, accountID, scriptName string) (string, error) {
	var script string
	err := c.post(ctx, "/cloudflare/workers/get", map[string]interface{}{
		"account_id":  accountID,
		"script_name": scriptName,
	}, &script)
	if err != nil {
		return "", err
	}
	return script, nil
}

// DeleteWorker removes a script.
func (c *Client) DeleteWorker(ctx context.Context, accountID, scriptName string) (string, error) {
	var result string
	err := c.post(ctx, "/cloudflare/workers/delete", map[string]interface{}{
		"account_id":  accountID,
		"script_name": scriptName,
	}, &result)
	if err != nil {
		return "", err
	}
	return result, nil
}

// UploadWorker creates or replaces a script's source.
func (c *Client) UploadWorker(ctx context.Context, accountID, scriptName, scriptContent string) (map[string]interface{}, error) {
	var result map[string]interface{}
	err := c.post(ctx, "/cloudflare/workers/upload", map[string]interface{}{
		"account_id":     accountID,
		"script_name":    scriptName,
		"script_content": scriptContent,
	}, &result)
	if err != nil {
		return nil, err
	}
	return result, nil
}

// ListWorkerRoutes returns the routes of a zone.
func (c *Client) ListWorkerRoutes(ctx context.Context, zoneID string) ([]WorkerRoute, error) {
	var routes []WorkerRoute
	err := c.post(ctx, "/cloudflare/workers/routes", map[string]interface{}{"zone_id": zoneID}, &routes)
	if err != nil {
		return nil, err
	}
	return routes, nil
}

// CreateWorkerRoute maps a URL pattern to a script in a zone.
func (c *Client) CreateWorkerRoute(ctx context.Context, zoneID, pattern, scriptName string) (*WorkerRoute, error) {
	var route WorkerRoute
	err := c.post(ctx, "/cloudflare/workers/routes/create", map[string]interface{}{
		"zone_id":     zoneID,
		"pattern":     pattern,
		"script_name": scriptName,
	}, &route)
	if err != nil {
		return nil, err
	}
	return &route, nil
}

// DeleteWorkerRoute removes a route and returns its id.
func (c *Client) DeleteWorkerRoute(ctx context.Context, zoneID, routeID string) (string, error) {
	var id string
	err := c.post(ctx, "/cloudflare/workers/routes/delete", map[string]interface{}{
		"zone_id":  zoneID,
		"route_id": routeID,
	}, &id)
	if err != nil {
		return "", err
	}
	return id, nil
}

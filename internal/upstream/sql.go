package upstream

import "context"

// ListSQLDatabases returns the serverless SQL databases of a provider account.
func (c *Client) ListSQLDatabases(ctx context.Context, accountID string) ([]SQLDatabase, error) {
	var databases []SQLDatabase
	err := c.post(ctx, "/cloudflare/d1/databases", map[string]interface{}{"account_id": accountID}, &databases)
	if err != nil {
		return nil, err
	}
	return databases, nil
}

// CreateSQLDatabase creates a database.
func (c *Client) CreateSQLDatabase(ctx context.Context, accountID, name string) (*SQLDatabase, error) {
	var db SQLDatabase
	err := c.post(ctx, "/cloudflare/d1/databases/create", map[string]interface{}{
		"account_id": accountID,
		"name":       name,
	}, &db)
	if err != nil {
		return nil, err
	}
	return &db, nil
}

// DeleteSQLDatabase removes a database and returns its id.
func (c *Client) DeleteSQLDatabase(ctx context.Context, accountID, databaseID string) (string, error) {
	var id string
	err := c.post(ctx, "/cloudflare/d1/databases/delete", map[string]interface{}{
		"account_id":  accountID,
		"database_id": databaseID,
	}, &id)
	if err != nil {
		return "", err
	}
	return id, nil
}

// ExecuteSQLQuery runs one statement against a database.
func (c *Client) ExecuteSQLQuery(ctx context.Context, accountID, databaseID, query string) (*SQLQueryResult, error) {
	var result SQLQueryResult
	err := c.post(ctx, "/cloudflare/d1/query", map[string]interface{}{
		"account_id":  accountID,
		"database_id": databaseID,
		"query":       query,
	}, &result)
	if err != nil {
		return nil, err
	}
	return &result, nil
}

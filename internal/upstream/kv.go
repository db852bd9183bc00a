package upstream

import "context"

// ListKVNamespaces returns the key-value namespaces of a provider account.
func (c *Client) ListKVNamespaces(ctx context.Context, accountID string) ([]KVNamespace, error) {
	var namespaces []KVNamespace
	err := c.post(ctx, "/cloudflare/kv/namespaces", map[string]interface{}{"account_id": accountID}, &namespaces)
	if err != nil {
		return nil, err
	}
	return namespaces, nil
}

// CreateKVNamespace creates a namespace.
func (c *Client) CreateKVNamespace(ctx context.Context, accountID, title string) (*KVNamespace, error) {
	var ns KVNamespace
	err := c.post(ctx, "/cloudflare/kv/namespaces/create", map[string]interface{}{
		"account_id": accountID,
		"title":      title,
	}, &ns)
	if err != nil {
		return nil, err
	}
	return &ns, nil
}

// DeleteKVNamespace removes a namespace and returns its id.
func (c *Client) DeleteKVNamespace(ctx context.Context, accountID, namespaceID string) (string, error) {
	var id string
	err := c.post(ctx, "/cloudflare/kv/namespaces/delete", map[string]interface{}{
		"account_id":   accountID,
		"namespace_id": namespaceID,
	}, &id)
	if err != nil {
		return "", err
	}
	return id, nil
}

// ListKVKeys lists the keys of a namespace, optionally filtered by prefix.
func (c *Client) ListKVKeys(ctx context.Context, accountID, namespaceID, prefix string) ([]KVKey, error) {
	fields := map[string]interface{}{
		"account_id":   accountID,
		"namespace_id": namespaceID,
	}
	if prefix != "" {
		fields["prefix"] = prefix
	}
	var keys []KVKey
	if err := c.post(ctx, "/cloudflare/kv/keys", fields, &keys); err != nil {
		return nil, err
	}
	return keys, nil
}

// ReadKVValue reads one value.
func (c *Client) ReadKVValue(ctx context.Context, accountID, namespaceID, key string) (string, error) {
	var value string
	err := c.post(ctx, "/cloudflare/kv/read", map[string]interface{}{
		"account_id":   accountID,
		"namespace_id": namespaceID,
		"key":          key,
	}, &value)
	if err != nil {
		return "", err
	}
	return value, nil
}

// WriteKVValue writes one value.
func (c *Client) WriteKVValue(ctx context.Context, req WriteKVRequest) (string, error) {
	var result string
	if err := c.post(ctx, "/cloudflare/kv/write", toFields(req), &result); err != nil {
		return "", err
	}
	return result, nil
}

// DeleteKVKey removes one key.
func (c *Client) DeleteKVKey(ctx context.Context, accountID, namespaceID, key string) (string, error) {
	var result string
	err := c.post(ctx, "/cloudflare/kv/delete", map[string]interface{}{
		"account_id":   accountID,
		"namespace_id": namespaceID,
		"key":          key,
	}, &result)
	if err != nil {
		return "", err
	}
	return result, nil
}

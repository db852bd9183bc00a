package upstream

import "context"

// ListDNSRecords returns the records of a zone.
func (c *Client) ListDNSRecords(ctx context.Context, zoneID string) ([]DNSRecord, error) {
	var records []DNSRecord
	err := c.post(ctx, "/cloudflare/dns/records", map[string]interface{}{"zone_id": zoneID}, &records)
	if err != nil {
		return nil, err
	}
	return records, nil
}

// CreateDNSRecord creates a record in record.ZoneID.
func (c *Client) CreateDNSRecord(ctx context.Context, record DNSRecord) (*DNSRecord, error) {
	var created DNSRecord
	if err := c.post(ctx, "/cloudflare/dns/records/create", toFields(record), &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// UpdateDNSRecord rewrites an existing record in place.
func (c *Client) UpdateDNSRecord(ctx context.Context, record DNSRecord) (*DNSRecord, error) {
	var updated DNSRecord
	if err := c.post(ctx, "/cloudflare/dns/records/update", toFields(record), &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

// DeleteDNSRecord removes a record and returns its id.
func (c *Client) DeleteDNSRecord(ctx context.Context, zoneID, recordID string) (string, error) {
	var id string
	err := c.post(ctx, "/cloudflare/dns/records/delete", map[string]interface{}{
		"zone_id":   zoneID,
		"record_id": recordID,
	}, &id)
	if err != nil {
		return "", err
	}
	return id, nil
}

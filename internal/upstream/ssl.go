package upstream

import "context"

// ListSSLCertificates returns the provider-managed certificate packs of a zone.
func (c *Client) ListSSLCertificates(ctx context.Context, zoneID string) ([]SSLCertificate, error) {
	var certs []SSLCertificate
	err := c.post(ctx, "/cloudflare/ssl/certificates", map[string]interface{}{"zone_id": zoneID}, &certs)
	if err != nil {
		return nil, err
	}
	return certs, nil
}

// ListCustomCertificates returns the operator-uploaded certificates of a zone.
func (c *Client) ListCustomCertificates(ctx context.Context, zoneID string) ([]CustomCertificate, error) {
	var certs []CustomCertificate
	err := c.post(ctx, "/cloudflare/ssl/custom", map[string]interface{}{"zone_id": zoneID}, &certs)
	if err != nil {
		return nil, err
	}
	return certs, nil
}

// UploadCustomCertificate uploads PEM material as a new custom certificate.
func (c *Client) UploadCustomCertificate(ctx context.Context, req UploadCustomCertificateRequest) (*CustomCertificate, error) {
	var cert CustomCertificate
	if err := c.post(ctx, "/cloudflare/ssl/custom/upload", toFields(req), &cert); err != nil {
		return nil, err
	}
	return &cert, nil
}

// DeleteCustomCertificate removes a custom certificate and returns its id.
func (c *Client) DeleteCustomCertificate(ctx context.Context, zoneID, certificateID string) (string, error) {
	var id string
	err := c.post(ctx, "/cloudflare/ssl/custom/delete", map[string]interface{}{
		"zone_id":        zoneID,
		"certificate_id": certificateID,
	}, &id)
	if err != nil {
		return "", err
	}
	return id, nil
}

package upstream

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/edgedeck/edgedeck/internal/account"
)

// staticCreds is a CredentialSource with a fixed answer.
type staticCreds struct {
	creds *account.Credentials
}

func (s staticCreds) CurrentCredentials() *account.Credentials { return s.creds }

func gatewayResponse(data interface{}) string {
	payload, _ := json.Marshal(map[string]interface{}{"success": true, "data": data})
	return string(payload)
}

func TestPostInjectsCredentials(t *testing.T) {
	var captured map[string]interface{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		json.Unmarshal(body, &captured)
		io.WriteString(w, gatewayResponse([]Zone{{ID: "z1", Name: "example.com"}}))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, 0, staticCreds{&account.Credentials{APIToken: "tok-1"}})
	zones, err := client.ListZones(context.Background())
	if err != nil {
		t.Fatalf("ListZones: %v", err)
	}
	if len(zones) != 1 || zones[0].ID != "z1" {
		t.Errorf("unexpected zones: %+v", zones)
	}

	creds, ok := captured["credentials"].(map[string]interface{})
	if !ok {
		t.Fatalf("expected credentials object in body, got %v", captured)
	}
	if creds["apiToken"] != "tok-1" {
		t.Errorf("wrong token injected: %v", creds["apiToken"])
	}
}

func TestPostOmitsCredentialsWhenNoneActive(t *testing.T) {
	var captured map[string]interface{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		json.Unmarshal(body, &captured)
		io.WriteString(w, gatewayResponse([]Zone{}))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, 0, staticCreds{nil})
	if _, err := client.ListZones(context.Background()); err != nil {
		t.Fatalf("ListZones: %v", err)
	}
	if _, present := captured["credentials"]; present {
		t.Error("request must go out unauthenticated when no account is active")
	}
}

func TestPostCallerFieldWinsOnCollision(t *testing.T) {
	var captured map[string]interface{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		json.Unmarshal(body, &captured)
		io.WriteString(w, gatewayResponse(nil))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, 0, staticCreds{&account.Credentials{APIToken: "tok-1"}})
	err := client.post(context.Background(), "/cloudflare/zones", map[string]interface{}{
		"credentials": "caller-supplied",
	}, nil)
	if err != nil {
		t.Fatalf("post: %v", err)
	}
	if captured["credentials"] != "caller-supplied" {
		t.Errorf("caller field must win on key collision, got %v", captured["credentials"])
	}
}

func TestPostSendsCorrectPathAndMethod(t *testing.T) {
	var gotMethod, gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		io.WriteString(w, gatewayResponse([]account.ProviderAccount{{ID: "acct-1", Name: "Acme"}}))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, 0, staticCreds{&account.Credentials{APIToken: "tok-1"}})
	accounts, err := client.ListProviderAccounts(context.Background())
	if err != nil {
		t.Fatalf("ListProviderAccounts: %v", err)
	}
	if gotMethod != http.MethodPost || gotPath != "/cloudflare/accounts" {
		t.Errorf("expected POST /cloudflare/accounts, got %s %s", gotMethod, gotPath)
	}
	if len(accounts) != 1 || accounts[0].ID != "acct-1" || accounts[0].Name != "Acme" {
		t.Errorf("unexpected accounts: %+v", accounts)
	}
}

func TestPostClassifiesEnvelopeFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, `{"success":false,"error":"Invalid token"}`)
	}))
	defer srv.Close()

	client := NewClient(srv.URL, 0, staticCreds{&account.Credentials{APIToken: "bad"}})
	_, err := client.ListZones(context.Background())

	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected *APIError, got %T: %v", err, err)
	}
	if apiErr.Message != msgTokenPermission {
		t.Errorf("auth keyword in envelope error should classify, got %q", apiErr.Message)
	}
	if !apiErr.FeatureLimited {
		t.Error("expected limited flag")
	}
}

func TestPostClassifiesHTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		io.WriteString(w, `{"error":"authentication error"}`)
	}))
	defer srv.Close()

	client := NewClient(srv.URL, 0, staticCreds{&account.Credentials{APIToken: "bad"}})
	_, err := client.ListZones(context.Background())

	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected *APIError, got %T: %v", err, err)
	}
	if apiErr.Status != 403 {
		t.Errorf("expected status 403, got %d", apiErr.Status)
	}
	if apiErr.Message != msgForbidden || !apiErr.FeatureLimited {
		t.Errorf("unexpected classification: %+v", apiErr)
	}
}

func TestPostClassifiesNetworkFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // nothing listening anymore

	client := NewClient(srv.URL, 0, staticCreds{nil})
	_, err := client.ListZones(context.Background())

	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected *APIError, got %T: %v", err, err)
	}
	if apiErr.Status != 0 {
		t.Errorf("no response received, status should be 0, got %d", apiErr.Status)
	}
	if apiErr.Message != msgNetworkFailure {
		t.Errorf("unexpected message: %q", apiErr.Message)
	}
}

func TestPostDecodesDataPayload(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, gatewayResponse(DNSRecord{ID: "r1", Type: "A", Name: "www", Content: "1.2.3.4", TTL: 300}))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, 0, staticCreds{&account.Credentials{APIToken: "tok"}})
	created, err := client.CreateDNSRecord(context.Background(), DNSRecord{Type: "A", Name: "www", Content: "1.2.3.4", TTL: 300})
	if err != nil {
		t.Fatalf("CreateDNSRecord: %v", err)
	}
	if created.ID != "r1" || created.Content != "1.2.3.4" {
		t.Errorf("unexpected record: %+v", created)
	}
}

func TestPostToleratesNullData(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, `{"success":true,"data":null}`)
	}))
	defer srv.Close()

	client := NewClient(srv.URL, 0, staticCreds{nil})
	zones, err := client.ListZones(context.Background())
	if err != nil {
		t.Fatalf("null data should not be an error: %v", err)
	}
	if len(zones) != 0 {
		t.Errorf("expected empty result, got %+v", zones)
	}
}

func TestToFieldsFlattensRequestStructs(t *testing.T) {
	fields := toFields(DNSRecord{Type: "A", Name: "www", Content: "1.2.3.4", TTL: 300})

	if fields["type"] != "A" || fields["name"] != "www" {
		t.Errorf("unexpected fields: %v", fields)
	}
	if _, present := fields["id"]; present {
		t.Error("empty omitempty fields should be dropped")
	}
}

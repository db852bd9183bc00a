package upstream

import (
	"errors"
	"fmt"
	"testing"
)

func TestClassifyNetworkFailure(t *testing.T) {
	cause := errors.New("dial tcp: connection refused")
	apiErr := Classify(cause, 0, nil)

	if apiErr.Message != msgNetworkFailure {
		t.Errorf("unexpected message: %q", apiErr.Message)
	}
	if apiErr.FeatureLimited {
		t.Error("network failure is not a feature limitation")
	}
	if apiErr.Status != 0 {
		t.Errorf("expected status 0, got %d", apiErr.Status)
	}
	if !errors.Is(apiErr, cause) {
		t.Error("cause should be reachable through Unwrap")
	}
}

func TestClassifyForbiddenWithoutPayload(t *testing.T) {
	apiErr := Classify(fmt.Errorf("upstream returned 403"), 403, nil)

	if apiErr.Message != msgForbidden {
		t.Errorf("unexpected message: %q", apiErr.Message)
	}
	if !apiErr.FeatureLimited {
		t.Error("403 is always a feature limitation")
	}
	if apiErr.Status != 403 {
		t.Errorf("expected status 403, got %d", apiErr.Status)
	}
}

func TestClassifyAuthKeywordReplacesMessage(t *testing.T) {
	body := []byte(`{"error":"Invalid token for this zone"}`)
	apiErr := Classify(fmt.Errorf("upstream rejected request"), 500, body)

	if apiErr.Message != msgTokenPermission {
		t.Errorf("auth keyword should swap in the permission guidance, got %q", apiErr.Message)
	}
	if !apiErr.FeatureLimited {
		t.Error("auth keyword should set the limited flag")
	}
}

func TestClassifyLimitKeywordKeepsMessage(t *testing.T) {
	body := []byte(`{"error":"This setting requires an Enterprise plan"}`)
	apiErr := Classify(fmt.Errorf("upstream rejected request"), 500, body)

	if apiErr.Message != "This setting requires an Enterprise plan" {
		t.Errorf("limit keyword must not replace the upstream message, got %q", apiErr.Message)
	}
	if !apiErr.FeatureLimited {
		t.Error("limit keyword should set the limited flag")
	}
}

func TestClassifyStatusOverrideWinsOverKeywords(t *testing.T) {
	body := []byte(`{"error":"Authentication error"}`)
	apiErr := Classify(fmt.Errorf("upstream returned 403"), 403, body)

	if apiErr.Message != msgForbidden {
		t.Errorf("403 override applies after keyword matching, got %q", apiErr.Message)
	}
	if !apiErr.FeatureLimited {
		t.Error("limited flag should survive the override")
	}
}

func TestClassifyPaymentRequired(t *testing.T) {
	apiErr := Classify(fmt.Errorf("upstream returned 402"), 402, []byte(`{"error":"Argo not purchased"}`))

	if apiErr.Message != msgPaymentNeeded {
		t.Errorf("unexpected message: %q", apiErr.Message)
	}
	if !apiErr.FeatureLimited {
		t.Error("402 is always a feature limitation")
	}
}

func TestClassifyBadRequestWithoutStructuredError(t *testing.T) {
	apiErr := Classify(fmt.Errorf("upstream returned 400"), 400, []byte(`<html>bad gateway page</html>`))

	if apiErr.Message != msgBadRequest {
		t.Errorf("unexpected message: %q", apiErr.Message)
	}
	if apiErr.FeatureLimited {
		t.Error("plain 400 is the caller's fault, not a limitation")
	}
}

func TestClassifyBadRequestKeepsStructuredError(t *testing.T) {
	apiErr := Classify(fmt.Errorf("upstream returned 400"), 400, []byte(`{"error":"zone_id is required"}`))

	if apiErr.Message != "zone_id is required" {
		t.Errorf("structured 400 error should pass through, got %q", apiErr.Message)
	}
	if apiErr.FeatureLimited {
		t.Error("validation error is not a limitation")
	}
}

func TestClassifyTokenTypeLimitation(t *testing.T) {
	body := []byte(`{"error":"This endpoint does not support account owned tokens"}`)
	apiErr := Classify(fmt.Errorf("upstream rejected request"), 500, body)

	if !apiErr.FeatureLimited {
		t.Error("token-type rejection should set the limited flag")
	}
	if apiErr.Message != "This endpoint does not support account owned tokens" {
		t.Errorf("message should pass through, got %q", apiErr.Message)
	}
}

func TestClassifyIsDeterministic(t *testing.T) {
	body := []byte(`{"error":"Authentication failed"}`)
	first := Classify(fmt.Errorf("x"), 500, body)
	second := Classify(fmt.Errorf("x"), 500, body)

	if first.Message != second.Message ||
		first.FeatureLimited != second.FeatureLimited ||
		first.Status != second.Status {
		t.Errorf("identical inputs classified differently: %+v vs %+v", first, second)
	}
}

func TestAPIErrorErrorString(t *testing.T) {
	apiErr := &APIError{Message: "boom"}
	if apiErr.Error() != "boom" {
		t.Errorf("Error() should return the display message, got %q", apiErr.Error())
	}
}

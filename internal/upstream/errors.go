package upstream

import (
	"encoding/json"
	"strings"
)

// APIError is the one error shape pipeline callers handle: a display-ready
// message, a flag telling the UI the failure is a plan/token limitation
// rather than a bad request, the HTTP status when a response was received,
// and the original failure for diagnostics.
type APIError struct {
	Message        string
	FeatureLimited bool
	Status         int // 0 when no response was received
	Cause          error
}

func (e *APIError) Error() string { return e.Message }

func (e *APIError) Unwrap() error { return e.Cause }

// Display messages for the fixed classification outcomes.
const (
	msgNetworkFailure = "Network request failed. Please check your connection."
	msgBadRequest     = "Invalid request parameters."
	msgForbidden      = "Insufficient permission or feature not authorized."
	msgPaymentNeeded  = "This feature requires a paid plan."

	msgTokenPermission = "API token lacks the required permissions. Make sure your token includes the permissions needed.\n\n" +
		"Common permission issues:\n" +
		"• Workers KV: needs \"Workers KV Storage - Edit\"\n" +
		"• SQL databases: needs \"D1 - Edit\"\n" +
		"• Worker management: needs \"Workers Scripts - Edit\"\n\n" +
		"Visit your provider dashboard > Profile > API Tokens to update the token."
)

// Substring markers (matched case-insensitively) that identify a rejected or
// under-scoped token in upstream error text. The numeric marker is the
// provider's "authentication error" code as it appears in proxied payloads.
var authErrorKeywords = []string{
	"authentication error",
	`code": number(10000)`,
	"authentication failed",
	"invalid token",
	"unauthorized",
}

// Markers for failures caused by plan tier or token type rather than the
// request itself.
var limitKeywords = []string{
	"entitlement",
	"subscription",
	"plan",
	"upgrade",
	"feature not available",
	"not entitled",
	"requires a paid plan",
	"only available to",
	"custom certificate",
	"does not support account owned tokens",
	"user token required",
	"token type not supported",
}

// errorPayload is the slice of the upstream body the classifier inspects.
type errorPayload struct {
	Error string `json:"error"`
}

// Classify maps a raw upstream failure into an APIError. Inputs: the
// transport-level cause (nil when a response arrived), the HTTP status
// (0 when none), and the raw response body (nil when none).
//
// Order: a missing response is a connectivity failure; an application error
// payload is matched against the auth keywords (which replace the message)
// and independently against the limit keywords (which only set the flag);
// finally the 403/402/400 status overrides are applied and may replace the
// message again. Pure function: identical inputs always classify identically.
func Classify(cause error, status int, body []byte) *APIError {
	out := &APIError{
		Message: "Request failed.",
		Status:  status,
		Cause:   cause,
	}

	if status == 0 && body == nil {
		out.Message = msgNetworkFailure
		return out
	}

	var payload errorPayload
	hasStructuredError := false
	if len(body) > 0 {
		if err := json.Unmarshal(body, &payload); err == nil && payload.Error != "" {
			hasStructuredError = true
			out.Message = payload.Error
			lower := strings.ToLower(payload.Error)

			for _, kw := range authErrorKeywords {
				if strings.Contains(lower, kw) {
					out.Message = msgTokenPermission
					out.FeatureLimited = true
					break
				}
			}
			for _, kw := range limitKeywords {
				if strings.Contains(lower, kw) {
					out.FeatureLimited = true
					break
				}
			}
		}
	}

	switch {
	case status == 403:
		out.Message = msgForbidden
		out.FeatureLimited = true
	case status == 402:
		out.Message = msgPaymentNeeded
		out.FeatureLimited = true
	case status == 400 && !hasStructuredError:
		out.Message = msgBadRequest
	}

	return out
}

package upstream

// Wire types for the provider gateway. Field names follow the gateway's JSON
// contract exactly; optional fields are omitted when empty.

// Zone is one DNS zone on the provider.
type Zone struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Status      string   `json:"status"`
	NameServers []string `json:"name_servers"`
}

// DNSRecord is a single record in a zone.
type DNSRecord struct {
	ID       string `json:"id,omitempty"`
	ZoneID   string `json:"zone_id,omitempty"`
	Type     string `json:"type"`
	Name     string `json:"name"`
	Content  string `json:"content"`
	TTL      int    `json:"ttl"`
	Proxied  bool   `json:"proxied"`
	Priority *int   `json:"priority,omitempty"`
}

// FirewallFilter is the expression half of a firewall rule.
type FirewallFilter struct {
	ID          string `json:"id,omitempty"`
	Expression  string `json:"expression"`
	Description string `json:"description,omitempty"`
}

// FirewallRule pairs a filter with an action.
type FirewallRule struct {
	ID          string         `json:"id,omitempty"`
	Filter      FirewallFilter `json:"filter"`
	Action      string         `json:"action"`
	Description string         `json:"description,omitempty"`
	Paused      bool           `json:"paused"`
}

// DeployWorkerRequest describes a templated edge-script deployment.
type DeployWorkerRequest struct {
	ZoneID       string `json:"zone_id"`
	ScriptName   string `json:"script_name"`
	TargetURL    string `json:"target_url"`
	AccessDomain string `json:"access_domain"`
	CacheTTL     int    `json:"cache_ttl"`
	CDNNode      string `json:"cdn_node"`
}

// Worker is one deployed edge-compute script.
type Worker struct {
	ID         string `json:"id"`
	Etag       string `json:"etag,omitempty"`
	CreatedOn  string `json:"created_on,omitempty"`
	ModifiedOn string `json:"modified_on,omitempty"`
}

// WorkerRoute maps a URL pattern to a script.
type WorkerRoute struct {
	ID      string `json:"id"`
	Pattern string `json:"pattern"`
	Script  string `json:"script,omitempty"`
}

// ZoneSetting is a single zone configuration knob.
type ZoneSetting struct {
	ID         string      `json:"id"`
	Value      interface{} `json:"value"`
	ModifiedOn string      `json:"modified_on,omitempty"`
}

// UpdateSetting is the write shape for one zone setting.
type UpdateSetting struct {
	ID    string      `json:"id"`
	Value interface{} `json:"value"`
}

// OptimizeMode selects which preset OptimizeZone applies.
type OptimizeMode string

const (
	OptimizeSecurity    OptimizeMode = "security"
	OptimizePerformance OptimizeMode = "performance"
)

// AnalyticsStats is the aggregate block of an analytics query.
type AnalyticsStats struct {
	TotalRequests int64   `json:"totalRequests"`
	CacheHitRate  float64 `json:"cacheHitRate"`
	Bandwidth     int64   `json:"bandwidth"`
	Threats       int64   `json:"threats"`
}

// TimeseriesPoint is one bucket of the analytics timeseries.
type TimeseriesPoint struct {
	Timestamp string `json:"timestamp"`
	Requests  int64  `json:"requests"`
	Cached    int64  `json:"cached"`
	Uncached  int64  `json:"uncached"`
}

// StatusCodeStat is the per-status-code breakdown.
type StatusCodeStat struct {
	Code        string  `json:"code"`
	Description string  `json:"description"`
	Count       int64   `json:"count"`
	Percentage  float64 `json:"percentage"`
}

// CountryStat is the per-country breakdown.
type CountryStat struct {
	Rank       int     `json:"rank"`
	Country    string  `json:"country"`
	Requests   int64   `json:"requests"`
	Percentage float64 `json:"percentage"`
}

// ContentStat is the per-URL breakdown.
type ContentStat struct {
	Rank      int    `json:"rank"`
	URL       string `json:"url"`
	Requests  int64  `json:"requests"`
	Bandwidth string `json:"bandwidth"`
}

// AnalyticsData is the full analytics query result.
type AnalyticsData struct {
	Stats       AnalyticsStats    `json:"stats"`
	Timeseries  []TimeseriesPoint `json:"timeseries"`
	StatusCodes []StatusCodeStat  `json:"statusCodes"`
	Countries   []CountryStat     `json:"countries"`
	Content     []ContentStat     `json:"content"`
}

// PurgeCacheRequest selects what to purge: everything, specific files, or
// tagged objects.
type PurgeCacheRequest struct {
	ZoneID          string   `json:"zone_id"`
	PurgeEverything bool     `json:"purge_everything,omitempty"`
	Files           []string `json:"files,omitempty"`
	Tags            []string `json:"tags,omitempty"`
}

// PurgeCacheResponse carries the purge operation id.
type PurgeCacheResponse struct {
	ID string `json:"id"`
}

// CertificateDetail is one certificate inside a pack.
type CertificateDetail struct {
	ID           string `json:"id"`
	Status       string `json:"status"`
	Issuer       string `json:"issuer"`
	Signature    string `json:"signature"`
	SerialNumber string `json:"serial_number"`
	ExpiresOn    string `json:"expires_on"`
	UploadedOn   string `json:"uploaded_on"`
}

// SSLCertificate is a provider-managed certificate pack.
type SSLCertificate struct {
	ID                 string              `json:"id"`
	Type               string              `json:"type"`
	Status             string              `json:"status"`
	PrimaryCertificate string              `json:"primary_certificate,omitempty"`
	Certificates       []CertificateDetail `json:"certificates,omitempty"`
	Hosts              []string            `json:"hosts,omitempty"`
}

// CustomCertificate is an operator-uploaded certificate.
type CustomCertificate struct {
	ID           string   `json:"id"`
	Status       string   `json:"status"`
	Issuer       string   `json:"issuer"`
	Signature    string   `json:"signature"`
	ExpiresOn    string   `json:"expires_on"`
	UploadedOn   string   `json:"uploaded_on"`
	ModifiedOn   string   `json:"modified_on"`
	Hosts        []string `json:"hosts"`
	BundleMethod string   `json:"bundle_method,omitempty"`
}

// UploadCustomCertificateRequest carries PEM material for a new custom cert.
type UploadCustomCertificateRequest struct {
	ZoneID       string `json:"zone_id"`
	Certificate  string `json:"certificate"`
	PrivateKey   string `json:"private_key"`
	BundleMethod string `json:"bundle_method,omitempty"` // ubiquitous, optimal, force
}

// PageRuleConstraint is the URL match half of a page-rule target.
type PageRuleConstraint struct {
	Operator string `json:"operator"` // "matches"
	Value    string `json:"value"`
}

// PageRuleTarget is what a page rule applies to.
type PageRuleTarget struct {
	Target     string             `json:"target"` // "url"
	Constraint PageRuleConstraint `json:"constraint"`
}

// PageRuleAction is one setting a page rule applies.
type PageRuleAction struct {
	ID    string      `json:"id"`
	Value interface{} `json:"value,omitempty"`
}

// PageRule is one URL-pattern rule.
type PageRule struct {
	ID       string           `json:"id,omitempty"`
	Targets  []PageRuleTarget `json:"targets"`
	Actions  []PageRuleAction `json:"actions"`
	Priority int              `json:"priority,omitempty"`
	Status   string           `json:"status,omitempty"`
}

// WafPackage is a managed WAF ruleset.
type WafPackage struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Description   string `json:"description"`
	DetectionMode string `json:"detection_mode"`
	Sensitivity   string `json:"sensitivity,omitempty"`
	ActionMode    string `json:"action_mode,omitempty"`
}

// WafRuleGroup identifies the group a WAF rule belongs to.
type WafRuleGroup struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// WafRule is one rule inside a WAF package.
type WafRule struct {
	ID           string       `json:"id"`
	Description  string       `json:"description"`
	Priority     string       `json:"priority"`
	Group        WafRuleGroup `json:"group"`
	Mode         string       `json:"mode"`
	AllowedModes []string     `json:"allowed_modes"`
}

// MatchRequest is the traffic selector of a rate limit.
type MatchRequest struct {
	URL     string   `json:"url"`
	Methods []string `json:"methods,omitempty"`
	Schemes []string `json:"schemes,omitempty"`
}

// RateLimitResponse is the custom body served when a limit triggers.
type RateLimitResponse struct {
	ContentType string `json:"content_type"`
	Body        string `json:"body"`
}

// RateLimitAction is what happens when the threshold is exceeded.
type RateLimitAction struct {
	Mode     string             `json:"mode"` // simulate, ban, challenge, js_challenge
	Timeout  int                `json:"timeout,omitempty"`
	Response *RateLimitResponse `json:"response,omitempty"`
}

// RateLimit is one rate-limiting rule.
type RateLimit struct {
	ID           string          `json:"id"`
	Disabled     bool            `json:"disabled"`
	Description  string          `json:"description"`
	MatchRequest MatchRequest    `json:"match_request"`
	Threshold    int             `json:"threshold"`
	Period       int             `json:"period"`
	Action       RateLimitAction `json:"action"`
}

// CreateRateLimitRequest is the write shape for a new or updated rate limit.
type CreateRateLimitRequest struct {
	ZoneID       string          `json:"zone_id"`
	Disabled     bool            `json:"disabled"`
	Description  string          `json:"description"`
	MatchRequest MatchRequest    `json:"match_request"`
	Threshold    int             `json:"threshold"`
	Period       int             `json:"period"`
	Action       RateLimitAction `json:"action"`
}

// KVNamespace is one key-value storage namespace.
type KVNamespace struct {
	ID                  string `json:"id"`
	Title               string `json:"title"`
	SupportsURLEncoding bool   `json:"supports_url_encoding,omitempty"`
}

// KVKey is one key listed in a namespace.
type KVKey struct {
	Name       string      `json:"name"`
	Expiration int64       `json:"expiration,omitempty"`
	Metadata   interface{} `json:"metadata,omitempty"`
}

// WriteKVRequest writes one value into a namespace.
type WriteKVRequest struct {
	AccountID     string      `json:"account_id"`
	NamespaceID   string      `json:"namespace_id"`
	Key           string      `json:"key"`
	Value         string      `json:"value"`
	ExpirationTTL int64       `json:"expiration_ttl,omitempty"`
	Metadata      interface{} `json:"metadata,omitempty"`
}

// SQLDatabase is one serverless SQL database.
type SQLDatabase struct {
	UUID      string `json:"uuid"`
	Name      string `json:"name"`
	Version   string `json:"version"`
	CreatedAt string `json:"created_at"`
}

// SQLQueryMeta carries execution statistics for a query.
type SQLQueryMeta struct {
	ChangedDB   bool    `json:"changed_db"`
	Changes     int64   `json:"changes"`
	Duration    float64 `json:"duration"`
	LastRowID   int64   `json:"last_row_id"`
	RowsRead    int64   `json:"rows_read"`
	RowsWritten int64   `json:"rows_written"`
	SizeAfter   int64   `json:"size_after"`
}

// SQLQueryResult is the result set of one query.
type SQLQueryResult struct {
	Results []map[string]interface{} `json:"results"`
	Success bool                     `json:"success"`
	Meta    SQLQueryMeta             `json:"meta"`
}

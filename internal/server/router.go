package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/edgedeck/edgedeck/internal/account"
	"github.com/edgedeck/edgedeck/internal/history"
	"github.com/edgedeck/edgedeck/internal/logging"
	"github.com/edgedeck/edgedeck/internal/upstream"
	"github.com/edgedeck/edgedeck/internal/version"
)

// requestID attaches a request id to the context and echoes it back so the
// UI can correlate its calls with daemon logs.
func requestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := GetOrGenerateRequestID(r)
		w.Header().Set("X-Request-ID", id)
		next.ServeHTTP(w, r.WithContext(logging.WithRequestID(r.Context(), id)))
	})
}

// New builds the console router.
func New(store *account.Store, client *upstream.Client, logger *history.Logger) *chi.Mux {
	r := chi.NewRouter()
	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)
	r.Use(requestID)

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		writeData(w, map[string]string{"status": "ok", "version": version.Version})
	})

	r.Route("/api", func(r chi.Router) {
		// Account management (the credential store surface)
		r.Get("/accounts", ListAccountsHandler(store))
		r.Post("/accounts", AddAccountHandler(store))
		r.Put("/accounts/{id}", UpdateAccountHandler(store))
		r.Put("/accounts/{id}/token", UpdateTokenHandler(store))
		r.Delete("/accounts/{id}", RemoveAccountHandler(store))
		r.Post("/accounts/{id}/activate", SwitchAccountHandler(store))

		// Operation history
		r.Get("/history", HistoryHandler(logger))
		r.Delete("/history", ClearHistoryHandler(logger))

		// Provider passthrough: same surface the UI spoke before, every
		// call routed through the credential-injecting pipeline.
		r.Route("/cloudflare", func(r chi.Router) {
			r.Post("/zones", ZonesHandler(client))

			r.Post("/dns/records", DNSRecordsHandler(client))
			r.Post("/dns/records/create", CreateDNSRecordHandler(client, logger))
			r.Post("/dns/records/update", UpdateDNSRecordHandler(client, logger))
			r.Post("/dns/records/delete", DeleteDNSRecordHandler(client, logger))

			r.Post("/firewall/rules", FirewallRulesHandler(client))
			r.Post("/firewall/rules/create", CreateFirewallRuleHandler(client, logger))
			r.Post("/firewall/rules/update", UpdateFirewallRuleHandler(client, logger))
			r.Post("/firewall/rules/delete", DeleteFirewallRuleHandler(client, logger))

			r.Post("/workers/deploy", DeployWorkerHandler(client, logger))
			r.Post("/workers/list", ListWorkersHandler(client))
			r.Post("/workers/get", GetWorkerHandler(client))
			r.Post("/workers/delete", DeleteWorkerHandler(client, logger))
			r.Post("/workers/upload", UploadWorkerHandler(client, logger))
			r.Post("/workers/routes", WorkerRoutesHandler(client))
			r.Post("/workers/routes/create", CreateWorkerRouteHandler(client, logger))
			r.Post("/workers/routes/delete", DeleteWorkerRouteHandler(client, logger))

			r.Post("/zone/settings", ZoneSettingsHandler(client))
			r.Post("/zone/settings/update", UpdateZoneSettingsHandler(client, logger))
			r.Post("/zone/optimize", OptimizeZoneHandler(client, logger))

			r.Post("/analytics", AnalyticsHandler(client))
			r.Post("/cache/purge", PurgeCacheHandler(client, logger))

			r.Post("/ssl/certificates", SSLCertificatesHandler(client))
			r.Post("/ssl/custom", CustomCertificatesHandler(client))
			r.Post("/ssl/custom/upload", UploadCustomCertificateHandler(client, logger))
			r.Post("/ssl/custom/delete", DeleteCustomCertificateHandler(client, logger))

			r.Post("/pagerules", PageRulesHandler(client))
			r.Post("/pagerules/create", CreatePageRuleHandler(client, logger))
			r.Post("/pagerules/update", UpdatePageRuleHandler(client, logger))
			r.Post("/pagerules/delete", DeletePageRuleHandler(client, logger))

			r.Post("/waf/packages", WafPackagesHandler(client))
			r.Post("/waf/packages/update", UpdateWafPackageHandler(client, logger))
			r.Post("/waf/rules", WafRulesHandler(client))
			r.Post("/waf/rules/update", UpdateWafRuleHandler(client, logger))

			r.Post("/ratelimits", RateLimitsHandler(client))
			r.Post("/ratelimits/create", CreateRateLimitHandler(client, logger))
			r.Post("/ratelimits/update", UpdateRateLimitHandler(client, logger))
			r.Post("/ratelimits/delete", DeleteRateLimitHandler(client, logger))

			r.Post("/kv/namespaces", KVNamespacesHandler(client))
			r.Post("/kv/namespaces/create", CreateKVNamespaceHandler(client, logger))
			r.Post("/kv/namespaces/delete", DeleteKVNamespaceHandler(client, logger))
			r.Post("/kv/keys", KVKeysHandler(client))
			r.Post("/kv/read", ReadKVHandler(client))
			r.Post("/kv/write", WriteKVHandler(client, logger))
			r.Post("/kv/delete", DeleteKVKeyHandler(client, logger))

			r.Post("/d1/databases", SQLDatabasesHandler(client))
			r.Post("/d1/databases/create", CreateSQLDatabaseHandler(client, logger))
			r.Post("/d1/databases/delete", DeleteSQLDatabaseHandler(client, logger))
			r.Post("/d1/query", SQLQueryHandler(client, logger))
		})
	})

	return r
}

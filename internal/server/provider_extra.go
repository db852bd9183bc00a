package server

import (
	"fmt"
	"net/http"

	"github.com/edgedeck/edgedeck/internal/history"
	"github.com/edgedeck/edgedeck/internal/upstream"
)

// ===== Page rules =====

func PageRulesHandler(client *upstream.Client) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req zoneScopedRequest
		if err := decode(r, &req); err != nil {
			writeBadRequest(w, err)
			return
		}
		rules, err := client.ListPageRules(r.Context(), req.ZoneID)
		if err != nil {
			writeError(w, err)
			return
		}
		writeData(w, rules)
	}
}

func CreatePageRuleHandler(client *upstream.Client, logger *history.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			ZoneID string            `json:"zone_id"`
			Rule   upstream.PageRule `json:"rule"`
		}
		if err := decode(r, &req); err != nil {
			writeBadRequest(w, err)
			return
		}
		created, err := client.CreatePageRule(r.Context(), req.ZoneID, req.Rule)
		logOp(logger, "pagerule", "create", "Create page rule", err)
		if err != nil {
			writeError(w, err)
			return
		}
		writeData(w, created)
	}
}

func UpdatePageRuleHandler(client *upstream.Client, logger *history.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			ZoneID string            `json:"zone_id"`
			RuleID string            `json:"rule_id"`
			Rule   upstream.PageRule `json:"rule"`
		}
		if err := decode(r, &req); err != nil {
			writeBadRequest(w, err)
			return
		}
		updated, err := client.UpdatePageRule(r.Context(), req.ZoneID, req.RuleID, req.Rule)
		logOp(logger, "pagerule", "update", fmt.Sprintf("Update page rule %s", req.RuleID), err)
		if err != nil {
			writeError(w, err)
			return
		}
		writeData(w, updated)
	}
}

func DeletePageRuleHandler(client *upstream.Client, logger *history.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			ZoneID string `json:"zone_id"`
			RuleID string `json:"rule_id"`
		}
		if err := decode(r, &req); err != nil {
			writeBadRequest(w, err)
			return
		}
		id, err := client.DeletePageRule(r.Context(), req.ZoneID, req.RuleID)
		logOp(logger, "pagerule", "delete", fmt.Sprintf("Delete page rule %s", req.RuleID), err)
		if err != nil {
			writeError(w, err)
			return
		}
		writeData(w, id)
	}
}

// ===== WAF =====

func WafPackagesHandler(client *upstream.Client) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req zoneScopedRequest
		if err := decode(r, &req); err != nil {
			writeBadRequest(w, err)
			return
		}
		packages, err := client.ListWafPackages(r.Context(), req.ZoneID)
		if err != nil {
			writeError(w, err)
			return
		}
		writeData(w, packages)
	}
}

func UpdateWafPackageHandler(client *upstream.Client, logger *history.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			ZoneID      string `json:"zone_id"`
			PackageID   string `json:"package_id"`
			Sensitivity string `json:"sensitivity"`
			ActionMode  string `json:"action_mode"`
		}
		if err := decode(r, &req); err != nil {
			writeBadRequest(w, err)
			return
		}
		pkg, err := client.UpdateWafPackage(r.Context(), req.ZoneID, req.PackageID, req.Sensitivity, req.ActionMode)
		logOp(logger, "waf", "package-update", fmt.Sprintf("Update WAF package %s", req.PackageID), err)
		if err != nil {
			writeError(w, err)
			return
		}
		writeData(w, pkg)
	}
}

func WafRulesHandler(client *upstream.Client) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			ZoneID    string `json:"zone_id"`
			PackageID string `json:"package_id"`
		}
		if err := decode(r, &req); err != nil {
			writeBadRequest(w, err)
			return
		}
		rules, err := client.ListWafRules(r.Context(), req.ZoneID, req.PackageID)
		if err != nil {
			writeError(w, err)
			return
		}
		writeData(w, rules)
	}
}

func UpdateWafRuleHandler(client *upstream.Client, logger *history.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			ZoneID    string `json:"zone_id"`
			PackageID string `json:"package_id"`
			RuleID    string `json:"rule_id"`
			Mode      string `json:"mode"`
		}
		if err := decode(r, &req); err != nil {
			writeBadRequest(w, err)
			return
		}
		rule, err := client.UpdateWafRule(r.Context(), req.ZoneID, req.PackageID, req.RuleID, req.Mode)
		logOp(logger, "waf", "rule-update", fmt.Sprintf("Set rule %s to %s", req.RuleID, req.Mode), err)
		if err != nil {
			writeError(w, err)
			return
		}
		writeData(w, rule)
	}
}

// ===== Rate limits =====

func RateLimitsHandler(client *upstream.Client) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req zoneScopedRequest
		if err := decode(r, &req); err != nil {
			writeBadRequest(w, err)
			return
		}
		limits, err := client.ListRateLimits(r.Context(), req.ZoneID)
		if err != nil {
			writeError(w, err)
			return
		}
		writeData(w, limits)
	}
}

func CreateRateLimitHandler(client *upstream.Client, logger *history.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req upstream.CreateRateLimitRequest
		if err := decode(r, &req); err != nil {
			writeBadRequest(w, err)
			return
		}
		limit, err := client.CreateRateLimit(r.Context(), req)
		logOp(logger, "ratelimit", "create", fmt.Sprintf("Create rate limit for %s", req.MatchRequest.URL), err)
		if err != nil {
			writeError(w, err)
			return
		}
		writeData(w, limit)
	}
}

func UpdateRateLimitHandler(client *upstream.Client, logger *history.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			ZoneID      string `json:"zone_id"`
			RateLimitID string `json:"rate_limit_id"`
			upstream.CreateRateLimitRequest
		}
		if err := decode(r, &req); err != nil {
			writeBadRequest(w, err)
			return
		}
		limit, err := client.UpdateRateLimit(r.Context(), req.ZoneID, req.RateLimitID, req.CreateRateLimitRequest)
		logOp(logger, "ratelimit", "update", fmt.Sprintf("Update rate limit %s", req.RateLimitID), err)
		if err != nil {
			writeError(w, err)
			return
		}
		writeData(w, limit)
	}
}

func DeleteRateLimitHandler(client *upstream.Client, logger *history.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			ZoneID      string `json:"zone_id"`
			RateLimitID string `json:"rate_limit_id"`
		}
		if err := decode(r, &req); err != nil {
			writeBadRequest(w, err)
			return
		}
		id, err := client.DeleteRateLimit(r.Context(), req.ZoneID, req.RateLimitID)
		logOp(logger, "ratelimit", "delete", fmt.Sprintf("Delete rate limit %s", req.RateLimitID), err)
		if err != nil {
			writeError(w, err)
			return
		}
		writeData(w, id)
	}
}

// ===== KV =====

func KVNamespacesHandler(client *upstream.Client) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req accountScopedRequest
		if err := decode(r, &req); err != nil {
			writeBadRequest(w, err)
			return
		}
		namespaces, err := client.ListKVNamespaces(r.Context(), req.AccountID)
		if err != nil {
			writeError(w, err)
			return
		}
		writeData(w, namespaces)
	}
}

func CreateKVNamespaceHandler(client *upstream.Client, logger *history.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			AccountID string `json:"account_id"`
			Title     string `json:"title"`
		}
		if err := decode(r, &req); err != nil {
			writeBadRequest(w, err)
			return
		}
		ns, err := client.CreateKVNamespace(r.Context(), req.AccountID, req.Title)
		logOp(logger, "kv", "namespace-create", fmt.Sprintf("Create namespace %s", req.Title), err)
		if err != nil {
			writeError(w, err)
			return
		}
		writeData(w, ns)
	}
}

func DeleteKVNamespaceHandler(client *upstream.Client, logger *history.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			AccountID   string `json:"account_id"`
			NamespaceID string `json:"namespace_id"`
		}
		if err := decode(r, &req); err != nil {
			writeBadRequest(w, err)
			return
		}
		id, err := client.DeleteKVNamespace(r.Context(), req.AccountID, req.NamespaceID)
		logOp(logger, "kv", "namespace-delete", fmt.Sprintf("Delete namespace %s", req.NamespaceID), err)
		if err != nil {
			writeError(w, err)
			return
		}
		writeData(w, id)
	}
}

func KVKeysHandler(client *upstream.Client) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			AccountID   string `json:"account_id"`
			NamespaceID string `json:"namespace_id"`
			Prefix      string `json:"prefix"`
		}
		if err := decode(r, &req); err != nil {
			writeBadRequest(w, err)
			return
		}
		keys, err := client.ListKVKeys(r.Context(), req.AccountID, req.NamespaceID, req.Prefix)
		if err != nil {
			writeError(w, err)
			return
		}
		writeData(w, keys)
	}
}

func ReadKVHandler(client *upstream.Client) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			AccountID   string `json:"account_id"`
			NamespaceID string `json:"namespace_id"`
			Key         string `json:"key"`
		}
		if err := decode(r, &req); err != nil {
			writeBadRequest(w, err)
			return
		}
		value, err := client.ReadKVValue(r.Context(), req.AccountID, req.NamespaceID, req.Key)
		if err != nil {
			writeError(w, err)
			return
		}
		writeData(w, value)
	}
}

func WriteKVHandler(client *upstream.Client, logger *history.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req upstream.WriteKVRequest
		if err := decode(r, &req); err != nil {
			writeBadRequest(w, err)
			return
		}
		result, err := client.WriteKVValue(r.Context(), req)
		logOp(logger, "kv", "write", fmt.Sprintf("Write key %s", req.Key), err)
		if err != nil {
			writeError(w, err)
			return
		}
		writeData(w, result)
	}
}

func DeleteKVKeyHandler(client *upstream.Client, logger *history.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			AccountID   string `json:"account_id"`
			NamespaceID string `json:"namespace_id"`
			Key         string `json:"key"`
		}
		if err := decode(r, &req); err != nil {
			writeBadRequest(w, err)
			return
		}
		result, err := client.DeleteKVKey(r.Context(), req.AccountID, req.NamespaceID, req.Key)
		logOp(logger, "kv", "delete", fmt.Sprintf("Delete key %s", req.Key), err)
		if err != nil {
			writeError(w, err)
			return
		}
		writeData(w, result)
	}
}

// ===== SQL databases =====

func SQLDatabasesHandler(client *upstream.Client) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req accountScopedRequest
		if err := decode(r, &req); err != nil {
			writeBadRequest(w, err)
			return
		}
		databases, err := client.ListSQLDatabases(r.Context(), req.AccountID)
		if err != nil {
			writeError(w, err)
			return
		}
		writeData(w, databases)
	}
}

func CreateSQLDatabaseHandler(client *upstream.Client, logger *history.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			AccountID string `json:"account_id"`
			Name      string `json:"name"`
		}
		if err := decode(r, &req); err != nil {
			writeBadRequest(w, err)
			return
		}
		db, err := client.CreateSQLDatabase(r.Context(), req.AccountID, req.Name)
		logOp(logger, "sql", "create", fmt.Sprintf("Create database %s", req.Name), err)
		if err != nil {
			writeError(w, err)
			return
		}
		writeData(w, db)
	}
}

func DeleteSQLDatabaseHandler(client *upstream.Client, logger *history.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			AccountID  string `json:"account_id"`
			DatabaseID string `json:"database_id"`
		}
		if err := decode(r, &req); err != nil {
			writeBadRequest(w, err)
			return
		}
		id, err := client.DeleteSQLDatabase(r.Context(), req.AccountID, req.DatabaseID)
		logOp(logger, "sql", "delete", fmt.Sprintf("Delete database %s", req.DatabaseID), err)
		if err != nil {
			writeError(w, err)
			return
		}
		writeData(w, id)
	}
}

func SQLQueryHandler(client *upstream.Client, logger *history.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			AccountID  string `json:"account_id"`
			DatabaseID string `json:"database_id"`
			Query      string `json:"query"`
		}
		if err := decode(r, &req); err != nil {
			writeBadRequest(w, err)
			return
		}
		result, err := client.ExecuteSQLQuery(r.Context(), req.AccountID, req.DatabaseID, req.Query)
		logOp(logger, "sql", "query", fmt.Sprintf("Query database %s", req.DatabaseID), err)
		if err != nil {
			writeError(w, err)
			return
		}
		writeData(w, result)
	}
}

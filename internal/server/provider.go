package server

import (
	"fmt"
	"net/http"

	"github.com/edgedeck/edgedeck/internal/history"
	"github.com/edgedeck/edgedeck/internal/upstream"
)

// logOp records a settled mutating operation in the history log. Reads are
// not logged; that mirrors what the console UI audits.
func logOp(logger *history.Logger, opType, action, description string, err error) {
	status := "success"
	if err != nil {
		status = "error"
	}
	logger.Log(history.Item{
		Type:        opType,
		Action:      action,
		Description: description,
		Status:      status,
	})
}

type zoneScopedRequest struct {
	ZoneID string `json:"zone_id"`
}

type accountScopedRequest struct {
	AccountID string `json:"account_id"`
}

// ZonesHandler lists the zones visible to the active token.
func ZonesHandler(client *upstream.Client) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		zones, err := client.ListZones(r.Context())
		if err != nil {
			writeError(w, err)
			return
		}
		writeData(w, zones)
	}
}

// ===== DNS =====

func DNSRecordsHandler(client *upstream.Client) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req zoneScopedRequest
		if err := decode(r, &req); err != nil {
			writeBadRequest(w, err)
			return
		}
		records, err := client.ListDNSRecords(r.Context(), req.ZoneID)
		if err != nil {
			writeError(w, err)
			return
		}
		writeData(w, records)
	}
}

func CreateDNSRecordHandler(client *upstream.Client, logger *history.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var record upstream.DNSRecord
		if err := decode(r, &record); err != nil {
			writeBadRequest(w, err)
			return
		}
		created, err := client.CreateDNSRecord(r.Context(), record)
		logOp(logger, "dns", "create", fmt.Sprintf("Create %s record %s", record.Type, record.Name), err)
		if err != nil {
			writeError(w, err)
			return
		}
		writeData(w, created)
	}
}

func UpdateDNSRecordHandler(client *upstream.Client, logger *history.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var record upstream.DNSRecord
		if err := decode(r, &record); err != nil {
			writeBadRequest(w, err)
			return
		}
		updated, err := client.UpdateDNSRecord(r.Context(), record)
		logOp(logger, "dns", "update", fmt.Sprintf("Update %s record %s", record.Type, record.Name), err)
		if err != nil {
			writeError(w, err)
			return
		}
		writeData(w, updated)
	}
}

func DeleteDNSRecordHandler(client *upstream.Client, logger *history.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			ZoneID   string `json:"zone_id"`
			RecordID string `json:"record_id"`
		}
		if err := decode(r, &req); err != nil {
			writeBadRequest(w, err)
			return
		}
		id, err := client.DeleteDNSRecord(r.Context(), req.ZoneID, req.RecordID)
		logOp(logger, "dns", "delete", fmt.Sprintf("Delete record %s", req.RecordID), err)
		if err != nil {
			writeError(w, err)
			return
		}
		writeData(w, id)
	}
}

// ===== Firewall =====

func FirewallRulesHandler(client *upstream.Client) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req zoneScopedRequest
		if err := decode(r, &req); err != nil {
			writeBadRequest(w, err)
			return
		}
		rules, err := client.ListFirewallRules(r.Context(), req.ZoneID)
		if err != nil {
			writeError(w, err)
			return
		}
		writeData(w, rules)
	}
}

func CreateFirewallRuleHandler(client *upstream.Client, logger *history.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			ZoneID string                `json:"zone_id"`
			Rule   upstream.FirewallRule `json:"rule"`
		}
		if err := decode(r, &req); err != nil {
			writeBadRequest(w, err)
			return
		}
		created, err := client.CreateFirewallRule(r.Context(), req.ZoneID, req.Rule)
		logOp(logger, "firewall", "create", fmt.Sprintf("Create firewall rule (%s)", req.Rule.Action), err)
		if err != nil {
			writeError(w, err)
			return
		}
		writeData(w, created)
	}
}

func UpdateFirewallRuleHandler(client *upstream.Client, logger *history.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			ZoneID string                `json:"zone_id"`
			RuleID string                `json:"rule_id"`
			Rule   upstream.FirewallRule `json:"rule"`
		}
		if err := decode(r, &req); err != nil {
			writeBadRequest(w, err)
			return
		}
		updated, err := client.UpdateFirewallRule(r.Context(), req.ZoneID, req.RuleID, req.Rule)
		logOp(logger, "firewall", "update", fmt.Sprintf("Update firewall rule %s", req.RuleID), err)
		if err != nil {
			writeError(w, err)
			return
		}
		writeData(w, updated)
	}
}

func DeleteFirewallRuleHandler(client *upstream.Client, logger *history.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			ZoneID string `json:"zone_id"`
			RuleID string `json:"rule_id"`
		}
		if err := decode(r, &req); err != nil {
			writeBadRequest(w, err)
			return
		}
		id, err := client.DeleteFirewallRule(r.Context(), req.ZoneID, req.RuleID)
		logOp(logger, "firewall", "delete", fmt.Sprintf("Delete firewall rule %s", req.RuleID), err)
		if err != nil {
			writeError(w, err)
			return
		}
		writeData(w, id)
	}
}

// ===== Workers =====

func DeployWorkerHandler(client *upstream.Client, logger *history.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req upstream.DeployWorkerRequest
		if err := decode(r, &req); err != nil {
			writeBadRequest(w, err)
			return
		}
		result, err := client.DeployWorker(r.Context(), req)
		logOp(logger, "worker", "deploy", fmt.Sprintf("Deploy script %s", req.ScriptName), err)
		if err != nil {
			writeError(w, err)
			return
		}
		writeData(w, result)
	}
}

func ListWorkersHandler(client *upstream.Client) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req accountScopedRequest
		if err := decode(r, &req); err != nil {
			writeBadRequest(w, err)
			return
		}
		workers, err := client.ListWorkers(r.Context(), req.AccountID)
		if err != nil {
			writeError(w, err)
			return
		}
		writeData(w, workers)
	}
}

func GetWorkerHandler(client *upstream.Client) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			AccountID  string `json:"account_id"`
			ScriptName string `json:"script_name"`
		}
		if err := decode(r, &req); err != nil {
			writeBadRequest(w, err)
			return
		}
		script, err := client.GetWorker(r.Context(), req.AccountID, req.ScriptName)
		if err != nil {
			writeError(w, err)
			return
		}
		writeData(w, script)
	}
}

func DeleteWorkerHandler(client *upstream.Client, logger *history.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			AccountID  string `json:"account_id"`
			ScriptName string `json:"script_name"`
		}
		if err := decode(r, &req); err != nil {
			writeBadRequest(w, err)
			return
		}
		result, err := client.DeleteWorker(r.Context(), req.AccountID, req.ScriptName)
		logOp(logger, "worker", "delete", fmt.Sprintf("Delete script %s", req.ScriptName), err)
		if err != nil {
			writeError(w, err)
			return
		}
		writeData(w, result)
	}
}

func UploadWorkerHandler(client *upstream.Client, logger *history.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			AccountID     string `json:"account_id"`
			ScriptName    string `json:"script_name"`
			ScriptContent string `json:"script_content"`
		}
		if err := decode(r, &req); err != nil {
			writeBadRequest(w, err)
			return
		}
		result, err := client.UploadWorker(r.Context(), req.AccountID, req.ScriptName, req.ScriptContent)
		logOp(logger, "worker", "upload", fmt.Sprintf("Upload script %s", req.ScriptName), err)
		if err != nil {
			writeError(w, err)
			return
		}
		writeData(w, result)
	}
}

func WorkerRoutesHandler(client *upstream.Client) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req zoneScopedRequest
		if err := decode(r, &req); err != nil {
			writeBadRequest(w, err)
			return
		}
		routes, err := client.ListWorkerRoutes(r.Context(), req.ZoneID)
		if err != nil {
			writeError(w, err)
			return
		}
		writeData(w, routes)
	}
}

func CreateWorkerRouteHandler(client *upstream.Client, logger *history.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			ZoneID     string `json:"zone_id"`
			Pattern    string `json:"pattern"`
			ScriptName string `json:"script_name"`
		}
		if err := decode(r, &req); err != nil {
			writeBadRequest(w, err)
			return
		}
		route, err := client.CreateWorkerRoute(r.Context(), req.ZoneID, req.Pattern, req.ScriptName)
		logOp(logger, "worker", "route-create", fmt.Sprintf("Route %s -> %s", req.Pattern, req.ScriptName), err)
		if err != nil {
			writeError(w, err)
			return
		}
		writeData(w, route)
	}
}

func DeleteWorkerRouteHandler(client *upstream.Client, logger *history.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			ZoneID  string `json:"zone_id"`
			RouteID string `json:"route_id"`
		}
		if err := decode(r, &req); err != nil {
			writeBadRequest(w, err)
			return
		}
		id, err := client.DeleteWorkerRoute(r.Context(), req.ZoneID, req.RouteID)
		logOp(logger, "worker", "route-delete", fmt.Sprintf("Delete route %s", req.RouteID), err)
		if err != nil {
			writeError(w, err)
			return
		}
		writeData(w, id)
	}
}

// ===== Zone settings / optimization / analytics / cache =====

func ZoneSettingsHandler(client *upstream.Client) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req zoneScopedRequest
		if err := decode(r, &req); err != nil {
			writeBadRequest(w, err)
			return
		}
		settings, err := client.GetZoneSettings(r.Context(), req.ZoneID)
		if err != nil {
			writeError(w, err)
			return
		}
		writeData(w, settings)
	}
}

func UpdateZoneSettingsHandler(client *upstream.Client, logger *history.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			ZoneID   string                   `json:"zone_id"`
			Settings []upstream.UpdateSetting `json:"settings"`
		}
		if err := decode(r, &req); err != nil {
			writeBadRequest(w, err)
			return
		}
		result, err := client.UpdateZoneSettings(r.Context(), req.ZoneID, req.Settings)
		logOp(logger, "zone", "settings-update", fmt.Sprintf("Update %d settings", len(req.Settings)), err)
		if err != nil {
			writeError(w, err)
			return
		}
		writeData(w, result)
	}
}

func OptimizeZoneHandler(client *upstream.Client, logger *history.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			ZoneID string `json:"zone_id"`
			Mode   string `json:"mode"`
		}
		if err := decode(r, &req); err != nil {
			writeBadRequest(w, err)
			return
		}
		result, err := client.OptimizeZone(r.Context(), req.ZoneID, upstream.OptimizeMode(req.Mode))
		logOp(logger, "zone", "optimize", fmt.Sprintf("Apply %s preset", req.Mode), err)
		if err != nil {
			writeError(w, err)
			return
		}
		writeData(w, result)
	}
}

func AnalyticsHandler(client *upstream.Client) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			ZoneID    string `json:"zone_id"`
			TimeRange string `json:"time_range"`
		}
		if err := decode(r, &req); err != nil {
			writeBadRequest(w, err)
			return
		}
		data, err := client.GetAnalytics(r.Context(), req.ZoneID, req.TimeRange)
		if err != nil {
			writeError(w, err)
			return
		}
		writeData(w, data)
	}
}

func PurgeCacheHandler(client *upstream.Client, logger *history.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req upstream.PurgeCacheRequest
		if err := decode(r, &req); err != nil {
			writeBadRequest(w, err)
			return
		}
		resp, err := client.PurgeCache(r.Context(), req)
		desc := "Purge selected files"
		if req.PurgeEverything {
			desc = "Purge everything"
		}
		logOp(logger, "cache", "purge", desc, err)
		if err != nil {
			writeError(w, err)
			return
		}
		writeData(w, resp)
	}
}

// ===== SSL =====

func SSLCertificatesHandler(client *upstream.Client) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req zoneScopedRequest
		if err := decode(r, &req); err != nil {
			writeBadRequest(w, err)
			return
		}
		certs, err := client.ListSSLCertificates(r.Context(), req.ZoneID)
		if err != nil {
			writeError(w, err)
			return
		}
		writeData(w, certs)
	}
}

func CustomCertificatesHandler(client *upstream.Client) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req zoneScopedRequest
		if err := decode(r, &req); err != nil {
			writeBadRequest(w, err)
			return
		}
		certs, err := client.ListCustomCertificates(r.Context(), req.ZoneID)
		if err != nil {
			writeError(w, err)
			return
		}
		writeData(w, certs)
	}
}

func UploadCustomCertificateHandler(client *upstream.Client, logger *history.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req upstream.UploadCustomCertificateRequest
		if err := decode(r, &req); err != nil {
			writeBadRequest(w, err)
			return
		}
		cert, err := client.UploadCustomCertificate(r.Context(), req)
		logOp(logger, "ssl", "upload", "Upload custom certificate", err)
		if err != nil {
			writeError(w, err)
			return
		}
		writeData(w, cert)
	}
}

func DeleteCustomCertificateHandler(client *upstream.Client, logger *history.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			ZoneID        string `json:"zone_id"`
			CertificateID string `json:"certificate_id"`
		}
		if err := decode(r, &req); err != nil {
			writeBadRequest(w, err)
			return
		}
		id, err := client.DeleteCustomCertificate(r.Context(), req.ZoneID, req.CertificateID)
		logOp(logger, "ssl", "delete", fmt.Sprintf("Delete certificate %s", req.CertificateID), err)
		if err != nil {
			writeError(w, err)
			return
		}
		writeData(w, id)
	}
}

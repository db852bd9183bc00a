package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/edgedeck/edgedeck/internal/account"
)

// accountView is what the UI sees: the token is masked out entirely, only
// its presence is reported.
type accountView struct {
	ID        string `json:"id"`
	AccountID string `json:"accountId,omitempty"`
	Alias     string `json:"alias"`
	CreatedAt string `json:"createdAt"`
	Active    bool   `json:"active"`
}

func viewOf(acc account.Account, activeID string) accountView {
	return accountView{
		ID:        acc.ID,
		AccountID: acc.AccountID,
		Alias:     acc.Alias,
		CreatedAt: acc.CreatedAt,
		Active:    acc.ID == activeID,
	}
}

// ListAccountsHandler returns all registered accounts.
func ListAccountsHandler(store *account.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		activeID := ""
		if cur := store.Current(); cur != nil {
			activeID = cur.ID
		}
		accounts := store.Accounts()
		views := make([]accountView, 0, len(accounts))
		for _, acc := range accounts {
			views = append(views, viewOf(acc, activeID))
		}
		writeData(w, views)
	}
}

// AddAccountHandler registers a new account from a token (+ optional alias),
// makes it active and best-effort resolves its provider identity.
func AddAccountHandler(store *account.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var creds account.Credentials
		if err := decode(r, &creds); err != nil {
			writeBadRequest(w, err)
			return
		}
		if creds.APIToken == "" {
			http.Error(w, "apiToken is required", http.StatusBadRequest)
			return
		}
		acc := store.AddAccount(r.Context(), creds)
		writeData(w, viewOf(acc, acc.ID))
	}
}

// UpdateAccountHandler merges a new token and/or alias into an account and
// re-resolves its identity.
func UpdateAccountHandler(store *account.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")
		var creds account.Credentials
		if err := decode(r, &creds); err != nil {
			writeBadRequest(w, err)
			return
		}
		if !store.UpdateAccount(r.Context(), id, creds) {
			http.NotFound(w, r)
			return
		}
		// The account can disappear between the update and this read when a
		// removal lands during the bootstrap call.
		acc := store.Get(id)
		if acc == nil {
			http.NotFound(w, r)
			return
		}
		activeID := ""
		if cur := store.Current(); cur != nil {
			activeID = cur.ID
		}
		writeData(w, viewOf(*acc, activeID))
	}
}

// UpdateTokenHandler overwrites an account's token without identity
// re-resolution.
func UpdateTokenHandler(store *account.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")
		var body struct {
			APIToken string `json:"apiToken"`
		}
		if err := decode(r, &body); err != nil {
			writeBadRequest(w, err)
			return
		}
		if !store.UpdateAPIToken(id, body.APIToken) {
			http.NotFound(w, r)
			return
		}
		writeData(w, true)
	}
}

// RemoveAccountHandler deletes an account; removing the active one promotes
// the first remaining account.
func RemoveAccountHandler(store *account.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		store.RemoveAccount(chi.URLParam(r, "id"))
		writeData(w, true)
	}
}

// SwitchAccountHandler makes the given account active.
func SwitchAccountHandler(store *account.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !store.SwitchAccount(chi.URLParam(r, "id")) {
			http.NotFound(w, r)
			return
		}
		writeData(w, true)
	}
}

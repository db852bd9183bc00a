// Package account owns the set of registered operator accounts and which one
// is active. All reads are in-memory; every mutation is eagerly persisted.
// The active account's token is what the request pipeline injects into every
// outgoing call, so the store is also where the identity resolver briefly
// reassigns the active slot while it bootstraps a freshly entered token.
package account

import (
	"context"
	"encoding/json"
	"log"
	"strconv"
	"sync"
	"time"

	"github.com/edgedeck/edgedeck/internal/storage"
	"github.com/edgedeck/edgedeck/internal/util"
)

// ProviderAccount is what the upstream accounts-listing call returns: the
// provider-side identity a token belongs to.
type ProviderAccount struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// IdentityClient is the single upstream call the resolver needs. It is bound
// after construction (BindIdentityClient) because the pipeline in turn reads
// credentials from this store.
type IdentityClient interface {
	ListProviderAccounts(ctx context.Context) ([]ProviderAccount, error)
}

// Store is the single source of truth for registered accounts and the active
// selection.
type Store struct {
	mu       sync.RWMutex
	accounts []Account
	current  string // active account id, "" when none

	// resolveMu serializes activate→bootstrap→restore sequences so two
	// overlapping registrations can never observe each other's temporary
	// activation.
	resolveMu sync.Mutex

	storage  *storage.Store
	identity IdentityClient

	lastID int64 // collision guard for time-based ids
}

// NewStore creates an empty store backed by st. Call Load before first use.
func NewStore(st *storage.Store) *Store {
	return &Store{storage: st}
}

// BindIdentityClient attaches the upstream client used for identity
// resolution. Until bound, registration still works; enrichment is skipped.
func (s *Store) BindIdentityClient(c IdentityClient) {
	s.mu.Lock()
	s.identity = c
	s.mu.Unlock()
}

// Load reads the persisted account collection and active-account id.
// Malformed or absent storage degrades to an empty collection; startup never
// fails on bad state. Idempotent: calling it again rebuilds from storage.
func (s *Store) Load() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.accounts = nil
	s.current = ""

	raw, ok := s.storage.Get(storage.KeyAccounts)
	if !ok {
		return
	}
	var accounts []Account
	if err := json.Unmarshal([]byte(raw), &accounts); err != nil {
		log.Printf("⚠️ accounts: failed to load persisted accounts: %v", err)
		return
	}
	s.accounts = accounts

	if id, ok := s.storage.Get(storage.KeyActiveAccount); ok {
		var current string
		if err := json.Unmarshal([]byte(id), &current); err == nil {
			if s.indexOfLocked(current) >= 0 {
				s.current = current
			}
		}
	}
	log.Printf("📦 Loaded %d accounts (active: %s)", len(s.accounts), orNone(s.current))
}

// save persists the collection and the active-id marker. Persistence failure
// leaves in-memory state authoritative; callers are never failed.
func (s *Store) saveLocked() {
	data, err := json.Marshal(s.accounts)
	if err != nil {
		log.Printf("⚠️ accounts: failed to serialize accounts: %v", err)
		return
	}
	if err := s.storage.Put(storage.KeyAccounts, string(data)); err != nil {
		log.Printf("⚠️ accounts: failed to persist accounts: %v", err)
	}
	s.saveActiveLocked()
}

func (s *Store) saveActiveLocked() {
	id, _ := json.Marshal(s.current)
	if err := s.storage.Put(storage.KeyActiveAccount, string(id)); err != nil {
		log.Printf("⚠️ accounts: failed to persist active account id: %v", err)
	}
}

// AddAccount registers a new account, makes it active, and best-effort
// resolves its provider identity. The account is created and kept even when
// resolution fails; enrichment is advisory, never required.
func (s *Store) AddAccount(ctx context.Context, creds Credentials) Account {
	acc := Account{
		ID:        s.newID(),
		APIToken:  creds.APIToken,
		Alias:     creds.Alias,
		CreatedAt: nowISO(),
	}
	if acc.Alias == "" {
		acc.Alias = DefaultAlias
	}

	s.resolveMu.Lock()
	defer s.resolveMu.Unlock()

	s.mu.Lock()
	s.accounts = append(s.accounts, acc)
	s.current = acc.ID
	s.mu.Unlock()

	// The new account stays active regardless of the bootstrap outcome.
	s.resolveIdentityLocked(ctx, acc.ID, creds.Alias, true)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.saveLocked()
	if i := s.indexOfLocked(acc.ID); i >= 0 {
		return s.accounts[i]
	}
	return acc
}

// UpdateAccount merges a new token and/or alias into an existing account and
// re-resolves its identity with the new token. If the account being updated
// is not the active one, the previously active account is restored after the
// bootstrap call. Returns false when no account has the given id.
func (s *Store) UpdateAccount(ctx context.Context, id string, creds Credentials) bool {
	s.resolveMu.Lock()
	defer s.resolveMu.Unlock()

	s.mu.Lock()
	i := s.indexOfLocked(id)
	if i < 0 {
		s.mu.Unlock()
		return false
	}
	s.accounts[i].APIToken = creds.APIToken
	if creds.Alias != "" {
		s.accounts[i].Alias = creds.Alias
	}
	s.mu.Unlock()

	s.resolveIdentityLocked(ctx, id, creds.Alias, false)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.saveLocked()
	return true
}

// UpdateAPIToken overwrites an account's token with no identity
// re-resolution. Returns whether the account existed.
func (s *Store) UpdateAPIToken(id, token string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.indexOfLocked(id)
	if i < 0 {
		return false
	}
	s.accounts[i].APIToken = token
	s.saveLocked()
	return true
}

// RemoveAccount deletes an account by id. Removing the active account
// promotes the first remaining account, or clears the selection when the
// collection is now empty.
func (s *Store) RemoveAccount(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.accounts[:0]
	for _, acc := range s.accounts {
		if acc.ID != id {
			kept = append(kept, acc)
		}
	}
	s.accounts = kept
	s.normalizeActiveLocked()
	s.saveLocked()
}

// SwitchAccount sets the active account by id. Only the active-id marker is
// persisted; the collection itself is unchanged. Returns false when the id
// is unknown.
func (s *Store) SwitchAccount(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.indexOfLocked(id) < 0 {
		return false
	}
	s.current = id
	s.saveActiveLocked()
	return true
}

// CurrentCredentials returns the active account's credential projection, or
// nil when no account is active. This is the sole read path the request
// pipeline uses.
func (s *Store) CurrentCredentials() *Credentials {
	s.mu.RLock()
	defer s.mu.RUnlock()
	i := s.indexOfLocked(s.current)
	if i < 0 {
		return nil
	}
	return &Credentials{APIToken: s.accounts[i].APIToken}
}

// Current returns a copy of the active account, or nil.
func (s *Store) Current() *Account {
	s.mu.RLock()
	defer s.mu.RUnlock()
	i := s.indexOfLocked(s.current)
	if i < 0 {
		return nil
	}
	acc := s.accounts[i]
	return &acc
}

// Accounts returns a copy of the registered account collection.
func (s *Store) Accounts() []Account {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Account, len(s.accounts))
	copy(out, s.accounts)
	return out
}

// Get returns a copy of the account with the given id, or nil.
func (s *Store) Get(id string) *Account {
	s.mu.RLock()
	defer s.mu.RUnlock()
	i := s.indexOfLocked(id)
	if i < 0 {
		return nil
	}
	acc := s.accounts[i]
	return &acc
}

// resolveIdentityLocked runs the activate→bootstrap→restore sequence for the
// account with the given id. Caller must hold resolveMu (not mu).
//
// The pipeline sources authentication from the active-account slot rather
// than a per-call parameter, so the candidate is temporarily activated for
// the bootstrap call. Restoration of the previous selection is guaranteed on
// every exit path; keepActive suppresses it when the candidate is meant to
// stay active (registration, or updating the already-active account).
func (s *Store) resolveIdentityLocked(ctx context.Context, id, explicitAlias string, keepActive bool) {
	s.mu.Lock()
	identity := s.identity
	prev := s.current
	s.current = id
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		if !keepActive && prev != id {
			s.current = prev
		}
		// A concurrent removal may have invalidated either selection.
		s.normalizeActiveLocked()
		s.mu.Unlock()
	}()

	if identity == nil {
		return
	}

	providerAccounts, err := identity.ListProviderAccounts(ctx)
	if err != nil {
		// Best-effort enrichment: the account keeps an unresolved
		// AccountID and the overall operation still succeeds.
		log.Printf("⚠️ accounts: identity resolution failed for %s: %v", id, err)
		return
	}
	if len(providerAccounts) == 0 {
		log.Printf("⚠️ accounts: no provider accounts visible to token %s", util.MaskToken(s.tokenOf(id)))
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.indexOfLocked(id)
	if i < 0 {
		return
	}
	s.accounts[i].AccountID = providerAccounts[0].ID
	if explicitAlias == "" {
		s.accounts[i].Alias = providerAccounts[0].Name
	}
	log.Printf("✅ Resolved provider account %s (%s)", providerAccounts[0].ID, providerAccounts[0].Name)
}

func (s *Store) tokenOf(id string) string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if i := s.indexOfLocked(id); i >= 0 {
		return s.accounts[i].APIToken
	}
	return ""
}

// normalizeActiveLocked repairs the active selection after a membership
// change: an active id that no longer names a registered account falls back
// to the first remaining account, or to none. An already-empty selection is
// left alone.
func (s *Store) normalizeActiveLocked() {
	if s.current == "" || s.indexOfLocked(s.current) >= 0 {
		return
	}
	if len(s.accounts) > 0 {
		s.current = s.accounts[0].ID
	} else {
		s.current = ""
	}
}

// indexOfLocked finds an account by id. Caller holds mu (read or write).
func (s *Store) indexOfLocked(id string) int {
	if id == "" {
		return -1
	}
	for i := range s.accounts {
		if s.accounts[i].ID == id {
			return i
		}
	}
	return -1
}

// newID generates a time-ordered id. Two creations in the same nanosecond
// get distinct ids; a collision would corrupt the active-account reference.
func (s *Store) newID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := time.Now().UnixNano()
	if id <= s.lastID {
		id = s.lastID + 1
	}
	s.lastID = id
	return strconv.FormatInt(id, 10)
}

func orNone(id string) string {
	if id == "" {
		return "none"
	}
	return id
}

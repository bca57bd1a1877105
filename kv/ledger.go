package kv

import (
	"time"
)

// RevocationKind classifies what a revocation record refers to.
type RevocationKind string

const (
	// KindJTI revokes every token pair sharing the given token id.
	KindJTI RevocationKind = "jti"
)

// Ledger records token ids that must no longer be honored. Entries are
// keyed by (kind, id) in the underlying key-value store and carry a TTL
// matching the natural expiry of the tokens they revoke, after which
// the store may prune them.
type Ledger struct {
	kv KeyValueStore
}

func NewLedger(kv KeyValueStore) *Ledger {
	return &Ledger{kv: kv}
}

func ledgerKey(kind RevocationKind, id string) string {
	return "revoked:" + string(kind) + ":" + id
}

// Revoke marks the id as revoked. Revoking an already-revoked id is not
// an error.
func (l *Ledger) Revoke(id string, kind RevocationKind, ttl time.Duration) error {
	return l.kv.Set(ledgerKey(kind, id), "1", ttl)
}

// Consume atomically revokes the id and reports whether this call was
// the one that revoked it. A false result means the id was already
// revoked: callers treat that as a replay.
func (l *Ledger) Consume(id string, kind RevocationKind, ttl time.Duration) (bool, error) {
	return l.kv.SetNX(ledgerKey(kind, id), "1", ttl)
}

// IsRevoked reports whether the id has been revoked.
func (l *Ledger) IsRevoked(id string, kind RevocationKind) (bool, error) {
	return l.kv.Exists(ledgerKey(kind, id))
}

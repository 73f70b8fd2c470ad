package domain

import (
	"time"

	"github.com/google/uuid"
)

// Snapshot is a full-record capture of a case at one point in time.
// The trail stores whole snapshots, never deltas; diffing is a caller
// concern.
type Snapshot map[string]any

// AuditEntry is one immutable record of a case mutation. Entries are
// append-only: once written, nothing in this core can alter or remove them.
//
// CaseType is a free string tag rather than a Tier so that new case types
// can be introduced without migrating the trail. CaseID is a weak
// reference: the case may be deleted later while its history remains.
type AuditEntry struct {
	ID       uuid.UUID
	CaseType string
	CaseID   uuid.UUID
	Action   AuditAction

	// Before is nil for Created; After is nil for Deleted; both are set
	// (full records) for Updated.
	Before Snapshot
	After  Snapshot

	ActorID   uuid.UUID
	CreatedAt time.Time
}

// AuditFilter narrows a global trail listing. Nil fields match everything.
type AuditFilter struct {
	CaseType *string
	Action   *AuditAction
}

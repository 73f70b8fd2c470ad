package audittrail

import (
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/lawdesk/casetrack-backend/internal/domain"
	"github.com/lawdesk/casetrack-backend/pkg/ctxutil"
)

type auditRepoMock struct {
	InsertFunc     func(ctx context.Context, entry domain.AuditEntry) (*domain.AuditEntry, error)
	ListByCaseFunc func(ctx context.Context, caseType string, caseID uuid.UUID, ascending bool) ([]domain.AuditEntry, error)
	ListFunc       func(ctx context.Context, filter domain.AuditFilter, limit, offset int) ([]domain.AuditEntry, int, error)

	insertCalls []domain.AuditEntry
}

func (m *auditRepoMock) Insert(ctx context.Context, entry domain.AuditEntry) (*domain.AuditEntry, error) {
	m.insertCalls = append(m.insertCalls, entry)
	return m.InsertFunc(ctx, entry)
}

func (m *auditRepoMock) ListByCase(ctx context.Context, caseType string, caseID uuid.UUID, ascending bool) ([]domain.AuditEntry, error) {
	return m.ListByCaseFunc(ctx, caseType, caseID, ascending)
}

func (m *auditRepoMock) List(ctx context.Context, filter domain.AuditFilter, limit, offset int) ([]domain.AuditEntry, int, error) {
	return m.ListFunc(ctx, filter, limit, offset)
}

func echoInsert(ctx context.Context, entry domain.AuditEntry) (*domain.AuditEntry, error) {
	return &entry, nil
}

func newTestService(mock *auditRepoMock) *Service {
	return &Service{entries: mock, log: slog.Default()}
}

func actorCtx(actorID uuid.UUID) context.Context {
	return ctxutil.WithActorID(context.Background(), actorID)
}

func TestLogChange_Created(t *testing.T) {
	t.Parallel()

	actorID := uuid.New()
	caseID := uuid.New()
	mock := &auditRepoMock{InsertFunc: echoInsert}
	svc := newTestService(mock)

	entry, err := svc.LogChange(actorCtx(actorID), LogChangeInput{
		CaseType: "PRIMARY",
		CaseID:   caseID,
		Action:   domain.AuditActionCreated,
		After:    domain.Snapshot{"case_number": "12/2026", "status": "PENDING"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if entry.ID == uuid.Nil {
		t.Error("entry ID not assigned")
	}
	if entry.ActorID != actorID {
		t.Errorf("ActorID = %s, want %s", entry.ActorID, actorID)
	}
	if entry.Before != nil {
		t.Errorf("Before = %v, want nil for CREATED", entry.Before)
	}
	if entry.After == nil {
		t.Error("After = nil, want snapshot for CREATED")
	}
	if entry.CreatedAt.IsZero() || entry.CreatedAt.Location() != time.UTC {
		t.Errorf("CreatedAt = %v, want non-zero UTC", entry.CreatedAt)
	}
	if len(mock.insertCalls) != 1 {
		t.Errorf("Insert calls: got %d, want 1", len(mock.insertCalls))
	}
}

func TestLogChange_SnapshotShapeValidation(t *testing.T) {
	t.Parallel()

	snapshot := domain.Snapshot{"status": "PENDING"}

	tests := []struct {
		name    string
		input   LogChangeInput
		wantErr bool
	}{
		{
			"created with before snapshot",
			LogChangeInput{CaseType: "PRIMARY", CaseID: uuid.New(), Action: domain.AuditActionCreated, Before: snapshot, After: snapshot},
			true,
		},
		{
			"created without after snapshot",
			LogChangeInput{CaseType: "PRIMARY", CaseID: uuid.New(), Action: domain.AuditActionCreated},
			true,
		},
		{
			"updated with both snapshots",
			LogChangeInput{CaseType: "APPEAL", CaseID: uuid.New(), Action: domain.AuditActionUpdated, Before: snapshot, After: snapshot},
			false,
		},
		{
			"updated missing before",
			LogChangeInput{CaseType: "APPEAL", CaseID: uuid.New(), Action: domain.AuditActionUpdated, After: snapshot},
			true,
		},
		{
			"deleted with before only",
			LogChangeInput{CaseType: "SUPREME", CaseID: uuid.New(), Action: domain.AuditActionDeleted, Before: snapshot},
			false,
		},
		{
			"deleted with after snapshot",
			LogChangeInput{CaseType: "SUPREME", CaseID: uuid.New(), Action: domain.AuditActionDeleted, Before: snapshot, After: snapshot},
			true,
		},
		{
			"missing case type",
			LogChangeInput{CaseID: uuid.New(), Action: domain.AuditActionCreated, After: snapshot},
			true,
		},
		{
			"missing case id",
			LogChangeInput{CaseType: "PRIMARY", Action: domain.AuditActionCreated, After: snapshot},
			true,
		},
		{
			"invalid action",
			LogChangeInput{CaseType: "PRIMARY", CaseID: uuid.New(), Action: domain.AuditAction("MERGED"), After: snapshot},
			true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			mock := &auditRepoMock{InsertFunc: echoInsert}
			svc := newTestService(mock)

			_, err := svc.LogChange(actorCtx(uuid.New()), tt.input)
			if tt.wantErr {
				if !errors.Is(err, domain.ErrValidation) {
					t.Fatalf("error = %v, want ErrValidation", err)
				}
				if len(mock.insertCalls) != 0 {
					t.Errorf("Insert called %d times on invalid input", len(mock.insertCalls))
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}

func TestLogChange_RequiresActor(t *testing.T) {
	t.Parallel()

	mock := &auditRepoMock{InsertFunc: echoInsert}
	svc := newTestService(mock)

	_, err := svc.LogChange(context.Background(), LogChangeInput{
		CaseType: "PRIMARY",
		CaseID:   uuid.New(),
		Action:   domain.AuditActionCreated,
		After:    domain.Snapshot{"status": "PENDING"},
	})
	if !errors.Is(err, domain.ErrUnauthorized) {
		t.Fatalf("error = %v, want ErrUnauthorized", err)
	}
	if len(mock.insertCalls) != 0 {
		t.Errorf("Insert called %d times without an actor", len(mock.insertCalls))
	}
}

func TestLogChange_PropagatesStorageError(t *testing.T) {
	t.Parallel()

	boom := errors.New("storage unavailable")
	mock := &auditRepoMock{
		InsertFunc: func(ctx context.Context, entry domain.AuditEntry) (*domain.AuditEntry, error) {
			return nil, boom
		},
	}
	svc := newTestService(mock)

	_, err := svc.LogChange(actorCtx(uuid.New()), LogChangeInput{
		CaseType: "PRIMARY",
		CaseID:   uuid.New(),
		Action:   domain.AuditActionDeleted,
		Before:   domain.Snapshot{"status": "CLOSED"},
	})
	if !errors.Is(err, boom) {
		t.Fatalf("error = %v, want wrapped %v", err, boom)
	}
}

func TestCaseHistory_OrderingFlag(t *testing.T) {
	t.Parallel()

	caseID := uuid.New()
	var gotAscending bool
	mock := &auditRepoMock{
		ListByCaseFunc: func(ctx context.Context, caseType string, id uuid.UUID, ascending bool) ([]domain.AuditEntry, error) {
			gotAscending = ascending
			return []domain.AuditEntry{{ID: uuid.New(), CaseType: caseType, CaseID: id}}, nil
		},
	}
	svc := newTestService(mock)

	entries, err := svc.CaseHistory(context.Background(), CaseHistoryInput{CaseType: "APPEAL", CaseID: caseID})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(entries) != 1 {
		t.Errorf("entries: got %d, want 1", len(entries))
	}
	if gotAscending {
		t.Error("default ordering should be newest first (ascending=false)")
	}

	if _, err := svc.CaseHistory(context.Background(), CaseHistoryInput{CaseType: "APPEAL", CaseID: caseID, Ascending: true}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !gotAscending {
		t.Error("Ascending flag not passed through")
	}
}

func TestCaseHistory_Validation(t *testing.T) {
	t.Parallel()

	svc := newTestService(&auditRepoMock{})

	_, err := svc.CaseHistory(context.Background(), CaseHistoryInput{CaseType: " ", CaseID: uuid.Nil})
	if !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("error = %v, want ErrValidation", err)
	}
}

func TestListEntries_DefaultsAndFilters(t *testing.T) {
	t.Parallel()

	action := domain.AuditActionUpdated
	caseType := "  SUPREME  "

	var gotFilter domain.AuditFilter
	var gotLimit, gotOffset int
	mock := &auditRepoMock{
		ListFunc: func(ctx context.Context, filter domain.AuditFilter, limit, offset int) ([]domain.AuditEntry, int, error) {
			gotFilter, gotLimit, gotOffset = filter, limit, offset
			return []domain.AuditEntry{}, 7, nil
		},
	}
	svc := newTestService(mock)

	_, total, err := svc.ListEntries(context.Background(), ListEntriesInput{
		CaseType: &caseType,
		Action:   &action,
		Offset:   10,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if total != 7 {
		t.Errorf("total = %d, want 7", total)
	}
	if gotLimit != DefaultPageSize {
		t.Errorf("limit = %d, want default %d", gotLimit, DefaultPageSize)
	}
	if gotOffset != 10 {
		t.Errorf("offset = %d, want 10", gotOffset)
	}
	if gotFilter.CaseType == nil || *gotFilter.CaseType != "SUPREME" {
		t.Errorf("filter case type = %v, want trimmed SUPREME", gotFilter.CaseType)
	}
	if gotFilter.Action == nil || *gotFilter.Action != action {
		t.Errorf("filter action = %v, want %s", gotFilter.Action, action)
	}
}

func TestListEntries_Validation(t *testing.T) {
	t.Parallel()

	svc := newTestService(&auditRepoMock{})

	tests := []struct {
		name  string
		input ListEntriesInput
	}{
		{"negative limit", ListEntriesInput{Limit: -1}},
		{"limit above max", ListEntriesInput{Limit: MaxPageSize + 1}},
		{"negative offset", ListEntriesInput{Offset: -5}},
		{"bad action filter", ListEntriesInput{Action: actionPtr("MERGED")}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if _, _, err := svc.ListEntries(context.Background(), tt.input); !errors.Is(err, domain.ErrValidation) {
				t.Fatalf("error = %v, want ErrValidation", err)
			}
		})
	}
}

func actionPtr(s string) *domain.AuditAction {
	a := domain.AuditAction(s)
	return &a
}

package impl

import (
	"context"
	"errors"
	"testing"
	"time"

	"guild-dashboard/internal/domain"
)

func newTestAuditService(store *memoryStore, authority *stubAuthority) *AuditServiceImpl {
	return &AuditServiceImpl{Store: store, Authority: authority}
}

func seedAudits(t *testing.T, store *memoryStore, guildID string, n int) {
	t.Helper()
	base := time.Now().UTC().Add(-time.Hour)
	for i := 0; i < n; i++ {
		err := (&memoryAuditStore{store}).Append(context.Background(), &domain.AuditLog{
			GuildID:   guildID,
			UserID:    "u1",
			Action:    domain.ActionSettingUpdate,
			Changes:   []byte(`{"key":"darkMode","value":false}`),
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
		})
		if err != nil {
			t.Fatalf("seed %d: %v", i, err)
		}
	}
}

func TestPageReturnsNewestFirst(t *testing.T) {
	store := newMemoryStore()
	seedAudits(t, store, "guild-1", 5)
	svc := newTestAuditService(store, admitAll())

	page, err := svc.Page(context.Background(), testIdentity, "guild-1", 2, 0)
	if err != nil {
		t.Fatalf("page: %v", err)
	}
	if page.Total != 5 {
		t.Fatalf("expected total 5, got %d", page.Total)
	}
	if len(page.Logs) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(page.Logs))
	}
	if !page.Logs[0].CreatedAt.After(page.Logs[1].CreatedAt) {
		t.Fatalf("expected newest-first: %v then %v", page.Logs[0].CreatedAt, page.Logs[1].CreatedAt)
	}
	if page.Logs[0].Action != string(domain.ActionSettingUpdate) {
		t.Fatalf("action not mapped: %+v", page.Logs[0])
	}
}

func TestPageClampsLimitAndOffset(t *testing.T) {
	store := newMemoryStore()
	seedAudits(t, store, "guild-1", 3)
	svc := newTestAuditService(store, admitAll())
	ctx := context.Background()

	page, err := svc.Page(ctx, testIdentity, "guild-1", 0, -5)
	if err != nil {
		t.Fatalf("page: %v", err)
	}
	if page.Limit != 50 || page.Offset != 0 {
		t.Fatalf("expected defaults 50/0, got %d/%d", page.Limit, page.Offset)
	}

	page, err = svc.Page(ctx, testIdentity, "guild-1", 10000, 0)
	if err != nil {
		t.Fatalf("page: %v", err)
	}
	if page.Limit != 200 {
		t.Fatalf("expected limit clamped to 200, got %d", page.Limit)
	}
}

func TestPageRequiresAdmin(t *testing.T) {
	store := newMemoryStore()
	seedAudits(t, store, "guild-1", 1)
	denied := &stubAuthority{decision: domain.AuthorityDecision{IsAdmin: false, Basis: domain.BasisDenied}}
	svc := newTestAuditService(store, denied)

	if _, err := svc.Page(context.Background(), testIdentity, "guild-1", 10, 0); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}

func TestRecordAuthEvent(t *testing.T) {
	store := newMemoryStore()
	denied := &stubAuthority{decision: domain.AuthorityDecision{IsAdmin: false, Basis: domain.BasisDenied}}
	// Deliberately a non-admin authority: sign-in records bypass the gate.
	svc := newTestAuditService(store, denied)

	if err := svc.RecordAuthEvent(context.Background(), testIdentity, "", domain.ActionLogin); err != nil {
		t.Fatalf("record login: %v", err)
	}
	if denied.calls != 0 {
		t.Fatal("auth events must not consult the authority resolver")
	}
	if len(store.audits) != 1 || store.audits[0].Action != domain.ActionLogin {
		t.Fatalf("login not recorded: %+v", store.audits)
	}
	if store.audits[0].IPAddress != testIdentity.SourceIP || store.audits[0].UserAgent != testIdentity.UserAgent {
		t.Fatalf("source fields not recorded: %+v", store.audits[0])
	}
}

func TestRecordAuthEventRejectsOtherActions(t *testing.T) {
	svc := newTestAuditService(newMemoryStore(), admitAll())

	err := svc.RecordAuthEvent(context.Background(), testIdentity, "guild-1", domain.ActionSettingsReset)
	if !errors.Is(err, ErrBadAuditAction) {
		t.Fatalf("expected ErrBadAuditAction, got %v", err)
	}
	if !errors.Is(err, domain.ErrInvalidArgument) {
		t.Fatalf("caller mistakes must read as invalid arguments, got %v", err)
	}
}

func TestRecordAuthEventRequiresActor(t *testing.T) {
	svc := newTestAuditService(newMemoryStore(), admitAll())

	err := svc.RecordAuthEvent(context.Background(), domain.Identity{}, "", domain.ActionLogout)
	if !errors.Is(err, ErrMissingActor) {
		t.Fatalf("expected ErrMissingActor, got %v", err)
	}
}

package session_test

import (
	"context"
	"errors"
	"net/http/httptest"
	"testing"
	"time"

	"keywire/internal/registry"
	"keywire/internal/relay"
	sessionsvc "keywire/internal/services/session"
	"keywire/internal/store"
)

func newService(t *testing.T) *sessionsvc.Service {
	t.Helper()
	reg := registry.New(registry.Config{})
	t.Cleanup(reg.Close)

	ts := httptest.NewServer(relay.NewServer(reg, time.Minute).Handler())
	t.Cleanup(ts.Close)

	sessions := store.NewSessionFileStore(t.TempDir())
	return sessionsvc.New(sessions, relay.NewClient(ts.URL, ts.Client()), ts.URL)
}

func TestEstablishSendClose(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()
	pass := "hunter2"

	record, err := svc.Establish(ctx, pass)
	if err != nil {
		t.Fatalf("establish: %v", err)
	}
	if record.ID == "" || record.ServerFingerprint == "" {
		t.Fatalf("incomplete record: %+v", record)
	}

	// Send verifies the server's encrypted receipt internally.
	if err := svc.Send(ctx, pass, []byte("first message")); err != nil {
		t.Fatalf("send: %v", err)
	}
	if err := svc.Send(ctx, pass, []byte("second message")); err != nil {
		t.Fatalf("second send: %v", err)
	}

	got, ok, err := svc.Current(pass)
	if err != nil || !ok {
		t.Fatalf("current: ok=%v err=%v", ok, err)
	}
	if got.ID != record.ID {
		t.Fatal("record mismatch")
	}

	if err := svc.Close(ctx, pass); err != nil {
		t.Fatalf("close: %v", err)
	}
	if err := svc.Send(ctx, pass, []byte("after close")); !errors.Is(err, sessionsvc.ErrNoSession) {
		t.Fatalf("want ErrNoSession after close, got %v", err)
	}
}

func TestSend_WithoutSession(t *testing.T) {
	svc := newService(t)
	if err := svc.Send(context.Background(), "pass", []byte("msg")); !errors.Is(err, sessionsvc.ErrNoSession) {
		t.Fatalf("want ErrNoSession, got %v", err)
	}
}

func TestEstablish_ReplacesPriorSession(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()
	pass := "pass"

	first, err := svc.Establish(ctx, pass)
	if err != nil {
		t.Fatalf("first establish: %v", err)
	}
	second, err := svc.Establish(ctx, pass)
	if err != nil {
		t.Fatalf("second establish: %v", err)
	}
	if first.ID == second.ID {
		t.Fatal("sessions should get distinct ids")
	}

	got, ok, err := svc.Current(pass)
	if err != nil || !ok {
		t.Fatalf("current: ok=%v err=%v", ok, err)
	}
	if got.ID != second.ID {
		t.Fatal("store kept the stale session")
	}
	if err := svc.Send(ctx, pass, []byte("under new session")); err != nil {
		t.Fatalf("send under new session: %v", err)
	}
}

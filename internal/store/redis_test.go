package store

import (
	"context"
	"os"
	"testing"

	"github.com/btechwala999/Ignitia-client/internal/api"
)

// Opt-in integration test; set IGNITIA_TEST_REDIS_ADDR to run it.
func TestRedisStoreRoundTrip(t *testing.T) {
	addr := os.Getenv("IGNITIA_TEST_REDIS_ADDR")
	if addr == "" {
		t.Skip("IGNITIA_TEST_REDIS_ADDR not set")
	}

	client, err := DialRedis(addr, os.Getenv("IGNITIA_TEST_REDIS_PASSWORD"))
	if err != nil {
		t.Fatalf("DialRedis() error: %v", err)
	}
	t.Cleanup(func() { _ = client.Close() })

	ctx := context.Background()
	s := NewRedisStore(client)
	t.Cleanup(func() { _ = s.Clear(ctx) })

	if err := s.SetToken(ctx, "t1"); err != nil {
		t.Fatalf("SetToken() error: %v", err)
	}
	if err := s.SetUser(ctx, &api.User{ID: "1", Name: "Ann", Role: "teacher"}); err != nil {
		t.Fatalf("SetUser() error: %v", err)
	}

	token, ok := s.Token(ctx)
	if !ok || token != "t1" {
		t.Fatalf("expected token t1, got %q ok=%v", token, ok)
	}
	user, ok := s.User(ctx)
	if !ok || user.Name != "Ann" {
		t.Fatalf("expected user Ann, got %+v ok=%v", user, ok)
	}

	if err := s.SetToken(ctx, ""); err != nil {
		t.Fatalf("SetToken(empty) error: %v", err)
	}
	if _, ok := s.Token(ctx); ok {
		t.Fatal("expected empty set to delete the token key")
	}

	if err := s.Clear(ctx); err != nil {
		t.Fatalf("Clear() error: %v", err)
	}
	if _, ok := s.User(ctx); ok {
		t.Fatal("expected no user after Clear")
	}
}

package cache

import (
	"context"
	"testing"
	"time"

	"job-portal/internal/config"
)

func TestRedis_DisabledWithoutAddr(t *testing.T) {
	r := NewRedis(config.RedisConfig{}, nil)
	if r.Enabled() {
		t.Fatalf("expected cache disabled")
	}

	ctx := context.Background()
	var out []string
	hit, err := r.GetJSON(ctx, "jobs:list", &out)
	if err != nil || hit {
		t.Fatalf("expected silent miss, got hit=%v err=%v", hit, err)
	}
	if err := r.SetJSON(ctx, "jobs:list", []string{"a"}, time.Minute); err != nil {
		t.Fatalf("expected no-op set, got %v", err)
	}
	if err := r.DeleteByPattern(ctx, "jobs:*"); err != nil {
		t.Fatalf("expected no-op delete, got %v", err)
	}
	if err := r.Ping(ctx); err == nil {
		t.Fatalf("expected ping error when disabled")
	}
	if err := r.Close(); err != nil {
		t.Fatalf("unexpected close err: %v", err)
	}
}

func TestRedis_NilReceiver(t *testing.T) {
	var r *Redis
	if r.Enabled() {
		t.Fatalf("nil cache must be disabled")
	}
	if err := r.Delete(context.Background(), "k"); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
}

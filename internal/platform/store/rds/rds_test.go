package rds

import (
	"context"
	"testing"
	"time"
)

func TestOptions(t *testing.T) {
	t.Parallel()

	o, err := options(Config{URL: "redis://:secret@cache:6380/3"})
	if err != nil {
		t.Fatalf("options: %v", err)
	}
	if o.Addr != "cache:6380" || o.DB != 3 || o.Password != "secret" {
		t.Fatalf("url not applied: addr=%s db=%d", o.Addr, o.DB)
	}

	o, err = options(Config{Addr: "localhost:6379", DB: 2})
	if err != nil {
		t.Fatalf("options: %v", err)
	}
	if o.Addr != "localhost:6379" || o.DB != 2 {
		t.Fatalf("addr not applied: %+v", o)
	}

	if _, err := options(Config{}); err == nil {
		t.Fatalf("expected error with neither url nor addr")
	}
	if _, err := options(Config{URL: "http://nope"}); err == nil {
		t.Fatalf("expected scheme error")
	}
}

func TestOpen_Unreachable(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithTimeout(context.Background(), 500*time.Millisecond)
	defer cancel()

	// port 1 is never a redis
	if _, err := Open(ctx, Config{Addr: "127.0.0.1:1"}); err == nil {
		t.Fatalf("expected ping failure")
	}
}

func TestNilClient(t *testing.T) {
	t.Parallel()

	var r *RDS
	if err := r.Close(); err != nil {
		t.Fatalf("nil Close: %v", err)
	}
	if err := r.Ping(context.Background()); err == nil {
		t.Fatalf("nil Ping should error")
	}
}

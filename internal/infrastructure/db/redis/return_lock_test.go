package redis

import (
	"testing"

	"github.com/redis/go-redis/v9"
)

func TestNewReturnLock_DefaultTTL(t *testing.T) {
	l := NewReturnLock(redis.NewClient(&redis.Options{Addr: "localhost:0"}), 0)
	if l.ttl != defaultLockTTL {
		t.Fatalf("expected default ttl %v, got %v", defaultLockTTL, l.ttl)
	}
}

func TestReturnLock_KeyPerPair(t *testing.T) {
	l := NewReturnLock(nil, 0)

	a := l.key("c1", "m1")
	if a != "return-lock:c1:m1" {
		t.Fatalf("unexpected key %q", a)
	}
	if a == l.key("c1", "m2") || a == l.key("c2", "m1") {
		t.Fatal("keys must differ per customer/movie pair")
	}
}

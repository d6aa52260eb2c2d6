package cache

import (
	"context"
	"testing"
	"time"
)

var _ Cache = (*Memory)(nil)

func TestMemory_GetSetDelete(t *testing.T) {
	t.Parallel()
	m, err := NewMemory(100, time.Minute)
	if err != nil {
		t.Fatal(err)
	}
	ctx := context.Background()

	key := Key("/WeatherForecast/0", "2022-01-01T07:00:00.000000000Z")
	if _, ok := m.Get(ctx, key); ok {
		t.Error("should not find missing key")
	}

	m.Set(ctx, key, []byte(`{"summary":"summary 1"}`), time.Minute)
	// otter may apply writes asynchronously; wait briefly.
	time.Sleep(50 * time.Millisecond)

	val, ok := m.Get(ctx, key)
	if !ok {
		t.Fatal("should find key")
	}
	if string(val) != `{"summary":"summary 1"}` {
		t.Errorf("value = %q", val)
	}

	m.Delete(ctx, key)
	if _, ok := m.Get(ctx, key); ok {
		t.Error("should not find deleted key")
	}
}

func TestMemory_TTLExpiry(t *testing.T) {
	t.Parallel()
	m, err := NewMemory(100, time.Hour)
	if err != nil {
		t.Fatal(err)
	}
	ctx := context.Background()

	m.Set(ctx, "expiring", []byte("data"), 50*time.Millisecond)
	time.Sleep(100 * time.Millisecond)

	if _, ok := m.Get(ctx, "expiring"); ok {
		t.Error("entry should be expired")
	}
}

func TestMemory_Purge(t *testing.T) {
	t.Parallel()
	m, err := NewMemory(100, time.Minute)
	if err != nil {
		t.Fatal(err)
	}
	ctx := context.Background()

	m.Set(ctx, "a", []byte("1"), time.Minute)
	m.Set(ctx, "b", []byte("2"), time.Minute)
	time.Sleep(50 * time.Millisecond)

	m.Purge(ctx)

	if _, ok := m.Get(ctx, "a"); ok {
		t.Error("purge should remove all keys")
	}
	if _, ok := m.Get(ctx, "b"); ok {
		t.Error("purge should remove all keys")
	}
}

func TestKey_TokenScoped(t *testing.T) {
	t.Parallel()

	if Key("/WeatherForecast", "t1") == Key("/WeatherForecast", "t2") {
		t.Error("keys for different tokens must differ")
	}
}

package kv_test

import (
	"context"
	"testing"
	"time"

	"github.com/yeisme/pressvault/pkg/internal/storage/kv"
)

// TestMemoryKVBasic 测试内存 KV 的基本 Set/Get/Delete/Exists.
func TestMemoryKVBasic(t *testing.T) {
	ctx := context.Background()

	store, err := kv.NewKVStore(ctx, kv.KVTypeMemory, nil)
	if err != nil {
		t.Fatalf("create memory kv: %v", err)
	}
	defer store.Close()

	if err := store.Set(ctx, "k1", []byte("v1"), 0); err != nil {
		t.Fatalf("set failed: %v", err)
	}

	got, err := store.Get(ctx, "k1")
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}

	if string(got) != "v1" {
		t.Errorf("expected v1, got %s", got)
	}

	exists, err := store.Exists(ctx, "k1")
	if err != nil || !exists {
		t.Errorf("expected key to exist, exists=%v err=%v", exists, err)
	}

	if err := store.Delete(ctx, "k1"); err != nil {
		t.Fatalf("delete failed: %v", err)
	}

	if _, err := store.Get(ctx, "k1"); err == nil {
		t.Error("expected error for deleted key, got nil")
	}
}

// TestMemoryKVTTL 测试带 TTL 的键会过期.
func TestMemoryKVTTL(t *testing.T) {
	ctx := context.Background()

	store, err := kv.NewKVStore(ctx, kv.KVTypeMemory, nil)
	if err != nil {
		t.Fatalf("create memory kv: %v", err)
	}
	defer store.Close()

	// TTL 以秒为粒度，使用 1s 并等待略超过 1s
	if err := store.Set(ctx, "ttl-key", []byte("v"), time.Second); err != nil {
		t.Fatalf("set failed: %v", err)
	}

	if _, err := store.Get(ctx, "ttl-key"); err != nil {
		t.Fatalf("get before expiry failed: %v", err)
	}

	time.Sleep(1500 * time.Millisecond)

	if _, err := store.Get(ctx, "ttl-key"); err == nil {
		t.Error("expected error for expired key, got nil")
	}

	exists, err := store.Exists(ctx, "ttl-key")
	if err != nil {
		t.Fatalf("exists failed: %v", err)
	}

	if exists {
		t.Error("expected expired key to not exist")
	}
}

// TestMemoryKVKeys 测试 Keys 列举.
func TestMemoryKVKeys(t *testing.T) {
	ctx := context.Background()

	store, err := kv.NewKVStore(ctx, kv.KVTypeMemory, nil)
	if err != nil {
		t.Fatalf("create memory kv: %v", err)
	}
	defer store.Close()

	for _, k := range []string{"a", "b", "c"} {
		if err := store.Set(ctx, k, []byte("v"), 0); err != nil {
			t.Fatalf("set %s failed: %v", k, err)
		}
	}

	keys, err := store.Keys(ctx, "*")
	if err != nil {
		t.Fatalf("keys failed: %v", err)
	}

	if len(keys) != 3 {
		t.Errorf("expected 3 keys, got %d", len(keys))
	}
}

// TestMemoryKVKeysPrefix 测试前缀模式列举.
func TestMemoryKVKeysPrefix(t *testing.T) {
	ctx := context.Background()

	store, err := kv.NewKVStore(ctx, kv.KVTypeMemory, nil)
	if err != nil {
		t.Fatalf("create memory kv: %v", err)
	}
	defer store.Close()

	for _, k := range []string{"rc:1", "rc:2", "meta:tags"} {
		if err := store.Set(ctx, k, []byte("v"), 0); err != nil {
			t.Fatalf("set %s failed: %v", k, err)
		}
	}

	keys, err := store.Keys(ctx, "rc:*")
	if err != nil {
		t.Fatalf("keys failed: %v", err)
	}

	if len(keys) != 2 {
		t.Errorf("expected 2 prefixed keys, got %v", keys)
	}

	keys, err = store.Keys(ctx, "meta:tags")
	if err != nil {
		t.Fatalf("keys failed: %v", err)
	}

	if len(keys) != 1 || keys[0] != "meta:tags" {
		t.Errorf("exact match = %v", keys)
	}
}

// TestNewKVStoreUnsupported 测试未注册类型返回错误.
func TestNewKVStoreUnsupported(t *testing.T) {
	if _, err := kv.NewKVStore(context.Background(), "bogus", nil); err == nil {
		t.Error("expected error for unsupported kv type, got nil")
	}
}

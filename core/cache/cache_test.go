package cache

import (
	"testing"
	"time"
)

func TestNewCache(t *testing.T) {
	c := NewCache()
	if c == nil {
		t.Fatal("NewCache returned nil")
	}
}

func TestGetInstance(t *testing.T) {
	inst := GetInstance()
	if inst == nil {
		t.Fatal("GetInstance returned nil")
	}
	if GetInstance() != inst {
		t.Error("GetInstance should return same instance")
	}
}

func TestSet_Get(t *testing.T) {
	c := GetInstance()
	key := "test-set-get"
	c.Set(key, "val", 0, nil)
	got, ok := c.Get(key)
	if !ok {
		t.Fatal("Get: want true")
	}
	if got != "val" {
		t.Errorf("Get = %v, want val", got)
	}
	c.Delete(key)
}

func TestGet_Missing(t *testing.T) {
	c := GetInstance()
	_, ok := c.Get("nonexistent-key-xyz")
	if ok {
		t.Error("Get missing key: want false")
	}
}

func TestDelete(t *testing.T) {
	c := GetInstance()
	key := "test-delete"
	c.Set(key, "x", 0, nil)
	c.Delete(key)
	_, ok := c.Get(key)
	if ok {
		t.Error("Delete: key should be gone")
	}
}

func TestSet_TTLExpires(t *testing.T) {
	c := NewCache()
	key := "ttl-key"
	c.Set(key, "v", 1, nil)
	if _, ok := c.Get(key); !ok {
		t.Fatal("Get before expiry: want true")
	}
	time.Sleep(1100 * time.Millisecond)
	if _, ok := c.Get(key); ok {
		t.Error("Get after expiry: want false")
	}
}

func TestInvalidateTags(t *testing.T) {
	c := GetInstance()
	c.Set("tag-k1", "v1", 0, []string{"t1"})
	c.Set("tag-k2", "v2", 0, []string{"t1"})
	c.Set("tag-k3", "v3", 0, []string{"other"})

	c.InvalidateTags([]string{"t1"})
	if _, ok := c.Get("tag-k1"); ok {
		t.Error("InvalidateTags: tag-k1 should be gone")
	}
	if _, ok := c.Get("tag-k2"); ok {
		t.Error("InvalidateTags: tag-k2 should be gone")
	}
	if _, ok := c.Get("tag-k3"); !ok {
		t.Error("InvalidateTags: tag-k3 should survive")
	}
	c.Delete("tag-k3")
}

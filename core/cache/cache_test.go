package cache

import (
	"testing"
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
	c := NewCache()
	c.Set("k", "val", 0, nil)
	got, ok := c.Get("k")
	if !ok {
		t.Fatal("Get: want true")
	}
	if got != "val" {
		t.Errorf("Get = %v, want val", got)
	}
}

func TestGet_Missing(t *testing.T) {
	c := NewCache()
	_, ok := c.Get("nonexistent-key-xyz")
	if ok {
		t.Error("Get missing key: want false")
	}
}

func TestDelete(t *testing.T) {
	c := NewCache()
	c.Set("k", "x", 0, nil)
	c.Delete("k")
	if _, ok := c.Get("k"); ok {
		t.Error("Delete: key should be gone")
	}
}

func TestGetOrDefault(t *testing.T) {
	c := NewCache()
	if got := c.GetOrDefault("missing", "default"); got != "default" {
		t.Errorf("GetOrDefault missing = %v, want default", got)
	}
	c.Set("k", "stored", 0, nil)
	if got := c.GetOrDefault("k", "default"); got != "stored" {
		t.Errorf("GetOrDefault found = %v, want stored", got)
	}
}

func TestDeleteMany(t *testing.T) {
	c := NewCache()
	c.Set("dm1", 1, 0, nil)
	c.Set("dm2", 2, 0, nil)
	c.DeleteMany("dm1", "dm2")
	if _, ok := c.Get("dm1"); ok {
		t.Error("DeleteMany: dm1 should be gone")
	}
	if _, ok := c.Get("dm2"); ok {
		t.Error("DeleteMany: dm2 should be gone")
	}
}

func TestTagKey_GetKeysByTag_DeleteByTag(t *testing.T) {
	c := NewCache()
	c.Set("tag-k1", "v1", 0, []string{TagSnapshot})
	c.Set("tag-k2", "v2", 0, []string{TagSnapshot})

	keys := c.GetKeysByTag(TagSnapshot)
	if len(keys) != 2 {
		t.Errorf("GetKeysByTag = %d keys, want 2", len(keys))
	}

	c.DeleteByTag(TagSnapshot)
	if _, ok := c.Get("tag-k1"); ok {
		t.Error("DeleteByTag: tag-k1 should be gone")
	}
	if _, ok := c.Get("tag-k2"); ok {
		t.Error("DeleteByTag: tag-k2 should be gone")
	}
}

func TestDelete_RemovesFromTagIndex(t *testing.T) {
	c := NewCache()
	c.Set("del-tag-key", "v", 0, []string{"t2"})
	c.Delete("del-tag-key")
	if keys := c.GetKeysByTag("t2"); len(keys) != 0 {
		t.Errorf("GetKeysByTag after Delete = %d keys, want 0", len(keys))
	}
}

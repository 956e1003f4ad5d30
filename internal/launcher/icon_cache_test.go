package launcher

import (
	"errors"
	"testing"
)

func TestIconCacheLoadsOnce(t *testing.T) {
	loads := 0
	cache, err := NewIconCache(4, func(path string, size int) (string, error) {
		loads++
		return path, nil
	})
	if err != nil {
		t.Fatalf("Failed to create icon cache: %v", err)
	}

	for i := 0; i < 3; i++ {
		icon, err := cache.GetIcon("/icons/eclipse.png", 96)
		if err != nil {
			t.Fatalf("GetIcon failed: %v", err)
		}
		if icon != "/icons/eclipse.png" {
			t.Errorf("Unexpected icon %q", icon)
		}
	}

	if loads != 1 {
		t.Errorf("Expected 1 load, got %d", loads)
	}

	hits, misses, size := cache.GetStats()
	if hits != 2 || misses != 1 || size != 1 {
		t.Errorf("Unexpected stats hits=%d misses=%d size=%d", hits, misses, size)
	}
}

func TestIconCacheRemembersFailures(t *testing.T) {
	loads := 0
	decodeErr := errors.New("not an image")
	cache, _ := NewIconCache(4, func(path string, size int) (int, error) {
		loads++
		return 0, decodeErr
	})

	for i := 0; i < 2; i++ {
		if _, err := cache.GetIcon("/icons/broken.png", 96); !errors.Is(err, decodeErr) {
			t.Errorf("Expected decode error, got %v", err)
		}
	}
	if loads != 1 {
		t.Errorf("Expected 1 load attempt, got %d", loads)
	}

	cache.Clear()
	cache.GetIcon("/icons/broken.png", 96)
	if loads != 2 {
		t.Errorf("Expected reload after Clear, got %d loads", loads)
	}
}

func TestIconCacheEmptyPath(t *testing.T) {
	cache, _ := NewIconCache(0, func(path string, size int) (int, error) {
		t.Fatal("Loader must not be called for an empty path")
		return 0, nil
	})
	if _, err := cache.GetIcon("", 96); err == nil {
		t.Error("Expected an error for an empty path")
	}
}

func TestNewIconCacheNilLoader(t *testing.T) {
	if _, err := NewIconCache[int](4, nil); err == nil {
		t.Error("Expected an error for a nil loader")
	}
}

package app

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func newTestCache(t *testing.T) *ImageCache {
	t.Helper()
	return NewImageCache(t.TempDir(), 4850, testLogger())
}

func TestImageCache_PutAndGet(t *testing.T) {
	cache := newTestCache(t)

	name, err := cache.Put("urgency-risk-20260830-1200.png", []byte("png-bytes"))
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if name != "urgency-risk-20260830-1200.png" {
		t.Errorf("Expected cached name returned, got %s", name)
	}

	data, ok := cache.Get(name)
	if !ok {
		t.Fatal("Expected cached image found")
	}
	if string(data) != "png-bytes" {
		t.Error("Cached data does not round-trip")
	}
}

func TestImageCache_Get_Missing(t *testing.T) {
	cache := newTestCache(t)
	if _, ok := cache.Get("nope.png"); ok {
		t.Error("Expected miss for unknown image")
	}
}

func TestImageCache_URLs(t *testing.T) {
	cache := newTestCache(t)

	if cache.URL("a.png") != "/images/a.png" {
		t.Errorf("Unexpected URL: %s", cache.URL("a.png"))
	}
	full := cache.FullURL("a.png")
	if full != "http://localhost:4850/images/a.png" {
		t.Errorf("Unexpected full URL: %s", full)
	}
}

func TestImageCache_PutReplacesOlderSameKind(t *testing.T) {
	cache := newTestCache(t)

	if _, err := cache.Put("urgency-risk-20260830-1100.png", []byte("old")); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if _, err := cache.Put("revenue-risk-20260830-1100.png", []byte("other-kind")); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if _, err := cache.Put("urgency-risk-20260830-1200.png", []byte("new")); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if _, ok := cache.Get("urgency-risk-20260830-1100.png"); ok {
		t.Error("Older image of the same kind should be cleaned")
	}
	if _, ok := cache.Get("urgency-risk-20260830-1200.png"); !ok {
		t.Error("Latest image must survive")
	}
	if _, ok := cache.Get("revenue-risk-20260830-1100.png"); !ok {
		t.Error("Images of other kinds must survive")
	}
}

func TestImageName(t *testing.T) {
	name := ImageName("Urgency")
	if !strings.HasPrefix(name, "urgency-risk-") {
		t.Errorf("Expected lower-cased kind prefix, got %s", name)
	}
	if !strings.HasSuffix(name, ".png") {
		t.Errorf("Expected .png suffix, got %s", name)
	}
}

func TestImageCache_WritesToDir(t *testing.T) {
	dir := t.TempDir()
	cache := NewImageCache(dir, 4850, testLogger())

	if _, err := cache.Put("revenue-risk-20260830-1200.png", []byte("x")); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "revenue-risk-20260830-1200.png")); err != nil {
		t.Errorf("Expected file on disk: %v", err)
	}
}

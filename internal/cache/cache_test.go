package cache

import (
	"testing"
	"time"
)

func TestMarkupKey(t *testing.T) {
	a := MarkupKey("en", "what-is-circularity", "WebPage")
	b := MarkupKey("en", "what-is-circularity", "WebPage")
	if a != b {
		t.Error("identical inputs must derive identical keys")
	}

	// Any input change produces a different key
	variants := []string{
		MarkupKey("de", "what-is-circularity", "WebPage"),
		MarkupKey("en", "take-back", "WebPage"),
		MarkupKey("en", "what-is-circularity", "FAQPage"),
	}
	for _, v := range variants {
		if v == a {
			t.Errorf("key collision for variant input")
		}
	}
}

func TestMemoryCache_RoundTrip(t *testing.T) {
	c := NewMemoryCache(time.Minute, time.Minute)

	key := MarkupKey("en", "slug", "WebPage")
	if _, found := c.Get(key); found {
		t.Error("unexpected hit on empty cache")
	}

	payload := []byte(`{"@context":"https://schema.org"}`)
	if err := c.Set(key, payload, time.Minute); err != nil {
		t.Fatal(err)
	}

	got, found := c.Get(key)
	if !found || string(got) != string(payload) {
		t.Errorf("Get = %q, %v", got, found)
	}

	if err := c.Delete(key); err != nil {
		t.Fatal(err)
	}
	if _, found := c.Get(key); found {
		t.Error("entry survived delete")
	}
}

func TestMemoryCache_Clear(t *testing.T) {
	c := NewMemoryCache(time.Minute, time.Minute)
	_ = c.Set("a", []byte("1"), time.Minute)
	_ = c.Set("b", []byte("2"), time.Minute)

	if err := c.Clear(); err != nil {
		t.Fatal(err)
	}
	if _, found := c.Get("a"); found {
		t.Error("entry survived clear")
	}
}

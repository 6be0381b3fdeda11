package storage

import (
	"bytes"
	"testing"
)

func TestKVRoundTrip(t *testing.T) {
	kv, err := Open(t.TempDir())
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer kv.Close()

	def := []byte("default")
	if got := kv.Get("missing", def); !bytes.Equal(got, def) {
		t.Errorf("Get(missing) = %q, want default %q", got, def)
	}

	if err := kv.Update("history", []byte(`[{"id":"1"}]`)); err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if got := kv.Get("history", nil); !bytes.Equal(got, []byte(`[{"id":"1"}]`)) {
		t.Errorf("Get after Update = %q", got)
	}

	// Overwrite replaces, not appends.
	if err := kv.Update("history", []byte(`[]`)); err != nil {
		t.Fatalf("second Update failed: %v", err)
	}
	if got := kv.Get("history", nil); !bytes.Equal(got, []byte(`[]`)) {
		t.Errorf("Get after overwrite = %q", got)
	}
}

func TestKVDelete(t *testing.T) {
	kv, err := Open(t.TempDir())
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer kv.Close()

	if err := kv.Update("k", []byte("v")); err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if err := kv.Delete("k"); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if got := kv.Get("k", nil); got != nil {
		t.Errorf("Get after Delete = %q, want nil", got)
	}

	// Deleting an absent key is fine.
	if err := kv.Delete("k"); err != nil {
		t.Errorf("Delete of absent key errored: %v", err)
	}
}

func TestKVPersistsAcrossOpens(t *testing.T) {
	dir := t.TempDir()

	kv, err := Open(dir)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	if err := kv.Update("k", []byte("survives")); err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	kv.Close()

	reopened, err := Open(dir)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer reopened.Close()

	if got := reopened.Get("k", nil); !bytes.Equal(got, []byte("survives")) {
		t.Errorf("Get after reopen = %q, want %q", got, "survives")
	}
}

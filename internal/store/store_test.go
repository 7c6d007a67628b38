package store

import (
	"errors"
	"path/filepath"
	"testing"
)

func openTemp(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "state.db"))
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestGet_MissingKey(t *testing.T) {
	s := openTemp(t)

	if _, err := s.Get(StateKey); !errors.Is(err, ErrNotFound) {
		t.Errorf("Get(missing) = %v, want ErrNotFound", err)
	}
}

func TestPutGet_Upsert(t *testing.T) {
	s := openTemp(t)

	if err := s.Put(StateKey, []byte(`{"v":1}`)); err != nil {
		t.Fatal(err)
	}
	if err := s.Put(StateKey, []byte(`{"v":2}`)); err != nil {
		t.Fatal(err)
	}

	got, err := s.Get(StateKey)
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != `{"v":2}` {
		t.Errorf("Get = %q, want last write", got)
	}
}

func TestDelete(t *testing.T) {
	s := openTemp(t)

	if err := s.Put(StateKey, []byte("x")); err != nil {
		t.Fatal(err)
	}
	if err := s.Delete(StateKey); err != nil {
		t.Fatal(err)
	}
	if _, err := s.Get(StateKey); !errors.Is(err, ErrNotFound) {
		t.Errorf("Get after Delete = %v, want ErrNotFound", err)
	}

	// Deleting a missing key is a no-op.
	if err := s.Delete(StateKey); err != nil {
		t.Errorf("Delete(missing) = %v, want nil", err)
	}
}

func TestOpen_CreatesParentDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "state.db")
	s, err := Open(path)
	if err != nil {
		t.Fatalf("Open with missing parent dirs: %v", err)
	}
	_ = s.Close()
}

func TestPersistenceAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.db")

	s, err := Open(path)
	if err != nil {
		t.Fatal(err)
	}
	if err := s.Put(StateKey, []byte("persisted")); err != nil {
		t.Fatal(err)
	}
	if err := s.Close(); err != nil {
		t.Fatal(err)
	}

	s2, err := Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer func() { _ = s2.Close() }()

	got, err := s2.Get(StateKey)
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != "persisted" {
		t.Errorf("Get after reopen = %q, want persisted", got)
	}
}

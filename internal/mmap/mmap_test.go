package mmap

import (
	"testing"
)

func TestMapAnon(t *testing.T) {
	t.Run("basic mapping", func(t *testing.T) {
		m, err := MapAnon(4096)
		if err != nil {
			t.Fatalf("MapAnon failed: %v", err)
		}
		defer m.Close()

		if m.Size() != 4096 {
			t.Errorf("expected size=4096, got %d", m.Size())
		}

		data := m.Bytes()
		if len(data) != 4096 {
			t.Fatalf("expected len=4096, got %d", len(data))
		}

		// Anonymous mappings are zero-filled.
		for i, b := range data {
			if b != 0 {
				t.Fatalf("byte at index %d not zero: %d", i, b)
			}
		}

		// Memory must be writable and readable.
		data[0] = 0xab
		data[4095] = 0xcd
		if data[0] != 0xab || data[4095] != 0xcd {
			t.Error("mapping not read-write")
		}
	})

	t.Run("invalid size", func(t *testing.T) {
		for _, size := range []int{0, -1} {
			if _, err := MapAnon(size); err == nil {
				t.Errorf("expected error for size=%d", size)
			}
		}
	})

	t.Run("close is idempotent", func(t *testing.T) {
		m, err := MapAnon(1024)
		if err != nil {
			t.Fatalf("MapAnon failed: %v", err)
		}
		if err := m.Close(); err != nil {
			t.Fatalf("first Close failed: %v", err)
		}
		if err := m.Close(); err != nil {
			t.Errorf("second Close failed: %v", err)
		}
		if m.Bytes() != nil {
			t.Error("Bytes() should return nil after Close")
		}
	})
}

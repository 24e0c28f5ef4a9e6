package storage

import "testing"

func TestMemoryWriter(t *testing.T) {
	t.Run("records content per path", func(t *testing.T) {
		writer := NewMemoryWriter()

		if err := writer.WriteFile("modules/game.rst", "page"); err != nil {
			t.Fatalf("Failed to write: %v", err)
		}

		content, ok := writer.Content("modules/game.rst")
		if !ok {
			t.Fatal("Expected content for written path")
		}
		if content != "page" {
			t.Errorf("Expected content %q, got %q", "page", content)
		}

		if _, ok := writer.Content("modules/other.rst"); ok {
			t.Error("Unwritten path should have no content")
		}
	})

	t.Run("keeps first-write order without duplicates", func(t *testing.T) {
		writer := NewMemoryWriter()

		for _, path := range []string{"b.rst", "a.rst", "b.rst"} {
			if err := writer.WriteFile(path, path); err != nil {
				t.Fatalf("Failed to write: %v", err)
			}
		}

		paths := writer.Paths()
		want := []string{"b.rst", "a.rst"}
		if len(paths) != len(want) {
			t.Fatalf("Expected %d paths, got %v", len(want), paths)
		}
		for i := range want {
			if paths[i] != want[i] {
				t.Errorf("Paths()[%d] = %q, want %q", i, paths[i], want[i])
			}
		}
	})

	t.Run("overwrite keeps the last content", func(t *testing.T) {
		writer := NewMemoryWriter()

		if err := writer.WriteFile("index.rst", "first"); err != nil {
			t.Fatalf("Failed to write: %v", err)
		}
		if err := writer.WriteFile("index.rst", "second"); err != nil {
			t.Fatalf("Failed to overwrite: %v", err)
		}

		if content, _ := writer.Content("index.rst"); content != "second" {
			t.Errorf("Expected content %q, got %q", "second", content)
		}
	})
}

package studio

import "testing"

func TestSourceRegistry(t *testing.T) {
	t.Run("Add", func(t *testing.T) {
		r := NewSourceRegistry()

		if !r.Add("notes.pdf") {
			t.Error("expected first insert to report true")
		}

		if r.Size() != 1 {
			t.Errorf("expected size 1, got %d", r.Size())
		}

		t.Run("Duplicate Is No-Op", func(t *testing.T) {
			if r.Add("notes.pdf") {
				t.Error("expected duplicate insert to report false")
			}

			if r.Size() != 1 {
				t.Errorf("expected size to stay 1, got %d", r.Size())
			}
		})
	})

	t.Run("First", func(t *testing.T) {
		r := NewSourceRegistry()

		if _, ok := r.First(); ok {
			t.Error("expected no first source on empty registry")
		}

		r.Add("Intro_to_ML.pdf")
		r.Add("chapter_2.txt")

		first, ok := r.First()
		if !ok {
			t.Fatal("expected a first source")
		}
		if first != "Intro_to_ML.pdf" {
			t.Errorf("expected insertion-first source, got %s", first)
		}
	})

	t.Run("List Preserves Insertion Order", func(t *testing.T) {
		r := NewSourceRegistry()
		r.Add("a.pdf")
		r.Add("b.txt")
		r.Add("a.pdf")
		r.Add("c.pdf")

		got := r.List()
		want := []string{"a.pdf", "b.txt", "c.pdf"}

		if len(got) != len(want) {
			t.Fatalf("expected %d sources, got %d", len(want), len(got))
		}
		for i := range want {
			if got[i] != want[i] {
				t.Errorf("position %d: expected %s, got %s", i, want[i], got[i])
			}
		}
	})
}

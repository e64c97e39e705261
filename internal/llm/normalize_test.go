package llm

import "testing"

func TestNormalizeText(t *testing.T) {
	t.Run("CRLFBecomesLF", func(t *testing.T) {
		got := NormalizeText("a\r\nb\rc")
		if got != "a\nb\nc" {
			t.Errorf("Expected 'a\\nb\\nc', got %q", got)
		}
	})

	t.Run("BlankRunsCollapse", func(t *testing.T) {
		got := NormalizeText("a\n\n\n\n\nb")
		if got != "a\n\nb" {
			t.Errorf("Expected single blank line, got %q", got)
		}
	})

	t.Run("TrimsSurroundingWhitespace", func(t *testing.T) {
		got := NormalizeText("  \n plan text \n\n")
		if got != "plan text" {
			t.Errorf("Expected 'plan text', got %q", got)
		}
	})

	t.Run("Idempotent", func(t *testing.T) {
		once := NormalizeText("a\r\n\n\n\nb\n")
		twice := NormalizeText(once)
		if once != twice {
			t.Errorf("Normalization is not idempotent: %q vs %q", once, twice)
		}
	})

	t.Run("SingleBlankLineKept", func(t *testing.T) {
		got := NormalizeText("a\n\nb")
		if got != "a\n\nb" {
			t.Errorf("Expected existing blank line preserved, got %q", got)
		}
	})
}

package research

import (
	"reflect"
	"strings"
	"testing"
)

func TestExtractFactsFiltersAndRanks(t *testing.T) {
	t.Parallel()

	articles := []article{
		{
			Content: "The central bank raised interest rates to 5% in a surprise move on markets. " +
				"Short sentence here. " +
				"Officials announced the rate decision would hold through the winter months ahead. " +
				"A perfectly ordinary sentence without any factual markers in it at all whatsoever.",
		},
	}

	facts := ExtractFacts(articles, "interest rates")

	if len(facts) != 2 {
		t.Fatalf("expected 2 facts, got %d: %v", len(facts), facts)
	}
	// The 5% sentence mentions both topic words and ranks first.
	if !strings.Contains(facts[0], "5%") {
		t.Fatalf("expected the percentage fact first, got %q", facts[0])
	}
}

func TestExtractFactsDeduplicatesByPrefix(t *testing.T) {
	t.Parallel()

	sentence := "Officials announced the new rail line will open in 2027 after years of delay"
	articles := []article{
		{Content: sentence + "."},
		{Content: sentence + "."},
	}

	facts := ExtractFacts(articles, "rail line")
	if len(facts) != 1 {
		t.Fatalf("expected duplicate facts collapsed to 1, got %d", len(facts))
	}
}

func TestExtractFactsIsDeterministic(t *testing.T) {
	t.Parallel()

	articles := []article{
		{Content: "The firm reported revenue of $4 million for the quarter ending in March. " +
			"Analysts said the result confirmed a broader recovery across the sector overall."},
	}

	first := ExtractFacts(articles, "revenue")
	second := ExtractFacts(articles, "revenue")
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("expected identical output for identical input:\n%v\n%v", first, second)
	}
}

func TestExtractFactsUsesSnippetWhenContentEmpty(t *testing.T) {
	t.Parallel()

	articles := []article{
		{Snippet: "The agency confirmed the launch window opens in 2026 for the lunar mission."},
	}

	facts := ExtractFacts(articles, "lunar mission")
	if len(facts) != 1 {
		t.Fatalf("expected snippet fallback to yield 1 fact, got %d", len(facts))
	}
}

func TestSummarize(t *testing.T) {
	t.Parallel()

	t.Run("empty facts", func(t *testing.T) {
		t.Parallel()

		got := Summarize("obscure topic", nil)
		if got != "Research on: obscure topic" {
			t.Fatalf("unexpected summary: %q", got)
		}
	})

	t.Run("joins top three", func(t *testing.T) {
		t.Parallel()

		got := Summarize("x", []string{"One.", "Two.", "Three.", "Four."})
		if got != "One. Two. Three." {
			t.Fatalf("unexpected summary: %q", got)
		}
	})

	t.Run("caps at 500 chars", func(t *testing.T) {
		t.Parallel()

		long := strings.Repeat("a", 400)
		got := Summarize("x", []string{long, long})
		if len(got) != 500 {
			t.Fatalf("expected 500 chars, got %d", len(got))
		}
		if !strings.HasSuffix(got, "...") {
			t.Fatalf("expected ellipsis suffix, got %q", got[len(got)-10:])
		}
	})
}

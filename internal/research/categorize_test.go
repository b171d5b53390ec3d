package research

import "testing"

func TestCategorize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		topic   string
		content string
		want    string
	}{
		{
			name:    "military topic wins on keyword count",
			topic:   "border conflict",
			content: "The army moved troops and weapons to the border as the conflict escalated.",
			want:    "military",
		},
		{
			name:    "health content",
			topic:   "new vaccine rollout",
			content: "Hospitals report the vaccine reduces disease severity, healthcare officials say.",
			want:    "health",
		},
		{
			name:    "no keyword hits falls back to general",
			topic:   "sourdough baking",
			content: "Flour, water, salt. Long fermentation improves flavor.",
			want:    CategoryGeneral,
		},
		{
			name:    "tie between categories falls back to general",
			topic:   "",
			content: "The election result moved the market.",
			want:    CategoryGeneral,
		},
		{
			name:    "topic alone is enough",
			topic:   "inflation and tariff policy",
			content: "",
			want:    "economy",
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			if got := Categorize(tc.topic, tc.content); got != tc.want {
				t.Fatalf("Categorize(%q) = %q, want %q", tc.topic, got, tc.want)
			}
		})
	}
}

func TestCategorizeKeywordCountsOncePerCategory(t *testing.T) {
	t.Parallel()

	// "president" in both topic and content still scores one point, so a
	// two-keyword category beats a repeated single keyword.
	topic := "president speech"
	content := "The president spoke while the market reacted and inflation rose."

	if got := Categorize(topic, content); got != "economy" {
		t.Fatalf("Categorize = %q, want economy", got)
	}
}

// Package input normalizes raw user input (a literal topic string or a
// text file path) into the parsed record the non-research composer path
// consumes.
package input

import (
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/harshvardhanraju/video-content-creator/internal/domain"
)

const (
	maxTitleLen  = 100
	maxKeyPoints = 8
	minPointLen  = 20
)

var (
	sentenceSplitExpr = regexp.MustCompile(`[.!?]+`)
	headingPrefixExpr = regexp.MustCompile(`^[#\-*]+\s*`)
)

// Parse normalizes raw input into a ParsedInput. When raw names an
// existing file its contents are used; otherwise raw is treated as
// literal text. Empty input is a user-visible error at this boundary so
// the core pipeline never sees it.
func Parse(raw string, targetLength int) (domain.ParsedInput, error) {
	text := strings.TrimSpace(raw)
	if text == "" {
		return domain.ParsedInput{}, fmt.Errorf("input is empty")
	}

	if looksLikePath(text) {
		data, err := os.ReadFile(text)
		if err != nil {
			return domain.ParsedInput{}, fmt.Errorf("read input file: %w", err)
		}
		text = strings.TrimSpace(string(data))
		if text == "" {
			return domain.ParsedInput{}, fmt.Errorf("input file %s is empty", raw)
		}
	}

	return domain.ParsedInput{
		Title:        extractTitle(text),
		KeyPoints:    extractKeyPoints(text),
		Context:      text,
		TargetLength: targetLength,
	}, nil
}

// looksLikePath treats input as a file reference only when the file
// actually exists, so plain topics containing slashes still parse as text.
func looksLikePath(s string) bool {
	if strings.ContainsAny(s, "\n") {
		return false
	}
	info, err := os.Stat(s)
	return err == nil && !info.IsDir()
}

// extractTitle takes the first non-empty, non-heading line, stripped of
// markdown prefixes and capped at 100 characters.
func extractTitle(text string) string {
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		title := headingPrefixExpr.ReplaceAllString(line, "")
		if len(title) > maxTitleLen {
			title = title[:maxTitleLen]
		}
		return title
	}

	words := strings.Fields(text)
	if len(words) > 8 {
		words = words[:8]
	}
	return strings.Join(words, " ")
}

// extractKeyPoints splits the text into sentences and keeps the
// meaningful ones. When sentences are too sparse, paragraphs serve as
// points instead.
func extractKeyPoints(text string) []string {
	var points []string
	for _, raw := range sentenceSplitExpr.Split(text, -1) {
		sentence := strings.TrimSpace(raw)
		if len(sentence) > minPointLen {
			points = append(points, sentence)
			if len(points) >= maxKeyPoints {
				break
			}
		}
	}

	if len(points) < 3 {
		points = points[:0]
		for _, para := range strings.Split(text, "\n\n") {
			para = strings.TrimSpace(para)
			if para != "" {
				points = append(points, para)
				if len(points) >= maxKeyPoints {
					break
				}
			}
		}
	}

	return points
}

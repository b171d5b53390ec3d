package research

import (
	"context"
	"log/slog"
	"net/url"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"github.com/harshvardhanraju/video-content-creator/internal/domain"
	"github.com/harshvardhanraju/video-content-creator/internal/ports"
)

// Options bounds how much the engine pulls in per research call.
type Options struct {
	// FetchLimit caps how many retained sources are actually fetched.
	FetchLimit int
	// MaxContentChars truncates extracted page text.
	MaxContentChars int
	// NewsDomains restricts the secondary news query.
	NewsDomains []string
	// FetchDelay is the pause between consecutive page fetches.
	FetchDelay time.Duration
}

func (o Options) withDefaults() Options {
	if o.FetchLimit <= 0 {
		o.FetchLimit = 6
	}
	if o.MaxContentChars <= 0 {
		o.MaxContentChars = 5000
	}
	if len(o.NewsDomains) == 0 {
		o.NewsDomains = []string{"reuters.com", "apnews.com", "bbc.com"}
	}
	if o.FetchDelay <= 0 {
		o.FetchDelay = 500 * time.Millisecond
	}
	return o
}

// Engine turns a topic into a ResearchResult: searched sources, extracted
// facts, a rough timeline, a category, and image keywords. Every stage is
// independently failure-tolerant; the engine never fails outright for "no
// results" and degrades to an empty-facts result instead.
type Engine struct {
	search  ports.SearchProvider
	fetcher ports.Fetcher
	opts    Options
	limiter *rate.Limiter
	logger  *slog.Logger
}

// NewEngine wires the search provider and fetcher adapters.
func NewEngine(search ports.SearchProvider, fetcher ports.Fetcher, opts Options, logger *slog.Logger) *Engine {
	opts = opts.withDefaults()
	return &Engine{
		search:  search,
		fetcher: fetcher,
		opts:    opts,
		limiter: rate.NewLimiter(rate.Every(opts.FetchDelay), 1),
		logger:  logger,
	}
}

// article is one retained source with whatever content survived fetching.
type article struct {
	Title   string
	URL     string
	Snippet string
	Content string
	Domain  string
}

// Research runs the full search -> fetch -> analyze pipeline for a topic.
func (e *Engine) Research(ctx context.Context, topic string, maxSources int) domain.ResearchResult {
	if maxSources <= 0 {
		maxSources = 8
	}

	e.debug("research start", "topic", topic, "max_sources", maxSources)

	results := e.searchAll(ctx, topic, maxSources)
	e.debug("search done", "results", len(results))

	articles := e.fetchArticles(ctx, results)

	category := Categorize(topic, joinedContent(articles))
	facts := ExtractFacts(articles, topic)
	timeline := BuildTimeline(articles)
	summary := Summarize(topic, facts)
	imageKeywords := ImageKeywords(topic, facts, category)
	related := RelatedTopics(articles, topic)

	sources := make([]domain.Source, 0, len(results))
	for _, r := range results {
		sources = append(sources, domain.Source{
			Title:   r.Title,
			URL:     r.URL,
			Snippet: r.Snippet,
			Domain:  extractDomain(r.URL),
		})
	}

	e.debug("research done", "category", category, "facts", len(facts), "sources", len(sources))

	return domain.ResearchResult{
		Topic:         topic,
		Category:      category,
		Summary:       summary,
		KeyFacts:      facts,
		Timeline:      timeline,
		Sources:       sources,
		RelatedTopics: related,
		ImageKeywords: imageKeywords,
		Timestamp:     time.Now().UTC(),
	}
}

// searchAll merges the plain query with a reputable-news-domain query,
// deduplicates by URL in first-seen order, and caps at maxSources.
func (e *Engine) searchAll(ctx context.Context, topic string, maxSources int) []domain.SearchResult {
	var merged []domain.SearchResult

	if e.search == nil {
		return merged
	}

	results, err := e.search.Search(ctx, topic, maxSources)
	if err != nil {
		e.warn("web search failed", "error", err)
	} else {
		merged = append(merged, results...)
	}

	newsQuery := topic + " " + siteFilter(e.opts.NewsDomains)
	newsResults, err := e.search.Search(ctx, newsQuery, maxSources/2)
	if err != nil {
		e.debug("news search failed", "error", err)
	} else {
		merged = append(merged, newsResults...)
	}

	seen := map[string]struct{}{}
	unique := make([]domain.SearchResult, 0, len(merged))
	for _, r := range merged {
		if r.URL == "" {
			continue
		}
		if _, ok := seen[r.URL]; ok {
			continue
		}
		seen[r.URL] = struct{}{}
		unique = append(unique, r)
	}

	if len(unique) > maxSources {
		unique = unique[:maxSources]
	}
	return unique
}

// fetchArticles retrieves page content for a bounded subsample of results,
// one source at a time with an inter-request delay. A failed fetch degrades
// that single source to its snippet.
func (e *Engine) fetchArticles(ctx context.Context, results []domain.SearchResult) []article {
	limit := e.opts.FetchLimit
	if limit > len(results) {
		limit = len(results)
	}

	articles := make([]article, 0, limit)
	for _, r := range results[:limit] {
		art := article{
			Title:   r.Title,
			URL:     r.URL,
			Snippet: r.Snippet,
			Content: r.Snippet,
			Domain:  extractDomain(r.URL),
		}

		if e.fetcher != nil {
			if err := e.limiter.Wait(ctx); err != nil {
				articles = append(articles, art)
				break
			}
			markup, err := e.fetcher.Fetch(ctx, r.URL)
			if err != nil {
				e.debug("fetch failed, using snippet", "url", r.URL, "error", err)
			} else if content := ExtractContent(markup, e.opts.MaxContentChars); content != "" {
				art.Content = content
			}
		}

		articles = append(articles, art)
	}
	return articles
}

func siteFilter(domains []string) string {
	parts := make([]string, 0, len(domains))
	for _, d := range domains {
		parts = append(parts, "site:"+d)
	}
	return strings.Join(parts, " OR ")
}

func joinedContent(articles []article) string {
	var sb strings.Builder
	for _, a := range articles {
		sb.WriteString(a.Content)
		sb.WriteByte(' ')
		sb.WriteString(a.Snippet)
		sb.WriteByte(' ')
	}
	return sb.String()
}

func extractDomain(rawURL string) string {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return ""
	}
	return strings.TrimPrefix(parsed.Hostname(), "www.")
}

func (e *Engine) debug(msg string, args ...any) {
	if e.logger != nil {
		e.logger.Debug(msg, args...)
	}
}

func (e *Engine) warn(msg string, args ...any) {
	if e.logger != nil {
		e.logger.Warn(msg, args...)
	}
}

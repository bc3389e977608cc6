// Package feeds fetches recent articles from RSS/Atom feeds for the index page.
package feeds

import (
	"context"
	"fmt"
	"net/http"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/mmcdole/gofeed"

	"antennacalc/internal/logger"
	"antennacalc/internal/models"
)

// DefaultCacheTTL is how long a fetched feed is reused
const DefaultCacheTTL = 15 * time.Minute

type cacheEntry struct {
	articles []models.Article
	fetched  time.Time
}

// Fetcher retrieves and parses feeds, caching the last good result per URL
type Fetcher struct {
	client *resty.Client
	parser *gofeed.Parser
	ttl    time.Duration
	log    *logger.Logger

	mu    sync.Mutex
	cache map[string]cacheEntry
}

// NewFetcher creates a feed fetcher with the given request timeout and retry count
func NewFetcher(timeout time.Duration, retries int) *Fetcher {
	client := resty.New()
	client.SetTimeout(timeout)
	client.SetRetryCount(retries)
	client.SetRetryWaitTime(2 * time.Second)
	client.SetHeader("Accept", "application/rss+xml, application/atom+xml, application/xml;q=0.9, */*;q=0.8")

	return &Fetcher{
		client: client,
		parser: gofeed.NewParser(),
		ttl:    DefaultCacheTTL,
		log:    logger.WithComponent("feeds"),
		cache:  make(map[string]cacheEntry),
	}
}

// SetCacheTTL changes how long results are reused; zero disables caching
func (f *Fetcher) SetCacheTTL(ttl time.Duration) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.ttl = ttl
}

// Recent returns up to limit articles from the feed at url, newest first
func (f *Fetcher) Recent(ctx context.Context, url string, limit int) ([]models.Article, error) {
	if url == "" {
		return nil, nil
	}

	if articles, ok := f.cached(url); ok {
		return trim(articles, limit), nil
	}

	articles, err := f.fetch(ctx, url)
	if err != nil {
		return nil, err
	}

	f.mu.Lock()
	f.cache[url] = cacheEntry{articles: articles, fetched: time.Now()}
	f.mu.Unlock()

	f.log.Debug("Feed fetched", map[string]interface{}{
		"url":      url,
		"articles": len(articles),
	})
	return trim(articles, limit), nil
}

func (f *Fetcher) cached(url string) ([]models.Article, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()

	entry, ok := f.cache[url]
	if !ok || f.ttl <= 0 || time.Since(entry.fetched) > f.ttl {
		return nil, false
	}
	return entry.articles, true
}

func (f *Fetcher) fetch(ctx context.Context, url string) ([]models.Article, error) {
	resp, err := f.client.R().
		SetContext(ctx).
		Get(url)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch feed: %w", err)
	}
	if resp.StatusCode() != http.StatusOK {
		return nil, fmt.Errorf("feed returned status %d", resp.StatusCode())
	}

	feed, err := f.parser.ParseString(string(resp.Body()))
	if err != nil {
		return nil, fmt.Errorf("failed to parse feed: %w", err)
	}

	articles := make([]models.Article, 0, len(feed.Items))
	for _, item := range feed.Items {
		if item == nil || item.Link == "" {
			continue
		}
		a := models.Article{
			Title:   strings.TrimSpace(item.Title),
			Link:    item.Link,
			Summary: strings.TrimSpace(item.Description),
		}
		switch {
		case item.PublishedParsed != nil:
			a.Published = item.PublishedParsed.UTC()
		case item.UpdatedParsed != nil:
			a.Published = item.UpdatedParsed.UTC()
		}
		articles = append(articles, a)
	}

	sort.SliceStable(articles, func(i, j int) bool {
		return articles[i].Published.After(articles[j].Published)
	})
	return articles, nil
}

func trim(articles []models.Article, limit int) []models.Article {
	if limit > 0 && limit < len(articles) {
		return articles[:limit]
	}
	out := make([]models.Article, len(articles))
	copy(out, articles)
	return out
}

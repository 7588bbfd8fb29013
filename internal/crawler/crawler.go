// Package crawler implements a small polite web crawler that feeds fetched
// pages into the indexing engine. It stops after the configured page limit,
// paces its requests, and optionally restricts itself to the seed's domain.
package crawler

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/net/html"
	"golang.org/x/time/rate"

	"tfidf-search-engine/model"
)

const defaultUserAgent = "Educational-SearchEngine-Bot/1.0"

// Options configures a Crawler.
type Options struct {
	MaxPages   int           // Maximum number of pages to fetch (default 50)
	Delay      time.Duration // Minimum interval between requests (default 500ms)
	SameDomain bool          // Restrict crawling to the seed URL's host
	UserAgent  string
	Timeout    time.Duration // Per-request timeout (default 10s)
}

// Crawler fetches pages breadth-first starting from seed URLs.
type Crawler struct {
	client    *http.Client
	limiter   *rate.Limiter
	opts      Options
	userAgent string
}

// New creates a Crawler with the given options.
func New(opts Options) *Crawler {
	if opts.MaxPages <= 0 {
		opts.MaxPages = 50
	}
	if opts.Delay <= 0 {
		opts.Delay = 500 * time.Millisecond
	}
	if opts.Timeout <= 0 {
		opts.Timeout = 10 * time.Second
	}
	ua := opts.UserAgent
	if ua == "" {
		ua = defaultUserAgent
	}
	return &Crawler{
		client:    &http.Client{Timeout: opts.Timeout},
		limiter:   rate.NewLimiter(rate.Every(opts.Delay), 1),
		opts:      opts,
		userAgent: ua,
	}
}

// Crawl fetches pages breadth-first from the seeds until the page limit is
// reached or the frontier empties. Fetch failures are logged and skipped;
// the pages collected so far are always returned. Cancelling the context
// stops the crawl and returns what was fetched up to that point.
func (c *Crawler) Crawl(ctx context.Context, seeds []string) ([]model.Page, error) {
	frontier := make([]string, 0, len(seeds))
	seedHosts := make(map[string]bool)
	for _, s := range seeds {
		u, err := url.Parse(s)
		if err != nil || !isCrawlable(u) {
			log.Printf("Skipping invalid seed URL %q", s)
			continue
		}
		seedHosts[u.Host] = true
		frontier = append(frontier, u.String())
	}

	visited := make(map[string]bool)
	pages := make([]model.Page, 0, c.opts.MaxPages)

	for len(frontier) > 0 && len(pages) < c.opts.MaxPages {
		rawURL := frontier[0]
		frontier = frontier[1:]

		if visited[rawURL] {
			continue
		}
		visited[rawURL] = true

		if err := c.limiter.Wait(ctx); err != nil {
			return pages, err
		}

		page, err := c.fetchPage(ctx, rawURL)
		if err != nil {
			if ctx.Err() != nil {
				return pages, ctx.Err()
			}
			log.Printf("Failed to fetch %s: %v", rawURL, err)
			continue
		}

		log.Printf("Crawled [%d/%d]: %s", len(pages)+1, c.opts.MaxPages, rawURL)
		pages = append(pages, page)

		for _, link := range page.Links {
			u, err := url.Parse(link)
			if err != nil || !isCrawlable(u) {
				continue
			}
			if c.opts.SameDomain && !seedHosts[u.Host] {
				continue
			}
			if !visited[u.String()] {
				frontier = append(frontier, u.String())
			}
		}
	}

	return pages, nil
}

// fetchPage downloads a single URL and extracts its title, text content, and
// outgoing links.
func (c *Crawler) fetchPage(ctx context.Context, rawURL string) (model.Page, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return model.Page{}, err
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.client.Do(req)
	if err != nil {
		return model.Page{}, err
	}
	defer func() {
		if closeErr := resp.Body.Close(); closeErr != nil {
			log.Printf("Warning: failed to close response body for %s: %v", rawURL, closeErr)
		}
	}()

	if resp.StatusCode != http.StatusOK {
		return model.Page{}, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}
	if ct := resp.Header.Get("Content-Type"); ct != "" && !strings.Contains(ct, "text/html") {
		return model.Page{}, fmt.Errorf("unsupported content type %q", ct)
	}

	doc, err := html.Parse(resp.Body)
	if err != nil {
		return model.Page{}, fmt.Errorf("failed to parse HTML: %w", err)
	}

	base, err := url.Parse(rawURL)
	if err != nil {
		return model.Page{}, err
	}

	title, text, links := extract(doc, base)
	if title == "" {
		title = rawURL
	}

	return model.Page{
		URL:     rawURL,
		Title:   title,
		Content: text,
		Links:   links,
	}, nil
}

// skippedElements are HTML elements whose text carries no document content.
var skippedElements = map[string]bool{
	"script": true, "style": true, "noscript": true,
	"nav": true, "footer": true, "header": true,
}

// extract walks the parsed HTML tree collecting the title, the visible text,
// and all absolute links.
func extract(root *html.Node, base *url.URL) (title, text string, links []string) {
	var sb strings.Builder

	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			if skippedElements[n.Data] {
				return
			}
			if n.Data == "title" && n.FirstChild != nil && title == "" {
				title = strings.TrimSpace(n.FirstChild.Data)
			}
			if n.Data == "a" {
				for _, attr := range n.Attr {
					if attr.Key != "href" {
						continue
					}
					if link, ok := resolveLink(base, attr.Val); ok {
						links = append(links, link)
					}
				}
			}
		}
		if n.Type == html.TextNode {
			if trimmed := strings.TrimSpace(n.Data); trimmed != "" {
				sb.WriteString(trimmed)
				sb.WriteString(" ")
			}
		}
		for child := n.FirstChild; child != nil; child = child.NextSibling {
			walk(child)
		}
	}
	walk(root)

	text = strings.Join(strings.Fields(sb.String()), " ")
	return title, text, links
}

// resolveLink resolves href against the base URL and drops fragments and
// non-HTTP schemes.
func resolveLink(base *url.URL, href string) (string, bool) {
	ref, err := url.Parse(strings.TrimSpace(href))
	if err != nil {
		return "", false
	}
	resolved := base.ResolveReference(ref)
	resolved.Fragment = ""
	if !isCrawlable(resolved) {
		return "", false
	}
	return resolved.String(), true
}

// isCrawlable reports whether the URL is an absolute http(s) URL.
func isCrawlable(u *url.URL) bool {
	return u != nil && u.Host != "" && (u.Scheme == "http" || u.Scheme == "https")
}

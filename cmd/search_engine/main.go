package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/gin-gonic/gin"

	"tfidf-search-engine/api"
	"tfidf-search-engine/config"
	"tfidf-search-engine/internal/crawler"
	"tfidf-search-engine/internal/engine"
)

func main() {
	var (
		help       = flag.Bool("help", false, "Show help message")
		version    = flag.Bool("version", false, "Show version information")
		port       = flag.String("port", "8080", "Port to run the server on")
		dataDir    = flag.String("data-dir", "./search_data", "Directory to store the index snapshot")
		demo       = flag.Bool("demo", false, "Seed the index with sample documents and exit")
		crawlURL   = flag.String("crawl", "", "Crawl and index a website starting from this URL, then exit")
		maxPages   = flag.Int("max-pages", 50, "Maximum pages to crawl")
		allDomains = flag.Bool("all-domains", false, "Allow the crawler to leave the seed domain")
		query      = flag.String("query", "", "Run a one-shot search against the stored index and exit")
		topK       = flag.Int("top-k", 10, "Number of results for -query")
	)

	flag.Parse()

	if *help {
		fmt.Printf("TF-IDF Search Engine - an educational crawler, indexer, and query processor\n\n")
		fmt.Printf("Usage: %s [options]\n\n", os.Args[0])
		fmt.Printf("Options:\n")
		flag.PrintDefaults()
		fmt.Printf("\nExamples:\n")
		fmt.Printf("  %s -demo                          # Build an index from sample documents\n", os.Args[0])
		fmt.Printf("  %s -crawl https://example.com     # Crawl and index a website\n", os.Args[0])
		fmt.Printf("  %s -query \"search algorithm\"      # Search the stored index\n", os.Args[0])
		fmt.Printf("  %s                                # Serve the HTTP API on port 8080\n", os.Args[0])
		return
	}

	if *version {
		fmt.Printf("TF-IDF Search Engine v1.0.0\n")
		return
	}

	log.Printf("Using data directory: %s", *dataDir)
	searchEngine, err := engine.NewEngine(*dataDir, config.Config{})
	if err != nil {
		log.Fatalf("Failed to initialize engine: %v", err)
	}

	switch {
	case *demo:
		runDemo(searchEngine)
	case *crawlURL != "":
		runCrawl(searchEngine, *crawlURL, *maxPages, !*allDomains)
	case *query != "":
		runQuery(searchEngine, *query, *topK)
	default:
		serve(searchEngine, *port)
	}
}

func serve(searchEngine *engine.Engine, port string) {
	router := gin.Default()
	api.SetupRoutes(router, searchEngine)

	log.Printf("Starting server on port %s...", port)
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

func runCrawl(searchEngine *engine.Engine, seedURL string, maxPages int, sameDomain bool) {
	log.Printf("Starting crawl from %s (max %d pages, same domain: %v)", seedURL, maxPages, sameDomain)

	c := crawler.New(crawler.Options{
		MaxPages:   maxPages,
		Delay:      500 * time.Millisecond,
		SameDomain: sameDomain,
	})

	pages, err := c.Crawl(context.Background(), []string{seedURL})
	if err != nil {
		log.Fatalf("Crawl failed: %v", err)
	}
	log.Printf("Crawled %d pages", len(pages))

	for i, page := range pages {
		docID := fmt.Sprintf("doc_%d", i)
		if err := searchEngine.AddPage(docID, page); err != nil {
			log.Printf("Warning: skipping page %s: %v", page.URL, err)
		}
	}

	finishIndexing(searchEngine)
}

func runDemo(searchEngine *engine.Engine) {
	log.Printf("Seeding index with sample documents")

	samples := []struct {
		title, content, url string
	}{
		{
			"How Search Engines Work",
			"Search engines help users find information on the internet through three main processes: crawling, indexing, and ranking. Crawlers discover pages by following links, the indexer organizes content, and the ranking algorithm scores results using techniques like TF-IDF.",
			"https://example.com/how-search-engines-work",
		},
		{
			"Understanding Web Crawlers",
			"Web crawlers, also known as spiders, systematically browse the internet starting from seed URLs and following links to discover new pages. Polite crawlers pace their requests and respect robots.txt files.",
			"https://example.com/web-crawlers",
		},
		{
			"Inverted Index Explained",
			"An inverted index is a data structure that maps terms to the documents containing them, enabling fast full-text search. For each term it stores the list of documents along with frequency information.",
			"https://example.com/inverted-index",
		},
		{
			"TF-IDF Algorithm",
			"TF-IDF stands for Term Frequency-Inverse Document Frequency, a numerical statistic measuring how important a word is to a document in a collection. Terms common in one document but rare overall score highest.",
			"https://example.com/tfidf",
		},
		{
			"Introduction to Information Retrieval",
			"Information retrieval is the science of searching for information in document collections, using models such as the vector space model and probabilistic ranking.",
			"https://example.com/information-retrieval",
		},
	}

	for i, s := range samples {
		docID := fmt.Sprintf("doc_%d", i)
		if err := searchEngine.AddDocument(docID, s.title, s.content, s.url); err != nil {
			log.Printf("Warning: skipping sample %q: %v", s.title, err)
		}
	}

	finishIndexing(searchEngine)
}

func finishIndexing(searchEngine *engine.Engine) {
	if err := searchEngine.Rebuild(); err != nil {
		log.Fatalf("Index rebuild failed: %v", err)
	}
	if err := searchEngine.SaveSnapshot(); err != nil {
		log.Fatalf("Failed to save snapshot: %v", err)
	}

	stats := searchEngine.Stats()
	fmt.Printf("Indexed %d documents, %d unique terms, average length %.1f tokens\n",
		stats.NumDocuments, stats.NumTerms, stats.AvgDocLength)
}

func runQuery(searchEngine *engine.Engine, query string, topK int) {
	result, err := searchEngine.Search(query, topK)
	if err != nil {
		log.Fatalf("Search failed: %v", err)
	}

	fmt.Printf("Search results for %q:\n", query)
	if len(result.Results) == 0 {
		fmt.Println("No results found.")
		return
	}

	for i, hit := range result.Results {
		fmt.Printf("\n%d. %s (score: %.4f)\n", i+1, hit.Title, hit.Score)
		fmt.Printf("   URL: %s\n", hit.URL)
		fmt.Printf("   Matched terms: %v\n", hit.MatchedTerms)
		snippet := hit.Snippet
		if len(snippet) > 150 {
			snippet = snippet[:150] + "..."
		}
		fmt.Printf("   %s\n", snippet)
	}
}

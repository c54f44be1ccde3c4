package content

import (
	"context"
	"html"
	"log"
	"net/http"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/microcosm-cc/bluemonday"
)

const userAgent = "Mozilla/5.0 (compatible; veriscan/1.0)"

// ArticleResolver fetches article text for URLs that cannot be scraped
// directly (paywalled publishers with a search API).
type ArticleResolver interface {
	ResolveArticle(ctx context.Context, articleURL string) (string, error)
}

// Resolver turns a text/URL request into plain text. It is the only place
// that fetches subject content; the verdict engine receives resolved text
// and never does network I/O itself.
type Resolver struct {
	client    *http.Client
	sanitizer *bluemonday.Policy
	nytimes   ArticleResolver
}

// NewResolver creates a Resolver. nytimes may be nil, in which case
// nytimes.com URLs fall back to plain scraping.
func NewResolver(client *http.Client, nytimes ArticleResolver) *Resolver {
	return &Resolver{
		client:    client,
		sanitizer: bluemonday.StrictPolicy(),
		nytimes:   nytimes,
	}
}

// Resolve returns the text to analyze. Direct text wins; otherwise the URL
// is fetched and paragraph text extracted. Any acquisition failure yields "";
// the caller maps that to an UNKNOWN verdict, not an error.
func (r *Resolver) Resolve(ctx context.Context, text, rawurl string) string {
	if t := strings.TrimSpace(text); t != "" {
		return t
	}
	if rawurl == "" {
		return ""
	}

	if r.nytimes != nil && strings.Contains(rawurl, "nytimes.com") {
		s, err := r.nytimes.ResolveArticle(ctx, rawurl)
		if err == nil && s != "" {
			return r.clean(s)
		}
		if err != nil {
			log.Printf("content: nytimes resolve failed for %s: %v", rawurl, err)
		}
	}

	return r.scrape(ctx, rawurl)
}

// scrape pulls the page and joins all <p> text. Best effort: any failure
// returns the empty string.
func (r *Resolver) scrape(ctx context.Context, rawurl string) string {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawurl, nil)
	if err != nil {
		return ""
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := r.client.Do(req)
	if err != nil {
		log.Printf("content: fetch failed for %s: %v", rawurl, err)
		return ""
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		log.Printf("content: fetch for %s returned status %d", rawurl, resp.StatusCode)
		return ""
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return ""
	}

	var parts []string
	doc.Find("p").Each(func(_ int, sel *goquery.Selection) {
		if t := strings.TrimSpace(sel.Text()); t != "" {
			parts = append(parts, t)
		}
	})
	return r.clean(strings.Join(parts, " "))
}

// clean strips any markup remnants and collapses entities.
func (r *Resolver) clean(s string) string {
	return strings.TrimSpace(html.UnescapeString(r.sanitizer.Sanitize(s)))
}

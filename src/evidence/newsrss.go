package evidence

import (
	"context"
	"fmt"
	"net/url"

	"github.com/mmcdole/gofeed"
)

const newsRSSURL = "https://news.google.com/rss/search"

// NewsRSS searches the Google News RSS feed. Keyless Tier-2 source: broad
// coverage, lower trust weight than the Tier-1 APIs.
type NewsRSS struct {
	weight  float64
	max     int
	parser  *gofeed.Parser
	baseURL string
}

func NewNewsRSS(weight float64, max int) *NewsRSS {
	return &NewsRSS{weight: weight, max: max, parser: gofeed.NewParser(), baseURL: newsRSSURL}
}

func (r *NewsRSS) Name() string    { return "GoogleNews" }
func (r *NewsRSS) Weight() float64 { return r.weight }

func (r *NewsRSS) Search(ctx context.Context, query string) ([]Item, error) {
	u := fmt.Sprintf("%s?q=%s&hl=en-US&gl=US&ceid=US:en", r.baseURL, url.QueryEscape(query))
	feed, err := r.parser.ParseURLWithContext(u, ctx)
	if err != nil {
		return nil, fmt.Errorf("news rss: %w", err)
	}

	items := make([]Item, 0, r.max)
	for _, it := range feed.Items {
		if len(items) >= r.max {
			break
		}
		items = append(items, Item{
			Source: r.Name(),
			Weight: r.weight,
			Title:  it.Title,
			URL:    it.Link,
		})
	}
	return items, nil
}

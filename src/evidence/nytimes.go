package evidence

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"path"
	"strings"
)

const nytSearchURL = "https://api.nytimes.com/svc/search/v2/articlesearch.json"

// NYTimes queries the NYT article search API. Tier-1 source.
type NYTimes struct {
	apiKey  string
	weight  float64
	max     int
	client  *http.Client
	baseURL string
}

type nytResponse struct {
	Response struct {
		Docs []struct {
			Headline struct {
				Main string `json:"main"`
			} `json:"headline"`
			Abstract      string `json:"abstract"`
			LeadParagraph string `json:"lead_paragraph"`
			WebURL        string `json:"web_url"`
		} `json:"docs"`
	} `json:"response"`
}

func NewNYTimes(apiKey string, weight float64, max int, client *http.Client) *NYTimes {
	return &NYTimes{apiKey: apiKey, weight: weight, max: max, client: client, baseURL: nytSearchURL}
}

func (n *NYTimes) Name() string    { return "NYTimes" }
func (n *NYTimes) Weight() float64 { return n.weight }

func (n *NYTimes) Search(ctx context.Context, query string) ([]Item, error) {
	res, err := n.search(ctx, query)
	if err != nil {
		return nil, err
	}
	items := make([]Item, 0, n.max)
	for _, d := range res.Response.Docs {
		if len(items) >= n.max {
			break
		}
		items = append(items, Item{
			Source: n.Name(),
			Weight: n.weight,
			Title:  d.Headline.Main,
			URL:    d.WebURL,
		})
	}
	return items, nil
}

// ResolveArticle fetches headline, abstract and lead paragraph for an
// nytimes.com URL by searching on keywords taken from the URL slug. Used by
// content acquisition for NYT links, where plain scraping hits the paywall.
func (n *NYTimes) ResolveArticle(ctx context.Context, articleURL string) (string, error) {
	slug := strings.TrimSuffix(path.Base(articleURL), ".html")
	keywords := strings.ReplaceAll(slug, "-", " ")

	res, err := n.search(ctx, keywords)
	if err != nil {
		return "", err
	}
	if len(res.Response.Docs) == 0 {
		return "", nil
	}
	d := res.Response.Docs[0]
	var parts []string
	for _, p := range []string{d.Headline.Main, d.Abstract, d.LeadParagraph} {
		if p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, " "), nil
}

func (n *NYTimes) search(ctx context.Context, query string) (*nytResponse, error) {
	u := fmt.Sprintf("%s?q=%s&api-key=%s", n.baseURL, url.QueryEscape(query), url.QueryEscape(n.apiKey))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}
	resp, err := n.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("nytimes returned status %d", resp.StatusCode)
	}
	var res nytResponse
	if err := json.NewDecoder(resp.Body).Decode(&res); err != nil {
		return nil, fmt.Errorf("nytimes payload: %w", err)
	}
	return &res, nil
}

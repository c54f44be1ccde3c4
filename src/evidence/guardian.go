package evidence

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
)

const guardianSearchURL = "https://content.guardianapis.com/search"

// Guardian queries the Guardian content API. Tier-1 source.
type Guardian struct {
	apiKey  string
	weight  float64
	max     int
	client  *http.Client
	baseURL string
}

type guardianResponse struct {
	Response struct {
		Results []struct {
			WebTitle string `json:"webTitle"`
			WebURL   string `json:"webUrl"`
		} `json:"results"`
	} `json:"response"`
}

func NewGuardian(apiKey string, weight float64, max int, client *http.Client) *Guardian {
	return &Guardian{apiKey: apiKey, weight: weight, max: max, client: client, baseURL: guardianSearchURL}
}

func (g *Guardian) Name() string    { return "Guardian" }
func (g *Guardian) Weight() float64 { return g.weight }

func (g *Guardian) Search(ctx context.Context, query string) ([]Item, error) {
	u := fmt.Sprintf("%s?q=%s&api-key=%s&page-size=%d",
		g.baseURL, url.QueryEscape(query), url.QueryEscape(g.apiKey), g.max)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}
	resp, err := g.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("guardian returned status %d", resp.StatusCode)
	}
	var res guardianResponse
	if err := json.NewDecoder(resp.Body).Decode(&res); err != nil {
		return nil, fmt.Errorf("guardian payload: %w", err)
	}

	items := make([]Item, 0, g.max)
	for _, r := range res.Response.Results {
		if len(items) >= g.max {
			break
		}
		items = append(items, Item{
			Source: g.Name(),
			Weight: g.weight,
			Title:  r.WebTitle,
			URL:    r.WebURL,
		})
	}
	return items, nil
}

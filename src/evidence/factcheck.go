package evidence

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
)

const factCheckURL = "https://factchecktools.googleapis.com/v1alpha1/claims:search"

// FactCheck queries the Google Fact Check Tools claim search. Enabled only
// when an API key is configured.
type FactCheck struct {
	apiKey  string
	weight  float64
	max     int
	client  *http.Client
	baseURL string
}

type factCheckResponse struct {
	Claims []struct {
		Text        string `json:"text"`
		ClaimReview []struct {
			Publisher struct {
				Name string `json:"name"`
			} `json:"publisher"`
			URL   string `json:"url"`
			Title string `json:"title"`
		} `json:"claimReview"`
	} `json:"claims"`
}

func NewFactCheck(apiKey string, weight float64, max int, client *http.Client) *FactCheck {
	return &FactCheck{apiKey: apiKey, weight: weight, max: max, client: client, baseURL: factCheckURL}
}

func (f *FactCheck) Name() string    { return "FactCheck" }
func (f *FactCheck) Weight() float64 { return f.weight }

func (f *FactCheck) Search(ctx context.Context, query string) ([]Item, error) {
	u := fmt.Sprintf("%s?query=%s&key=%s", f.baseURL, url.QueryEscape(query), url.QueryEscape(f.apiKey))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}
	resp, err := f.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("factcheck returned status %d", resp.StatusCode)
	}
	var res factCheckResponse
	if err := json.NewDecoder(resp.Body).Decode(&res); err != nil {
		return nil, fmt.Errorf("factcheck payload: %w", err)
	}

	items := make([]Item, 0, f.max)
	for _, c := range res.Claims {
		if len(items) >= f.max {
			break
		}
		if len(c.ClaimReview) == 0 {
			continue
		}
		rev := c.ClaimReview[0]
		title := rev.Title
		if title == "" {
			title = c.Text
		}
		items = append(items, Item{
			Source: f.Name(),
			Weight: f.weight,
			Title:  title,
			URL:    rev.URL,
		})
	}
	return items, nil
}

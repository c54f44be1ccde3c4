package similarity

import (
	"math"

	"github.com/veriscan/veriscan/src/evidence"
)

// Scorer measures topical closeness between content text and evidence
// headlines. Stateless: the vector space is rebuilt from scratch on every
// call, so no vocabulary leaks between requests.
type Scorer struct{}

// Score builds a TF-IDF space over [content] + headlines and returns the
// maximum cosine similarity between the content vector and any headline
// vector. Best-match semantics: one strong corroborating headline outweighs
// several weak ones. Returns exactly 0 for empty evidence.
func (Scorer) Score(content string, items []evidence.Item) float64 {
	if len(items) == 0 {
		return 0
	}

	docs := make([][]string, 0, len(items)+1)
	docs = append(docs, tokenize(content))
	for _, it := range items {
		docs = append(docs, tokenize(it.Title))
	}

	// Document frequency per term.
	df := make(map[string]int)
	for _, doc := range docs {
		seen := make(map[string]bool, len(doc))
		for _, t := range doc {
			if !seen[t] {
				seen[t] = true
				df[t]++
			}
		}
	}

	n := float64(len(docs))
	idf := func(term string) float64 {
		return math.Log((1+n)/(1+float64(df[term]))) + 1
	}

	vectors := make([]map[string]float64, len(docs))
	for i, doc := range docs {
		vec := make(map[string]float64)
		for _, t := range doc {
			vec[t]++
		}
		for t, tf := range vec {
			vec[t] = tf * idf(t)
		}
		vectors[i] = vec
	}

	best := 0.0
	for _, hv := range vectors[1:] {
		if s := cosine(vectors[0], hv); s > best {
			best = s
		}
	}
	if best > 1 {
		best = 1
	}
	return best
}

func cosine(a, b map[string]float64) float64 {
	var dot, na, nb float64
	for t, av := range a {
		na += av * av
		if bv, ok := b[t]; ok {
			dot += av * bv
		}
	}
	for _, bv := range b {
		nb += bv * bv
	}
	if na == 0 || nb == 0 {
		return 0
	}
	return dot / (math.Sqrt(na) * math.Sqrt(nb))
}

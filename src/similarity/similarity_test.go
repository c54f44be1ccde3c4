package similarity

import (
	"testing"

	"github.com/veriscan/veriscan/src/evidence"
)

func items(titles ...string) []evidence.Item {
	out := make([]evidence.Item, len(titles))
	for i, t := range titles {
		out[i] = evidence.Item{Source: "test", Weight: 0.4, Title: t}
	}
	return out
}

func TestScoreEmptyEvidenceIsExactlyZero(t *testing.T) {
	var s Scorer
	if got := s.Score("central bank raises interest rates", nil); got != 0 {
		t.Fatalf("expected exactly 0 for empty evidence, got %v", got)
	}
	if got := s.Score("", []evidence.Item{}); got != 0 {
		t.Fatalf("expected exactly 0 for empty evidence slice, got %v", got)
	}
}

func TestScoreIdenticalHeadline(t *testing.T) {
	var s Scorer
	text := "central bank raises interest rates again"
	got := s.Score(text, items(text))
	if got < 0.99 {
		t.Fatalf("identical headline should score ~1, got %v", got)
	}
	if got > 1 {
		t.Fatalf("score must stay within [0,1], got %v", got)
	}
}

func TestScoreDisjointHeadline(t *testing.T) {
	var s Scorer
	got := s.Score("central bank raises interest rates",
		items("giraffe escapes zoo enclosure overnight"))
	if got != 0 {
		t.Fatalf("disjoint vocabularies should score 0, got %v", got)
	}
}

func TestScoreBestMatchSemantics(t *testing.T) {
	var s Scorer
	text := "central bank raises interest rates again"
	got := s.Score(text, items(
		"giraffe escapes zoo enclosure overnight",
		text,
		"local bakery wins regional award",
	))
	if got < 0.99 {
		t.Fatalf("one strong match should dominate, got %v", got)
	}
}

func TestScorePartialOverlap(t *testing.T) {
	var s Scorer
	got := s.Score("central bank raises interest rates",
		items("bank officials discuss interest policy"))
	if got <= 0 || got >= 1 {
		t.Fatalf("partial overlap should land strictly between 0 and 1, got %v", got)
	}
}

func TestScoreStopwordOnlyContent(t *testing.T) {
	var s Scorer
	got := s.Score("the a an is of to", items("central bank raises rates"))
	if got != 0 {
		t.Fatalf("stopword-only content has a zero vector, expected 0, got %v", got)
	}
}

func TestScoreRange(t *testing.T) {
	var s Scorer
	cases := []struct {
		text   string
		titles []string
	}{
		{"breaking news on the economy", []string{"economy news breaking today", "sports roundup"}},
		{"a b c", []string{"xx yy zz"}},
		{"climate summit reaches draft agreement", []string{"climate summit agreement reached", "markets open higher"}},
	}
	for _, tc := range cases {
		got := s.Score(tc.text, items(tc.titles...))
		if got < 0 || got > 1 {
			t.Fatalf("score %v out of [0,1] for %q", got, tc.text)
		}
	}
}

package webserver

import (
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/veriscan/veriscan/src/api/data"
	"github.com/veriscan/veriscan/src/api/types"
	"github.com/veriscan/veriscan/src/content"
	"github.com/veriscan/veriscan/src/verdict"
)

type News struct {
	db       *gorm.DB
	engine   *verdict.Engine
	resolver *content.Resolver
}

func NewNews(db *gorm.DB, engine *verdict.Engine, resolver *content.Resolver) News {
	return News{db: db, engine: engine, resolver: resolver}
}

func (h News) Check(c *gin.Context) {
	var req struct {
		Text string `json:"text"`
		URL  string `json:"url"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"err": err.Error()})
		return
	}
	if strings.TrimSpace(req.Text) == "" && strings.TrimSpace(req.URL) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"err": "text or url required"})
		return
	}

	ctx := c.Request.Context()
	resolved := h.resolver.Resolve(ctx, req.Text, req.URL)

	v := h.engine.Evaluate(ctx, verdict.Content{
		Text:         req.Text,
		URL:          req.URL,
		ResolvedText: resolved,
	})

	scan := types.Scan{
		PublicID:    uuid.NewString(),
		UserID:      userID(c),
		Kind:        "news",
		Verdict:     string(v.Label),
		Confidence:  v.Confidence,
		Similarity:  v.Similarity,
		InputHash:   data.ContentHash(resolved),
		URL:         req.URL,
		Explanation: v.Explanation,
	}
	if err := h.db.Create(&scan).Error; err != nil {
		log.Printf("scan history: %v", err)
	}

	c.JSON(http.StatusOK, gin.H{
		"id":          scan.PublicID,
		"verdict":     v.Label,
		"confidence":  v.Confidence,
		"similarity":  v.Similarity,
		"evidence":    v.Evidence,
		"explanation": v.Explanation,
	})
}

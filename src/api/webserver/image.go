package webserver

import (
	"io"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/veriscan/veriscan/src/api/data"
	"github.com/veriscan/veriscan/src/api/types"
	"github.com/veriscan/veriscan/src/forensics"
)

var allowedImageTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/gif":  true,
	"image/webp": true,
}

type Image struct {
	db       *gorm.DB
	engine   *forensics.Engine
	minBytes int
	maxBytes int
}

func NewImage(db *gorm.DB, engine *forensics.Engine, minBytes, maxBytes int) Image {
	return Image{db: db, engine: engine, minBytes: minBytes, maxBytes: maxBytes}
}

func (h Image) Check(c *gin.Context) {
	header, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"err": "file field required"})
		return
	}

	// Malformed input is rejected before any forensic work starts.
	if mime := header.Header.Get("Content-Type"); !allowedImageTypes[mime] {
		c.JSON(http.StatusBadRequest, gin.H{"err": "unsupported content type"})
		return
	}
	if header.Size < int64(h.minBytes) {
		c.JSON(http.StatusBadRequest, gin.H{"err": "image too small"})
		return
	}
	if header.Size > int64(h.maxBytes) {
		c.JSON(http.StatusBadRequest, gin.H{"err": "image too large"})
		return
	}

	f, err := header.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"err": err.Error()})
		return
	}
	defer f.Close()

	buf, err := io.ReadAll(io.LimitReader(f, int64(h.maxBytes)))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"err": err.Error()})
		return
	}

	img, err := forensics.Decode(buf)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"err": "not a decodable image"})
		return
	}

	signals := forensics.Extract(img)
	v := h.engine.Evaluate(signals)

	scan := types.Scan{
		PublicID:   uuid.NewString(),
		UserID:     userID(c),
		Kind:       "image",
		Verdict:    v.Label,
		Confidence: float64(v.Confidence),
		InputHash:  data.ContentHash(string(buf[:min(len(buf), 4096)])),
	}
	if err := h.db.Create(&scan).Error; err != nil {
		log.Printf("scan history: %v", err)
	}

	c.JSON(http.StatusOK, gin.H{
		"id":         scan.PublicID,
		"verdict":    v.Label,
		"confidence": v.Confidence,
		"signals":    signals,
		"method":     "image forensic analysis",
	})
}

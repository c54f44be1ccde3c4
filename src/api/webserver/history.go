package webserver

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/veriscan/veriscan/src/api/types"
)

type History struct {
	db *gorm.DB
}

func NewHistory(db *gorm.DB) History {
	return History{db: db}
}

func (h History) List(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	if limit < 1 || limit > 200 {
		limit = 50
	}

	var scans []types.Scan
	if err := h.db.
		Where("user_id = ?", userID(c)).
		Order("created_at desc").
		Limit(limit).
		Find(&scans).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"err": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"scans": scans})
}

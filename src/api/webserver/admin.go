package webserver

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/verilens/factcheck-api/src/api/data"
)

type Admin struct {
	store *data.CheckStore
}

func NewAdmin(store *data.CheckStore) Admin {
	return Admin{store: store}
}

// RecentChecks returns the latest persisted checks, newest first.
func (a Admin) RecentChecks(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	if limit <= 0 {
		limit = 50
	}
	if limit > 500 {
		limit = 500
	}

	recs, err := a.store.Recent(c.Request.Context(), limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"checks": recs})
}

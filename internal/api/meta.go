package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// ===== META HANDLERS =====

// GET /api/meta — ревизия реестра и сводка по группам.
func MetaHandler(s *Server) gin.HandlerFunc {
	return func(c *gin.Context) {
		all := s.Reg.All()

		groups := map[string]int{}
		enums := 0
		for _, d := range all {
			groups[d.Group]++
			if d.IsEnum() {
				enums++
			}
		}

		c.JSON(http.StatusOK, gin.H{
			"revision":    s.Reg.Revision(),
			"loaded_at":   s.Reg.LoadedAt().Format(time.RFC3339),
			"directories": len(all),
			"enums":       enums,
			"groups":      groups,
		})
	}
}

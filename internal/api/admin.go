package api

import (
	"net/http"

	"vybor/internal/catalog"

	"github.com/gin-gonic/gin"
)

// POST /api/admin/reload — перечитать справочники с диска.
func AdminReloadHandler(s *Server) gin.HandlerFunc {
	return func(c *gin.Context) {
		if s.Load == nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "reload loader not configured"})
			return
		}

		// 1) читаем новый набор
		dirs, err := s.Load()
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Catalog load error", "details": err.Error()})
			return
		}

		// 2) прогоняем линтер ДО подмены реестра
		if issues := catalog.Lint(dirs); len(issues) > 0 {
			out := make([]gin.H, 0, len(issues))
			for _, it := range issues {
				out = append(out, gin.H{
					"directory": it.Directory,
					"item":      it.Item,
					"message":   it.Message,
					"code":      it.Code,
				})
			}
			c.JSON(http.StatusBadRequest, gin.H{
				"error":  "catalog has blocking issues",
				"issues": out,
				"hint":   "fix catalog files and retry",
			})
			return
		}

		// 3) атомарная замена
		s.Reg.Replace(dirs)

		c.JSON(http.StatusOK, gin.H{
			"ok":          true,
			"directories": s.Reg.Len(),
			"revision":    s.Reg.Revision(),
		})
	}
}

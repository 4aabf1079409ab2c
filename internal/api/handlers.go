package api

import (
	"errors"
	"net/http"
	"strconv"

	"vybor/internal/catalog"
	"vybor/internal/options"

	"github.com/gin-gonic/gin"
)

// GET /api/enums
func ListHandler(s *Server) gin.HandlerFunc {
	return func(c *gin.Context) {
		all := s.Reg.All()

		// 1) фильтры (group/kind/q)
		lp := parseListParams(c.Request.URL.Query())
		filtered := make([]dirSummary, 0, len(all))
		for fqn, d := range all {
			if !matchDir(fqn, d, lp) {
				continue
			}
			filtered = append(filtered, summarize(d))
		}

		// 2) сортировка/пагинация
		sortSummaries(filtered, lp.Sort)

		start := lp.Offset
		if start > len(filtered) {
			start = len(filtered)
		}
		end := start + lp.Limit
		if end > len(filtered) {
			end = len(filtered)
		}
		page := filtered[start:end]

		// 3) total — в заголовке, как и для остальных списков
		c.Header("X-Total-Count", strconv.Itoa(len(filtered)))
		c.JSON(http.StatusOK, page)
	}
}

// GET /api/enums/:group/:name
func GetOneHandler(s *Server) gin.HandlerFunc {
	return func(c *gin.Context) {
		dir, ok := lookupDir(s, c)
		if !ok {
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"group": dir.Group,
			"name":  dir.Name,
			"kind":  kindOrEnum(dir),
			"items": dir.Items,
		})
	}
}

// GET /api/enums/:group/:name/options?selected=X
func OptionsHandler(s *Server) gin.HandlerFunc {
	return func(c *gin.Context) {
		dir, ok := lookupDir(s, c)
		if !ok {
			return
		}
		opts, err := options.Build(dir, c.Query("selected"))
		if err != nil {
			// справочник есть, но это не перечисление — 400, а не 404
			if errors.Is(err, options.ErrNotEnum) {
				c.JSON(http.StatusBadRequest, gin.H{
					"errors": []FieldError{ferr(ErrNotEnum, "name", "Directory is not an enum")},
				})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"directory": dir.FQN(),
			"options":   opts,
		})
	}
}

// GET /api/enums/:group/:name/select?selected=X&field=F
// Готовая разметка <select> для встраивания в форму.
func SelectHandler(s *Server) gin.HandlerFunc {
	return func(c *gin.Context) {
		dir, ok := lookupDir(s, c)
		if !ok {
			return
		}
		opts, err := options.Build(dir, c.Query("selected"))
		if err != nil {
			if errors.Is(err, options.ErrNotEnum) {
				c.JSON(http.StatusBadRequest, gin.H{
					"errors": []FieldError{ferr(ErrNotEnum, "name", "Directory is not an enum")},
				})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		field := c.Query("field")
		if field == "" {
			field = dir.Name
		}
		html, err := options.RenderSelect(field, opts)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(html))
	}
}

// POST /api/enums/:group/:name/validate  {"value": "..."}
func ValidateHandler(s *Server) gin.HandlerFunc {
	return func(c *gin.Context) {
		dir, ok := lookupDir(s, c)
		if !ok {
			return
		}

		var body struct {
			Value any `json:"value"`
		}
		if err := c.ShouldBindJSON(&body); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON"})
			return
		}

		if errs := ValidateValue(dir, body.Value); len(errs) > 0 {
			c.JSON(http.StatusBadRequest, gin.H{"errors": errs})
			return
		}
		c.JSON(http.StatusOK, gin.H{"ok": true})
	}
}

// GET /api/lint — прогон линтера по текущему реестру
func LintHandler(s *Server) gin.HandlerFunc {
	return func(c *gin.Context) {
		issues := catalog.Lint(s.Reg.All())
		if issues == nil {
			issues = []catalog.Issue{}
		}
		c.JSON(http.StatusOK, gin.H{"issues": issues})
	}
}

// lookupDir разрешает {group, name} из пути; сам отвечает 404.
func lookupDir(s *Server, c *gin.Context) (catalog.Directory, bool) {
	group := c.Param("group")
	name := c.Param("name")

	fqn, ok := s.Reg.NormalizeName(group, name)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Directory not found"})
		return catalog.Directory{}, false
	}
	dir, _ := s.Reg.Get(fqn)
	return dir, true
}

package api

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"path/filepath"
	"strings"

	"vybor/internal/catalog"

	"github.com/gin-gonic/gin"
	"gopkg.in/yaml.v3"
)

// POST /api/admin/import — multipart-загрузка одного YAML-справочника.
// Поле file — сам YAML, необязательное поле group — группа (иначе из файла).
func ImportHandler(s *Server) gin.HandlerFunc {
	return func(c *gin.Context) {
		if s.Src == nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "source store not configured"})
			return
		}

		file, hdr, err := c.Request.FormFile("file")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "file field is required"})
			return
		}
		defer file.Close()

		ext := strings.ToLower(filepath.Ext(hdr.Filename))
		if ext != ".yaml" && ext != ".yml" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "only .yaml/.yml files are accepted"})
			return
		}

		data, err := io.ReadAll(file)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "read error", "details": err.Error()})
			return
		}

		// 1) разбор и проверка ДО записи на диск
		var dir catalog.Directory
		if err := yaml.Unmarshal(data, &dir); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid YAML", "details": err.Error()})
			return
		}
		if dir.Name == "" {
			base := filepath.Base(hdr.Filename)
			dir.Name = strings.TrimSuffix(base, filepath.Ext(base))
		}
		if g := strings.TrimSpace(c.PostForm("group")); g != "" {
			dir.Group = g
		}
		if dir.Group == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "group is required (form field or yaml)"})
			return
		}
		if issues := catalog.Lint(map[string]catalog.Directory{dir.FQN(): dir}); len(issues) > 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "directory has blocking issues", "issues": issues})
			return
		}

		// 2) исходник — на диск, справочник — в реестр
		key := filepath.Join(dir.Group, dir.Name+".yaml")
		key, size, sum, err := s.Src.Put(key, bytes.NewReader(data))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": fmt.Sprintf("store: %v", err)})
			return
		}
		s.Reg.Put(dir)

		c.JSON(http.StatusCreated, gin.H{
			"ok":        true,
			"directory": dir.FQN(),
			"items":     len(dir.Items),
			"key":       key,
			"size":      size,
			"sha256":    sum,
			"revision":  s.Reg.Revision(),
		})
	}
}

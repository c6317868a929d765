package upload

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"wedding-site/config"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// maxUploadSize caps the file itself; the request body gets a little slack
// on top for the multipart framing.
const maxUploadSize = 10 << 20

var allowedTypes = map[string]bool{
	"image/jpeg":    true,
	"image/jpg":     true,
	"image/png":     true,
	"image/gif":     true,
	"image/webp":    true,
	"image/svg+xml": true,
	"video/mp4":     true,
	"video/webm":    true,
	"video/ogg":     true,
}

type Handler struct {
	cfg *config.Config
	log zerolog.Logger
}

func NewHandler(cfg *config.Config, log zerolog.Logger) *Handler {
	return &Handler{cfg: cfg, log: log.With().Str("component", "upload").Logger()}
}

// POST /api/upload
//
// Multipart form with a single "file" part. Returns the public path the
// static file server exposes it under.
func (h *Handler) Upload(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxUploadSize+1<<20)

	file, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No file provided"})
		return
	}
	if file.Size > maxUploadSize {
		c.JSON(http.StatusBadRequest, gin.H{"error": "File too large (max 10MB)"})
		return
	}

	contentType := file.Header.Get("Content-Type")
	if !allowedTypes[contentType] {
		c.JSON(http.StatusBadRequest, gin.H{"error": "File type not allowed"})
		return
	}

	if err := os.MkdirAll(h.cfg.UploadDir, 0o755); err != nil {
		h.log.Error().Err(err).Str("dir", h.cfg.UploadDir).Msg("creating upload dir")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save file"})
		return
	}

	filename := fmt.Sprintf("%d_%s", time.Now().UnixMilli(), sanitizeName(file.Filename))
	dst := filepath.Join(h.cfg.UploadDir, filename)
	if err := c.SaveUploadedFile(file, dst); err != nil {
		h.log.Error().Err(err).Str("file", filename).Msg("saving upload")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save file"})
		return
	}

	h.log.Info().Str("file", filename).Int64("size", file.Size).Msg("file uploaded")
	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"url":      "/uploads/" + filename,
		"filename": filename,
	})
}

// sanitizeName strips path components and anything outside a conservative
// character set so the stored name is safe to join into the upload dir.
func sanitizeName(name string) string {
	name = filepath.Base(name)
	var b strings.Builder
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9',
			r == '.', r == '-', r == '_':
			b.WriteRune(r)
		default:
			b.WriteByte('_')
		}
	}
	out := b.String()
	if out == "" || out == "." || out == ".." {
		return "file"
	}
	return out
}

package handlers

import (
	"net/http"
	"path/filepath"
	"strings"

	"github.com/m1z23r/drift/pkg/drift"
)

// assetExtensions is what /public is allowed to serve.
var assetExtensions = map[string]bool{
	".css": true, ".js": true, ".png": true, ".jpg": true,
	".jpeg": true, ".webp": true, ".svg": true, ".ico": true,
}

// PagesHandler serves the static admin UI. The pages themselves are plain
// files; only which ones require the page gate matters here.
type PagesHandler struct {
	publicDir string
	imagesDir string
}

func NewPagesHandler(publicDir, imagesDir string) *PagesHandler {
	return &PagesHandler{publicDir: publicDir, imagesDir: imagesDir}
}

func (h *PagesHandler) Index(c *drift.Context) {
	h.serve(c, h.publicDir, "index.html")
}

func (h *PagesHandler) AdminLogin(c *drift.Context) {
	h.serve(c, h.publicDir, "admin-login.html")
}

func (h *PagesHandler) Admin(c *drift.Context) {
	h.serve(c, h.publicDir, "admin.html")
}

func (h *PagesHandler) MediaLibrary(c *drift.Context) {
	h.serve(c, h.publicDir, "media-library.html")
}

// PublicAsset serves css/js/image assets; anything else under /public is
// denied.
func (h *PagesHandler) PublicAsset(c *drift.Context) {
	name := c.Param("filename")
	if !assetExtensions[strings.ToLower(filepath.Ext(name))] {
		c.Forbidden("access denied")
		return
	}
	h.serve(c, h.publicDir, name)
}

// Image serves an uploaded image with a day of client caching.
func (h *PagesHandler) Image(c *drift.Context) {
	c.Response.Header().Set("Cache-Control", "public, max-age=86400")
	h.serve(c, h.imagesDir, c.Param("filename"))
}

func (h *PagesHandler) serve(c *drift.Context, dir, name string) {
	if name != filepath.Base(name) {
		c.NotFound("not found")
		return
	}
	http.ServeFile(c.Response, c.Request, filepath.Join(dir, name))
	c.Abort()
}

package api

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/gofiber/fiber/v2"
)

func (handler *Handler) clientIndexPath() string {
	return filepath.Join(handler.clientDir, "index.html")
}

func (handler *Handler) hasClientBundle() bool {
	if strings.TrimSpace(handler.clientDir) == "" {
		return false
	}
	info, err := os.Stat(handler.clientIndexPath())
	return err == nil && !info.IsDir()
}

func (handler *Handler) ServeClient(c *fiber.Ctx) error {
	path := c.Path()
	if strings.HasPrefix(path, "/api/") || path == "/api" || strings.HasPrefix(path, "/photos/") {
		return handler.NotFound(c)
	}
	return c.SendFile(handler.clientIndexPath())
}

package options

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"

	"github.com/asnowfix/switchbot-id/internal/render"
	"github.com/go-logr/logr"
)

// WritePage renders data into file. An empty file name with open set
// writes to a temporary file.
func WritePage(ctx context.Context, file string, open bool, data render.PageData) (string, error) {
	log := logr.FromContextOrDiscard(ctx)

	var f *os.File
	var err error
	if file == "" {
		f, err = os.CreateTemp("", "switchbot-id-*.html")
	} else {
		f, err = os.Create(file)
	}
	if err != nil {
		return "", fmt.Errorf("create page: %w", err)
	}
	path := f.Name()

	if err := render.Page(f, data); err != nil {
		f.Close()
		return path, err
	}
	if err := f.Close(); err != nil {
		return path, fmt.Errorf("write page %s: %w", path, err)
	}
	log.Info("Wrote page", "path", path)

	if open {
		abs, err := filepath.Abs(path)
		if err != nil {
			return path, err
		}
		if err := OpenBrowser(ctx, abs); err != nil {
			return path, err
		}
	}
	return path, nil
}

// OpenBrowser opens path with the desktop's default handler
func OpenBrowser(ctx context.Context, path string) error {
	log := logr.FromContextOrDiscard(ctx)

	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "darwin":
		cmd = exec.CommandContext(ctx, "open", path)
	case "windows":
		cmd = exec.CommandContext(ctx, "rundll32", "url.dll,FileProtocolHandler", path)
	default:
		cmd = exec.CommandContext(ctx, "xdg-open", path)
	}
	log.Info("Executing command", "command", cmd.String())
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("open %s: %w", path, err)
	}
	return nil
}

package handlers

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"

	"github.com/pocketbase/pocketbase/core"

	"craftquote/services"
)

// responseSink shares by returning the payload to the browser, which hands
// text to the Web Share API and files to the download manager. Exported files
// are removed from disk once read, so the export directory does not grow with
// every download.
type responseSink struct {
	e *core.RequestEvent
}

func (s responseSink) Share(ctx context.Context, text string) error {
	s.e.Response.Header().Set("Content-Type", "text/plain; charset=utf-8")
	s.e.Response.WriteHeader(http.StatusOK)
	if _, err := s.e.Response.Write([]byte(text)); err != nil {
		return fmt.Errorf("write share text: %w", err)
	}
	return nil
}

func (s responseSink) ShareFile(ctx context.Context, file services.ExportedFile, mime string) error {
	data, err := os.ReadFile(file.Path)
	if err != nil {
		return fmt.Errorf("read %s: %w", file.Name, err)
	}
	if err := os.Remove(file.Path); err != nil {
		log.Printf("share: could not remove %s: %v", file.Path, err)
	}
	s.e.Response.Header().Set("Content-Type", mime)
	s.e.Response.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, file.Name))
	s.e.Response.WriteHeader(http.StatusOK)
	if _, err := s.e.Response.Write(data); err != nil {
		return fmt.Errorf("write %s: %w", file.Name, err)
	}
	return nil
}

// Package sharing hands quotations and replies to whatever the platform uses
// to share them, and turns every failure into a user-visible notice.
package sharing

import (
	"context"
	"errors"
	"fmt"

	"craftquote/services"
)

// ErrUnavailable reports that a sink cannot share in this environment.
var ErrUnavailable = errors.New("sharing is not available")

// Notice levels
const (
	LevelSuccess = "success"
	LevelInfo    = "info"
	LevelWarning = "warning"
	LevelError   = "error"
)

// Sink shares a piece of text.
type Sink interface {
	Share(ctx context.Context, text string) error
}

// FileSink shares a generated file.
type FileSink interface {
	ShareFile(ctx context.Context, file services.ExportedFile, mime string) error
}

// Notifier shows a message to the user.
type Notifier interface {
	Notify(ctx context.Context, level, message string)
}

// ShareText passes text to sink unchanged. On failure the user is notified
// with the error and false is returned.
func ShareText(ctx context.Context, sink Sink, n Notifier, text string) bool {
	if err := sink.Share(ctx, text); err != nil {
		n.Notify(ctx, LevelError, fmt.Sprintf("Could not share: %v", err))
		return false
	}
	return true
}

// ExportDocument renders doc to a file and hands it to sink. When the sink is
// unavailable the file location is shown instead. The returned file is
// zero-valued when generation failed.
func ExportDocument(ctx context.Context, gen services.DocumentGenerator, sink FileSink, n Notifier, doc services.QuoteDocument) (services.ExportedFile, bool) {
	file, err := gen.Render(ctx, doc)
	if err != nil {
		n.Notify(ctx, LevelError, fmt.Sprintf("Could not create document: %v", err))
		return services.ExportedFile{}, false
	}

	err = sink.ShareFile(ctx, file, file.MIME)
	switch {
	case err == nil:
		return file, true
	case errors.Is(err, ErrUnavailable):
		n.Notify(ctx, LevelInfo, fmt.Sprintf("Document saved to %s", file.Path))
		return file, true
	default:
		n.Notify(ctx, LevelError, fmt.Sprintf("Could not share: %v", err))
		return file, false
	}
}

// Unavailable is a sink for environments with no share capability.
type Unavailable struct{}

func (Unavailable) Share(ctx context.Context, text string) error {
	return ErrUnavailable
}

func (Unavailable) ShareFile(ctx context.Context, file services.ExportedFile, mime string) error {
	return ErrUnavailable
}

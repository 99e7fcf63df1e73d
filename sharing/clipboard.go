package sharing

import (
	"context"
	"fmt"

	"github.com/atotto/clipboard"
)

// ClipboardSink shares text by copying it to the system clipboard.
type ClipboardSink struct{}

func (ClipboardSink) Share(ctx context.Context, text string) error {
	if clipboard.Unsupported {
		return ErrUnavailable
	}
	if err := clipboard.WriteAll(text); err != nil {
		return fmt.Errorf("copy to clipboard: %w", err)
	}
	return nil
}

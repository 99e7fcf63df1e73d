package sharing

import (
	"context"
	"fmt"
	"io"
)

// WriterNotifier prints notices as "level: message" lines.
type WriterNotifier struct {
	W io.Writer
}

func (n WriterNotifier) Notify(ctx context.Context, level, message string) {
	fmt.Fprintf(n.W, "%s: %s\n", level, message)
}

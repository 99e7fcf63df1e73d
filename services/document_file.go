package services

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

const (
	MIMEPDF  = "application/pdf"
	MIMEHTML = "text/html; charset=utf-8"
	MIMEXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

// ExportedFile is a generated document on disk.
type ExportedFile struct {
	Path string
	Name string
	MIME string
	Size int64
}

// DocumentGenerator turns a quotation document into a file.
type DocumentGenerator interface {
	Render(ctx context.Context, doc QuoteDocument) (ExportedFile, error)
}

// PDFGenerator writes quotation PDFs into Dir.
type PDFGenerator struct {
	Dir string
	Now func() time.Time
}

func (g PDFGenerator) Render(ctx context.Context, doc QuoteDocument) (ExportedFile, error) {
	if err := ctx.Err(); err != nil {
		return ExportedFile{}, err
	}
	data, err := GenerateQuotePDF(doc)
	if err != nil {
		return ExportedFile{}, err
	}
	return writeExport(g.Dir, QuoteFilename(doc.Title, nowOr(g.Now), "pdf"), MIMEPDF, data)
}

// HTMLGenerator writes the markup form of quotations into Dir.
type HTMLGenerator struct {
	Dir string
	Now func() time.Time
}

func (g HTMLGenerator) Render(ctx context.Context, doc QuoteDocument) (ExportedFile, error) {
	if err := ctx.Err(); err != nil {
		return ExportedFile{}, err
	}
	return writeExport(g.Dir, QuoteFilename(doc.Title, nowOr(g.Now), "html"), MIMEHTML, []byte(doc.HTML()))
}

func nowOr(now func() time.Time) time.Time {
	if now == nil {
		return time.Now()
	}
	return now()
}

func writeExport(dir, name, mime string, data []byte) (ExportedFile, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return ExportedFile{}, fmt.Errorf("create export dir: %w", err)
	}
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return ExportedFile{}, fmt.Errorf("write %s: %w", name, err)
	}
	return ExportedFile{Path: path, Name: name, MIME: mime, Size: int64(len(data))}, nil
}

// QuoteFilename builds an ASCII filename such as
// "offer-bratara-margele-20261014-153000.pdf".
func QuoteFilename(title string, now time.Time, ext string) string {
	return fmt.Sprintf("%s-%s.%s", Slugify(title), now.Format("20060102-150405"), ext)
}

// Slugify lowercases s, strips diacritics and joins the remaining
// alphanumeric runs with dashes.
func Slugify(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	ascii, _, err := transform.String(t, s)
	if err != nil {
		ascii = s
	}

	var b strings.Builder
	dash := false
	for _, r := range strings.ToLower(ascii) {
		if r < unicode.MaxASCII && (unicode.IsLetter(r) || unicode.IsDigit(r)) {
			if dash && b.Len() > 0 {
				b.WriteByte('-')
			}
			b.WriteRune(r)
			dash = false
			continue
		}
		dash = true
	}
	if b.Len() == 0 {
		return "offer"
	}
	return b.String()
}

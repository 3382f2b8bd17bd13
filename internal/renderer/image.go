package renderer

import (
	"bytes"
	"encoding/base64"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"log/slog"
	"strings"

	"github.com/jung-kurt/gofpdf"
)

// embedImage places raster data on the page, degrading to a no-op when the
// data is absent, not a decodable image, or rejected by the PDF engine. The
// rest of the layout carries independent business value, so a bad image must
// never abort the document.
func embedImage(doc *gofpdf.Fpdf, name string, data []byte, x, y, w, h float64) {
	if len(data) == 0 {
		return
	}
	defer func() {
		if rec := recover(); rec != nil {
			slog.Warn("Panic while embedding image, omitting it", "image", name, "panic", rec)
			doc.ClearError()
		}
	}()

	_, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		slog.Warn("Skipping unrenderable image", "image", name, "error", err)
		return
	}
	imageType := strings.ToUpper(format)
	if imageType != "PNG" && imageType != "JPEG" {
		slog.Warn("Skipping image with unsupported format", "image", name, "format", format)
		return
	}

	opts := gofpdf.ImageOptions{ImageType: imageType}
	doc.RegisterImageOptionsReader(name, opts, bytes.NewReader(data))
	doc.ImageOptions(name, x, y, w, h, false, opts, 0, "")
	if doc.Err() {
		slog.Warn("PDF engine rejected image, omitting it", "image", name, "error", doc.Error())
		doc.ClearError()
	}
}

// decodeImageRef turns a caller-supplied image reference into raw bytes.
// Both "data:image/...;base64,..." URIs and bare base64 payloads are
// accepted; anything else yields nil, which embedImage ignores.
func decodeImageRef(ref string) []byte {
	payload := ref
	if strings.HasPrefix(ref, "data:") {
		_, rest, ok := strings.Cut(ref, ",")
		if !ok {
			return nil
		}
		payload = rest
	}
	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return nil
	}
	return data
}

package renderer

import (
	"fmt"
	"log/slog"

	"github.com/jung-kurt/gofpdf"
	"github.com/skip2/go-qrcode"
)

// Verification code placement inside the signature/stamp block.
const (
	verifyCodeX    = 168
	verifyCodeDrop = 18
	verifyCodeSize = 24
)

// drawVerifyCode stamps a scannable verification link for the document when a
// verify host is configured. Generation failure degrades like any other
// image: the code is omitted and the document completes.
func (r *Renderer) drawVerifyCode(doc *gofpdf.Fpdf, y float64, documentID string) {
	if r.verifyHost == "" {
		return
	}
	verifyURL := fmt.Sprintf("%s/validate/%s", r.verifyHost, documentID)
	png, err := qrcode.Encode(verifyURL, qrcode.Medium, 256)
	if err != nil {
		slog.Warn("Failed to generate verification code", "error", err, "document_id", documentID)
		return
	}
	embedImage(doc, "verify-"+documentID, png, verifyCodeX, y+verifyCodeDrop, verifyCodeSize, verifyCodeSize)
}

package renderer

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/jung-kurt/gofpdf"
	"github.com/scoutsheirbrug/attest-api/internal/attest"
)

// Page geometry in millimeters. The cursor starts at the top and only ever
// moves down; content past one page is undefined.
const (
	pageWidth = 210
	marginX   = 10
	labelX    = 14
	valueX    = 57
	startY    = 10
)

// Watermark artwork is stretched to the content width at a fixed aspect ratio.
const (
	watermarkX      = 30
	watermarkY      = 30
	watermarkWidth  = pageWidth - 60
	watermarkAspect = 1616.0 / 1860.0
)

// Offsets inside the signature/stamp block.
const (
	stampColumnX    = 112
	imageDropY      = 4
	stampWidth      = 40
	signatureWidth  = 50
	signatureAspect = 731.0 / 1587.0
	closingAdvance  = 50
)

// DocumentHandle is the opaque result of one render: a self-contained data
// URI suitable for an embedding viewport, plus the download filename.
type DocumentHandle struct {
	ID       string `json:"id"`
	Filename string `json:"filename"`
	URI      string `json:"pdf"`
	PDF      []byte `json:"-"`
}

// Renderer lays out certificates for one fixed organization.
type Renderer struct {
	org        attest.Organization
	verifyHost string
}

// Option configures optional renderer behavior.
type Option func(*Renderer)

// WithVerifyHost enables a scannable verification code on every document,
// pointing at the given host. Off by default.
func WithVerifyHost(host string) Option {
	return func(r *Renderer) {
		r.verifyHost = strings.TrimSuffix(host, "/")
	}
}

// New builds a renderer around an immutable organization record.
func New(org attest.Organization, opts ...Option) *Renderer {
	r := &Renderer{org: org}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Render lays out one certificate onto a single A4 page and returns its
// handle. It never fails on well-typed input: empty strings and zero numbers
// print as blanks and "0", and unrenderable embedded images are omitted
// rather than aborting the document.
func (r *Renderer) Render(cert attest.Certificate) (*DocumentHandle, error) {
	doc := gofpdf.New("P", "mm", "A4", "")
	doc.AddPage()
	p := &page{doc: doc, y: startY}

	documentID := uuid.NewString()

	// Watermark goes down first so every section overlays it.
	embedImage(doc, "watermark", r.org.Watermark,
		watermarkX, watermarkY, watermarkWidth, watermarkWidth*watermarkAspect)

	if cert.Type == attest.TypeMembership {
		p.title("Attest lidmaatschap jeugdbeweging")
		p.section("Gegevens van het lid", 2)
	} else {
		p.title("Attest deelname aan scoutskamp")
		p.section("Gegevens van de deelnemer", 2)
	}
	p.field("Naam", cert.MemberName)
	p.field("Adres", cert.MemberAddress)

	p.section("Gegevens van de organisatie", 3)
	p.field("Naam", r.org.Name)
	p.field("Adres", r.org.Address)
	p.field("E-mailadres", r.org.Contact)

	if cert.Type == attest.TypeMembership {
		p.section("Gegevens van het lidmaatschap", 3)
		p.field("Periode", cert.MembershipStartDate+" - "+cert.MembershipEndDate)
	} else {
		p.section("Gegevens van het kamp", 4)
		p.field("Periode", cert.CampStartDate+" - "+cert.CampEndDate)
		p.field("Aantal dagen", strconv.Itoa(cert.CampDays))
	}
	p.field("Betaald bedrag", fmt.Sprintf("%d euro", cert.Payment))
	p.field("Datum betaling", cert.PaymentDate)

	p.section("", 6)
	p.font(13, colorGray, styleBold)
	doc.Text(labelX, p.y, "Handtekening verantwoordelijke")
	doc.Text(stampColumnX, p.y, "Stempel van de organisatie")
	embedImage(doc, "stamp", r.org.Stamp, stampColumnX, p.y+imageDropY, stampWidth, 0)
	if cert.Signature != "" {
		embedImage(doc, "signature", decodeImageRef(cert.Signature),
			labelX, p.y+imageDropY, signatureWidth, signatureWidth*signatureAspect)
	}
	r.drawVerifyCode(doc, p.y, documentID)
	p.y += closingAdvance
	p.font(15, colorBlack, styleNormal)
	doc.Text(labelX, p.y, fmt.Sprintf("Opgemaakt op %s te %s", cert.Date, r.org.Place))

	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to encode document: %w", err)
	}

	return &DocumentHandle{
		ID:       documentID,
		Filename: "Attest_" + strings.ReplaceAll(cert.MemberName, " ", "_"),
		URI:      "data:application/pdf;base64," + base64.StdEncoding.EncodeToString(buf.Bytes()),
		PDF:      buf.Bytes(),
	}, nil
}

const (
	colorBlack = false
	colorGray  = true

	styleNormal = false
	styleBold   = true
)

// page carries the vertical layout cursor through one render pass.
type page struct {
	doc *gofpdf.Fpdf
	y   float64
}

func (p *page) font(size float64, gray, bold bool) {
	style := ""
	if bold {
		style = "B"
	}
	p.doc.SetFont("Helvetica", style, size)
	if gray {
		p.doc.SetTextColor(102, 102, 102)
	} else {
		p.doc.SetTextColor(0, 0, 0)
	}
}

func (p *page) title(label string) {
	p.y += 10
	p.font(20, colorBlack, styleBold)
	p.doc.Text(marginX, p.y, label)
	p.y += 10
}

// section draws the bordered box for the next lines fields. The rectangle's
// top-left corner is the cursor position before the advance, so fields drawn
// afterwards land inside a box sized for exactly that many field calls.
func (p *page) section(label string, lines int) {
	height := 4.0
	if label != "" {
		height = 12
	}
	height += float64(lines) * 10
	p.doc.Rect(marginX, p.y, pageWidth-2*marginX, height, "D")
	if label != "" {
		p.font(13, colorGray, styleBold)
		p.doc.Text(marginX+2, p.y+7, label)
		p.y += 17
	} else {
		p.y += 9
	}
}

func (p *page) field(label, value string) {
	p.font(15, colorBlack, styleBold)
	p.doc.Text(labelX, p.y, label+":")
	p.font(15, colorBlack, styleNormal)
	p.doc.Text(valueX, p.y, value)
	p.y += 10
}

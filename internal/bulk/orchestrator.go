package bulk

import (
	"encoding/json"
	"log/slog"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/scoutsheirbrug/attest-api/internal/attest"
	"github.com/scoutsheirbrug/attest-api/internal/renderer"
)

// Spreadsheet columns the camp pipeline reads.
const (
	colName    = "Naam"
	colAddress = "Adres"
	colPeriod  = "Aanwezig"
	colAmount  = "Bedrag"
	colDate    = "Datum"
)

// Row-level error tags. Every outcome carries exactly one of these or a
// rendered document; nothing is ever thrown past a row.
const (
	ErrInvalidPeriod = "ongeldige kamp periode"
	ErrNoPayment     = "geen betaling"
)

// campPeriodPattern is the constrained textual form of the Aanwezig column,
// e.g. "5 juli - 12 juli".
var campPeriodPattern = regexp.MustCompile(`^(\d+) juli - (\d+) juli$`)

// Outcome is one input row enriched with either an error tag or a rendered
// document handle; the original row's business fields are untouched.
type Outcome struct {
	Row   Row
	Error string
	PDF   *renderer.DocumentHandle
}

// MarshalJSON flattens the outcome back onto the row's own columns, with the
// synthetic "error" or "pdf"/"filename" keys appended, mirroring the shape
// the bulk result list is consumed in.
func (o Outcome) MarshalJSON() ([]byte, error) {
	merged := make(map[string]any, len(o.Row.columns)+3)
	for _, col := range o.Row.columns {
		if v, ok := o.Row.Get(col); ok {
			merged[col] = v
		}
	}
	if o.Error != "" {
		merged["error"] = o.Error
	}
	if o.PDF != nil {
		merged["pdf"] = o.PDF.URI
		merged["filename"] = o.PDF.Filename
	}
	return json.Marshal(merged)
}

// Builder maps parsed rows through the camp extraction rules and renders a
// certificate per valid row.
type Builder struct {
	renderer *renderer.Renderer
	year     int
	now      func() time.Time
}

// DefaultYear is the camp season the reconstructed dates default to when the
// caller does not override it.
const DefaultYear = 2023

// NewBuilder wires the orchestrator to a renderer. year is the camp season
// used to reconstruct dates from the day-only period column; zero or
// negative falls back to DefaultYear.
func NewBuilder(r *renderer.Renderer, year int) *Builder {
	if year <= 0 {
		year = DefaultYear
	}
	return &Builder{renderer: r, year: year, now: time.Now}
}

// Build classifies then renders every row, in input order, one outcome per
// row. A malformed row taints only itself: the batch always completes.
func (b *Builder) Build(rows []Row, signature string) []Outcome {
	outcomes := make([]Outcome, 0, len(rows))
	rendered, rejected := 0, 0
	for _, row := range rows {
		outcome := b.buildRow(row, signature)
		if outcome.Error != "" {
			rejected++
		} else {
			rendered++
		}
		outcomes = append(outcomes, outcome)
	}
	slog.Info("Bulk build completed", "rows", len(rows), "rendered", rendered, "rejected", rejected)
	return outcomes
}

func (b *Builder) buildRow(row Row, signature string) Outcome {
	cert, errTag := b.extract(row, signature)
	if errTag != "" {
		return Outcome{Row: row, Error: errTag}
	}

	handle, err := b.renderer.Render(cert)
	if err != nil {
		slog.Error("Bulk render failed for row", "member", cert.MemberName, "error", err)
		return Outcome{Row: row, Error: err.Error()}
	}
	return Outcome{Row: row, PDF: handle}
}

// extract applies the domain extraction rules to one row: the camp period
// must match the fixed pattern, the payment must be positive and dated.
// A non-empty errTag means the certificate is not to be rendered.
func (b *Builder) extract(row Row, signature string) (cert attest.Certificate, errTag string) {
	match := campPeriodPattern.FindStringSubmatch(strings.TrimSpace(row.Value(colPeriod)))
	if match == nil {
		return attest.Certificate{}, ErrInvalidPeriod
	}
	startDay, _ := strconv.Atoi(match[1])
	endDay, _ := strconv.Atoi(match[2])

	payment := parsePayment(row.Value(colAmount))
	paymentDate := row.Value(colDate)
	if payment <= 0 || paymentDate == "" {
		return attest.Certificate{}, ErrNoPayment
	}

	start := time.Date(b.year, time.July, startDay, 0, 0, 0, 0, time.UTC)
	end := time.Date(b.year, time.July, endDay, 0, 0, 0, 0, time.UTC)

	return attest.Certificate{
		Type:          attest.TypeCamp,
		MemberName:    row.Value(colName),
		MemberAddress: row.Value(colAddress),
		CampStartDate: attest.FormatDate(start),
		CampEndDate:   attest.FormatDate(end),
		CampDays:      attest.CampDays(start, end),
		Payment:       payment,
		PaymentDate:   paymentDate,
		Date:          attest.FormatDate(b.now()),
		Signature:     signature,
	}, ""
}

// parsePayment strips a leading currency-symbol-plus-space prefix and parses
// the remainder. Unparseable amounts come back as 0, which the caller treats
// as "no payment".
func parsePayment(raw string) int {
	s := strings.TrimSpace(raw)
	if i := strings.IndexByte(s, ' '); i >= 0 {
		s = strings.TrimSpace(s[i+1:])
	}
	if n, err := strconv.Atoi(s); err == nil {
		return n
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return int(f)
	}
	return 0
}

package attest

// Type selects which optional block of the certificate layout is active.
type Type string

const (
	TypeCamp       Type = "camp"
	TypeMembership Type = "membership"
)

// Certificate is the canonical input to the document renderer. All fields are
// display-ready strings except the numeric ones; the value is rebuilt from its
// sources whenever any of them changes, never mutated in place.
type Certificate struct {
	Type          Type
	MemberName    string
	MemberAddress string

	// Camp fields, only meaningful when Type == TypeCamp.
	CampStartDate string
	CampEndDate   string
	CampDays      int

	// Membership fields, only meaningful when Type == TypeMembership.
	MembershipStartDate string
	MembershipEndDate   string

	Payment     int
	PaymentDate string

	// Date is the "document issued on" string, normally today.
	Date string

	// Signature is an image data URI, or empty when no signature is available.
	// The renderer tolerates absence; the interactive flow requires presence.
	Signature string
}

// Organization is the fixed issuing organization printed on every certificate.
// It is injected into the renderer at construction and never mutated.
type Organization struct {
	Name      string
	Address   string
	Contact   string
	Place     string
	Stamp     []byte
	Watermark []byte
}

// Problems reports why the certificate is not download-eligible, one readable
// message per failing field, in a stable order. An empty result means the
// certificate passes every required-per-type predicate. The renderer itself
// never consults this; incomplete certificates still render.
func (c Certificate) Problems() []string {
	var problems []string
	if c.MemberName == "" {
		problems = append(problems, "Member name is required")
	}
	if c.MemberAddress == "" {
		problems = append(problems, "Member address is required")
	}
	if c.Type == TypeCamp {
		if c.CampStartDate == "" {
			problems = append(problems, "Camp start date is required")
		}
		if c.CampEndDate == "" || c.CampDays <= 0 {
			problems = append(problems, "Camp period must span at least one day")
		}
	}
	if c.Payment <= 0 {
		problems = append(problems, "Payment must be positive")
	}
	if c.PaymentDate == "" {
		problems = append(problems, "Payment date is required")
	}
	if c.Signature == "" {
		problems = append(problems, "Signature is required")
	}
	return problems
}

// DownloadEligible reports whether every required-per-type field is valid.
func (c Certificate) DownloadEligible() bool {
	return len(c.Problems()) == 0
}

package payload

// AttestFields are the raw form values a certificate is assembled from.
// Dates arrive as yyyy-mm-dd strings straight from date inputs.
type AttestFields struct {
	Type          string `json:"type" validate:"required,oneof=camp membership"`
	MemberName    string `json:"member_name" validate:"required"`
	MemberAddress string `json:"member_address" validate:"required"`
	CampStart     string `json:"camp_start"`
	CampEnd       string `json:"camp_end"`
	Payment       int    `json:"payment" validate:"required,gt=0"`
	PaymentDate   string `json:"payment_date" validate:"required"`
	Signature     string `json:"signature" validate:"required"`
}

// PreviewAttestPayload carries the same fields without any validation
// gating: the live preview renders incomplete records by design. A session
// id requests debounced rendering instead of an immediate one.
type PreviewAttestPayload struct {
	Type          string `json:"type"`
	MemberName    string `json:"member_name"`
	MemberAddress string `json:"member_address"`
	CampStart     string `json:"camp_start"`
	CampEnd       string `json:"camp_end"`
	Payment       int    `json:"payment"`
	PaymentDate   string `json:"payment_date"`
	Signature     string `json:"signature"`
	SessionID     string `json:"session_id"`
}

// BulkAttestPayload is the batch flow input: the raw delimited text of the
// spreadsheet export plus the responsible party's signature image.
type BulkAttestPayload struct {
	Content   string `json:"content" validate:"required"`
	Signature string `json:"signature"`
	Year      int    `json:"year"`
}

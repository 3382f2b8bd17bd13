package util

import (
	"testing"

	"github.com/scoutsheirbrug/attest-api/type/payload"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validFields() payload.AttestFields {
	return payload.AttestFields{
		Type:          "camp",
		MemberName:    "Jane Doe",
		MemberAddress: "123 Main St",
		CampStart:     "2023-07-05",
		CampEnd:       "2023-07-12",
		Payment:       50,
		PaymentDate:   "2023-07-01",
		Signature:     "data:image/png;base64,AAAA",
	}
}

// TestValidateStruct_ValidFields tests that a complete request passes
func TestValidateStruct_ValidFields(t *testing.T) {
	assert.NoError(t, ValidateStruct(validFields()))
}

// TestValidateStruct_Messages tests the readable messages per failing tag
func TestValidateStruct_Messages(t *testing.T) {
	tests := []struct {
		name        string
		mutate      func(*payload.AttestFields)
		wantMessage string
	}{
		{"missing name", func(f *payload.AttestFields) { f.MemberName = "" }, "MemberName is required"},
		{"missing signature", func(f *payload.AttestFields) { f.Signature = "" }, "Signature is required"},
		{"unknown type", func(f *payload.AttestFields) { f.Type = "diploma" }, "Type must be one of: camp membership"},
		{"negative payment", func(f *payload.AttestFields) { f.Payment = -5 }, "Payment must be greater than 0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fields := validFields()
			tt.mutate(&fields)

			err := ValidateStruct(fields)
			require.Error(t, err)

			messages := GetValidationErrors(err)
			require.NotEmpty(t, messages)
			assert.Contains(t, messages, tt.wantMessage)
		})
	}
}

// TestValidateStruct_BulkPayload tests the batch request contract
func TestValidateStruct_BulkPayload(t *testing.T) {
	err := ValidateStruct(payload.BulkAttestPayload{})
	require.Error(t, err)
	assert.Contains(t, GetValidationErrors(err), "Content is required")

	assert.NoError(t, ValidateStruct(payload.BulkAttestPayload{Content: "Naam\nJane"}),
		"Signature and year are optional in the bulk flow")
}

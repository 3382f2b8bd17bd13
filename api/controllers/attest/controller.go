// Package attest_controller exposes the certificate pipeline over HTTP: a
// validated single render, an ungated live preview, and the two bulk
// endpoints. The form UI is the collaborator on the other side of these
// routes; everything stateful lives in the core packages.
package attest_controller

import (
	"github.com/scoutsheirbrug/attest-api/internal/attest"
	"github.com/scoutsheirbrug/attest-api/type/payload"
)

func toParams(body payload.AttestFields) attest.Params {
	return attest.Params{
		Type:          attest.Type(body.Type),
		MemberName:    body.MemberName,
		MemberAddress: body.MemberAddress,
		CampStart:     body.CampStart,
		CampEnd:       body.CampEnd,
		Payment:       body.Payment,
		PaymentDate:   body.PaymentDate,
		Signature:     body.Signature,
	}
}

func previewToParams(body payload.PreviewAttestPayload) attest.Params {
	return toParams(payload.AttestFields{
		Type:          body.Type,
		MemberName:    body.MemberName,
		MemberAddress: body.MemberAddress,
		CampStart:     body.CampStart,
		CampEnd:       body.CampEnd,
		Payment:       body.Payment,
		PaymentDate:   body.PaymentDate,
		Signature:     body.Signature,
	})
}

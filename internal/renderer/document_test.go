package renderer

import (
	"encoding/base64"
	"strings"
	"testing"

	"github.com/scoutsheirbrug/attest-api/internal/attest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testOrg() attest.Organization {
	return attest.Organization{
		Name:      "Scouts Jan Berchmans",
		Address:   "Veerstraat 14, 9160 Lokeren",
		Contact:   "groepsleiding@scoutsheirbrug.be",
		Place:     "Lokeren",
		Stamp:     DefaultStamp(),
		Watermark: DefaultWatermark(),
	}
}

func testSignature() string {
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(DefaultStamp())
}

func campCertificate() attest.Certificate {
	return attest.Certificate{
		Type:          attest.TypeCamp,
		MemberName:    "Jane Doe",
		MemberAddress: "123 Main St",
		CampStartDate: "05/07/2023",
		CampEndDate:   "12/07/2023",
		CampDays:      7,
		Payment:       50,
		PaymentDate:   "01/07/2023",
		Date:          "20/08/2023",
		Signature:     testSignature(),
	}
}

// TestRender_CampCertificate tests the happy path of a complete camp attest
func TestRender_CampCertificate(t *testing.T) {
	r := New(testOrg())

	handle, err := r.Render(campCertificate())

	require.NoError(t, err)
	require.NotNil(t, handle)
	assert.Equal(t, "Attest_Jane_Doe", handle.Filename, "Spaces become underscores")
	assert.True(t, strings.HasPrefix(handle.URI, "data:application/pdf;base64,"))
	assert.NotEmpty(t, handle.ID)
	require.NotEmpty(t, handle.PDF)
	assert.True(t, strings.HasPrefix(string(handle.PDF[:4]), "%PDF"))
}

// TestRender_MembershipCertificate tests the membership layout branch
func TestRender_MembershipCertificate(t *testing.T) {
	r := New(testOrg())

	cert := campCertificate()
	cert.Type = attest.TypeMembership
	cert.MembershipStartDate = "01/09/2022"
	cert.MembershipEndDate = "01/09/2023"

	handle, err := r.Render(cert)

	require.NoError(t, err)
	require.NotNil(t, handle)
	assert.NotEmpty(t, handle.PDF)
}

// TestRender_EmptyCertificate tests defensive rendering: a zero-value record
// must still produce a structurally complete document
func TestRender_EmptyCertificate(t *testing.T) {
	r := New(testOrg())

	handle, err := r.Render(attest.Certificate{})

	require.NoError(t, err, "Rendering incomplete data is by design")
	require.NotNil(t, handle)
	assert.Equal(t, "Attest_", handle.Filename)
	assert.NotEmpty(t, handle.PDF)
}

// TestRender_MissingArtwork tests that absent organization images are
// silently omitted
func TestRender_MissingArtwork(t *testing.T) {
	org := testOrg()
	org.Stamp = nil
	org.Watermark = nil
	r := New(org)

	handle, err := r.Render(campCertificate())

	require.NoError(t, err)
	assert.NotEmpty(t, handle.PDF)
}

// TestRender_CorruptSignature tests that an unrenderable signature degrades
// to omission instead of aborting the document
func TestRender_CorruptSignature(t *testing.T) {
	r := New(testOrg())

	tests := []struct {
		name      string
		signature string
	}{
		{"not base64", "data:image/png;base64,!!!not-base64!!!"},
		{"base64 but not an image", "data:image/png;base64," + base64.StdEncoding.EncodeToString([]byte("garbage bytes"))},
		{"no comma in data uri", "data:image/png;base64"},
		{"bare junk", "just a string"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cert := campCertificate()
			cert.Signature = tt.signature

			handle, err := r.Render(cert)

			require.NoError(t, err)
			require.NotNil(t, handle)
			assert.NotEmpty(t, handle.PDF)
		})
	}
}

// TestRender_WithVerifyHost tests that the optional verification code does
// not disturb rendering
func TestRender_WithVerifyHost(t *testing.T) {
	r := New(testOrg(), WithVerifyHost("https://attest.example.org/"))

	handle, err := r.Render(campCertificate())

	require.NoError(t, err)
	assert.NotEmpty(t, handle.PDF)
}

// TestDecodeImageRef tests image reference decoding tolerance
func TestDecodeImageRef(t *testing.T) {
	payload := base64.StdEncoding.EncodeToString([]byte{1, 2, 3})

	assert.Equal(t, []byte{1, 2, 3}, decodeImageRef("data:image/png;base64,"+payload))
	assert.Equal(t, []byte{1, 2, 3}, decodeImageRef(payload), "Bare base64 is accepted")
	assert.Nil(t, decodeImageRef("data:image/png;base64"))
	assert.Nil(t, decodeImageRef("data:image/png;base64,%%%"))
}

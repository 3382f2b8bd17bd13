package bulk

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestParse_QuotedComma tests that a comma inside a quoted field does not
// split the field
func TestParse_QuotedComma(t *testing.T) {
	rows := Parse("Naam,Adres\n\"Doe, Jane\",123 Main St")

	require.Len(t, rows, 1)
	assert.Equal(t, "Doe, Jane", rows[0].Value("Naam"))
	assert.Equal(t, "123 Main St", rows[0].Value("Adres"))
}

// TestParse_ShortRow tests that a row with fewer fields than the header
// resolves missing columns to the explicit missing marker instead of crashing
func TestParse_ShortRow(t *testing.T) {
	rows := Parse("Naam,Adres,Datum\nJane Doe")

	require.Len(t, rows, 1)

	name, ok := rows[0].Get("Naam")
	assert.True(t, ok)
	assert.Equal(t, "Jane Doe", name)

	_, ok = rows[0].Get("Adres")
	assert.False(t, ok, "Missing trailing field is marked missing")
	assert.Equal(t, "", rows[0].Value("Datum"))
}

// TestParse_HeaderOrder tests that column order follows the header line
func TestParse_HeaderOrder(t *testing.T) {
	rows := Parse("Datum,Naam,Bedrag\n2023-07-01,Jane,50")

	require.Len(t, rows, 1)
	assert.Equal(t, []string{"Datum", "Naam", "Bedrag"}, rows[0].Columns())
}

// TestParse_RowOrder tests that rows come back in input order
func TestParse_RowOrder(t *testing.T) {
	rows := Parse("Naam\nfirst\nsecond\nthird")

	require.Len(t, rows, 3)
	assert.Equal(t, "first", rows[0].Value("Naam"))
	assert.Equal(t, "second", rows[1].Value("Naam"))
	assert.Equal(t, "third", rows[2].Value("Naam"))
}

// TestParse_QuoteHandling tests quote stripping and the deliberately
// simplified no-unescaping behavior
func TestParse_QuoteHandling(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{"wrapping quotes stripped", "Naam\n\"Jane Doe\"", "Jane Doe"},
		{"interior quotes untouched", "Naam\n\"zg \"\"de apen\"\"\"", "zg \"\"de apen\"\""},
		{"unquoted stays verbatim", "Naam\nJane Doe", "Jane Doe"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rows := Parse(tt.text)
			require.Len(t, rows, 1)
			assert.Equal(t, tt.want, rows[0].Value("Naam"))
		})
	}
}

// TestParse_WindowsLineEndings tests CRLF tolerance
func TestParse_WindowsLineEndings(t *testing.T) {
	rows := Parse("Naam,Adres\r\nJane,Main St\r\n")

	require.Len(t, rows, 1)
	assert.Equal(t, "Main St", rows[0].Value("Adres"))
}

// TestParse_EmptyInput tests degenerate inputs
func TestParse_EmptyInput(t *testing.T) {
	assert.Empty(t, Parse(""))
	assert.Empty(t, Parse("\n\n"))
	assert.Empty(t, Parse("Naam,Adres\n"), "Header without rows yields nothing")
}

// TestSplitLine tests the even-quote-count comma heuristic directly
func TestSplitLine(t *testing.T) {
	tests := []struct {
		name string
		line string
		want []string
	}{
		{"plain", "a,b,c", []string{"a", "b", "c"}},
		{"quoted comma held together", `"a,b",c`, []string{`"a,b"`, "c"}},
		{"trailing empty field", "a,b,", []string{"a", "b", ""}},
		{"single field", "a", []string{"a"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, splitLine(tt.line))
		})
	}
}

package catalog_test

import (
	"testing"

	"github.com/aaravmahajanofficial/supplements-storefront/internal/catalog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCSVLine(t *testing.T) {
	t.Run("Success - Plain fields are trimmed", func(t *testing.T) {
		// Act
		fields := catalog.ParseCSVLine(" a , b,c ")

		// Assert
		assert.Equal(t, []string{"a", "b", "c"}, fields)
	})

	t.Run("Success - Quoted field with comma and escaped quotes", func(t *testing.T) {
		// Act
		fields := catalog.ParseCSVLine(`x,"Size, ""Large""",y`)

		// Assert
		assert.Equal(t, []string{"x", `Size, "Large"`, "y"}, fields)
	})

	t.Run("Success - Trailing empty field", func(t *testing.T) {
		// Act
		fields := catalog.ParseCSVLine("a,b,")

		// Assert
		assert.Equal(t, []string{"a", "b", ""}, fields)
	})
}

func TestParseCSV(t *testing.T) {
	t.Run("Success - Rows keyed by header", func(t *testing.T) {
		// Arrange
		content := "Handle,Title,Variant Price\nwhey,Whey Protein,1999\n\ncasein,Casein\n"

		// Act
		rows := catalog.ParseCSV(content)

		// Assert
		require.Len(t, rows, 2)
		assert.Equal(t, "whey", rows[0].Get("Handle"))
		assert.Equal(t, "1999", rows[0].Get("Variant Price"))
		assert.Equal(t, "Casein", rows[1].Get("Title"))
		assert.Empty(t, rows[1].Get("Variant Price"))
		assert.Empty(t, rows[1].Get("Unknown Column"))
	})

	t.Run("Success - Byte order mark is dropped", func(t *testing.T) {
		// Arrange
		content := "\ufeffHandle,Title\r\nprotein-bar,Protein Bar\r\n"

		// Act
		rows := catalog.ParseCSV(content)

		// Assert
		require.Len(t, rows, 1)
		assert.Equal(t, "protein-bar", rows[0].Get("Handle"))
		assert.Equal(t, "Protein Bar", rows[0].Get("Title"))
	})

	t.Run("Success - CRLF line endings", func(t *testing.T) {
		// Arrange
		content := "Handle,Title\r\nwhey,Whey Protein\r\n"

		// Act
		rows := catalog.ParseCSV(content)

		// Assert
		require.Len(t, rows, 1)
		assert.Equal(t, "Whey Protein", rows[0].Get("Title"))
	})

	t.Run("Failure - Header only", func(t *testing.T) {
		assert.Empty(t, catalog.ParseCSV("Handle,Title"))
		assert.Empty(t, catalog.ParseCSV(""))
	})
}

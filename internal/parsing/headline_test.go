package parsing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractHeadline_NameTitleContact(t *testing.T) {
	lines := []string{
		"John Doe",
		"Senior Software Engineer",
		"john.doe@example.com | (555) 123-4567",
		"",
		"EXPERIENCE",
		"Engineer | Acme Corp",
	}
	sections := IdentifySections(lines)

	headline := ExtractHeadline(lines, sections)

	assert.Equal(t, "John Doe", headline.Name)
	assert.Equal(t, "Senior Software Engineer", headline.Title)
	assert.Equal(t, "john.doe@example.com | (555) 123-4567", headline.Contact)
}

func TestExtractHeadline_TitleMatchedByRoleKeyword(t *testing.T) {
	lines := []string{
		"Jane Smith",
		"jane@example.com",
		"Product Manager",
		"EXPERIENCE",
	}
	sections := IdentifySections(lines)

	headline := ExtractHeadline(lines, sections)

	assert.Equal(t, "Jane Smith", headline.Name)
	assert.Equal(t, "Product Manager", headline.Title)
}

func TestExtractHeadline_FallsBackToFirstShortLine(t *testing.T) {
	lines := []string{
		"Jane Smith",
		"Chief Widget Officer",
		"EXPERIENCE",
	}
	sections := IdentifySections(lines)

	headline := ExtractHeadline(lines, sections)

	assert.Equal(t, "Chief Widget Officer", headline.Title)
}

func TestExtractHeadline_BoundedByFirstSection(t *testing.T) {
	lines := []string{
		"Jane Smith",
		"EXPERIENCE",
		"Senior Engineer | Acme Corp",
	}
	sections := IdentifySections(lines)

	headline := ExtractHeadline(lines, sections)

	assert.Equal(t, "Jane Smith", headline.Name)
	assert.Empty(t, headline.Title, "role headers past the first section must not leak into the headline")
}

func TestExtractHeadline_EmptyDocument(t *testing.T) {
	headline := ExtractHeadline([]string{"", "", ""}, map[string]int{})

	assert.Empty(t, headline.Name)
	assert.Empty(t, headline.Title)
	assert.Empty(t, headline.Contact)
}

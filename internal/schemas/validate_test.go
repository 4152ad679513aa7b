package schemas

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateStructuredResume_Valid(t *testing.T) {
	doc := `{
		"contact": {"name": "Jane Doe", "email": "jane@example.com"},
		"summary": "Backend engineer",
		"experience": [
			{"company": "Acme", "role": "Engineer", "dates": "2021 - Present", "bullets": ["Shipped things"]}
		],
		"education": [
			{"school": "State University", "degree": "BS Computer Science", "dates": "2020"}
		],
		"skills": ["Go", "Postgres"]
	}`

	assert.NoError(t, ValidateStructuredResume([]byte(doc)))
}

func TestValidateStructuredResume_SkillsShapes(t *testing.T) {
	shapes := map[string]string{
		"flat array":  `["Go", "Postgres"]`,
		"categorized": `{"languages": ["Go"], "databases": ["Postgres"]}`,
		"string":      `"Go, Postgres"`,
		"null":        `null`,
	}

	for name, skills := range shapes {
		t.Run(name, func(t *testing.T) {
			doc := `{"contact": {"name": "Jane"}, "skills": ` + skills + `}`
			assert.NoError(t, ValidateStructuredResume([]byte(doc)))
		})
	}
}

func TestValidateStructuredResume_MissingName(t *testing.T) {
	doc := `{"contact": {"email": "jane@example.com"}}`

	err := ValidateStructuredResume([]byte(doc))
	require.Error(t, err)

	var ve *ValidationError
	require.True(t, errors.As(err, &ve))
	require.NotEmpty(t, ve.Errors)
	assert.Contains(t, ve.Errors[0].Field, "contact")
}

func TestValidateStructuredResume_WrongTypes(t *testing.T) {
	doc := `{"contact": {"name": "Jane"}, "experience": "not an array"}`

	err := ValidateStructuredResume([]byte(doc))
	require.Error(t, err)

	var ve *ValidationError
	assert.True(t, errors.As(err, &ve))
}

func TestValidateJSONString_BadSchema(t *testing.T) {
	err := ValidateJSONString(`{"type": 42}`, `{}`)
	require.Error(t, err)

	var sle *SchemaLoadError
	assert.True(t, errors.As(err, &sle))
}

func TestValidationError_Message(t *testing.T) {
	ve := &ValidationError{Errors: []FieldError{
		{Field: "contact.name", Message: "is required"},
	}}

	assert.Contains(t, ve.Error(), "contact.name")
	assert.Contains(t, ve.Error(), "is required")
}

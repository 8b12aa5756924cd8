package docparse

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEmpty(t *testing.T) {
	docs := Parse(nil)
	assert.Empty(t, docs.Summary)
	assert.Empty(t, docs.Description)
	assert.Empty(t, docs.Parameters)
	assert.Nil(t, docs.RequestBody)
	assert.Empty(t, docs.Responses)

	docs = Parse([]string{"   ", "", "\t"})
	assert.Empty(t, docs.Summary)
	assert.Empty(t, docs.Responses)
}

func TestParseSummaryAndDescription(t *testing.T) {
	docs := Parse([]string{
		" Simple handler",
		" ",
		" This is a simple test handler",
	})
	assert.Equal(t, "Simple handler", docs.Summary)
	assert.Equal(t, "This is a simple test handler", docs.Description)
}

func TestParseDescriptionJoinsLines(t *testing.T) {
	docs := Parse([]string{
		"List users",
		"Returns every user",
		"in the system.",
	})
	assert.Equal(t, "Returns every user in the system.", docs.Description)
}

func TestParseParameters(t *testing.T) {
	docs := Parse([]string{
		"Get user by ID",
		"Retrieves user information",
		"# Parameters",
		"- id (path): User ID",
		"- include_deleted (query): Include deleted users",
		"* api_key (header): API key",
	})
	require.Len(t, docs.Parameters, 3)
	assert.Equal(t, Parameter{Name: "id", Location: "path", Description: "User ID"}, docs.Parameters[0])
	assert.Equal(t, Parameter{Name: "include_deleted", Location: "query", Description: "Include deleted users"}, docs.Parameters[1])
	assert.Equal(t, Parameter{Name: "api_key", Location: "header", Description: "API key"}, docs.Parameters[2])
}

func TestParseParametersMalformed(t *testing.T) {
	docs := Parse([]string{
		"Handler",
		"# Parameters",
		"- id: missing location",
		"- id (path) missing colon",
		"- a) (q: x",
		"not a bullet at all",
		"- good (query): kept",
	})
	require.Len(t, docs.Parameters, 1)
	assert.Equal(t, "good", docs.Parameters[0].Name)
}

func TestParseRequestBody(t *testing.T) {
	docs := Parse([]string{
		"Create user",
		"# Request Body",
		"Content-Type: application/json",
		"User data for creation",
		"- name (string): Full name",
		"- email (string): Email address",
	})
	require.NotNil(t, docs.RequestBody)
	assert.Equal(t, "application/json", docs.RequestBody.ContentType)
	assert.Equal(t,
		"User data for creation - name (string): Full name - email (string): Email address",
		docs.RequestBody.Description)
}

func TestParseRequestBodyWithoutContentType(t *testing.T) {
	docs := Parse([]string{
		"Create user",
		"# Request Body",
		"text before any Content-Type line is ignored",
	})
	assert.Nil(t, docs.RequestBody)
}

func TestParseSimpleResponses(t *testing.T) {
	docs := Parse([]string{
		"Delete user",
		"# Responses",
		"- 204: User deleted",
		"- 404: User not found",
		"- 403: Access denied",
	})
	require.Len(t, docs.Responses, 3)
	assert.Equal(t, 204, docs.Responses[0].Status)
	assert.Equal(t, "User deleted", docs.Responses[0].Description)
	assert.Equal(t, 404, docs.Responses[1].Status)
	assert.Equal(t, "User not found", docs.Responses[1].Description)
	assert.Equal(t, 403, docs.Responses[2].Status)
	assert.Equal(t, "Access denied", docs.Responses[2].Description)
}

func TestParseElaborateResponses(t *testing.T) {
	docs := Parse([]string{
		"Complex endpoint",
		"# Responses",
		"- 200:",
		"  description: Success",
		"  content:",
		"    application/json:",
		"      schema: UserResponse",
		"- 404:",
		"  description: Not found",
	})
	require.Len(t, docs.Responses, 2)

	resp := docs.Responses[0]
	assert.Equal(t, 200, resp.Status)
	assert.Equal(t, "Success", resp.Description)
	require.NotNil(t, resp.Content)
	assert.Equal(t, "application/json", resp.Content.MediaType)
	assert.Equal(t, "UserResponse", resp.Content.Schema)

	assert.Equal(t, 404, docs.Responses[1].Status)
	assert.Equal(t, "Not found", docs.Responses[1].Description)
	assert.Nil(t, docs.Responses[1].Content)
}

func TestParseResponseMediaTypeOverride(t *testing.T) {
	docs := Parse([]string{
		"Plain text endpoint",
		"# Responses",
		"- 200:",
		"  description: OK",
		"  content:",
		"    text/plain:",
		"      schema: Greeting",
	})
	require.Len(t, docs.Responses, 1)
	require.NotNil(t, docs.Responses[0].Content)
	assert.Equal(t, "text/plain", docs.Responses[0].Content.MediaType)
	assert.Equal(t, "Greeting", docs.Responses[0].Content.Schema)
}

func TestParseResponseSchemaWithoutContentLine(t *testing.T) {
	docs := Parse([]string{
		"Endpoint",
		"# Responses",
		"- 200:",
		"  schema: Thing",
	})
	require.Len(t, docs.Responses, 1)
	require.NotNil(t, docs.Responses[0].Content)
	assert.Equal(t, "application/json", docs.Responses[0].Content.MediaType)
	assert.Equal(t, "Thing", docs.Responses[0].Content.Schema)
}

func TestParseResponseExamples(t *testing.T) {
	docs := Parse([]string{
		"Test endpoint",
		"# Responses",
		"- 200:",
		"  description: Success",
		"  examples:",
		"    - name: success_example",
		"      summary: Successful response",
		`      value: {"status": "ok"}`,
	})
	require.Len(t, docs.Responses, 1)
	resp := docs.Responses[0]
	require.Len(t, resp.Examples, 1)
	assert.Equal(t, "success_example", resp.Examples[0].Name)
	assert.Equal(t, "Successful response", resp.Examples[0].Summary)
	assert.Equal(t, `{"status": "ok"}`, resp.Examples[0].Value)
}

func TestParseResponseExamplesQuoted(t *testing.T) {
	docs := Parse([]string{
		"Endpoint",
		"# Responses",
		"- 200:",
		`  description: "Quoted success"`,
		"  examples:",
		`    - name: "quoted_name"`,
		`      summary: "Quoted summary"`,
		`      value: "plain text"`,
	})
	require.Len(t, docs.Responses, 1)
	resp := docs.Responses[0]
	assert.Equal(t, "Quoted success", resp.Description)
	require.Len(t, resp.Examples, 1)
	assert.Equal(t, "quoted_name", resp.Examples[0].Name)
	assert.Equal(t, "Quoted summary", resp.Examples[0].Summary)
	assert.Equal(t, "plain text", resp.Examples[0].Value)
}

func TestParseResponseSummaryBeforeExamplesIgnored(t *testing.T) {
	docs := Parse([]string{
		"Endpoint",
		"# Responses",
		"- 200:",
		"  summary: orphan",
		"  value: orphan",
	})
	require.Len(t, docs.Responses, 1)
	assert.Nil(t, docs.Responses[0].Examples)
}

func TestParseResponseBadStatusDropped(t *testing.T) {
	docs := Parse([]string{
		"Endpoint",
		"# Responses",
		"- abc: not a status",
		"- 99999: out of range",
		"- 200: kept",
	})
	require.Len(t, docs.Responses, 1)
	assert.Equal(t, 200, docs.Responses[0].Status)
}

func TestParseUnknownSectionEndsParsing(t *testing.T) {
	docs := Parse([]string{
		"Endpoint",
		"# Parameters",
		"- id (path): User ID",
		"# Notes",
		"- other (query): not a parameter anymore",
	})
	require.Len(t, docs.Parameters, 1)
	assert.Equal(t, "id", docs.Parameters[0].Name)
	// after an unknown header, lines fall back to description text
	assert.Equal(t, "- other (query): not a parameter anymore", docs.Description)
}

func TestParsePropertyLinesBeforeAnyResponseIgnored(t *testing.T) {
	docs := Parse([]string{
		"Endpoint",
		"# Responses",
		"description: orphan line",
		"- 200: OK",
	})
	require.Len(t, docs.Responses, 1)
	assert.Equal(t, "OK", docs.Responses[0].Description)
}

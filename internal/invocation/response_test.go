package invocation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseResponse(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		wantStatus int
		wantOK     bool
	}{
		{"plain success", `{"statusCode":200,"body":"{\"id\":1}"}`, 200, true},
		{"missing body defaults to empty object", `{"statusCode":200}`, 200, true},
		{"empty body string", `{"statusCode":200,"body":""}`, 200, true},
		{"inline body object", `{"statusCode":200,"body":{"errors":["x"]}}`, 200, false},
		{"array body", `{"statusCode":200,"body":"[1,2]"}`, 200, true},
		{"status as string", `{"statusCode":"200"}`, 0, false},
		{"fractional status", `{"statusCode":200.5}`, 0, false},
		{"not found", `{"statusCode":404,"body":"{}"}`, 404, false},
		{"top-level errors array", `{"statusCode":200,"errors":[]}`, 200, false},
		{"top-level errors false", `{"statusCode":200,"errors":false}`, 200, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := ParseResponse([]byte(tt.input))
			require.NoError(t, err)
			assert.Equal(t, tt.wantStatus, resp.StatusCode)
			assert.Equal(t, tt.wantOK, resp.Successful())
		})
	}
}

func TestParseResponse_Malformed(t *testing.T) {
	for _, input := range []string{``, `null`, `[1]`, `"text"`, `{"statusCode":`} {
		_, err := ParseResponse([]byte(input))
		assert.Error(t, err, input)
	}

	resp, err := ParseResponse([]byte(`{"statusCode":200,"body":"not json"}`))
	require.Error(t, err)
	require.NotNil(t, resp, "the envelope is kept when only the body is malformed")
	assert.Equal(t, 200, resp.StatusCode)
}

package shared

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type decodeTarget struct {
	Name string `json:"name" validate:"required"`
}

// selfValidating exercises the Validate-interface branch of ValidateRequest.
type selfValidating struct {
	fail bool
}

func (s selfValidating) Validate() error {
	if s.fail {
		return errors.New("self validation failed")
	}
	return nil
}

func TestDecodeJSON(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name": "study"}`))

	var target decodeTarget
	require.NoError(t, DecodeJSON(req, &target))
	assert.Equal(t, "study", target.Name)
}

func TestDecodeJSONMalformed(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name": `))

	var target decodeTarget
	assert.Error(t, DecodeJSON(req, &target))
}

func TestValidateRequest(t *testing.T) {
	t.Parallel()

	assert.NoError(t, ValidateRequest(decodeTarget{Name: "study"}))
	assert.Error(t, ValidateRequest(decodeTarget{}))

	assert.NoError(t, ValidateRequest(selfValidating{}))
	assert.Error(t, ValidateRequest(selfValidating{fail: true}))
}

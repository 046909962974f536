package requests

import (
	"bytes"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newJSONContext(t *testing.T, body string) *gin.Context {
	t.Helper()
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("POST", "/api/pay-with-wave", bytes.NewBufferString(body))
	c.Request.Header.Set("Content-Type", "application/json")
	return c
}

func TestValidatePayWithWave_Valid(t *testing.T) {
	c := newJSONContext(t, `{"name":"Awa Diop","phone":"771234567","amount":"1500"}`)

	req, err := ValidatePayWithWave(c)
	require.NoError(t, err)
	assert.Equal(t, "Awa Diop", req.Name)
	assert.Equal(t, "771234567", req.Phone)
	assert.Equal(t, "1500", req.Amount)
}

func TestValidatePayWithWave_MissingFields(t *testing.T) {
	cases := []string{
		`{}`,
		`{"name":"Awa"}`,
		`{"name":"Awa","phone":"771234567"}`,
		`{"phone":"771234567","amount":"1500"}`,
		`{"name":"Awa","amount":"1500"}`,
	}

	for _, body := range cases {
		c := newJSONContext(t, body)
		_, err := ValidatePayWithWave(c)
		assert.Error(t, err, "body: %s", body)
	}
}

func TestValidatePayWithWave_MalformedAmountPassesThrough(t *testing.T) {
	// 历史行为：金额不做数值校验，畸形金额原样透传
	c := newJSONContext(t, `{"name":"Awa","phone":"771234567","amount":"not-a-number"}`)

	req, err := ValidatePayWithWave(c)
	require.NoError(t, err)
	assert.Equal(t, "not-a-number", req.Amount)
}

func TestValidatePayWithWave_OptionalFields(t *testing.T) {
	c := newJSONContext(t, `{"name":"Awa","phone":"771234567","amount":"1500","session_id":"sess-1","item_name":"VIP Station"}`)

	req, err := ValidatePayWithWave(c)
	require.NoError(t, err)
	assert.Equal(t, "sess-1", req.SessionID)
	assert.Equal(t, "VIP Station", req.ItemName)
	assert.Empty(t, req.SubscriptionID)
}

func TestValidatePayWithWave_InvalidJSON(t *testing.T) {
	c := newJSONContext(t, `{"name":`)
	_, err := ValidatePayWithWave(c)
	assert.Error(t, err)
}

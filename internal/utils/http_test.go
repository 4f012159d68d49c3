package utils

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteJSON_Success(t *testing.T) {
	w := httptest.NewRecorder()
	data := map[string]string{"key": "value"}

	n, err := WriteJSON(w, data, http.StatusOK)

	require.NoError(t, err)
	assert.NotZero(t, n)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))

	expected, _ := json.Marshal(data)
	assert.JSONEq(t, string(expected), w.Body.String())
}

func TestWriteJSON_CustomStatusCode(t *testing.T) {
	w := httptest.NewRecorder()

	_, err := WriteJSON(w, map[string]string{"error": "bad gateway"}, http.StatusBadGateway)

	require.NoError(t, err)
	assert.Equal(t, http.StatusBadGateway, w.Code)
}

func TestWriteJSON_InvalidData(t *testing.T) {
	w := httptest.NewRecorder()

	// channels cannot be marshaled to JSON
	_, err := WriteJSON(w, make(chan int), http.StatusOK)

	require.Error(t, err)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestWriteJSON_NilData(t *testing.T) {
	w := httptest.NewRecorder()

	_, err := WriteJSON(w, nil, http.StatusOK)

	require.NoError(t, err)
	assert.Equal(t, "null", w.Body.String())
}

func TestWriteJSON_RawMessagePassesThrough(t *testing.T) {
	w := httptest.NewRecorder()
	raw := json.RawMessage(`{"merchantSessionIdentifier":"abc","epochTimestamp":1700000000000}`)

	_, err := WriteJSON(w, raw, http.StatusOK)

	require.NoError(t, err)
	assert.Equal(t, string(raw), w.Body.String())
}

func TestReadJSON(t *testing.T) {
	type payload struct {
		ValidationURL string `json:"validationUrl"`
	}

	tests := []struct {
		name     string
		body     string
		maxBytes int64
		want     payload
		wantErr  error
		anyErr   bool
	}{
		{name: "valid", body: `{"validationUrl":"https://apple-pay-gateway.apple.com"}`, want: payload{ValidationURL: "https://apple-pay-gateway.apple.com"}},
		{name: "unknown fields ignored", body: `{"validationUrl":"x","extra":true}`, want: payload{ValidationURL: "x"}},
		{name: "empty", body: "", wantErr: ErrEmptyBody},
		{name: "too large", body: `{"validationUrl":"` + strings.Repeat("a", 64) + `"}`, maxBytes: 16, wantErr: ErrBodyTooLarge},
		{name: "malformed", body: `{"validationUrl":`, anyErr: true},
		{name: "wrong type", body: `{"validationUrl":42}`, anyErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(tt.body))

			var got payload
			err := ReadJSON(w, r, &got, tt.maxBytes)

			switch {
			case tt.wantErr != nil:
				assert.ErrorIs(t, err, tt.wantErr)
			case tt.anyErr:
				assert.Error(t, err)
			default:
				require.NoError(t, err)
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestReadJSON_NoBody(t *testing.T) {
	r := httptest.NewRequest(http.MethodPost, "/", nil)

	err := ReadJSON(httptest.NewRecorder(), r, &struct{}{}, 0)

	assert.ErrorIs(t, err, ErrEmptyBody)
}

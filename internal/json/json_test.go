package json_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/edgetabs/internal/json"
)

func TestCodec_MatchesStandardLibrary(t *testing.T) {
	type payload struct {
		Title string          `json:"Title"`
		Extra json.RawMessage `json:"extra,omitempty"`
	}

	data, err := json.Marshal(payload{Title: "<Mail>", Extra: json.RawMessage(`[1,2]`)})
	require.NoError(t, err)
	assert.Equal(t, `{"Title":"\u003cMail\u003e","extra":[1,2]}`, string(data), "HTML is escaped like encoding/json")

	var back payload
	require.NoError(t, json.Unmarshal(data, &back))
	assert.Equal(t, "<Mail>", back.Title)
	assert.JSONEq(t, `[1,2]`, string(back.Extra))
}

func TestEncoder_TerminatesLines(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, json.NewEncoder(&buf).Encode(map[string]int{"id": 1}))
	assert.Equal(t, "{\"id\":1}\n", buf.String())
	assert.True(t, json.Valid(buf.Bytes()))
}

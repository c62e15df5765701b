package kagi_test

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/fwojciec/kagi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func requireStreamError(t *testing.T, err error, kind kagi.StreamErrorKind) {
	t.Helper()

	var se *kagi.StreamError
	require.True(t, errors.As(err, &se), "expected *kagi.StreamError, got %v", err)
	assert.Equal(t, kind, se.Kind)
}

func TestDecodeStream(t *testing.T) {
	t.Parallel()

	t.Run("uses only the final frame", func(t *testing.T) {
		t.Parallel()

		payload := "partial1\x00partial2\x00final:{\"output_data\":{\"markdown\":\"Hello\"}}"

		v, err := kagi.DecodeStream(payload)

		require.NoError(t, err)
		assert.Equal(t, map[string]any{
			"output_data": map[string]any{"markdown": "Hello"},
		}, v)
	})

	t.Run("accepts a final frame without prefix", func(t *testing.T) {
		t.Parallel()

		v, err := kagi.DecodeStream(`{"a":1}`)

		require.NoError(t, err)
		assert.Equal(t, map[string]any{"a": json.Number("1")}, v)
	})

	t.Run("trims whitespace around the prefix", func(t *testing.T) {
		t.Parallel()

		v, err := kagi.DecodeStream("x\x00  final:  [1, 2]  \n")

		require.NoError(t, err)
		assert.Equal(t, []any{json.Number("1"), json.Number("2")}, v)
	})

	t.Run("ignores trailing blank frames", func(t *testing.T) {
		t.Parallel()

		base := "p\x00final:{\"k\":\"v\"}"
		want, err := kagi.DecodeStream(base)
		require.NoError(t, err)

		got, err := kagi.DecodeStream(base + "\x00\x00  \x00\n\t\x00")

		require.NoError(t, err)
		assert.Equal(t, want, got)
	})

	t.Run("strips the prefix only once", func(t *testing.T) {
		t.Parallel()

		_, err := kagi.DecodeStream(`final:final:{}`)

		requireStreamError(t, err, kagi.StreamMalformedJSON)
	})

	t.Run("prefix is case sensitive", func(t *testing.T) {
		t.Parallel()

		_, err := kagi.DecodeStream(`FINAL:{}`)

		requireStreamError(t, err, kagi.StreamMalformedJSON)
	})

	t.Run("fails with NoData for an empty payload", func(t *testing.T) {
		t.Parallel()

		_, err := kagi.DecodeStream("")

		requireStreamError(t, err, kagi.StreamNoData)
	})

	t.Run("fails with NoData for blank frames only", func(t *testing.T) {
		t.Parallel()

		_, err := kagi.DecodeStream("  \x00\n\x00\t \x00")

		requireStreamError(t, err, kagi.StreamNoData)
		assert.Equal(t, "No summary data received", err.Error())
	})

	t.Run("fails with EmptyFinalFrame for a bare prefix", func(t *testing.T) {
		t.Parallel()

		_, err := kagi.DecodeStream("partial\x00final:   ")

		requireStreamError(t, err, kagi.StreamEmptyFinalFrame)
		assert.Equal(t, "Empty summary received", err.Error())
	})

	t.Run("fails with MalformedJSON for invalid JSON", func(t *testing.T) {
		t.Parallel()

		_, err := kagi.DecodeStream("final:not-json")

		requireStreamError(t, err, kagi.StreamMalformedJSON)
		assert.Equal(t, "Failed to parse summary JSON response", err.Error())
		assert.Equal(t, kagi.EPARSE, kagi.ErrorCode(err))
	})

	t.Run("fails with MalformedJSON for trailing data", func(t *testing.T) {
		t.Parallel()

		_, err := kagi.DecodeStream(`final:{"a":1} {"b":2}`)

		requireStreamError(t, err, kagi.StreamMalformedJSON)
	})
}

func TestDecodeStream_RoundTrip(t *testing.T) {
	t.Parallel()

	values := []any{
		map[string]any{
			"output_data": map[string]any{"markdown": "# Title\n\n- point <one> & two"},
			"tokens":      json.Number("12345678901234567890"),
			"ratio":       json.Number("0.25"),
			"flags":       []any{true, false, nil},
		},
		[]any{"a", json.Number("-3"), map[string]any{}},
		"just a string",
		json.Number("42"),
		true,
		nil,
	}

	for _, v := range values {
		encoded, err := json.Marshal(v)
		require.NoError(t, err)

		got, err := kagi.DecodeStream("final:" + string(encoded))

		require.NoError(t, err)
		assert.Equal(t, v, got)
	}
}

func TestProjectSummary(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		value any
		want  string
	}{
		{"markdown present", map[string]any{"output_data": map[string]any{"markdown": "Hello"}}, "Hello"},
		{"markdown absent", map[string]any{"output_data": map[string]any{}}, ""},
		{"output_data absent", map[string]any{"other": 1}, ""},
		{"output_data not an object", map[string]any{"output_data": "text"}, ""},
		{"markdown not a string", map[string]any{"output_data": map[string]any{"markdown": json.Number("7")}}, ""},
		{"root not an object", []any{"x"}, ""},
		{"null", nil, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, kagi.SummaryResult{Output: tt.want}, kagi.ProjectSummary(tt.value))
		})
	}
}

func TestDecodeSummary(t *testing.T) {
	t.Parallel()

	t.Run("projects markdown from the final frame", func(t *testing.T) {
		t.Parallel()

		got, err := kagi.DecodeSummary("partial1\x00partial2\x00final:{\"output_data\":{\"markdown\":\"Hello\"}}")

		require.NoError(t, err)
		assert.Equal(t, &kagi.SummaryResult{Output: "Hello"}, got)
	})

	t.Run("missing markdown yields empty output", func(t *testing.T) {
		t.Parallel()

		got, err := kagi.DecodeSummary(`final:{"output_data":{}}`)

		require.NoError(t, err)
		assert.Equal(t, "", got.Output)
	})

	t.Run("propagates decode errors", func(t *testing.T) {
		t.Parallel()

		_, err := kagi.DecodeSummary("\x00")

		requireStreamError(t, err, kagi.StreamNoData)
	})
}

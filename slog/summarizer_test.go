package slog_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/fwojciec/kagi"
	"github.com/fwojciec/kagi/mock"
	kagislog "github.com/fwojciec/kagi/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingSummarizer_Summarize(t *testing.T) {
	t.Parallel()

	t.Run("logs options and sizes without the input", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.Summarizer{
			SummarizeFn: func(ctx context.Context, input string, opts kagi.SummaryOptions) (*kagi.SummaryResult, error) {
				return &kagi.SummaryResult{Output: "Hello"}, nil
			},
		}
		opts := kagi.SummaryOptions{Type: kagi.SummaryTypeTakeaway, Language: "EN", Mode: kagi.ModeText}

		result, err := kagislog.NewLoggingSummarizer(inner, logger).Summarize(context.Background(), "secret text", opts)

		require.NoError(t, err)
		assert.Equal(t, "Hello", result.Output)
		output := buf.String()
		assert.Contains(t, output, "msg=summarize")
		assert.Contains(t, output, "mode=text")
		assert.Contains(t, output, "type=takeaway")
		assert.Contains(t, output, "input_bytes=11")
		assert.Contains(t, output, "output_bytes=5")
		assert.NotContains(t, output, "secret text")
	})

	t.Run("logs stream errors", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.Summarizer{
			SummarizeFn: func(ctx context.Context, input string, opts kagi.SummaryOptions) (*kagi.SummaryResult, error) {
				return nil, &kagi.StreamError{Kind: kagi.StreamNoData}
			},
		}

		_, err := kagislog.NewLoggingSummarizer(inner, logger).Summarize(context.Background(), "x", kagi.SummaryOptions{})

		require.Error(t, err)
		assert.Contains(t, buf.String(), `err="No summary data received"`)
	})
}

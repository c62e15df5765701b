package kagi

import (
	"encoding/json"
	"errors"
	"io"
	"strings"
)

// StreamSentinel separates frames in a summarizer stream.
const StreamSentinel = "\x00"

// FinalFramePrefix marks the frame carrying the complete answer.
const FinalFramePrefix = "final:"

// StreamErrorKind classifies a stream decoding failure.
type StreamErrorKind int

// StreamErrorKind values.
const (
	StreamNoData StreamErrorKind = iota + 1
	StreamEmptyFinalFrame
	StreamMalformedJSON
)

// String returns the kind name.
func (k StreamErrorKind) String() string {
	switch k {
	case StreamNoData:
		return "NoData"
	case StreamEmptyFinalFrame:
		return "EmptyFinalFrame"
	case StreamMalformedJSON:
		return "MalformedJSON"
	default:
		return "Unknown"
	}
}

// StreamError is returned when a summarizer stream cannot be decoded.
type StreamError struct {
	Kind StreamErrorKind
	Err  error // underlying JSON error, set for StreamMalformedJSON
}

// Error returns a message suitable for showing to the user.
func (e *StreamError) Error() string {
	switch e.Kind {
	case StreamNoData:
		return "No summary data received"
	case StreamEmptyFinalFrame:
		return "Empty summary received"
	case StreamMalformedJSON:
		return "Failed to parse summary JSON response"
	default:
		return "Failed to parse summary response"
	}
}

func (e *StreamError) Unwrap() error { return e.Err }

// DecodeStream extracts the final frame of a NUL-delimited summarizer stream
// and parses it as JSON. Earlier frames are partial answers and are ignored.
// Numbers decode as json.Number so the value survives re-encoding unchanged.
func DecodeStream(payload string) (any, error) {
	var last string
	for frame := range strings.SplitSeq(payload, StreamSentinel) {
		if strings.TrimSpace(frame) != "" {
			last = frame
		}
	}
	if last == "" {
		return nil, &StreamError{Kind: StreamNoData}
	}

	last = strings.TrimSpace(last)
	last = strings.TrimSpace(strings.TrimPrefix(last, FinalFramePrefix))
	if last == "" {
		return nil, &StreamError{Kind: StreamEmptyFinalFrame}
	}

	dec := json.NewDecoder(strings.NewReader(last))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, &StreamError{Kind: StreamMalformedJSON, Err: err}
	}
	// Reject trailing data after the first value.
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		if err == nil {
			err = errors.New("unexpected data after JSON value")
		}
		return nil, &StreamError{Kind: StreamMalformedJSON, Err: err}
	}
	return v, nil
}

// ProjectSummary reads output_data.markdown from a decoded stream value.
// Any missing or non-string segment yields an empty Output.
func ProjectSummary(v any) SummaryResult {
	root, ok := v.(map[string]any)
	if !ok {
		return SummaryResult{}
	}
	data, ok := root["output_data"].(map[string]any)
	if !ok {
		return SummaryResult{}
	}
	markdown, _ := data["markdown"].(string)
	return SummaryResult{Output: markdown}
}

// DecodeSummary decodes a summarizer stream and projects its markdown output.
func DecodeSummary(payload string) (*SummaryResult, error) {
	v, err := DecodeStream(payload)
	if err != nil {
		return nil, err
	}
	result := ProjectSummary(v)
	return &result, nil
}


package http

import (
	"context"
	"net/http"
	"net/url"
	"strings"

	"github.com/fwojciec/kagi"
)

// StreamContentType is the Accept type of the summarizer stream.
const StreamContentType = "application/vnd.kagi.stream"

// Summarize submits input to the Universal Summarizer and decodes the
// final frame of its stream. Options are normalized and validated before
// any request is made.
func (c *Client) Summarize(ctx context.Context, input string, opts kagi.SummaryOptions) (*kagi.SummaryResult, error) {
	if strings.TrimSpace(input) == "" {
		return nil, kagi.Errorf(kagi.EINVALID, "Input is required")
	}

	opts = opts.Normalize()
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	form := url.Values{}
	form.Set("stream", "1")
	form.Set("target_language", opts.Language)
	form.Set("summary_type", string(opts.Type))

	var newReq requestFunc
	switch opts.Mode {
	case kagi.ModeURL:
		form.Set("url", input)
		u := c.baseURL.JoinPath("mother", "summary_labs")
		u.RawQuery = form.Encode()
		newReq = func(ctx context.Context) (*http.Request, error) {
			req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
			if err != nil {
				return nil, err
			}
			c.setStreamHeaders(req)
			return req, nil
		}
	case kagi.ModeText:
		form.Set("text", input)
		u := c.baseURL.JoinPath("mother", "summary_labs/")
		body := form.Encode()
		newReq = func(ctx context.Context) (*http.Request, error) {
			req, err := http.NewRequestWithContext(ctx, http.MethodPost, u.String(), strings.NewReader(body))
			if err != nil {
				return nil, err
			}
			c.setStreamHeaders(req)
			req.Header.Set("Content-Type", "application/x-www-form-urlencoded;charset=UTF-8")
			return req, nil
		}
	}

	payload, err := c.do(ctx, newReq)
	if err != nil {
		return nil, err
	}

	return kagi.DecodeSummary(payload)
}

func (c *Client) setStreamHeaders(req *http.Request) {
	req.Header.Set("Accept", StreamContentType)
	req.Header.Set("Pragma", "no-cache")
	req.Header.Set("Referer", c.baseURL.JoinPath("summarizer").String())
}

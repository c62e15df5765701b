package main

import (
	"github.com/fwojciec/kagi"
	"github.com/fwojciec/kagi/fs"
)

// Validate checks the flags before any token is resolved or request made.
// Kong calls it after parsing.
func (c *SummarizeCmd) Validate() error {
	_, err := c.options()
	return err
}

// options returns the normalized, validated summary options.
func (c *SummarizeCmd) options() (kagi.SummaryOptions, error) {
	var inputs int
	for _, v := range []string{c.URL, c.Text, c.File} {
		if v != "" {
			inputs++
		}
	}
	switch {
	case inputs == 0:
		return kagi.SummaryOptions{}, kagi.Errorf(kagi.EINVALID, "Either --url, --text or --file must be provided")
	case inputs > 1:
		return kagi.SummaryOptions{}, kagi.Errorf(kagi.EINVALID, "Cannot specify more than one of --url, --text and --file (mutually exclusive)")
	}

	mode := kagi.ModeText
	if c.URL != "" {
		mode = kagi.ModeURL
	}

	opts := kagi.SummaryOptions{
		Type:     kagi.SummaryType(c.Type),
		Language: c.Language,
		Mode:     mode,
	}.Normalize()
	if err := opts.Validate(); err != nil {
		return kagi.SummaryOptions{}, err
	}
	return opts, nil
}

// input returns the content to submit for the selected mode.
func (c *SummarizeCmd) input(deps *Dependencies) (string, error) {
	switch {
	case c.URL != "":
		return c.URL, nil
	case c.Text != "":
		return c.Text, nil
	}

	doc, err := fs.ReadDocument(c.File)
	if err != nil {
		return "", err
	}
	if !doc.IsHTML() {
		return doc.Content, nil
	}
	return kagi.ArticleText(doc.Content, deps.Extractor, deps.Converter)
}

// Run executes the summarize command and prints {"data": {"output": ...}}.
func (c *SummarizeCmd) Run(deps *Dependencies) error {
	opts, err := c.options()
	if err != nil {
		return err
	}

	input, err := c.input(deps)
	if err != nil {
		return err
	}

	result, err := deps.Summarizer.Summarize(deps.Ctx, input, opts)
	if err != nil {
		return err
	}

	return writeJSON(deps.Stdout, kagi.SummaryResponse{Data: *result})
}

package kagi

import (
	"context"
	"slices"
	"strings"
)

// SummaryType selects the summarizer output style.
type SummaryType string

// SummaryType values.
const (
	SummaryTypeSummary  SummaryType = "summary"
	SummaryTypeTakeaway SummaryType = "takeaway"
)

// SummaryMode selects how the input reaches the summarizer.
type SummaryMode string

// SummaryMode values. ModeURL sends the input as a query parameter;
// ModeText sends it as a form-encoded body.
const (
	ModeURL  SummaryMode = "url"
	ModeText SummaryMode = "text"
)

// DefaultLanguage is the target language used when none is given.
const DefaultLanguage = "EN"

// SupportedLanguages lists the target language codes accepted by the summarizer.
var SupportedLanguages = []string{
	"BG", "CS", "DA", "DE", "EL", "EN", "ES", "ET", "FI", "FR",
	"HU", "ID", "IT", "JA", "KO", "LT", "LV", "NB", "NL", "PL",
	"PT", "RO", "RU", "SK", "SL", "SV", "TR", "UK", "ZH", "ZH-HANT",
}

// SummaryOptions configures a summarization request.
type SummaryOptions struct {
	Type     SummaryType `json:"type"`
	Language string      `json:"language"`
	Mode     SummaryMode `json:"mode"`
}

// Normalize fills the type and language defaults and canonicalizes case:
// type is lowercased and language is uppercased. Mode is kept as given.
func (o SummaryOptions) Normalize() SummaryOptions {
	o.Type = SummaryType(strings.ToLower(strings.TrimSpace(string(o.Type))))
	if o.Type == "" {
		o.Type = SummaryTypeSummary
	}
	o.Language = strings.ToUpper(strings.TrimSpace(o.Language))
	if o.Language == "" {
		o.Language = DefaultLanguage
	}
	return o
}

// Validate returns an error if the options contain unsupported values.
// Values are compared as given; call Normalize first to accept any case.
func (o SummaryOptions) Validate() error {
	switch o.Type {
	case SummaryTypeSummary, SummaryTypeTakeaway:
	default:
		return Errorf(EINVALID, "Type must be 'summary' or 'takeaway'")
	}
	if !slices.Contains(SupportedLanguages, o.Language) {
		return Errorf(EINVALID, "Unsupported language code '%s'. Supported languages: %s",
			o.Language, strings.Join(SupportedLanguages, ", "))
	}
	switch o.Mode {
	case ModeURL, ModeText:
	default:
		return Errorf(EINVALID, "Mode must be 'url' or 'text'")
	}
	return nil
}

// SummaryResult is the projected summarizer output. Output is empty, never
// missing, when the upstream payload carries no markdown.
type SummaryResult struct {
	Output string `json:"output"`
}

// SummaryResponse wraps a SummaryResult the way the CLI prints it.
type SummaryResponse struct {
	Data SummaryResult `json:"data"`
}

// Summarizer summarizes a URL or a block of text.
type Summarizer interface {
	// Summarize submits input according to opts.Mode and returns the final
	// summary. Returns EINVALID for bad options and a *StreamError when the
	// streamed payload cannot be decoded.
	Summarize(ctx context.Context, input string, opts SummaryOptions) (*SummaryResult, error)
}

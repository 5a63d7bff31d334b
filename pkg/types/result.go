// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// ConversionStatus is the terminal outcome of a conversion.
type ConversionStatus string

const (
	StatusSuccess    ConversionStatus = "success"
	StatusEmptyInput ConversionStatus = "empty_input"
	StatusError      ConversionStatus = "error"
)

// ConversionResult is produced once per request.
type ConversionResult struct {
	// OutputText is the banner plus converted body. Empty unless Status is
	// StatusSuccess.
	OutputText string `json:"output_text" yaml:"output_text"`

	Status ConversionStatus `json:"status" yaml:"status"`

	// Message is the user-facing status line, or the underlying error text
	// for StatusError.
	Message string `json:"message" yaml:"message"`
}

// OK reports whether the conversion produced output.
func (r ConversionResult) OK() bool {
	return r.Status == StatusSuccess
}

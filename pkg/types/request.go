// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// Settings holds the conversion options chosen by the caller. They are
// echoed in the output banner.
type Settings struct {
	PreserveComments bool `json:"preserve_comments" yaml:"preserve_comments" mapstructure:"preserve_comments"`
	ConvertOOP       bool `json:"convert_oop" yaml:"convert_oop" mapstructure:"convert_oop"`
	Optimize         bool `json:"optimize" yaml:"optimize" mapstructure:"optimize"`
	IncludeMetadata  bool `json:"include_metadata" yaml:"include_metadata" mapstructure:"include_metadata"`
}

// DefaultSettings returns the options enabled out of the box: everything
// except Optimize.
func DefaultSettings() Settings {
	return Settings{
		PreserveComments: true,
		ConvertOOP:       true,
		Optimize:         false,
		IncludeMetadata:  true,
	}
}

// ConversionRequest is a single conversion invocation. It is passed by
// value and never mutated after construction.
type ConversionRequest struct {
	SourceText string   `json:"-" yaml:"-"`
	SourceLang Language `json:"source_lang" yaml:"source_lang"`
	TargetLang Language `json:"target_lang" yaml:"target_lang"`
	Settings   `yaml:",inline"`
}

// NewRequest builds a request for the default pair C to C++ with default
// settings.
func NewRequest(source string) ConversionRequest {
	return ConversionRequest{
		SourceText: source,
		SourceLang: LangC,
		TargetLang: LangCPP,
		Settings:   DefaultSettings(),
	}
}

// Pair is an ordered (source, target) language tuple.
type Pair struct {
	From Language
	To   Language
}

// Pair returns the request's conversion pair.
func (r ConversionRequest) Pair() Pair {
	return Pair{From: r.SourceLang, To: r.TargetLang}
}

func (p Pair) String() string {
	return string(p.From) + " → " + string(p.To)
}

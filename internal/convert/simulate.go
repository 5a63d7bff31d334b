// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package convert implements the source conversion simulator, the progress
// runner wrapped around it, and the file, batch, and watch front-ends.
package convert

import (
	"errors"
	"fmt"
	"strings"

	"github.com/pdiddy/convert-hub/pkg/types"
)

// ErrEmptyInput is returned when the source text is empty or whitespace-only.
var ErrEmptyInput = errors.New("source code is empty")

// substitution is a literal, global, case-sensitive replacement.
type substitution struct {
	old, new string
}

// rules holds the substitutions applied per conversion pair, in order.
// Pairs without an entry pass the source through unchanged.
var rules = map[types.Pair][]substitution{
	{From: types.LangC, To: types.LangCPP}: {
		{"typedef struct", "struct"},
		{"void some_function(", "void SomeClass::some_function("},
	},
	{From: types.LangCSharp, To: types.LangCPP}: {
		{"public class", "class"},
		{"Console.WriteLine", "std::cout <<"},
	},
}

// HandledPairs returns the pairs that have substitution rules, in a stable
// order.
func HandledPairs() []types.Pair {
	pairs := make([]types.Pair, 0, len(rules))
	for _, from := range types.Languages {
		for _, to := range types.Languages {
			p := types.Pair{From: from, To: to}
			if _, ok := rules[p]; ok {
				pairs = append(pairs, p)
			}
		}
	}
	return pairs
}

// IsBlank reports whether source has no non-whitespace content.
func IsBlank(source string) bool {
	return strings.TrimSpace(source) == ""
}

// Banner returns the two comment lines and blank line that open every
// converted output.
func Banner(req types.ConversionRequest) string {
	var b strings.Builder
	fmt.Fprintf(&b, "// Converted from %s to %s\n", req.SourceLang, req.TargetLang)
	fmt.Fprintf(&b, "// Settings: Preserve comments=%t, Convert OOP=%t, Optimize=%t, Include metadata=%t\n",
		req.PreserveComments, req.ConvertOOP, req.Optimize, req.IncludeMetadata)
	b.WriteString("\n")
	return b.String()
}

// Body applies the pair's substitutions to the source text.
func Body(req types.ConversionRequest) string {
	body := req.SourceText
	for _, s := range rules[req.Pair()] {
		body = strings.ReplaceAll(body, s.old, s.new)
	}
	return body
}

// Simulate performs the conversion: banner followed by the substituted body.
// It returns ErrEmptyInput for blank source and has no side effects.
func Simulate(req types.ConversionRequest) (string, error) {
	if IsBlank(req.SourceText) {
		return "", ErrEmptyInput
	}
	return Banner(req) + Body(req), nil
}

// Convert runs Simulate and packages the outcome as a ConversionResult.
func Convert(req types.ConversionRequest) types.ConversionResult {
	out, err := Simulate(req)
	switch {
	case errors.Is(err, ErrEmptyInput):
		return emptyResult()
	case err != nil:
		return errorResult(err)
	}
	return successResult(req, out)
}

func emptyResult() types.ConversionResult {
	return types.ConversionResult{
		Status:  types.StatusEmptyInput,
		Message: "Error: " + capitalize(ErrEmptyInput.Error()),
	}
}

func errorResult(err error) types.ConversionResult {
	return types.ConversionResult{
		Status:  types.StatusError,
		Message: fmt.Sprintf("Conversion error: %v", err),
	}
}

func successResult(req types.ConversionRequest, out string) types.ConversionResult {
	return types.ConversionResult{
		OutputText: out,
		Status:     types.StatusSuccess,
		Message:    "Conversion complete: " + req.Pair().String(),
	}
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

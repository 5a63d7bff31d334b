// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

// ErrUnknownLanguage is returned when a language name cannot be parsed.
var ErrUnknownLanguage = errors.New("unknown language")

// Language identifies one of the supported source languages.
type Language string

const (
	LangC      Language = "C"
	LangCPP    Language = "C++"
	LangCSharp Language = "C#"
)

// Languages lists the supported languages in display order.
var Languages = []Language{LangC, LangCPP, LangCSharp}

// languageAliases maps lowercase names accepted on the command line and in
// config files to their Language.
var languageAliases = map[string]Language{
	"c":      LangC,
	"c++":    LangCPP,
	"cpp":    LangCPP,
	"cxx":    LangCPP,
	"c#":     LangCSharp,
	"cs":     LangCSharp,
	"csharp": LangCSharp,
}

// ParseLanguage resolves a display name or alias, case-insensitively.
func ParseLanguage(name string) (Language, error) {
	if l, ok := languageAliases[strings.ToLower(strings.TrimSpace(name))]; ok {
		return l, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownLanguage, name)
}

// LanguageNames returns every accepted name: display names first, then aliases.
func LanguageNames() []string {
	names := make([]string, 0, len(Languages)+len(languageAliases))
	for _, l := range Languages {
		names = append(names, string(l))
	}
	for alias := range languageAliases {
		names = append(names, alias)
	}
	return names
}

// Valid reports whether l is one of the supported languages.
func (l Language) Valid() bool {
	switch l {
	case LangC, LangCPP, LangCSharp:
		return true
	}
	return false
}

// Extension returns the file extension written for output in language l.
func (l Language) Extension() string {
	switch l {
	case LangC:
		return ".c"
	case LangCPP:
		return ".cpp"
	case LangCSharp:
		return ".cs"
	}
	return ".txt"
}

// DetectLanguage maps a file path's extension to a Language. Headers (.h)
// are treated as C++. The second return is false when nothing matches.
func DetectLanguage(path string) (Language, bool) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".c":
		return LangC, true
	case ".cpp", ".hpp", ".h":
		return LangCPP, true
	case ".cs":
		return LangCSharp, true
	}
	return "", false
}

// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLanguage(t *testing.T) {
	tests := []struct {
		in   string
		want Language
	}{
		{"C", LangC},
		{"c", LangC},
		{"C++", LangCPP},
		{"cpp", LangCPP},
		{" CXX ", LangCPP},
		{"C#", LangCSharp},
		{"cs", LangCSharp},
		{"CSharp", LangCSharp},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseLanguage(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseLanguage_Unknown(t *testing.T) {
	_, err := ParseLanguage("rust")
	assert.ErrorIs(t, err, ErrUnknownLanguage)
	assert.Contains(t, err.Error(), `"rust"`)
}

func TestDetectLanguage(t *testing.T) {
	tests := []struct {
		path   string
		want   Language
		wantOK bool
	}{
		{"main.c", LangC, true},
		{"src/Widget.CPP", LangCPP, true},
		{"point.hpp", LangCPP, true},
		{"point.h", LangCPP, true},
		{"Program.cs", LangCSharp, true},
		{"README.md", "", false},
		{"Makefile", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			got, ok := DetectLanguage(tt.path)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLanguageExtension(t *testing.T) {
	assert.Equal(t, ".c", LangC.Extension())
	assert.Equal(t, ".cpp", LangCPP.Extension())
	assert.Equal(t, ".cs", LangCSharp.Extension())
	assert.Equal(t, ".txt", Language("Go").Extension())
	assert.False(t, Language("Go").Valid())
}

func TestNewRequest_Defaults(t *testing.T) {
	req := NewRequest("int x;")
	assert.Equal(t, Pair{From: LangC, To: LangCPP}, req.Pair())
	assert.True(t, req.PreserveComments)
	assert.True(t, req.ConvertOOP)
	assert.False(t, req.Optimize)
	assert.True(t, req.IncludeMetadata)
	assert.Equal(t, "C → C++", req.Pair().String())
}

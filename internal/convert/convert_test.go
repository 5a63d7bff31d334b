// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package convert

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pdiddy/convert-hub/pkg/types"
)

// writeSource creates a source file under dir and returns its path.
func writeSource(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadSource(t *testing.T) {
	tests := []struct {
		file     string
		wantLang types.Language
		wantName string
	}{
		{"bank.c", types.LangC, "bank_converted"},
		{"account.hpp", types.LangCPP, "account_converted"},
		{"Program.cs", types.LangCSharp, "Program_converted"},
		{"notes.txt", "", "notes_converted"},
	}

	for _, tt := range tests {
		t.Run(tt.file, func(t *testing.T) {
			path := writeSource(t, t.TempDir(), tt.file, "int main() {}")
			src, err := LoadSource(path)
			if err != nil {
				t.Fatalf("LoadSource() error = %v", err)
			}
			if src.Lang != tt.wantLang {
				t.Errorf("Lang = %q, want %q", src.Lang, tt.wantLang)
			}
			if src.OutputName != tt.wantName {
				t.Errorf("OutputName = %q, want %q", src.OutputName, tt.wantName)
			}
			if src.Text != "int main() {}" {
				t.Errorf("Text = %q", src.Text)
			}
		})
	}
}

func TestLoadSource_Missing(t *testing.T) {
	if _, err := LoadSource(filepath.Join(t.TempDir(), "nope.c")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestOptionsRequest(t *testing.T) {
	tests := []struct {
		name     string
		opts     Options
		src      Source
		wantFrom types.Language
		wantTo   types.Language
	}{
		{"detected language", Options{To: types.LangCPP}, Source{Lang: types.LangCSharp}, types.LangCSharp, types.LangCPP},
		{"explicit wins over detection", Options{From: types.LangC, To: types.LangCSharp}, Source{Lang: types.LangCPP}, types.LangC, types.LangCSharp},
		{"undetected falls back to C", Options{}, Source{}, types.LangC, types.LangCPP},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := tt.opts.Request(tt.src)
			if req.SourceLang != tt.wantFrom || req.TargetLang != tt.wantTo {
				t.Errorf("pair = %s, want %s", req.Pair(), types.Pair{From: tt.wantFrom, To: tt.wantTo})
			}
		})
	}
}

func TestSaveResult(t *testing.T) {
	dir := t.TempDir()
	res := types.ConversionResult{OutputText: "// out\n", Status: types.StatusSuccess}

	path, err := SaveResult(res, filepath.Join(dir, "nested"), "bank_converted", types.LangCPP)
	if err != nil {
		t.Fatalf("SaveResult() error = %v", err)
	}
	if want := filepath.Join(dir, "nested", "bank_converted.cpp"); path != want {
		t.Errorf("path = %q, want %q", path, want)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "// out\n" {
		t.Errorf("content = %q", data)
	}
}

func TestSaveResult_Empty(t *testing.T) {
	_, err := SaveResult(types.ConversionResult{}, t.TempDir(), "x", types.LangC)
	if !errors.Is(err, ErrNothingToSave) {
		t.Errorf("error = %v, want ErrNothingToSave", err)
	}
}

func TestOutputPath_Defaults(t *testing.T) {
	if got, want := OutputPath("", "", types.LangCSharp), filepath.Join(".", "converted.cs"); got != want {
		t.Errorf("OutputPath() = %q, want %q", got, want)
	}
}

func TestConvertFile(t *testing.T) {
	tests := []struct {
		name       string
		source     string
		preCreate  bool
		force      bool
		wantStatus FileStatus
	}{
		{name: "successful conversion", source: "typedef struct U U;", wantStatus: FileConverted},
		{name: "skip existing output", source: "typedef struct U U;", preCreate: true, wantStatus: FileSkipped},
		{name: "force overwrites existing output", source: "typedef struct U U;", preCreate: true, force: true, wantStatus: FileConverted},
		{name: "blank source fails", source: "\n\n", wantStatus: FileFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			path := writeSource(t, dir, "user.c", tt.source)
			outPath := filepath.Join(dir, "out", "user_converted.cpp")
			if tt.preCreate {
				if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
					t.Fatal(err)
				}
				if err := os.WriteFile(outPath, []byte("existing"), 0o644); err != nil {
					t.Fatal(err)
				}
			}

			opts := Options{To: types.LangCPP, Settings: types.DefaultSettings(), OutputDir: filepath.Join(dir, "out"), Force: tt.force}
			o := ConvertFile(Runner{}, path, opts, nil)

			if o.Status != tt.wantStatus {
				t.Fatalf("status = %q, want %q (err %v)", o.Status, tt.wantStatus, o.Err)
			}
			if o.OutputPath != outPath && tt.wantStatus != FileFailed {
				t.Errorf("OutputPath = %q, want %q", o.OutputPath, outPath)
			}
			if tt.wantStatus == FileConverted {
				data, err := os.ReadFile(outPath)
				if err != nil {
					t.Fatal(err)
				}
				if !strings.Contains(string(data), "// Converted from C to C++") {
					t.Errorf("output missing banner: %q", data)
				}
				if !strings.Contains(string(data), "struct U U;") || strings.Contains(string(data), "typedef") {
					t.Errorf("output not substituted: %q", data)
				}
			}
			if tt.wantStatus == FileSkipped {
				data, _ := os.ReadFile(outPath)
				if string(data) != "existing" {
					t.Errorf("skipped file was modified: %q", data)
				}
			}
		})
	}
}

func TestConvertFile_OutputName(t *testing.T) {
	dir := t.TempDir()
	path := writeSource(t, dir, "Program.cs", "public class Program {}")

	o := ConvertFile(Runner{}, path, Options{To: types.LangCPP, OutputDir: dir, OutputName: "port"}, nil)
	if o.Status != FileConverted {
		t.Fatalf("status = %q (err %v)", o.Status, o.Err)
	}
	if want := filepath.Join(dir, "port.cpp"); o.OutputPath != want {
		t.Errorf("OutputPath = %q, want %q", o.OutputPath, want)
	}
	if o.Request.SourceLang != types.LangCSharp {
		t.Errorf("detected language = %q, want C#", o.Request.SourceLang)
	}
}

func TestConvertBatch(t *testing.T) {
	dir := t.TempDir()
	outDir := filepath.Join(dir, "out")
	a := writeSource(t, dir, "a.c", "typedef struct A A;")
	b := writeSource(t, dir, "b.cs", "public class B {}")
	c := writeSource(t, dir, "c.c", "   ")

	// Pre-create output for "b" to trigger skip.
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(outDir, "b_converted.cpp"), []byte("existing"), 0o644); err != nil {
		t.Fatal(err)
	}

	var log bytes.Buffer
	result := ConvertBatch(Runner{}, []string{a, b, c}, Options{To: types.LangCPP, OutputDir: outDir, OutputName: "ignored"}, &log)

	if result.Converted != 1 {
		t.Errorf("converted = %d, want 1", result.Converted)
	}
	if result.Skipped != 1 {
		t.Errorf("skipped = %d, want 1", result.Skipped)
	}
	if result.Failed != 1 {
		t.Errorf("failed = %d, want 1", result.Failed)
	}
	if !result.HasFailures() {
		t.Error("HasFailures should be true")
	}
	if result.Total() != 3 || len(result.Outcomes) != 3 {
		t.Errorf("total = %d, outcomes = %d, want 3", result.Total(), len(result.Outcomes))
	}
	if _, err := os.Stat(filepath.Join(outDir, "a_converted.cpp")); err != nil {
		t.Errorf("expected a_converted.cpp: %v", err)
	}

	output := log.String()
	for _, want := range []string{"converted:", "skipped:", "failed:", "Batch summary: 1 converted, 1 skipped, 1 failed (total: 3)"} {
		if !strings.Contains(output, want) {
			t.Errorf("batch output %q does not contain %q", output, want)
		}
	}
}

func TestCollectSources(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"b.cs", "a.c", "x.h", "notes.md", "a_converted.cpp", ".hidden.c"} {
		writeSource(t, dir, name, "x")
	}
	if err := os.Mkdir(filepath.Join(dir, "sub.c"), 0o755); err != nil {
		t.Fatal(err)
	}

	got, err := CollectSources(dir)
	if err != nil {
		t.Fatal(err)
	}
	want := []string{filepath.Join(dir, "a.c"), filepath.Join(dir, "b.cs"), filepath.Join(dir, "x.h")}
	if len(got) != len(want) {
		t.Fatalf("CollectSources() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("CollectSources()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

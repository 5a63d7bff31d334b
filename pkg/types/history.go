// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// HistoryEntry records one conversion run.
type HistoryEntry struct {
	ID          string           `json:"id" yaml:"id"`
	CreatedAt   time.Time        `json:"created_at" yaml:"created_at"`
	SourcePath  string           `json:"source_path,omitempty" yaml:"source_path,omitempty"`
	OutputPath  string           `json:"output_path,omitempty" yaml:"output_path,omitempty"`
	SourceLang  Language         `json:"source_lang" yaml:"source_lang"`
	TargetLang  Language         `json:"target_lang" yaml:"target_lang"`
	Settings    Settings         `json:"settings" yaml:"settings"`
	Status      ConversionStatus `json:"status" yaml:"status"`
	Message     string           `json:"message" yaml:"message"`
	InputBytes  int              `json:"input_bytes" yaml:"input_bytes"`
	OutputBytes int              `json:"output_bytes" yaml:"output_bytes"`
}

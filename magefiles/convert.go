//go:build mage

package main

import (
	"fmt"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

// Samples converts the files in examples/ into out/ with the built binary.
func Samples() error {
	mg.Deps(Init, Build)
	fmt.Println("[samples] Converting examples/ into out/.")
	return sh.RunV(binPath, "batch", "--dir", "examples", "--output-dir", "out", "--force")
}

// SamplesCSharp converts the C# sample to C++ on stdout.
func SamplesCSharp() error {
	mg.Deps(Build)
	return sh.RunV(binPath, "convert", "examples/account.cs", "--stdout", "--quiet")
}

// irocheck - WCAG colour contrast checker
//
// irocheck scores a background/text colour pair against the WCAG 2.x
// contrast levels and suggests lightness adjustments that make it pass.
//
// Copyright (c) 2025 John Mylchreest
// Licensed under the MIT License
package main

import (
	"os"

	"github.com/jmylchreest/irocheck/internal/cli"
)

func main() {
	if err := cli.NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

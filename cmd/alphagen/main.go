// Command alphagen generates the Go source of a packed-alphabet codec
// from a declarative alphabet definition.  It is meant to run through
// go:generate, once per alphabet, before compilation.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/chronos-tachyon/bitseq/alphagen"
)

func main() {
	var (
		declFile = flag.String("decl", "", "Path to the alphabet declaration file (JSON)")
		outFile  = flag.String("out", "", "Path of the generated Go source file")
		pkgName  = flag.String("pkg", "", "Package name for the generated file (default from the declaration, then bitseq)")
		verbose  = flag.Bool("v", false, "Log generation diagnostics to stderr")
	)
	flag.Parse()

	if *declFile == "" || *outFile == "" {
		fmt.Fprintln(os.Stderr, "Usage: alphagen -decl <alphabet.json> -out <file.go> [-pkg name] [-v]")
		os.Exit(1)
	}

	var logger *zap.Logger
	if *verbose {
		l, err := zap.NewDevelopment()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		logger = l
		alphagen.SetLogger(l)
	}

	err := run(*declFile, *outFile, *pkgName)
	if logger != nil {
		_ = logger.Sync()
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(declFile, outFile, pkgName string) error {
	data, err := os.ReadFile(declFile)
	if err != nil {
		return fmt.Errorf("read declaration: %w", err)
	}

	var decl alphagen.Declaration
	if err := json.Unmarshal(data, &decl); err != nil {
		return fmt.Errorf("parse declaration: %w", err)
	}
	if pkgName != "" {
		decl.Package = pkgName
	}

	desc, err := alphagen.Build(decl)
	if err != nil {
		return err
	}
	src, err := alphagen.Generate(desc)
	if err != nil {
		return err
	}
	return os.WriteFile(outFile, src, 0o644)
}

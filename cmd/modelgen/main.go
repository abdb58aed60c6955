// Command modelgen renders the enum and record files of the models package
// from models/schema.yaml.
//
// Usage:
//
//	modelgen -schema schema.yaml -out .
//	modelgen -schema schema.yaml -out . -check
//
// With -check nothing is written; the command fails when any generated file
// on disk differs from what the schema renders.
package main

import (
	"bytes"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"
)

func main() {
	schemaPath := flag.String("schema", "schema.yaml", "path to the schema file")
	outDir := flag.String("out", ".", "directory to write generated files to")
	check := flag.Bool("check", false, "report stale files instead of writing them")
	flag.Parse()

	log.SetFlags(0)
	log.SetPrefix("modelgen: ")

	if err := run(*schemaPath, *outDir, *check); err != nil {
		log.Fatal(err)
	}
}

func run(schemaPath, outDir string, check bool) error {
	schema, err := LoadSchema(schemaPath)
	if err != nil {
		return err
	}

	files, err := Render(schema)
	if err != nil {
		return err
	}

	names := make([]string, 0, len(files))
	for name := range files {
		names = append(names, name)
	}
	sort.Strings(names)

	var stale []string
	for _, name := range names {
		path := filepath.Join(outDir, name)
		if check {
			current, err := os.ReadFile(path)
			if err != nil || !bytes.Equal(current, files[name]) {
				stale = append(stale, path)
			}
			continue
		}
		if err := os.WriteFile(path, files[name], 0644); err != nil {
			return fmt.Errorf("failed to write %s: %w", path, err)
		}
		log.Printf("wrote %s", path)
	}

	if len(stale) > 0 {
		return fmt.Errorf("generated files are out of date, run go generate: %v", stale)
	}
	return nil
}

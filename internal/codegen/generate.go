package codegen

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"go/format"
	"os"
	"path/filepath"
	"sort"
	"text/template"
)

// Options configures a Generate run.
type Options struct {
	// XMLPath is the path to a canboat-style PGNs XML catalog.
	XMLPath string
	// Pgns is the set of PGN numbers to generate structs for. Every other
	// PGN in the catalog is ignored.
	Pgns []uint32
	// OutDir is the directory generated .go files are written into.
	OutDir string
	// Package is the package name written at the top of every generated
	// file.
	Package string
}

// Generate reads the XML catalog at opts.XMLPath and writes two root
// modules into opts.OutDir: pgns.go, a Pgns enum naming every PGN number in
// the whole catalog, and the selected-subset side - a struct + bit
// accessor file for each PGN in opts.Pgns, plus a registry.go tying them
// into a Pgn sum type and an n2k.PgnRegistry[Pgn] implementation.
func Generate(opts Options) error {
	raw, err := os.ReadFile(opts.XMLPath)
	if err != nil {
		return fmt.Errorf("codegen: reading xml catalog: %w", err)
	}

	var catalog PgnsFile
	if err := xml.Unmarshal(raw, &catalog); err != nil {
		return fmt.Errorf("codegen: parsing xml catalog: %w", err)
	}

	if err := os.MkdirAll(opts.OutDir, 0o755); err != nil {
		return fmt.Errorf("codegen: creating output dir: %w", err)
	}

	selected := make([]PgnInfo, 0, len(opts.Pgns))
	for _, pgnNumber := range opts.Pgns {
		var matches []PgnInfo
		for _, info := range catalog.PGNs.PgnInfos {
			if info.Pgn == pgnNumber {
				matches = append(matches, info)
			}
		}
		if len(matches) == 0 {
			return fmt.Errorf("%w: %d", ErrPgnNotFound, pgnNumber)
		}
		if len(matches) > 1 {
			return fmt.Errorf("%w: %d", ErrMultiplePgnDefinitions, pgnNumber)
		}
		selected = append(selected, matches[0])
	}
	sort.Slice(selected, func(i, j int) bool { return selected[i].Pgn < selected[j].Pgn })

	if err := writeFormatted(filepath.Join(opts.OutDir, "pgns.go"), catalogTemplate, struct {
		Package string
		Entries []catalogEntry
	}{Package: opts.Package, Entries: buildCatalogModel(catalog)}); err != nil {
		return fmt.Errorf("codegen: generating pgns.go: %w", err)
	}

	messages := make([]messageModel, 0, len(selected))
	for _, info := range selected {
		model, err := buildMessageModel(info)
		if err != nil {
			return err
		}
		messages = append(messages, model)
		if err := writeFormatted(filepath.Join(opts.OutDir, model.FileName), messageTemplate, struct {
			Package string
			Message messageModel
		}{Package: opts.Package, Message: model}); err != nil {
			return fmt.Errorf("codegen: generating %s: %w", model.FileName, err)
		}
	}

	if err := writeFormatted(filepath.Join(opts.OutDir, "registry.go"), registryTemplate, struct {
		Package  string
		Messages []messageModel
	}{Package: opts.Package, Messages: messages}); err != nil {
		return fmt.Errorf("codegen: generating registry.go: %w", err)
	}

	if err := writeFormatted(filepath.Join(opts.OutDir, "errors.go"), errorsTemplate, struct {
		Package string
	}{Package: opts.Package}); err != nil {
		return fmt.Errorf("codegen: generating errors.go: %w", err)
	}

	return nil
}

func writeFormatted(path string, tmpl *template.Template, data any) error {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return fmt.Errorf("executing template: %w", err)
	}

	formatted, err := format.Source(buf.Bytes())
	if err != nil {
		// Write the unformatted source too, so a failure is debuggable
		// instead of silently vanishing.
		_ = os.WriteFile(path, buf.Bytes(), 0o644)
		return fmt.Errorf("gofmt: %w", err)
	}
	return os.WriteFile(path, formatted, 0o644)
}

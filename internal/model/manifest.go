// SPDX-License-Identifier: MIT
//
// This file defines the Manifest structure, the root container for every
// shape declaration loaded from a user's .hcl files.
//
// Why have a Manifest?
//
// A user may spread their shape declarations across many files and
// directories. The Manifest and its loading functions discover all the
// disparate 'shape' blocks and consolidate them into a single, ordered view,
// which lets the application detect cross-file name collisions up front and
// report results in a stable declaration order.
package model

import (
	"context"
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"

	"github.com/daniel5151/analog-literals/internal/ctxlog"
	"github.com/daniel5151/analog-literals/internal/fsutil"
	"github.com/daniel5151/analog-literals/internal/schema"
)

// Shape is one captured literal: its name, the raw text body of the drawing,
// and the source range of the art attribute it was captured from. The range
// is what ties a validation failure back to the user's file.
type Shape struct {
	Name     string
	Art      string
	ArtRange hcl.Range
}

// Manifest aggregates every shape found across the loaded manifest files, in
// declaration order.
type Manifest struct {
	Shapes []*Shape
}

// Loader parses manifest files into a Manifest. It retains the parsed
// sources so diagnostics can later be rendered with the offending lines.
type Loader struct {
	parser *hclparse.Parser
}

// NewLoader returns a Loader with an empty source cache.
func NewLoader() *Loader {
	return &Loader{parser: hclparse.NewParser()}
}

// Files exposes the parsed source files, keyed by path, for diagnostic
// rendering.
func (l *Loader) Files() map[string]*hcl.File {
	return l.parser.Files()
}

// Load reads a single manifest file, or recursively every .hcl file beneath
// a directory, into a Manifest. Shape names must be unique across the whole
// loaded set.
func (l *Loader) Load(ctx context.Context, path string) (*Manifest, error) {
	logger := ctxlog.FromContext(ctx)

	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("failed to stat manifest path: %w", err)
	}

	files := []string{path}
	if info.IsDir() {
		files, err = fsutil.FindFilesByExtension(path, ".hcl")
		if err != nil {
			return nil, fmt.Errorf("failed to discover manifest files: %w", err)
		}
	}
	logger.Debug("Manifest files discovered.", "count", len(files))

	manifest := &Manifest{}
	seen := map[string]hcl.Range{}
	for _, file := range files {
		shapes, err := l.shapesFromHCL(file)
		if err != nil {
			return nil, err
		}
		for _, s := range shapes {
			if prev, dup := seen[s.Name]; dup {
				diags := hcl.Diagnostics{&hcl.Diagnostic{
					Severity: hcl.DiagError,
					Summary:  "Duplicate \"shape\" block",
					Detail:   fmt.Sprintf("A shape named %q was already declared at %s.", s.Name, prev),
					Subject:  s.ArtRange.Ptr(),
				}}
				return nil, fmt.Errorf("invalid manifest %s: %w", file, diags)
			}
			seen[s.Name] = s.ArtRange
			manifest.Shapes = append(manifest.Shapes, s)
		}
	}
	logger.Debug("Manifests loaded.", "shape_count", len(manifest.Shapes))

	return manifest, nil
}

// shapesFromHCL parses a single manifest file and returns the shapes
// declared within it.
func (l *Loader) shapesFromHCL(filePath string) ([]*Shape, error) {
	hclFile, diags := l.parser.ParseHCLFile(filePath)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file %s: %w", filePath, diags)
	}

	var parsed schema.ShapeFile
	diags = gohcl.DecodeBody(hclFile.Body, nil, &parsed)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL file %s: %w", filePath, diags)
	}

	shapes := make([]*Shape, 0, len(parsed.Shapes))
	for _, raw := range parsed.Shapes {
		s, sDiags := newShapeFromHCL(raw)
		if sDiags.HasErrors() {
			return nil, fmt.Errorf("invalid shape block in file %s: %w", filePath, sDiags)
		}
		shapes = append(shapes, s)
	}
	return shapes, nil
}

// newShapeFromHCL evaluates the art expression. Only literal strings are
// accepted: the drawing's text must be fully known before the engine runs.
func newShapeFromHCL(raw *schema.Shape) (*Shape, hcl.Diagnostics) {
	val, diags := raw.Art.Value(nil)
	if diags.HasErrors() {
		return nil, diags
	}
	if val.Type() != cty.String || val.IsNull() {
		return nil, hcl.Diagnostics{&hcl.Diagnostic{
			Severity: hcl.DiagError,
			Summary:  "Invalid art attribute",
			Detail:   "The 'art' attribute must be a literal string (usually a heredoc) containing the ASCII drawing.",
			Subject:  raw.Art.Range().Ptr(),
		}}
	}
	return &Shape{
		Name:     raw.Name,
		Art:      val.AsString(),
		ArtRange: raw.Art.Range(),
	}, nil
}

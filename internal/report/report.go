// Package report turns the engine's validation errors into user-facing,
// position-annotated diagnostics tied to the manifest file the literal was
// declared in. Rendering uses HCL's diagnostic writer so the offending
// source is shown alongside the message.
package report

import (
	"fmt"
	"io"

	"github.com/hashicorp/hcl/v2"

	"github.com/daniel5151/analog-literals/internal/literal"
	"github.com/daniel5151/analog-literals/internal/model"
)

// summaries maps every error category to its diagnostic headline.
var summaries = map[literal.ErrorKind]string{
	literal.Unclassifiable:   "Unclassifiable analog literal",
	literal.MalformedLine:    "Malformed line literal",
	literal.MismatchedWidth:  "Mismatched literal width",
	literal.MismatchedHeight: "Mismatched literal height",
	literal.MismatchedDepth:  "Mismatched literal depth",
}

// Diagnostic converts a validation error into an hcl.Diagnostic anchored at
// the shape's art attribute. The error's position inside the literal body is
// carried in the detail text: heredoc indentation stripping means the body's
// columns cannot be mapped back onto file columns exactly, so the attribute
// range is the honest subject.
func Diagnostic(s *model.Shape, perr *literal.Error) *hcl.Diagnostic {
	return &hcl.Diagnostic{
		Severity: hcl.DiagError,
		Summary:  summaries[perr.Kind],
		Detail: fmt.Sprintf("Shape %q: %s (line %d, column %d of the literal body).",
			s.Name, perr.Detail, perr.Row+1, perr.Col+1),
		Subject: s.ArtRange.Ptr(),
	}
}

// NewWriter returns a diagnostic writer that renders diagnostics with the
// relevant source excerpt from the given file set.
func NewWriter(w io.Writer, files map[string]*hcl.File) hcl.DiagnosticWriter {
	return hcl.NewDiagnosticTextWriter(w, files, 78, false)
}

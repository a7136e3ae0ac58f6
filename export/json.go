package export

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/tsawler/docstruct/layout"
	"github.com/tsawler/docstruct/model"
)

// JSON writes a report to w as indented JSON.
func JSON(w io.Writer, r *layout.Report) error {
	if err := encodeIndented(w, r); err != nil {
		return fmt.Errorf("failed to encode report: %w", err)
	}
	return nil
}

// OutlineJSON writes an outline to w as an indented JSON array. An empty
// outline is written as [] rather than null.
func OutlineJSON(w io.Writer, structure []*model.OutlineNode) error {
	if structure == nil {
		structure = []*model.OutlineNode{}
	}
	if err := encodeIndented(w, structure); err != nil {
		return fmt.Errorf("failed to encode outline: %w", err)
	}
	return nil
}

func encodeIndented(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

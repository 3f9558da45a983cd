// Package export writes expenses and reports to files and reads JSON
// exports back in.
package export

import (
	"encoding/json"
	"fmt"
	"io"
	"slices"
	"time"

	"github.com/Veraticus/studmoney/internal/model"
)

// JSONFilename is the default name of a JSON export made at ref.
func JSONFilename(ref time.Time) string {
	return fmt.Sprintf("studmoney-expenses-%s.json", model.DateOf(ref))
}

// WriteJSON writes expenses as an indented JSON array, in the same record
// shape used for storage.
func WriteJSON(w io.Writer, expenses []model.Expense) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(model.ToRecords(expenses)); err != nil {
		return fmt.Errorf("failed to encode expenses: %w", err)
	}
	return nil
}

// ReadJSON reads a JSON export and returns its entries as inputs, oldest
// first. Feeding them to the tracker in order restores the export's
// newest-first ordering.
func ReadJSON(r io.Reader) ([]model.ExpenseInput, error) {
	var records []model.ExpenseRecord
	dec := json.NewDecoder(r)
	dec.UseNumber()
	if err := dec.Decode(&records); err != nil {
		return nil, fmt.Errorf("failed to decode export: %w", err)
	}

	inputs := make([]model.ExpenseInput, 0, len(records))
	for i, rec := range records {
		in, err := rec.Input()
		if err != nil {
			return nil, fmt.Errorf("entry %d: %w", i+1, err)
		}
		inputs = append(inputs, in)
	}
	slices.Reverse(inputs)
	return inputs, nil
}

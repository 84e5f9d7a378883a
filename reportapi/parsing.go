package reportapi

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/cloudx-io/salesreport/core"
)

// NumericCoercionError reports a numeric input field whose value
// could not be coerced to a number.
type NumericCoercionError struct {
	Field string
	Value string
}

func (e *NumericCoercionError) Error() string {
	return fmt.Sprintf("field %s: cannot coerce %q to a number", e.Field, e.Value)
}

// coerceNumber converts a raw JSON value into a float64. Accepts JSON
// numbers and numeric strings (loosely-typed upstream sources emit
// both). Absent and null values coerce to 0.
func coerceNumber(field string, raw json.RawMessage) (float64, error) {
	if len(raw) == 0 || string(raw) == "null" {
		return 0, nil
	}

	var f float64
	if err := json.Unmarshal(raw, &f); err == nil {
		return f, nil
	}

	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
		if err != nil {
			return 0, &NumericCoercionError{Field: field, Value: s}
		}
		return f, nil
	}

	return 0, &NumericCoercionError{Field: field, Value: string(raw)}
}

// ParseSalesData decodes a sales-data JSON document into the core
// input model. Validation of the collections themselves happens in
// core.Analyze, not here.
func ParseSalesData(data []byte) (*core.Dataset, error) {
	var doc SalesData
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse sales data: %w", err)
	}
	return doc.ToDataset(), nil
}

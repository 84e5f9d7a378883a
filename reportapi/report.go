package reportapi

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/fxamacker/cbor/v2"
	"github.com/google/uuid"

	"github.com/cloudx-io/salesreport/core"
)

// Report is the envelope around one analysis run's results.
type Report struct {
	// ReportID is a v4 UUID identifying this run
	ReportID string `json:"report_id"`

	// GeneratedAt is the UTC generation timestamp
	GeneratedAt time.Time `json:"generated_at"`

	// SellerCount is the number of result records
	SellerCount int `json:"seller_count"`

	// Results in ranked order (profit descending)
	Results []core.SellerResult `json:"results"`
}

// NewReport wraps ranked results in a report envelope with a fresh
// report ID and timestamp.
func NewReport(results []core.SellerResult) *Report {
	return &Report{
		ReportID:    uuid.NewString(),
		GeneratedAt: time.Now().UTC(),
		SellerCount: len(results),
		Results:     results,
	}
}

// EncodeJSON renders the report as indented JSON.
func (r *Report) EncodeJSON() ([]byte, error) {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode report JSON: %w", err)
	}
	return data, nil
}

// EncodeCBOR renders the report in the compact archival encoding.
func (r *Report) EncodeCBOR() ([]byte, error) {
	data, err := cbor.Marshal(r)
	if err != nil {
		return nil, fmt.Errorf("encode report CBOR: %w", err)
	}
	return data, nil
}

// DecodeCBORReport parses a CBOR-encoded report envelope.
func DecodeCBORReport(data []byte) (*Report, error) {
	var report Report
	if err := cbor.Unmarshal(data, &report); err != nil {
		return nil, fmt.Errorf("decode report CBOR: %w", err)
	}
	return &report, nil
}

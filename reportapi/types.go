// Package reportapi defines the wire formats of the sales report
// pipeline: the JSON input schema with lenient numeric coercion, and
// the report envelope with its JSON and CBOR encodings.
package reportapi

import (
	"encoding/json"
	"fmt"

	"github.com/cloudx-io/salesreport/core"
)

// ProductRecord is the wire form of a catalog entry.
type ProductRecord struct {
	SKU           string  `json:"sku"`
	PurchasePrice float64 `json:"purchase_price"`
}

// SellerRecord is the wire form of a roster entry.
type SellerRecord struct {
	ID        string `json:"id"`
	FirstName string `json:"first_name,omitempty"`
	LastName  string `json:"last_name,omitempty"`
}

// LineItemRecord is the wire form of one purchase line item.
type LineItemRecord struct {
	SKU       string  `json:"sku"`
	Quantity  float64 `json:"quantity"`
	SalePrice float64 `json:"sale_price"`
	Discount  float64 `json:"discount,omitempty"`
}

// PurchaseRecordEntry is the wire form of one transaction.
type PurchaseRecordEntry struct {
	SellerID      string           `json:"seller_id"`
	TotalAmount   float64          `json:"total_amount"`
	TotalDiscount float64          `json:"total_discount"`
	Items         []LineItemRecord `json:"items,omitempty"`
}

// SalesData is the top-level input document.
type SalesData struct {
	Products        []ProductRecord       `json:"products"`
	Sellers         []SellerRecord        `json:"sellers"`
	PurchaseRecords []PurchaseRecordEntry `json:"purchase_records"`
}

// UnmarshalJSON decodes a product, coercing purchase_price from a
// JSON number or a numeric string.
func (p *ProductRecord) UnmarshalJSON(b []byte) error {
	var raw struct {
		SKU           string          `json:"sku"`
		PurchasePrice json.RawMessage `json:"purchase_price"`
	}
	if err := json.Unmarshal(b, &raw); err != nil {
		return fmt.Errorf("decode product: %w", err)
	}

	price, err := coerceNumber("purchase_price", raw.PurchasePrice)
	if err != nil {
		return err
	}

	p.SKU = raw.SKU
	p.PurchasePrice = price
	return nil
}

// UnmarshalJSON decodes a line item, coercing its numeric fields.
// A missing discount coerces to 0.
func (l *LineItemRecord) UnmarshalJSON(b []byte) error {
	var raw struct {
		SKU       string          `json:"sku"`
		Quantity  json.RawMessage `json:"quantity"`
		SalePrice json.RawMessage `json:"sale_price"`
		Discount  json.RawMessage `json:"discount"`
	}
	if err := json.Unmarshal(b, &raw); err != nil {
		return fmt.Errorf("decode line item: %w", err)
	}

	quantity, err := coerceNumber("quantity", raw.Quantity)
	if err != nil {
		return err
	}
	salePrice, err := coerceNumber("sale_price", raw.SalePrice)
	if err != nil {
		return err
	}
	discount, err := coerceNumber("discount", raw.Discount)
	if err != nil {
		return err
	}

	l.SKU = raw.SKU
	l.Quantity = quantity
	l.SalePrice = salePrice
	l.Discount = discount
	return nil
}

// UnmarshalJSON decodes a purchase record, coercing its totals.
func (r *PurchaseRecordEntry) UnmarshalJSON(b []byte) error {
	var raw struct {
		SellerID      string           `json:"seller_id"`
		TotalAmount   json.RawMessage  `json:"total_amount"`
		TotalDiscount json.RawMessage  `json:"total_discount"`
		Items         []LineItemRecord `json:"items"`
	}
	if err := json.Unmarshal(b, &raw); err != nil {
		return fmt.Errorf("decode purchase record: %w", err)
	}

	totalAmount, err := coerceNumber("total_amount", raw.TotalAmount)
	if err != nil {
		return err
	}
	totalDiscount, err := coerceNumber("total_discount", raw.TotalDiscount)
	if err != nil {
		return err
	}

	r.SellerID = raw.SellerID
	r.TotalAmount = totalAmount
	r.TotalDiscount = totalDiscount
	r.Items = raw.Items
	return nil
}

// ToDataset converts the wire document into the core input model.
func (d *SalesData) ToDataset() *core.Dataset {
	dataset := &core.Dataset{
		Products:        make([]core.Product, len(d.Products)),
		Sellers:         make([]core.Seller, len(d.Sellers)),
		PurchaseRecords: make([]core.PurchaseRecord, len(d.PurchaseRecords)),
	}

	for i, p := range d.Products {
		dataset.Products[i] = core.Product{
			SKU:           p.SKU,
			PurchasePrice: p.PurchasePrice,
		}
	}
	for i, s := range d.Sellers {
		dataset.Sellers[i] = core.Seller{
			ID:        s.ID,
			FirstName: s.FirstName,
			LastName:  s.LastName,
		}
	}
	for i, r := range d.PurchaseRecords {
		record := core.PurchaseRecord{
			SellerID:      r.SellerID,
			TotalAmount:   r.TotalAmount,
			TotalDiscount: r.TotalDiscount,
		}
		if r.Items != nil {
			record.Items = make([]core.LineItem, len(r.Items))
			for j, item := range r.Items {
				record.Items[j] = core.LineItem{
					SKU:       item.SKU,
					Quantity:  item.Quantity,
					SalePrice: item.SalePrice,
					Discount:  item.Discount,
				}
			}
		}
		dataset.PurchaseRecords[i] = record
	}

	return dataset
}

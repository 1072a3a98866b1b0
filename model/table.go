package model

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// TableID is caller supplied and accepted as either a JSON string or number.
// It is always stored and returned as a string.
type TableID string

func (id *TableID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*id = TableID(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("table id must be a string or number: %w", err)
	}
	if _, err := strconv.ParseFloat(n.String(), 64); err != nil {
		return fmt.Errorf("table id must be a string or number: %w", err)
	}
	*id = TableID(n.String())
	return nil
}

func (id TableID) String() string {
	return string(id)
}

// TableEntity is a stored restaurant table.
type TableEntity struct {
	ID       string
	Number   int
	Places   int
	IsVip    bool
	MinOrder *int
}

type CreateTableRequest struct {
	ID       TableID `json:"id" validate:"required"`
	Number   *int    `json:"number" validate:"required"`
	Places   *int    `json:"places" validate:"required,gt=0"`
	IsVip    *bool   `json:"isVip" validate:"required"`
	MinOrder *int    `json:"minOrder" validate:"omitempty,gte=0"`
}

type CreateTableResponse struct {
	ID TableID `json:"id"`
}

// Table is the public table shape. MinOrder is omitted from listings when it
// was never set.
type Table struct {
	ID       TableID `json:"id"`
	Number   int     `json:"number"`
	Places   int     `json:"places"`
	IsVip    bool    `json:"isVip"`
	MinOrder *int    `json:"minOrder,omitempty"`
}

func NewTable(e TableEntity) Table {
	return Table{
		ID:       TableID(e.ID),
		Number:   e.Number,
		Places:   e.Places,
		IsVip:    e.IsVip,
		MinOrder: e.MinOrder,
	}
}

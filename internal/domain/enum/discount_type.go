package enum

import (
	"database/sql/driver"
	"encoding/json"
)

// DiscountType represents how a cart-level discount is interpreted
type DiscountType int

const (
	// DiscountPercentage applies value as a percentage of the subtotal
	DiscountPercentage DiscountType = 0
	// DiscountFixed applies value as a flat amount
	DiscountFixed DiscountType = 1
)

func (d DiscountType) String() string {
	names := [...]string{"PERCENTAGE", "FIXED"}
	if int(d) < 0 || int(d) >= len(names) {
		return "PERCENTAGE"
	}
	return names[d]
}

func (d DiscountType) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

func (d *DiscountType) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		var i int
		if err := json.Unmarshal(data, &i); err != nil {
			return err
		}
		*d = DiscountType(i)
		return nil
	}
	switch str {
	case "PERCENTAGE":
		*d = DiscountPercentage
	case "FIXED":
		*d = DiscountFixed
	}
	return nil
}

func (d DiscountType) Value() (driver.Value, error) {
	return int64(d), nil
}

func (d *DiscountType) Scan(value interface{}) error {
	if value == nil {
		*d = DiscountPercentage
		return nil
	}
	switch v := value.(type) {
	case int64:
		*d = DiscountType(v)
	case int:
		*d = DiscountType(v)
	}
	return nil
}

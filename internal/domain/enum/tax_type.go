package enum

import (
	"database/sql/driver"
	"encoding/json"
)

// TaxType represents how tax is applied to a price
type TaxType int

const (
	// TaxTypeExclusive means tax is added on top of the price
	TaxTypeExclusive TaxType = 0
	// TaxTypeInclusive means the price already contains the tax
	TaxTypeInclusive TaxType = 1
)

func (t TaxType) String() string {
	names := [...]string{"EXCLUSIVE", "INCLUSIVE"}
	if int(t) < 0 || int(t) >= len(names) {
		return "EXCLUSIVE"
	}
	return names[t]
}

func (t TaxType) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}

func (t *TaxType) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		var i int
		if err := json.Unmarshal(data, &i); err != nil {
			return err
		}
		*t = TaxType(i)
		return nil
	}
	switch str {
	case "EXCLUSIVE":
		*t = TaxTypeExclusive
	case "INCLUSIVE":
		*t = TaxTypeInclusive
	}
	return nil
}

func (t TaxType) Value() (driver.Value, error) {
	return int64(t), nil
}

func (t *TaxType) Scan(value interface{}) error {
	if value == nil {
		*t = TaxTypeExclusive
		return nil
	}
	switch v := value.(type) {
	case int64:
		*t = TaxType(v)
	case int:
		*t = TaxType(v)
	}
	return nil
}

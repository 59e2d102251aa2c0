package enum

import (
	"database/sql/driver"
	"encoding/json"
)

// PaymentMethod represents how an order is paid
type PaymentMethod int

const (
	PaymentCash        PaymentMethod = 0
	PaymentCard        PaymentMethod = 1
	PaymentMobileMoney PaymentMethod = 2
)

func (p PaymentMethod) String() string {
	names := [...]string{"CASH", "CARD", "MOBILE_MONEY"}
	if int(p) < 0 || int(p) >= len(names) {
		return "CASH"
	}
	return names[p]
}

// ParsePaymentMethod converts a string into a PaymentMethod, defaulting to CASH.
func ParsePaymentMethod(s string) PaymentMethod {
	switch s {
	case "CARD":
		return PaymentCard
	case "MOBILE_MONEY":
		return PaymentMobileMoney
	default:
		return PaymentCash
	}
}

func (p PaymentMethod) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.String())
}

func (p *PaymentMethod) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		var i int
		if err := json.Unmarshal(data, &i); err != nil {
			return err
		}
		*p = PaymentMethod(i)
		return nil
	}
	*p = ParsePaymentMethod(str)
	return nil
}

func (p PaymentMethod) Value() (driver.Value, error) {
	return int64(p), nil
}

func (p *PaymentMethod) Scan(value interface{}) error {
	if value == nil {
		*p = PaymentCash
		return nil
	}
	switch v := value.(type) {
	case int64:
		*p = PaymentMethod(v)
	case int:
		*p = PaymentMethod(v)
	}
	return nil
}

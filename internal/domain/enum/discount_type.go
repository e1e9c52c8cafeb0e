package enum

import (
	"database/sql/driver"
	"encoding/json"
)

// DiscountType represents how a discount's value is interpreted
type DiscountType int

const (
	DiscountTypePercentage  DiscountType = 0
	DiscountTypeFixedAmount DiscountType = 1
	DiscountTypeBOGO        DiscountType = 2
)

func (t DiscountType) String() string {
	names := [...]string{"percentage", "fixed_amount", "bogo"}
	if int(t) < 0 || int(t) >= len(names) {
		return "percentage"
	}
	return names[t]
}

func (t DiscountType) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}

func (t *DiscountType) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		var i int
		if err := json.Unmarshal(data, &i); err != nil {
			return err
		}
		*t = DiscountType(i)
		return nil
	}
	switch str {
	case "percentage":
		*t = DiscountTypePercentage
	case "fixed_amount":
		*t = DiscountTypeFixedAmount
	case "bogo":
		*t = DiscountTypeBOGO
	}
	return nil
}

func (t DiscountType) Value() (driver.Value, error) {
	return int64(t), nil
}

func (t *DiscountType) Scan(value interface{}) error {
	if value == nil {
		*t = DiscountTypePercentage
		return nil
	}
	switch v := value.(type) {
	case int64:
		*t = DiscountType(v)
	case int:
		*t = DiscountType(v)
	}
	return nil
}

package enum

import (
	"database/sql/driver"
	"encoding/json"
)

// OrderType represents how an order is fulfilled
type OrderType int

const (
	OrderTypeDelivery OrderType = 1
	OrderTypeTakeAway OrderType = 2
	OrderTypeDineIn   OrderType = 3
)

func (t OrderType) String() string {
	switch t {
	case OrderTypeDelivery:
		return "Delivery"
	case OrderTypeTakeAway:
		return "TakeAway"
	case OrderTypeDineIn:
		return "DineIn"
	}
	return "DineIn"
}

// IsValid reports whether the value is one of the known order types
func (t OrderType) IsValid() bool {
	return t >= OrderTypeDelivery && t <= OrderTypeDineIn
}

func (t OrderType) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}

func (t *OrderType) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		// Try unmarshaling as int
		var i int
		if err := json.Unmarshal(data, &i); err != nil {
			return err
		}
		*t = OrderType(i)
		return nil
	}
	switch str {
	case "Delivery":
		*t = OrderTypeDelivery
	case "TakeAway":
		*t = OrderTypeTakeAway
	case "DineIn":
		*t = OrderTypeDineIn
	}
	return nil
}

func (t OrderType) Value() (driver.Value, error) {
	return int64(t), nil
}

func (t *OrderType) Scan(value interface{}) error {
	if value == nil {
		*t = OrderTypeDineIn
		return nil
	}
	switch v := value.(type) {
	case int64:
		*t = OrderType(v)
	case int:
		*t = OrderType(v)
	}
	return nil
}

package enum

import (
	"database/sql/driver"
	"encoding/json"
)

// DiscountScope represents what a discount applies to
type DiscountScope int

const (
	DiscountScopeTotal DiscountScope = 0
	DiscountScopeLine  DiscountScope = 1
)

func (s DiscountScope) String() string {
	names := [...]string{"Total", "Line"}
	if int(s) < 0 || int(s) >= len(names) {
		return "Total"
	}
	return names[s]
}

func (s DiscountScope) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

func (s *DiscountScope) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		var i int
		if err := json.Unmarshal(data, &i); err != nil {
			return err
		}
		*s = DiscountScope(i)
		return nil
	}
	switch str {
	case "Total":
		*s = DiscountScopeTotal
	case "Line":
		*s = DiscountScopeLine
	}
	return nil
}

func (s DiscountScope) Value() (driver.Value, error) {
	return int64(s), nil
}

func (s *DiscountScope) Scan(value interface{}) error {
	if value == nil {
		*s = DiscountScopeTotal
		return nil
	}
	switch v := value.(type) {
	case int64:
		*s = DiscountScope(v)
	case int:
		*s = DiscountScope(v)
	}
	return nil
}

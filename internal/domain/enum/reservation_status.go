package enum

import (
	"database/sql/driver"
	"encoding/json"
)

// ReservationStatus represents the status of a table reservation
type ReservationStatus int

const (
	ReservationStatusPending   ReservationStatus = 0
	ReservationStatusConfirmed ReservationStatus = 1
	ReservationStatusSeated    ReservationStatus = 2
	ReservationStatusComplete  ReservationStatus = 3
	ReservationStatusCancel    ReservationStatus = 4
	ReservationStatusNoShow    ReservationStatus = 5
)

func (s ReservationStatus) String() string {
	names := [...]string{"Pending", "Confirmed", "Seated", "Complete", "Cancel", "NoShow"}
	if int(s) < 0 || int(s) >= len(names) {
		return "Pending"
	}
	return names[s]
}

func (s ReservationStatus) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

func (s *ReservationStatus) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		var i int
		if err := json.Unmarshal(data, &i); err != nil {
			return err
		}
		*s = ReservationStatus(i)
		return nil
	}
	switch str {
	case "Pending":
		*s = ReservationStatusPending
	case "Confirmed":
		*s = ReservationStatusConfirmed
	case "Seated":
		*s = ReservationStatusSeated
	case "Complete":
		*s = ReservationStatusComplete
	case "Cancel":
		*s = ReservationStatusCancel
	case "NoShow":
		*s = ReservationStatusNoShow
	}
	return nil
}

func (s ReservationStatus) Value() (driver.Value, error) {
	return int64(s), nil
}

func (s *ReservationStatus) Scan(value interface{}) error {
	if value == nil {
		*s = ReservationStatusPending
		return nil
	}
	switch v := value.(type) {
	case int64:
		*s = ReservationStatus(v)
	case int:
		*s = ReservationStatus(v)
	}
	return nil
}

package validators

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"campusmarket/internal/models"
)

const DefaultSeats = 1

// SeatCount accepts either a JSON number or a numeric string. A missing,
// null or empty value means DefaultSeats; anything else must parse as an
// integer.
type SeatCount struct {
	value   int
	present bool
}

func Seats(n int) SeatCount {
	return SeatCount{value: n, present: true}
}

func (s *SeatCount) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*s = SeatCount{}
		return nil
	}

	raw := string(data)
	if len(data) > 0 && data[0] == '"' {
		var str string
		if err := json.Unmarshal(data, &str); err != nil {
			return err
		}
		raw = strings.TrimSpace(str)
		if raw == "" {
			*s = SeatCount{}
			return nil
		}
	}

	n, err := strconv.Atoi(raw)
	if err != nil {
		return fmt.Errorf("seatsNeeded must be a whole number, got %s", string(data))
	}
	*s = SeatCount{value: n, present: true}
	return nil
}

func (s SeatCount) MarshalJSON() ([]byte, error) {
	if !s.present {
		return []byte("null"), nil
	}
	return []byte(strconv.Itoa(s.value)), nil
}

// Value resolves the seat count, applying the default and the 1..RideCapacity range.
func (s SeatCount) Value() (int, error) {
	if !s.present {
		return DefaultSeats, nil
	}
	if s.value < 1 || s.value > models.RideCapacity {
		return 0, fmt.Errorf("seatsNeeded must be between 1 and %d", models.RideCapacity)
	}
	return s.value, nil
}

package v1

import (
	"encoding/json"
	"time"
)

const dateLayout = "2006-01-02"

// Date is a calendar date carried over the wire as a strict
// "YYYY-MM-DD" JSON string. Anything else, including alternate
// separators or out-of-range days, fails to unmarshal.
type Date struct {
	time.Time
}

func (d *Date) UnmarshalJSON(data []byte) error {
	var s string
	err := json.Unmarshal(data, &s)
	if err != nil {
		return &dateError{value: string(data)}
	}

	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return &dateError{value: s}
	}

	d.Time = t
	return nil
}

func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.Format(dateLayout))
}

type dateError struct {
	value string
}

func (e *dateError) Error() string {
	return "invalid date " + e.value + ": expected YYYY-MM-DD"
}

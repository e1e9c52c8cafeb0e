package enum

import (
	"database/sql/driver"
	"encoding/json"
)

// QuoteStatus represents the lifecycle tag of a quote. It is a flat enum:
// staff may set any status from any other, there are no guarded transitions.
type QuoteStatus int

const (
	QuoteStatusDraft    QuoteStatus = 0
	QuoteStatusSent     QuoteStatus = 1
	QuoteStatusAccepted QuoteStatus = 2
	QuoteStatusExpired  QuoteStatus = 3
)

func (s QuoteStatus) String() string {
	names := [...]string{"draft", "sent", "accepted", "expired"}
	if int(s) < 0 || int(s) >= len(names) {
		return "draft"
	}
	return names[s]
}

// Valid reports whether the value is one of the defined statuses.
func (s QuoteStatus) Valid() bool {
	return s >= QuoteStatusDraft && s <= QuoteStatusExpired
}

func (s QuoteStatus) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

func (s *QuoteStatus) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		var i int
		if err := json.Unmarshal(data, &i); err != nil {
			return err
		}
		*s = QuoteStatus(i)
		return nil
	}
	switch str {
	case "draft":
		*s = QuoteStatusDraft
	case "sent":
		*s = QuoteStatusSent
	case "accepted":
		*s = QuoteStatusAccepted
	case "expired":
		*s = QuoteStatusExpired
	}
	return nil
}

func (s QuoteStatus) Value() (driver.Value, error) {
	return int64(s), nil
}

func (s *QuoteStatus) Scan(value interface{}) error {
	if value == nil {
		*s = QuoteStatusDraft
		return nil
	}
	switch v := value.(type) {
	case int64:
		*s = QuoteStatus(v)
	case int:
		*s = QuoteStatus(v)
	}
	return nil
}

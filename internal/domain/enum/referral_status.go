package enum

import (
	"database/sql/driver"
	"encoding/json"
)

// ReferralStatus represents where a patient referral sits in follow-up
type ReferralStatus int

const (
	ReferralStatusPending   ReferralStatus = 0
	ReferralStatusContacted ReferralStatus = 1
	ReferralStatusConverted ReferralStatus = 2
	ReferralStatusDeclined  ReferralStatus = 3
)

func (s ReferralStatus) String() string {
	names := [...]string{"pending", "contacted", "converted", "declined"}
	if int(s) < 0 || int(s) >= len(names) {
		return "pending"
	}
	return names[s]
}

func (s ReferralStatus) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

func (s *ReferralStatus) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		var i int
		if err := json.Unmarshal(data, &i); err != nil {
			return err
		}
		*s = ReferralStatus(i)
		return nil
	}
	switch str {
	case "pending":
		*s = ReferralStatusPending
	case "contacted":
		*s = ReferralStatusContacted
	case "converted":
		*s = ReferralStatusConverted
	case "declined":
		*s = ReferralStatusDeclined
	}
	return nil
}

func (s ReferralStatus) Value() (driver.Value, error) {
	return int64(s), nil
}

func (s *ReferralStatus) Scan(value interface{}) error {
	if value == nil {
		*s = ReferralStatusPending
		return nil
	}
	switch v := value.(type) {
	case int64:
		*s = ReferralStatus(v)
	case int:
		*s = ReferralStatus(v)
	}
	return nil
}

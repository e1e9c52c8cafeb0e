package entity

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
)

// StringList is a string slice stored as a JSON column. It replaces the ad
// hoc stringified arrays the front-end used to keep inside single fields;
// encoding and decoding happen only here, at the storage boundary.
type StringList []string

// Value implements driver.Valuer
func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		return "[]", nil
	}
	data, err := json.Marshal(l)
	if err != nil {
		return nil, err
	}
	return string(data), nil
}

// Scan implements sql.Scanner
func (l *StringList) Scan(value interface{}) error {
	if value == nil {
		*l = nil
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, l)
	case string:
		return json.Unmarshal([]byte(v), l)
	}
	return errors.New("unsupported type for StringList")
}

// GormDataType tells GORM which column type to use
func (StringList) GormDataType() string {
	return "jsonb"
}

package model

import (
	"database/sql/driver"
	"encoding/json"
	"strings"

	"github.com/pkg/errors"
)

// StringList maps a jsonb array of labels.
// A legacy scalar string decodes as a one-element list.
type StringList []string

// Scan implements sql.Scanner.
func (s *StringList) Scan(value any) error {
	var raw []byte
	switch v := value.(type) {
	case nil:
		*s = StringList{}
		return nil
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return errors.Errorf("cannot scan %T into StringList", value)
	}

	var values []string
	if err := json.Unmarshal(raw, &values); err == nil {
		*s = values
		return nil
	}

	var single string
	if err := json.Unmarshal(raw, &single); err != nil {
		return errors.Wrap(err, "failed to decode StringList")
	}

	trimmed := strings.TrimSpace(single)
	if trimmed == "" {
		*s = StringList{}
		return nil
	}
	*s = StringList{trimmed}

	return nil
}

// Value implements driver.Valuer. Lists are always written as arrays.
func (s StringList) Value() (driver.Value, error) {
	if s == nil {
		return "[]", nil
	}

	b, err := json.Marshal([]string(s))
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode StringList")
	}

	return string(b), nil
}

// GormDataType tells GORM which column type to migrate to.
func (StringList) GormDataType() string {
	return "jsonb"
}

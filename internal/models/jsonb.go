package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

func (p DepositPayload) Value() (driver.Value, error) {
	b, err := json.Marshal(p)
	return string(b), err
}

func (p *DepositPayload) Scan(src any) error {
	return scanJSON(src, p)
}

func (d Destination) Value() (driver.Value, error) {
	b, err := json.Marshal(d)
	return string(b), err
}

func (d *Destination) Scan(src any) error {
	return scanJSON(src, d)
}

func scanJSON(src any, dst any) error {
	switch v := src.(type) {
	case nil:
		return nil
	case []byte:
		return json.Unmarshal(v, dst)
	case string:
		return json.Unmarshal([]byte(v), dst)
	default:
		return fmt.Errorf("unsupported jsonb source %T", src)
	}
}

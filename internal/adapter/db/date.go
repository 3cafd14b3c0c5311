package db

import (
	"fmt"
	"time"

	"taskmanager/internal/core/domain"
)

// dbDate scans DATE columns from either driver: MySQL with parseTime hands back
// a time.Time, SQLite may hand back the stored text.
type dbDate struct {
	time.Time
}

func (d *dbDate) Scan(value any) error {
	switch v := value.(type) {
	case time.Time:
		d.Time = domain.DateOnly(v)
		return nil
	case string:
		return d.parse(v)
	case []byte:
		return d.parse(string(v))
	default:
		return fmt.Errorf("cannot scan %T into date", value)
	}
}

func (d *dbDate) parse(value string) error {
	if len(value) > len(domain.DateLayout) {
		value = value[:len(domain.DateLayout)]
	}
	t, err := time.Parse(domain.DateLayout, value)
	if err != nil {
		return fmt.Errorf("parse stored date %q: %w", value, err)
	}
	d.Time = t
	return nil
}

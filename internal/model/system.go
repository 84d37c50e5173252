package model

import "time"

type StatusReport struct {
	Status       string    `json:"status"`
	Server       string    `json:"server"`
	Database     string    `json:"database"`
	ErrorMessage string    `json:"error_message,omitempty"`
	Timestamp    time.Time `json:"timestamp"`
}

// TableColumn meniru bentuk baris DESCRIBE yang dikonsumsi frontend lama,
// diisi dari information_schema.columns.
type TableColumn struct {
	Field   string  `db:"column_name"    json:"Field"`
	Type    string  `db:"data_type"      json:"Type"`
	Null    string  `db:"is_nullable"    json:"Null"`
	Default *string `db:"column_default" json:"Default"`
}

type SchemaReport struct {
	Table          string        `json:"table"`
	Schema         []TableColumn `json:"schema"`
	Status         string        `json:"status"`
	MissingColumns []string      `json:"missingColumns"`
}

package domain

// Row is one result row keyed by column name, encoded to JSON as-is.
type Row map[string]any

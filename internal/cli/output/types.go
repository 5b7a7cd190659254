package output

// VerdictOutput is the structured form of a judge verdict.
type VerdictOutput struct {
	Outcome string   `json:"outcome" yaml:"outcome"`
	Message string   `json:"message" yaml:"message"`
	Split   bool     `json:"split" yaml:"split"`
	Columns string   `json:"columns,omitempty" yaml:"columns,omitempty"`
	Pins    []string `json:"pins" yaml:"pins"`
}

// ColumnEntry maps one pin to its lane column.
type ColumnEntry struct {
	Pin    int `json:"pin" yaml:"pin"`
	Column int `json:"column" yaml:"column"`
}

// ColumnsOutput is the structured form of the pin layout.
type ColumnsOutput struct {
	Pins    []ColumnEntry `json:"pins" yaml:"pins"`
	Columns [][]int       `json:"columns" yaml:"columns"`
}

package model

// Record is one scan attempt recovered from a single log entry.
// Empty string fields mean the field could not be extracted; a partially
// filled record is still applied so every clean field counts.
type Record struct {
	FilePath    string // trimmed target path
	ProcessName string // derived via ProcessName()
	RuleName    string // trimmed triggered-rule name
	Category    string // target category, set whenever FilePath is
	Blocked     bool
	Hour        int // hour of day, valid only when HourOK
	HourOK      bool
}

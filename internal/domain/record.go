package domain

// Record is the structured result distilled from one transcript.
// A nil field means no rule matched for it.
type Record struct {
	Heading *string `csv:"heading,omitempty"  json:"heading,omitempty"`
	Name    *string `csv:"name,omitempty"     json:"name,omitempty"`
	Score   *string `csv:"score,omitempty"    json:"score,omitempty"`
	RollNo  *string `csv:"roll_no,omitempty"  json:"rollNo,omitempty"`
	Credits *string `csv:"credits,omitempty"  json:"credits,omitempty"`
}

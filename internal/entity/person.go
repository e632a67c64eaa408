package entity

// Person is a single entry collected by the bulk people tool. It deliberately
// shares no fields or code with ContactRecord.
type Person struct {
	Name    string `json:"name"`
	Title   string `json:"title"`
	Contact string `json:"contact"`
}

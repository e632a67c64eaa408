package people

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/octobees/contact-scout/internal/entity"
)

// WriteCSV emits collected people as CSV with a header row.
func WriteCSV(w io.Writer, people []entity.Person) error {
	writer := csv.NewWriter(w)
	if err := writer.Write([]string{"name", "title", "contact"}); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}
	for _, person := range people {
		if err := writer.Write([]string{person.Name, person.Title, person.Contact}); err != nil {
			return fmt.Errorf("write csv row: %w", err)
		}
	}
	writer.Flush()
	return writer.Error()
}

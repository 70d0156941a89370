package types

// ContactFields is the number of columns in a contact record.
const ContactFields = 3

// Contact represents one entry in the book. Fields are persisted as a CSV
// row in the order Name, Email, Phone. Duplicates are permitted; the book
// imposes no uniqueness constraint.
type Contact struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

// Row returns the contact as an ordered field sequence for the record store.
func (c Contact) Row() []string {
	return []string{c.Name, c.Email, c.Phone}
}

// ContactFromRow builds a Contact from an ordered field sequence. Rows with
// fewer than ContactFields columns yield zero values for the missing fields;
// extra columns are ignored.
func ContactFromRow(row []string) Contact {
	var c Contact
	if len(row) > 0 {
		c.Name = row[0]
	}
	if len(row) > 1 {
		c.Email = row[1]
	}
	if len(row) > 2 {
		c.Phone = row[2]
	}
	return c
}

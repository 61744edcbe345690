package booking

import "strings"

// Field identifies one customer form field
type Field int

const (
	FieldName Field = iota
	FieldAddress
	FieldPhone
	FieldEmail
)

// Fields lists the form fields in display order
func Fields() []Field {
	return []Field{FieldName, FieldAddress, FieldPhone, FieldEmail}
}

func (f Field) String() string {
	switch f {
	case FieldName:
		return "Name"
	case FieldAddress:
		return "Address"
	case FieldPhone:
		return "Phone"
	case FieldEmail:
		return "Email"
	}
	return "Unknown"
}

// CustomerInfo holds the contact details typed into the booking form
type CustomerInfo struct {
	Name    string
	Address string
	Phone   string
	Email   string
}

// Get returns the value of a single field
func (c CustomerInfo) Get(f Field) string {
	switch f {
	case FieldName:
		return c.Name
	case FieldAddress:
		return c.Address
	case FieldPhone:
		return c.Phone
	case FieldEmail:
		return c.Email
	}
	return ""
}

// With returns a copy of c with one field replaced
func (c CustomerInfo) With(f Field, value string) CustomerInfo {
	switch f {
	case FieldName:
		c.Name = value
	case FieldAddress:
		c.Address = value
	case FieldPhone:
		c.Phone = value
	case FieldEmail:
		c.Email = value
	}
	return c
}

// Missing lists the fields that are empty or whitespace only
func (c CustomerInfo) Missing() []Field {
	var out []Field
	for _, f := range Fields() {
		if strings.TrimSpace(c.Get(f)) == "" {
			out = append(out, f)
		}
	}
	return out
}

// Complete reports whether every field has a value
func (c CustomerInfo) Complete() bool {
	return len(c.Missing()) == 0
}

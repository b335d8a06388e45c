// Package validation provides validation helpers for fill hooks.
//
// It supports struct tag validation (using the validator library) for
// callers with a typed form shape, and programmatic validation with error
// collection for schema-less maps. ForStruct bridges tag validation into a
// fill.ValidateFunc.
//
// # Struct Tag Validation
//
//	type Profile struct {
//	    Name  string `json:"name" validate:"required,min=2"`
//	    Email string `json:"email" validate:"required,email"`
//	}
//	opts.Validate = validation.ForStruct[Profile]()
//
// # Programmatic Validation
//
//	v := validation.New()
//	v.Required("name", name)
//	err := v.Validate()
package validation

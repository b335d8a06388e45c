package binding

// ValueStore is the minimal state container for the Plain binding: a single
// value read and replaced wholesale.
type ValueStore interface {
	Value() map[string]any
	SetValue(values map[string]any)
}

// SetFieldOptions carries the side-effect flags a field-granular container
// applies on each per-field write.
type SetFieldOptions struct {
	Validate    bool
	MarkDirty   bool
	MarkTouched bool
}

// DefaultSetFieldOptions enables every side-effect flag.
func DefaultSetFieldOptions() SetFieldOptions {
	return SetFieldOptions{Validate: true, MarkDirty: true, MarkTouched: true}
}

// FieldStore is a field-granular form container: fields are written one at a
// time by dotted path, and the container owns a bulk-reset primitive.
type FieldStore interface {
	Values() map[string]any
	SetField(name string, value any, opts SetFieldOptions)
	Reset(values map[string]any)
}

// BagStore is a bag-style form container holding one values object with a
// bulk setter and a per-field setter, each optionally triggering validation.
type BagStore interface {
	Values() map[string]any
	SetValues(values map[string]any, validate bool)
	SetFieldValue(name string, value any, validate bool)
}

package binding

// Test fakes shared by the binding tests.

type fakeValueStore struct {
	v        map[string]any
	setCalls int
}

func (s *fakeValueStore) Value() map[string]any { return s.v }
func (s *fakeValueStore) SetValue(m map[string]any) {
	s.v = m
	s.setCalls++
}

type fieldWrite struct {
	name  string
	value any
	opts  SetFieldOptions
}

type fakeFieldStore struct {
	values map[string]any
	writes []fieldWrite
	resets []map[string]any
}

func (s *fakeFieldStore) Values() map[string]any { return s.values }
func (s *fakeFieldStore) SetField(name string, value any, opts SetFieldOptions) {
	s.writes = append(s.writes, fieldWrite{name, value, opts})
	s.values[name] = value
}
func (s *fakeFieldStore) Reset(values map[string]any) {
	s.resets = append(s.resets, values)
	s.values = values
}

type bagWrite struct {
	name     string
	value    any
	validate bool
}

type fakeBagStore struct {
	values      map[string]any
	bulkSets    []map[string]any
	bulkDidVal  []bool
	fieldWrites []bagWrite
}

func (s *fakeBagStore) Values() map[string]any { return s.values }
func (s *fakeBagStore) SetValues(values map[string]any, validate bool) {
	s.bulkSets = append(s.bulkSets, values)
	s.bulkDidVal = append(s.bulkDidVal, validate)
	s.values = values
}
func (s *fakeBagStore) SetFieldValue(name string, value any, validate bool) {
	s.fieldWrites = append(s.fieldWrites, bagWrite{name, value, validate})
	s.values[name] = value
}

package fill

// ApplyFieldMap renames the top-level keys of data according to fieldMap.
// Keys absent from the map pass through unchanged; values are copied by
// reference. When two source keys map to the same destination the
// later-iterated one wins — an accepted collision policy, not an error.
// A nil or empty map returns data as-is.
func ApplyFieldMap(data map[string]any, fieldMap FieldMap) map[string]any {
	if len(fieldMap) == 0 {
		return data
	}
	out := make(map[string]any, len(data))
	for key, value := range data {
		if dst, ok := fieldMap[key]; ok {
			out[dst] = value
			continue
		}
		out[key] = value
	}
	return out
}

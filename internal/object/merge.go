package object

// Merge deep-merges source into target and returns target.
//
// For every key of source, in source order: when both sides hold an
// *Object the merge recurses; otherwise the source value replaces the target
// value wholesale. Sequences are never merged element-wise, and a kind
// mismatch (object against scalar or sequence) silently takes the source
// value. Merged values are copied, so later edits to target never reach
// source.
//
// A nil target is treated as a fresh empty Object; a nil source is a no-op.
func Merge(target, source *Object) *Object {
	if target == nil {
		target = New()
	}
	if source == nil {
		return target
	}

	for _, key := range source.keys {
		sv := source.values[key]
		if sm, ok := sv.(*Object); ok && sm != nil {
			if tm, ok := target.values[key].(*Object); ok && tm != nil {
				Merge(tm, sm)
				continue
			}
		}
		target.Set(key, cloneValue(sv))
	}
	return target
}

// MergeStrings merges a flat string map into target, source winning on
// conflicts. It is the dependency-map form of Merge.
func MergeStrings(target, source map[string]string) map[string]string {
	if target == nil {
		target = make(map[string]string, len(source))
	}
	for k, v := range source {
		target[k] = v
	}
	return target
}

package stream

// Record is one source item as read from the table: an untyped mapping from attribute name
// to value (string, number, list, set or anything else the source produced).
// Records are read-only once scanned.
type Record struct {
	data map[string]interface{} // raw values; absent attributes are simply missing keys.
}

// NewRecord creates a new empty Record and returns it by value.
func NewRecord() Record {
	return Record{
		data: make(map[string]interface{}),
	}
}

// NewRecordFromMap wraps m without copying it.
func NewRecordFromMap(m map[string]interface{}) Record {
	if m == nil {
		return NewRecord()
	}
	return Record{data: m}
}

func NewNilRecord() Record {
	return Record{}
}

func (sr Record) RecordIsNil() bool {
	return sr.data == nil
}

// GetData returns the value for name and whether the attribute exists.
func (sr Record) GetData(name string) (interface{}, bool) {
	val, ok := sr.data[name]
	return val, ok
}

package debugui

import (
	"reflect"
	"sync"
)

// FieldInfo describes one exported field of a component type.
type FieldInfo struct {
	Name  string
	Type  reflect.Type
	Index int
}

// fieldCache remembers the exported fields of each component type so the
// inspector does not walk reflect.Type every frame.
type fieldCache struct {
	mu     sync.RWMutex
	fields map[reflect.Type][]FieldInfo
}

func newFieldCache() *fieldCache {
	return &fieldCache{fields: make(map[reflect.Type][]FieldInfo)}
}

func (fc *fieldCache) get(t reflect.Type) []FieldInfo {
	fc.mu.RLock()
	cached, ok := fc.fields[t]
	fc.mu.RUnlock()
	if ok {
		return cached
	}

	fc.mu.Lock()
	defer fc.mu.Unlock()

	var fields []FieldInfo
	if t.Kind() == reflect.Struct {
		for i := 0; i < t.NumField(); i++ {
			field := t.Field(i)
			if !field.IsExported() {
				continue
			}
			fields = append(fields, FieldInfo{Name: field.Name, Type: field.Type, Index: i})
		}
	}

	fc.fields[t] = fields
	return fields
}

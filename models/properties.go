package models

import "sort"

// AdditionalProperties is the extension bag embedded in every record. It keeps
// wire keys that do not map to a declared field so that payloads from a newer
// API round-trip without loss. Copying a record shares its bag; use the
// record's Clone for an independent copy.
type AdditionalProperties struct {
	extra map[string]interface{}
}

// AdditionalKeys returns the keys currently in the bag, sorted.
func (p AdditionalProperties) AdditionalKeys() []string {
	keys := make([]string, 0, len(p.extra))
	for k := range p.extra {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Get returns the value stored under key, or ErrKeyNotFound.
func (p AdditionalProperties) Get(key string) (interface{}, error) {
	v, ok := p.extra[key]
	if !ok {
		return nil, &KeyNotFoundError{Key: key}
	}
	return v, nil
}

// Has reports whether key is in the bag.
func (p AdditionalProperties) Has(key string) bool {
	_, ok := p.extra[key]
	return ok
}

// Set stores value under key.
func (p *AdditionalProperties) Set(key string, value interface{}) {
	if p.extra == nil {
		p.extra = make(map[string]interface{})
	}
	p.extra[key] = value
}

// Delete removes key from the bag, or returns ErrKeyNotFound.
func (p *AdditionalProperties) Delete(key string) error {
	if _, ok := p.extra[key]; !ok {
		return &KeyNotFoundError{Key: key}
	}
	delete(p.extra, key)
	return nil
}

// Properties returns a shallow copy of the bag. The result is never nil.
func (p AdditionalProperties) Properties() map[string]interface{} {
	out := make(map[string]interface{}, len(p.extra))
	for k, v := range p.extra {
		out[k] = v
	}
	return out
}

// clone deep-copies the bag. Nested JSON objects and arrays are copied too.
func (p AdditionalProperties) clone() AdditionalProperties {
	if p.extra == nil {
		return AdditionalProperties{}
	}
	out := make(map[string]interface{}, len(p.extra))
	for k, v := range p.extra {
		out[k] = cloneValue(v)
	}
	return AdditionalProperties{extra: out}
}

func cloneValue(v interface{}) interface{} {
	switch v := v.(type) {
	case map[string]interface{}:
		out := make(map[string]interface{}, len(v))
		for k, e := range v {
			out[k] = cloneValue(e)
		}
		return out
	case []interface{}:
		out := make([]interface{}, len(v))
		for i, e := range v {
			out[i] = cloneValue(e)
		}
		return out
	}
	return v
}

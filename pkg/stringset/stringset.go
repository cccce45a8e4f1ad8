package stringset

import "sort"

// StringSet is a basic set implementation for strings.
// It holds sets of option names and output format names.
type StringSet struct{ val map[string]struct{} }

// Set sets key in StringSet.
func (set StringSet) Set(v string) {
	set.val[v] = struct{}{}
}

// Extend sets multiple keys in StringSet.
func (set StringSet) Extend(s ...string) {
	for _, v := range s {
		set.val[v] = struct{}{}
	}
}

// Get returns true if the key exists in the set.
func (set StringSet) Get(v string) bool {
	_, exists := set.val[v]
	return exists
}

// Remove deletes a key from the set.
func (set StringSet) Remove(v string) {
	delete(set.val, v)
}

// ToSlice turns all keys into a string slice.
func (set StringSet) ToSlice() []string {
	slice := make([]string, 0, len(set.val))

	for v := range set.val {
		slice = append(slice, v)
	}

	return slice
}

// Sorted returns the keys in lexical order.
func (set StringSet) Sorted() []string {
	slice := set.ToSlice()
	sort.Strings(slice)
	return slice
}

func (set StringSet) Len() int {
	return len(set.val)
}

// Map returns a new set holding fn applied to every key.
// Keys mapped to the empty string are dropped.
func (set StringSet) Map(fn func(string) string) StringSet {
	out := Make()
	for v := range set.val {
		if m := fn(v); m != "" {
			out.Set(m)
		}
	}
	return out
}

// Make creates a new StringSet from a set of arguments
func Make(in ...string) StringSet {
	set := StringSet{make(map[string]struct{}, len(in))}

	for _, v := range in {
		set.Set(v)
	}

	return set
}

package dbg

import (
	"fmt"
	"reflect"
	"strings"

	petname "github.com/dustinkirkland/golang-petname"
)

// Turns pointers and other values into random readable names, which are far
// easier to tell apart than addresses in debug output and renders. Names are
// generated lazily in order of demand and never forgotten.

var (
	memo  map[interface{}]string
	taken map[string]struct{}
)

func init() {
	Reset()
	// Names depend on the order they're requested in, so make them
	// nondeterministic to remind the reader that the same name doesn't refer
	// to the same thing between runs.
	petname.NonDeterministicMode()
}

// Forget every name handed out so far.
func Reset() {
	memo = make(map[interface{}]string)
	taken = make(map[string]struct{})
}

func Name(obj interface{}) string {
	if isNil(obj) {
		return "Ø"
	}

	if r, ok := memo[obj]; ok {
		return r
	}
	var r string
	for {
		r = fmt.Sprintf("%s%s", strings.Title(petname.Adjective()), strings.Title(petname.Name()))
		if _, ok := taken[r]; !ok {
			break
		}
	}
	memo[obj] = r
	taken[r] = struct{}{}
	return r
}

func isNil(obj interface{}) bool {
	if obj == nil {
		return true
	}
	v := reflect.ValueOf(obj)
	switch v.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Interface, reflect.Func, reflect.Chan:
		return v.IsNil()
	}
	return false
}

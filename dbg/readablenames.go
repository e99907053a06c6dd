package dbg

import (
	"fmt"
	"reflect"
	"strings"
	"sync"

	petname "github.com/dustinkirkland/golang-petname"
)

// This converts arbitrary values into random readable names. It flagrantly
// leaks memory but generates the names lazily, so it's not a problem unless
// you're actually using it. This is helpful for telling apart the points and
// lines in a drawing or a long list of creases, which otherwise are just
// strings of coefficients.
//
// Values are looked up by equality, so two equal points share a name. Values
// which aren't comparable (slices, maps) can't be named.

var (
	mu    sync.Mutex
	memo  map[interface{}]string
	taken map[string]bool
)

func init() {
	Reset()
	// Since the ids are generated in order of demand, we make them
	// nondeterministic to remind the user that the same name doesn't refer to
	// the same thing between runs.
	petname.NonDeterministicMode()
}

// Reset forgets every name handed out so far.
func Reset() {
	mu.Lock()
	defer mu.Unlock()
	memo = make(map[interface{}]string)
	taken = make(map[string]bool)
}

func Name(obj interface{}) string {
	if isNil(obj) {
		return "Ø"
	}
	if !reflect.TypeOf(obj).Comparable() {
		panic(fmt.Sprintf("dbg: cannot name a value of type %T", obj))
	}

	mu.Lock()
	defer mu.Unlock()
	if r, ok := memo[obj]; ok {
		return r
	}
	// Names must stay distinct, or they'd be worse than no names at all
	r := generate()
	for taken[r] {
		r = generate()
	}
	memo[obj] = r
	taken[r] = true
	return r
}

func generate() string {
	return fmt.Sprintf("%s%s", title(petname.Adjective()), title(petname.Name()))
}

func title(word string) string {
	if word == "" {
		return word
	}
	return strings.ToUpper(word[:1]) + word[1:]
}

func isNil(obj interface{}) bool {
	if obj == nil {
		return true
	}
	v := reflect.ValueOf(obj)
	switch v.Kind() {
	case reflect.Ptr, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		return v.IsNil()
	}
	return false
}

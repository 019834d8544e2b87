package dbg

import (
	"fmt"
	"reflect"
	"strings"
	"sync"

	petname "github.com/dustinkirkland/golang-petname"
)

// Readable names for arbitrary values, usually pointers into a mesh or a BVH
// arena. Names are generated lazily and memoized forever, so this leaks, but
// only for values that were actually named. The table is safe for concurrent
// use since queries that print names may run on several goroutines.

var (
	mu   sync.Mutex
	memo map[interface{}]string
	used map[string]struct{}
)

func init() {
	memo = make(map[interface{}]string)
	used = make(map[string]struct{})
	// Names are handed out in order of demand, so they differ between runs
	// anyway. Nondeterminism makes that obvious.
	petname.NonDeterministicMode()
}

// Name returns the readable name for obj. Nil pointers, maps, slices and
// interfaces are all called "Ø". Values must be comparable.
func Name(obj interface{}) string {
	if isNil(obj) {
		return "Ø"
	}

	mu.Lock()
	defer mu.Unlock()

	if r, ok := memo[obj]; ok {
		return r
	}
	r := fresh()
	memo[obj] = r
	used[r] = struct{}{}
	return r
}

// Forget every name handed out so far.
func Reset() {
	mu.Lock()
	defer mu.Unlock()
	memo = make(map[interface{}]string)
	used = make(map[string]struct{})
}

// Generate a name that hasn't been used yet. Collisions get a numeric suffix.
func fresh() string {
	base := fmt.Sprintf("%s%s", strings.Title(petname.Adjective()), strings.Title(petname.Name()))
	r := base
	for i := 2; ; i++ {
		if _, ok := used[r]; !ok {
			return r
		}
		r = fmt.Sprintf("%s%d", base, i)
	}
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

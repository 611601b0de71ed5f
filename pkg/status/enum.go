package status

import (
	"fmt"
	"strings"
)

func enumString[E ~int](names map[E]string, e E) string {
	if s, ok := names[e]; ok {
		return s
	}
	return fmt.Sprintf("UNKNOWN(%d)", int(e))
}

func decode[E ~int](names map[E]string, code int64, unknown E) E {
	e := E(code)
	if int64(e) != code {
		return unknown
	}
	if _, ok := names[e]; ok {
		return e
	}
	return unknown
}

func lookup[E ~int](names map[E]string, name string) (E, bool) {
	want := strings.ToUpper(strings.ReplaceAll(strings.TrimSpace(name), " ", "_"))
	for e, s := range names {
		if s == want {
			return e, true
		}
	}
	var zero E
	return zero, false
}

package purefn

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/davecgh/go-spew/spew"
)

// dumper renders composite arguments structurally: unexported fields are
// visible, map keys are sorted, pointers are followed, and a pointer already
// on the current path prints as <already shown> instead of recursing.
var dumper = spew.ConfigState{
	Indent:                  " ",
	SortKeys:                true,
	SpewKeys:                true,
	DisableMethods:          true,
	DisablePointerAddresses: true,
	DisableCapacities:       true,
}

// cacheKey derives the table key of an argument list.
// Every piece is length-prefixed, so no argument can forge a separator.
func cacheKey(args []any) string {
	var b strings.Builder
	b.WriteString(strconv.Itoa(len(args)))
	for _, arg := range args {
		k := argKey(arg)
		b.WriteByte('|')
		b.WriteString(strconv.Itoa(len(k)))
		b.WriteByte(':')
		b.WriteString(k)
	}
	return b.String()
}

func argKey(arg any) string {
	if arg == nil {
		return "<nil>"
	}
	typ := fmt.Sprintf("%T", arg)

	rv := reflect.ValueOf(arg)
	if rv.Kind() == reflect.Pointer && rv.IsNil() {
		return typ + "<nil>"
	}

	if stringer, ok := arg.(fmt.Stringer); ok {
		return typ + "$" + stringer.String()
	}

	switch rv.Kind() {
	case reflect.Bool, reflect.String,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64, reflect.Complex64, reflect.Complex128:
		return typ + "=" + fmt.Sprintf("%v", arg)
	case reflect.Func, reflect.Chan, reflect.UnsafePointer:
		return typ + "@" + fmt.Sprintf("%p", arg)
	}

	return typ + "#" + dumper.Sdump(arg)
}

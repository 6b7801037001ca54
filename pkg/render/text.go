package render

import (
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/davecgh/go-spew/spew"
)

// DateLayout is used for time values.
const DateLayout = "2006-01-02 15:04:05"

var dumper = &spew.ConfigState{
	Indent:                  "  ",
	SortKeys:                true,
	DisableMethods:          true,
	DisablePointerAddresses: true,
	DisableCapacities:       true,
}

// Text returns the display form of a value. Scalars print literally (nil is
// the empty string); composite values print as a deterministic dump with
// sorted map keys so nested structures stay inspectable.
func Text(value any) string {
	if t, ok := value.(time.Time); ok {
		return t.Format(DateLayout)
	}

	rv, ok := indirect(reflect.ValueOf(value))
	if !ok {
		return ""
	}

	switch rv.Kind() {
	case reflect.String:
		return rv.String()
	case reflect.Bool:
		return strconv.FormatBool(rv.Bool())
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(rv.Int(), 10)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return strconv.FormatUint(rv.Uint(), 10)
	case reflect.Float32:
		return strconv.FormatFloat(rv.Float(), 'f', -1, 32)
	case reflect.Float64:
		return strconv.FormatFloat(rv.Float(), 'f', -1, 64)
	case reflect.Slice:
		if rv.Type() == bytesType {
			return string(rv.Bytes())
		}
	case reflect.Struct:
		if rv.Type() == timeType {
			return interfaceOf(rv).(time.Time).Format(DateLayout)
		}
	}

	return strings.TrimRight(dumper.Sdump(interfaceOf(rv)), "\n")
}

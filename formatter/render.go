package formatter

import (
	"bytes"
	"reflect"
	"strconv"
	"sync"
)

// bufferPool is a pool of bytes.Buffer to reduce allocations
var bufferPool = &sync.Pool{
	New: func() interface{} {
		b := new(bytes.Buffer)
		b.Grow(256)
		return b
	},
}

func getBuffer() *bytes.Buffer {
	buf := bufferPool.Get().(*bytes.Buffer)
	buf.Reset()
	return buf
}

func putBuffer(buf *bytes.Buffer) {
	if buf.Cap() > 64*1024 { // Don't keep very large buffers
		return
	}
	bufferPool.Put(buf)
}

// Stringer is the subset of fmt.Stringer the renderer cares about,
// declared locally to avoid importing fmt on the hot path.
type Stringer interface {
	String() string
}

// Render converts a single value of arbitrary type into text. It never
// fails: values without a native text form are rendered through the
// opaque "<type> at 0x<hex>" fallback.
func Render(v interface{}) string {
	buf := getBuffer()
	defer putBuffer(buf)

	AppendRender(buf, v)
	return buf.String()
}

// AppendRender renders v into buf. Dispatch prefers the value's own
// text form: strings and byte slices verbatim, *string as the pointed-to
// content, errors and Stringers through their methods, basic kinds via
// strconv. Everything else gets the opaque fallback.
func AppendRender(buf *bytes.Buffer, v interface{}) {
	switch x := v.(type) {
	case nil:
		buf.WriteString("<nil>")
	case string:
		buf.WriteString(x)
	case []byte:
		buf.Write(x)
	case *string:
		// The C-string case: render the content, not the address.
		if x == nil {
			appendOpaque(buf, v)
			return
		}
		buf.WriteString(*x)
	case error:
		appendMethod(buf, v, x.Error)
	case Stringer:
		appendMethod(buf, v, x.String)
	case bool:
		buf.Write(strconv.AppendBool(buf.AvailableBuffer(), x))
	case int:
		buf.Write(strconv.AppendInt(buf.AvailableBuffer(), int64(x), 10))
	case int8:
		buf.Write(strconv.AppendInt(buf.AvailableBuffer(), int64(x), 10))
	case int16:
		buf.Write(strconv.AppendInt(buf.AvailableBuffer(), int64(x), 10))
	case int32:
		buf.Write(strconv.AppendInt(buf.AvailableBuffer(), int64(x), 10))
	case int64:
		buf.Write(strconv.AppendInt(buf.AvailableBuffer(), x, 10))
	case uint:
		buf.Write(strconv.AppendUint(buf.AvailableBuffer(), uint64(x), 10))
	case uint8:
		buf.Write(strconv.AppendUint(buf.AvailableBuffer(), uint64(x), 10))
	case uint16:
		buf.Write(strconv.AppendUint(buf.AvailableBuffer(), uint64(x), 10))
	case uint32:
		buf.Write(strconv.AppendUint(buf.AvailableBuffer(), uint64(x), 10))
	case uint64:
		buf.Write(strconv.AppendUint(buf.AvailableBuffer(), x, 10))
	case uintptr:
		buf.Write(strconv.AppendUint(buf.AvailableBuffer(), uint64(x), 10))
	case float32:
		buf.Write(strconv.AppendFloat(buf.AvailableBuffer(), float64(x), 'g', -1, 32))
	case float64:
		buf.Write(strconv.AppendFloat(buf.AvailableBuffer(), x, 'g', -1, 64))
	default:
		appendReflect(buf, v)
	}
}

// appendMethod calls a value's own text method. A panicking String or
// Error method (typically a nil receiver) degrades to the opaque
// fallback instead of escaping to the caller.
func appendMethod(buf *bytes.Buffer, v interface{}, f func() string) {
	defer func() {
		if recover() != nil {
			appendOpaque(buf, v)
		}
	}()
	buf.WriteString(f())
}

// appendReflect handles named types whose underlying kind still has a
// native text form, then falls back to the opaque representation.
func appendReflect(buf *bytes.Buffer, v interface{}) {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.String:
		buf.WriteString(rv.String())
	case reflect.Bool:
		buf.Write(strconv.AppendBool(buf.AvailableBuffer(), rv.Bool()))
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		buf.Write(strconv.AppendInt(buf.AvailableBuffer(), rv.Int(), 10))
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		buf.Write(strconv.AppendUint(buf.AvailableBuffer(), rv.Uint(), 10))
	case reflect.Float32:
		buf.Write(strconv.AppendFloat(buf.AvailableBuffer(), rv.Float(), 'g', -1, 32))
	case reflect.Float64:
		buf.Write(strconv.AppendFloat(buf.AvailableBuffer(), rv.Float(), 'g', -1, 64))
	case reflect.Slice:
		if rv.Type().Elem().Kind() == reflect.Uint8 {
			buf.Write(rv.Bytes())
			return
		}
		appendOpaque(buf, v)
	default:
		appendOpaque(buf, v)
	}
}

// appendOpaque writes the "<type> at 0x<hex>" representation. It never
// inspects the value's bytes, only its type and an identity token.
func appendOpaque(buf *bytes.Buffer, v interface{}) {
	buf.WriteString(reflect.TypeOf(v).String())
	buf.WriteString(" at 0x")
	buf.Write(strconv.AppendUint(buf.AvailableBuffer(), uint64(identity(v)), 16))
}

// identity produces an address-like token for a value. Pointer-shaped
// kinds expose their own pointer; anything else is boxed once and the
// allocation's address stands in for the value's identity.
func identity(v interface{}) uintptr {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.UnsafePointer, reflect.Chan, reflect.Func, reflect.Map, reflect.Slice:
		return rv.Pointer()
	default:
		p := reflect.New(rv.Type())
		p.Elem().Set(rv)
		return p.Pointer()
	}
}

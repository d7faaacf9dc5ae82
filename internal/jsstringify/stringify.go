// Package jsstringify renders Go values as JavaScript source literals: objects
// as key/value blocks, strings single-quoted, and sequences as bracketed
// lists. Besides plain data it understands a small set of expression nodes
// (Raw, Call, Spread) so generated config files can defer a value to code
// that runs when the file is loaded.
package jsstringify

import (
	"encoding/json"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/lintkit/create-eslint-config/internal/object"
)

// Raw is a JavaScript expression emitted verbatim.
type Raw string

// Call renders as Callee(Args...). Each argument is rendered like any other
// value at the current depth.
type Call struct {
	Callee any
	Args   []any
}

// Spread renders as ...Value. Used as an object entry value, the entry's key
// is not emitted.
type Spread struct {
	Value any
}

var identifierPattern = regexp.MustCompile(`^[A-Za-z_$][A-Za-z0-9_$]*$`)

// reservedWords are quoted when used as object keys.
var reservedWords = map[string]bool{}

func init() {
	for _, w := range strings.Fields(`break else new var case finally return void catch for
		switch while continue function this with default if throw delete in try do
		instanceof typeof abstract enum int short boolean export interface static byte
		extends long super char final native synchronized class float package throws
		const goto private transient debugger implements protected volatile double
		import public let yield`) {
		reservedWords[w] = true
	}
}

// Stringify renders v using indent spaces per nesting level. An indent of 0
// produces a single-line literal.
func Stringify(v any, indent int) string {
	p := &printer{}
	if indent > 0 {
		p.unit = strings.Repeat(" ", indent)
		p.newline = "\n"
		p.space = " "
	}
	var b strings.Builder
	p.value(&b, v, 0)
	return b.String()
}

type printer struct {
	unit    string
	newline string
	space   string
}

func (p *printer) pad(b *strings.Builder, depth int) {
	for i := 0; i < depth; i++ {
		b.WriteString(p.unit)
	}
}

func (p *printer) value(b *strings.Builder, v any, depth int) {
	switch val := v.(type) {
	case nil:
		b.WriteString("null")
	case *object.Object:
		if val == nil {
			b.WriteString("null")
			return
		}
		p.object(b, val, depth)
	case map[string]any:
		p.object(b, object.FromMap(val), depth)
	case map[string]string:
		p.object(b, object.FromStrings(val), depth)
	case []any:
		p.list(b, val, depth)
	case []string:
		items := make([]any, len(val))
		for i, s := range val {
			items[i] = s
		}
		p.list(b, items, depth)
	case string:
		b.WriteString(Quote(val))
	case bool:
		b.WriteString(strconv.FormatBool(val))
	case int:
		b.WriteString(strconv.Itoa(val))
	case int8, int16, int32, int64:
		fmt.Fprintf(b, "%d", val)
	case uint, uint8, uint16, uint32, uint64:
		fmt.Fprintf(b, "%d", val)
	case float32:
		b.WriteString(formatNumber(float64(val)))
	case float64:
		b.WriteString(formatNumber(val))
	case json.Number:
		b.WriteString(val.String())
	case Raw:
		b.WriteString(string(val))
	case Call:
		p.value(b, val.Callee, depth)
		b.WriteByte('(')
		for i, arg := range val.Args {
			if i > 0 {
				b.WriteString("," + p.space)
			}
			p.value(b, arg, depth)
		}
		b.WriteByte(')')
	case Spread:
		b.WriteString("...")
		p.value(b, val.Value, depth)
	default:
		b.WriteString(Quote(fmt.Sprint(val)))
	}
}

func (p *printer) object(b *strings.Builder, o *object.Object, depth int) {
	keys := o.Keys()
	if len(keys) == 0 {
		b.WriteString("{}")
		return
	}

	b.WriteByte('{')
	for i, k := range keys {
		b.WriteString(p.newline)
		p.pad(b, depth+1)

		v, _ := o.Get(k)
		if s, ok := v.(Spread); ok {
			p.value(b, s, depth+1)
		} else {
			b.WriteString(Key(k))
			b.WriteString(":" + p.space)
			p.value(b, v, depth+1)
		}
		if i < len(keys)-1 {
			b.WriteByte(',')
		}
	}
	b.WriteString(p.newline)
	p.pad(b, depth)
	b.WriteByte('}')
}

func (p *printer) list(b *strings.Builder, items []any, depth int) {
	if len(items) == 0 {
		b.WriteString("[]")
		return
	}

	b.WriteByte('[')
	for i, item := range items {
		b.WriteString(p.newline)
		p.pad(b, depth+1)
		p.value(b, item, depth+1)
		if i < len(items)-1 {
			b.WriteByte(',')
		}
	}
	b.WriteString(p.newline)
	p.pad(b, depth)
	b.WriteByte(']')
}

// Key renders an object key: bare when it is a valid identifier that is
// not a reserved word, quoted otherwise.
func Key(k string) string {
	if identifierPattern.MatchString(k) && !reservedWords[k] {
		return k
	}
	return Quote(k)
}

// Quote renders s as a single-quoted JavaScript string literal.
func Quote(s string) string {
	var b strings.Builder
	b.Grow(len(s) + 2)
	b.WriteByte('\'')
	for _, r := range s {
		switch r {
		case '\'':
			b.WriteString(`\'`)
		case '\\':
			b.WriteString(`\\`)
		case '\b':
			b.WriteString(`\b`)
		case '\t':
			b.WriteString(`\t`)
		case '\n':
			b.WriteString(`\n`)
		case '\f':
			b.WriteString(`\f`)
		case '\r':
			b.WriteString(`\r`)
		default:
			if r < 0x20 || (r >= 0x7f && r <= 0x9f) || r == 0xad || r == 0x2028 || r == 0x2029 || r == 0xfeff {
				fmt.Fprintf(&b, `\u%04x`, r)
			} else {
				b.WriteRune(r)
			}
		}
	}
	b.WriteByte('\'')
	return b.String()
}

func formatNumber(f float64) string {
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	case math.Abs(f) >= 1e21:
		return strconv.FormatFloat(f, 'e', -1, 64)
	default:
		return strconv.FormatFloat(f, 'f', -1, 64)
	}
}

package ast

import (
	"fmt"
	"reflect"
	"strings"
)

// Dump renders a tree as an indented multi-line outline, one node per
// line, with exported field names. Terminals show their text and leading
// trivia. The output is for debugging and test failure messages; its exact
// shape is not part of the API.
func Dump(n Node) string {
	var sb strings.Builder
	dumpNode(&sb, n, 0)
	return sb.String()
}

func dumpNode(sb *strings.Builder, n Node, depth int) {
	indent := strings.Repeat("  ", depth)
	if n == nil {
		sb.WriteString(indent)
		sb.WriteString("<nil>\n")
		return
	}
	sb.WriteString(indent)
	sb.WriteString(n.Kind().String())
	if t, ok := n.(Terminal); ok {
		if lead := t.LeadingTrivia(); lead != "" {
			fmt.Fprintf(sb, " %q", lead)
		}
		fmt.Fprintf(sb, " %q\n", t.TokenText())
		return
	}
	if m, ok := n.(*Module); ok && m.Footer != "" {
		fmt.Fprintf(sb, " footer=%q", m.Footer)
	}
	sb.WriteByte('\n')

	v := reflect.ValueOf(n).Elem()
	t := v.Type()
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if !f.IsExported() {
			continue
		}
		dumpField(sb, f.Name, v.Field(i), depth+1)
	}
}

func dumpField(sb *strings.Builder, name string, v reflect.Value, depth int) {
	indent := strings.Repeat("  ", depth)
	switch v.Kind() {
	case reflect.Slice:
		if v.Type().Elem().Kind() == reflect.String || v.Type().Elem().Kind() == reflect.Uint8 {
			return
		}
		if v.Len() == 0 {
			return
		}
		fmt.Fprintf(sb, "%s%s:\n", indent, name)
		for i := 0; i < v.Len(); i++ {
			dumpChild(sb, v.Index(i), depth+1)
		}
	case reflect.Interface, reflect.Ptr:
		if v.IsNil() {
			return
		}
		fmt.Fprintf(sb, "%s%s:\n", indent, name)
		dumpChild(sb, v, depth+1)
	case reflect.Struct:
		// Embedded Lexeme fields are rendered by the terminal case above.
	default:
		if v.IsZero() {
			return
		}
		fmt.Fprintf(sb, "%s%s: %v\n", indent, name, v.Interface())
	}
}

func dumpChild(sb *strings.Builder, v reflect.Value, depth int) {
	if n, ok := v.Interface().(Node); ok {
		dumpNode(sb, n, depth)
		return
	}
	fmt.Fprintf(sb, "%s%v\n", strings.Repeat("  ", depth), v.Interface())
}

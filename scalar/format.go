package scalar

import (
	"fmt"
	"strconv"
	"strings"
)

// FormatComponent returns the shortest decimal text for x that parses back to
// the same value.
func FormatComponent[T Number](x T) string {
	switch {
	case IsFloat[T]():
		return strconv.FormatFloat(float64(x), 'g', -1, BitSize[T]())
	case IsSigned[T]():
		return strconv.FormatInt(int64(x), 10)
	default:
		return strconv.FormatUint(uint64(x), 10)
	}
}

var componentNames = [4]string{"X", "Y", "Z", "W"}

// FormatVector renders components as "X:1 Y:2 ...".
func FormatVector[T Number](components ...T) string {
	var sb strings.Builder
	for i, c := range components {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(componentNames[i])
		sb.WriteByte(':')
		sb.WriteString(FormatComponent(c))
	}
	return sb.String()
}

// WriteFormatted implements fmt.Formatter for vectors. The verbs 'v' and 's'
// without flags produce FormatVector output; any other verb, flag, width or
// precision is applied to each component individually.
func WriteFormatted[T Number](f fmt.State, verb rune, components ...T) {
	_, hasWidth := f.Width()
	_, hasPrec := f.Precision()
	plain := (verb == 'v' || verb == 's') && !hasWidth && !hasPrec &&
		!f.Flag('+') && !f.Flag('#') && !f.Flag('-') && !f.Flag(' ') && !f.Flag('0')
	if plain {
		_, _ = f.Write([]byte(FormatVector(components...)))
		return
	}

	if verb == 's' {
		verb = 'v'
	}
	format := fmt.FormatString(f, verb)
	for i, c := range components {
		if i > 0 {
			_, _ = f.Write([]byte{' '})
		}
		_, _ = fmt.Fprintf(f, "%s:"+format, componentNames[i], c)
	}
}

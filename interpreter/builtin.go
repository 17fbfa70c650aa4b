package interpreter

import (
	"fmt"
	"io"
	"rdparser/object"
)

// PRINT writes one value per line, integers in decimal and booleans as TRUE/FALSE
func PRINT(out io.Writer, args ...object.Object) {
	for _, arg := range args {
		fmt.Fprintln(out, arg.Inspect())
	}
}

// Package utils contains small helpers shared by the command line tools.
package utils

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// PrintJSON pretty-prints v as indented JSON to stdout.
func PrintJSON(v any) {
	FprintJSON(os.Stdout, v)
}

// FprintJSON writes v as indented JSON to w. Marshal failures are reported
// in place of the document.
func FprintJSON(w io.Writer, v any) {
	out, err := json.MarshalIndent(v, "", "\t")
	if err != nil {
		fmt.Fprintln(w, "Error marshalling the JSON:", err)
		return
	}

	fmt.Fprintln(w, string(out))
}

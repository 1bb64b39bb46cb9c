package cmd

import (
	"fmt"
	"io"

	"github.com/rotisserie/eris"

	"awardlog/config"
)

// reportFailure prints err for the user. With backtraces enabled the full
// eris chain including stack frames is printed instead of the message.
func reportFailure(w io.Writer, err error, diag config.Diagnostics) {
	if err == nil {
		return
	}
	if diag.Backtrace {
		fmt.Fprintln(w, eris.ToString(err, true))
		return
	}
	fmt.Fprintf(w, "Error: %v\n", err)
}

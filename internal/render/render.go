// Package render writes search results for a human reader.
package render

import (
	"bufio"
	"fmt"
	"io"

	"github.com/specialistvlad/dawaclient/internal/dawa"
)

// Addresses writes a count line, a blank line, then each address's display
// label on its own line, in the order given.
func Addresses(w io.Writer, addrs []dawa.Address) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "Found %d address(es)\n\n", len(addrs))
	for _, a := range addrs {
		fmt.Fprintln(bw, a.DisplayLabel)
	}
	return bw.Flush()
}

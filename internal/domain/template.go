package domain

import (
	"bufio"
	"fmt"
	"io"
)

// WriteTemplate writes an empty record with every official field and
// today's date filled in as startdatum, ready to be edited by hand.
func WriteTemplate(w io.Writer) error {
	bw := bufio.NewWriter(w)
	today := clock.Now().Format("2006-01-02")
	for _, f := range officialFields {
		if f == StartDate {
			fmt.Fprintf(bw, "%s: %s\n", f, today)
			continue
		}
		fmt.Fprintf(bw, "%s:\n", f)
	}
	return bw.Flush()
}

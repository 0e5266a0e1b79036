// Command kiosk es el front end de terminal del otomat de medicamentos.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd(&flags{}).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Command objprint renders a YAML or JSON document in the objprint debug
// text form.
package main

import "os"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

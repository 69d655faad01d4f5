// Command geopage serves the homepage builder and renders pages from the
// command line.
package main

import "os"

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

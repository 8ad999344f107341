// Command materialsgen builds the materials index and content blobs from the
// markdown sources, and can validate, watch or emit a sitemap.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Command schema-gen writes the versioned preferences JSON Schema to schema/.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/smykla-skalski/anot/internal/atomicfile"
	"github.com/smykla-skalski/anot/internal/schema"
)

const filePerms = 0o644

func main() {
	data, err := schema.GenerateJSON(true)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	outDir := "schema"
	if len(os.Args) > 1 {
		outDir = os.Args[1]
	}

	outPath := filepath.Clean(filepath.Join(outDir, schema.Filename()))

	if _, err := atomicfile.Write(outPath, data, atomicfile.Options{Perm: filePerms}); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	fmt.Println(outPath)
}

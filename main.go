// Command otus prints a freshly drawn Zobrist key table as Rust constant
// declarations. It takes no flags; see cmd/keygen for seeds, Go output and
// output files.
package main

import (
	"io"
	"os"

	"github.com/Mattriplex/otus/zobrist"
)

func main() {
	if err := run(os.Stdout, zobrist.GlobalSource()); err != nil {
		panic(err)
	}
}

func run(w io.Writer, src zobrist.Source) error {
	keys := zobrist.Generate(src)
	return zobrist.RustRenderer{}.Render(w, keys)
}

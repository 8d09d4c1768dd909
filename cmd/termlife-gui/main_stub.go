//go:build !ebiten

package main

import (
	"fmt"
	"os"
)

func main() {
	fmt.Fprintln(os.Stderr, "The GUI build of termlife requires the ebiten build tag.")
	fmt.Fprintln(os.Stderr, "Re-run with `go run -tags ebiten ./cmd/termlife-gui` or build with `-tags ebiten`.")
	fmt.Fprintln(os.Stderr, "For the terminal version use `go run ./cmd/termlife`.")
	os.Exit(2)
}

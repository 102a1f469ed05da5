package main

import (
	"fmt"
	"math/rand"
	"os"
	"path/filepath"

	"github.com/lanrat/dedupe"
)

var count = int(1e6) // 1M

func main() {
	dir, err := os.MkdirTemp("", "dedupe-example-")
	if err != nil {
		panic(err)
	}
	defer os.RemoveAll(dir)

	// write a file with many repeated random lines
	lines := make([]string, count)
	for i := range lines {
		lines[i] = fmt.Sprintf("line-%d", rand.Intn(count/10))
	}
	path := filepath.Join(dir, "lines.txt")
	if err := dedupe.WriteFile(path, lines); err != nil {
		panic(err)
	}

	// replace it in place with its sorted unique lines
	err = dedupe.Run(&dedupe.Options{Input: path, Overwrite: true, Sort: true})
	if err != nil {
		fmt.Printf("err: %s", err.Error())
		return
	}

	unique, err := dedupe.ReadFile(path)
	if err != nil {
		panic(err)
	}
	fmt.Printf("%d lines, %d unique\n", count, len(unique))
}

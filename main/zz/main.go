package main

import (
	"github.com/wal-g/zz/cmd/zz"
)

func main() {
	zz.Execute()
}

package main

import (
	"github.com/lunixbochs/firmmap/go/cmd"

	_ "github.com/lunixbochs/firmmap/go/cmd/mmu"
)

func main() { cmd.Main() }

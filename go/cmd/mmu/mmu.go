package mmu

import (
	"github.com/lunixbochs/firmmap/go/cmd"
)

func Main(args []string) int {
	return cmd.NewTableCmd("mmu").Run(args)
}

func init() { cmd.Register("mmu", "decode an ARM MMU section table", Main) }

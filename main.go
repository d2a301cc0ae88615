package main

import (
	"fmt"
	"os"

	"fjacquet/iso20022/cmd/bond"
	"fjacquet/iso20022/cmd/convert"
	"fjacquet/iso20022/cmd/root"
)

func init() {
	root.Init()
	convert.Init()

	root.Cmd.AddCommand(convert.Cmd)
	root.Cmd.AddCommand(bond.Cmd)
}

func main() {
	if err := root.Cmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

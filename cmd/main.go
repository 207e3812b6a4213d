package main

import (
	"github.com/alecthomas/kong"
)

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("orus"),
		kong.Description("Orus embedded stdlib toolchain"),
		kong.UsageOnError(),
	)
	err := ctx.Run()
	ctx.FatalIfErrorf(err)
}

type CLI struct {
	Generate GenerateCmd `cmd:"" help:"Generate the embedded registry artifacts." aliases:"gen"`
	Dump     DumpCmd     `cmd:"" help:"Write the built-in stdlib to a directory."`
	Version  VersionCmd  `cmd:"" help:"Show version."`
}

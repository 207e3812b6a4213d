package main

import (
	"github.com/orus-lang/orus/std"
)

type DumpCmd struct {
	Dir string `arg:"" help:"Target directory for the materialized stdlib."`
}

func (d *DumpCmd) Run() error {
	if err := std.Materialize(d.Dir); err != nil {
		return err
	}
	newLogger().Info("dumped stdlib", "modules", std.Count, "dir", d.Dir)
	return nil
}

package main

import (
	"os"

	"github.com/charmbracelet/log"

	"github.com/orus-lang/orus/embedgen"
)

type GenerateCmd struct {
	SrcDir          string `arg:"" help:"Directory of source modules to embed."`
	OutDefinitions  string `arg:"" help:"Path for the generated definitions file."`
	OutDeclarations string `arg:"" help:"Path for the generated declarations file."`

	Package   string `help:"Package name of the generated files." default:"std"`
	Namespace string `help:"Logical prefix for module names." default:"std"`
	Ext       string `help:"File extension to embed." default:".orus"`
	Manifest  string `help:"Path to an orus.toml manifest." short:"m"`
}

func (g *GenerateCmd) Run() error {
	logger := newLogger()

	pkg, namespace, ext := g.Package, g.Namespace, g.Ext
	if g.Manifest != "" {
		m, err := embedgen.LoadManifest(g.Manifest)
		if err != nil {
			return err
		}
		if m.Package != "" {
			pkg = m.Package
		}
		if m.Namespace != "" {
			namespace = m.Namespace
		}
		if m.Ext != "" {
			ext = m.Ext
		}
		logger.Debug("loaded manifest", "name", m.Name, "version", m.Version)
	}

	modules, err := embedgen.Scan(g.SrcDir, ext, namespace)
	if err != nil {
		return err
	}
	logger.Info("embedding modules", "count", len(modules), "src", g.SrcDir)

	if err := embedgen.Emit(modules, pkg, g.OutDefinitions, g.OutDeclarations); err != nil {
		return err
	}
	logger.Info("wrote artifacts", "definitions", g.OutDefinitions, "declarations", g.OutDeclarations)
	return nil
}

func newLogger() *log.Logger {
	return log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: false,
		Prefix:          "orus",
	})
}

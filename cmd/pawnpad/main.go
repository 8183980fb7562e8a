package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path"

	"github.com/davecgh/go-spew/spew"

	"github.com/amirrezaask/pawnpad"
)

func main() {
	var (
		configPath string
		style      string
		formatter  string
		dump       bool
	)
	flag.StringVar(&configPath, "cfg", path.Join(os.Getenv("HOME"), ".pawnpad"), "path to config file, defaults to: ~/.pawnpad")
	flag.StringVar(&style, "style", "", "chroma style, defaults to the configured theme")
	flag.StringVar(&formatter, "formatter", "terminal256", "chroma formatter")
	flag.BoolVar(&dump, "dump", false, "print the highlight spans instead of the text")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: pawnpad [-cfg path] [-style name] [-formatter name] [-dump] file")
		os.Exit(2)
	}
	filename := flag.Arg(0)

	cfg, err := pawnpad.ReadConfig(configPath)
	if err != nil {
		panic(err)
	}
	if style != "" {
		cfg.Style = style
	}

	bs, err := os.ReadFile(filename)
	if err != nil {
		log.Fatalf("pawnpad: %v", err)
	}

	editor := pawnpad.New(cfg, pawnpad.WithFilename(filename))
	editor.SetText(string(bs))
	editor.Loop().RunPending()

	if dump {
		spew.Fdump(os.Stdout, editor.FileType().Name, editor.Spans())
		return
	}
	if err := pawnpad.Render(os.Stdout, editor.Text(), editor.Spans(), cfg, formatter); err != nil {
		log.Fatalf("pawnpad: %v", err)
	}
}

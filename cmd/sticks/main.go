package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/plan-systems/klog"
)

func main() {

	klog.InitFlags(flag.CommandLine)
	flag.Set("logtostderr", "true")
	klog.SetFormatter(&klog.FmtConstWidth{
		FileNameCharWidth: 16,
		UseColor:          true,
	})

	opts := shellOpts{}
	flag.IntVar(&opts.Members, "members", 0, "number of sticks (prompted for if less than 4)")
	flag.StringVar(&opts.Moves, "moves", "", "zero-based move script applied before prompting, e.g. \"1+3, 0+4\"")
	flag.StringVar(&opts.PyFile, "py", "", "runs the given gpython script instead of the shell")
	flag.BoolVar(&opts.REPL, "repl", false, "starts a gpython REPL with the sticks module")
	flag.StringVar(&opts.Color, "color", "auto", "table colors: auto, always, or never")
	flag.Parse()

	var err error
	if opts.PyFile != "" || opts.REPL {
		err = go_gpython(opts.PyFile)
	} else {
		err = runShell(opts)
	}

	klog.Flush()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func runShell(opts shellOpts) error {
	paint, err := newPainter(opts.Color, os.Stdout)
	if err != nil {
		return err
	}

	prompter := newLinerPrompter()
	defer prompter.Close()

	sh := newShell(opts, prompter, os.Stdout)
	sh.print.Paint = paint
	return sh.Run()
}

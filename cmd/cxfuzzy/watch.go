package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/fsnotify/fsnotify"
)

// runWatch re-runs the roles pipeline every time path is written,
// using fsnotify the same way the teacher's vfs.FSNotifyWatcher does:
// a single goroutine selecting over the watcher's Events/Errors
// channels. Each fired event re-runs the fully synchronous
// lex/parse/highlight pipeline from scratch.
func runWatch(args []string) {
	fs := flag.NewFlagSet("watch", flag.ExitOnError)
	_ = fs.Parse(args)

	rest := fs.Args()
	if len(rest) != 1 {
		fmt.Fprintln(os.Stderr, "usage: cxfuzzy watch <file>")
		os.Exit(2)
	}
	path := rest[0]

	w, err := fsnotify.NewWatcher()
	if err != nil {
		log.Fatalf("cxfuzzy: %v", err)
	}
	defer w.Close()

	if err := w.Add(path); err != nil {
		log.Fatalf("cxfuzzy: %v", err)
	}

	runOnce(path)
	for {
		select {
		case ev, ok := <-w.Events:
			if !ok {
				return
			}
			if ev.Op&fsnotify.Write == 0 {
				continue
			}
			fmt.Println("---")
			runOnce(path)
		case err, ok := <-w.Errors:
			if !ok {
				return
			}
			log.Printf("cxfuzzy: watch error: %v", err)
		}
	}
}

func runOnce(path string) {
	tu, _, err := lexAndParse(path)
	if err != nil {
		log.Printf("cxfuzzy: %v", err)
		return
	}
	printRoles(tu)
}

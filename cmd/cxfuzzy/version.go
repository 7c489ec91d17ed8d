package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/Masterminds/semver/v3"
)

// toolVersion is the tool's own embedded semantic version string,
// validated through semver.NewVersion before being printed so the
// dependency is exercised rather than merely imported.
const toolVersion = "0.1.0"

func runVersion(args []string) {
	fs := flag.NewFlagSet("version", flag.ExitOnError)
	_ = fs.Parse(args)

	v, err := semver.NewVersion(toolVersion)
	if err != nil {
		log.Fatalf("cxfuzzy: invalid embedded version %q: %v", toolVersion, err)
	}
	fmt.Printf("cxfuzzy v%s\n", v.String())
}

// Command pdbcat parses PDB structure files and prints their records as
// JSON, one record per line. Input files may be plain text or gzipped.
//
//	pdbcat -kinds ATOM,HETATM 1ubq.pdb.gz
//	pdbcat -filter 'kind == "ATOM" && record.TempFactor > 30' 4pth.pdb
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"

	"github.com/twinfer/pdb-plugin/pkg/pdb"
)

var errColor = color.New(color.FgRed, color.Bold)

func main() {
	workers := flag.Int("workers", 1, "decode workers per file")
	filter := flag.String("filter", "", "predicate expression, e.g. 'kind == \"ATOM\"'")
	kinds := flag.String("kinds", "", "comma-separated record kinds to keep, e.g. ATOM,TER")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: %s [flags] file.pdb[.gz]...\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() == 0 {
		flag.Usage()
		os.Exit(2)
	}

	keep := kindSet(*kinds)
	ctx := context.Background()
	enc := json.NewEncoder(os.Stdout)

	for _, path := range flag.Args() {
		records, err := pdb.ParseFile(ctx, path,
			pdb.WithWorkers(*workers),
		)
		if err != nil {
			fatal("%s: %v", path, err)
		}
		if *filter != "" {
			if records, err = pdb.Filter(records, *filter); err != nil {
				fatal("%s: %v", path, err)
			}
		}
		for _, tagged := range pdb.Tagged(records) {
			if keep != nil && !keep[tagged.Kind] {
				continue
			}
			if err := enc.Encode(tagged); err != nil {
				fatal("%s: %v", path, err)
			}
		}
	}
}

// kindSet parses the -kinds flag; nil means keep everything.
func kindSet(arg string) map[string]bool {
	if arg == "" {
		return nil
	}
	keep := make(map[string]bool)
	for _, k := range strings.Split(arg, ",") {
		k = strings.TrimSpace(strings.ToUpper(k))
		if k != "" {
			keep[k] = true
		}
	}
	return keep
}

func fatal(format string, args ...any) {
	errColor.Fprintf(os.Stderr, "pdbcat: "+format+"\n", args...)
	os.Exit(1)
}

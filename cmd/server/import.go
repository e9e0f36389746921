package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/goshopper/matchstick/pkg/catalog"
)

func cmdImport(args []string) {
	fs := flag.NewFlagSet("import", flag.ExitOnError)
	csvPath := fs.String("csv", "", "path to the products CSV (columns: id,name,category,unit)")
	dbPath := fs.String("db", "catalog.db", "path to the catalog database")
	delimiter := fs.String("delimiter", ",", "CSV field delimiter")
	encoding := fs.String("encoding", "", "CSV character encoding (IANA name, default UTF-8)")
	header := fs.Bool("header", true, "CSV has a header row")
	fs.Parse(args)

	if *csvPath == "" {
		fmt.Fprintln(os.Stderr, "Usage:")
		fmt.Fprintln(os.Stderr, "  matchstick import --csv <file> [--db <path>] [--delimiter <c>] [--encoding <name>] [--header=false]")
		os.Exit(1)
	}

	store, err := catalog.Open(*dbPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "open catalog: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	count, err := store.ImportCSV(*csvPath, catalog.ImportOptions{
		Delimiter: *delimiter,
		Encoding:  *encoding,
		HasHeader: *header,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "import: %v\n", err)
		os.Exit(1)
	}

	total, err := store.Count()
	if err != nil {
		fmt.Fprintf(os.Stderr, "count: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("imported %d products (%d total) -> %s\n", count, total, *dbPath)
}

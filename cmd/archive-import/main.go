// Command archive-import compiles the historical booking workbooks
// (.xlsx, one sheet per gîte) into the archives JSON file the server
// reads at reconciliation time. Headers are dropped; only columns A–I
// are kept.
package main

import (
	"flag"
	"log"

	"github.com/kervadec/gites-ledger/internal/archive"
)

func main() {
	var (
		inDir     = flag.String("in", "data-xlsx", "directory containing .xlsx workbooks")
		outFile   = flag.String("out", "archives/archives.json", "output archive file")
		maxSheets = flag.Int("sheets", 4, "number of sheets to read per workbook")
	)
	flag.Parse()

	data, err := archive.ConvertWorkbooks(*inDir, *maxSheets)
	if err != nil {
		log.Fatalf("Conversion failed: %v", err)
	}
	if err := archive.WriteFile(*outFile, data); err != nil {
		log.Fatalf("Write failed: %v", err)
	}

	total := 0
	for _, rows := range data {
		total += len(rows)
	}
	log.Printf("Wrote %s: %d properties, %d rows", *outFile, len(data), total)
}

// Command n2kgen generates a Go PGN registry package from a canboat-style
// PGNs XML catalog, for a chosen subset of PGN numbers.
package main

import (
	"flag"
	"log"
	"strconv"
	"strings"

	"github.com/aldas/go-n2k/internal/codegen"
)

// pgnList collects repeated -pgn flags into a slice, e.g.
// -pgn 127245 -pgn 127251.
type pgnList []uint32

func (p *pgnList) String() string {
	parts := make([]string, len(*p))
	for i, v := range *p {
		parts[i] = strconv.FormatUint(uint64(v), 10)
	}
	return strings.Join(parts, ",")
}

func (p *pgnList) Set(value string) error {
	n, err := strconv.ParseUint(value, 10, 32)
	if err != nil {
		return err
	}
	*p = append(*p, uint32(n))
	return nil
}

func main() {
	var pgns pgnList
	xmlPath := flag.String("xml", "", "path to a canboat-style PGNs XML catalog")
	flag.Var(&pgns, "pgn", "PGN number to generate a struct for, repeatable")
	outDir := flag.String("out", "./gen", "directory generated .go files are written into")
	pkgName := flag.String("pkg", "gen", "package name written at the top of generated files")
	flag.Parse()

	if *xmlPath == "" {
		log.Fatal("# missing -xml path to PGNs catalog\n")
	}
	if len(pgns) == 0 {
		log.Fatal("# at least one -pgn is required\n")
	}

	if err := codegen.Generate(codegen.Options{
		XMLPath: *xmlPath,
		Pgns:    pgns,
		OutDir:  *outDir,
		Package: *pkgName,
	}); err != nil {
		log.Fatal(err)
	}

	log.Printf("# generated %d PGN message types into %s\n", len(pgns), *outDir)
}

// orfmark scans a DNA sequence for open reading frames bounded by stop
// codons, trains two Markov models of nucleotide composition (a
// trusted model from long ORFs and a background model from short
// ORFs), and scores every ORF by the models' log-likelihood ratio to
// classify it as likely coding. When a GFF annotation file is given,
// the report compares the classification against the annotated CDS
// ends as ground truth.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"orfmark/annot"
	"orfmark/markov"
	"orfmark/report"
	"orfmark/scan"
	"orfmark/seqstore"
)

const maxWarnings = 10

var (
	trusted    = flag.Int("trusted", scan.DefaultConfig.TrustedMin, "ORFs strictly longer than this train the trusted model.")
	background = flag.Int("background", scan.DefaultConfig.BackgroundMax, "ORFs strictly shorter than this train the background model.")
	histName   = flag.String("hist", "", "Filename for a score histogram image. No image if empty.")
	outName    = flag.String("out", "", "Filename for the report. Defaults to stdout.")
	help       = flag.Bool("help", false, "Print this usage message.")
)

func usage() {
	fmt.Fprintf(os.Stderr, "usage: %s [flags] <sequence.fa> [annotation.gff]\n", os.Args[0])
	flag.PrintDefaults()
}

func main() {
	flag.Usage = usage
	flag.Parse()
	if *help {
		flag.Usage()
		os.Exit(0)
	}
	if flag.NArg() < 1 || flag.NArg() > 2 {
		flag.Usage()
		os.Exit(0)
	}

	store, warns, err := seqstore.Load(flag.Arg(0))
	if err != nil {
		log.Fatalf("could not load sequence %q: %v", flag.Arg(0), err)
	}
	fmt.Fprintf(os.Stderr, "read %d nucleotides from %q\n", store.Len(), flag.Arg(0))
	if len(warns) != 0 {
		fmt.Fprintf(os.Stderr, "coerced %d invalid characters to 'T':\n", len(warns))
		for i, w := range warns {
			if i == maxWarnings {
				fmt.Fprintf(os.Stderr, " ... and %d more\n", len(warns)-maxWarnings)
				break
			}
			fmt.Fprintf(os.Stderr, " %v\n", w)
		}
	}

	var ix *annot.Index
	if flag.NArg() == 2 {
		ix, err = annot.Load(flag.Arg(1))
		if err != nil {
			log.Fatalf("could not load annotation %q: %v", flag.Arg(1), err)
		}
		fmt.Fprintf(os.Stderr, "loaded %d CDS annotations from %q\n", ix.Len(), flag.Arg(1))
	}

	cfg := scan.Config{TrustedMin: *trusted, BackgroundMax: *background}
	res := scan.Scan(store, ix, cfg)

	p, q := markov.NewModel(), markov.NewModel()
	for _, o := range res.Trusted {
		p.Observe(store, o)
	}
	for _, o := range res.Background {
		q.Observe(store, o)
	}
	p.Normalize()
	q.Normalize()
	for _, o := range res.All {
		o.SetScore(markov.Score(p, q, store, o))
	}

	out := os.Stdout
	if *outName != "" {
		out, err = os.Create(*outName)
		if err != nil {
			log.Fatalf("could not create %q: %v", *outName, err)
		}
		defer out.Close()
	}
	if err := report.Write(out, report.Summarize(res, ix)); err != nil {
		log.Fatalf("failed to write report: %v", err)
	}

	if *histName != "" {
		if err := report.SaveHistogram(*histName, res); err != nil {
			log.Fatalf("failed to write histogram: %v", err)
		}
	}
}

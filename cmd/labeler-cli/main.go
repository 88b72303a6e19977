package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"text/tabwriter"

	"yashubustudio/labeler/labeler"
)

type cliOptions struct {
	configPath   string
	commentsPath string
	videosPath   string
	labelsPath   string
	outputPath   string
	stdout       bool
}

func main() {
	opts, err := parseFlags()
	if err != nil {
		log.Fatalf("labeler-cli: %v", err)
	}
	if err := run(opts); err != nil {
		log.Fatalf("labeler-cli: %v", err)
	}
}

func parseFlags() (cliOptions, error) {
	var opts cliOptions
	flag.StringVar(&opts.configPath, "config", "", "Path to config.json (default: ./config.json)")
	flag.StringVar(&opts.commentsPath, "comments", "", "Comments CSV/TSV file")
	flag.StringVar(&opts.videosPath, "videos", "", "Videos CSV/TSV file (optional, adds per-frame info)")
	flag.StringVar(&opts.labelsPath, "labels", "", "Previously saved output file to seed labels from (default: configured output path)")
	flag.StringVar(&opts.outputPath, "output", "", "Write the merged comments+label CSV to this path")
	flag.BoolVar(&opts.stdout, "stdout", false, "Print a per-video progress summary to STDOUT")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s --comments FILE [options]\n\n", filepath.Base(os.Args[0]))
		flag.PrintDefaults()
	}
	flag.Parse()

	opts.configPath = strings.TrimSpace(opts.configPath)
	opts.commentsPath = strings.TrimSpace(opts.commentsPath)
	opts.videosPath = strings.TrimSpace(opts.videosPath)
	opts.labelsPath = strings.TrimSpace(opts.labelsPath)
	opts.outputPath = strings.TrimSpace(opts.outputPath)

	if opts.commentsPath == "" {
		return opts, fmt.Errorf("--comments is required")
	}
	if opts.outputPath == "" && !opts.stdout {
		return opts, fmt.Errorf("nothing to do: pass --output and/or --stdout")
	}
	return opts, nil
}

func run(opts cliOptions) error {
	cfg, err := labeler.LoadConfig(opts.configPath)
	if err != nil {
		return err
	}
	cols := cfg.Columns

	comments, err := labeler.LoadComments(opts.commentsPath, cols)
	if err != nil {
		return err
	}

	var videos *labeler.Table
	if opts.videosPath != "" {
		videos, err = labeler.LoadVideos(opts.videosPath, cols)
		if err != nil {
			return err
		}
	}

	labelsPath := opts.labelsPath
	if labelsPath == "" {
		labelsPath = cfg.OutputPath
	}
	session := labeler.NewSession(cols)
	session.SetComments(comments)
	seeds, err := labeler.LoadSeedLabels(labelsPath, cols)
	if err != nil {
		fmt.Fprintf(os.Stderr, "labeler-cli: %v (continuing without seed labels)\n", err)
	}
	session.SeedLabels(seeds)

	if opts.stdout {
		if err := printSummary(os.Stdout, comments, videos, session, cols); err != nil {
			return err
		}
	}
	if opts.outputPath != "" {
		if err := labeler.SaveLabeled(opts.outputPath, comments, session.Store(), cols); err != nil {
			return err
		}
		fmt.Fprintf(os.Stderr, "labeler-cli: wrote %s (%d labeled of %d rows)\n",
			opts.outputPath, session.Store().Len(), comments.Len())
	}
	return nil
}

func printSummary(out *os.File, comments, videos *labeler.Table, session *labeler.Session, cols labeler.Columns) error {
	videoCol := comments.ColumnIndex(cols.Video)
	totals := make(map[string]int)
	labeled := make(map[string]int)
	order := make([]string, 0)
	for i := range comments.Rows {
		id := comments.Cell(i, videoCol)
		if _, seen := totals[id]; !seen {
			order = append(order, id)
		}
		totals[id]++
		if _, ok := session.Store().Get(i); ok {
			labeled[id]++
		}
	}

	frames := make(map[string][]string)
	if videos != nil {
		vCol := videos.ColumnIndex(cols.Video)
		fCol := videos.ColumnIndex(cols.Frame)
		for i := range videos.Rows {
			id := videos.Cell(i, vCol)
			frame := videos.Cell(i, fCol)
			if frame == "" || slices.Contains(frames[id], frame) {
				continue
			}
			frames[id] = append(frames[id], frame)
		}
	}

	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "videoId\tframes\ttotal\tlabeled\tprogress")
	var total, done int
	for _, id := range order {
		pct := 0.0
		if totals[id] > 0 {
			pct = float64(labeled[id]) / float64(totals[id]) * 100
		}
		fmt.Fprintf(w, "%s\t%s\t%d\t%d\t%.1f%%\n",
			id, strings.Join(frames[id], ","), totals[id], labeled[id], pct)
		total += totals[id]
		done += labeled[id]
	}
	pct := 0.0
	if total > 0 {
		pct = float64(done) / float64(total) * 100
	}
	fmt.Fprintf(w, "(all)\t\t%d\t%d\t%.1f%%\n", total, done, pct)
	return w.Flush()
}

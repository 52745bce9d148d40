package cmd

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/abhishekvash/bare-minimum-theory/bucket"
	"github.com/abhishekvash/bare-minimum-theory/chord"
	"github.com/abhishekvash/bare-minimum-theory/logging"
	"github.com/abhishekvash/bare-minimum-theory/midi"
	"github.com/abhishekvash/bare-minimum-theory/util"
	"github.com/spf13/cobra"
	"gitlab.com/gomidi/midi/v2/smf"
)

var (
	analyzeMax     int
	analyzeSummary bool
)

// summarize prints how often each chord sounds in s.
func summarize(w io.Writer, s *smf.SMF) {
	for _, b := range bucket.Fill(chord.GetSnapshots(s)) {
		fmt.Fprintf(w, "%-8s %v\n", b.Name, len(b.Offsets))
	}
}

// analyze prints one line per distinct chord change in s.
func analyze(w io.Writer, s *smf.SMF) {
	var last string
	for _, snap := range chord.GetSnapshots(s) {
		if len(snap.Notes) < 2 {
			continue
		}
		key := chord.CreateChordKey(snap.Notes)
		if key == last {
			continue
		}
		last = key
		offset := time.Duration(snap.Offset) * time.Microsecond
		fmt.Fprintf(w, "%v\t", offset.Round(time.Millisecond))
		describeHeld(w, snap.Notes)
	}
}

var analyzeCmd = &cobra.Command{
	Use:   "analyze <file-or-dir>",
	Short: "Names the chords in MIDI files",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		paths := []string{args[0]}
		if info, err := os.Stat(args[0]); err == nil && info.IsDir() {
			if paths, err = util.GatherAllMidiPaths(args[0], analyzeMax); err != nil {
				return err
			}
		}

		out := cmd.OutOrStdout()
		for i, path := range paths {
			s, err := midi.ReadMidiFile(path)
			if err != nil {
				logging.Warn("skipping midi file", "path", path, "err", err)
				continue
			}
			fmt.Fprintf(out, "== %v (%v of %v)\n", path, i+1, len(paths))
			if analyzeSummary {
				summarize(out, s)
			} else {
				analyze(out, s)
			}
		}
		return nil
	},
}

func init() {
	analyzeCmd.Flags().IntVar(&analyzeMax, "max", 0, "maximum number of files to read from a directory (0 = all)")
	analyzeCmd.Flags().BoolVar(&analyzeSummary, "summary", false, "count chords instead of listing them in order")
	rootCmd.AddCommand(analyzeCmd)
}

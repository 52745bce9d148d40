package cmd

import (
	"fmt"
	"io"

	"github.com/abhishekvash/bare-minimum-theory/chord"
	"github.com/abhishekvash/bare-minimum-theory/constants"
	"github.com/abhishekvash/bare-minimum-theory/file"
	"github.com/abhishekvash/bare-minimum-theory/model"
	"github.com/spf13/cobra"
)

type chordFlags struct {
	root      int
	quality   string
	inversion int
	voicing   string
	octave    int
}

func (f *chordFlags) register(cmd *cobra.Command) {
	cmd.Flags().IntVar(&f.root, "root", constants.MiddleC, "root pitch number (60 = middle C)")
	cmd.Flags().StringVarP(&f.quality, "quality", "q", "", "chord quality, e.g. m7 (empty = major triad)")
	cmd.Flags().IntVarP(&f.inversion, "inversion", "i", 0, "inversion count")
	cmd.Flags().StringVarP(&f.voicing, "voicing", "v", "", "close, open, drop2, drop3 or wide (default from config)")
	cmd.Flags().IntVarP(&f.octave, "octave", "o", 0, "octave shift added to the config default")
}

func (f *chordFlags) chord() model.Chord {
	c := model.Chord{
		Root:      f.root,
		Quality:   model.Quality(f.quality),
		Inversion: f.inversion,
		Voicing:   model.Voicing(f.voicing),
		Octave:    f.octave,
	}
	return chord.WithDefaults(c, cfg.Chord.Voicing, cfg.Chord.Octave)
}

// applyDefaults fills missing voicings and shifts every chord of p by octaves.
func applyDefaults(p model.Progression, voicing model.Voicing, octaves int) model.Progression {
	for i, c := range p.Chords {
		if c != nil {
			filled := chord.WithDefaults(*c, voicing, octaves)
			p.Chords[i] = &filled
		}
	}
	return p
}

// loadProgression reads path and applies the config chord defaults. Library
// imports pass octaves 0 so a stored document keeps its own octaves and is
// not shifted twice when read back.
func loadProgression(path string, octaves int) (model.Progression, error) {
	p, err := file.LoadProgression(path)
	if err != nil {
		return p, err
	}
	return applyDefaults(p, cfg.Chord.Voicing, octaves), nil
}

func describeChord(w io.Writer, c model.Chord) error {
	notes, err := chord.GetChordNotes(c)
	if err != nil {
		return err
	}
	tooltip, err := chord.GetChordTooltip(c)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "%s\t%v", chord.GetChordName(c), notes)
	if tooltip != "" {
		fmt.Fprintf(w, "\t%s", tooltip)
	}
	fmt.Fprintln(w)
	return nil
}

var notesFlags chordFlags

var notesCmd = &cobra.Command{
	Use:   "notes [progression-file]",
	Short: "Prints the pitches of a chord or progression",
	Long: `Prints the name, pitch numbers and inversion of a chord given by flags,
or of every slot in a YAML/JSON progression file.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		if len(args) == 0 {
			return describeChord(out, notesFlags.chord())
		}
		p, err := loadProgression(args[0], cfg.Chord.Octave)
		if err != nil {
			return err
		}
		for i, c := range p.Chords {
			fmt.Fprintf(out, "%d\t", i+1)
			if c == nil {
				fmt.Fprintln(out, "rest")
				continue
			}
			if err := describeChord(out, *c); err != nil {
				return fmt.Errorf("slot %d: %w", i+1, err)
			}
		}
		return nil
	},
}

var qualitiesCmd = &cobra.Command{
	Use:   "qualities",
	Short: "Lists chord qualities and their intervals",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		for _, q := range chord.Qualities() {
			iv, _ := chord.Lookup(q)
			name := string(q)
			if name == "" {
				name = "(major)"
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%-8s %v\n", name, iv)
		}
	},
}

func init() {
	notesFlags.register(notesCmd)
	rootCmd.AddCommand(notesCmd)
	rootCmd.AddCommand(qualitiesCmd)
}

package cmd

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/abhishekvash/bare-minimum-theory/chord"
	"github.com/abhishekvash/bare-minimum-theory/constants"
	"github.com/abhishekvash/bare-minimum-theory/midi"
	"github.com/abhishekvash/bare-minimum-theory/model"
	"github.com/abhishekvash/bare-minimum-theory/sample"
	"github.com/spf13/cobra"
	"gitlab.com/gomidi/midi/v2/smf"
)

var (
	exportFlags chordFlags
	exportOut   string
	exportBeats int
)

var exportCmd = &cobra.Command{
	Use:   "export [progression-file]",
	Short: "Writes a chord or progression as a MIDI file",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var s *smf.SMF
		var name string
		if len(args) == 0 {
			c := exportFlags.chord()
			name = chord.GetChordName(c)
			var err error
			if s, err = chordSMF(c, exportBeats); err != nil {
				return err
			}
		} else {
			p, err := loadProgression(args[0], cfg.Chord.Octave)
			if err != nil {
				return err
			}
			name = p.Name
			if s, err = progressionSMF(p, exportBeats); err != nil {
				return err
			}
		}

		out := exportOut
		if out == "" {
			out = filepath.Join(constants.GetExportDir(), exportFilename(name))
		}
		if err := midi.WriteMidiFile(out, s); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Wrote %v\n", out)
		return nil
	},
}

func exportFilename(name string) string {
	name = strings.NewReplacer("#", "s", "/", "_", " ", "_").Replace(name)
	if name == "" {
		name = "progression"
	}
	return name + ".mid"
}

func sampleOptions(name string, bpm, beats int) sample.Options {
	if bpm <= 0 {
		bpm = cfg.Playback.BPM
	}
	if beats <= 0 {
		beats = cfg.Playback.BeatsPerChord
	}
	return sample.Options{
		Name:     name,
		BPM:      bpm,
		Beats:    beats,
		Velocity: cfg.Playback.Velocity,
		Channel:  cfg.Playback.Channel,
	}
}

func chordSMF(c model.Chord, beats int) (*smf.SMF, error) {
	notes, err := chord.GetChordNotes(c)
	if err != nil {
		return nil, err
	}
	return sample.CreateChord(notes, sampleOptions(chord.GetChordName(c), 0, beats))
}

func progressionSMF(p model.Progression, beats int) (*smf.SMF, error) {
	slots, err := chord.ProgressionNotes(p)
	if err != nil {
		return nil, err
	}
	return sample.Create(slots, sampleOptions(p.Name, p.BPM, beats))
}

func init() {
	exportFlags.register(exportCmd)
	exportCmd.Flags().StringVar(&exportOut, "out", "", "output .mid path (default <name>.mid in BMT_EXPORT_DIR)")
	exportCmd.Flags().IntVar(&exportBeats, "beats", 0, "beats per chord (default from config)")
	rootCmd.AddCommand(exportCmd)
}

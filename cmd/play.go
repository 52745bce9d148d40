package cmd

import (
	"context"
	"os"
	"os/signal"

	"github.com/abhishekvash/bare-minimum-theory/chord"
	"github.com/abhishekvash/bare-minimum-theory/logging"
	"github.com/abhishekvash/bare-minimum-theory/midi"
	"github.com/abhishekvash/bare-minimum-theory/model"
	"github.com/spf13/cobra"
	gomidi "gitlab.com/gomidi/midi/v2"
	_ "gitlab.com/gomidi/midi/v2/drivers/rtmididrv" // autoregisters driver
)

var (
	playFlags chordFlags
	playPort  string
	playBeats int
)

var playCmd = &cobra.Command{
	Use:   "play [progression-file]",
	Short: "Plays a chord or progression on a MIDI output",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		defer gomidi.CloseDriver()

		bpm := cfg.Playback.BPM
		var slots []model.Notes
		if len(args) == 0 {
			notes, err := chord.GetChordNotes(playFlags.chord())
			if err != nil {
				return err
			}
			slots = []model.Notes{notes}
		} else {
			p, err := loadProgression(args[0], cfg.Chord.Octave)
			if err != nil {
				return err
			}
			if p.BPM > 0 {
				bpm = p.BPM
			}
			if slots, err = chord.ProgressionNotes(p); err != nil {
				return err
			}
		}

		port := playPort
		if port == "" {
			port = cfg.Playback.OutputPort
		}
		player, err := midi.OpenPlayer(port, cfg.Playback.Channel, cfg.Playback.Velocity)
		if err != nil {
			return err
		}
		defer player.Close()

		beats := playBeats
		if beats <= 0 {
			beats = cfg.Playback.BeatsPerChord
		}
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()

		logging.Info("playing", "slots", len(slots), "bpm", bpm, "beats", beats)
		err = player.PlayProgression(ctx, slots, midi.BeatsDuration(bpm, beats))
		if err == context.Canceled {
			return nil
		}
		return err
	},
}

func init() {
	playFlags.register(playCmd)
	playCmd.Flags().StringVar(&playPort, "port", "", "MIDI output port name (default from config, else first port)")
	playCmd.Flags().IntVar(&playBeats, "beats", 0, "beats per chord (default from config)")
	rootCmd.AddCommand(playCmd)
}

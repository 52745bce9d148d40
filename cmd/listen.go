package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"sync"
	"time"

	"github.com/abhishekvash/bare-minimum-theory/chord"
	"github.com/abhishekvash/bare-minimum-theory/logging"
	"github.com/abhishekvash/bare-minimum-theory/model"
	"github.com/bep/debounce"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	gomidi "gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/drivers"
)

var (
	listenPort     string
	listenDebounce time.Duration
)

// heldNotes tracks keys currently down on a MIDI input.
type heldNotes struct {
	mu    sync.Mutex
	notes map[int]bool
}

func newHeldNotes() *heldNotes {
	return &heldNotes{notes: make(map[int]bool)}
}

// handle applies msg and reports whether the held set changed.
func (h *heldNotes) handle(msg gomidi.Message) bool {
	var ch, key, vel uint8
	h.mu.Lock()
	defer h.mu.Unlock()
	switch {
	case msg.GetNoteStart(&ch, &key, &vel):
		h.notes[int(key)] = true
		return true
	case msg.GetNoteEnd(&ch, &key):
		delete(h.notes, int(key))
		return true
	}
	return false
}

func (h *heldNotes) snapshot() model.Notes {
	h.mu.Lock()
	defer h.mu.Unlock()
	res := make(model.Notes, 0, len(h.notes))
	for n := range h.notes {
		res = append(res, n)
	}
	return res
}

// describeHeld names a held note set, or lists the notes when nothing matches.
func describeHeld(w io.Writer, notes model.Notes) {
	if len(notes) == 0 {
		return
	}
	c, ok := chord.Identify(notes)
	if !ok {
		fmt.Fprintf(w, "?\t%s\n", chord.CreateChordKey(notes))
		return
	}
	tooltip, _ := chord.GetChordTooltip(c)
	fmt.Fprintf(w, "%s\t%s", chord.GetChordName(c), chord.CreateChordKey(notes))
	if tooltip != "" {
		fmt.Fprintf(w, "\t%s", tooltip)
	}
	fmt.Fprintln(w)
}

var listenCmd = &cobra.Command{
	Use:   "listen",
	Short: "Names chords played on a MIDI input",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		defer gomidi.CloseDriver()

		port := listenPort
		if port == "" {
			port = cfg.Playback.InputPort
		}
		var in drivers.In
		var err error
		if port == "" {
			in, err = gomidi.InPort(0)
		} else {
			in, err = gomidi.FindInPort(port)
		}
		if err != nil {
			return errors.Wrapf(err, "finding midi input %q", port)
		}

		held := newHeldNotes()
		out := cmd.OutOrStdout()
		debounced := debounce.New(listenDebounce)
		stopListening, err := gomidi.ListenTo(in, func(msg gomidi.Message, timestampms int32) {
			if held.handle(msg) {
				debounced(func() {
					describeHeld(out, held.snapshot())
				})
			}
		})
		if err != nil {
			return errors.Wrap(err, "listening to midi input")
		}
		defer stopListening()

		logging.Info("listening", "port", in.String())
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		<-ctx.Done()
		return nil
	},
}

func init() {
	listenCmd.Flags().StringVar(&listenPort, "port", "", "MIDI input port name (default from config, else first port)")
	listenCmd.Flags().DurationVar(&listenDebounce, "debounce", 80*time.Millisecond, "wait this long after the last key change before naming")
	rootCmd.AddCommand(listenCmd)
}

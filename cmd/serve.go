package cmd

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/abhishekvash/bare-minimum-theory/chord"
	"github.com/abhishekvash/bare-minimum-theory/config"
	"github.com/abhishekvash/bare-minimum-theory/db"
	"github.com/abhishekvash/bare-minimum-theory/logging"
	"github.com/abhishekvash/bare-minimum-theory/midi"
	"github.com/abhishekvash/bare-minimum-theory/model"
	"github.com/gorilla/mux"
	"github.com/rs/cors"
	"github.com/spf13/cobra"
	"gitlab.com/gomidi/midi/v2/smf"
)

var serveAddr string

type server struct {
	cfg   *config.Config
	store db.Store
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, model.ErrorResponse{Error: err.Error()})
}

// statusFor maps chord and library errors to HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, db.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, chord.ErrInvalidQuality),
		errors.Is(err, chord.ErrInvalidInversion),
		errors.Is(err, chord.ErrInvalidVoicing):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func (s *server) withDefaults(c model.Chord) model.Chord {
	return chord.WithDefaults(c, s.cfg.Chord.Voicing, s.cfg.Chord.Octave)
}

// progressionWithDefaults shifts by the config octave only when shift is set.
// Saved progressions keep the octaves they were sent with.
func (s *server) progressionWithDefaults(p model.Progression, shift bool) model.Progression {
	octaves := 0
	if shift {
		octaves = s.cfg.Chord.Octave
	}
	return applyDefaults(p, s.cfg.Chord.Voicing, octaves)
}

func (s *server) handleQualities(w http.ResponseWriter, r *http.Request) {
	res := make([]model.QualityInfo, 0)
	for _, q := range chord.Qualities() {
		iv, _ := chord.Lookup(q)
		res = append(res, model.QualityInfo{Quality: q, Intervals: iv})
	}
	writeJSON(w, http.StatusOK, res)
}

func (s *server) handleChord(w http.ResponseWriter, r *http.Request) {
	var c model.Chord
	if err := json.NewDecoder(r.Body).Decode(&c); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Errorf("could not decode chord: %w", err))
		return
	}
	c = s.withDefaults(c)

	notes, err := chord.GetChordNotes(c)
	if err != nil {
		writeError(w, statusFor(err), err)
		return
	}
	tooltip, err := chord.GetChordTooltip(c)
	if err != nil {
		writeError(w, statusFor(err), err)
		return
	}
	writeJSON(w, http.StatusOK, model.ChordResponse{
		Chord:   c,
		Notes:   notes,
		Name:    chord.GetChordName(c),
		Tooltip: tooltip,
	})
}

func (s *server) handleExport(w http.ResponseWriter, r *http.Request) {
	var body model.ExportRequestBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Errorf("could not decode export request: %w", err))
		return
	}

	var sm *smf.SMF
	var name string
	var err error
	switch {
	case body.Chord != nil:
		c := s.withDefaults(*body.Chord)
		name = chord.GetChordName(c)
		sm, err = chordSMF(c, body.Beats)
	case body.Progression != nil:
		p := s.progressionWithDefaults(*body.Progression, true)
		name = p.Name
		sm, err = progressionSMF(p, body.Beats)
	default:
		writeError(w, http.StatusBadRequest, errors.New("export needs a chord or a progression"))
		return
	}
	if err != nil {
		writeError(w, statusFor(err), err)
		return
	}

	var buf bytes.Buffer
	if err := midi.WriteMidi(&buf, sm); err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	w.Header().Set("Content-Type", "audio/midi")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", exportFilename(name)))
	w.Write(buf.Bytes())
}

func (s *server) handleListProgressions(w http.ResponseWriter, r *http.Request) {
	list, err := s.store.List(r.Context())
	if err != nil {
		writeError(w, statusFor(err), err)
		return
	}
	writeJSON(w, http.StatusOK, list)
}

func (s *server) handleSaveProgression(w http.ResponseWriter, r *http.Request) {
	var p model.Progression
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Errorf("could not decode progression: %w", err))
		return
	}
	p = s.progressionWithDefaults(p, false)
	if _, err := chord.ProgressionNotes(p); err != nil {
		writeError(w, statusFor(err), err)
		return
	}
	saved, err := s.store.Save(r.Context(), p)
	if err != nil {
		writeError(w, statusFor(err), err)
		return
	}
	writeJSON(w, http.StatusCreated, saved)
}

func (s *server) handleGetProgression(w http.ResponseWriter, r *http.Request) {
	p, err := s.store.Get(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeError(w, statusFor(err), err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

func (s *server) handleDeleteProgression(w http.ResponseWriter, r *http.Request) {
	if err := s.store.Delete(r.Context(), mux.Vars(r)["id"]); err != nil {
		writeError(w, statusFor(err), err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

func logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		logging.HTTPRequest(r.Method, r.URL.Path, rec.status, time.Since(start))
	})
}

// NewHandler returns the API with CORS and request logging applied.
func NewHandler(c *config.Config, store db.Store) http.Handler {
	s := &server{cfg: c, store: store}
	router := mux.NewRouter().StrictSlash(true)
	router.Use(logRequests)
	router.HandleFunc("/qualities", s.handleQualities).Methods("GET")
	router.HandleFunc("/chord", s.handleChord).Methods("POST")
	router.HandleFunc("/export", s.handleExport).Methods("POST")
	router.HandleFunc("/progressions", s.handleListProgressions).Methods("GET")
	router.HandleFunc("/progressions", s.handleSaveProgression).Methods("POST")
	router.HandleFunc("/progressions/{id}", s.handleGetProgression).Methods("GET")
	router.HandleFunc("/progressions/{id}", s.handleDeleteProgression).Methods("DELETE")

	return cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodDelete},
		AllowedHeaders: []string{"Content-Type"},
	}).Handler(router)
}

func openStore(c *config.Config) (db.Store, error) {
	switch c.Library.Backend {
	case config.BackendDynamoDB:
		d := c.Library.DynamoDB
		return db.NewDynamoStore(d.Endpoint, d.Region, d.Table)
	case config.BackendFile, "":
		return db.NewFileStore(c.LibraryPath()), nil
	default:
		return nil, fmt.Errorf("unknown library backend %q", c.Library.Backend)
	}
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serves the chord API over HTTP",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStore(cfg)
		if err != nil {
			return err
		}
		addr := serveAddr
		if addr == "" {
			addr = cfg.Server.Addr
		}
		logging.Info("serving", "addr", addr, "library", cfg.Library.Backend)
		return http.ListenAndServe(addr, NewHandler(cfg, store))
	},
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "listen address (default from config)")
	rootCmd.AddCommand(serveCmd)
}

package db

import (
	"context"
	"os"
	"sort"
	"sync"

	"github.com/abhishekvash/bare-minimum-theory/model"
	"github.com/abhishekvash/bare-minimum-theory/util"
	"github.com/pkg/errors"
)

type library = map[string]record

// FileStore keeps the whole library in one gob file.
type FileStore struct {
	path string
	mu   sync.Mutex
}

func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

func (s *FileStore) load() (library, error) {
	lib, err := util.ReadBinary[library](s.path)
	if err != nil {
		if os.IsNotExist(errors.Cause(err)) {
			return make(library), nil
		}
		return nil, err
	}
	if lib == nil {
		lib = make(library)
	}
	return lib, nil
}

func (s *FileStore) Save(_ context.Context, p model.Progression) (model.Progression, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	lib, err := s.load()
	if err != nil {
		return p, err
	}
	p = ensureID(p)
	lib[p.ID] = toRecord(p)
	return p, util.CreateBinary(s.path, lib)
}

func (s *FileStore) Get(_ context.Context, id string) (model.Progression, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	lib, err := s.load()
	if err != nil {
		return model.Progression{}, err
	}
	r, ok := lib[id]
	if !ok {
		return model.Progression{}, ErrNotFound
	}
	return fromRecord(r), nil
}

func (s *FileStore) List(_ context.Context) ([]model.ProgressionSummary, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	lib, err := s.load()
	if err != nil {
		return nil, err
	}
	res := make([]model.ProgressionSummary, 0, len(lib))
	for _, id := range util.GetSortedKeys(lib) {
		res = append(res, summarize(lib[id]))
	}
	sort.SliceStable(res, func(i, j int) bool {
		return res[i].Name < res[j].Name
	})
	return res, nil
}

func (s *FileStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	lib, err := s.load()
	if err != nil {
		return err
	}
	if _, ok := lib[id]; !ok {
		return ErrNotFound
	}
	delete(lib, id)
	return util.CreateBinary(s.path, lib)
}

package store

import (
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"github.com/qri-io/jsonschema"
	"golang.org/x/sync/errgroup"

	"github.com/garnizeh/timetrack/internal/models"
)

// File names of the three mock collections inside the data directory.
const (
	specialistsFile = "specialists.json"
	projectsFile    = "projects.json"
	periodsFile     = "payment_periods.json"
)

// Store holds the three mock collections in memory. It is built by the
// composition root and loaded once; after Load the data is read-only, so
// concurrent request handling needs no further locking.
type Store struct {
	dir     string
	log     *slog.Logger
	schemas *schemaSet
	roles   map[models.Role]struct{}

	once        sync.Once
	loadErr     error
	specialists []models.Specialist
	projects    []models.Project
	periods     []models.PaymentPeriod
}

// New builds an unloaded store reading from dir. The roles catalog bounds
// which specialist roles the store accepts at load time; an empty catalog
// means every known role. No I/O happens here.
func New(dir string, roles []models.Role, logger *slog.Logger) (*Store, error) {
	schemas, err := compileSchemas()
	if err != nil {
		return nil, err
	}
	if logger == nil {
		logger = slog.Default()
	}
	if len(roles) == 0 {
		roles = models.Roles()
	}
	roleSet := make(map[models.Role]struct{}, len(roles))
	for _, r := range roles {
		roleSet[r] = struct{}{}
	}

	return &Store{dir: dir, log: logger, schemas: schemas, roles: roleSet}, nil
}

// Load reads the three collections from disk. It is idempotent and safe to
// call from concurrent goroutines; only the first call does any work. A
// missing or invalid file is logged and leaves that collection empty rather
// than failing startup; the only reported error is context cancellation.
func (s *Store) Load(ctx context.Context) error {
	s.once.Do(func() {
		g, gctx := errgroup.WithContext(ctx)
		g.Go(func() error {
			s.specialists = s.checkRoles(loadCollection[models.Specialist](gctx, s.log, filepath.Join(s.dir, specialistsFile), s.schemas.specialists))
			return gctx.Err()
		})
		g.Go(func() error {
			s.projects = loadCollection[models.Project](gctx, s.log, filepath.Join(s.dir, projectsFile), s.schemas.projects)
			return gctx.Err()
		})
		g.Go(func() error {
			s.periods = loadCollection[models.PaymentPeriod](gctx, s.log, filepath.Join(s.dir, periodsFile), s.schemas.periods)
			return gctx.Err()
		})
		s.loadErr = g.Wait()
	})

	return s.loadErr
}

// checkRoles drops the specialist collection when any record carries a role
// outside the configured catalog, mirroring how other invalid records are
// handled.
func (s *Store) checkRoles(specialists []models.Specialist) []models.Specialist {
	for _, sp := range specialists {
		if _, ok := s.roles[sp.Role]; !ok {
			s.log.Error("specialist role outside configured catalog, collection left empty",
				slog.String("specialist_id", sp.ID),
				slog.String("role", string(sp.Role)))
			return nil
		}
	}

	return specialists
}

type validator interface {
	Validate() error
}

func loadCollection[T validator](ctx context.Context, log *slog.Logger, path string, schema *jsonschema.Schema) []T {
	b, err := os.ReadFile(path)
	if err != nil {
		log.Warn("mock data file unavailable, collection left empty",
			slog.String("path", path), slog.Any("err", err))
		return nil
	}

	verrs, err := schema.ValidateBytes(ctx, b)
	if err != nil {
		log.Error("mock data is not valid JSON, collection left empty",
			slog.String("path", path), slog.Any("err", err))
		return nil
	}
	if len(verrs) > 0 {
		for _, v := range verrs {
			log.Error("mock data failed schema validation",
				slog.String("path", path),
				slog.String("location", v.PropertyPath),
				slog.String("message", v.Message))
		}
		return nil
	}

	var out []T
	if err := json.Unmarshal(b, &out); err != nil {
		log.Error("mock data decode failed, collection left empty",
			slog.String("path", path), slog.Any("err", err))
		return nil
	}
	for _, rec := range out {
		if err := rec.Validate(); err != nil {
			log.Error("invalid record in mock data, collection left empty",
				slog.String("path", path), slog.Any("err", err))
			return nil
		}
	}

	return out
}

// The accessors below hand out the store's backing data directly. The data
// is immutable once Load returns, so callers must treat what they receive as
// read-only.

// Specialists returns the full specialist catalog.
func (s *Store) Specialists() []models.Specialist { return s.specialists }

// Projects returns the full project catalog.
func (s *Store) Projects() []models.Project { return s.projects }

// Periods returns every payment period.
func (s *Store) Periods() []models.PaymentPeriod { return s.periods }

// Specialist looks a specialist up by id.
func (s *Store) Specialist(id string) (models.Specialist, bool) {
	for _, sp := range s.specialists {
		if sp.ID == id {
			return sp, true
		}
	}

	return models.Specialist{}, false
}

// Project looks a project up by id.
func (s *Store) Project(id string) (models.Project, bool) {
	for _, p := range s.projects {
		if p.ID == id {
			return p, true
		}
	}

	return models.Project{}, false
}

// Period looks a payment period up by id.
func (s *Store) Period(id string) (models.PaymentPeriod, bool) {
	for _, p := range s.periods {
		if p.ID == id {
			return p, true
		}
	}

	return models.PaymentPeriod{}, false
}

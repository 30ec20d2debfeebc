package persistence

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strconv"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/grupo-altia/accessdesk/modules/catalog/domain/matrix"
	"github.com/grupo-altia/accessdesk/modules/catalog/infrastructure/persistence/models"
)

// Store owns the two persisted documents: the entity catalog and the
// position-to-system matrix. Both are small human-diffable JSON files,
// loaded once at startup and rewritten after every successful mutation.
// A missing or malformed file degrades to a safe default with a logged
// warning; a failed write always propagates to the mutating caller.
type Store struct {
	catalogPath string
	matrixPath  string
	log         *logrus.Logger

	catalog *models.CatalogDocument
	matrix  matrix.Assignments
}

func NewStore(catalogPath, matrixPath string, log *logrus.Logger) *Store {
	return &Store{
		catalogPath: catalogPath,
		matrixPath:  matrixPath,
		log:         log,
		catalog:     &models.CatalogDocument{},
		matrix:      matrix.Assignments{},
	}
}

func (s *Store) Load() {
	s.catalog = s.loadCatalog()
	s.matrix = s.loadMatrix()
}

func (s *Store) loadCatalog() *models.CatalogDocument {
	doc := &models.CatalogDocument{}
	data, err := os.ReadFile(s.catalogPath)
	if err != nil {
		if !os.IsNotExist(err) {
			s.log.WithError(err).Warnf("catalog file %s unreadable, starting empty", s.catalogPath)
		}
		return doc
	}
	if err := json.Unmarshal(data, doc); err != nil {
		s.log.WithError(err).Warnf("catalog file %s malformed, starting empty", s.catalogPath)
		return &models.CatalogDocument{}
	}
	return doc
}

func (s *Store) loadMatrix() matrix.Assignments {
	out := matrix.Assignments{}
	data, err := os.ReadFile(s.matrixPath)
	if err != nil {
		if !os.IsNotExist(err) {
			s.log.WithError(err).Warnf("matrix file %s unreadable, starting empty", s.matrixPath)
		}
		return out
	}
	doc := models.MatrixDocument{}
	if err := json.Unmarshal(data, &doc); err != nil {
		s.log.WithError(err).Warnf("matrix file %s malformed, starting empty", s.matrixPath)
		return out
	}
	for key, ids := range doc {
		positionID, err := strconv.Atoi(key)
		if err != nil {
			s.log.Warnf("matrix file %s: dropping non-numeric position key %q", s.matrixPath, key)
			continue
		}
		out[positionID] = matrix.Normalize(ids)
	}
	return out
}

func (s *Store) Catalog() *models.CatalogDocument {
	return s.catalog
}

func (s *Store) Matrix() matrix.Assignments {
	return s.matrix
}

// SaveCatalog writes the catalog document. On a cascading delete this runs
// before SaveMatrix so a crash between the two leaves only harmless
// dangling matrix ids, which loads treat as absent.
func (s *Store) SaveCatalog() error {
	if err := writeJSON(s.catalogPath, s.catalog); err != nil {
		return errors.Wrapf(err, "saving catalog %s", s.catalogPath)
	}
	return nil
}

func (s *Store) SaveMatrix() error {
	doc := make(models.MatrixDocument, len(s.matrix))
	for positionID, ids := range s.matrix {
		doc[strconv.Itoa(positionID)] = models.IDList(matrix.Normalize(ids))
	}
	if err := writeJSON(s.matrixPath, doc); err != nil {
		return errors.Wrapf(err, "saving matrix %s", s.matrixPath)
	}
	return nil
}

func writeJSON(path string, v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	data = append(data, '\n')
	dir := filepath.Dir(path)
	if dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return err
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return err
	}
	if err := os.Rename(tmpName, path); err != nil {
		_ = os.Remove(tmpName)
		return err
	}
	return nil
}

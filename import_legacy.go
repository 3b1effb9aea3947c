package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/rpupo63/portfolio-cms-backend/database"
	"github.com/rpupo63/portfolio-cms-backend/models"
)

// importLegacyJSON bulk-loads the pre-database site content (one JSON array
// per resource) into the store. Missing files are skipped; ids are reassigned
// by the store. Tables load concurrently since no rows reference each other.
func importLegacyJSON(db database.Database, dir string) error {
	var g errgroup.Group

	g.Go(func() error {
		return importLegacyFile(filepath.Join(dir, "projects.json"), func(p *models.Project) error {
			p.ID = 0
			if p.Technologies == nil {
				p.Technologies = models.StringList{}
			}
			return db.ProjectRepo().Add(p)
		})
	})

	g.Go(func() error {
		return importLegacyFile(filepath.Join(dir, "blogs.json"), func(b *models.Blog) error {
			b.ID = 0
			if b.AllowComments == nil {
				allow := true
				b.AllowComments = &allow
			}
			return db.BlogRepo().Add(b)
		})
	})

	g.Go(func() error {
		return importLegacyFile(filepath.Join(dir, "certifications.json"), func(c *models.Certification) error {
			c.ID = 0
			if c.Skills == nil {
				c.Skills = models.StringList{}
			}
			return db.CertificationRepo().Add(c)
		})
	})

	g.Go(func() error {
		return importLegacyFile(filepath.Join(dir, "emails.json"), func(e *models.Email) error {
			e.ID = 0
			if e.Status == "" {
				e.Status = "unread"
			}
			return db.EmailRepo().Add(e)
		})
	})

	g.Go(func() error {
		return importLegacyFile(filepath.Join(dir, "categories.json"), func(c *models.Category) error {
			c.ID = 0
			return db.CategoryRepo().Add(c)
		})
	})

	return g.Wait()
}

// importLegacyFile parses one JSON array file and inserts each record.
func importLegacyFile[T any](path string, insert func(*T) error) error {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		log.Warn().Str("file", filepath.Base(path)).Msg("Legacy file not found, skipping")
		return nil
	}
	if err != nil {
		return err
	}

	var records []T
	if err := json.Unmarshal(data, &records); err != nil {
		return fmt.Errorf("failed to parse %s: %w", filepath.Base(path), err)
	}

	for i := range records {
		if err := insert(&records[i]); err != nil {
			return fmt.Errorf("failed to insert record %d from %s: %w", i, filepath.Base(path), err)
		}
	}

	log.Info().Int("count", len(records)).Str("file", filepath.Base(path)).Msg("Imported legacy records")
	return nil
}

package cmd

import (
	"context"
	"io"
	"log"
	"os"

	"github.com/alexiusacademia/framesec/internal/diag"
	"github.com/alexiusacademia/framesec/internal/native"
	"github.com/alexiusacademia/framesec/internal/native/memstore"
	"github.com/alexiusacademia/framesec/internal/native/sqlstore"
	"github.com/alexiusacademia/framesec/internal/vendordb"
)

// session is an opened model file held in memory for one command.
type session struct {
	repo  *sqlstore.Repo
	store *memstore.Store
	close func() error
}

func openSession(ctx context.Context) (*session, error) {
	db, err := sqlstore.Open(sqlstore.Config{Path: cfg.ModelPath})
	if err != nil {
		return nil, err
	}
	repo := sqlstore.NewRepo(db)
	store, err := repo.Load(ctx)
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	return &session{repo: repo, store: store, close: db.Close}, nil
}

func (s *session) save(ctx context.Context) error {
	return s.repo.Save(ctx, s.store)
}

// newSink logs diagnostics to stderr unless quiet.
func newSink() *diag.Recorder {
	out := io.Writer(os.Stderr)
	if cfg.Quiet {
		out = io.Discard
	}
	return diag.NewRecorder(log.New(out, "framesec: ", 0))
}

// vendorMatcher opens the configured vendor database. Its entries are
// registered with the offline store so imports succeed; the store does not
// know their dimensions, so they read back as explicit properties.
func vendorMatcher(store *memstore.Store) (*vendordb.Matcher, error) {
	if cfg.VendorDatabase == "" {
		return vendordb.NewMatcher(nil)
	}
	db, err := vendordb.Resolve(cfg.VendorDatabase)
	if err != nil {
		return nil, err
	}
	for _, name := range db.Names {
		store.AddLibrary(db.File, name, native.Opaque{Kind: native.Auto})
	}
	return vendordb.NewMatcher(db)
}

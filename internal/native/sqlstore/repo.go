package sqlstore

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/alexiusacademia/framesec/internal/native"
	"github.com/alexiusacademia/framesec/internal/native/memstore"
)

type Repo struct {
	DB *sql.DB
}

func NewRepo(db *sql.DB) *Repo {
	return &Repo{DB: db}
}

// Load reads the whole model into a memory store.
func (r *Repo) Load(ctx context.Context) (*memstore.Store, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT name, material, kind, params, props, modifiers, library
		FROM frame_properties
		ORDER BY ord
	`)
	if err != nil {
		return nil, fmt.Errorf("query frame properties: %w", err)
	}
	defer rows.Close()

	var records []memstore.Record
	for rows.Next() {
		var (
			rec       memstore.Record
			kind      string
			params    string
			props     sql.NullString
			modifiers string
		)
		if err := rows.Scan(&rec.Name, &rec.Material, &kind, &params, &props, &modifiers, &rec.Library); err != nil {
			return nil, fmt.Errorf("scan frame property: %w", err)
		}
		if rec.Shape, err = decodeShape(kind, []byte(params)); err != nil {
			return nil, fmt.Errorf("frame property %q: %w", rec.Name, err)
		}
		if props.Valid {
			var g native.GeneralProps
			if err := json.Unmarshal([]byte(props.String), &g); err != nil {
				return nil, fmt.Errorf("frame property %q props: %w", rec.Name, err)
			}
			rec.Props = &g
		}
		if err := json.Unmarshal([]byte(modifiers), &rec.Modifiers); err != nil {
			return nil, fmt.Errorf("frame property %q modifiers: %w", rec.Name, err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate frame properties: %w", err)
	}

	for i := range records {
		segs, err := r.segments(ctx, records[i].Name)
		if err != nil {
			return nil, err
		}
		records[i].Segments = segs
	}

	store := memstore.New()
	for _, rec := range records {
		if err := store.Put(rec); err != nil {
			return nil, err
		}
	}
	return store, nil
}

func (r *Repo) segments(ctx context.Context, name string) ([]native.Segment, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT start_name, end_name, length, length_type, ei33, ei22
		FROM segments
		WHERE section = ?
		ORDER BY idx
	`, name)
	if err != nil {
		return nil, fmt.Errorf("query segments of %q: %w", name, err)
	}
	defer rows.Close()

	var out []native.Segment
	for rows.Next() {
		var s native.Segment
		if err := rows.Scan(&s.StartSection, &s.EndSection, &s.Length, &s.LengthType, &s.EI33, &s.EI22); err != nil {
			return nil, fmt.Errorf("scan segment of %q: %w", name, err)
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

// Save replaces the stored model with the contents of store.
func (r *Repo) Save(ctx context.Context, store *memstore.Store) error {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM segments`); err != nil {
		return fmt.Errorf("clear segments: %w", err)
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM frame_properties`); err != nil {
		return fmt.Errorf("clear frame properties: %w", err)
	}

	for i, rec := range store.Records() {
		kind, err := shapeKind(rec.Shape)
		if err != nil {
			return fmt.Errorf("frame property %q: %w", rec.Name, err)
		}
		params, err := json.Marshal(rec.Shape)
		if err != nil {
			return fmt.Errorf("frame property %q: %w", rec.Name, err)
		}
		var props sql.NullString
		if rec.Props != nil {
			raw, err := json.Marshal(rec.Props)
			if err != nil {
				return fmt.Errorf("frame property %q props: %w", rec.Name, err)
			}
			props = sql.NullString{String: string(raw), Valid: true}
		}
		mods, err := json.Marshal(rec.Modifiers)
		if err != nil {
			return fmt.Errorf("frame property %q modifiers: %w", rec.Name, err)
		}

		if _, err := tx.ExecContext(ctx, `
			INSERT INTO frame_properties (name, ord, material, kind, params, props, modifiers, library)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		`, rec.Name, i, rec.Material, kind, string(params), props, string(mods), rec.Library); err != nil {
			return fmt.Errorf("insert frame property %q: %w", rec.Name, err)
		}

		for j, s := range rec.Segments {
			if _, err := tx.ExecContext(ctx, `
				INSERT INTO segments (section, idx, start_name, end_name, length, length_type, ei33, ei22)
				VALUES (?, ?, ?, ?, ?, ?, ?, ?)
			`, rec.Name, j, s.StartSection, s.EndSection, s.Length, int(s.LengthType), s.EI33, s.EI22); err != nil {
				return fmt.Errorf("insert segment %d of %q: %w", j+1, rec.Name, err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

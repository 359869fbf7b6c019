package docstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/dgraph-io/badger/v4"
)

const badgerUpdateRetries = 64

// BadgerConfig selects an on-disk directory or an in-memory database.
type BadgerConfig struct {
	Dir      string
	InMemory bool
	Logger   *slog.Logger
}

// BadgerStore is an embedded single-node backend.
type BadgerStore struct {
	db *badger.DB
}

type badgerLogger struct {
	logger *slog.Logger
}

func (l *badgerLogger) Errorf(format string, args ...any) {
	l.logger.Error(fmt.Sprintf(format, args...))
}

func (l *badgerLogger) Warningf(format string, args ...any) {
	l.logger.Warn(fmt.Sprintf(format, args...))
}

func (l *badgerLogger) Infof(format string, args ...any) {
	l.logger.Debug(fmt.Sprintf(format, args...))
}

func (l *badgerLogger) Debugf(format string, args ...any) {
	l.logger.Debug(fmt.Sprintf(format, args...))
}

// OpenBadger opens (or creates) a Badger database.
func OpenBadger(cfg BadgerConfig) (*BadgerStore, error) {
	var opts badger.Options
	if cfg.InMemory {
		opts = badger.DefaultOptions("").WithInMemory(true)
	} else {
		if cfg.Dir == "" {
			return nil, errors.New("badger directory is required")
		}
		if err := os.MkdirAll(cfg.Dir, 0o750); err != nil {
			return nil, fmt.Errorf("create badger directory %s: %w", cfg.Dir, err)
		}
		opts = badger.DefaultOptions(cfg.Dir).WithSyncWrites(true)
	}
	opts = opts.WithNumVersionsToKeep(1)
	if cfg.Logger != nil {
		opts = opts.WithLogger(&badgerLogger{logger: cfg.Logger})
	} else {
		opts = opts.WithLogger(nil)
	}

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open badger: %w", err)
	}
	return &BadgerStore{db: db}, nil
}

func (s *BadgerStore) Close() error {
	return s.db.Close()
}

func badgerKey(collection, id string) []byte {
	return []byte("doc/" + collection + "/" + id)
}

func badgerPrefix(collection string) []byte {
	return []byte("doc/" + collection + "/")
}

func (s *BadgerStore) Create(ctx context.Context, collection, id string, doc Document) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	raw, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("encode document: %w", err)
	}
	return s.db.Update(func(txn *badger.Txn) error {
		key := badgerKey(collection, id)
		_, err := txn.Get(key)
		switch {
		case err == nil:
			return conflict(collection, id)
		case !errors.Is(err, badger.ErrKeyNotFound):
			return fmt.Errorf("create document: %w", err)
		}
		return txn.Set(key, raw)
	})
}

func (s *BadgerStore) Set(ctx context.Context, collection, id string, doc Document) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	raw, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("encode document: %w", err)
	}
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set(badgerKey(collection, id), raw)
	})
}

func (s *BadgerStore) Get(ctx context.Context, collection, id string) (Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	var doc Document
	err := s.db.View(func(txn *badger.Txn) error {
		var err error
		doc, err = getDoc(txn, collection, id)
		return err
	})
	return doc, err
}

func (s *BadgerStore) Query(ctx context.Context, collection string, filters ...Filter) ([]Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	filters, err := normalizeFilters(filters)
	if err != nil {
		return nil, err
	}
	out := []Document{}
	err = s.db.View(func(txn *badger.Txn) error {
		prefix := badgerPrefix(collection)
		it := txn.NewIterator(badger.IteratorOptions{PrefetchValues: true, PrefetchSize: 64, Prefix: prefix})
		defer it.Close()
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			raw, err := it.Item().ValueCopy(nil)
			if err != nil {
				return fmt.Errorf("read document: %w", err)
			}
			doc, err := decodeRaw(raw)
			if err != nil {
				return err
			}
			if matchAll(doc, filters) {
				out = append(out, doc)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sortByID(out)
	return out, nil
}

// Update retries when a concurrent transaction touched the same key.
func (s *BadgerStore) Update(ctx context.Context, collection, id string, ops ...Op) error {
	var err error
	for range badgerUpdateRetries {
		if err = ctx.Err(); err != nil {
			return err
		}
		err = s.db.Update(func(txn *badger.Txn) error {
			doc, err := getDoc(txn, collection, id)
			if err != nil {
				return err
			}
			if err := doc.Apply(ops...); err != nil {
				return err
			}
			raw, err := json.Marshal(doc)
			if err != nil {
				return fmt.Errorf("encode document: %w", err)
			}
			return txn.Set(badgerKey(collection, id), raw)
		})
		if !errors.Is(err, badger.ErrConflict) {
			return err
		}
	}
	return fmt.Errorf("update %s/%s: %w", collection, id, err)
}

func (s *BadgerStore) Delete(ctx context.Context, collection, id string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return s.db.Update(func(txn *badger.Txn) error {
		key := badgerKey(collection, id)
		if _, err := txn.Get(key); err != nil {
			if errors.Is(err, badger.ErrKeyNotFound) {
				return notFound(collection, id)
			}
			return fmt.Errorf("delete document: %w", err)
		}
		return txn.Delete(key)
	})
}

func getDoc(txn *badger.Txn, collection, id string) (Document, error) {
	item, err := txn.Get(badgerKey(collection, id))
	if err != nil {
		if errors.Is(err, badger.ErrKeyNotFound) {
			return nil, notFound(collection, id)
		}
		return nil, fmt.Errorf("get document: %w", err)
	}
	raw, err := item.ValueCopy(nil)
	if err != nil {
		return nil, fmt.Errorf("read document: %w", err)
	}
	return decodeRaw(raw)
}

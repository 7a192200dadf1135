// Package store is the only place that touches the database. It owns the
// delete policy of the schema: user deletion cascades to every user-owned
// table, while detection/subscription/invoice references in reports,
// invoices and payments are nulled instead. Cascades run inside a single
// transaction so the contract holds identically on mysql and sqlite.
package store

import (
	"context"
	"errors"

	"xorm.io/xorm"
)

var ErrNotFound = errors.New("store: not found")

type Store struct {
	engine *xorm.Engine
}

func New(engine *xorm.Engine) *Store {
	return &Store{engine: engine}
}

// Engine exposes the underlying engine for stats logging.
func (s *Store) Engine() *xorm.Engine {
	return s.engine
}

// session returns an auto-closing session bound to ctx, for one-shot
// statements. Multi-statement work goes through inTx.
func (s *Store) session(ctx context.Context) *xorm.Session {
	return s.engine.Context(ctx)
}

// inTx runs fn inside a transaction, rolling back on error.
func (s *Store) inTx(ctx context.Context, fn func(sess *xorm.Session) error) error {
	sess := s.engine.NewSession().Context(ctx)
	defer sess.Close()

	if err := sess.Begin(); err != nil {
		return err
	}
	if err := fn(sess); err != nil {
		_ = sess.Rollback()
		return err
	}
	return sess.Commit()
}

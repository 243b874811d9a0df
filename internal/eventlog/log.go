// Package eventlog provides a generic, capacity-bounded, append-only log
// over a gorm model. Records are kept newest-first and evicted strictly
// FIFO by insertion order once the capacity is exceeded.
package eventlog

import (
	"context"
	"sync"

	"gorm.io/gorm"
)

// Log is a bounded append-only log over records of type T. T must be a
// gorm model with an auto-increment primary key named ID; insertion order
// is the ID order.
//
// Append and its capacity truncation run as one transaction under a
// per-log mutex, so size <= capacity holds after every operation even with
// concurrent callers.
type Log[T any] struct {
	db       *gorm.DB
	capacity int
	mu       sync.Mutex
}

// New creates a log with the given capacity (minimum 1).
func New[T any](db *gorm.DB, capacity int) *Log[T] {
	if capacity < 1 {
		capacity = 1
	}
	return &Log[T]{db: db, capacity: capacity}
}

// Capacity returns the configured maximum size.
func (l *Log[T]) Capacity() int { return l.capacity }

// Append stores a record and synchronously evicts the oldest rows beyond
// capacity. Truncation is never deferred or batched.
func (l *Log[T]) Append(ctx context.Context, rec *T) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(rec).Error; err != nil {
			return err
		}
		return l.truncate(tx)
	})
}

// truncate drops the oldest rows beyond capacity. Victims are loaded
// first and deleted by primary key; MySQL rejects LIMIT inside an IN
// subquery, so a subquery delete is not portable here.
func (l *Log[T]) truncate(tx *gorm.DB) error {
	var count int64
	if err := tx.Model(new(T)).Count(&count).Error; err != nil {
		return err
	}
	overflow := int(count) - l.capacity
	if overflow <= 0 {
		return nil
	}

	var victims []T
	if err := tx.Model(new(T)).Order("id ASC").Limit(overflow).Find(&victims).Error; err != nil {
		return err
	}
	return tx.Delete(&victims).Error
}

// Query returns the records matching a partition condition, newest-first.
func (l *Log[T]) Query(ctx context.Context, cond string, args ...any) ([]T, error) {
	var recs []T
	err := l.db.WithContext(ctx).
		Where(cond, args...).
		Order("id DESC").
		Find(&recs).Error
	return recs, err
}

// All returns a full snapshot of the log, newest-first.
func (l *Log[T]) All(ctx context.Context) ([]T, error) {
	var recs []T
	err := l.db.WithContext(ctx).Order("id DESC").Find(&recs).Error
	return recs, err
}

// Count returns the current number of stored records.
func (l *Log[T]) Count(ctx context.Context) (int64, error) {
	var count int64
	err := l.db.WithContext(ctx).Model(new(T)).Count(&count).Error
	return count, err
}

// Clear empties the log.
func (l *Log[T]) Clear(ctx context.Context) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.db.WithContext(ctx).
		Session(&gorm.Session{AllowGlobalUpdate: true}).
		Delete(new(T)).Error
}

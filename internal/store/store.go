package store

import (
	"context"
	"errors"
	"slices"
	"time"

	"github.com/folio-space/core/internal/models"
	"github.com/folio-space/core/internal/pkg/pagination"
	"github.com/folio-space/core/internal/pkg/validation"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Store is the single write path for every entity. Each Save runs the
// kind's pre-persist rule, validates, writes inside a transaction, and
// after commit drops cached listings and publishes an Event.
type Store struct {
	db        *gorm.DB
	logger    *zap.Logger
	validator *validation.Validator
	publisher Publisher
	cache     *listCache
	now       func() time.Time
}

type Option func(*Store)

// WithPublisher sets the receiver of committed write events.
func WithPublisher(p Publisher) Option {
	return func(s *Store) {
		if p != nil {
			s.publisher = p
		}
	}
}

// WithListCache enables caching of active listings. A ttl <= 0 disables it.
func WithListCache(ttl, cleanup time.Duration) Option {
	return func(s *Store) {
		s.cache = newListCache(ttl, cleanup)
	}
}

func New(db *gorm.DB, logger *zap.Logger, opts ...Option) *Store {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &Store{
		db:        db,
		logger:    logger.Named("store"),
		validator: validation.New(),
		publisher: nopPublisher{},
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// DB exposes the underlying connection for read-only queries.
func (s *Store) DB() *gorm.DB { return s.db }

// Save inserts rec when it has no identity key yet and updates it otherwise.
// rec is modified in place by the pre-persist rule and receives its key and
// timestamps. Validation failures are *validation.Error; database errors are
// returned unchanged.
func (s *Store) Save(ctx context.Context, rec models.Record) error {
	return s.save(ctx, rec, nil)
}

func (s *Store) save(ctx context.Context, rec models.Record, within func(tx *gorm.DB) error) error {
	isInsert := rec.PrimaryKey() == ""
	prepare(rec, isInsert)
	if err := s.validator.Struct(rec); err != nil {
		return err
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if !isInsert {
			if err := requireExisting(tx, rec.TableName(), rec.PrimaryKey()); err != nil {
				return err
			}
		}
		if err := checkReferences(tx, rec); err != nil {
			return err
		}

		q := tx.Omit(clause.Associations)
		if isInsert {
			if err := q.Create(rec).Error; err != nil {
				return err
			}
		} else if err := q.Save(rec).Error; err != nil {
			return err
		}

		if within != nil {
			return within(tx)
		}
		return nil
	})
	if err != nil {
		if isInsert {
			if r, ok := rec.(interface{ ClearPrimaryKey() }); ok {
				r.ClearPrimaryKey()
			}
		}
		return err
	}

	op := OpUpdate
	if isInsert {
		op = OpCreate
	}
	s.committed(ctx, change{table: rec.TableName(), id: rec.PrimaryKey(), op: op})
	return nil
}

// Delete removes rec by its identity key. Junction rows referencing it are
// removed in the same transaction; deleting a user also deletes its profile.
func (s *Store) Delete(ctx context.Context, rec models.Record) error {
	id := rec.PrimaryKey()
	if id == "" {
		return ErrNotFound
	}

	var cascaded []change
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var err error
		cascaded, err = releaseReferences(tx, rec)
		if err != nil {
			return err
		}
		res := tx.Delete(rec)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrNotFound
		}
		return nil
	})
	if err != nil {
		return err
	}

	for _, c := range cascaded {
		if c.op == OpDelete {
			s.logger.Info("cascade delete",
				zap.String("kind", c.table), zap.String("id", c.id),
				zap.String("owner_kind", rec.TableName()), zap.String("owner_id", id))
		}
		s.committed(ctx, c)
	}
	s.committed(ctx, change{table: rec.TableName(), id: id, op: OpDelete})
	return nil
}

// Find loads the record with the given id into dest.
func (s *Store) Find(ctx context.Context, dest models.Record, id string, preloads ...string) error {
	if id == "" {
		return ErrNotFound
	}
	q := s.db.WithContext(ctx)
	for _, p := range preloads {
		q = q.Preload(p)
	}
	err := q.First(dest, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}

// FindBy loads the first record matching the condition, in listing order.
func (s *Store) FindBy(ctx context.Context, dest models.Record, query string, args ...interface{}) error {
	err := s.db.WithContext(ctx).
		Where(query, args...).
		Order(models.OrderOf(dest)).
		Take(dest).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}

func (s *Store) committed(ctx context.Context, c change) {
	s.cache.invalidate(c.table)
	s.logger.Debug("record written",
		zap.String("kind", c.table), zap.String("id", c.id), zap.String("op", string(c.op)))

	ev := Event{Kind: c.table, Op: c.op, ID: c.id, At: s.now().UTC()}
	if err := s.publisher.Publish(ctx, ev); err != nil {
		s.logger.Warn("publish write event failed",
			zap.String("kind", c.table), zap.String("id", c.id), zap.Error(err))
	}
}

func requireExisting(tx *gorm.DB, table, id string) error {
	var n int64
	if err := tx.Table(table).Where("id = ?", id).Count(&n).Error; err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// Scope narrows a listing query.
type Scope = func(*gorm.DB) *gorm.DB

type recordPtr[T any] interface {
	*T
	models.Record
}

type activePtr[T any] interface {
	*T
	models.Record
	models.Activatable
}

// List returns every record of T in the kind's listing order.
func List[T any, P recordPtr[T]](ctx context.Context, s *Store, scopes ...Scope) ([]T, error) {
	var zero T
	items := []T{}
	err := s.db.WithContext(ctx).
		Model(P(&zero)).
		Scopes(scopes...).
		Order(models.OrderOf(P(&zero))).
		Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

// ListActive returns the records of T with is_active set, in listing order.
// Results are served from the listing cache when it is enabled.
func ListActive[T any, P activePtr[T]](ctx context.Context, s *Store) ([]T, error) {
	var zero T
	table := P(&zero).TableName()
	key := table + ":active"
	if cached, ok := s.cache.get(key); ok {
		if items, ok := cached.([]T); ok {
			return slices.Clone(items), nil
		}
	}

	gen := s.cache.generation(table)
	items, err := List[T, P](ctx, s, func(db *gorm.DB) *gorm.DB {
		return db.Where("is_active = ?", true)
	})
	if err != nil {
		return nil, err
	}
	s.cache.set(table, key, gen, slices.Clone(items))
	return items, nil
}

// Page returns one page of T in the kind's listing order.
func Page[T any, P recordPtr[T]](ctx context.Context, s *Store, q pagination.Query, scopes ...Scope) ([]T, pagination.Page, error) {
	var zero T
	items := []T{}
	tx := s.db.WithContext(ctx).
		Model(P(&zero)).
		Scopes(scopes...).
		Order(models.OrderOf(P(&zero)))
	pag, err := pagination.Paginate(tx, q, &items)
	if err != nil {
		return nil, pagination.Page{}, err
	}
	return items, pag, nil
}

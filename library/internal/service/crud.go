package service

import (
	"context"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/Astemirdum/library-membership/library/internal/errs"
	"github.com/Astemirdum/library-membership/library/internal/model"
	"github.com/Astemirdum/library-membership/pkg/auth"
)

type store[T model.Entity] interface {
	Get(ctx context.Context, id int64) (T, error)
	List(ctx context.Context, limit uint64, includeDeleted bool) ([]T, error)
	Create(ctx context.Context, ent T) (T, error)
	Update(ctx context.Context, ent T) (T, error)
	Delete(ctx context.Context, id int64) error
}

// crud is the soft-delete aware contract shared by the entity services.
// Exported methods open their own transaction; unexported ones expect to run inside one.
type crud[T model.Entity] struct {
	deps
	entity string
	store  store[T]
}

func newCrud[T model.Entity](entity string, s store[T], d deps) crud[T] {
	d.log = d.log.Named(entity)
	return crud[T]{deps: d, entity: entity, store: s}
}

// Get fails with NotFound for missing and soft-deleted rows alike.
func (c *crud[T]) Get(ctx context.Context, id int64) (T, error) {
	return inTx(ctx, c.tx, func(ctx context.Context) (T, error) {
		return c.get(ctx, id)
	})
}

// List returns up to limit rows that are not deleted.
func (c *crud[T]) List(ctx context.Context, limit int) ([]T, error) {
	return c.list(ctx, limit, false)
}

// ListAll returns up to limit rows including deleted ones.
func (c *crud[T]) ListAll(ctx context.Context, limit int) ([]T, error) {
	return c.list(ctx, limit, true)
}

func (c *crud[T]) list(ctx context.Context, limit int, includeDeleted bool) ([]T, error) {
	return inTx(ctx, c.tx, func(ctx context.Context) ([]T, error) {
		items, err := c.store.List(ctx, listLimit(limit), includeDeleted)
		if err != nil {
			return nil, c.storeErr("list", err)
		}
		return items, nil
	})
}

// Delete flags the row as deleted. Deleting twice is a Conflict.
func (c *crud[T]) Delete(ctx context.Context, id int64) (bool, error) {
	ok, err := inTx(ctx, c.tx, func(ctx context.Context) (bool, error) {
		ent, err := c.fetch(ctx, id)
		if err != nil {
			return false, err
		}
		if ent.IsDeleted() {
			return false, errs.Conflict("%s with id %d has already been deleted", c.entity, id)
		}
		if err := c.store.Delete(ctx, id); err != nil {
			return false, c.storeErr("delete", err)
		}
		return true, nil
	})
	if err != nil {
		return false, err
	}
	c.publish(ctx, id, model.EventDeleted)
	return ok, nil
}

// add validates ent and inserts it. prepare runs inside the transaction before the write;
// it reports whether ent took over the identity of a soft-deleted row.
func (c *crud[T]) add(ctx context.Context, ent T, prepare func(ctx context.Context) (bool, error)) (T, error) {
	var restored bool
	out, err := inTx(ctx, c.tx, func(ctx context.Context) (T, error) {
		var zero T
		ent.SetID(0)
		ent.SetDeleted(false)
		if err := c.validate(ent); err != nil {
			return zero, err
		}
		if prepare != nil {
			var err error
			if restored, err = prepare(ctx); err != nil {
				return zero, err
			}
		}
		if restored {
			return c.update(ctx, ent)
		}
		created, err := c.store.Create(ctx, ent)
		if err != nil {
			return zero, c.storeErr("create", err)
		}
		return created, nil
	})
	if err != nil {
		return out, err
	}
	action := model.EventCreated
	if restored {
		action = model.EventRestored
	}
	c.publish(ctx, out.GetID(), action)
	return out, nil
}

// fullUpdate replaces the row with ent. The row only has to exist, deleted or not;
// its id and deleted flag are kept whatever ent carries.
func (c *crud[T]) fullUpdate(ctx context.Context, id int64, ent T, prepare func(ctx context.Context, existing T) error) (T, error) {
	out, err := inTx(ctx, c.tx, func(ctx context.Context) (T, error) {
		var zero T
		existing, err := c.fetch(ctx, id)
		if err != nil {
			return zero, err
		}
		ent.SetID(id)
		ent.SetDeleted(existing.IsDeleted())
		if err := c.validate(ent); err != nil {
			return zero, err
		}
		if prepare != nil {
			if err := prepare(ctx, existing); err != nil {
				return zero, err
			}
		}
		return c.update(ctx, ent)
	})
	if err != nil {
		return out, err
	}
	c.publish(ctx, id, model.EventUpdated)
	return out, nil
}

// fetch returns the row regardless of its deleted flag.
func (c *crud[T]) fetch(ctx context.Context, id int64) (T, error) {
	ent, err := c.store.Get(ctx, id)
	if err != nil {
		var zero T
		if errors.Is(err, errs.ErrNotFound) {
			return zero, c.notFound(id)
		}
		return zero, c.storeErr("get", err)
	}
	return ent, nil
}

func (c *crud[T]) get(ctx context.Context, id int64) (T, error) {
	ent, err := c.fetch(ctx, id)
	if err != nil {
		return ent, err
	}
	if ent.IsDeleted() {
		var zero T
		return zero, c.notFound(id)
	}
	return ent, nil
}

// live resolves a referenced row that must exist and not be deleted.
func (c *crud[T]) live(ctx context.Context, id int64) (T, error) {
	ent, err := c.fetch(ctx, id)
	if err != nil {
		return ent, err
	}
	if ent.IsDeleted() {
		var zero T
		return zero, errs.DeletedDependency("%s with id %d has been deleted", c.entity, id)
	}
	return ent, nil
}

func (c *crud[T]) update(ctx context.Context, ent T) (T, error) {
	updated, err := c.store.Update(ctx, ent)
	if err != nil {
		var zero T
		if errors.Is(err, errs.ErrNotFound) {
			return zero, c.notFound(ent.GetID())
		}
		return zero, c.storeErr("update", err)
	}
	return updated, nil
}

// reconcile applies the natural-key policy for a new row: a live holder of the key is a
// Conflict, a soft-deleted holder hands its identity over to ent.
func (c *crud[T]) reconcile(ctx context.Context, ent T, key, value string, lookup func(ctx context.Context) (T, error)) (bool, error) {
	existing, err := lookup(ctx)
	if err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return false, nil
		}
		return false, c.storeErr("lookup", err)
	}
	if !existing.IsDeleted() {
		return false, errs.Conflict("%s with %s %s already exists", c.entity, key, value)
	}
	c.log.Debug("restoring soft-deleted row",
		zap.Int64("id", existing.GetID()), zap.String(key, value))
	ent.SetID(existing.GetID())
	ent.SetDeleted(false)
	return true, nil
}

// ensureUnique rejects a key change onto a value held by another live row.
func (c *crud[T]) ensureUnique(ctx context.Context, id int64, key, value string, lookup func(ctx context.Context) (T, error)) error {
	existing, err := lookup(ctx)
	if err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return nil
		}
		return c.storeErr("lookup", err)
	}
	if !existing.IsDeleted() && existing.GetID() != id {
		return errs.Conflict("%s with %s %s already exists", c.entity, key, value)
	}
	return nil
}

func (c *crud[T]) validate(v interface{}) error {
	if err := c.validator.Validate(v); err != nil {
		return errs.FromValidator(err)
	}
	return nil
}

func (c *crud[T]) notFound(id int64) error {
	return errs.NotFound("%s with id %d does not exist", c.entity, id)
}

// storeErr keeps domain errors as they are and wraps everything else.
func (c *crud[T]) storeErr(op string, err error) error {
	var domainErr *errs.Error
	if errors.As(err, &domainErr) {
		return err
	}
	c.log.Error(op, zap.Error(err))
	return errors.Wrapf(err, "%s %s", c.entity, op)
}

func (c *crud[T]) publish(ctx context.Context, id int64, action model.EventAction) {
	e := model.NewEvent(c.entity, id, action)
	if username, err := auth.GetUserName(ctx); err == nil {
		e.Actor = username
	}
	c.publisher.Publish(ctx, e)
}

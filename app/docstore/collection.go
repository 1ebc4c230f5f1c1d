package docstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"booking-backend/app/apperr"
)

// Collection is a JSON document collection on redis. Documents live at
// <name>:<id>; membership is tracked in the set <name>:all and in one
// <name>:owner:<uid> set per owner so owner-scoped listing stays a set
// read instead of a full scan.
type Collection struct {
	rdb  *redis.Client
	name string
}

func NewCollection(rdb *redis.Client, name string) *Collection {
	return &Collection{rdb: rdb, name: name}
}

// NewID mints a document id.
func NewID() string { return uuid.NewString() }

func (c *Collection) key(id string) string { return c.name + ":" + id }
func (c *Collection) allKey() string { return c.name + ":all" }
func (c *Collection) ownerKey(owner uint) string {
	return fmt.Sprintf("%s:owner:%d", c.name, owner)
}

// Put stores doc under id. Inserts and overwrites are the same operation;
// the index SADDs are idempotent.
func (c *Collection) Put(ctx context.Context, id string, owner uint, doc any) error {
	raw, err := json.Marshal(doc)
	if err != nil {
		return err
	}
	pipe := c.rdb.TxPipeline()
	pipe.Set(ctx, c.key(id), raw, 0)
	pipe.SAdd(ctx, c.allKey(), id)
	pipe.SAdd(ctx, c.ownerKey(owner), id)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("%w: put %s: %v", apperr.ErrStore, c.key(id), err)
	}
	return nil
}

func (c *Collection) Get(ctx context.Context, id string, out any) error {
	raw, err := c.rdb.Get(ctx, c.key(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return apperr.ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("%w: get %s: %v", apperr.ErrStore, c.key(id), err)
	}
	return json.Unmarshal(raw, out)
}

// Delete removes the document and its index entries. A concurrent delete
// makes DEL report zero removed keys, which surfaces as ErrNotFound.
func (c *Collection) Delete(ctx context.Context, id string, owner uint) error {
	pipe := c.rdb.TxPipeline()
	del := pipe.Del(ctx, c.key(id))
	pipe.SRem(ctx, c.allKey(), id)
	pipe.SRem(ctx, c.ownerKey(owner), id)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("%w: delete %s: %v", apperr.ErrStore, c.key(id), err)
	}
	if del.Val() == 0 {
		return apperr.ErrNotFound
	}
	return nil
}

// All returns every document in the collection, unordered.
func (c *Collection) All(ctx context.Context) ([]json.RawMessage, error) {
	return c.members(ctx, c.allKey())
}

// ByOwner returns the documents of one owner, unordered.
func (c *Collection) ByOwner(ctx context.Context, owner uint) ([]json.RawMessage, error) {
	return c.members(ctx, c.ownerKey(owner))
}

func (c *Collection) members(ctx context.Context, setKey string) ([]json.RawMessage, error) {
	ids, err := c.rdb.SMembers(ctx, setKey).Result()
	if err != nil {
		return nil, fmt.Errorf("%w: smembers %s: %v", apperr.ErrStore, setKey, err)
	}
	if len(ids) == 0 {
		return nil, nil
	}
	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = c.key(id)
	}
	vals, err := c.rdb.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, fmt.Errorf("%w: mget %s: %v", apperr.ErrStore, setKey, err)
	}
	docs := make([]json.RawMessage, 0, len(vals))
	for _, v := range vals {
		s, ok := v.(string)
		if !ok {
			// deleted between SMEMBERS and MGET
			continue
		}
		docs = append(docs, json.RawMessage(s))
	}
	return docs, nil
}

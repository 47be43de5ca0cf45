package repository

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"path"
	"time"

	"github.com/sirupsen/logrus"

	"halocat-queries/internal/app/ds"
	"halocat-queries/internal/app/partition"
	"halocat-queries/internal/app/query"
	"halocat-queries/internal/app/writer"
)

type QueryRepository struct {
	cache  ListCache
	store  ObjectStore
	writer *writer.FileWriter
	ttl    time.Duration
}

func NewQueryRepository(cache ListCache, store ObjectStore, w *writer.FileWriter, ttl time.Duration) *QueryRepository {
	return &QueryRepository{
		cache:  cache,
		store:  store,
		writer: w,
		ttl:    ttl,
	}
}

// Generate проверяет параметры и строит оба потока запросов
func (r *QueryRepository) Generate(req ds.GenerationRequest) (*query.Lists, error) {
	format, err := query.ParseFormat(req.Format)
	if err != nil {
		return nil, err
	}
	if err := req.Box.Validate(); err != nil {
		return nil, err
	}
	renderer, err := query.NewRenderer(req.Params, format)
	if err != nil {
		return nil, err
	}
	return renderer.Generate(req.Box)
}

// Partition возвращает подобъемы без рендеринга запросов
func (r *QueryRepository) Partition(box ds.BoxSpec) ([]ds.SubVolume, error) {
	return partition.Enumerate(box)
}

// ListBody возвращает тело файла списка; при наличии Redis результат кэшируется
func (r *QueryRepository) ListBody(ctx context.Context, req ds.GenerationRequest, kind ds.QueryKind) (string, error) {
	key := req.CacheKey(kind)
	if r.cache != nil {
		body, err := r.cache.GetList(ctx, key)
		if err == nil {
			logrus.Debugf("query list cache hit: %s", key)
			return body, nil
		}
		if !errors.Is(err, ds.ErrCacheMiss) {
			logrus.Warnf("query list cache read failed: %v", err)
		}
	}

	lists, err := r.Generate(req)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := writer.Encode(&buf, kind, lists.Of(kind)); err != nil {
		return "", err
	}
	body := buf.String()

	if r.cache != nil {
		if err := r.cache.SetList(ctx, key, body, r.ttl); err != nil {
			logrus.Warnf("query list cache write failed: %v", err)
		}
	}
	return body, nil
}

// WriteFiles атомарно записывает оба списка
func (r *QueryRepository) WriteFiles(lists *query.Lists, fetchPath, countPath string) error {
	if err := r.writer.WriteList(fetchPath, ds.FetchAll, lists.Fetch); err != nil {
		return err
	}
	return r.writer.WriteList(countPath, ds.CountOnly, lists.Count)
}

// Publish загружает оба списка в объектное хранилище под префиксом snapnum_<snapshot>/
func (r *QueryRepository) Publish(ctx context.Context, lists *query.Lists, snapshot, fetchName, countName string) (ds.PublishResponse, error) {
	if r.store == nil {
		return ds.PublishResponse{}, ds.ErrStoreUnavailable
	}
	// Оба списка ложатся в один префикс, имена файлов не должны совпадать
	if path.Base(fetchName) == path.Base(countName) {
		return ds.PublishResponse{}, fmt.Errorf("%w: fetch and count lists share the object name %q",
			ds.ErrInvalidConfiguration, path.Base(fetchName))
	}

	resp := ds.PublishResponse{Bucket: r.store.Bucket()}
	for _, item := range []struct {
		kind ds.QueryKind
		name string
	}{
		{ds.FetchAll, fetchName},
		{ds.CountOnly, countName},
	} {
		var buf bytes.Buffer
		if err := writer.Encode(&buf, item.kind, lists.Of(item.kind)); err != nil {
			return ds.PublishResponse{}, err
		}
		object := path.Join("snapnum_"+snapshot, path.Base(item.name))
		if err := r.store.PutList(ctx, object, buf.Bytes()); err != nil {
			return ds.PublishResponse{}, fmt.Errorf("publish %s list: %w", item.kind, err)
		}
		resp.Objects = append(resp.Objects, object)
	}
	return resp, nil
}

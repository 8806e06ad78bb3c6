package facilityservice

import (
	"context"

	"github.com/m04kA/SMC-FacilityBooking/internal/domain"
)

// CachedDirectory декоратор над справочником, читающий сначала из кэша.
// Ошибки кэша не фатальны: запрос уходит в справочник
type CachedDirectory struct {
	next  Directory
	cache Cache
	log   Logger
}

// NewCachedDirectory создает декоратор с кэшем
func NewCachedDirectory(next Directory, cache Cache, log Logger) *CachedDirectory {
	return &CachedDirectory{next: next, cache: cache, log: log}
}

// ListFacilities получает список объектов через кэш
func (d *CachedDirectory) ListFacilities(ctx context.Context) ([]domain.Facility, error) {
	facilities, ok, err := d.cache.GetList(ctx)
	if err != nil {
		d.log.Warn("ListFacilities: cache read failed: %v", err)
	}
	if ok {
		return facilities, nil
	}

	facilities, err = d.next.ListFacilities(ctx)
	if err != nil {
		return nil, err
	}

	if err := d.cache.SetList(ctx, facilities); err != nil {
		d.log.Warn("ListFacilities: cache write failed: %v", err)
	}
	return facilities, nil
}

// GetFacility получает объект через кэш. Отсутствие объекта не кэшируется
func (d *CachedDirectory) GetFacility(ctx context.Context, id int64) (*domain.Facility, error) {
	facility, ok, err := d.cache.Get(ctx, id)
	if err != nil {
		d.log.Warn("GetFacility: cache read failed for facility_id=%d: %v", id, err)
	}
	if ok {
		return facility, nil
	}

	facility, err = d.next.GetFacility(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := d.cache.Set(ctx, *facility); err != nil {
		d.log.Warn("GetFacility: cache write failed for facility_id=%d: %v", id, err)
	}
	return facility, nil
}

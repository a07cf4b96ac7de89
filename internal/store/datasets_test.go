package store

import (
	"sync"
	"testing"

	"go-property-analyzer/internal/apperr"
	"go-property-analyzer/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dataset(name string, rows ...string) *model.Dataset {
	records := make([]model.Record, len(rows))
	for i, r := range rows {
		records[i] = model.Record{model.Text(r)}
	}
	return model.MustDataset(name, []model.Column{{Name: "v", Kind: model.KindText}}, records)
}

func collect(s *Datasets) ([]string, []*model.Dataset) {
	var names []string
	var sets []*model.Dataset
	for name, ds := range s.All() {
		names = append(names, name)
		sets = append(sets, ds)
	}
	return names, sets
}

func TestRegisterAndGet(t *testing.T) {
	s := NewDatasets()
	ds := dataset("listings_dec18.csv", "a")
	s.Register(ds)

	got, err := s.Get("listings_dec18.csv")
	require.NoError(t, err)
	assert.Same(t, ds, got)
	assert.Equal(t, 1, s.Len())
}

func TestGetMissingIsNotFound(t *testing.T) {
	s := NewDatasets()
	_, err := s.Get("nope")
	require.Error(t, err)
	assert.True(t, apperr.IsNotFound(err))
	assert.Contains(t, err.Error(), "nope")
}

func TestAllKeepsRegistrationOrder(t *testing.T) {
	s := NewDatasets()
	s.Register(dataset("calendar", "c"))
	s.Register(dataset("listings", "l"))
	s.Register(dataset("reviews", "r"))

	names, _ := collect(s)
	assert.Equal(t, []string{"calendar", "listings", "reviews"}, names)
	assert.Equal(t, names, s.Names())
}

func TestReRegisterKeepsOriginalSlot(t *testing.T) {
	s := NewDatasets()
	s.Register(dataset("calendar", "c"))
	s.Register(dataset("listings", "old"))
	s.Register(dataset("reviews", "r"))

	replacement := dataset("listings", "new1", "new2")
	s.Register(replacement)

	names, sets := collect(s)
	assert.Equal(t, []string{"calendar", "listings", "reviews"}, names)
	assert.Same(t, replacement, sets[1])
	assert.Equal(t, 3, s.Len())
}

func TestAllIsRestartableAndStoppable(t *testing.T) {
	s := NewDatasets()
	s.Register(dataset("a"))
	s.Register(dataset("b"))

	first, _ := collect(s)
	second, _ := collect(s)
	assert.Equal(t, first, second)

	count := 0
	for range s.All() {
		count++
		break
	}
	assert.Equal(t, 1, count)
}

func TestRemove(t *testing.T) {
	s := NewDatasets()
	s.Register(dataset("a"))
	s.Register(dataset("b"))
	s.Register(dataset("c"))

	assert.True(t, s.Remove("b"))
	assert.False(t, s.Remove("b"))
	assert.Equal(t, []string{"a", "c"}, s.Names())

	s.Register(dataset("b"))
	assert.Equal(t, []string{"a", "c", "b"}, s.Names())
}

func TestStoresAreIndependent(t *testing.T) {
	one, two := NewDatasets(), NewDatasets()
	one.Register(dataset("a"))
	assert.Equal(t, 0, two.Len())
}

func TestConcurrentRegisterAndRead(t *testing.T) {
	s := NewDatasets()
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			s.Register(dataset("shared", "x"))
		}()
		go func() {
			defer wg.Done()
			for range s.All() {
			}
			_, _ = s.Get("shared")
		}()
	}
	wg.Wait()
	assert.Equal(t, []string{"shared"}, s.Names())
}

package stoich_test

import (
	"sync"
	"testing"

	"github.com/leapstack-labs/metalcalc/pkg/stoich"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapCache(t *testing.T) {
	c := stoich.NewMapCache()
	_, ok := c.Get("Fe")
	assert.False(t, ok)

	first := &stoich.Entry{MolarMass: 1}
	c.Add("Fe", first)
	c.Add("Fe", &stoich.Entry{MolarMass: 2})

	got, ok := c.Get("Fe")
	require.True(t, ok)
	assert.Same(t, first, got, "first writer wins")
	assert.Equal(t, 1, c.Len())
}

func TestLRUCache(t *testing.T) {
	c, err := stoich.NewLRUCache(2)
	require.NoError(t, err)

	c.Add("Fe", &stoich.Entry{})
	c.Add("O", &stoich.Entry{})
	_, _ = c.Get("Fe") // touch Fe so O is the eviction candidate
	c.Add("Si", &stoich.Entry{})

	assert.Equal(t, 2, c.Len())
	_, ok := c.Get("O")
	assert.False(t, ok)
	_, ok = c.Get("Fe")
	assert.True(t, ok)

	_, err = stoich.NewLRUCache(0)
	assert.Error(t, err)
}

func TestNewCache(t *testing.T) {
	c, err := stoich.NewCache(0)
	require.NoError(t, err)
	assert.IsType(t, &stoich.MapCache{}, c)

	c, err = stoich.NewCache(16)
	require.NoError(t, err)
	assert.IsType(t, &stoich.LRUCache{}, c)

	_, err = stoich.NewCache(-1)
	assert.Error(t, err)
}

func TestCalculatorWithLRUCache(t *testing.T) {
	cache, err := stoich.NewLRUCache(1)
	require.NoError(t, err)
	calc := stoich.New(stoich.WithCache(cache))

	for _, f := range []string{"Fe2O3", "SiO2", "Fe2O3"} {
		_, err := calc.MolarMass(f)
		require.NoError(t, err)
	}

	stats := calc.Stats()
	assert.Equal(t, 1, stats.Entries)
	assert.Equal(t, int64(3), stats.Misses, "evicted formulas are parsed again")
}

func TestCalculatorConcurrent(t *testing.T) {
	calc := stoich.New()

	const workers = 32
	var wg sync.WaitGroup
	results := make([]float64, workers)
	errs := make([]error, workers)

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()
			f := sampleFormulas[idx%len(sampleFormulas)]
			results[idx], errs[idx] = calc.MolarMass(f)
		}(i)
	}
	wg.Wait()

	for i := 0; i < workers; i++ {
		require.NoError(t, errs[i])
		want, err := calc.MolarMass(sampleFormulas[i%len(sampleFormulas)])
		require.NoError(t, err)
		assert.InDelta(t, want, results[i], 0)
	}
	assert.Equal(t, len(sampleFormulas), calc.Stats().Entries)
}

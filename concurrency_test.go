package skipmap

import (
	"fmt"
	"math/rand"
	"runtime"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestSyncMapConcurrentMixedOperationsStorm(t *testing.T) {
	s, err := NewSync[int, int](16, 0.5)
	require.NoError(t, err)

	const keySpace = 512
	goroutines := 2 * runtime.GOMAXPROCS(0)
	if goroutines < 4 {
		goroutines = 4
	}
	const operationsPerGoroutine = 2000

	// Each writer owns the keys congruent to its index, so its private model
	// is exact; reads roam over the whole key space.
	models := make([]map[int]int, goroutines)

	var wg sync.WaitGroup
	for g := 0; g < goroutines; g++ {
		wg.Add(1)
		models[g] = make(map[int]int)
		go func(g int) {
			defer wg.Done()
			model := models[g]
			r := rand.New(rand.NewSource(int64(0xdeadbeef) + int64(g)))
			for i := 0; i < operationsPerGoroutine; i++ {
				own := r.Intn(keySpace/goroutines+1)*goroutines + g
				switch r.Intn(5) {
				case 0:
					value := r.Intn(1 << 16)
					s.Upsert(own, value)
					model[own] = value
				case 1:
					if _, ok := s.Delete(own); ok {
						delete(model, own)
					}
				case 2:
					if err := s.Insert(own, i); err == nil {
						model[own] = i
					}
				case 3:
					s.SelectOrDefault(r.Intn(keySpace))
				case 4:
					s.Contains(r.Intn(keySpace))
				}
			}
		}(g)
	}
	wg.Wait()

	expected := make(map[int]int)
	for _, model := range models {
		for k, v := range model {
			expected[k] = v
		}
	}

	observed := make(map[int]int)
	s.Range(func(k, v int) bool {
		observed[k] = v
		return true
	})

	require.Equal(t, len(expected), s.Len())
	require.Equal(t, expected, observed)
	require.LessOrEqual(t, s.Level(), 16)
}

func TestSyncMapDeleteWhileInsertRacing(t *testing.T) {
	s, err := NewSync[int, int](16, 0.5)
	require.NoError(t, err)

	const iterations = 5000

	start := make(chan struct{})
	var wg sync.WaitGroup
	wg.Add(2)

	go func() {
		defer wg.Done()
		<-start
		for i := 0; i < iterations; i++ {
			s.Upsert(1, i)
		}
	}()

	go func() {
		defer wg.Done()
		<-start
		for i := 0; i < iterations; i++ {
			_, _ = s.Delete(1)
		}
	}()

	close(start)
	wg.Wait()

	n := s.Len()
	require.True(t, n == 0 || n == 1, "unexpected length %d", n)
	require.Equal(t, n == 1, s.Contains(1))
}

func TestSyncMapReadersObserveSortedSnapshots(t *testing.T) {
	s, err := NewSync[int, int](16, 0.5)
	require.NoError(t, err)

	const totalKeys = 1024
	for i := 0; i < totalKeys; i++ {
		require.NoError(t, s.Insert(i, i))
	}

	const workers = 8
	var deleters sync.WaitGroup
	deleters.Add(workers)
	for w := 0; w < workers; w++ {
		go func(offset int) {
			defer deleters.Done()
			for k := offset; k < totalKeys; k += workers {
				_, _ = s.Delete(k)
			}
		}(w)
	}

	stop := make(chan struct{})
	var helper sync.WaitGroup
	helper.Add(1)
	errCh := make(chan error, 1)
	go func() {
		defer helper.Done()
		for {
			select {
			case <-stop:
				return
			default:
			}

			prev := -1
			var failure error
			s.Range(func(k, v int) bool {
				if k <= prev {
					failure = fmt.Errorf("range yielded key %d after %d", k, prev)
					return false
				}
				if v != k {
					failure = fmt.Errorf("value mismatch for key %d: %d", k, v)
					return false
				}
				prev = k
				return true
			})
			if failure != nil {
				errCh <- failure
				return
			}
			time.Sleep(time.Microsecond)
		}
	}()

	deleters.Wait()
	close(stop)
	helper.Wait()

	select {
	case err := <-errCh:
		t.Fatal(err)
	default:
	}

	require.Equal(t, 0, s.Len())
	require.Equal(t, 0, s.Level())
	require.Empty(t, s.Entries())
}

func TestSyncMapClear(t *testing.T) {
	s, err := NewSync[string, int](8, 0.5)
	require.NoError(t, err)
	for i := 0; i < 10; i++ {
		s.Upsert(fmt.Sprint(i), i)
	}
	require.True(t, s.Update("3", 30))
	v, err := s.Select("3")
	require.NoError(t, err)
	require.Equal(t, 30, v)

	s.Clear()
	require.Equal(t, 0, s.Len())
	_, err = s.Select("3")
	require.ErrorIs(t, err, ErrKeyNotFound)
	require.Positive(t, s.Stats().Inserts)
}

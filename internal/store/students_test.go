package store

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"student-data-processor/internal/model"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	st, err := Open(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() })
	return st
}

func makeStudents(n int) []model.StudentRecord {
	out := make([]model.StudentRecord, 0, n)
	for i := 1; i <= n; i++ {
		out = append(out, model.StudentRecord{
			StudentID: int64(i),
			FirstName: fmt.Sprintf("First%d", i),
			LastName:  fmt.Sprintf("Last%d", i),
			DOB:       model.NewDate(2005, time.January, 1),
			Class:     model.Classes[i%len(model.Classes)],
			Score:     60 + i%20,
		})
	}
	return out
}

func TestMemoryStoreSharedAcrossPoolConnections(t *testing.T) {
	st := openTestStore(t)
	require.NoError(t, st.InsertBatch(makeStudents(25)))

	// Concurrent readers force the pool to hand out connections; each one
	// must observe the same database, not a fresh empty one.
	var wg sync.WaitGroup
	errs := make(chan error, 16)
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			n, err := st.Count()
			if err != nil {
				errs <- err
				return
			}
			if n != 25 {
				errs <- fmt.Errorf("saw %d rows, want 25", n)
			}
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		require.NoError(t, err)
	}
}

func TestInsertBatchAndCount(t *testing.T) {
	st := openTestStore(t)

	require.NoError(t, st.InsertBatch(makeStudents(25)))

	n, err := st.Count()
	require.NoError(t, err)
	assert.Equal(t, int64(25), n)

	// Empty batches are a no-op.
	require.NoError(t, st.InsertBatch(nil))
}

func TestInsertBatchRollsBackOnDuplicate(t *testing.T) {
	st := openTestStore(t)
	require.NoError(t, st.InsertBatch(makeStudents(5)))

	dup := makeStudents(10)
	dup[7].StudentID = 3 // collides with the first batch

	err := st.InsertBatch(dup)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "studentId 3")

	// The failed batch must not be partially visible.
	n, err := st.Count()
	require.NoError(t, err)
	assert.Equal(t, int64(5), n)
}

func TestFindByStudentID(t *testing.T) {
	st := openTestStore(t)
	require.NoError(t, st.InsertBatch(makeStudents(10)))

	rec, err := st.FindByStudentID(4)
	require.NoError(t, err)
	assert.Equal(t, "First4", rec.FirstName)
	assert.Equal(t, "2005-01-01", rec.DOB.String())

	_, err = st.FindByStudentID(999)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestPaging(t *testing.T) {
	st := openTestStore(t)
	require.NoError(t, st.InsertBatch(makeStudents(23)))

	t.Run("pages walk the table in insertion order", func(t *testing.T) {
		var all []model.StudentRecord
		for offset := int64(0); ; offset += 10 {
			page, err := st.Page(offset, 10)
			require.NoError(t, err)
			all = append(all, page...)
			if len(page) < 10 {
				break
			}
		}
		require.Len(t, all, 23)
		for i, rec := range all {
			assert.Equal(t, int64(i+1), rec.StudentID)
		}
	})

	t.Run("class filter", func(t *testing.T) {
		page, err := st.PageByClass("Class1", 0, 100)
		require.NoError(t, err)
		require.NotEmpty(t, page)
		for _, rec := range page {
			assert.Equal(t, "Class1", rec.Class)
		}
	})
}

func TestFilteredQueries(t *testing.T) {
	st := openTestStore(t)
	require.NoError(t, st.InsertBatch(makeStudents(20)))

	t.Run("no filter matches everything", func(t *testing.T) {
		n, err := st.CountFiltered(nil, "")
		require.NoError(t, err)
		assert.Equal(t, int64(20), n)
	})

	t.Run("student id filter", func(t *testing.T) {
		id := int64(6)
		n, err := st.CountFiltered(&id, "")
		require.NoError(t, err)
		assert.Equal(t, int64(1), n)

		page, err := st.PageFiltered(&id, "", 0, 10)
		require.NoError(t, err)
		require.Len(t, page, 1)
		assert.Equal(t, id, page[0].StudentID)
	})

	t.Run("class filter", func(t *testing.T) {
		n, err := st.CountFiltered(nil, "Class2")
		require.NoError(t, err)
		assert.Equal(t, int64(4), n)

		page, err := st.PageFiltered(nil, "Class2", 0, 10)
		require.NoError(t, err)
		assert.Len(t, page, 4)
	})

	t.Run("combined filter", func(t *testing.T) {
		id := int64(2) // student 2 sits in Class3
		n, err := st.CountFiltered(&id, "Class3")
		require.NoError(t, err)
		assert.Equal(t, int64(1), n)

		n, err = st.CountFiltered(&id, "Class2")
		require.NoError(t, err)
		assert.Equal(t, int64(0), n)
	})
}

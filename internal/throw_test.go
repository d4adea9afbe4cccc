package internal

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Run fn and return the PipelineError it raises, if any.
func catchPipelineError(fn func()) (err error) {
	defer func() {
		if recovered := HandlePanicRecover(recover()); recovered != nil {
			err = recovered
		}
	}()
	fn()
	return nil
}

func TestHandlePanicRecover(t *testing.T) {
	t.Run("missing open list node", func(t *testing.T) {
		var open OpenList
		open.Insert(&Node{Triangle: 1, Cost: 2})
		err := catchPipelineError(func() {
			open.Find(&Node{Triangle: 4, Cost: 2})
		})
		require.Error(t, err)
		assert.EqualError(t, err, "node for triangle 4 is not in the open list")
		assert.IsType(t, PipelineError{}, err)
		assert.Equal(t, 1, open.Len(), "the list is left as it was")
	})

	t.Run("pop from empty open list", func(t *testing.T) {
		var open OpenList
		err := catchPipelineError(func() { open.PopMin() })
		assert.EqualError(t, err, "pop from empty open list")
	})

	t.Run("absent sweep edge", func(t *testing.T) {
		list := &SortedEdgeList{}
		list.Insert(&Edge{Segment: Segment{Start: Point{0, 10}, End: Point{0, 0}}})
		err := catchPipelineError(func() {
			list.Delete(Segment{Start: Point{5, 10}, End: Point{5, 0}})
		})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "is not in the sweep list")
		assert.Equal(t, 1, list.Len())

		var pipelineError PipelineError
		assert.True(t, errors.As(err, &pipelineError))
	})

	t.Run("with real panic", func(t *testing.T) {
		assert.Panics(t, func() {
			catchPipelineError(func() { panic("true panic") })
		})
	})

	t.Run("no error", func(t *testing.T) {
		assert.NoError(t, catchPipelineError(func() {}))
	})
}

package event

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/star-defense/core"
	"github.com/lixenwraith/star-defense/parameter"
)

func TestQueueFIFO(t *testing.T) {
	q := NewEventQueue()
	assert.Nil(t, q.Consume())

	q.Emit(EventSoundRequest, core.SoundShoot, 1)
	q.Emit(EventShakeRequest, &ShakePayload{Intensity: 1}, 2)
	assert.Equal(t, 2, q.Len())

	events := q.Consume()
	require.Len(t, events, 2)
	assert.Equal(t, EventSoundRequest, events[0].Type)
	assert.Equal(t, core.SoundShoot, events[0].Payload)
	assert.Equal(t, EventShakeRequest, events[1].Type)
	assert.Zero(t, q.Len())
	assert.Nil(t, q.Consume())
}

func TestQueueOverflowKeepsNewest(t *testing.T) {
	q := NewEventQueue()
	total := parameter.EventQueueSize + 10
	for i := 0; i < total; i++ {
		q.Emit(EventSoundRequest, i, int64(i))
	}
	events := q.Consume()
	require.Len(t, events, parameter.EventQueueSize)
	assert.Equal(t, 10, events[0].Payload)
	assert.Equal(t, total-1, events[len(events)-1].Payload)
	assert.Equal(t, uint64(10), q.Dropped())

	q.Emit(EventSoundRequest, core.SoundHit, 0)
	after := q.Consume()
	require.Len(t, after, 1, "drain resets the ring")
	assert.Equal(t, core.SoundHit, after[0].Payload)
}

func TestQueueConcurrentProducers(t *testing.T) {
	q := NewEventQueue()
	var wg sync.WaitGroup
	for p := 0; p < 4; p++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 50; i++ {
				q.Emit(EventPulseRequest, nil, 0)
			}
		}()
	}
	wg.Wait()
	assert.Len(t, q.Consume(), 200)
}

func TestMultiAndRecorder(t *testing.T) {
	a, b := &Recorder{}, &Recorder{}
	m := Multi{a, b, Nop{}}

	m.HUD(Snapshot{Score: 5})
	m.LevelUp(nil)
	m.Resume()
	m.GameOver(42)
	m.Toast("hi")

	for _, r := range []*Recorder{a, b} {
		s, ok := r.LastSnapshot()
		require.True(t, ok)
		assert.Equal(t, 5, s.Score)
		assert.Len(t, r.LevelUps, 1)
		assert.Equal(t, 1, r.Resumes)
		assert.Equal(t, []int{42}, r.GameOvers)
		assert.Equal(t, []string{"hi"}, r.Toasts)
	}
}

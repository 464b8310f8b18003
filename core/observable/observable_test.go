package observable_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/FrauElster/goutil/core/observable"
	"github.com/FrauElster/goutil/core/state"
)

// device is a typical declaring type: it embeds an *Observable and exposes
// two observable attributes plus an ordinary, non-notifying member.
type device struct {
	*observable.Observable
	Address *observable.Field[string]
	Online  *observable.Field[bool]

	internalCounter int
}

func newDevice() *device {
	obs := observable.New()
	return &device{
		Observable: obs,
		Address:    observable.NewField(obs, "address", ""),
		Online:     observable.NewField(obs, "online", false),
	}
}

func TestField_SetNotifies(t *testing.T) {
	t.Parallel()

	d := newDevice()

	var received []any
	require.NoError(t, d.Address.Subscribe(state.NewSubscriber("s", func(v any) {
		received = append(received, v)
	})))

	require.NoError(t, d.Address.Set("10.0.0.1"))
	require.NoError(t, d.Address.Set("10.0.0.2"))
	assert.Equal(t, []any{"10.0.0.1", "10.0.0.2"}, received)

	got, err := d.Address.Get()
	require.NoError(t, err)
	assert.Equal(t, "10.0.0.2", got)
}

func TestField_TypedSubscribe(t *testing.T) {
	t.Parallel()

	d := newDevice()

	var got bool
	require.NoError(t, d.Online.SubscribeFunc("s", func(v bool) { got = v }))
	require.NoError(t, d.Online.Set(true))
	assert.True(t, got)

	require.ErrorIs(t, d.Online.SubscribeFunc("s", func(bool) {}), state.ErrDuplicateSubscriber)
	require.NoError(t, d.Online.Unsubscribe("s"))
	require.ErrorIs(t, d.Online.Unsubscribe("s"), state.ErrNotSubscribed)
}

func TestField_NotificationOrder(t *testing.T) {
	t.Parallel()

	obs := observable.New()
	f := observable.NewField(obs, "value", 0)

	var order []string
	for _, id := range []string{"s1", "s2", "s3"} {
		id := id
		require.NoError(t, f.SubscribeFunc(id, func(int) { order = append(order, id) }))
	}

	require.NoError(t, f.Set(1))
	assert.Equal(t, []string{"s1", "s2", "s3"}, order)
}

func TestField_DeepCopyIsolation(t *testing.T) {
	t.Parallel()

	obs := observable.New()
	f := observable.NewField(obs, "tags", map[string]string{})

	var fromCallback map[string]string
	require.NoError(t, f.SubscribeFunc("s", func(m map[string]string) { fromCallback = m }))

	input := map[string]string{"env": "prod"}
	require.NoError(t, f.Set(input))
	input["env"] = "mutated"

	got, err := f.Get()
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"env": "prod"}, got)

	fromCallback["env"] = "also-mutated"
	got, err = f.Get()
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"env": "prod"}, got)
}

func TestObservable_SubscribeAll(t *testing.T) {
	t.Parallel()

	d := newDevice()
	assert.Equal(t, []string{"address", "online"}, d.Attributes())

	calls := map[string]int{}
	sub := state.NewSubscriber("s", func(v any) {
		switch v.(type) {
		case string:
			calls["address"]++
		case bool:
			calls["online"]++
		}
	})
	require.NoError(t, d.Subscribe(sub))

	require.NoError(t, d.Address.Set("10.0.0.1"))
	require.NoError(t, d.Online.Set(true))
	assert.Equal(t, map[string]int{"address": 1, "online": 1}, calls)

	// Ordinary members never notify.
	d.internalCounter++
	assert.Equal(t, map[string]int{"address": 1, "online": 1}, calls)
}

func TestObservable_PartialFailure(t *testing.T) {
	t.Parallel()

	d := newDevice()
	sub := state.NewSubscriber("s", func(any) {})
	require.NoError(t, d.Online.Subscribe(sub))

	// "online" already holds the id and "bogus" is unknown, but "address"
	// must still be registered.
	err := d.Subscribe(sub, "address", "online", "bogus")
	require.Error(t, err)
	assert.ErrorIs(t, err, state.ErrDuplicateSubscriber)
	assert.ErrorIs(t, err, observable.ErrUnknownAttribute)

	require.ErrorIs(t, d.Address.Subscribe(sub), state.ErrDuplicateSubscriber)
}

func TestObservable_Unsubscribe(t *testing.T) {
	t.Parallel()

	t.Run("named attributes", func(t *testing.T) {
		t.Parallel()

		d := newDevice()
		sub := state.NewSubscriber("s", func(any) {})
		require.NoError(t, d.Subscribe(sub))

		require.NoError(t, d.Unsubscribe("s", "address"))
		require.ErrorIs(t, d.Unsubscribe("s", "address"), state.ErrNotSubscribed)
		require.NoError(t, d.Unsubscribe("s", "online"))
	})

	t.Run("unknown attribute accumulates", func(t *testing.T) {
		t.Parallel()

		d := newDevice()
		err := d.Unsubscribe("s", "bogus")
		require.ErrorIs(t, err, observable.ErrUnknownAttribute)
	})
}

func TestObservable_UnsubscribeAll(t *testing.T) {
	t.Parallel()

	d := newDevice()

	calls := 0
	sub := state.NewSubscriber("s", func(any) { calls++ })
	require.NoError(t, d.Subscribe(sub))

	require.NoError(t, d.UnsubscribeAll("s"))
	require.NoError(t, d.Address.Set("10.0.0.1"))
	require.NoError(t, d.Online.Set(true))
	assert.Zero(t, calls)

	require.ErrorIs(t, d.UnsubscribeAll("s"), state.ErrNotSubscribed)
}

func TestNewField_DuplicateAttributePanics(t *testing.T) {
	t.Parallel()

	obs := observable.New()
	observable.NewField(obs, "value", 0)
	assert.Panics(t, func() {
		observable.NewField(obs, "value", "other")
	})
}

// Package observable provides per-attribute change notification for struct
// fields, independent of the state registry.
//
// Instead of intercepting every assignment, observability is declared
// explicitly: a type embeds an *Observable and declares Field[T] members for
// the attributes that should notify. Assigning through Field.Set deep-copies
// the value in and notifies every subscriber of that attribute, in
// registration order, each with its own deep copy. Members that are not
// declared as fields never notify.
//
//	type Sensor struct {
//	    *observable.Observable
//	    Temperature *observable.Field[float64]
//	    Status      *observable.Field[string]
//	}
//
//	func NewSensor() *Sensor {
//	    obs := observable.New()
//	    return &Sensor{
//	        Observable:  obs,
//	        Temperature: observable.NewField(obs, "temperature", 0.0),
//	        Status:      observable.NewField(obs, "status", "idle"),
//	    }
//	}
//
//	sensor := NewSensor()
//	sub := state.NewSubscriber("display", func(v any) { fmt.Println(v) })
//
//	// Subscribe to every declared attribute, or name specific ones.
//	_ = sensor.Subscribe(sub)
//	_ = sensor.Temperature.Set(21.5) // notifies "display" with 21.5
//
// Subscribe and Unsubscribe over multiple attributes apply a partial-failure
// policy: every viable attribute is processed and the failures are aggregated
// with errors.Join, so a single unknown attribute or duplicate id does not
// block the rest.
//
// Like the state registry, this package performs no internal locking and
// notification runs synchronously on the assigning goroutine.
package observable

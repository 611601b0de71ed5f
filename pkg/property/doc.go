// Package property implements the device property model.
//
// Every device datum is addressed on the wire by a (siid, piid) pair and
// locally by a numbered property ID. The mapping between the two lives in an
// embedded YAML table (properties.yaml) so that adding a property does not
// touch protocol code.
//
// # Values
//
// Property values are a small tagged union: integer, boolean or string, plus
// an absent value. Inbound payloads are normalized with FromAny so that the
// rest of the engine never inspects raw JSON numbers.
//
// # Store
//
// Store holds the latest known value per property and fans out change
// notifications to listeners. Batches can be applied silently and fired
// afterwards, which lets a session apply the very first poll before the
// capability profile exists and notify only once it does.
//
//	store := property.NewStore()
//	store.AddListener(property.Battery, func(c property.Change) {
//	    fmt.Println("battery", c.Previous, "->", c.Current)
//	})
//	store.Apply(property.Battery, property.Int(87))
package property

// Package status decodes device enums and derives the robot's logical
// state from the property store.
//
// View is a pure function of the store, the capability profile and the
// session state: two views over equal inputs answer every question the
// same way. Derived booleans (docked, running, returning and so on) and
// the Can* permission predicates used to validate commands live here so
// that commands and the map layer agree on what the robot is doing.
package status

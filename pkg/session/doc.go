// Package session ties the engine together for one device.
//
// A Session owns the property store, the optimistic write ledger, the
// derived status view, the command orchestrator and the poller, and runs
// all of their timers on a single scheduler. The transport is injected, so
// the same session drives a real device client or the in-memory simulator.
//
// Lifecycle:
//
//	s, err := session.New(cfg, transport)
//	if err := s.Connect(ctx); err != nil { ... }  // profile + first fetch
//	go s.Run(ctx)                                  // polling
//	s.Commands().Start(ctx)
//	s.Close()
//
// Pushed property changes enter through OnMessage, which has the
// transport.PushHandler signature.
package session

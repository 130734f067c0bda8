// Package jsonstream writes a JSON document incrementally: keys, values,
// objects and arrays are emitted in call order and pushed to the underlying
// writer on every Flush, so a long time series is never buffered in full.
//
// What & Why:
//
//	The output of a run is a single object whose last array grows one entry
//	per computed sample. Writer tracks the nesting and the separators, and
//	delegates value encoding and indentation to a json-iterator Stream.
//
// Usage:
//
//	w := jsonstream.New(f)
//	w.ObjectStart()
//	w.Pair("readme", "demo")
//	w.Key("series")
//	w.ArrayStart()
//	w.Value(map[string]float64{"x": 1})
//	if err := w.Flush(); err != nil { ... }
//	w.ArrayEnd()
//	w.ObjectEnd()
//	err := w.Close()
//
// Errors:
//
//	Misuse (a value where a key is required, unbalanced ends) is recorded as
//	ErrState; a value json cannot represent (NaN, ±Inf) as ErrEncode; a
//	failing destination as ErrIO. The first error sticks and is returned by
//	Flush, Close and Err.
package jsonstream

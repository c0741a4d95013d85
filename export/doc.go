// Package export implements the dispatch layer: the flat, handle-based
// operations a foreign caller drives. Every operation that accepts a handle
// takes it as a raw int64 exactly as the boundary delivers it and validates
// it in full before touching pool state.
//
// A Library bundles the pool, the arithmetic primitive, and the string
// registry. There is no process-wide singleton; the embedding process
// constructs a Library at initialization and passes it to every call site:
//
//	lib := export.New()
//	defer lib.Close()
//
//	h := lib.FromFloat(0.5)
//	if h == export.Invalid {
//	    // construction failed, already logged
//	}
//
// Fallible operations return a sentinel instead of an error: Invalid (-1)
// for handles, a FloatResult with Valid=false, a String with nil Ptr. The
// underlying structured error is logged once before the sentinel is
// returned; nothing panics across the boundary.
package export

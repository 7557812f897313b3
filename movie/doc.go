// Package movie implements a frame sequence player: an ordered list of
// textures, each shown for its own duration and optionally paired with a
// sound cue, advanced by an external driver once per tick.
//
// A Player is not safe for concurrent use. The goroutine that calls Advance
// should also perform every mutation; callers that need to mutate from
// elsewhere serialise through that goroutine.
package movie

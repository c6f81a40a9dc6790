// Package tracker is the map client side of the bus tracker.
//
// A Poller requests the /api/buses projection on a fixed interval (plus once
// immediately on Start), turns every entity that carries a position into a
// styled Marker, and swaps the whole set into a Layer in one step. A failed
// poll leaves the previous marker set in place until the next successful tick.
//
// Ticks are not mutually exclusive: when a fetch outlives the interval the
// next tick starts anyway, and whichever finishes last wins the swap.
package tracker

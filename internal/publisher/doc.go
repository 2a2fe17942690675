// Package publisher writes allocation results to a NATS JetStream KV bucket.
//
// Each run is published as one key per room plus a meta key:
//
//	<prefix>.room.R001  -> RoomRecord (JSON)
//	<prefix>.room.R002  -> RoomRecord (JSON)
//	<prefix>.meta       -> MetaRecord (JSON): summary, unallocated IDs, fingerprint
//
// Every record carries the same Envelope (run ID, version, fingerprint), so a
// consumer can tell whether the rooms it read belong to the same run as the
// meta key. Versions increase monotonically across publisher restarts:
// DiscoverVersion seeds the counter from the meta key already in the bucket.
// Room keys left over from a previous, larger allocation are deleted after
// the new rooms are written.
package publisher

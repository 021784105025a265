// Package extract streams a compressed knowledge-base JSON dump and pulls
// out (entity, property, value) triples for one property, writing them as
// size-bounded TSV batch files.
//
// The dump format is a giant JSON array with one entity object per line
// ("[", entity lines with trailing commas, "]"). The extractor never holds
// more than one batch of entities' triples in memory: lines are decoded
// one at a time, malformed lines are counted and skipped, and every
// EntitiesPerBatch entities the accumulated triples are flushed to
// batch_<i>.tsv (0-based, with a header row).
//
// This is the upstream collaborator that produces the relation triples the
// path pipeline is built on; it shares the toolkit's logging and duration
// formatting but is otherwise independent of the traversal packages.
package extract

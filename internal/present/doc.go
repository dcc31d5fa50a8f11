package present

// Package present derives the two display collections shown on screen from a
// read-only catalog: the cover list, sorted by display rank, and the titles
// outline of albums with their songs as children. Derivation has no side
// effects and is deterministic for a given catalog and resolver.

// Package cursor provides selection types for the autopair engine:
// an immutable Anchor/Head Selection value type and a Set of sorted,
// disjoint selections with a designated primary.
package cursor

// Package factory builds synthetic trees.
//
// Every builder returns a fresh, fully populated node with no source
// location and never mutates its inputs. Builders perform no validation:
// passing a node of the wrong kind where a specific kind is required is a
// programming error, and most such mistakes are rejected by the compiler
// through the sealed interfaces of package ast.
//
// Builders that take a list come in two forms, one taking the elements as
// variadic arguments (Block) and one taking a slice (BlockFromList). Both
// produce structurally identical trees.
package factory

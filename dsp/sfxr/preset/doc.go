// Package preset derives sfxr parameter sets from a named archetype, a seed
// and a number of mutation rounds.
//
// Generate is a pure function: the same preset, mutation count and seed
// always yield the same Params. The sequence of generator draws for each
// preset is part of that contract; changing the order or the number of draws
// changes every sound generated from a stored recipe.
package preset

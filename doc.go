// Package evostrat provides the substrate for a parallel (μ,λ) evolution
// strategy: a generic work-partition/reduce executor, two built-in
// partition strategies, and three pipeline stages (population
// initialization, fitness evaluation, sort-by-predicate) built on top of it.
//
// Domain-specific operators (crossover, mutation, selection) and the outer
// generation loop are host concerns; this package only provides the
// concurrency substrate they run on.
package evostrat

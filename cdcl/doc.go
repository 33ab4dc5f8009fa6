/*
Package cdcl implements a conflict-driven clause-learning (CDCL) SAT engine:
the clause database, watch scheme, propagation, conflict analysis, clause
learning, restart/reduction/simplification heuristics and an optional
inprocessing preprocessor.

The solver accepts a set of CNF clauses over dense Boolean variables and
answers Sat, Unsat, or Unknown (when a conflict budget is exhausted). It
knows nothing about SMT-level theories, term tables, or file formats;
callers create variables and add clauses through the API below and read
the resulting model back through Value/AllValues/TrueLiterals.

Building a problem

    s := cdcl.NewSolver(0, cdcl.NewParams())
    a := s.NewVar()
    b := s.NewVar()
    c := s.NewVar()
    s.AddClause(a.Lit(false), b.Lit(false), c.Lit(false))
    s.AddClause(a.Lit(true), b.Lit(false))

Solving a problem

    switch s.Solve() {
    case cdcl.Sat:
        for _, v := range []cdcl.Var{a, b, c} {
            fmt.Println(v, s.Value(v))
        }
    case cdcl.Unsat:
        fmt.Println("no model")
    case cdcl.Unknown:
        fmt.Println("conflict budget exhausted")
    }

The zero Var is reserved and is always bound to true; user variables start
at 1. Solve must not be called again after Unsat unless Reset is called
first.
*/
package cdcl

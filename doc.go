// Package hostelmatch assigns students to fixed-capacity hostel rooms.
//
// A roster of heterogeneous tabular records is normalized onto canonical
// student attributes and partitioned into rooms by one of two strategies:
//
//   - greedy: constraint-first scored matching. Rooms are never mixed-gender,
//     students sharing course and year are preferred.
//   - cluster: k-means similarity clustering on lifestyle features, then each
//     cluster is packed into rooms. Deterministic for a fixed seed.
//
// Every roster student appears exactly once in the result, either in a room or
// in the unallocated remainder.
//
// # Quick Start
//
// Stateless allocation of an already normalized roster:
//
//	result, err := hostelmatch.Assign(roster, hostelmatch.Policy{Capacity: 2})
//
// Full pipeline from a roster file:
//
//	cfg := hostelmatch.DefaultConfig()
//	cfg.Strategy = hostelmatch.StrategyCluster
//	cfg.Capacity = 3
//
//	engine, err := hostelmatch.NewEngine(&cfg, hostelmatch.WithLogger(logger))
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	src, err := source.FromPath("students.xlsx")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	rep, err := engine.Run(ctx, src)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(rep.Summary.TotalRooms)
//
// # Errors
//
// Unresolvable mandatory columns fail with *SchemaError (errors.Is ErrSchema),
// an empty roster with ErrNoData and an invalid capacity or room limit with
// *CapacityError (errors.Is ErrCapacity). Policy errors are reported before any
// allocation work begins.
//
// See cmd/hostelmatch for the command-line front end.
package hostelmatch

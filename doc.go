// Package modelinspector is the data core of a model inspector for
// algebraic optimization models: it turns the sparse Jacobian of a model
// instance into small dense views a user can browse.
//
// What is in here?
//
//	labeltree/   — label trees of a symbol's entries; uniting branches
//	sparse/      — sorted sparse rows, the Jacobian, the sign-bucketed CoefficientCount
//	model/       — symbols, solver special values, the Instance interface and a YAML fixture loader
//	aggregation/ — aggregation types, items and the Aggregator that unites label branches
//	view/        — view types, configurations, value filters and id-issuing sessions
//	matrix/      — the dense result buffer every view owns
//	provider/    — Scaling, Overview, Count, Average, Symbols, Aggregated and Postopt views,
//	               the caching Handler and the background Loader
//	ctxlog/      — a *slog.Logger carried through context.Context
//	cmd/modelinspect — a CLI that loads a fixture and prints any view
//
// Quick start:
//
//	m, _ := model.LoadYAML("transport.yaml")
//	h, _ := provider.NewHandler(m)
//	s := view.NewSession()
//
//	cfg := s.NewConfig(view.Count)
//	_ = h.LoadData(ctx, cfg)
//	fmt.Println(h.Data(0, 0, cfg.ID)) // nonzeros of the first equation × first variable block
//
// Views are computed once and cached by view id; queries answer an empty
// value instead of failing for unknown ids and out-of-range cells.
package modelinspector

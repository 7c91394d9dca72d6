//-------------------------------------------------------------------------
//
// pgEdge Retail Data Generator
//
// Copyright (c) 2025 - 2026, pgEdge, Inc.
// This software is released under The PostgreSQL License
//
//-------------------------------------------------------------------------

package retail

import (
	"context"
	"fmt"

	"github.com/pgEdge/pgedge-retailgen/internal/datagen"
	"github.com/pgEdge/pgedge-retailgen/internal/logging"
	"github.com/pgEdge/pgedge-retailgen/internal/temporal"
)

// Stage names double as table names.
const (
	stageStores     = TableStores
	stageProducts   = TableProducts
	stageCustomers  = TableCustomers
	stagePromotions = TablePromotions
	stageOrders     = TableOrders
	stageOrderItems = TableOrderItems
	stageInventory  = TableInventorySnapshots
)

// stage is one node of the generation dependency graph. Stages run
// sequentially in slice order; deps are asserted against that order
// before anything runs.
type stage struct {
	name string
	deps []string
	run  func(ctx context.Context, s *datagen.Stream, d *Dataset) error
}

// Assembler runs the generation stages in dependency order against one
// resolved profile and validates the result as a whole. Generation is
// all-or-nothing: a Dataset is returned only if every table was
// produced and every invariant holds.
type Assembler struct {
	profile Profile
	pattern temporal.Pattern
}

// NewAssembler creates an assembler for the given profile using the
// standard retail activity pattern.
func NewAssembler(p Profile) *Assembler {
	return &Assembler{
		profile: p,
		pattern: temporal.NewRetailDay(),
	}
}

// SetPattern overrides the order-timestamp activity pattern.
func (a *Assembler) SetPattern(pat temporal.Pattern) {
	a.pattern = pat
}

// Generate is a convenience wrapper: resolve-and-run with the standard
// pattern.
func Generate(ctx context.Context, p Profile) (*Dataset, error) {
	return NewAssembler(p).Generate(ctx)
}

func (a *Assembler) stages() []stage {
	return []stage{
		{name: stageStores, run: func(ctx context.Context, s *datagen.Stream, d *Dataset) error {
			rows, err := generateStores(s, a.profile)
			d.Stores = rows
			return err
		}},
		{name: stageProducts, run: func(ctx context.Context, s *datagen.Stream, d *Dataset) error {
			rows, err := generateProducts(s, a.profile)
			d.Products = rows
			return err
		}},
		{name: stageCustomers, run: func(ctx context.Context, s *datagen.Stream, d *Dataset) error {
			rows, err := generateCustomers(s, a.profile)
			d.Customers = rows
			return err
		}},
		{name: stagePromotions, deps: []string{stageProducts},
			run: func(ctx context.Context, s *datagen.Stream, d *Dataset) error {
				rows, err := generatePromotions(s, a.profile, d.Products)
				d.Promotions = rows
				return err
			}},
		{name: stageOrders, deps: []string{stageStores, stageCustomers},
			run: func(ctx context.Context, s *datagen.Stream, d *Dataset) error {
				rows, err := generateOrders(s, a.profile, d.Stores, d.Customers, a.pattern)
				d.Orders = rows
				return err
			}},
		{name: stageOrderItems, deps: []string{stageOrders, stageProducts, stagePromotions},
			run: func(ctx context.Context, s *datagen.Stream, d *Dataset) error {
				rows, err := generateOrderItems(s, d.Orders, d.Products, d.Promotions)
				d.OrderItems = rows
				return err
			}},
		{name: stageInventory, deps: []string{stageStores, stageProducts},
			run: func(ctx context.Context, s *datagen.Stream, d *Dataset) error {
				rows, err := generateInventory(s, a.profile, d.Stores, d.Products)
				d.InventorySnapshots = rows
				return err
			}},
	}
}

// Generate runs all stages and the validation pass. Cancellation is
// honored between stages, never mid-table.
func (a *Assembler) Generate(ctx context.Context) (*Dataset, error) {
	stages := a.stages()
	if err := verifyStageOrder(stages); err != nil {
		return nil, err
	}

	logging.Info().
		Str("scale", a.profile.Scale).
		Int("days", a.profile.Days).
		Uint64("seed", a.profile.Seed).
		Str("window_start", a.profile.WindowStart.Format("2006-01-02")).
		Str("window_end", a.profile.WindowEnd.Format("2006-01-02")).
		Msg("Generating retail dataset")

	master := datagen.NewStream(a.profile.Seed)
	dataset := &Dataset{Profile: a.profile}

	for i, st := range stages {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("generation cancelled before stage %s: %w", st.name, err)
		}

		if err := st.run(ctx, master.Stage(uint64(i)), dataset); err != nil {
			return nil, fmt.Errorf("stage %s: %w", st.name, err)
		}
		logging.Info().
			Str("stage", st.name).
			Int("rows", dataset.RowCounts()[st.name]).
			Msg("Stage complete")
	}

	if err := dataset.Validate(); err != nil {
		return nil, err
	}
	logging.Info().Msg("Dataset validated")

	return dataset, nil
}

// verifyStageOrder asserts that every stage dependency appears earlier
// in the stage list. A violation is a defect, not bad input.
func verifyStageOrder(stages []stage) error {
	seen := make(map[string]bool, len(stages))
	for _, st := range stages {
		for _, dep := range st.deps {
			if !seen[dep] {
				return consistencyErrorf(st.name, "stage dependency %q has not run", dep)
			}
		}
		seen[st.name] = true
	}
	return nil
}

package main

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/emko/mpr/pkg/domain/entities"
	"github.com/emko/mpr/pkg/domain/services/delay"
	"github.com/emko/mpr/pkg/domain/services/progress"
	"github.com/emko/mpr/pkg/domain/services/schedule"
	"github.com/emko/mpr/pkg/domain/services/weighting"
)

func main() {
	start := time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC)
	contract := start.AddDate(0, 0, entities.DefaultDeliveryLeadWeeks*7)

	// A small equipment package with cost amounts.
	items := []entities.Item{
		{Name: "Catalyst", Amount: decimal.NewFromInt(120000), ManufacturingWeeks: 54},
		{Name: "Ammonia Tank", Amount: decimal.NewFromInt(45000), ManufacturingWeeks: 20},
		{Name: "Raw Material", Amount: decimal.NewFromInt(15000), ManufacturingWeeks: 0},
	}

	fmt.Println("📅 Planning schedule from", start.Format("2006-01-02"))
	items, issues := schedule.Schedule(items, start)
	for _, issue := range issues {
		fmt.Printf("  ⚠️  %s\n", issue)
	}

	// Mark some work as underway.
	procDone := start.AddDate(0, 0, 14)
	items[0].Phases[entities.Procurement].ActualStart = &start
	items[0].Phases[entities.Procurement].ActualEnd = &procDone
	items[1].Phases[entities.Procurement].ActualStart = &start

	// Resolve weights from cost amounts.
	w := weighting.Resolve(items)
	items = weighting.Apply(items, w)
	fmt.Printf("⚖️  Weighting strategy: %s\n", w.Strategy)

	// Compute progress for the current reporting month.
	asOf := start.AddDate(0, 1, 10)
	items, agg := progress.Compute(items, asOf)

	fmt.Println()
	fmt.Println("📊 Progress for the month of", asOf.Format("January 2006"))
	for _, item := range items {
		fmt.Printf("  %-14s weight %6s%%  plan %5.1f%%  actual %5.1f%%  monthly %+5.1f%%\n",
			item.Name, item.WeightPercent.StringFixed(2),
			item.PlanCurr, item.ActualCurr, item.MonthlyProgress)
	}
	fmt.Printf("  Overall: plan %.2f%% / actual %.2f%% (%s)\n",
		agg.OverallPlan, agg.OverallActual, agg.Status)

	// Check the schedule against the contract date.
	alerts := delay.Analyze(items, contract)
	if len(alerts) > 0 {
		fmt.Println()
		fmt.Printf("🚨 %d delay alerts:\n", len(alerts))
		for _, msg := range delay.Messages(alerts) {
			fmt.Printf("  %s\n", msg)
		}
	}
}

//-------------------------------------------------------------------------
//
// pgEdge Retail Data Generator
//
// Copyright (c) 2025 - 2026, pgEdge, Inc.
// This software is released under The PostgreSQL License
//
//-------------------------------------------------------------------------

package retail

// Fixed reference taxonomies. Slices, not maps: generation iterates
// these in a fixed order so output stays reproducible.

var regions = []string{"West", "Central", "East"}

var citiesByRegion = map[string][]string{
	"West":    {"Vancouver", "Seattle", "Portland", "San Francisco", "San Jose", "Calgary"},
	"Central": {"Denver", "Dallas", "Houston", "Chicago", "Minneapolis", "Kansas City"},
	"East":    {"New York", "Boston", "Philadelphia", "Toronto", "Montreal", "Ottawa"},
}

// Rough per-region lat/lon bounding boxes.
var regionBoxes = map[string][4]float64{
	"West":    {37.0, 49.5, -123.5, -121.0},
	"Central": {32.0, 45.0, -106.0, -93.0},
	"East":    {40.0, 46.0, -79.0, -70.0},
}

var storeFormats = []string{"supermarket", "express", "warehouse"}
var storeFormatWeights = []float64{0.5, 0.3, 0.2}

type category struct {
	name    string
	brands  []string
	costLo  float64
	costHi  float64
	markup  float64 // lower bound on markup factor
	markupX float64 // upper bound on markup factor
}

var categories = []category{
	{"Beverages", []string{"SparkleCo", "H2Only", "BeanWorks", "Leaf&Lime"}, 0.80, 6.00, 1.40, 2.40},
	{"Snacks", []string{"CrunchLabs", "NuttyBuddy", "SweetTreats", "SaltyWave"}, 0.50, 8.00, 1.35, 2.20},
	{"Household", []string{"HomeGuard", "ShinePro", "EcoClean", "FreshNest"}, 2.00, 15.00, 1.30, 2.00},
	{"Personal Care", []string{"GlowCare", "PureForm", "DailyZen", "Wellness+"}, 1.50, 12.00, 1.40, 2.30},
	{"Produce", []string{"GreenFields", "SunValley", "OrchardPrime"}, 0.50, 5.00, 1.25, 1.80},
	{"Frozen", []string{"ArcticBite", "FrostyFarm", "CoolCuisine"}, 2.00, 10.00, 1.30, 2.00},
}

var segments = []string{"casual", "loyal", "bargain", "premium"}
var segmentWeights = []float64{0.5, 0.2, 0.2, 0.1}

var paymentTypes = []string{"card", "cash", "mobile"}
var paymentWeights = []float64{0.7, 0.15, 0.15}

var promoTypes = []string{"BOGO-lite", "PercentOff", "PriceDrop"}

package entities

// CatalogEntry pairs an equipment category with its usual manufacturing
// duration in weeks.
type CatalogEntry struct {
	Name  string
	Weeks float64
}

// DefaultCatalog is the built-in SCR package equipment list. Table order is
// meaningful: new projects start with rows in exactly this order.
var DefaultCatalog = []CatalogEntry{
	{"Ammonia Injection Grid", 10},
	{"Catalyst", 54},
	{"Dilution Tank", 12},
	{"Ammonia Tank", 20},
	{"Vaporizer", 12},
	{"Ammonia_RA Supply Pump", 20},
	{"Fan(Hot Gas_Cooling Air)", 24},
	{"Ammonia Flow Control Unit Skid", 16},
	{"Manual Valve", 16},
	{"PRV & PSV", 16},
	{"Ystrainer", 16},
	{"Instrument", 24},
	{"Control Valve & Damper", 24},
	{"Analyzer", 36},
	{"Catalyst Structure", 12},
	{"Header & Manifold", 12},
	{"Piping Spool", 20},
	{"Pipe Support", 12},
	{"Raw Material", 12},
	{"Panel(MCC, LCP, E.H.T, Chemical)", 24},
	{"Hook Up Material", 20},
	{"Cable", 20},
	{"Cable Tray", 16},
	{"etc.", 16},
	{"Lighting System", 16},
	{"Atomizing Nozzle", 12},
	{"Breather Valve", 24},
	{"Manual Damper", 24},
	{"Expansion Joint", 12},
	{"Eye Shower", 8},
	{"Insulation", 8},
}

// CatalogWeeks returns the default manufacturing duration for a known item
// category, or 0 for unknown names.
func CatalogWeeks(name string) float64 {
	for _, e := range DefaultCatalog {
		if e.Name == name {
			return e.Weeks
		}
	}
	return 0
}

// DefaultItems builds a fresh item table from the catalog. Amounts and
// weights start at zero; all dates start unset.
func DefaultItems() []Item {
	items := make([]Item, len(DefaultCatalog))
	for i, e := range DefaultCatalog {
		items[i] = Item{
			Name:               e.Name,
			ManufacturingWeeks: e.Weeks,
		}
	}
	return items
}

package engine

import (
	"fmt"

	"tradie_quote/internal/domain/entities"
)

// Catalog is the immutable set of trade categories the estimator scores job
// descriptions against. Declaration order matters: it is the final tie-break
// during classification, so more common trades are listed first within each
// group.
type Catalog []entities.TradeCategory

// Validate checks the catalog invariants: at least one entry, no entry with
// an empty keyword set, and a positive default hourly rate everywhere.
func (c Catalog) Validate() error {
	if len(c) == 0 {
		return fmt.Errorf("catalog is empty")
	}
	for i, tc := range c {
		if len(tc.Keywords) == 0 {
			return fmt.Errorf("catalog entry %d (%s/%s): empty keyword set", i, tc.Category, tc.Subcategory)
		}
		if tc.DefaultHourlyRate <= 0 {
			return fmt.Errorf("catalog entry %d (%s/%s): non-positive default hourly rate", i, tc.Category, tc.Subcategory)
		}
	}
	return nil
}

// DefaultCatalog returns the built-in trade catalog for Australian sole
// traders. Callers needing alternate rule tables (tests, other markets) can
// construct their own Catalog and hand it to NewEstimator.
func DefaultCatalog() Catalog {
	return Catalog{
		// Electrical & data
		{
			Category:          "electrical",
			Subcategory:       "residential_electrician",
			Keywords:          []string{"electrical", "electrician", "wiring", "power", "lights", "lighting", "outlet", "socket", "powerpoint", "gpo", "switchboard", "rcd", "safety switch", "downlight", "led"},
			DefaultHourlyRate: 120,
			CommonItems:       []string{"Electrical labour", "Cable and wiring", "Power outlets", "Light fittings", "Safety switches"},
			Compliance:        "AS/NZS 3000 electrical standards",
		},
		{
			Category:          "electrical",
			Subcategory:       "data_cabling",
			Keywords:          []string{"data cabling", "network", "ethernet", "cat6", "cat5", "internet", "wifi", "router", "modem"},
			DefaultHourlyRate: 110,
			CommonItems:       []string{"Data cabling installation", "Network points", "Patch panels", "Cable testing"},
			Compliance:        "AS/CA S008 cabling standards",
		},
		{
			Category:          "electrical",
			Subcategory:       "solar_installer",
			Keywords:          []string{"solar", "panels", "inverter", "battery", "renewable", "grid tie", "off grid"},
			DefaultHourlyRate: 130,
			CommonItems:       []string{"Solar panel installation", "Inverter setup", "Battery system", "Grid connection"},
			Compliance:        "Clean Energy Council standards",
		},
		{
			Category:          "electrical",
			Subcategory:       "ev_charger",
			Keywords:          []string{"ev charger", "electric vehicle", "car charger", "tesla", "charging station"},
			DefaultHourlyRate: 125,
			CommonItems:       []string{"EV charger installation", "Electrical upgrade", "Dedicated circuit"},
			Compliance:        "AS/NZS 3000 EV charging standards",
		},

		// Plumbing & gas
		{
			Category:          "plumbing",
			Subcategory:       "maintenance_plumber",
			Keywords:          []string{"plumbing", "plumber", "pipes", "water", "drainage", "leak", "tap", "toilet", "shower", "basin", "faucet", "mixer"},
			DefaultHourlyRate: 110,
			CommonItems:       []string{"Plumbing labour", "Pipe fittings", "Taps and mixers", "Toilet repairs"},
			Compliance:        "AS/NZS 3500 plumbing standards",
		},
		{
			Category:          "plumbing",
			Subcategory:       "gas_fitter",
			Keywords:          []string{"gas", "gas fitting", "gas line", "gas appliance", "gas heater", "gas stove", "gas hot water"},
			DefaultHourlyRate: 120,
			CommonItems:       []string{"Gas line installation", "Gas appliance connection", "Gas safety testing"},
			Compliance:        "AS/NZS 5601 gas installation standards",
		},
		{
			Category:          "plumbing",
			Subcategory:       "hot_water_installer",
			Keywords:          []string{"hot water", "water heater", "instantaneous", "storage", "gas hot water", "electric hot water"},
			DefaultHourlyRate: 115,
			CommonItems:       []string{"Hot water system", "Installation labour", "Pipe connections", "Gas/electrical connections"},
			Compliance:        "AS/NZS 3500 hot water standards",
		},

		// Building, carpentry and renovations
		{
			Category:          "carpentry",
			Subcategory:       "carpenter",
			Keywords:          []string{"carpenter", "carpentry", "timber", "wood", "framing", "decking", "pergola", "shed", "deck"},
			DefaultHourlyRate: 95,
			CommonItems:       []string{"Carpentry labour", "Timber materials", "Hardware and fixings", "Structural work"},
			Compliance:        "Australian Building Code",
		},
		{
			Category:          "handyman",
			Subcategory:       "general_handyman",
			Keywords:          []string{"handyman", "maintenance", "repair", "fix", "install", "mount", "hang", "general repairs", "shelf", "shelves", "floating shelf"},
			DefaultHourlyRate: 85,
			CommonItems:       []string{"Handyman labour", "General materials", "Hardware and fixings", "Minor repairs"},
			Compliance:        "General building standards",
		},
		{
			Category:          "renovation",
			Subcategory:       "kitchen_installer",
			Keywords:          []string{"kitchen", "kitchen renovation", "kitchen install", "cabinetry", "benchtop", "splashback"},
			DefaultHourlyRate: 100,
			CommonItems:       []string{"Kitchen installation", "Cabinetry", "Benchtops", "Hardware and fittings"},
			Compliance:        "Australian Building Code",
		},
		{
			Category:          "renovation",
			Subcategory:       "bathroom_installer",
			Keywords:          []string{"bathroom", "bathroom renovation", "ensuite", "vanity", "shower screen", "tiles", "shower caddy", "towel rail"},
			DefaultHourlyRate: 105,
			CommonItems:       []string{"Bathroom renovation", "Tiling work", "Waterproofing", "Fixtures and fittings"},
			Compliance:        "AS 3740 waterproofing standards",
		},

		// Painting & surface prep
		{
			Category:          "painting",
			Subcategory:       "interior_painter",
			Keywords:          []string{"painting", "painter", "interior", "walls", "ceiling", "primer", "paint"},
			DefaultHourlyRate: 75,
			CommonItems:       []string{"Painting labour", "Paint and primer", "Surface preparation", "Brushes and rollers"},
			Compliance:        "Australian paint standards",
		},
		{
			Category:          "painting",
			Subcategory:       "exterior_painter",
			Keywords:          []string{"exterior painting", "house painting", "weatherboard", "render", "fence painting"},
			DefaultHourlyRate: 80,
			CommonItems:       []string{"Exterior painting", "Weather-resistant paint", "Surface preparation", "Scaffolding"},
			Compliance:        "Weather protection standards",
		},

		// Landscaping & outdoors
		{
			Category:          "landscaping",
			Subcategory:       "landscaper",
			Keywords:          []string{"landscaping", "garden", "plants", "irrigation", "retaining wall", "paving", "turf"},
			DefaultHourlyRate: 85,
			CommonItems:       []string{"Landscaping labour", "Plants and materials", "Irrigation components", "Soil and mulch"},
			Compliance:        "Horticulture standards",
		},
		{
			Category:          "landscaping",
			Subcategory:       "lawn_mowing",
			Keywords:          []string{"lawn mowing", "grass cutting", "hedge trimming", "garden maintenance"},
			DefaultHourlyRate: 60,
			CommonItems:       []string{"Lawn mowing service", "Garden maintenance", "Green waste removal"},
			Compliance:        "Garden maintenance standards",
		},
		{
			Category:          "fencing",
			Subcategory:       "fencer",
			Keywords:          []string{"fencing", "fence", "gate", "colorbond", "timber fence", "pool fence"},
			DefaultHourlyRate: 90,
			CommonItems:       []string{"Fencing materials", "Posts and rails", "Gates and hardware", "Installation labour"},
			Compliance:        "AS 1926 swimming pool fencing",
		},

		// Concrete & driveway
		{
			Category:          "concrete",
			Subcategory:       "concreter",
			Keywords:          []string{"concrete", "concreting", "driveway", "slab", "footpath", "exposed aggregate"},
			DefaultHourlyRate: 95,
			CommonItems:       []string{"Concrete supply", "Reinforcement", "Formwork", "Finishing labour"},
			Compliance:        "AS 3600 concrete structures",
		},
		{
			Category:          "paving",
			Subcategory:       "paver",
			Keywords:          []string{"paving", "pavers", "brick paving", "stone paving", "driveway paving"},
			DefaultHourlyRate: 85,
			CommonItems:       []string{"Paving materials", "Sand and cement", "Edge restraints", "Installation labour"},
			Compliance:        "Paving installation standards",
		},

		// Tiling & flooring
		{
			Category:          "tiling",
			Subcategory:       "tiler",
			Keywords:          []string{"tiling", "tiles", "floor tiles", "wall tiles", "bathroom tiles", "kitchen tiles"},
			DefaultHourlyRate: 90,
			CommonItems:       []string{"Tiles and materials", "Adhesive and grout", "Waterproofing", "Tiling labour"},
			Compliance:        "AS 3958 tiling standards",
		},
		{
			Category:          "flooring",
			Subcategory:       "floor_installer",
			Keywords:          []string{"flooring", "laminate", "timber floor", "vinyl", "carpet", "floor installation"},
			DefaultHourlyRate: 85,
			CommonItems:       []string{"Flooring materials", "Underlay", "Installation labour", "Finishing trim"},
			Compliance:        "Flooring installation standards",
		},

		// Roofing & guttering
		{
			Category:          "roofing",
			Subcategory:       "roofer",
			Keywords:          []string{"roofing", "roof", "tiles", "metal roof", "colorbond", "roof repair", "guttering"},
			DefaultHourlyRate: 100,
			CommonItems:       []string{"Roofing materials", "Guttering", "Flashing", "Installation labour"},
			Compliance:        "AS 1562 roofing standards",
		},

		// Heating, cooling & air
		{
			Category:          "hvac",
			Subcategory:       "aircon_installer",
			Keywords:          []string{"air conditioning", "aircon", "split system", "ducted", "heating", "cooling"},
			DefaultHourlyRate: 115,
			CommonItems:       []string{"Air conditioning unit", "Installation labour", "Refrigerant", "Electrical connections"},
			Compliance:        "Refrigeration handling license",
		},

		// Windows & glazing
		{
			Category:          "glazing",
			Subcategory:       "glazier",
			Keywords:          []string{"glass", "glazing", "windows", "shower screen", "splashback", "mirror"},
			DefaultHourlyRate: 95,
			CommonItems:       []string{"Glass materials", "Installation labour", "Sealants", "Hardware"},
			Compliance:        "AS 1288 glass standards",
		},

		// Security & access
		{
			Category:          "security",
			Subcategory:       "locksmith",
			Keywords:          []string{"locksmith", "locks", "security", "deadlock", "door lock", "safe"},
			DefaultHourlyRate: 110,
			CommonItems:       []string{"Lock hardware", "Installation labour", "Key cutting", "Security assessment"},
			Compliance:        "Security installation standards",
		},
		{
			Category:          "security",
			Subcategory:       "cctv_installer",
			Keywords:          []string{"cctv", "security camera", "surveillance", "alarm system", "security system"},
			DefaultHourlyRate: 105,
			CommonItems:       []string{"CCTV equipment", "Cabling", "Installation labour", "System setup"},
			Compliance:        "Security equipment standards",
		},

		// Cleaning & maintenance
		{
			Category:          "cleaning",
			Subcategory:       "pressure_washing",
			Keywords:          []string{"pressure washing", "pressure cleaning", "driveway cleaning", "house washing"},
			DefaultHourlyRate: 70,
			CommonItems:       []string{"Pressure washing service", "Cleaning chemicals", "Equipment hire"},
			Compliance:        "Environmental cleaning standards",
		},

		// Automotive trades
		{
			Category:          "automotive",
			Subcategory:       "auto_electrician",
			Keywords:          []string{"auto electrician", "car electrical", "dual battery", "dash cam", "uhf radio", "trailer wiring"},
			DefaultHourlyRate: 120,
			CommonItems:       []string{"Auto electrical labour", "Wiring and cables", "Switches and fuses", "Electrical components"},
			Compliance:        "Automotive electrical standards",
		},
		{
			Category:          "automotive",
			Subcategory:       "fourwd_modifier",
			Keywords:          []string{"4wd", "light bar", "winch", "bull bar", "canopy", "drawers", "redarc", "victron"},
			DefaultHourlyRate: 110,
			CommonItems:       []string{"4WD accessories", "Installation labour", "Wiring and mounting", "Custom fabrication"},
			Compliance:        "Vehicle modification standards",
		},
		{
			Category:          "automotive",
			Subcategory:       "mobile_mechanic",
			Keywords:          []string{"mobile mechanic", "car service", "brake repair", "suspension", "exhaust", "tune up"},
			DefaultHourlyRate: 100,
			CommonItems:       []string{"Mechanical labour", "Parts and components", "Fluids and filters", "Diagnostic testing"},
			Compliance:        "Automotive repair standards",
		},
	}
}

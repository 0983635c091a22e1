package tables

// Section is a hot-rolled I section (BS 4-1). Lengths in mm.
type Section struct {
	Designation string  `json:"designation"`
	Family      string  `json:"family"`
	DepthMM     float64 `json:"depth_mm"`
	WidthMM     float64 `json:"width_mm"`
	WebMM       float64 `json:"web_mm"`
	FlangeMM    float64 `json:"flange_mm"`
	AreaMM2     float64 `json:"area_mm2"`
	IxMM4       float64 `json:"ix_mm4"`
	IyMM4       float64 `json:"iy_mm4"`
	ZxMM3       float64 `json:"zx_mm3"`
	RxMM        float64 `json:"rx_mm"`
	RyMM        float64 `json:"ry_mm"`
	MassKgM     float64 `json:"mass_kg_m"`
}

// Families are listed smallest first; trial selection takes the first entry
// that satisfies demand.
var sections = map[string][]Section{
	"UB": {
		{Designation: "203x133x25 UB", Family: "UB", DepthMM: 203.2, WidthMM: 133.2, WebMM: 5.7, FlangeMM: 7.8, AreaMM2: 3200, IxMM4: 23.4e6, IyMM4: 3.08e6, ZxMM3: 230e3, RxMM: 85.6, RyMM: 31.0, MassKgM: 25.1},
		{Designation: "254x146x31 UB", Family: "UB", DepthMM: 251.4, WidthMM: 146.1, WebMM: 6.0, FlangeMM: 8.6, AreaMM2: 3970, IxMM4: 44.1e6, IyMM4: 4.48e6, ZxMM3: 351e3, RxMM: 105, RyMM: 33.5, MassKgM: 31.1},
		{Designation: "305x165x40 UB", Family: "UB", DepthMM: 303.4, WidthMM: 165.0, WebMM: 6.0, FlangeMM: 10.2, AreaMM2: 5130, IxMM4: 85.0e6, IyMM4: 7.64e6, ZxMM3: 560e3, RxMM: 129, RyMM: 38.6, MassKgM: 40.3},
		{Designation: "356x171x51 UB", Family: "UB", DepthMM: 355.0, WidthMM: 171.5, WebMM: 7.4, FlangeMM: 11.5, AreaMM2: 6490, IxMM4: 141e6, IyMM4: 9.68e6, ZxMM3: 796e3, RxMM: 147, RyMM: 38.6, MassKgM: 51.0},
		{Designation: "406x178x60 UB", Family: "UB", DepthMM: 406.4, WidthMM: 177.9, WebMM: 7.9, FlangeMM: 12.8, AreaMM2: 7650, IxMM4: 215e6, IyMM4: 12.0e6, ZxMM3: 1060e3, RxMM: 168, RyMM: 39.7, MassKgM: 60.1},
		{Designation: "457x191x67 UB", Family: "UB", DepthMM: 457.0, WidthMM: 190.4, WebMM: 8.5, FlangeMM: 12.7, AreaMM2: 8540, IxMM4: 289e6, IyMM4: 14.5e6, ZxMM3: 1265e3, RxMM: 184, RyMM: 41.3, MassKgM: 67.1},
		{Designation: "533x210x82 UB", Family: "UB", DepthMM: 533.1, WidthMM: 208.7, WebMM: 9.6, FlangeMM: 13.2, AreaMM2: 10500, IxMM4: 413e6, IyMM4: 20.1e6, ZxMM3: 1549e3, RxMM: 198, RyMM: 45.7, MassKgM: 82.2},
		{Designation: "610x229x101 UB", Family: "UB", DepthMM: 602.6, WidthMM: 227.6, WebMM: 10.5, FlangeMM: 14.8, AreaMM2: 12900, IxMM4: 757e6, IyMM4: 29.2e6, ZxMM3: 2520e3, RxMM: 243, RyMM: 47.5, MassKgM: 101.2},
	},
	"UC": {
		{Designation: "152x152x23 UC", Family: "UC", DepthMM: 152.4, WidthMM: 152.2, WebMM: 5.8, FlangeMM: 6.8, AreaMM2: 2920, IxMM4: 12.5e6, IyMM4: 4.0e6, ZxMM3: 164e3, RxMM: 65.4, RyMM: 36.8, MassKgM: 23.0},
		{Designation: "203x203x46 UC", Family: "UC", DepthMM: 203.2, WidthMM: 203.6, WebMM: 7.2, FlangeMM: 11.0, AreaMM2: 5860, IxMM4: 52.8e6, IyMM4: 17.8e6, ZxMM3: 450e3, RxMM: 94.0, RyMM: 55.0, MassKgM: 46.1},
		{Designation: "254x254x73 UC", Family: "UC", DepthMM: 254.1, WidthMM: 254.6, WebMM: 8.6, FlangeMM: 14.2, AreaMM2: 9300, IxMM4: 106e6, IyMM4: 35.5e6, ZxMM3: 898e3, RxMM: 107, RyMM: 61.8, MassKgM: 73.1},
		{Designation: "305x305x97 UC", Family: "UC", DepthMM: 307.9, WidthMM: 305.3, WebMM: 9.9, FlangeMM: 15.4, AreaMM2: 12300, IxMM4: 222e6, IyMM4: 72.7e6, ZxMM3: 1440e3, RxMM: 134, RyMM: 76.9, MassKgM: 96.9},
	},
}

// Sections returns the section list for a family; unknown families return
// nil and false.
func Sections(family string) ([]Section, bool) {
	s, ok := sections[family]
	return s, ok
}

// FirstSection returns the first section in the family for which fits holds.
// When none fits it returns the largest section and false.
func FirstSection(family string, fits func(Section) bool) (Section, bool) {
	list := sections[family]
	for _, s := range list {
		if fits(s) {
			return s, true
		}
	}
	if len(list) == 0 {
		return Section{}, false
	}
	return list[len(list)-1], false
}
